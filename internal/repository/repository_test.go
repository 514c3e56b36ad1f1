// internal/repository/repository_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"flashdeck/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a private in-memory SQLite database and migrates the
// schema, so each test starts from empty tables.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func seedDeck(t *testing.T, db *gorm.DB) *model.Deck {
	t.Helper()
	deck := &model.Deck{ID: uuid.New(), Title: "seed deck"}
	require.NoError(t, db.Create(deck).Error)
	return deck
}

func TestGormDeckRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewGormDeckRepository()

	t.Run("create and find by id", func(t *testing.T) {
		db := setupTestDB(t)
		desc := "organic chemistry"
		deck := &model.Deck{ID: uuid.New(), Title: "Chem", Description: &desc}

		require.NoError(t, repo.Create(ctx, db, deck))

		got, err := repo.FindByID(ctx, db, deck.ID)
		require.NoError(t, err)
		assert.Equal(t, "Chem", got.Title)
		require.NotNil(t, got.Description)
		assert.Equal(t, desc, *got.Description)
	})

	t.Run("find all orders newest first", func(t *testing.T) {
		db := setupTestDB(t)
		older := &model.Deck{ID: uuid.New(), Title: "older", CreatedAt: time.Now().Add(-time.Hour)}
		newer := &model.Deck{ID: uuid.New(), Title: "newer", CreatedAt: time.Now()}
		require.NoError(t, db.Create(older).Error)
		require.NoError(t, db.Create(newer).Error)

		decks, err := repo.FindAll(ctx, db)
		require.NoError(t, err)
		require.Len(t, decks, 2)
		assert.Equal(t, "newer", decks[0].Title)
		assert.Equal(t, "older", decks[1].Title)
	})

	t.Run("find by unknown id returns not found", func(t *testing.T) {
		db := setupTestDB(t)
		_, err := repo.FindByID(ctx, db, uuid.New())
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("delete of a missing deck returns not found", func(t *testing.T) {
		db := setupTestDB(t)
		assert.ErrorIs(t, repo.Delete(ctx, db, uuid.New()), model.ErrNotFound)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		db := setupTestDB(t)
		deck := seedDeck(t, db)

		require.NoError(t, repo.Delete(ctx, db, deck.ID))
		_, err := repo.FindByID(ctx, db, deck.ID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestGormFlashcardRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewGormFlashcardRepository()

	t.Run("wrong answers survive the round trip", func(t *testing.T) {
		db := setupTestDB(t)
		deck := seedDeck(t, db)
		card := &model.Flashcard{
			ID:           uuid.New(),
			DeckID:       deck.ID,
			Question:     "Q",
			Answer:       "A",
			WrongAnswers: []string{"w1", "w2", "w3"},
		}

		require.NoError(t, repo.Create(ctx, db, card))

		got, err := repo.FindByID(ctx, db, card.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"w1", "w2", "w3"}, got.WrongAnswers)
	})

	t.Run("save persists stat bumps and cleared wrong answers", func(t *testing.T) {
		db := setupTestDB(t)
		deck := seedDeck(t, db)
		card := &model.Flashcard{
			ID:           uuid.New(),
			DeckID:       deck.ID,
			Question:     "Q",
			Answer:       "A",
			WrongAnswers: []string{"w1", "w2", "w3"},
		}
		require.NoError(t, repo.Create(ctx, db, card))

		now := time.Now()
		card.TimesCorrect = 3
		card.LastReviewed = &now
		card.WrongAnswers = nil
		require.NoError(t, repo.Save(ctx, db, card))

		got, err := repo.FindByID(ctx, db, card.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, got.TimesCorrect)
		assert.NotNil(t, got.LastReviewed)
		assert.Empty(t, got.WrongAnswers)
	})

	t.Run("find by deck orders oldest first", func(t *testing.T) {
		db := setupTestDB(t)
		deck := seedDeck(t, db)
		first := &model.Flashcard{ID: uuid.New(), DeckID: deck.ID, Question: "first", Answer: "A", CreatedAt: time.Now().Add(-time.Hour)}
		second := &model.Flashcard{ID: uuid.New(), DeckID: deck.ID, Question: "second", Answer: "A", CreatedAt: time.Now()}
		require.NoError(t, db.Create(second).Error)
		require.NoError(t, db.Create(first).Error)

		cards, err := repo.FindByDeck(ctx, db, deck.ID)
		require.NoError(t, err)
		require.Len(t, cards, 2)
		assert.Equal(t, "first", cards[0].Question)
		assert.Equal(t, "second", cards[1].Question)
	})

	t.Run("create batch and count", func(t *testing.T) {
		db := setupTestDB(t)
		deck := seedDeck(t, db)
		cards := []*model.Flashcard{
			{ID: uuid.New(), DeckID: deck.ID, Question: "Q1", Answer: "A1"},
			{ID: uuid.New(), DeckID: deck.ID, Question: "Q2", Answer: "A2"},
		}
		require.NoError(t, repo.CreateBatch(ctx, db, cards))

		count, err := repo.CountByDeck(ctx, db, deck.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		db := setupTestDB(t)
		require.NoError(t, repo.CreateBatch(ctx, db, nil))
	})

	t.Run("delete by deck clears only that deck", func(t *testing.T) {
		db := setupTestDB(t)
		deckA := seedDeck(t, db)
		deckB := seedDeck(t, db)
		require.NoError(t, repo.Create(ctx, db, &model.Flashcard{ID: uuid.New(), DeckID: deckA.ID, Question: "Q", Answer: "A"}))
		require.NoError(t, repo.Create(ctx, db, &model.Flashcard{ID: uuid.New(), DeckID: deckB.ID, Question: "Q", Answer: "A"}))

		require.NoError(t, repo.DeleteByDeck(ctx, db, deckA.ID))

		countA, err := repo.CountByDeck(ctx, db, deckA.ID)
		require.NoError(t, err)
		assert.Zero(t, countA)
		countB, err := repo.CountByDeck(ctx, db, deckB.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), countB)
	})

	t.Run("delete of a missing card returns not found", func(t *testing.T) {
		db := setupTestDB(t)
		assert.ErrorIs(t, repo.Delete(ctx, db, uuid.New()), model.ErrNotFound)
	})
}

func TestGormSessionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewGormSessionRepository()

	seedSession := func(t *testing.T, db *gorm.DB, deckID uuid.UUID, score, accuracy int, completedAt time.Time) {
		t.Helper()
		require.NoError(t, db.Create(&model.StudySession{
			ID:          uuid.New(),
			DeckID:      deckID,
			Score:       score,
			Accuracy:    accuracy,
			CompletedAt: completedAt,
		}).Error)
	}

	t.Run("recent sessions honor order and limit", func(t *testing.T) {
		db := setupTestDB(t)
		deck := seedDeck(t, db)
		base := time.Now()
		for i := 0; i < 4; i++ {
			seedSession(t, db, deck.ID, i*10, 50, base.Add(time.Duration(i)*time.Minute))
		}

		sessions, err := repo.FindRecentByDeck(ctx, db, deck.ID, 3)
		require.NoError(t, err)
		require.Len(t, sessions, 3)
		assert.Equal(t, 30, sessions[0].Score)
		assert.Equal(t, 20, sessions[1].Score)
		assert.Equal(t, 10, sessions[2].Score)
	})

	t.Run("best session is the highest score", func(t *testing.T) {
		db := setupTestDB(t)
		deck := seedDeck(t, db)
		seedSession(t, db, deck.ID, 40, 60, time.Now())
		seedSession(t, db, deck.ID, 90, 80, time.Now())
		seedSession(t, db, deck.ID, 70, 100, time.Now())

		best, err := repo.FindBestByDeck(ctx, db, deck.ID)
		require.NoError(t, err)
		assert.Equal(t, 90, best.Score)
	})

	t.Run("no sessions means not found", func(t *testing.T) {
		db := setupTestDB(t)
		deck := seedDeck(t, db)
		_, err := repo.FindBestByDeck(ctx, db, deck.ID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("max accuracy falls back to zero", func(t *testing.T) {
		db := setupTestDB(t)
		deck := seedDeck(t, db)

		acc, err := repo.MaxAccuracyByDeck(ctx, db, deck.ID)
		require.NoError(t, err)
		assert.Zero(t, acc)

		seedSession(t, db, deck.ID, 10, 40, time.Now())
		seedSession(t, db, deck.ID, 10, 95, time.Now())

		acc, err = repo.MaxAccuracyByDeck(ctx, db, deck.ID)
		require.NoError(t, err)
		assert.Equal(t, 95, acc)
	})
}

func TestGormSharedResponseRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewGormSharedResponseRepository()

	seedResponse := func(t *testing.T, db *gorm.DB, deckID uuid.UUID, name string, score, seconds int, completedAt time.Time) {
		t.Helper()
		require.NoError(t, db.Create(&model.SharedResponse{
			ID:              uuid.New(),
			DeckID:          deckID,
			ParticipantName: name,
			Score:           score,
			TimeSeconds:     seconds,
			CompletedAt:     completedAt,
		}).Error)
	}

	t.Run("find by deck orders newest first", func(t *testing.T) {
		db := setupTestDB(t)
		deck := seedDeck(t, db)
		seedResponse(t, db, deck.ID, "first", 10, 30, time.Now().Add(-time.Hour))
		seedResponse(t, db, deck.ID, "second", 20, 40, time.Now())

		responses, err := repo.FindByDeck(ctx, db, deck.ID)
		require.NoError(t, err)
		require.Len(t, responses, 2)
		assert.Equal(t, "second", responses[0].ParticipantName)
	})

	t.Run("top scorer is the max score", func(t *testing.T) {
		db := setupTestDB(t)
		deck := seedDeck(t, db)
		seedResponse(t, db, deck.ID, "Ana", 120, 50, time.Now())
		seedResponse(t, db, deck.ID, "Ben", 80, 20, time.Now())

		top, err := repo.FindTopScorer(ctx, db, deck.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ana", top.ParticipantName)
	})

	t.Run("fastest ignores untimed responses", func(t *testing.T) {
		db := setupTestDB(t)
		deck := seedDeck(t, db)
		seedResponse(t, db, deck.ID, "untimed", 50, 0, time.Now())
		seedResponse(t, db, deck.ID, "slow", 50, 90, time.Now())
		seedResponse(t, db, deck.ID, "quick", 50, 35, time.Now())

		fastest, err := repo.FindFastest(ctx, db, deck.ID)
		require.NoError(t, err)
		assert.Equal(t, "quick", fastest.ParticipantName)
		assert.Equal(t, 35, fastest.TimeSeconds)
	})

	t.Run("only untimed responses means not found", func(t *testing.T) {
		db := setupTestDB(t)
		deck := seedDeck(t, db)
		seedResponse(t, db, deck.ID, "untimed", 50, 0, time.Now())

		_, err := repo.FindFastest(ctx, db, deck.ID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("delete by deck clears the deck's responses", func(t *testing.T) {
		db := setupTestDB(t)
		deck := seedDeck(t, db)
		seedResponse(t, db, deck.ID, "Ana", 10, 10, time.Now())

		require.NoError(t, repo.DeleteByDeck(ctx, db, deck.ID))

		responses, err := repo.FindByDeck(ctx, db, deck.ID)
		require.NoError(t, err)
		assert.Empty(t, responses)
	})
}
