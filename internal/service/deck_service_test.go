// internal/service/deck_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"flashdeck/internal/model"
	"flashdeck/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory SQLite handle so the services under test can
// run their real GORM transactions around mocked repositories.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func strPtr(s string) *string { return &s }

func Test_deckService_CreateDeck(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	tests := []struct {
		name      string
		req       *model.CreateDeckRequest
		setupMock func(deckRepo *mocks.DeckRepository, cardRepo *mocks.FlashcardRepository)
		wantErr   error
	}{
		{
			name: "creates deck with valid cards only",
			req: &model.CreateDeckRequest{
				Title:       "  Biology  ",
				Description: "Cell structure",
				Cards: []model.CardDraft{
					{Question: "What is a mitochondrion?", Answer: "The powerhouse of the cell"},
					{Question: "   ", Answer: "dropped"},
					{Question: "Q2", Answer: "A2", WrongAnswers: []string{"w1", "w2", "w3"}},
				},
			},
			setupMock: func(deckRepo *mocks.DeckRepository, cardRepo *mocks.FlashcardRepository) {
				deckRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Deck")).
					Run(func(args mock.Arguments) {
						deck := args.Get(2).(*model.Deck)
						assert.Equal(t, "Biology", deck.Title)
						require.NotNil(t, deck.Description)
						assert.Equal(t, "Cell structure", *deck.Description)
						assert.NotEqual(t, uuid.Nil, deck.ID)
					}).Return(nil).Once()
				cardRepo.On("CreateBatch", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("[]*model.Flashcard")).
					Run(func(args mock.Arguments) {
						cards := args.Get(2).([]*model.Flashcard)
						require.Len(t, cards, 2)
						assert.Equal(t, "What is a mitochondrion?", cards[0].Question)
						assert.Nil(t, cards[0].WrongAnswers)
						assert.Equal(t, []string{"w1", "w2", "w3"}, cards[1].WrongAnswers)
					}).Return(nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "rejects blank title",
			req:  &model.CreateDeckRequest{Title: "   "},
			setupMock: func(deckRepo *mocks.DeckRepository, cardRepo *mocks.FlashcardRepository) {
			},
			wantErr: model.ErrInvalidInput,
		},
		{
			name: "card insert failure rolls the deck back",
			req: &model.CreateDeckRequest{
				Title: "History",
				Cards: []model.CardDraft{{Question: "Q", Answer: "A"}},
			},
			setupMock: func(deckRepo *mocks.DeckRepository, cardRepo *mocks.FlashcardRepository) {
				deckRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Deck")).
					Return(nil).Once()
				cardRepo.On("CreateBatch", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("[]*model.Flashcard")).
					Return(errors.New("insert failed")).Once()
			},
			wantErr: errors.New("insert failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deckRepo := new(mocks.DeckRepository)
			cardRepo := new(mocks.FlashcardRepository)
			sessRepo := new(mocks.SessionRepository)
			sharedRepo := new(mocks.SharedResponseRepository)
			tt.setupMock(deckRepo, cardRepo)

			svc := NewDeckService(db, deckRepo, cardRepo, sessRepo, sharedRepo)
			deck, err := svc.CreateDeck(ctx, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, model.ErrInvalidInput) {
					assert.ErrorIs(t, err, model.ErrInvalidInput)
				} else {
					assert.EqualError(t, err, tt.wantErr.Error())
				}
				assert.Nil(t, deck)
			} else {
				require.NoError(t, err)
				require.NotNil(t, deck)
				assert.Equal(t, "Biology", deck.Title)
			}
			deckRepo.AssertExpectations(t)
			cardRepo.AssertExpectations(t)
		})
	}
}

func Test_deckService_ListDecks(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	deckID := uuid.New()
	decks := []*model.Deck{{ID: deckID, Title: "Chemistry"}}

	t.Run("composes counts, progress and leaderboard fields", func(t *testing.T) {
		deckRepo := new(mocks.DeckRepository)
		cardRepo := new(mocks.FlashcardRepository)
		sessRepo := new(mocks.SessionRepository)
		sharedRepo := new(mocks.SharedResponseRepository)

		deckRepo.On("FindAll", ctx, mock.AnythingOfType("*gorm.DB")).Return(decks, nil).Once()
		cardRepo.On("CountByDeck", ctx, mock.AnythingOfType("*gorm.DB"), deckID).Return(int64(12), nil).Once()
		sessRepo.On("MaxAccuracyByDeck", ctx, mock.AnythingOfType("*gorm.DB"), deckID).Return(85, nil).Once()
		sharedRepo.On("FindTopScorer", ctx, mock.AnythingOfType("*gorm.DB"), deckID).
			Return(&model.SharedResponse{ParticipantName: "Ana", Score: 120}, nil).Once()
		sharedRepo.On("FindFastest", ctx, mock.AnythingOfType("*gorm.DB"), deckID).
			Return(&model.SharedResponse{ParticipantName: "Ben", TimeSeconds: 42}, nil).Once()

		svc := NewDeckService(db, deckRepo, cardRepo, sessRepo, sharedRepo)
		summaries, err := svc.ListDecks(ctx)

		require.NoError(t, err)
		require.Len(t, summaries, 1)
		s := summaries[0]
		assert.Equal(t, 12, s.CardCount)
		assert.Equal(t, 85, s.Progress)
		require.NotNil(t, s.BestPerformer)
		assert.Equal(t, "Ana", s.BestPerformer.Name)
		assert.Equal(t, 120, s.BestPerformer.Score)
		require.NotNil(t, s.BestTime)
		assert.Equal(t, "Ben", s.BestTime.Name)
		assert.Equal(t, 42, s.BestTime.Seconds)
		sharedRepo.AssertExpectations(t)
	})

	t.Run("omits leaderboard fields when no shared responses qualify", func(t *testing.T) {
		deckRepo := new(mocks.DeckRepository)
		cardRepo := new(mocks.FlashcardRepository)
		sessRepo := new(mocks.SessionRepository)
		sharedRepo := new(mocks.SharedResponseRepository)

		deckRepo.On("FindAll", ctx, mock.AnythingOfType("*gorm.DB")).Return(decks, nil).Once()
		cardRepo.On("CountByDeck", ctx, mock.AnythingOfType("*gorm.DB"), deckID).Return(int64(0), nil).Once()
		sessRepo.On("MaxAccuracyByDeck", ctx, mock.AnythingOfType("*gorm.DB"), deckID).Return(0, nil).Once()
		sharedRepo.On("FindTopScorer", ctx, mock.AnythingOfType("*gorm.DB"), deckID).
			Return(nil, model.ErrNotFound).Once()
		sharedRepo.On("FindFastest", ctx, mock.AnythingOfType("*gorm.DB"), deckID).
			Return(nil, model.ErrNotFound).Once()

		svc := NewDeckService(db, deckRepo, cardRepo, sessRepo, sharedRepo)
		summaries, err := svc.ListDecks(ctx)

		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Nil(t, summaries[0].BestPerformer)
		assert.Nil(t, summaries[0].BestTime)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		deckRepo := new(mocks.DeckRepository)
		cardRepo := new(mocks.FlashcardRepository)
		sessRepo := new(mocks.SessionRepository)
		sharedRepo := new(mocks.SharedResponseRepository)

		deckRepo.On("FindAll", ctx, mock.AnythingOfType("*gorm.DB")).
			Return(nil, errors.New("connection reset")).Once()

		svc := NewDeckService(db, deckRepo, cardRepo, sessRepo, sharedRepo)
		summaries, err := svc.ListDecks(ctx)

		assert.EqualError(t, err, "connection reset")
		assert.Nil(t, summaries)
	})
}

func Test_deckService_GetDeck(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	deckID := uuid.New()

	t.Run("returns cards and best-session stats", func(t *testing.T) {
		deckRepo := new(mocks.DeckRepository)
		cardRepo := new(mocks.FlashcardRepository)
		sessRepo := new(mocks.SessionRepository)
		sharedRepo := new(mocks.SharedResponseRepository)

		deckRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), deckID).
			Return(&model.Deck{ID: deckID, Title: "Physics"}, nil).Once()
		cardRepo.On("FindByDeck", ctx, mock.AnythingOfType("*gorm.DB"), deckID).
			Return([]*model.Flashcard{{ID: uuid.New(), Question: "Q"}}, nil).Once()
		sessRepo.On("FindBestByDeck", ctx, mock.AnythingOfType("*gorm.DB"), deckID).
			Return(&model.StudySession{Score: 150, Accuracy: 90, Streak: 7}, nil).Once()

		svc := NewDeckService(db, deckRepo, cardRepo, sessRepo, sharedRepo)
		detail, err := svc.GetDeck(ctx, deckID)

		require.NoError(t, err)
		assert.Equal(t, "Physics", detail.Title)
		assert.Len(t, detail.Flashcards, 1)
		assert.Equal(t, 150, detail.BestScore)
		assert.Equal(t, 90, detail.BestAccuracy)
		assert.Equal(t, 7, detail.BestStreak)
	})

	t.Run("zero stats when the deck has no sessions", func(t *testing.T) {
		deckRepo := new(mocks.DeckRepository)
		cardRepo := new(mocks.FlashcardRepository)
		sessRepo := new(mocks.SessionRepository)
		sharedRepo := new(mocks.SharedResponseRepository)

		deckRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), deckID).
			Return(&model.Deck{ID: deckID, Title: "Physics"}, nil).Once()
		cardRepo.On("FindByDeck", ctx, mock.AnythingOfType("*gorm.DB"), deckID).
			Return(nil, nil).Once()
		sessRepo.On("FindBestByDeck", ctx, mock.AnythingOfType("*gorm.DB"), deckID).
			Return(nil, model.ErrNotFound).Once()

		svc := NewDeckService(db, deckRepo, cardRepo, sessRepo, sharedRepo)
		detail, err := svc.GetDeck(ctx, deckID)

		require.NoError(t, err)
		assert.NotNil(t, detail.Flashcards)
		assert.Empty(t, detail.Flashcards)
		assert.Zero(t, detail.BestScore)
		assert.Zero(t, detail.BestAccuracy)
		assert.Zero(t, detail.BestStreak)
	})

	t.Run("unknown deck surfaces not found", func(t *testing.T) {
		deckRepo := new(mocks.DeckRepository)
		cardRepo := new(mocks.FlashcardRepository)
		sessRepo := new(mocks.SessionRepository)
		sharedRepo := new(mocks.SharedResponseRepository)

		deckRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), deckID).
			Return(nil, model.ErrNotFound).Once()

		svc := NewDeckService(db, deckRepo, cardRepo, sessRepo, sharedRepo)
		detail, err := svc.GetDeck(ctx, deckID)

		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, detail)
	})
}

func Test_deckService_DeleteDeck(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	deckID := uuid.New()

	t.Run("cascades through cards, sessions and shared responses", func(t *testing.T) {
		deckRepo := new(mocks.DeckRepository)
		cardRepo := new(mocks.FlashcardRepository)
		sessRepo := new(mocks.SessionRepository)
		sharedRepo := new(mocks.SharedResponseRepository)

		cardRepo.On("DeleteByDeck", ctx, mock.AnythingOfType("*gorm.DB"), deckID).Return(nil).Once()
		sessRepo.On("DeleteByDeck", ctx, mock.AnythingOfType("*gorm.DB"), deckID).Return(nil).Once()
		sharedRepo.On("DeleteByDeck", ctx, mock.AnythingOfType("*gorm.DB"), deckID).Return(nil).Once()
		deckRepo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), deckID).Return(nil).Once()

		svc := NewDeckService(db, deckRepo, cardRepo, sessRepo, sharedRepo)
		require.NoError(t, svc.DeleteDeck(ctx, deckID))

		deckRepo.AssertExpectations(t)
		cardRepo.AssertExpectations(t)
		sessRepo.AssertExpectations(t)
		sharedRepo.AssertExpectations(t)
	})

	t.Run("missing deck surfaces not found", func(t *testing.T) {
		deckRepo := new(mocks.DeckRepository)
		cardRepo := new(mocks.FlashcardRepository)
		sessRepo := new(mocks.SessionRepository)
		sharedRepo := new(mocks.SharedResponseRepository)

		cardRepo.On("DeleteByDeck", ctx, mock.AnythingOfType("*gorm.DB"), deckID).Return(nil).Once()
		sessRepo.On("DeleteByDeck", ctx, mock.AnythingOfType("*gorm.DB"), deckID).Return(nil).Once()
		sharedRepo.On("DeleteByDeck", ctx, mock.AnythingOfType("*gorm.DB"), deckID).Return(nil).Once()
		deckRepo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), deckID).Return(model.ErrNotFound).Once()

		svc := NewDeckService(db, deckRepo, cardRepo, sessRepo, sharedRepo)
		assert.ErrorIs(t, svc.DeleteDeck(ctx, deckID), model.ErrNotFound)
	})
}
