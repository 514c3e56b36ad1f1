// internal/service/deck_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"flashdeck/internal/middleware"
	"flashdeck/internal/model"
	"flashdeck/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeckService interface {
	ListDecks(ctx context.Context) ([]*model.DeckSummary, error)
	CreateDeck(ctx context.Context, req *model.CreateDeckRequest) (*model.Deck, error)
	GetDeck(ctx context.Context, deckID uuid.UUID) (*model.DeckDetail, error)
	DeleteDeck(ctx context.Context, deckID uuid.UUID) error
}

type deckService struct {
	db         *gorm.DB
	deckRepo   repository.DeckRepository
	cardRepo   repository.FlashcardRepository
	sessRepo   repository.SessionRepository
	sharedRepo repository.SharedResponseRepository
}

func NewDeckService(db *gorm.DB, deckRepo repository.DeckRepository, cardRepo repository.FlashcardRepository, sessRepo repository.SessionRepository, sharedRepo repository.SharedResponseRepository) DeckService {
	return &deckService{
		db:         db,
		deckRepo:   deckRepo,
		cardRepo:   cardRepo,
		sessRepo:   sessRepo,
		sharedRepo: sharedRepo,
	}
}

// ListDecks returns all decks newest-first, each with its card count, its
// best session accuracy as progress, and the leaderboard extremes of its
// shared responses.
func (s *deckService) ListDecks(ctx context.Context) ([]*model.DeckSummary, error) {
	logger := middleware.GetLogger(ctx)

	decks, err := s.deckRepo.FindAll(ctx, s.db)
	if err != nil {
		return nil, err
	}

	summaries := make([]*model.DeckSummary, 0, len(decks))
	for _, deck := range decks {
		count, err := s.cardRepo.CountByDeck(ctx, s.db, deck.ID)
		if err != nil {
			return nil, err
		}
		progress, err := s.sessRepo.MaxAccuracyByDeck(ctx, s.db, deck.ID)
		if err != nil {
			return nil, err
		}

		summary := &model.DeckSummary{
			Deck:      *deck,
			CardCount: int(count),
			Progress:  progress,
		}

		top, err := s.sharedRepo.FindTopScorer(ctx, s.db, deck.ID)
		switch {
		case err == nil:
			summary.BestPerformer = &model.BestPerformer{Name: top.ParticipantName, Score: top.Score}
		case !errors.Is(err, model.ErrNotFound):
			return nil, err
		}

		fastest, err := s.sharedRepo.FindFastest(ctx, s.db, deck.ID)
		switch {
		case err == nil:
			summary.BestTime = &model.BestTime{Name: fastest.ParticipantName, Seconds: fastest.TimeSeconds}
		case !errors.Is(err, model.ErrNotFound):
			return nil, err
		}

		summaries = append(summaries, summary)
	}

	logger.Debug("Decks listed", "count", len(summaries))
	return summaries, nil
}

// CreateDeck creates a deck and its initial cards in one transaction, so a
// failing card insert leaves no deck behind.
func (s *deckService) CreateDeck(ctx context.Context, req *model.CreateDeckRequest) (*model.Deck, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, model.ErrInvalidInput
	}

	deck := &model.Deck{
		ID:    uuid.New(),
		Title: title,
	}
	if desc := strings.TrimSpace(req.Description); desc != "" {
		deck.Description = &desc
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.deckRepo.Create(ctx, tx, deck); err != nil {
			return err
		}

		cards := make([]*model.Flashcard, 0, len(req.Cards))
		for _, draft := range req.Cards {
			if !draft.Valid() {
				continue
			}
			cards = append(cards, &model.Flashcard{
				ID:           uuid.New(),
				DeckID:       deck.ID,
				Question:     strings.TrimSpace(draft.Question),
				Answer:       strings.TrimSpace(draft.Answer),
				WrongAnswers: draft.NormalizedWrongAnswers(),
			})
		}
		return s.cardRepo.CreateBatch(ctx, tx, cards)
	})
	if err != nil {
		return nil, err
	}

	return deck, nil
}

// GetDeck returns one deck with its cards oldest-first and the stats of its
// highest-scoring session.
func (s *deckService) GetDeck(ctx context.Context, deckID uuid.UUID) (*model.DeckDetail, error) {
	deck, err := s.deckRepo.FindByID(ctx, s.db, deckID)
	if err != nil {
		return nil, err
	}

	cards, err := s.cardRepo.FindByDeck(ctx, s.db, deckID)
	if err != nil {
		return nil, err
	}
	if cards == nil {
		cards = []*model.Flashcard{}
	}

	detail := &model.DeckDetail{
		Deck:       *deck,
		Flashcards: cards,
	}

	best, err := s.sessRepo.FindBestByDeck(ctx, s.db, deckID)
	switch {
	case err == nil:
		detail.BestScore = best.Score
		detail.BestAccuracy = best.Accuracy
		detail.BestStreak = best.Streak
	case !errors.Is(err, model.ErrNotFound):
		return nil, err
	}

	return detail, nil
}

// DeleteDeck removes a deck and everything hanging off it in one
// transaction.
func (s *deckService) DeleteDeck(ctx context.Context, deckID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.cardRepo.DeleteByDeck(ctx, tx, deckID); err != nil {
			return err
		}
		if err := s.sessRepo.DeleteByDeck(ctx, tx, deckID); err != nil {
			return err
		}
		if err := s.sharedRepo.DeleteByDeck(ctx, tx, deckID); err != nil {
			return err
		}
		return s.deckRepo.Delete(ctx, tx, deckID)
	})
}
