// internal/service/flashcard_service.go
package service

import (
	"context"
	"strings"
	"time"

	"flashdeck/internal/middleware"
	"flashdeck/internal/model"
	"flashdeck/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FlashcardService interface {
	CreateFlashcard(ctx context.Context, req *model.CreateFlashcardRequest) (*model.Flashcard, error)
	UpdateFlashcard(ctx context.Context, req *model.UpdateFlashcardRequest) (*model.Flashcard, error)
	// RecordReview bumps the card's per-answer counters and review
	// timestamp. Callers fire it after every answered card and do not
	// retry on failure.
	RecordReview(ctx context.Context, cardID uuid.UUID, correct bool) error
	DeleteFlashcard(ctx context.Context, cardID uuid.UUID) error
}

type flashcardService struct {
	db       *gorm.DB
	cardRepo repository.FlashcardRepository
	deckRepo repository.DeckRepository
}

func NewFlashcardService(db *gorm.DB, cardRepo repository.FlashcardRepository, deckRepo repository.DeckRepository) FlashcardService {
	return &flashcardService{
		db:       db,
		cardRepo: cardRepo,
		deckRepo: deckRepo,
	}
}

func (s *flashcardService) CreateFlashcard(ctx context.Context, req *model.CreateFlashcardRequest) (*model.Flashcard, error) {
	question := strings.TrimSpace(req.Question)
	answer := strings.TrimSpace(req.Answer)
	if question == "" || answer == "" {
		return nil, model.ErrInvalidInput
	}
	if len(req.WrongAnswers) != 0 && len(req.WrongAnswers) != model.DistractorCount {
		return nil, model.ErrInvalidInput
	}

	// Reject cards for decks that don't exist before inserting.
	if _, err := s.deckRepo.FindByID(ctx, s.db, req.DeckID); err != nil {
		return nil, err
	}

	card := &model.Flashcard{
		ID:           uuid.New(),
		DeckID:       req.DeckID,
		Question:     question,
		Answer:       answer,
		WrongAnswers: req.WrongAnswers,
	}
	if err := s.cardRepo.Create(ctx, s.db, card); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *flashcardService) UpdateFlashcard(ctx context.Context, req *model.UpdateFlashcardRequest) (*model.Flashcard, error) {
	var updated *model.Flashcard

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		card, err := s.cardRepo.FindByID(ctx, tx, req.ID)
		if err != nil {
			return err
		}

		if req.Question != nil {
			question := strings.TrimSpace(*req.Question)
			if question == "" {
				return model.ErrInvalidInput
			}
			card.Question = question
		}
		if req.Answer != nil {
			answer := strings.TrimSpace(*req.Answer)
			if answer == "" {
				return model.ErrInvalidInput
			}
			card.Answer = answer
		}
		if req.WrongAnswers != nil {
			switch len(*req.WrongAnswers) {
			case 0:
				card.WrongAnswers = nil
			case model.DistractorCount:
				card.WrongAnswers = *req.WrongAnswers
			default:
				return model.ErrInvalidInput
			}
		}

		if err := s.cardRepo.Save(ctx, tx, card); err != nil {
			return err
		}
		updated = card
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *flashcardService) RecordReview(ctx context.Context, cardID uuid.UUID, correct bool) error {
	logger := middleware.GetLogger(ctx).With("card_id", cardID.String())

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		card, err := s.cardRepo.FindByID(ctx, tx, cardID)
		if err != nil {
			return err
		}

		now := time.Now()
		card.LastReviewed = &now
		if correct {
			card.TimesCorrect++
		} else {
			card.TimesWrong++
		}

		if err := s.cardRepo.Save(ctx, tx, card); err != nil {
			return err
		}
		logger.Debug("Review recorded", "correct", correct)
		return nil
	})
}

func (s *flashcardService) DeleteFlashcard(ctx context.Context, cardID uuid.UUID) error {
	return s.cardRepo.Delete(ctx, s.db, cardID)
}
