// internal/service/shared_response_service.go
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

type SharedResponseService interface {
	CreateResponse(ctx context.Context, req *model.CreateSharedResponseRequest) (*model.SharedResponse, error)
	ListResponses(ctx context.Context, deckID uuid.UUID) ([]*model.SharedResponse, error)
}

type sharedResponseService struct {
	db         *gorm.DB
	deckRepo   repository.DeckRepository
	sharedRepo repository.SharedResponseRepository
}

func NewSharedResponseService(db *gorm.DB, deckRepo repository.DeckRepository, sharedRepo repository.SharedResponseRepository) SharedResponseService {
	return &sharedResponseService{
		db:         db,
		deckRepo:   deckRepo,
		sharedRepo: sharedRepo,
	}
}

func (s *sharedResponseService) CreateResponse(ctx context.Context, req *model.CreateSharedResponseRequest) (*model.SharedResponse, error) {
	logger := middleware.GetLogger(ctx).With("deck_id", req.DeckID.String())

	name := strings.TrimSpace(req.ParticipantName)
	if name == "" {
		return nil, model.ErrInvalidInput
	}

	if _, err := s.deckRepo.FindByID(ctx, s.db, req.DeckID); err != nil {
		return nil, err
	}

	response := &model.SharedResponse{
		ID:              uuid.New(),
		DeckID:          req.DeckID,
		ParticipantName: name,
		Score:           req.Score,
		CardsReviewed:   req.CardsReviewed,
		CorrectCount:    req.CorrectCount,
		WrongCount:      req.WrongCount,
		BestStreak:      req.BestStreak,
		Accuracy:        req.Accuracy,
		TimeSeconds:     req.TimeSeconds,
		CompletedAt:     time.Now(),
	}
	if err := s.sharedRepo.Create(ctx, s.db, response); err != nil {
		return nil, err
	}

	logger.Info("Shared response recorded", "participant", name, "score", response.Score)
	return response, nil
}

func (s *sharedResponseService) ListResponses(ctx context.Context, deckID uuid.UUID) ([]*model.SharedResponse, error) {
	if _, err := s.deckRepo.FindByID(ctx, s.db, deckID); err != nil {
		return nil, err
	}
	return s.sharedRepo.FindByDeck(ctx, s.db, deckID)
}
