// internal/service/session_service.go
package service

import (
	"context"
	"time"

	"flashdeck/internal/middleware"
	"flashdeck/internal/model"
	"flashdeck/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionService interface {
	CreateSession(ctx context.Context, req *model.CreateSessionRequest) (*model.StudySession, error)
	ListSessions(ctx context.Context, deckID uuid.UUID) ([]*model.StudySession, error)
}

type sessionService struct {
	db       *gorm.DB
	deckRepo repository.DeckRepository
	sessRepo repository.SessionRepository
	limit    int
}

// NewSessionService builds a session service; limit caps how many recent
// sessions ListSessions returns per deck.
func NewSessionService(db *gorm.DB, deckRepo repository.DeckRepository, sessRepo repository.SessionRepository, limit int) SessionService {
	return &sessionService{
		db:       db,
		deckRepo: deckRepo,
		sessRepo: sessRepo,
		limit:    limit,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, req *model.CreateSessionRequest) (*model.StudySession, error) {
	logger := middleware.GetLogger(ctx).With("deck_id", req.DeckID.String())

	if _, err := s.deckRepo.FindByID(ctx, s.db, req.DeckID); err != nil {
		return nil, err
	}

	session := &model.StudySession{
		ID:            uuid.New(),
		DeckID:        req.DeckID,
		Score:         *req.Score,
		CardsReviewed: *req.CardsReviewed,
		Streak:        req.Streak,
		Accuracy:      req.Accuracy,
		CompletedAt:   time.Now(),
	}
	if err := s.sessRepo.Create(ctx, s.db, session); err != nil {
		return nil, err
	}

	logger.Info("Study session recorded", "score", session.Score, "accuracy", session.Accuracy)
	return session, nil
}

func (s *sessionService) ListSessions(ctx context.Context, deckID uuid.UUID) ([]*model.StudySession, error) {
	if _, err := s.deckRepo.FindByID(ctx, s.db, deckID); err != nil {
		return nil, err
	}
	return s.sessRepo.FindRecentByDeck(ctx, s.db, deckID, s.limit)
}
