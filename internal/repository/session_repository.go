//go:generate mockery --name SessionRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"flashdeck/internal/middleware"
	"flashdeck/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, session *model.StudySession) error
	FindRecentByDeck(ctx context.Context, db *gorm.DB, deckID uuid.UUID, limit int) ([]*model.StudySession, error)
	// FindBestByDeck returns the highest-scoring session of a deck, or
	// model.ErrNotFound when the deck has none.
	FindBestByDeck(ctx context.Context, db *gorm.DB, deckID uuid.UUID) (*model.StudySession, error)
	// MaxAccuracyByDeck returns the best accuracy across a deck's sessions,
	// 0 when the deck has none.
	MaxAccuracyByDeck(ctx context.Context, db *gorm.DB, deckID uuid.UUID) (int, error)
	DeleteByDeck(ctx context.Context, tx *gorm.DB, deckID uuid.UUID) error
}

type gormSessionRepository struct{}

func NewGormSessionRepository() SessionRepository {
	return &gormSessionRepository{}
}

func (r *gormSessionRepository) Create(ctx context.Context, tx *gorm.DB, session *model.StudySession) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(session)
	if result.Error != nil {
		logger.Error("Error creating study session in DB",
			"error", result.Error,
			"deck_id", session.DeckID.String(),
		)
		return fmt.Errorf("gormSessionRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormSessionRepository) FindRecentByDeck(ctx context.Context, db *gorm.DB, deckID uuid.UUID, limit int) ([]*model.StudySession, error) {
	logger := middleware.GetLogger(ctx)
	var sessions []*model.StudySession
	result := db.WithContext(ctx).
		Where("deck_id = ?", deckID).
		Order("completed_at DESC").
		Limit(limit).
		Find(&sessions)
	if result.Error != nil {
		logger.Error("Error finding sessions by deck in DB",
			"error", result.Error,
			"deck_id", deckID.String(),
		)
		return nil, fmt.Errorf("gormSessionRepository.FindRecentByDeck: %w", result.Error)
	}
	return sessions, nil
}

func (r *gormSessionRepository) FindBestByDeck(ctx context.Context, db *gorm.DB, deckID uuid.UUID) (*model.StudySession, error) {
	logger := middleware.GetLogger(ctx)
	var session model.StudySession
	result := db.WithContext(ctx).
		Where("deck_id = ?", deckID).
		Order("score DESC").
		First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding best session by deck in DB",
			"error", result.Error,
			"deck_id", deckID.String(),
		)
		return nil, fmt.Errorf("gormSessionRepository.FindBestByDeck: %w", result.Error)
	}
	return &session, nil
}

func (r *gormSessionRepository) MaxAccuracyByDeck(ctx context.Context, db *gorm.DB, deckID uuid.UUID) (int, error) {
	logger := middleware.GetLogger(ctx)
	var maxAccuracy int
	result := db.WithContext(ctx).
		Model(&model.StudySession{}).
		Select("COALESCE(MAX(accuracy), 0)").
		Where("deck_id = ?", deckID).
		Scan(&maxAccuracy)
	if result.Error != nil {
		logger.Error("Error computing max accuracy by deck in DB",
			"error", result.Error,
			"deck_id", deckID.String(),
		)
		return 0, fmt.Errorf("gormSessionRepository.MaxAccuracyByDeck: %w", result.Error)
	}
	return maxAccuracy, nil
}

func (r *gormSessionRepository) DeleteByDeck(ctx context.Context, tx *gorm.DB, deckID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("deck_id = ?", deckID).Delete(&model.StudySession{})
	if result.Error != nil {
		logger.Error("Error deleting sessions by deck in DB",
			"error", result.Error,
			"deck_id", deckID.String(),
		)
		return fmt.Errorf("gormSessionRepository.DeleteByDeck: %w", result.Error)
	}
	return nil
}
