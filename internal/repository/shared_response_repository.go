//go:generate mockery --name SharedResponseRepository --output ./mocks --outpkg mocks --case=underscore
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

type SharedResponseRepository interface {
	Create(ctx context.Context, tx *gorm.DB, response *model.SharedResponse) error
	FindByDeck(ctx context.Context, db *gorm.DB, deckID uuid.UUID) ([]*model.SharedResponse, error)
	// FindTopScorer returns the highest-scoring response of a deck, or
	// model.ErrNotFound when the deck has none.
	FindTopScorer(ctx context.Context, db *gorm.DB, deckID uuid.UUID) (*model.SharedResponse, error)
	// FindFastest returns the response with the smallest positive
	// time_seconds, or model.ErrNotFound when no response was timed.
	FindFastest(ctx context.Context, db *gorm.DB, deckID uuid.UUID) (*model.SharedResponse, error)
	DeleteByDeck(ctx context.Context, tx *gorm.DB, deckID uuid.UUID) error
}

type gormSharedResponseRepository struct{}

func NewGormSharedResponseRepository() SharedResponseRepository {
	return &gormSharedResponseRepository{}
}

func (r *gormSharedResponseRepository) Create(ctx context.Context, tx *gorm.DB, response *model.SharedResponse) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(response)
	if result.Error != nil {
		logger.Error("Error creating shared response in DB",
			"error", result.Error,
			"deck_id", response.DeckID.String(),
			"participant", response.ParticipantName,
		)
		return fmt.Errorf("gormSharedResponseRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormSharedResponseRepository) FindByDeck(ctx context.Context, db *gorm.DB, deckID uuid.UUID) ([]*model.SharedResponse, error) {
	logger := middleware.GetLogger(ctx)
	var responses []*model.SharedResponse
	result := db.WithContext(ctx).
		Where("deck_id = ?", deckID).
		Order("completed_at DESC").
		Find(&responses)
	if result.Error != nil {
		logger.Error("Error finding shared responses by deck in DB",
			"error", result.Error,
			"deck_id", deckID.String(),
		)
		return nil, fmt.Errorf("gormSharedResponseRepository.FindByDeck: %w", result.Error)
	}
	return responses, nil
}

func (r *gormSharedResponseRepository) FindTopScorer(ctx context.Context, db *gorm.DB, deckID uuid.UUID) (*model.SharedResponse, error) {
	logger := middleware.GetLogger(ctx)
	var response model.SharedResponse
	result := db.WithContext(ctx).
		Where("deck_id = ?", deckID).
		Order("score DESC").
		First(&response)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding top scorer by deck in DB",
			"error", result.Error,
			"deck_id", deckID.String(),
		)
		return nil, fmt.Errorf("gormSharedResponseRepository.FindTopScorer: %w", result.Error)
	}
	return &response, nil
}

func (r *gormSharedResponseRepository) FindFastest(ctx context.Context, db *gorm.DB, deckID uuid.UUID) (*model.SharedResponse, error) {
	logger := middleware.GetLogger(ctx)
	var response model.SharedResponse
	result := db.WithContext(ctx).
		Where("deck_id = ? AND time_seconds > 0", deckID).
		Order("time_seconds ASC").
		First(&response)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding fastest response by deck in DB",
			"error", result.Error,
			"deck_id", deckID.String(),
		)
		return nil, fmt.Errorf("gormSharedResponseRepository.FindFastest: %w", result.Error)
	}
	return &response, nil
}

func (r *gormSharedResponseRepository) DeleteByDeck(ctx context.Context, tx *gorm.DB, deckID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("deck_id = ?", deckID).Delete(&model.SharedResponse{})
	if result.Error != nil {
		logger.Error("Error deleting shared responses by deck in DB",
			"error", result.Error,
			"deck_id", deckID.String(),
		)
		return fmt.Errorf("gormSharedResponseRepository.DeleteByDeck: %w", result.Error)
	}
	return nil
}
