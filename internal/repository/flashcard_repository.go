//go:generate mockery --name FlashcardRepository --output ./mocks --outpkg mocks --case=underscore
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

type FlashcardRepository interface {
	Create(ctx context.Context, tx *gorm.DB, card *model.Flashcard) error
	CreateBatch(ctx context.Context, tx *gorm.DB, cards []*model.Flashcard) error
	FindByID(ctx context.Context, db *gorm.DB, cardID uuid.UUID) (*model.Flashcard, error)
	FindByDeck(ctx context.Context, db *gorm.DB, deckID uuid.UUID) ([]*model.Flashcard, error)
	CountByDeck(ctx context.Context, db *gorm.DB, deckID uuid.UUID) (int64, error)
	// Save writes the full card row back; used for content edits and stat
	// bumps so the JSON-serialized wrong_answers column round-trips through
	// the model's serializer.
	Save(ctx context.Context, tx *gorm.DB, card *model.Flashcard) error
	Delete(ctx context.Context, tx *gorm.DB, cardID uuid.UUID) error
	DeleteByDeck(ctx context.Context, tx *gorm.DB, deckID uuid.UUID) error
}

type gormFlashcardRepository struct{}

func NewGormFlashcardRepository() FlashcardRepository {
	return &gormFlashcardRepository{}
}

func (r *gormFlashcardRepository) Create(ctx context.Context, tx *gorm.DB, card *model.Flashcard) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(card)
	if result.Error != nil {
		logger.Error("Error creating flashcard in DB",
			"error", result.Error,
			"deck_id", card.DeckID.String(),
		)
		return fmt.Errorf("gormFlashcardRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormFlashcardRepository) CreateBatch(ctx context.Context, tx *gorm.DB, cards []*model.Flashcard) error {
	if len(cards) == 0 {
		return nil
	}
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(cards)
	if result.Error != nil {
		logger.Error("Error creating flashcards in DB",
			"error", result.Error,
			"count", len(cards),
		)
		return fmt.Errorf("gormFlashcardRepository.CreateBatch: %w", result.Error)
	}
	return nil
}

func (r *gormFlashcardRepository) FindByID(ctx context.Context, db *gorm.DB, cardID uuid.UUID) (*model.Flashcard, error) {
	logger := middleware.GetLogger(ctx)
	var card model.Flashcard
	result := db.WithContext(ctx).Where("id = ?", cardID).First(&card)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding flashcard by ID in DB",
			"error", result.Error,
			"card_id", cardID.String(),
		)
		return nil, fmt.Errorf("gormFlashcardRepository.FindByID: %w", result.Error)
	}
	return &card, nil
}

func (r *gormFlashcardRepository) FindByDeck(ctx context.Context, db *gorm.DB, deckID uuid.UUID) ([]*model.Flashcard, error) {
	logger := middleware.GetLogger(ctx)
	var cards []*model.Flashcard
	result := db.WithContext(ctx).Where("deck_id = ?", deckID).Order("created_at ASC").Find(&cards)
	if result.Error != nil {
		logger.Error("Error finding flashcards by deck in DB",
			"error", result.Error,
			"deck_id", deckID.String(),
		)
		return nil, fmt.Errorf("gormFlashcardRepository.FindByDeck: %w", result.Error)
	}
	return cards, nil
}

func (r *gormFlashcardRepository) CountByDeck(ctx context.Context, db *gorm.DB, deckID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Flashcard{}).Where("deck_id = ?", deckID).Count(&count)
	if result.Error != nil {
		logger.Error("Error counting flashcards by deck in DB",
			"error", result.Error,
			"deck_id", deckID.String(),
		)
		return 0, fmt.Errorf("gormFlashcardRepository.CountByDeck: %w", result.Error)
	}
	return count, nil
}

func (r *gormFlashcardRepository) Save(ctx context.Context, tx *gorm.DB, card *model.Flashcard) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Save(card)
	if result.Error != nil {
		logger.Error("Error saving flashcard in DB",
			"error", result.Error,
			"card_id", card.ID.String(),
		)
		return fmt.Errorf("gormFlashcardRepository.Save: %w", result.Error)
	}
	return nil
}

func (r *gormFlashcardRepository) Delete(ctx context.Context, tx *gorm.DB, cardID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("id = ?", cardID).Delete(&model.Flashcard{})
	if result.Error != nil {
		logger.Error("Error deleting flashcard in DB",
			"error", result.Error,
			"card_id", cardID.String(),
		)
		return fmt.Errorf("gormFlashcardRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormFlashcardRepository) DeleteByDeck(ctx context.Context, tx *gorm.DB, deckID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("deck_id = ?", deckID).Delete(&model.Flashcard{})
	if result.Error != nil {
		logger.Error("Error deleting flashcards by deck in DB",
			"error", result.Error,
			"deck_id", deckID.String(),
		)
		return fmt.Errorf("gormFlashcardRepository.DeleteByDeck: %w", result.Error)
	}
	return nil
}
