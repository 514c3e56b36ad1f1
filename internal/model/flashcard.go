// internal/model/flashcard.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Flashcard is one question/answer pair belonging to a deck. WrongAnswers,
// when present, holds exactly DistractorCount distractors for multiple-choice
// presentation; it is JSON-serialized so the same model works on Postgres and
// the SQLite test driver.
type Flashcard struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	DeckID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"deck_id"`
	Question     string     `gorm:"not null" json:"question"`
	Answer       string     `gorm:"not null" json:"answer"`
	WrongAnswers []string   `gorm:"serializer:json" json:"wrong_answers"`
	TimesCorrect int        `gorm:"not null;default:0" json:"times_correct"`
	TimesWrong   int        `gorm:"not null;default:0" json:"times_wrong"`
	LastReviewed *time.Time `json:"last_reviewed"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (Flashcard) TableName() string {
	return "flashcards"
}

type CreateFlashcardRequest struct {
	DeckID       uuid.UUID `json:"deck_id" validate:"required"`
	Question     string    `json:"question" validate:"required"`
	Answer       string    `json:"answer" validate:"required"`
	WrongAnswers []string  `json:"wrong_answers"`
}

// UpdateFlashcardRequest replaces the provided fields of a card. Pointer
// fields distinguish "not sent" from an explicit value; an empty
// wrong_answers array clears the distractors.
type UpdateFlashcardRequest struct {
	ID           uuid.UUID `json:"id" validate:"required"`
	Question     *string   `json:"question" validate:"omitempty,min=1"`
	Answer       *string   `json:"answer" validate:"omitempty,min=1"`
	WrongAnswers *[]string `json:"wrong_answers"`
}

// ReviewFlashcardRequest increments a card's per-answer stats.
type ReviewFlashcardRequest struct {
	ID      uuid.UUID `json:"id" validate:"required"`
	Correct *bool     `json:"correct" validate:"required"`
}
