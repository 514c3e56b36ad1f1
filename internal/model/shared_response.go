// internal/model/shared_response.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SharedResponse is the append-only record of one study pass by a named
// external participant via a deck's public link.
type SharedResponse struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DeckID          uuid.UUID `gorm:"type:uuid;not null;index" json:"deck_id"`
	ParticipantName string    `gorm:"not null" json:"participant_name"`
	Score           int       `gorm:"not null;default:0" json:"score"`
	CardsReviewed   int       `gorm:"not null;default:0" json:"cards_reviewed"`
	CorrectCount    int       `gorm:"not null;default:0" json:"correct_count"`
	WrongCount      int       `gorm:"not null;default:0" json:"wrong_count"`
	BestStreak      int       `gorm:"not null;default:0" json:"best_streak"`
	Accuracy        int       `gorm:"not null;default:0" json:"accuracy"`
	TimeSeconds     int       `gorm:"not null;default:0" json:"time_seconds"`
	CompletedAt     time.Time `gorm:"not null;index" json:"completed_at"`
}

func (SharedResponse) TableName() string {
	return "shared_responses"
}

// CreateSharedResponseRequest submits a participant's completed pass. All
// numeric fields default to zero when omitted.
type CreateSharedResponseRequest struct {
	DeckID          uuid.UUID `json:"deck_id" validate:"required"`
	ParticipantName string    `json:"participant_name" validate:"required"`
	Score           int       `json:"score"`
	CardsReviewed   int       `json:"cards_reviewed"`
	CorrectCount    int       `json:"correct_count"`
	WrongCount      int       `json:"wrong_count"`
	BestStreak      int       `json:"best_streak"`
	Accuracy        int       `json:"accuracy"`
	TimeSeconds     int       `json:"time_seconds"`
}
