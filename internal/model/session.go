// internal/model/session.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// StudySession is the append-only summary of one study pass by the deck
// owner. Rows are never updated or deleted individually.
type StudySession struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DeckID        uuid.UUID `gorm:"type:uuid;not null;index" json:"deck_id"`
	Score         int       `gorm:"not null" json:"score"`
	CardsReviewed int       `gorm:"not null" json:"cards_reviewed"`
	Streak        int       `gorm:"not null;default:0" json:"streak"`
	Accuracy      int       `gorm:"not null;default:0" json:"accuracy"`
	CompletedAt   time.Time `gorm:"not null;index" json:"completed_at"`
}

func (StudySession) TableName() string {
	return "study_sessions"
}

// CreateSessionRequest records a completed study pass. Score and
// CardsReviewed are pointers so a legitimate zero passes the required check.
type CreateSessionRequest struct {
	DeckID        uuid.UUID `json:"deck_id" validate:"required"`
	Score         *int      `json:"score" validate:"required"`
	CardsReviewed *int      `json:"cards_reviewed" validate:"required"`
	Streak        int       `json:"streak"`
	Accuracy      int       `json:"accuracy"`
}
