// internal/model/deck.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Deck is a named collection of flashcards.
type Deck struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Deck) TableName() string {
	return "decks"
}

// CreateDeckRequest creates a deck, optionally together with its first cards.
type CreateDeckRequest struct {
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description"`
	Cards       []CardDraft `json:"cards" validate:"omitempty,dive"`
}

// BestPerformer is the highest-scoring shared-response participant of a deck.
type BestPerformer struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// BestTime is the fastest shared-response participant of a deck, counting
// only responses with a positive time.
type BestTime struct {
	Name    string `json:"name"`
	Seconds int    `json:"seconds"`
}

// DeckSummary is one entry of the deck list, with stats derived from the
// deck's cards, sessions and shared responses.
type DeckSummary struct {
	Deck
	CardCount     int            `json:"card_count"`
	Progress      int            `json:"progress"`
	BestPerformer *BestPerformer `json:"best_performer,omitempty"`
	BestTime      *BestTime      `json:"best_time,omitempty"`
}

// DeckDetail is a single deck with its cards (oldest first) and the stats of
// its highest-scoring study session.
type DeckDetail struct {
	Deck
	Flashcards   []*Flashcard `json:"flashcards"`
	BestScore    int          `json:"best_score"`
	BestAccuracy int          `json:"best_accuracy"`
	BestStreak   int          `json:"best_streak"`
}

// DeleteResponse acknowledges a successful delete.
type DeleteResponse struct {
	Success bool `json:"success"`
}
