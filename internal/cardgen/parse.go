package cardgen

import (
	"encoding/json"

	"flashdeck/internal/model"
)

// Shape identifies which top-level layout a model response matched. Models
// don't always honor the requested {"cards": [...]} envelope, so the parser
// accepts the known variants and reports which one it saw.
type Shape string

const (
	ShapeCards      Shape = "cards"
	ShapeFlashcards Shape = "flashcards"
	ShapeBareArray  Shape = "array"
	ShapeNone       Shape = "none"
)

// ParseCards decodes a model response into card drafts. Entries without a
// non-empty question and answer are dropped. Malformed or non-array output
// yields an empty slice and ShapeNone, never an error: the caller treats
// "zero cards" as the failure signal.
func ParseCards(raw string) ([]model.CardDraft, Shape) {
	var envelope struct {
		Cards      []model.CardDraft `json:"cards"`
		Flashcards []model.CardDraft `json:"flashcards"`
	}
	if err := json.Unmarshal([]byte(raw), &envelope); err == nil {
		if envelope.Cards != nil {
			return filterDrafts(envelope.Cards), ShapeCards
		}
		if envelope.Flashcards != nil {
			return filterDrafts(envelope.Flashcards), ShapeFlashcards
		}
	}

	var bare []model.CardDraft
	if err := json.Unmarshal([]byte(raw), &bare); err == nil && bare != nil {
		return filterDrafts(bare), ShapeBareArray
	}

	return []model.CardDraft{}, ShapeNone
}

func filterDrafts(drafts []model.CardDraft) []model.CardDraft {
	cards := make([]model.CardDraft, 0, len(drafts))
	for _, d := range drafts {
		if d.Valid() {
			cards = append(cards, d)
		}
	}
	return cards
}
