package model

import "strings"

// CardDraft is a not-yet-persisted flashcard: produced by the extraction and
// generation adapter, and accepted inline on deck creation. The wrongAnswers
// key casing follows the client contract.
type CardDraft struct {
	Question     string   `json:"question" validate:"required"`
	Answer       string   `json:"answer" validate:"required"`
	WrongAnswers []string `json:"wrongAnswers,omitempty"`
}

// Valid reports whether the draft has a usable question and answer.
func (d CardDraft) Valid() bool {
	return strings.TrimSpace(d.Question) != "" && strings.TrimSpace(d.Answer) != ""
}

// DistractorCount is how many wrong answers a multiple-choice card carries.
const DistractorCount = 3

// NormalizedWrongAnswers returns the draft's wrong answers when there are
// exactly DistractorCount of them, nil otherwise. A card either has a full
// option set or is a plain question/answer card.
func (d CardDraft) NormalizedWrongAnswers() []string {
	if len(d.WrongAnswers) == DistractorCount {
		return d.WrongAnswers
	}
	return nil
}
