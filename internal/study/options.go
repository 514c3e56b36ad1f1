package study

import (
	"math/rand"

	"flashdeck/internal/model"
)

// Option is one answer choice shown for a card.
type Option struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// Options builds the shuffled choice set for a card: the true answer plus its
// wrong answers, in random order. The set is built once per card shown and
// frozen until the question changes. A card without wrong answers yields a
// single correct option.
func Options(card *model.Flashcard, rng *rand.Rand) []Option {
	options := make([]Option, 0, 1+len(card.WrongAnswers))
	options = append(options, Option{Text: card.Answer, Correct: true})
	for _, wrong := range card.WrongAnswers {
		options = append(options, Option{Text: wrong})
	}
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

// ShuffleCards returns a uniformly shuffled copy of cards for the shared
// study variant. The input slice is left untouched.
func ShuffleCards(cards []*model.Flashcard, rng *rand.Rand) []*model.Flashcard {
	shuffled := make([]*model.Flashcard, len(cards))
	copy(shuffled, cards)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
