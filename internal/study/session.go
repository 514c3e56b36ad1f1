// Package study holds the scoring state machine for one pass through a deck.
// State is an immutable value transitioned by Answer, so the whole flow is
// testable without a clock, a network or a store.
package study

import "math"

// Scoring constants: every correct answer is worth basePoints, plus
// streakBonus once the running streak reaches bonusThreshold.
const (
	basePoints     = 10
	streakBonus    = 5
	bonusThreshold = 3
)

// State is the progress of one study session. The zero value of a field is
// its starting value; construct with NewState.
type State struct {
	Index     int
	Total     int
	Score     int
	Streak    int
	MaxStreak int
	Correct   int
	Wrong     int
	Complete  bool
}

// NewState starts a session over totalCards cards.
func NewState(totalCards int) State {
	return State{Total: totalCards}
}

// Answer applies one answer and returns the next state. A correct answer
// extends the streak and scores base points plus the streak bonus; a wrong
// answer resets the streak to zero. Answering the last card completes the
// session; a completed session ignores further answers.
func (s State) Answer(correct bool) State {
	if s.Complete {
		return s
	}

	if correct {
		s.Streak++
		s.Score += basePoints
		if s.Streak >= bonusThreshold {
			s.Score += streakBonus
		}
		if s.Streak > s.MaxStreak {
			s.MaxStreak = s.Streak
		}
		s.Correct++
	} else {
		s.Streak = 0
		s.Wrong++
	}

	if s.Index >= s.Total-1 {
		s.Complete = true
	} else {
		s.Index++
	}
	return s
}

// Accuracy is the percentage of answered cards that were correct, rounded to
// the nearest integer. It is 0 before any card has been answered.
func (s State) Accuracy() int {
	answered := s.Correct + s.Wrong
	if answered == 0 {
		return 0
	}
	return int(math.Round(float64(s.Correct) / float64(answered) * 100))
}

// Restart returns a fresh session over the same cards.
func (s State) Restart() State {
	return NewState(s.Total)
}
