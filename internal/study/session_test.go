package study

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_Answer_StreakAndScore(t *testing.T) {
	tests := []struct {
		name          string
		answers       []bool
		wantScore     int
		wantStreak    int
		wantMaxStreak int
		wantCorrect   int
		wantWrong     int
	}{
		{
			name:       "single correct answer scores base points",
			answers:    []bool{true},
			wantScore:  10,
			wantStreak: 1, wantMaxStreak: 1, wantCorrect: 1,
		},
		{
			name:       "bonus kicks in on the third consecutive correct",
			answers:    []bool{true, true, true},
			wantScore:  10 + 10 + 15,
			wantStreak: 3, wantMaxStreak: 3, wantCorrect: 3,
		},
		{
			name:       "bonus continues while the streak holds",
			answers:    []bool{true, true, true, true},
			wantScore:  10 + 10 + 15 + 15,
			wantStreak: 4, wantMaxStreak: 4, wantCorrect: 4,
		},
		{
			name:       "wrong answer resets the streak to zero",
			answers:    []bool{true, true, false},
			wantScore:  20,
			wantStreak: 0, wantMaxStreak: 2, wantCorrect: 2, wantWrong: 1,
		},
		{
			name:       "streak rebuilds from zero after a miss",
			answers:    []bool{true, true, true, false, true},
			wantScore:  10 + 10 + 15 + 0 + 10,
			wantStreak: 1, wantMaxStreak: 3, wantCorrect: 4, wantWrong: 1,
		},
		{
			name:      "all wrong scores nothing",
			answers:   []bool{false, false, false},
			wantWrong: 3,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState(len(tc.answers) + 1) // keep the session in progress
			for _, correct := range tc.answers {
				s = s.Answer(correct)
			}
			assert.Equal(t, tc.wantScore, s.Score)
			assert.Equal(t, tc.wantStreak, s.Streak)
			assert.Equal(t, tc.wantMaxStreak, s.MaxStreak)
			assert.Equal(t, tc.wantCorrect, s.Correct)
			assert.Equal(t, tc.wantWrong, s.Wrong)
			assert.False(t, s.Complete)
		})
	}
}

func TestState_Answer_Completion(t *testing.T) {
	s := NewState(2)
	s = s.Answer(true)
	assert.False(t, s.Complete)
	assert.Equal(t, 1, s.Index)

	s = s.Answer(false)
	assert.True(t, s.Complete)

	// A completed session is terminal: further answers change nothing.
	done := s.Answer(true)
	assert.Equal(t, s, done)
}

func TestState_Answer_SingleCardDeck(t *testing.T) {
	s := NewState(1).Answer(true)
	assert.True(t, s.Complete)
	assert.Equal(t, 10, s.Score)
	assert.Equal(t, 100, s.Accuracy())
}

func TestState_Accuracy(t *testing.T) {
	tests := []struct {
		name    string
		correct int
		wrong   int
		want    int
	}{
		{"no answers", 0, 0, 0},
		{"all correct", 5, 0, 100},
		{"all wrong", 0, 5, 0},
		{"two thirds rounds up", 2, 1, 67},
		{"one third rounds down", 1, 2, 33},
		{"half", 3, 3, 50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := State{Correct: tc.correct, Wrong: tc.wrong}
			assert.Equal(t, tc.want, s.Accuracy())
		})
	}
}

func TestState_Restart(t *testing.T) {
	s := NewState(3)
	s = s.Answer(true)
	s = s.Answer(false)
	s = s.Answer(true)
	assert.True(t, s.Complete)

	fresh := s.Restart()
	assert.Equal(t, NewState(3), fresh)
}
