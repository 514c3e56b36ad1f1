package cardgen

import (
	"context"
	"errors"
	"testing"

	"flashdeck/internal/model"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI returns a canned completion and records the last request.
type fakeAPI struct {
	content string
	err     error
	lastReq openai.ChatCompletionRequest
}

func (f *fakeAPI) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: f.content}},
		},
	}, nil
}

func TestParseCards(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantShape Shape
		wantCards int
	}{
		{
			name:      "cards envelope",
			raw:       `{"cards":[{"question":"q1","answer":"a1"},{"question":"q2","answer":"a2"}]}`,
			wantShape: ShapeCards,
			wantCards: 2,
		},
		{
			name:      "flashcards envelope",
			raw:       `{"flashcards":[{"question":"q","answer":"a"}]}`,
			wantShape: ShapeFlashcards,
			wantCards: 1,
		},
		{
			name:      "bare array",
			raw:       `[{"question":"q","answer":"a"}]`,
			wantShape: ShapeBareArray,
			wantCards: 1,
		},
		{
			name:      "entries without question or answer are dropped",
			raw:       `{"cards":[{"question":"q","answer":"a"},{"question":"","answer":"a"},{"question":"q"},{"question":"  ","answer":"a"}]}`,
			wantShape: ShapeCards,
			wantCards: 1,
		},
		{
			name:      "not JSON at all",
			raw:       `Sure! Here are your flashcards:`,
			wantShape: ShapeNone,
		},
		{
			name:      "JSON but not array shaped",
			raw:       `{"message":"I could not find any facts"}`,
			wantShape: ShapeNone,
		},
		{
			name:      "wrong element type",
			raw:       `{"cards":["just","strings"]}`,
			wantShape: ShapeNone,
		},
		{
			name:      "empty string",
			raw:       ``,
			wantShape: ShapeNone,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cards, shape := ParseCards(tc.raw)
			assert.Equal(t, tc.wantShape, shape)
			require.NotNil(t, cards)
			assert.Len(t, cards, tc.wantCards)
		})
	}
}

func TestParseCards_WrongAnswersCarriedThrough(t *testing.T) {
	raw := `{"cards":[{"question":"q","answer":"a","wrongAnswers":["w1","w2","w3"]}]}`
	cards, shape := ParseCards(raw)
	require.Equal(t, ShapeCards, shape)
	require.Len(t, cards, 1)
	assert.Equal(t, []string{"w1", "w2", "w3"}, cards[0].WrongAnswers)
}

func TestClient_ExtractCards(t *testing.T) {
	api := &fakeAPI{content: `{"cards":[{"question":"q","answer":"a"}]}`}
	client := NewWithAPI(api, "gpt-4o-mini")

	cards, err := client.ExtractCards(context.Background(), "some study notes", false)
	require.NoError(t, err)
	assert.Equal(t, []model.CardDraft{{Question: "q", Answer: "a"}}, cards)

	assert.Equal(t, "gpt-4o-mini", api.lastReq.Model)
	require.Len(t, api.lastReq.Messages, 2)
	assert.Contains(t, api.lastReq.Messages[0].Content, "flashcard extraction assistant")
	assert.NotContains(t, api.lastReq.Messages[0].Content, "wrongAnswers")
	assert.Contains(t, api.lastReq.Messages[1].Content, "some study notes")
	require.NotNil(t, api.lastReq.ResponseFormat)
	assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONObject, api.lastReq.ResponseFormat.Type)
}

func TestClient_ExtractCards_MultipleChoicePrompt(t *testing.T) {
	api := &fakeAPI{content: `{"cards":[]}`}
	client := NewWithAPI(api, "gpt-4o-mini")

	_, err := client.ExtractCards(context.Background(), "notes", true)
	require.NoError(t, err)
	assert.Contains(t, api.lastReq.Messages[0].Content, "wrongAnswers")
	assert.Contains(t, api.lastReq.Messages[0].Content, "exactly 3 plausible but incorrect answers")
}

func TestClient_GenerateCards(t *testing.T) {
	api := &fakeAPI{content: `{"cards":[{"question":"q","answer":"a"}]}`}
	client := NewWithAPI(api, "gpt-4o-mini")

	cards, err := client.GenerateCards(context.Background(), "photosynthesis", 5, "focus on the light reactions", false)
	require.NoError(t, err)
	assert.Len(t, cards, 1)

	assert.Contains(t, api.lastReq.Messages[0].Content, "Create exactly 5 flashcards")
	assert.Contains(t, api.lastReq.Messages[1].Content, "Create 5 flashcards about: photosynthesis")
	assert.Contains(t, api.lastReq.Messages[1].Content, "focus on the light reactions")
}

func TestClient_MalformedOutputIsEmptyNotError(t *testing.T) {
	api := &fakeAPI{content: `this is not JSON`}
	client := NewWithAPI(api, "gpt-4o-mini")

	cards, err := client.ExtractCards(context.Background(), "notes", false)
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestClient_TransportErrorIsReturned(t *testing.T) {
	api := &fakeAPI{err: errors.New("upstream unavailable")}
	client := NewWithAPI(api, "gpt-4o-mini")

	_, err := client.ExtractCards(context.Background(), "notes", false)
	assert.ErrorContains(t, err, "upstream unavailable")
}
