// internal/model/cardgen.go
package model

// ExtractCardsRequest asks the completion adapter to lift cards out of
// pasted or uploaded text.
type ExtractCardsRequest struct {
	Content        string `json:"content" validate:"required"`
	MultipleChoice bool   `json:"multipleChoice"`
}

// GenerateCardsRequest asks the completion adapter for cards about a topic.
// Count is clamped by the handler, not validated here.
type GenerateCardsRequest struct {
	Topic          string `json:"topic" validate:"required"`
	Count          int    `json:"count"`
	Context        string `json:"context"`
	MultipleChoice bool   `json:"multipleChoice"`
}

// CardsResponse carries adapter output back to the client.
type CardsResponse struct {
	Cards []CardDraft `json:"cards"`
}

// ParseResponse carries the plain text pulled out of an uploaded file.
type ParseResponse struct {
	Content string `json:"content"`
}
