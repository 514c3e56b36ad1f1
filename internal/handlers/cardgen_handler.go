// internal/handlers/cardgen_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"flashdeck/internal/cardgen"
	"flashdeck/internal/fileparse"
	"flashdeck/internal/model"
	"flashdeck/internal/webutil"
)

const defaultGenerateCount = 10

// CardgenHandler fronts the completion adapter. It does not touch the
// database, so it stays outside the RequireDatabase gate.
type CardgenHandler struct {
	generator cardgen.Generator
	maxCards  int
	logger    *slog.Logger
}

func NewCardgenHandler(g cardgen.Generator, maxCards int, logger *slog.Logger) *CardgenHandler {
	if logger == nil {
		logger = slog.Default()
	}
	if maxCards <= 0 {
		maxCards = 20
	}
	return &CardgenHandler{
		generator: g,
		maxCards:  maxCards,
		logger:    logger,
	}
}

// PostExtract pulls flashcards out of pasted or uploaded text.
func (h *CardgenHandler) PostExtract(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostExtract"))

	var req model.ExtractCardsRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := webutil.ValidateStruct(&req); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		webutil.HandleError(w, err)
		return
	}

	content := fileparse.Truncate(req.Content)
	cards, err := h.generator.ExtractCards(r.Context(), content, req.MultipleChoice)
	if err != nil {
		logger.Error("Extraction call failed", slog.Any("error", err))
		webutil.RespondWithError(w, http.StatusInternalServerError, "Failed to extract flashcards")
		return
	}
	if len(cards) == 0 {
		logger.Warn("Extraction yielded no cards", slog.Int("content_len", len(content)))
		webutil.RespondWithError(w, http.StatusBadRequest, "Could not extract any flashcards from the content")
		return
	}

	logger.Info("Cards extracted successfully", slog.Int("count", len(cards)))
	webutil.RespondWithJSON(w, http.StatusOK, model.CardsResponse{Cards: cards})
}

// PostGenerate produces flashcards about a named topic.
func (h *CardgenHandler) PostGenerate(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostGenerate"))

	var req model.GenerateCardsRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := webutil.ValidateStruct(&req); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		webutil.HandleError(w, err)
		return
	}

	count := req.Count
	if count == 0 {
		count = defaultGenerateCount
	}
	if count < 1 {
		count = 1
	}
	if count > h.maxCards {
		count = h.maxCards
	}

	cards, err := h.generator.GenerateCards(r.Context(), req.Topic, count, req.Context, req.MultipleChoice)
	if err != nil {
		logger.Error("Generation call failed", slog.Any("error", err), slog.String("topic", req.Topic))
		webutil.RespondWithError(w, http.StatusInternalServerError, "Failed to generate flashcards")
		return
	}
	if len(cards) == 0 {
		logger.Warn("Generation yielded no cards", slog.String("topic", req.Topic))
		webutil.RespondWithError(w, http.StatusBadRequest, "Could not generate flashcards for this topic")
		return
	}

	logger.Info("Cards generated successfully", slog.Int("count", len(cards)), slog.String("topic", req.Topic))
	webutil.RespondWithJSON(w, http.StatusOK, model.CardsResponse{Cards: cards})
}
