// internal/handlers/deck_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"flashdeck/internal/model"
	"flashdeck/internal/service"
	"flashdeck/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type DeckHandler struct {
	service service.DeckService
	logger  *slog.Logger
}

func NewDeckHandler(s service.DeckService, logger *slog.Logger) *DeckHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DeckHandler{
		service: s,
		logger:  logger,
	}
}

// GetDecks lists all decks with their computed summary fields.
func (h *DeckHandler) GetDecks(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDecks"))

	summaries, err := h.service.ListDecks(r.Context())
	if err != nil {
		logger.Error("Error listing decks in service", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	if summaries == nil {
		summaries = []*model.DeckSummary{}
	}
	logger.Info("Decks listed successfully", slog.Int("count", len(summaries)))
	webutil.RespondWithJSON(w, http.StatusOK, summaries)
}

// PostDeck creates a deck, optionally seeded with cards.
func (h *DeckHandler) PostDeck(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostDeck"))

	var req model.CreateDeckRequest
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

	deck, err := h.service.CreateDeck(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating deck in service", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	logger.Info("Deck created successfully", slog.String("deck_id", deck.ID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, deck)
}

// GetDeck returns one deck with its cards and best-session stats.
func (h *DeckHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDeck"))

	deckIDStr := chi.URLParam(r, "deck_id")
	deckID, err := uuid.Parse(deckIDStr)
	if err != nil {
		logger.Warn("Invalid deck ID format", slog.String("deck_id", deckIDStr))
		webutil.RespondWithError(w, http.StatusBadRequest, "Invalid deck ID format")
		return
	}

	detail, err := h.service.GetDeck(r.Context(), deckID)
	if err != nil {
		logger.Error("Error getting deck in service", slog.Any("error", err), slog.String("deck_id", deckID.String()))
		webutil.HandleError(w, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, detail)
}

// DeleteDeck removes a deck and everything hanging off it.
func (h *DeckHandler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteDeck"))

	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		webutil.RespondWithError(w, http.StatusBadRequest, "Deck ID is required")
		return
	}
	deckID, err := uuid.Parse(idStr)
	if err != nil {
		logger.Warn("Invalid deck ID format", slog.String("id", idStr))
		webutil.RespondWithError(w, http.StatusBadRequest, "Invalid deck ID format")
		return
	}

	if err := h.service.DeleteDeck(r.Context(), deckID); err != nil {
		logger.Error("Error deleting deck in service", slog.Any("error", err), slog.String("deck_id", deckID.String()))
		webutil.HandleError(w, err)
		return
	}

	logger.Info("Deck deleted successfully", slog.String("deck_id", deckID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, model.DeleteResponse{Success: true})
}
