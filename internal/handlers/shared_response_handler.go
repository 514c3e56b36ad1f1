// internal/handlers/shared_response_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"flashdeck/internal/model"
	"flashdeck/internal/service"
	"flashdeck/internal/webutil"

	"github.com/google/uuid"
)

type SharedResponseHandler struct {
	service service.SharedResponseService
	logger  *slog.Logger
}

func NewSharedResponseHandler(s service.SharedResponseService, logger *slog.Logger) *SharedResponseHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SharedResponseHandler{
		service: s,
		logger:  logger,
	}
}

// PostSharedResponse records a named participant's pass over a shared deck.
func (h *SharedResponseHandler) PostSharedResponse(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostSharedResponse"))

	var req model.CreateSharedResponseRequest
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

	response, err := h.service.CreateResponse(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating shared response in service", slog.Any("error", err), slog.String("deck_id", req.DeckID.String()))
		webutil.HandleError(w, err)
		return
	}

	logger.Info("Shared response created successfully", slog.String("response_id", response.ID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, response)
}

// GetSharedResponses lists all responses for a deck, newest first.
func (h *SharedResponseHandler) GetSharedResponses(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSharedResponses"))

	deckIDStr := r.URL.Query().Get("deck_id")
	if deckIDStr == "" {
		webutil.RespondWithError(w, http.StatusBadRequest, "Deck ID is required")
		return
	}
	deckID, err := uuid.Parse(deckIDStr)
	if err != nil {
		logger.Warn("Invalid deck ID format", slog.String("deck_id", deckIDStr))
		webutil.RespondWithError(w, http.StatusBadRequest, "Invalid deck ID format")
		return
	}

	responses, err := h.service.ListResponses(r.Context(), deckID)
	if err != nil {
		logger.Error("Error listing shared responses in service", slog.Any("error", err), slog.String("deck_id", deckID.String()))
		webutil.HandleError(w, err)
		return
	}

	if responses == nil {
		responses = []*model.SharedResponse{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, responses)
}
