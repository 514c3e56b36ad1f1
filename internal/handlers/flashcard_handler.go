// internal/handlers/flashcard_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"flashdeck/internal/model"
	"flashdeck/internal/service"
	"flashdeck/internal/webutil"

	"github.com/google/uuid"
)

type FlashcardHandler struct {
	service service.FlashcardService
	logger  *slog.Logger
}

func NewFlashcardHandler(s service.FlashcardService, logger *slog.Logger) *FlashcardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FlashcardHandler{
		service: s,
		logger:  logger,
	}
}

// PostFlashcard adds a card to an existing deck.
func (h *FlashcardHandler) PostFlashcard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostFlashcard"))

	var req model.CreateFlashcardRequest
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

	card, err := h.service.CreateFlashcard(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating flashcard in service", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	logger.Info("Flashcard created successfully", slog.String("card_id", card.ID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, card)
}

// PutFlashcard replaces the provided fields of a card.
func (h *FlashcardHandler) PutFlashcard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutFlashcard"))

	var req model.UpdateFlashcardRequest
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

	card, err := h.service.UpdateFlashcard(r.Context(), &req)
	if err != nil {
		logger.Error("Error updating flashcard in service", slog.Any("error", err), slog.String("card_id", req.ID.String()))
		webutil.HandleError(w, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, card)
}

// PatchFlashcard records one review outcome for a card.
func (h *FlashcardHandler) PatchFlashcard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchFlashcard"))

	var req model.ReviewFlashcardRequest
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

	if err := h.service.RecordReview(r.Context(), req.ID, *req.Correct); err != nil {
		logger.Error("Error recording review in service", slog.Any("error", err), slog.String("card_id", req.ID.String()))
		webutil.HandleError(w, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.DeleteResponse{Success: true})
}

// DeleteFlashcard removes a single card.
func (h *FlashcardHandler) DeleteFlashcard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteFlashcard"))

	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		webutil.RespondWithError(w, http.StatusBadRequest, "Flashcard ID is required")
		return
	}
	cardID, err := uuid.Parse(idStr)
	if err != nil {
		logger.Warn("Invalid flashcard ID format", slog.String("id", idStr))
		webutil.RespondWithError(w, http.StatusBadRequest, "Invalid flashcard ID format")
		return
	}

	if err := h.service.DeleteFlashcard(r.Context(), cardID); err != nil {
		logger.Error("Error deleting flashcard in service", slog.Any("error", err), slog.String("card_id", cardID.String()))
		webutil.HandleError(w, err)
		return
	}

	logger.Info("Flashcard deleted successfully", slog.String("card_id", cardID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, model.DeleteResponse{Success: true})
}
