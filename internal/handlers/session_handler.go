// internal/handlers/session_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"flashdeck/internal/model"
	"flashdeck/internal/service"
	"flashdeck/internal/webutil"

	"github.com/google/uuid"
)

type SessionHandler struct {
	service service.SessionService
	logger  *slog.Logger
}

func NewSessionHandler(s service.SessionService, logger *slog.Logger) *SessionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionHandler{
		service: s,
		logger:  logger,
	}
}

// PostSession records a completed study pass for a deck.
func (h *SessionHandler) PostSession(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostSession"))

	var req model.CreateSessionRequest
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

	session, err := h.service.CreateSession(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating session in service", slog.Any("error", err), slog.String("deck_id", req.DeckID.String()))
		webutil.HandleError(w, err)
		return
	}

	logger.Info("Session created successfully", slog.String("session_id", session.ID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, session)
}

// GetSessions lists a deck's most recent sessions, newest first.
func (h *SessionHandler) GetSessions(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSessions"))

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

	sessions, err := h.service.ListSessions(r.Context(), deckID)
	if err != nil {
		logger.Error("Error listing sessions in service", slog.Any("error", err), slog.String("deck_id", deckID.String()))
		webutil.HandleError(w, err)
		return
	}

	if sessions == nil {
		sessions = []*model.StudySession{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, sessions)
}
