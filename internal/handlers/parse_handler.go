// internal/handlers/parse_handler.go
package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"flashdeck/internal/fileparse"
	"flashdeck/internal/model"
	"flashdeck/internal/webutil"
)

// maxUploadBytes bounds the multipart memory buffer; larger files spill to
// temp files.
const maxUploadBytes = 32 << 20

type ParseHandler struct {
	logger *slog.Logger
}

func NewParseHandler(logger *slog.Logger) *ParseHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ParseHandler{logger: logger}
}

// PostParse extracts plain text from an uploaded pdf, docx, txt or md file.
func (h *ParseHandler) PostParse(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostParse"))

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		logger.Warn("Failed to parse multipart form", slog.String("error", err.Error()))
		webutil.RespondWithError(w, http.StatusBadRequest, "No file provided")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		webutil.RespondWithError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		logger.Error("Failed to read uploaded file", slog.Any("error", err), slog.String("filename", header.Filename))
		webutil.RespondWithError(w, http.StatusInternalServerError, "Failed to parse file")
		return
	}

	content, err := fileparse.Parse(header.Filename, data)
	if err != nil {
		if errors.Is(err, fileparse.ErrUnsupportedType) {
			ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
			logger.Warn("Unsupported file type", slog.String("extension", ext))
			webutil.RespondWithError(w, http.StatusBadRequest, "Unsupported file type: "+ext)
			return
		}
		logger.Error("File parsing error", slog.Any("error", err), slog.String("filename", header.Filename))
		webutil.RespondWithError(w, http.StatusInternalServerError, "Failed to parse file")
		return
	}

	logger.Info("File parsed successfully", slog.String("filename", header.Filename), slog.Int("content_len", len(content)))
	webutil.RespondWithJSON(w, http.StatusOK, model.ParseResponse{Content: content})
}
