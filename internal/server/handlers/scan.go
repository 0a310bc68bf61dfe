package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/cardkeeper/internal/cardparse"
	"github.com/iudanet/cardkeeper/internal/scan"
	"github.com/iudanet/cardkeeper/internal/server/images"
	"github.com/iudanet/cardkeeper/pkg/api"
)

//go:generate moq -out scanner_mock.go . Scanner

// Scanner распознает фотографию визитки
type Scanner interface {
	Scan(ctx context.Context, data []byte) (*scan.Report, error)
}

// ScanHandler обрабатывает распознавание визиток
type ScanHandler struct {
	scanner Scanner
	responder
}

// NewScanHandler создает handler распознавания. scanner == nil означает,
// что OCR выключен: POST /api/scan отвечает 501, разбор текста работает
func NewScanHandler(logger *slog.Logger, scanner Scanner) *ScanHandler {
	return &ScanHandler{
		responder: responder{logger: logger},
		scanner:   scanner,
	}
}

// Scan обрабатывает POST /api/scan
func (h *ScanHandler) Scan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.scanner == nil {
		h.sendError(w, "ocr is disabled on this server", http.StatusNotImplemented)
		return
	}

	file, header, ok := h.formFile(w, r, images.MaxUploadSize)
	if !ok {
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, images.MaxUploadSize+1))
	if err != nil {
		h.sendInternalError(w, r, "failed to read scan image", err)
		return
	}
	switch {
	case len(data) == 0:
		h.sendError(w, "image is empty", http.StatusBadRequest)
		return
	case len(data) > images.MaxUploadSize:
		h.sendError(w, "image is too large", http.StatusRequestEntityTooLarge)
		return
	}

	if _, err := images.ResolveContentType(header.Header.Get("Content-Type"), data); err != nil {
		h.sendError(w, "unsupported image type", http.StatusUnsupportedMediaType)
		return
	}

	report, err := h.scanner.Scan(ctx, data)
	if err != nil {
		switch {
		case errors.Is(err, scan.ErrUnreadableImage):
			h.sendError(w, "unreadable image", http.StatusUnsupportedMediaType)
		case errors.Is(err, scan.ErrImageTooLarge):
			h.sendError(w, "image dimensions are too large", http.StatusRequestEntityTooLarge)
		case errors.Is(err, context.Canceled):
			h.logger.InfoContext(ctx, "scan canceled by client")
		default:
			h.sendInternalError(w, r, "failed to scan image", err)
		}
		return
	}

	h.sendData(w, report, http.StatusOK)
}

// Parse обрабатывает POST /api/scan/parse: разбор уже распознанного текста
func (h *ScanHandler) Parse(w http.ResponseWriter, r *http.Request) {
	var req api.ParseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		h.sendError(w, "text is required", http.StatusBadRequest)
		return
	}

	h.sendData(w, api.NewParseResponse(cardparse.Parse(req.Text)), http.StatusOK)
}
