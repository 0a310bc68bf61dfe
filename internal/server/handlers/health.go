package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/iudanet/cardkeeper/pkg/api"
)

// Pinger проверяет доступность базы данных
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	db      Pinger
	version string
	ocr     string
	responder
	auth bool
}

// NewHealthHandler создает новый handler для health check.
// ocr имя OCR движка или пустая строка, если распознавание выключено
func NewHealthHandler(logger *slog.Logger, db Pinger, version, ocr string, auth bool) *HealthHandler {
	return &HealthHandler{
		responder: responder{logger: logger},
		db:        db,
		version:   version,
		ocr:       ocr,
		auth:      auth,
	}
}

// Health обрабатывает GET /api/health
// Health check endpoint для мониторинга
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := api.HealthResponse{
		Status:   "ok",
		Version:  h.version,
		Database: "ok",
		OCR:      h.ocr,
		Auth:     h.auth,
	}
	if resp.OCR == "" {
		resp.OCR = "disabled"
	}

	if err := h.db.Ping(r.Context()); err != nil {
		h.logger.ErrorContext(r.Context(), "database ping failed", slog.Any("error", err))
		resp.Status = "degraded"
		resp.Database = "unavailable"
		h.sendJSON(w, api.Response{Success: false, Data: resp, Error: "database unavailable"},
			http.StatusServiceUnavailable)
		return
	}

	h.sendData(w, resp, http.StatusOK)
}
