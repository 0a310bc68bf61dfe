package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/iudanet/cardkeeper/pkg/api"
)

// contextKey тип для ключей контекста
type contextKey string

// SubjectKey ключ для хранения имени владельца токена в контексте
const SubjectKey contextKey = "subject"

// GetSubject извлекает имя владельца токена из контекста запроса
func GetSubject(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectKey).(string)
	return subject, ok && subject != ""
}

// WithSubject кладет имя владельца токена в контекст
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, SubjectKey, subject)
}

// responder общие методы отправки ответов в конверте api.Response
type responder struct {
	logger *slog.Logger
}

// sendJSON отправляет JSON ответ
func (h responder) sendJSON(w http.ResponseWriter, resp api.Response, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendData отправляет успешный ответ с данными
func (h responder) sendData(w http.ResponseWriter, data any, statusCode int) {
	h.sendJSON(w, api.Response{Success: true, Data: data}, statusCode)
}

// sendList отправляет страницу списка вместе с общим количеством
func (h responder) sendList(w http.ResponseWriter, data any, total int64, pagination *api.Pagination) {
	h.sendJSON(w, api.Response{
		Success:    true,
		Data:       data,
		Total:      &total,
		Pagination: pagination,
	}, http.StatusOK)
}

// sendError отправляет JSON ответ с ошибкой
func (h responder) sendError(w http.ResponseWriter, message string, statusCode int) {
	h.sendJSON(w, api.Response{Success: false, Error: message}, statusCode)
}

// sendInternalError логирует причину и отправляет обобщенное сообщение
func (h responder) sendInternalError(w http.ResponseWriter, r *http.Request, message string, err error) {
	h.logger.ErrorContext(r.Context(), message,
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err))
	h.sendError(w, "internal server error", http.StatusInternalServerError)
}

// decodeJSON разбирает тело запроса; неизвестные поля игнорируются
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(v)
}

const maxJSONBody = 1 << 20

// pathID извлекает положительный числовой id из path parameter (Go 1.22+)
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
