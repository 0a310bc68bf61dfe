package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/iudanet/cardkeeper/internal/models"
	"github.com/iudanet/cardkeeper/internal/server/storage"
	"github.com/iudanet/cardkeeper/internal/validation"
	"github.com/iudanet/cardkeeper/pkg/api"
)

// CardHandler обрабатывает запросы к визитным карточкам
type CardHandler struct {
	cards storage.CardStorage
	responder
}

// NewCardHandler создает новый handler карточек
func NewCardHandler(logger *slog.Logger, cards storage.CardStorage) *CardHandler {
	return &CardHandler{
		responder: responder{logger: logger},
		cards:     cards,
	}
}

// List обрабатывает GET /api/business-cards
// Поиск: q (или search), company, name, category_id, category; страница: page или offset, limit
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseCardFilter(r)
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	cards, total, err := h.cards.ListCards(r.Context(), filter)
	if err != nil {
		h.sendInternalError(w, r, "failed to list cards", err)
		return
	}

	h.sendList(w, api.NewCards(cards), total, api.NewPagination(total, filter.Limit, filter.Offset))
}

// Get обрабатывает GET /api/business-cards/{id}
func (h *CardHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.sendError(w, "invalid card id", http.StatusBadRequest)
		return
	}

	card, err := h.cards.GetCard(r.Context(), id)
	if err != nil {
		h.sendStorageError(w, r, "failed to get card", err)
		return
	}

	h.sendData(w, api.NewCard(card), http.StatusOK)
}

// Create обрабатывает POST /api/business-cards
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.CardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode card request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	card := req.ToCard()
	validation.NormalizeCard(card)
	if err := validation.ValidateCard(card); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	card.RegisteredBy = models.DefaultRegisteredBy
	if subject, ok := GetSubject(ctx); ok {
		card.RegisteredBy = subject
	}

	if err := h.cards.CreateCard(ctx, card); err != nil {
		h.sendStorageError(w, r, "failed to create card", err)
		return
	}

	h.logger.InfoContext(ctx, "card created",
		slog.Int64("card_id", card.ID),
		slog.String("registered_by", card.RegisteredBy))

	h.respondWithCard(w, r, card.ID, http.StatusCreated)
}

// Update обрабатывает PUT /api/business-cards/{id}
// Переданные поля заменяют сохраненные, последняя запись побеждает
func (h *CardHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(r)
	if !ok {
		h.sendError(w, "invalid card id", http.StatusBadRequest)
		return
	}

	var req api.CardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode card request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	card, err := h.cards.GetCard(ctx, id)
	if err != nil {
		h.sendStorageError(w, r, "failed to get card", err)
		return
	}

	// Без category_ids сохраняем дополнительные связи, основная берется из запроса
	if req.CategoryIDs == nil {
		req.CategoryIDs = secondaryCategoryIDs(card)
	}
	req.Apply(card)
	validation.NormalizeCard(card)
	if err := validation.ValidateCard(card); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.cards.UpdateCard(ctx, card); err != nil {
		h.sendStorageError(w, r, "failed to update card", err)
		return
	}

	h.logger.InfoContext(ctx, "card updated", slog.Int64("card_id", id))

	h.respondWithCard(w, r, id, http.StatusOK)
}

// Delete обрабатывает DELETE /api/business-cards/{id}
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.sendError(w, "invalid card id", http.StatusBadRequest)
		return
	}

	if err := h.cards.DeleteCard(r.Context(), id); err != nil {
		h.sendStorageError(w, r, "failed to delete card", err)
		return
	}

	h.logger.InfoContext(r.Context(), "card deleted", slog.Int64("card_id", id))

	h.sendJSON(w, api.Response{Success: true}, http.StatusOK)
}

// respondWithCard перечитывает карточку, чтобы вернуть связанные категории
func (h *CardHandler) respondWithCard(w http.ResponseWriter, r *http.Request, id int64, statusCode int) {
	card, err := h.cards.GetCard(r.Context(), id)
	if err != nil {
		h.sendStorageError(w, r, "failed to reload card", err)
		return
	}
	h.sendData(w, api.NewCard(card), statusCode)
}

func (h *CardHandler) sendStorageError(w http.ResponseWriter, r *http.Request, message string, err error) {
	switch {
	case errors.Is(err, storage.ErrCardNotFound):
		h.sendError(w, "card not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrCategoryNotFound):
		h.sendError(w, "category not found", http.StatusBadRequest)
	default:
		h.sendInternalError(w, r, message, err)
	}
}

func secondaryCategoryIDs(card *models.Card) []int64 {
	ids := make([]int64, 0, len(card.Categories))
	for _, c := range card.Categories {
		if card.CategoryID != nil && c.ID == *card.CategoryID {
			continue
		}
		ids = append(ids, c.ID)
	}
	return ids
}

// parseCardFilter разбирает параметры поиска и пагинации
func parseCardFilter(r *http.Request) (models.CardFilter, error) {
	q := r.URL.Query()

	filter := models.CardFilter{
		Query:        strings.TrimSpace(q.Get("q")),
		Company:      strings.TrimSpace(q.Get("company")),
		Name:         strings.TrimSpace(q.Get("name")),
		CategoryName: strings.TrimSpace(q.Get("category")),
	}
	if filter.Query == "" {
		filter.Query = strings.TrimSpace(q.Get("search"))
	}

	if v := q.Get("category_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			return filter, errors.New("invalid category_id")
		}
		filter.CategoryID = &id
	}

	var err error
	if filter.Limit, err = queryInt(q.Get("limit")); err != nil {
		return filter, errors.New("invalid limit")
	}
	if filter.Offset, err = queryInt(q.Get("offset")); err != nil {
		return filter, errors.New("invalid offset")
	}
	filter.Normalize()

	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			return filter, errors.New("invalid page")
		}
		filter.Offset = (page - 1) * filter.Limit
	}

	return filter, nil
}

func queryInt(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, errors.New("invalid number")
	}
	return n, nil
}
