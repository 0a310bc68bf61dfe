package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/cardkeeper/internal/models"
	"github.com/iudanet/cardkeeper/internal/server/storage"
	"github.com/iudanet/cardkeeper/internal/validation"
	"github.com/iudanet/cardkeeper/pkg/api"
)

// CategoryHandler обрабатывает запросы к категориям
type CategoryHandler struct {
	categories storage.CategoryStorage
	responder
}

// NewCategoryHandler создает новый handler категорий
func NewCategoryHandler(logger *slog.Logger, categories storage.CategoryStorage) *CategoryHandler {
	return &CategoryHandler{
		responder:  responder{logger: logger},
		categories: categories,
	}
}

// List обрабатывает GET /api/categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.ListCategories(r.Context())
	if err != nil {
		h.sendInternalError(w, r, "failed to list categories", err)
		return
	}
	if categories == nil {
		categories = []*models.Category{}
	}

	h.sendList(w, categories, int64(len(categories)), nil)
}

// Get обрабатывает GET /api/categories/{id}
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.sendError(w, "invalid category id", http.StatusBadRequest)
		return
	}

	category, err := h.categories.GetCategory(r.Context(), id)
	if err != nil {
		h.sendStorageError(w, r, "failed to get category", err)
		return
	}

	h.sendData(w, category, http.StatusOK)
}

// Create обрабатывает POST /api/categories
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.CategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode category request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	category := &models.Category{}
	req.Apply(category)
	if !h.prepare(w, category) {
		return
	}

	if err := h.categories.CreateCategory(ctx, category); err != nil {
		h.sendStorageError(w, r, "failed to create category", err)
		return
	}

	h.logger.InfoContext(ctx, "category created",
		slog.Int64("category_id", category.ID),
		slog.String("name", category.Name))

	h.sendData(w, category, http.StatusCreated)
}

// Update обрабатывает PUT /api/categories/{id}
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(r)
	if !ok {
		h.sendError(w, "invalid category id", http.StatusBadRequest)
		return
	}

	var req api.CategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode category request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	category, err := h.categories.GetCategory(ctx, id)
	if err != nil {
		h.sendStorageError(w, r, "failed to get category", err)
		return
	}

	req.Apply(category)
	if !h.prepare(w, category) {
		return
	}

	if err := h.categories.UpdateCategory(ctx, category); err != nil {
		h.sendStorageError(w, r, "failed to update category", err)
		return
	}

	updated, err := h.categories.GetCategory(ctx, id)
	if err != nil {
		h.sendStorageError(w, r, "failed to reload category", err)
		return
	}

	h.logger.InfoContext(ctx, "category updated", slog.Int64("category_id", id))

	h.sendData(w, updated, http.StatusOK)
}

// Delete обрабатывает DELETE /api/categories/{id}
// Категорию, которая используется карточками, удалить нельзя
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.sendError(w, "invalid category id", http.StatusBadRequest)
		return
	}

	if err := h.categories.DeleteCategory(r.Context(), id); err != nil {
		h.sendStorageError(w, r, "failed to delete category", err)
		return
	}

	h.logger.InfoContext(r.Context(), "category deleted", slog.Int64("category_id", id))

	h.sendJSON(w, api.Response{Success: true}, http.StatusOK)
}

// prepare нормализует и проверяет категорию; при ошибке отправляет 400
func (h *CategoryHandler) prepare(w http.ResponseWriter, category *models.Category) bool {
	category.Name = strings.TrimSpace(category.Name)
	category.Description = strings.TrimSpace(category.Description)

	if err := validation.ValidateCategory(category); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return false
	}
	category.Color = validation.NormalizeColor(category.Color)
	return true
}

func (h *CategoryHandler) sendStorageError(w http.ResponseWriter, r *http.Request, message string, err error) {
	switch {
	case errors.Is(err, storage.ErrCategoryNotFound):
		h.sendError(w, "category not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrCategoryExists):
		h.sendError(w, "category with this name already exists", http.StatusConflict)
	case errors.Is(err, storage.ErrCategoryInUse):
		h.sendError(w, "category is used by business cards", http.StatusConflict)
	default:
		h.sendInternalError(w, r, message, err)
	}
}
