package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/iudanet/cardkeeper/internal/models"
	"github.com/iudanet/cardkeeper/internal/server/images"
	"github.com/iudanet/cardkeeper/internal/server/storage"
	"github.com/iudanet/cardkeeper/pkg/api"
)

//go:generate moq -out images_mock.go . ImageService

// ImageService операции над изображениями, которые нужны handler
type ImageService interface {
	Upload(ctx context.Context, up images.Upload) (*models.Image, error)
	Open(ctx context.Context, filename string) (*images.Content, error)
	Delete(ctx context.Context, filename string) error
	List(ctx context.Context, limit int) ([]*models.Image, error)
}

// ImageHandler обрабатывает загрузку и отдачу изображений визиток
type ImageHandler struct {
	images ImageService
	responder
}

// NewImageHandler создает новый handler изображений
func NewImageHandler(logger *slog.Logger, svc ImageService) *ImageHandler {
	return &ImageHandler{
		responder: responder{logger: logger},
		images:    svc,
	}
}

// multipart overhead поверх самого файла
const multipartOverhead = 1 << 20

// Upload обрабатывает POST /api/images/upload
// Файл передается в поле image, карточка в card_id или businessCardId
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	file, header, ok := h.formFile(w, r, images.MaxUploadSize)
	if !ok {
		return
	}
	defer file.Close()

	cardID, err := formCardID(r)
	if err != nil {
		h.sendError(w, "invalid card id", http.StatusBadRequest)
		return
	}

	image, err := h.images.Upload(ctx, images.Upload{
		Body:         file,
		CardID:       cardID,
		OriginalName: header.Filename,
		ContentType:  header.Header.Get("Content-Type"),
	})
	if err != nil {
		h.sendImageError(w, r, "failed to upload image", err)
		return
	}

	h.sendData(w, api.UploadResponse{
		ImageURL:      image.URL(),
		ImageFilename: image.Filename,
		ContentType:   image.ContentType,
		Size:          image.Size,
	}, http.StatusCreated)
}

// Get обрабатывает GET /api/images/{filename}
func (h *ImageHandler) Get(w http.ResponseWriter, r *http.Request) {
	filename := r.PathValue("filename")
	if !images.IsImageFilename(filename) {
		h.sendError(w, "image not found", http.StatusNotFound)
		return
	}

	content, err := h.images.Open(r.Context(), filename)
	if err != nil {
		h.sendImageError(w, r, "failed to open image", err)
		return
	}
	defer content.Body.Close()

	etag := `"` + content.Image.ETag + `"`
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", images.CacheControl)

	if match := r.Header.Get("If-None-Match"); match != "" && content.Image.ETag != "" && etagMatches(match, etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", content.Image.ContentType)
	if content.Image.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(content.Image.Size, 10))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, content.Body); err != nil {
		h.logger.WarnContext(r.Context(), "failed to write image",
			slog.String("filename", filename),
			slog.Any("error", err))
	}
}

// List обрабатывает GET /api/images
func (h *ImageHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r.URL.Query().Get("limit"))
	if err != nil {
		h.sendError(w, "invalid limit", http.StatusBadRequest)
		return
	}

	list, err := h.images.List(r.Context(), limit)
	if err != nil {
		h.sendInternalError(w, r, "failed to list images", err)
		return
	}

	infos := make([]api.ImageInfo, 0, len(list))
	for _, img := range list {
		infos = append(infos, api.NewImageInfo(img))
	}

	h.sendList(w, infos, int64(len(infos)), nil)
}

// Delete обрабатывает DELETE /api/images/{filename}
func (h *ImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	filename := r.PathValue("filename")
	if !images.IsImageFilename(filename) {
		h.sendError(w, "image not found", http.StatusNotFound)
		return
	}

	if err := h.images.Delete(r.Context(), filename); err != nil {
		h.sendImageError(w, r, "failed to delete image", err)
		return
	}

	h.sendJSON(w, api.Response{Success: true}, http.StatusOK)
}

// formFile читает файл из поля image multipart формы
func (h responder) formFile(w http.ResponseWriter, r *http.Request, limit int64) (multipart.File, *multipart.FileHeader, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, limit+multipartOverhead)

	file, header, err := r.FormFile("image")
	if err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			h.sendError(w, "image is too large", http.StatusRequestEntityTooLarge)
		case errors.Is(err, http.ErrMissingFile):
			h.sendError(w, "image file is required", http.StatusBadRequest)
		default:
			h.logger.WarnContext(r.Context(), "failed to read multipart form", slog.Any("error", err))
			h.sendError(w, "invalid multipart form", http.StatusBadRequest)
		}
		return nil, nil, false
	}
	return file, header, true
}

// formCardID читает необязательный card_id (или businessCardId)
func formCardID(r *http.Request) (*int64, error) {
	v := strings.TrimSpace(r.FormValue("card_id"))
	if v == "" {
		v = strings.TrimSpace(r.FormValue("businessCardId"))
	}
	if v == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return nil, errors.New("invalid card id")
	}
	return &id, nil
}

func etagMatches(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

func (h *ImageHandler) sendImageError(w http.ResponseWriter, r *http.Request, message string, err error) {
	var maxErr *http.MaxBytesError
	switch {
	case errors.Is(err, images.ErrTooLarge), errors.As(err, &maxErr):
		h.sendError(w, "image is too large", http.StatusRequestEntityTooLarge)
	case errors.Is(err, images.ErrUnsupportedType):
		h.sendError(w, "unsupported image type", http.StatusUnsupportedMediaType)
	case errors.Is(err, images.ErrEmpty):
		h.sendError(w, "image is empty", http.StatusBadRequest)
	case errors.Is(err, storage.ErrCardNotFound):
		h.sendError(w, "card not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrImageNotFound):
		h.sendError(w, "image not found", http.StatusNotFound)
	default:
		h.sendInternalError(w, r, message, err)
	}
}
