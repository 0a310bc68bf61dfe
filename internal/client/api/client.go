// Package api HTTP клиент API визиток.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/cardkeeper/internal/models"
	"github.com/iudanet/cardkeeper/pkg/api"
)

// scanTimeout распознавание занимает заметно дольше обычного запроса
const (
	defaultTimeout = 30 * time.Second
	scanTimeout    = 2 * time.Minute
)

// Error ответ сервера с кодом вне 2xx
type Error struct {
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// IsStatus сообщает, что err ответ сервера с кодом code
func IsStatus(err error, code int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// CardQuery параметры списка карточек
type CardQuery struct {
	Query      string
	Category   string
	CategoryID int64
	Page       int
	Limit      int
}

func (q CardQuery) values() url.Values {
	v := url.Values{}
	if q.Query != "" {
		v.Set("q", q.Query)
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.CategoryID > 0 {
		v.Set("category_id", strconv.FormatInt(q.CategoryID, 10))
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v
}

// envelope api.Response с отложенным декодированием data
type envelope struct {
	Data       json.RawMessage `json:"data"`
	Pagination *api.Pagination `json:"pagination"`
	Error      string          `json:"error"`
	Success    bool            `json:"success"`
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// BaseURL адрес сервера
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetToken задает Bearer токен для последующих запросов
func (c *Client) SetToken(token string) {
	c.token = token
}

// Health получает состояние сервера
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var resp api.HealthResponse
	if _, err := c.doJSON(ctx, http.MethodGet, "/api/health", nil, &resp); err != nil {
		return nil, fmt.Errorf("health request failed: %w", err)
	}
	return &resp, nil
}

// Token обменивает API ключ на access token
func (c *Client) Token(ctx context.Context, req api.TokenRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if _, err := c.doJSON(ctx, http.MethodPost, "/api/auth/token", req, &resp); err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	return &resp, nil
}

// ListCards возвращает страницу карточек
func (c *Client) ListCards(ctx context.Context, q CardQuery) ([]api.Card, *api.Pagination, error) {
	path := "/api/business-cards"
	if v := q.values(); len(v) > 0 {
		path += "?" + v.Encode()
	}

	var cards []api.Card
	env, err := c.doJSON(ctx, http.MethodGet, path, nil, &cards)
	if err != nil {
		return nil, nil, fmt.Errorf("list cards request failed: %w", err)
	}
	return cards, env.Pagination, nil
}

// GetCard получает карточку по id
func (c *Client) GetCard(ctx context.Context, id int64) (*api.Card, error) {
	var card api.Card
	if _, err := c.doJSON(ctx, http.MethodGet, cardPath(id), nil, &card); err != nil {
		return nil, fmt.Errorf("get card request failed: %w", err)
	}
	return &card, nil
}

// CreateCard создает карточку
func (c *Client) CreateCard(ctx context.Context, req *api.CardRequest) (*api.Card, error) {
	var card api.Card
	if _, err := c.doJSON(ctx, http.MethodPost, "/api/business-cards", req, &card); err != nil {
		return nil, fmt.Errorf("create card request failed: %w", err)
	}
	return &card, nil
}

// UpdateCard меняет переданные в req поля карточки
func (c *Client) UpdateCard(ctx context.Context, id int64, req *api.CardRequest) (*api.Card, error) {
	var card api.Card
	if _, err := c.doJSON(ctx, http.MethodPut, cardPath(id), req, &card); err != nil {
		return nil, fmt.Errorf("update card request failed: %w", err)
	}
	return &card, nil
}

// DeleteCard удаляет карточку
func (c *Client) DeleteCard(ctx context.Context, id int64) error {
	if _, err := c.doJSON(ctx, http.MethodDelete, cardPath(id), nil, nil); err != nil {
		return fmt.Errorf("delete card request failed: %w", err)
	}
	return nil
}

// ListCategories возвращает все категории
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if _, err := c.doJSON(ctx, http.MethodGet, "/api/categories", nil, &categories); err != nil {
		return nil, fmt.Errorf("list categories request failed: %w", err)
	}
	return categories, nil
}

// CreateCategory создает категорию
func (c *Client) CreateCategory(ctx context.Context, req api.CategoryRequest) (*models.Category, error) {
	var category models.Category
	if _, err := c.doJSON(ctx, http.MethodPost, "/api/categories", req, &category); err != nil {
		return nil, fmt.Errorf("create category request failed: %w", err)
	}
	return &category, nil
}

// DeleteCategory удаляет категорию; занятая карточками категория дает 409
func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	if _, err := c.doJSON(ctx, http.MethodDelete, "/api/categories/"+strconv.FormatInt(id, 10), nil, nil); err != nil {
		return fmt.Errorf("delete category request failed: %w", err)
	}
	return nil
}

// UploadImage загружает изображение и привязывает его к карточке cardID (0 без привязки)
func (c *Client) UploadImage(ctx context.Context, cardID int64, filename string, r io.Reader) (*api.UploadResponse, error) {
	fields := map[string]string{}
	if cardID > 0 {
		fields["card_id"] = strconv.FormatInt(cardID, 10)
	}

	var resp api.UploadResponse
	if err := c.doMultipart(ctx, "/api/images/upload", filename, r, fields, defaultTimeout, &resp); err != nil {
		return nil, fmt.Errorf("upload request failed: %w", err)
	}
	return &resp, nil
}

// Scan распознает фото визитки
func (c *Client) Scan(ctx context.Context, filename string, r io.Reader) (*api.ScanReport, error) {
	var report api.ScanReport
	if err := c.doMultipart(ctx, "/api/scan", filename, r, nil, scanTimeout, &report); err != nil {
		return nil, fmt.Errorf("scan request failed: %w", err)
	}
	return &report, nil
}

func cardPath(id int64) string {
	return "/api/business-cards/" + strconv.FormatInt(id, 10)
}

// doJSON выполняет запрос с JSON телом
func (c *Client) doJSON(ctx context.Context, method, path string, body, result any) (*envelope, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, c.httpClient, result)
}

// doMultipart отправляет файл в поле image
func (c *Client) doMultipart(ctx context.Context, path, filename string, r io.Reader, fields map[string]string, timeout time.Duration, result any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return fmt.Errorf("failed to write form field: %w", err)
		}
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filepath.Base(filename)))
	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := mw.CreatePart(header)
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("failed to finish form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	httpClient := *c.httpClient
	httpClient.Timeout = timeout

	_, err = c.do(req, &httpClient, result)
	return err
}

// do отправляет запрос и разбирает конверт ответа
func (c *Client) do(req *http.Request, httpClient *http.Client, result any) (*envelope, error) {
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var env envelope
	decodeErr := json.Unmarshal(respBody, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := env.Error
		if decodeErr != nil || msg == "" {
			msg = strings.TrimSpace(string(respBody))
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &Error{StatusCode: resp.StatusCode, Message: msg}
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("failed to decode response: %w", decodeErr)
	}

	if result != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, result); err != nil {
			return nil, fmt.Errorf("failed to decode response data: %w", err)
		}
	}

	return &env, nil
}
