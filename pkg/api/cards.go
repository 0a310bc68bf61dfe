package api

import (
	"strings"

	"github.com/iudanet/cardkeeper/internal/models"
)

// Card карточка в ответах API
type Card struct {
	models.Card
	ImageURL string `json:"image_url,omitempty"`
}

// NewCard добавляет к карточке производные поля
func NewCard(c *models.Card) Card {
	return Card{Card: *c, ImageURL: c.ImageURL()}
}

// NewCards конвертирует список карточек
func NewCards(cards []*models.Card) []Card {
	out := make([]Card, 0, len(cards))
	for _, c := range cards {
		out = append(out, NewCard(c))
	}
	return out
}

// CardRequest тело POST/PUT запроса карточки.
// Поля-указатели позволяют при обновлении менять только переданные значения
type CardRequest struct {
	Name          *string `json:"name,omitempty"`
	NameKana      *string `json:"name_kana,omitempty"`
	Company       *string `json:"company,omitempty"`
	Department    *string `json:"department,omitempty"`
	Position      *string `json:"position,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Mobile        *string `json:"mobile,omitempty"`
	Fax           *string `json:"fax,omitempty"`
	PostalCode    *string `json:"postal_code,omitempty"`
	Address       *string `json:"address,omitempty"`
	Website       *string `json:"website,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	ImageFilename *string `json:"image_filename,omitempty"`
	CategoryID    *int64  `json:"category_id,omitempty"`
	CategoryIDs   []int64 `json:"category_ids,omitempty"`
	// ClearCategory снимает основную категорию при обновлении
	ClearCategory bool `json:"clear_category,omitempty"`
}

// Apply переносит переданные поля в карточку
func (r *CardRequest) Apply(c *models.Card) {
	for _, f := range []struct {
		src *string
		dst *string
	}{
		{r.Name, &c.Name},
		{r.NameKana, &c.NameKana},
		{r.Company, &c.Company},
		{r.Department, &c.Department},
		{r.Position, &c.Position},
		{r.Email, &c.Email},
		{r.Phone, &c.Phone},
		{r.Mobile, &c.Mobile},
		{r.Fax, &c.Fax},
		{r.PostalCode, &c.PostalCode},
		{r.Address, &c.Address},
		{r.Website, &c.Website},
		{r.Notes, &c.Notes},
		{r.ImageFilename, &c.ImageFilename},
	} {
		if f.src != nil {
			*f.dst = *f.src
		}
	}

	if r.ClearCategory {
		c.CategoryID = nil
	}
	if r.CategoryID != nil {
		id := *r.CategoryID
		c.CategoryID = &id
	}
	if r.CategoryIDs != nil {
		c.Categories = make([]models.Category, 0, len(r.CategoryIDs))
		for _, id := range r.CategoryIDs {
			c.Categories = append(c.Categories, models.Category{ID: id})
		}
	}
}

// ToCard создает новую карточку из запроса
func (r *CardRequest) ToCard() *models.Card {
	c := &models.Card{}
	r.Apply(c)
	return c
}

// CardRequestFrom заполняет запрос всеми непустыми полями карточки
func CardRequestFrom(c *models.Card) *CardRequest {
	str := func(s string) *string {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		return &s
	}
	r := &CardRequest{
		Name:       str(c.Name),
		NameKana:   str(c.NameKana),
		Company:    str(c.Company),
		Department: str(c.Department),
		Position:   str(c.Position),
		Email:      str(c.Email),
		Phone:      str(c.Phone),
		Mobile:     str(c.Mobile),
		Fax:        str(c.Fax),
		PostalCode: str(c.PostalCode),
		Address:    str(c.Address),
		Website:    str(c.Website),
		Notes:      str(c.Notes),
		CategoryID: c.CategoryID,
	}
	return r
}

// CategoryRequest тело POST/PUT запроса категории
type CategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Color       *string `json:"color,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Apply переносит переданные поля в категорию
func (r *CategoryRequest) Apply(c *models.Category) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Color != nil {
		c.Color = *r.Color
	}
	if r.Description != nil {
		c.Description = *r.Description
	}
}

// ImageInfo изображение в ответах API
type ImageInfo struct {
	models.Image
	URL string `json:"url"`
}

// NewImageInfo добавляет к изображению URL
func NewImageInfo(img *models.Image) ImageInfo {
	return ImageInfo{Image: *img, URL: img.URL()}
}

// UploadResponse ответ на загрузку изображения
type UploadResponse struct {
	ImageURL      string `json:"image_url"`
	ImageFilename string `json:"image_filename"`
	ContentType   string `json:"content_type"`
	Size          int64  `json:"size"`
}
