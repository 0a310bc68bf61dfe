package models

import "time"

// DefaultCategoryColor цвет категории, если он не указан
const DefaultCategoryColor = "#3B82F6"

// Category представляет пользовательскую категорию (тег) для карточек.
type Category struct {
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `json:"name"`        // Name уникальное название
	Color       string    `json:"color"`       // Color цвет в формате #RRGGBB
	Description string    `json:"description"` // Description опциональное описание
	ID          int64     `json:"id"`
	CardCount   int64     `json:"card_count"` // CardCount количество карточек с этой категорией
}
