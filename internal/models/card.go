package models

import "time"

// DefaultRegisteredBy is stored when a card is created without an authenticated caller.
const DefaultRegisteredBy = "anonymous"

// Card представляет визитную карточку (контакт).
// Name и Company обязательны, остальные поля опциональны.
type Card struct {
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	CategoryID    *int64     `json:"category_id"`    // CategoryID основная категория (может быть nil)
	Name          string     `json:"name"`           // Name имя контакта
	NameKana      string     `json:"name_kana"`      // NameKana чтение имени (фуригана)
	Company       string     `json:"company"`        // Company название компании
	Department    string     `json:"department"`     // Department отдел
	Position      string     `json:"position"`       // Position должность
	Email         string     `json:"email"`          // Email адрес электронной почты
	Phone         string     `json:"phone"`          // Phone рабочий телефон
	Mobile        string     `json:"mobile"`         // Mobile мобильный телефон
	Fax           string     `json:"fax"`            // Fax номер факса
	PostalCode    string     `json:"postal_code"`    // PostalCode почтовый индекс
	Address       string     `json:"address"`        // Address адрес
	Website       string     `json:"website"`        // Website сайт компании
	Notes         string     `json:"notes"`          // Notes заметки пользователя
	ImageFilename string     `json:"image_filename"` // ImageFilename имя файла изображения визитки
	RegisteredBy  string     `json:"registered_by"`  // RegisteredBy кто добавил карточку
	Categories    []Category `json:"categories"`     // Categories все связанные категории
	ID            int64      `json:"id"`
}

// ImageURL returns the public URL of the card image or an empty string.
func (c *Card) ImageURL() string {
	if c.ImageFilename == "" {
		return ""
	}
	return ImageURLPrefix + c.ImageFilename
}

// CardFilter описывает параметры поиска и пагинации списка карточек.
type CardFilter struct {
	CategoryID   *int64
	Query        string // Query ищет по имени, чтению, компании и email
	Company      string
	Name         string
	CategoryName string
	Limit        int
	Offset       int
}

const (
	// DefaultPageSize размер страницы по умолчанию
	DefaultPageSize = 20
	// MaxPageSize максимальный размер страницы
	MaxPageSize = 100
)

// Normalize clamps Limit and Offset to sane values.
func (f *CardFilter) Normalize() {
	if f.Limit <= 0 {
		f.Limit = DefaultPageSize
	}
	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
