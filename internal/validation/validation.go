// Package validation проверяет данные карточек и категорий перед записью.
package validation

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/iudanet/cardkeeper/internal/models"
)

// ErrInvalid оборачивает все ошибки валидации
var ErrInvalid = errors.New("invalid input")

// EmailPattern упрощенная проверка адреса электронной почты
var EmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ColorPattern цвет категории в формате #RRGGBB
var ColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

const (
	// MaxFieldLen максимальная длина текстового поля карточки
	MaxFieldLen = 255
	// MaxNotesLen максимальная длина заметок
	MaxNotesLen = 2000
	// MaxCategoryNameLen максимальная длина названия категории
	MaxCategoryNameLen = 50
	// MaxDescriptionLen максимальная длина описания категории
	MaxDescriptionLen = 500
)

// ValidateCard проверяет карточку: имя и компания обязательны,
// длина полей ограничена, email и сайт должны быть корректными
func ValidateCard(c *models.Card) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if strings.TrimSpace(c.Company) == "" {
		return fmt.Errorf("%w: company is required", ErrInvalid)
	}

	fields := []struct {
		name  string
		value string
	}{
		{"name", c.Name},
		{"name_kana", c.NameKana},
		{"company", c.Company},
		{"department", c.Department},
		{"position", c.Position},
		{"email", c.Email},
		{"phone", c.Phone},
		{"mobile", c.Mobile},
		{"fax", c.Fax},
		{"postal_code", c.PostalCode},
		{"address", c.Address},
		{"website", c.Website},
	}
	for _, f := range fields {
		if utf8.RuneCountInString(f.value) > MaxFieldLen {
			return fmt.Errorf("%w: %s must not exceed %d characters", ErrInvalid, f.name, MaxFieldLen)
		}
	}
	if utf8.RuneCountInString(c.Notes) > MaxNotesLen {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalid, MaxNotesLen)
	}

	if c.Email != "" && !EmailPattern.MatchString(c.Email) {
		return fmt.Errorf("%w: email has invalid format", ErrInvalid)
	}

	if c.Website != "" {
		if err := validateWebsite(c.Website); err != nil {
			return err
		}
	}

	if c.CategoryID != nil && *c.CategoryID <= 0 {
		return fmt.Errorf("%w: category_id must be positive", ErrInvalid)
	}

	return nil
}

// validateWebsite принимает http(s) URL или адрес без схемы (www.example.com)
func validateWebsite(website string) error {
	if strings.ContainsAny(website, " \t\n") {
		return fmt.Errorf("%w: website must not contain spaces", ErrInvalid)
	}
	if !strings.Contains(website, "://") {
		website = "https://" + website
	}

	u, err := url.Parse(website)
	if err != nil {
		return fmt.Errorf("%w: website is not a valid URL", ErrInvalid)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: website must use http or https", ErrInvalid)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: website has no host", ErrInvalid)
	}
	return nil
}

// ValidateCategory проверяет название, цвет и описание категории.
// Пустой цвет допустим: NormalizeColor подставит цвет по умолчанию
func ValidateCategory(c *models.Category) error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return fmt.Errorf("%w: category name is required", ErrInvalid)
	}
	if utf8.RuneCountInString(name) > MaxCategoryNameLen {
		return fmt.Errorf("%w: category name must not exceed %d characters", ErrInvalid, MaxCategoryNameLen)
	}
	if c.Color != "" && !ColorPattern.MatchString(c.Color) {
		return fmt.Errorf("%w: color must be in #RRGGBB format", ErrInvalid)
	}
	if utf8.RuneCountInString(c.Description) > MaxDescriptionLen {
		return fmt.Errorf("%w: description must not exceed %d characters", ErrInvalid, MaxDescriptionLen)
	}
	return nil
}

// NormalizeColor возвращает цвет в верхнем регистре или цвет по умолчанию
func NormalizeColor(color string) string {
	color = strings.TrimSpace(color)
	if color == "" || !ColorPattern.MatchString(color) {
		return models.DefaultCategoryColor
	}
	return strings.ToUpper(color)
}

// NormalizeCard обрезает пробелы вокруг всех текстовых полей
func NormalizeCard(c *models.Card) {
	for _, p := range []*string{
		&c.Name, &c.NameKana, &c.Company, &c.Department, &c.Position,
		&c.Email, &c.Phone, &c.Mobile, &c.Fax, &c.PostalCode,
		&c.Address, &c.Website, &c.Notes,
	} {
		*p = strings.TrimSpace(*p)
	}
}
