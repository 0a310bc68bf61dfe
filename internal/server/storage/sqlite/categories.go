package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/cardkeeper/internal/models"
	"github.com/iudanet/cardkeeper/internal/server/storage"
)

// card_count считает карточки, связанные с категорией через card_categories
// (основная категория карточки всегда входит в набор связей)
const categorySelect = `
	SELECT c.id, c.name, c.color, c.description, c.created_at, c.updated_at,
	       (SELECT COUNT(*) FROM card_categories cc WHERE cc.category_id = c.id) AS card_count
	FROM categories c
`

// CreateCategory creates a new category
func (s *Storage) CreateCategory(ctx context.Context, category *models.Category) error {
	now := s.now().Unix()

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (name, color, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		category.Name,
		category.Color,
		category.Description,
		now,
		now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrCategoryExists
		}
		return fmt.Errorf("failed to insert category: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get category id: %w", err)
	}

	category.ID = id
	category.CreatedAt = unixToTime(now)
	category.UpdatedAt = category.CreatedAt
	category.CardCount = 0

	return nil
}

// GetCategory retrieves category by ID
func (s *Storage) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	category, err := scanCategory(s.db.QueryRowContext(ctx, categorySelect+` WHERE c.id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return category, nil
}

// UpdateCategory updates name, color and description
func (s *Storage) UpdateCategory(ctx context.Context, category *models.Category) error {
	now := s.now().Unix()

	result, err := s.db.ExecContext(ctx,
		`UPDATE categories SET name = ?, color = ?, description = ?, updated_at = ? WHERE id = ?`,
		category.Name,
		category.Color,
		category.Description,
		now,
		category.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrCategoryExists
		}
		return fmt.Errorf("failed to update category: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrCategoryNotFound
	}

	category.UpdatedAt = unixToTime(now)
	return nil
}

// DeleteCategory deletes category by ID unless cards still reference it
func (s *Storage) DeleteCategory(ctx context.Context, id int64) error {
	var inUse int64
	err := s.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM card_categories WHERE category_id = ?) +
			(SELECT COUNT(*) FROM business_cards WHERE category_id = ?)
	`, id, id).Scan(&inUse)
	if err != nil {
		return fmt.Errorf("failed to count category usage: %w", err)
	}
	if inUse > 0 {
		return storage.ErrCategoryInUse
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrCategoryNotFound
	}

	return nil
}

// ListCategories returns all categories ordered by name
func (s *Storage) ListCategories(ctx context.Context) ([]*models.Category, error) {
	rows, err := s.db.QueryContext(ctx, categorySelect+` ORDER BY c.name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	categories := make([]*models.Category, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return categories, nil
}

func scanCategory(row rowScanner) (*models.Category, error) {
	category := &models.Category{}
	var createdAt, updatedAt int64

	if err := row.Scan(
		&category.ID,
		&category.Name,
		&category.Color,
		&category.Description,
		&createdAt,
		&updatedAt,
		&category.CardCount,
	); err != nil {
		return nil, err
	}

	category.CreatedAt = unixToTime(createdAt)
	category.UpdatedAt = unixToTime(updatedAt)

	return category, nil
}

// isUniqueViolation проверяет нарушение UNIQUE constraint
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
