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

const cardColumns = `
	bc.id, bc.name, bc.name_kana, bc.company, bc.department, bc.position,
	bc.email, bc.phone, bc.mobile, bc.fax, bc.postal_code, bc.address,
	bc.website, bc.notes, bc.category_id, bc.image_filename, bc.registered_by,
	bc.created_at, bc.updated_at
`

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// CreateCard inserts a new card and its category links
func (s *Storage) CreateCard(ctx context.Context, card *models.Card) error {
	now := s.now()
	if card.RegisteredBy == "" {
		card.RegisteredBy = models.DefaultRegisteredBy
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	linkIDs := categoryLinkIDs(card)
	if err := ensureCategoriesExist(ctx, tx, linkIDs); err != nil {
		return err
	}

	query := `
		INSERT INTO business_cards (
			name, name_kana, company, department, position,
			email, phone, mobile, fax, postal_code, address,
			website, notes, category_id, image_filename, registered_by,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		card.Name,
		card.NameKana,
		card.Company,
		card.Department,
		card.Position,
		card.Email,
		card.Phone,
		card.Mobile,
		card.Fax,
		card.PostalCode,
		card.Address,
		card.Website,
		card.Notes,
		nullInt64(card.CategoryID),
		card.ImageFilename,
		card.RegisteredBy,
		now.Unix(),
		now.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert card: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get card id: %w", err)
	}

	if err := replaceCategoryLinks(ctx, tx, id, linkIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit card: %w", err)
	}

	card.ID = id
	card.CreatedAt = unixToTime(now.Unix())
	card.UpdatedAt = card.CreatedAt
	return nil
}

// GetCard retrieves a card with its categories
func (s *Storage) GetCard(ctx context.Context, id int64) (*models.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM business_cards bc WHERE bc.id = ?`

	card, err := scanCard(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	if err := s.attachCategories(ctx, []*models.Card{card}); err != nil {
		return nil, err
	}

	return card, nil
}

// UpdateCard replaces editable fields of an existing card
func (s *Storage) UpdateCard(ctx context.Context, card *models.Card) error {
	now := s.now()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	linkIDs := categoryLinkIDs(card)
	if err := ensureCategoriesExist(ctx, tx, linkIDs); err != nil {
		return err
	}

	query := `
		UPDATE business_cards SET
			name = ?, name_kana = ?, company = ?, department = ?, position = ?,
			email = ?, phone = ?, mobile = ?, fax = ?, postal_code = ?,
			address = ?, website = ?, notes = ?, category_id = ?,
			image_filename = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := tx.ExecContext(ctx, query,
		card.Name,
		card.NameKana,
		card.Company,
		card.Department,
		card.Position,
		card.Email,
		card.Phone,
		card.Mobile,
		card.Fax,
		card.PostalCode,
		card.Address,
		card.Website,
		card.Notes,
		nullInt64(card.CategoryID),
		card.ImageFilename,
		now.Unix(),
		card.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update card: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrCardNotFound
	}

	if err := replaceCategoryLinks(ctx, tx, card.ID, linkIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit card update: %w", err)
	}

	card.UpdatedAt = unixToTime(now.Unix())
	return nil
}

// DeleteCard removes the card and its category links. Images of the card
// stay and lose their card_id
func (s *Storage) DeleteCard(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM card_categories WHERE card_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete card links: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE images SET card_id = NULL WHERE card_id = ?`, id); err != nil {
		return fmt.Errorf("failed to detach card images: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM business_cards WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrCardNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit card delete: %w", err)
	}

	return nil
}

// ListCards returns a page of cards matching the filter and the total count
func (s *Storage) ListCards(ctx context.Context, filter models.CardFilter) ([]*models.Card, int64, error) {
	filter.Normalize()

	where, args := buildCardFilter(filter)

	var total int64
	countQuery := `SELECT COUNT(*) FROM business_cards bc` + where
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count cards: %w", err)
	}

	query := `SELECT ` + cardColumns + ` FROM business_cards bc` + where +
		` ORDER BY bc.created_at DESC, bc.id DESC LIMIT ? OFFSET ?`
	pageArgs := append(append([]any{}, args...), filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query cards: %w", err)
	}
	defer func() { _ = rows.Close() }()

	cards := make([]*models.Card, 0, filter.Limit)
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}
	// Соединение одно: освобождаем его до следующего запроса
	_ = rows.Close()

	if err := s.attachCategories(ctx, cards); err != nil {
		return nil, 0, err
	}

	return cards, total, nil
}

// SetCardImage points the card at an uploaded image
func (s *Storage) SetCardImage(ctx context.Context, cardID int64, filename string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE business_cards SET image_filename = ?, updated_at = ? WHERE id = ?`,
		filename, s.now().Unix(), cardID,
	)
	if err != nil {
		return fmt.Errorf("failed to set card image: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrCardNotFound
	}

	return nil
}

// ClearImageReferences unsets image_filename on cards that reference filename
func (s *Storage) ClearImageReferences(ctx context.Context, filename string) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`UPDATE business_cards SET image_filename = '', updated_at = ? WHERE image_filename = ?`,
		s.now().Unix(), filename,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to clear image references: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows, nil
}

// attachCategories загружает категории для набора карточек одним запросом
func (s *Storage) attachCategories(ctx context.Context, cards []*models.Card) error {
	if len(cards) == 0 {
		return nil
	}

	byID := make(map[int64]*models.Card, len(cards))
	placeholders := make([]string, 0, len(cards))
	args := make([]any, 0, len(cards))
	for _, card := range cards {
		card.Categories = []models.Category{}
		byID[card.ID] = card
		placeholders = append(placeholders, "?")
		args = append(args, card.ID)
	}

	query := `
		SELECT cc.card_id, c.id, c.name, c.color, c.description, c.created_at, c.updated_at
		FROM card_categories cc
		JOIN categories c ON c.id = cc.category_id
		WHERE cc.card_id IN (` + strings.Join(placeholders, ",") + `)
		ORDER BY c.name
	`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to query card categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var cardID, createdAt, updatedAt int64
		var category models.Category
		if err := rows.Scan(
			&cardID,
			&category.ID,
			&category.Name,
			&category.Color,
			&category.Description,
			&createdAt,
			&updatedAt,
		); err != nil {
			return fmt.Errorf("failed to scan card category: %w", err)
		}
		category.CreatedAt = unixToTime(createdAt)
		category.UpdatedAt = unixToTime(updatedAt)

		if card, ok := byID[cardID]; ok {
			card.Categories = append(card.Categories, category)
		}
	}

	return rows.Err()
}

func scanCard(row rowScanner) (*models.Card, error) {
	card := &models.Card{}
	var categoryID sql.NullInt64
	var createdAt, updatedAt int64

	err := row.Scan(
		&card.ID,
		&card.Name,
		&card.NameKana,
		&card.Company,
		&card.Department,
		&card.Position,
		&card.Email,
		&card.Phone,
		&card.Mobile,
		&card.Fax,
		&card.PostalCode,
		&card.Address,
		&card.Website,
		&card.Notes,
		&categoryID,
		&card.ImageFilename,
		&card.RegisteredBy,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	card.CategoryID = int64Ptr(categoryID)
	card.CreatedAt = unixToTime(createdAt)
	card.UpdatedAt = unixToTime(updatedAt)

	return card, nil
}

// buildCardFilter собирает WHERE и аргументы для списка и подсчета
func buildCardFilter(filter models.CardFilter) (string, []any) {
	var conditions []string
	var args []any

	if q := strings.TrimSpace(filter.Query); q != "" {
		term := likePattern(q)
		conditions = append(conditions,
			`(bc.name LIKE ? ESCAPE '\' OR bc.name_kana LIKE ? ESCAPE '\' OR bc.company LIKE ? ESCAPE '\' OR bc.email LIKE ? ESCAPE '\')`)
		args = append(args, term, term, term, term)
	}

	if company := strings.TrimSpace(filter.Company); company != "" {
		conditions = append(conditions, `bc.company LIKE ? ESCAPE '\'`)
		args = append(args, likePattern(company))
	}

	if name := strings.TrimSpace(filter.Name); name != "" {
		conditions = append(conditions, `bc.name LIKE ? ESCAPE '\'`)
		args = append(args, likePattern(name))
	}

	if filter.CategoryID != nil {
		conditions = append(conditions,
			`EXISTS (SELECT 1 FROM card_categories cc WHERE cc.card_id = bc.id AND cc.category_id = ?)`)
		args = append(args, *filter.CategoryID)
	}

	if categoryName := strings.TrimSpace(filter.CategoryName); categoryName != "" {
		conditions = append(conditions, `EXISTS (
			SELECT 1 FROM card_categories cc JOIN categories c ON c.id = cc.category_id
			WHERE cc.card_id = bc.id AND c.name = ?)`)
		args = append(args, categoryName)
	}

	if len(conditions) == 0 {
		return "", args
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}

func likePattern(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(s) + "%"
}

// categoryLinkIDs возвращает уникальные ID категорий карточки, основная категория первой
func categoryLinkIDs(card *models.Card) []int64 {
	seen := make(map[int64]bool)
	var ids []int64

	if card.CategoryID != nil {
		seen[*card.CategoryID] = true
		ids = append(ids, *card.CategoryID)
	}
	for _, c := range card.Categories {
		if c.ID == 0 || seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		ids = append(ids, c.ID)
	}

	return ids
}

func ensureCategoriesExist(ctx context.Context, tx *sql.Tx, ids []int64) error {
	for _, id := range ids {
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM categories WHERE id = ?`, id).Scan(&exists)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("category %d: %w", id, storage.ErrCategoryNotFound)
			}
			return fmt.Errorf("failed to check category: %w", err)
		}
	}
	return nil
}

func replaceCategoryLinks(ctx context.Context, tx *sql.Tx, cardID int64, categoryIDs []int64) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM card_categories WHERE card_id = ?`, cardID); err != nil {
		return fmt.Errorf("failed to clear card links: %w", err)
	}

	for _, categoryID := range categoryIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO card_categories (card_id, category_id) VALUES (?, ?)`,
			cardID, categoryID,
		); err != nil {
			return fmt.Errorf("failed to link category: %w", err)
		}
	}

	return nil
}
