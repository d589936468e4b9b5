package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
)

var _ ICategoryTable = (*CategoriesTable)(nil)

type CategoriesTable struct {
	db Queryer
}

func NewCategoriesTable(db Queryer) *CategoriesTable {
	return &CategoriesTable{db: db}
}

// Insert creates a new category and returns its generated ID.
func (t *CategoriesTable) Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error) {
	const query = `
		INSERT INTO categories (user_id, name, category_type, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id uuid.UUID
	err := t.db.QueryRowContext(ctx, query,
		create.UserID,
		create.Name,
		string(create.Type),
		create.Description,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// FindByID retrieves a category by primary key. Returns (nil, nil) when absent.
func (t *CategoriesTable) FindByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	const query = `
		SELECT id, user_id, name, category_type, description, created_at
		FROM categories
		WHERE id = $1`

	var category Category
	var categoryType string
	var description sql.NullString
	err := t.db.QueryRowContext(ctx, query, id).Scan(
		&category.ID,
		&category.UserID,
		&category.Name,
		&categoryType,
		&description,
		&category.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	category.Type = TransactionType(categoryType)
	category.Description = description.String
	return &category, nil
}

// ListForUser returns the user's categories ordered by name.
func (t *CategoriesTable) ListForUser(ctx context.Context, userID uuid.UUID) ([]*Category, error) {
	const query = `
		SELECT id, user_id, name, category_type, description, created_at
		FROM categories
		WHERE user_id = $1
		ORDER BY name ASC`

	rows, err := t.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		var category Category
		var categoryType string
		var description sql.NullString
		if err := rows.Scan(
			&category.ID,
			&category.UserID,
			&category.Name,
			&categoryType,
			&description,
			&category.CreatedAt,
		); err != nil {
			return nil, err
		}
		category.Type = TransactionType(categoryType)
		category.Description = description.String
		categories = append(categories, &category)
	}
	return categories, rows.Err()
}

// Update changes a category's name and description.
func (t *CategoriesTable) Update(ctx context.Context, id uuid.UUID, update *CategoryUpdate) error {
	const query = `
		UPDATE categories
		SET name = $2, description = $3
		WHERE id = $1`

	_, err := t.db.ExecContext(ctx, query, id, update.Name, update.Description)
	return err
}

// Delete removes a category. Transactions referencing it keep a dangling
// reference (category_id set NULL by the schema), which the analytics engine
// reports under the "Uncategorized" sentinel.
func (t *CategoriesTable) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM categories WHERE id = $1`

	_, err := t.db.ExecContext(ctx, query, id)
	return err
}
