package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
)

var _ IUserTable = (*UsersTable)(nil)

type UsersTable struct {
	db Queryer
}

func NewUsersTable(db Queryer) *UsersTable {
	return &UsersTable{db: db}
}

// Insert creates a new user and returns its generated ID.
func (t *UsersTable) Insert(ctx context.Context, create *UserCreate) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (first_name, last_name, email, hashed_password)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id uuid.UUID
	err := t.db.QueryRowContext(ctx, query,
		create.FirstName,
		create.LastName,
		create.Email,
		create.HashedPassword,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// FindByID retrieves a user by primary key. Returns (nil, nil) when absent.
func (t *UsersTable) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	const query = `
		SELECT id, first_name, last_name, email, hashed_password, is_active, created_at
		FROM users
		WHERE id = $1`

	return scanUser(t.db.QueryRowContext(ctx, query, id))
}

// FindByEmail retrieves a user by email. Returns (nil, nil) when absent.
func (t *UsersTable) FindByEmail(ctx context.Context, email string) (*User, error) {
	const query = `
		SELECT id, first_name, last_name, email, hashed_password, is_active, created_at
		FROM users
		WHERE email = $1`

	return scanUser(t.db.QueryRowContext(ctx, query, email))
}

func scanUser(row *sql.Row) (*User, error) {
	var user User
	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.HashedPassword,
		&user.IsActive,
		&user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
