package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/commercekit/commerce-api/internal/core/domain"
	"github.com/commercekit/commerce-api/internal/pkg/dbx"
)

const userColumns = "id, name, email, password, role, created_at, updated_at"

// UserRepository persists accounts. The password column stores the bcrypt
// hash, never the plaintext.
type UserRepository struct {
	db dbx.DBTX
}

func NewUserRepository(db dbx.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

// Create inserts the account. The unique-email conflict signal from the
// server maps to domain.ErrDuplicateEmail instead of a raw driver error.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `INSERT INTO users (name, email, password, role)
	          VALUES ($1, $2, $3, $4)
	          RETURNING ` + userColumns

	created, err := scanUser(r.db.QueryRowContext(ctx, query, user.Name, user.Email, user.PasswordHash, user.Role))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *UserRepository) UpdateEmail(ctx context.Context, id int64, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `UPDATE users SET email = $1, updated_at = CURRENT_TIMESTAMP
	          WHERE id = $2 RETURNING ` + userColumns

	updated, err := scanUser(r.db.QueryRowContext(ctx, query, email, id))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, err
	}
	return updated, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `UPDATE users SET password = $1, updated_at = CURRENT_TIMESTAMP
	          WHERE id = $2 RETURNING ` + userColumns
	return scanUser(r.db.QueryRowContext(ctx, query, passwordHash, id))
}

func (r *UserRepository) UpdateName(ctx context.Context, id int64, name string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `UPDATE users SET name = $1, updated_at = CURRENT_TIMESTAMP
	          WHERE id = $2 RETURNING ` + userColumns
	return scanUser(r.db.QueryRowContext(ctx, query, name, id))
}

func (r *UserRepository) Delete(ctx context.Context, id int64) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `DELETE FROM users WHERE id = $1 RETURNING ` + userColumns
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}
