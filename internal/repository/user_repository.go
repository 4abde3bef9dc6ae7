package repository

import (
	"context"
	"database/sql"

	"footwear-store/internal/domain"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// FindByLogin retrieves a user by login using parameterized queries
func (r *userRepository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := `
		SELECT login, password, role, last_name, first_name, middle_name
		FROM users
		WHERE login = $1
	`

	user := &domain.User{}
	err := r.db.QueryRowContext(ctx, query, login).Scan(
		&user.Login,
		&user.PasswordHash,
		&user.Role,
		&user.LastName,
		&user.FirstName,
		&user.MiddleName,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, classify("failed to find user by login", err)
	}

	return user, nil
}
