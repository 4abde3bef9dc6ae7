package auth

import (
	"context"
	"errors"
	"fmt"

	"footwear-store/internal/domain"
	"footwear-store/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid login or password")

// Store roles. Guest is implicit: it has no account row.
const (
	RoleGuest         = "guest"
	RoleClient        = "client"
	RoleManager       = "manager"
	RoleAdministrator = "administrator"
)

// Capabilities is the set of mutating catalog operations a role's window
// exposes. One presentation shell is parameterized with this instead of one
// window type per role.
type Capabilities struct {
	CanCreate bool
	CanEdit   bool
	CanDelete bool
}

// CapabilitiesFor maps a role onto its capability set. Unknown roles get no
// capabilities.
func CapabilitiesFor(role string) Capabilities {
	if role == RoleAdministrator {
		return Capabilities{CanCreate: true, CanEdit: true, CanDelete: true}
	}
	return Capabilities{}
}

// Service performs the single credential check this system needs: it resolves
// a login/password pair to an account's role and display name.
type Service struct {
	users repository.UserRepository
}

func NewService(users repository.UserRepository) *Service {
	return &Service{users: users}
}

// Authenticate verifies the password against the stored bcrypt hash and
// returns the account. A missing account and a wrong password are
// indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.users.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
