package auth

import (
	"context"
	"errors"
	"testing"

	"footwear-store/internal/domain"
	"footwear-store/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Mock user repository for testing
type mockUserRepository struct {
	users map[string]*domain.User
}

func (m *mockUserRepository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	user, ok := m.users[login]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func TestAuthenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	repo := &mockUserRepository{users: map[string]*domain.User{
		"ivanova": {
			Login:        "ivanova",
			PasswordHash: string(hash),
			Role:         RoleAdministrator,
			LastName:     "Ivanova",
			FirstName:    "Anna",
			MiddleName:   "Petrovna",
		},
	}}
	svc := NewService(repo)
	ctx := context.Background()

	user, err := svc.Authenticate(ctx, "ivanova", "correct horse")
	if err != nil {
		t.Fatalf("expected successful login, got %v", err)
	}
	if user.Role != RoleAdministrator {
		t.Errorf("expected administrator role, got %s", user.Role)
	}
	if got := user.DisplayName(); got != "Ivanova Anna Petrovna" {
		t.Errorf("unexpected display name %q", got)
	}

	if _, err := svc.Authenticate(ctx, "ivanova", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate(ctx, "nobody", "correct horse"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown login: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestCapabilitiesFor(t *testing.T) {
	cases := []struct {
		role string
		want Capabilities
	}{
		{RoleAdministrator, Capabilities{CanCreate: true, CanEdit: true, CanDelete: true}},
		{RoleManager, Capabilities{}},
		{RoleClient, Capabilities{}},
		{RoleGuest, Capabilities{}},
		{"something else", Capabilities{}},
	}

	for _, tc := range cases {
		if got := CapabilitiesFor(tc.role); got != tc.want {
			t.Errorf("role %s: expected %+v, got %+v", tc.role, tc.want, got)
		}
	}
}
