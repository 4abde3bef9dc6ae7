package domain

import "strings"

// User represents a store account row. Only identity resolution is in scope:
// the role and display name are handed to the presentation layer as-is.
type User struct {
	Login        string `json:"login" db:"login"`
	PasswordHash string `json:"-" db:"password"`
	Role         string `json:"role" db:"role"`
	LastName     string `json:"last_name" db:"last_name"`
	FirstName    string `json:"first_name" db:"first_name"`
	MiddleName   string `json:"middle_name" db:"middle_name"`
}

// DisplayName renders "Last First Middle", skipping empty parts.
func (u *User) DisplayName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{u.LastName, u.FirstName, u.MiddleName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
