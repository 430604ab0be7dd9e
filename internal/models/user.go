package models

import (
	"regexp"
	"strings"
	"time"
)

// Role is the closed set of authorization roles
type Role string

// Role constants
const (
	RoleAdmin       Role = "Admin"
	RoleContributor Role = "Contributor"
	RoleViewer      Role = "Viewer"
)

// Valid reports whether the role belongs to the closed set
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleContributor, RoleViewer:
		return true
	}
	return false
}

// User represents a user in the system
type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize password hash
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasRole checks if the user has any of the given roles
func (u *User) HasRole(roles ...Role) bool {
	for _, role := range roles {
		if u.Role == role {
			return true
		}
	}
	return false
}

// emailRegex validates email format
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// passwordLetterRegex and passwordDigitRegex validate password strength:
// at least 8 characters, one letter and one digit
var (
	passwordLetterRegex = regexp.MustCompile(`[A-Za-z]`)
	passwordDigitRegex  = regexp.MustCompile(`[0-9]`)
)

// NormalizeEmail lower-cases and trims an email address
func NormalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

// ValidateEmail checks the normalized email against the standard email shape
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return NewValidationError("email", "invalid email format")
	}
	return nil
}

// ValidatePassword checks the minimum-strength policy
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return NewValidationError("password", "password must be at least 8 characters long")
	}
	if !passwordLetterRegex.MatchString(password) {
		return NewValidationError("password", "password must contain at least one letter")
	}
	if !passwordDigitRegex.MatchString(password) {
		return NewValidationError("password", "password must contain at least one number")
	}
	return nil
}

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the registration payload and normalizes the email in place
func (r *RegisterRequest) Validate() error {
	r.Email = NormalizeEmail(r.Email)
	if r.Email == "" {
		return NewValidationError("email", "email is required")
	}
	if err := ValidateEmail(r.Email); err != nil {
		return err
	}
	if r.Password == "" {
		return NewValidationError("password", "password is required")
	}
	return ValidatePassword(r.Password)
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember,omitempty"`
}

// Validate checks the login payload and normalizes the email in place
func (r *LoginRequest) Validate() error {
	r.Email = NormalizeEmail(r.Email)
	if r.Email == "" {
		return NewValidationError("email", "email is required")
	}
	if r.Password == "" {
		return NewValidationError("password", "password is required")
	}
	return nil
}

// CreateUserRequest represents the administrative user creation payload
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role,omitempty"`
}

// Validate checks the payload; an empty role defaults to Viewer
func (r *CreateUserRequest) Validate() error {
	r.Email = NormalizeEmail(r.Email)
	if r.Email == "" {
		return NewValidationError("email", "email is required")
	}
	if err := ValidateEmail(r.Email); err != nil {
		return err
	}
	if r.Password == "" {
		return NewValidationError("password", "password is required")
	}
	if err := ValidatePassword(r.Password); err != nil {
		return err
	}
	if r.Role == "" {
		r.Role = RoleViewer
	}
	if !r.Role.Valid() {
		return NewValidationError("role", "role must be one of Admin, Contributor, Viewer")
	}
	return nil
}

// UpdateUserRequest represents the administrative user update payload.
// Nil fields are left unchanged.
type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *Role   `json:"role,omitempty"`
}

// Validate checks the provided fields and normalizes the email in place
func (r *UpdateUserRequest) Validate() error {
	if r.Email != nil {
		normalized := NormalizeEmail(*r.Email)
		if err := ValidateEmail(normalized); err != nil {
			return err
		}
		r.Email = &normalized
	}
	if r.Password != nil {
		if err := ValidatePassword(*r.Password); err != nil {
			return err
		}
	}
	if r.Role != nil && !r.Role.Valid() {
		return NewValidationError("role", "role must be one of Admin, Contributor, Viewer")
	}
	return nil
}
