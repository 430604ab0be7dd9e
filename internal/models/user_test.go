package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleContributor.Valid())
	assert.True(t, RoleViewer.Valid())
	assert.False(t, Role("SuperAdmin").Valid())
	assert.False(t, Role("admin").Valid()) // roles are case-sensitive
	assert.False(t, Role("").Valid())
}

func TestUser_HasRole(t *testing.T) {
	user := &User{Role: RoleContributor}

	assert.True(t, user.HasRole(RoleContributor))
	assert.True(t, user.HasRole(RoleContributor, RoleAdmin))
	assert.False(t, user.HasRole(RoleAdmin))
	assert.False(t, user.HasRole())
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.COM  "))
	assert.Equal(t, "user@example.com", NormalizeEmail("user@example.com"))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid password", password: "password1", wantErr: false},
		{name: "too short", password: "pass1", wantErr: true},
		{name: "no digit", password: "passwords", wantErr: true},
		{name: "no letter", password: "12345678", wantErr: true},
		{name: "exactly eight with letter and digit", password: "abcdefg1", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)

			if tt.wantErr {
				var valErr *ValidationError
				assert.ErrorAs(t, err, &valErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegisterRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr string
	}{
		{
			name: "valid",
			req:  RegisterRequest{Email: "user@example.com", Password: "password1"},
		},
		{
			name: "email normalized in place",
			req:  RegisterRequest{Email: "  User@Example.COM ", Password: "password1"},
		},
		{
			name:    "missing email",
			req:     RegisterRequest{Password: "password1"},
			wantErr: "email is required",
		},
		{
			name:    "invalid email",
			req:     RegisterRequest{Email: "not-an-email", Password: "password1"},
			wantErr: "invalid email format",
		},
		{
			name:    "missing password",
			req:     RegisterRequest{Email: "user@example.com"},
			wantErr: "password is required",
		},
		{
			name:    "weak password",
			req:     RegisterRequest{Email: "user@example.com", Password: "short"},
			wantErr: "at least 8 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "user@example.com", tt.req.Email)
			}
		})
	}
}

func TestCreateUserRequest_Validate(t *testing.T) {
	t.Run("empty role defaults to viewer", func(t *testing.T) {
		req := CreateUserRequest{Email: "user@example.com", Password: "password1"}

		require.NoError(t, req.Validate())
		assert.Equal(t, RoleViewer, req.Role)
	})

	t.Run("explicit role kept", func(t *testing.T) {
		req := CreateUserRequest{Email: "user@example.com", Password: "password1", Role: RoleContributor}

		require.NoError(t, req.Validate())
		assert.Equal(t, RoleContributor, req.Role)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		req := CreateUserRequest{Email: "user@example.com", Password: "password1", Role: "Owner"}

		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "role must be one of")
	})
}

func TestUpdateUserRequest_Validate(t *testing.T) {
	email := "New@Example.com"
	weakPassword := "short"
	badRole := Role("Owner")

	t.Run("all fields nil is a no-op", func(t *testing.T) {
		req := UpdateUserRequest{}
		assert.NoError(t, req.Validate())
	})

	t.Run("email normalized in place", func(t *testing.T) {
		req := UpdateUserRequest{Email: &email}

		require.NoError(t, req.Validate())
		assert.Equal(t, "new@example.com", *req.Email)
	})

	t.Run("weak password rejected", func(t *testing.T) {
		req := UpdateUserRequest{Password: &weakPassword}
		assert.Error(t, req.Validate())
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		req := UpdateUserRequest{Role: &badRole}
		assert.Error(t, req.Validate())
	})
}
