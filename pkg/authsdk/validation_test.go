package authsdk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validRegister() RegisterRequest {
	return RegisterRequest{
		Email:    "alice@example.com",
		Password: "Str0ng!pass",
		Name:     "Alice",
		Role:     RoleUser,
	}
}

func TestRegisterRequestValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid request passes", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, validRegister().Validate())
	})

	tests := []struct {
		name   string
		mutate func(*RegisterRequest)
		field  string
	}{
		{"missing email", func(r *RegisterRequest) { r.Email = "" }, "email"},
		{"bad email", func(r *RegisterRequest) { r.Email = "not-an-email" }, "email"},
		{"email without tld", func(r *RegisterRequest) { r.Email = "alice@localhost" }, "email"},
		{"missing password", func(r *RegisterRequest) { r.Password = "" }, "password"},
		{"short password", func(r *RegisterRequest) { r.Password = "Ab1!" }, "password"},
		{"no uppercase", func(r *RegisterRequest) { r.Password = "str0ng!pass" }, "password"},
		{"no digit", func(r *RegisterRequest) { r.Password = "Strong!pass" }, "password"},
		{"no symbol", func(r *RegisterRequest) { r.Password = "Str0ngpass" }, "password"},
		{"missing name", func(r *RegisterRequest) { r.Name = "  " }, "name"},
		{"unknown role", func(r *RegisterRequest) { r.Role = "superuser" }, "role"},
		{"empty role", func(r *RegisterRequest) { r.Role = "" }, "role"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := validRegister()
			tc.mutate(&req)

			errs := req.Validate()
			require.NotNil(t, errs)
			require.Contains(t, errs, tc.field)
		})
	}
}

func TestRegisterRequestValidateCollectsAllFields(t *testing.T) {
	t.Parallel()

	errs := RegisterRequest{}.Validate()
	require.Len(t, errs, 4)
	require.Contains(t, errs, "email")
	require.Contains(t, errs, "password")
	require.Contains(t, errs, "name")
	require.Contains(t, errs, "role")
}

func TestLoginRequestValidate(t *testing.T) {
	t.Parallel()

	require.Nil(t, LoginRequest{Email: "a@b.co", Password: "x"}.Validate())

	errs := LoginRequest{Email: "bad", Password: ""}.Validate()
	require.Contains(t, errs, "email")
	require.Contains(t, errs, "password")

	// Login does not enforce password composition, only presence.
	require.Nil(t, LoginRequest{Email: "a@b.co", Password: "weak"}.Validate())
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	require.Equal(t, "alice@example.com", NormalizeEmail("  Alice@Example.COM "))
	require.Equal(t, "a@b.co", NormalizeEmail("a@b.co"))
}
