package authsdk

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	requiredReason = "required"
	badEmailReason = "must be a valid email address"
)

// Roles assignable at registration. Role is fixed by this flow; there is no
// self-service escalation path.
const (
	RoleUser     = "user"
	RoleAdmin    = "admin"
	RoleBusiness = "business"
)

var validRoles = map[string]struct{}{
	RoleUser:     {},
	RoleAdmin:    {},
	RoleBusiness: {},
}

var reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks the registration fields and returns a map of field names
// to error messages, or nil if everything is valid. The server applies the
// same rules, so callers can validate up front to avoid a round trip.
func (r RegisterRequest) Validate() map[string]string {
	errs := make(map[string]string)

	validateEmail(errs, r.Email)
	validatePassword(errs, r.Password)
	validateName(errs, r.Name)
	validateRole(errs, r.Role)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate checks the login fields. Password composition is not re-checked
// here; login only cares that something was supplied.
func (r LoginRequest) Validate() map[string]string {
	errs := make(map[string]string)

	validateEmail(errs, r.Email)
	if r.Password == "" {
		errs["password"] = requiredReason
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// NormalizeEmail lower-cases and trims an email for case-insensitive lookup
// and uniqueness checks.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(errs map[string]string, email string) {
	email = strings.TrimSpace(email)
	switch {
	case email == "":
		errs["email"] = requiredReason
	case len(email) > 254 || !reEmail.MatchString(email):
		errs["email"] = badEmailReason
	}
}

func validatePassword(errs map[string]string, pw string) {
	switch {
	case pw == "":
		errs["password"] = requiredReason
	case len(pw) < 8:
		errs["password"] = "too short (min 8)"
	case len(pw) > 128:
		errs["password"] = "too long (max 128)"
	case !hasRequiredComposition(pw):
		errs["password"] = "must contain upper and lower case letters, a digit and a symbol"
	}
}

func validateName(errs map[string]string, name string) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		errs["name"] = requiredReason
	case len(name) > 100:
		errs["name"] = "too long (max 100)"
	}
}

func validateRole(errs map[string]string, role string) {
	if _, ok := validRoles[role]; !ok {
		errs["role"] = "must be one of user, admin or business"
	}
}

func hasRequiredComposition(pw string) bool {
	var lower, upper, digit, symbol bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsSpace(r):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}
