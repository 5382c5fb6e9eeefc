package validator

import (
	"errors"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"contacts-api/internal/interface/api/rest/dto/auth"
	"contacts-api/internal/interface/api/rest/dto/contact"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe

	maxNameLen  = 64
	maxTokenLen = 128
)

var (
	e164Re = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)
)

func ValidateContactID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("contact_id must be a positive integer")
	}
	return id, nil
}

// ValidateSearchToken normalizes and checks the free-text search token.
// An empty token is a caller error, not a match-everything query.
func ValidateSearchToken(token string) (string, error) {
	token = strings.TrimSpace(norm.NFC.String(token))
	if token == "" {
		return "", errors.New("search token is required")
	}
	if utf8.RuneCountInString(token) > maxTokenLen {
		return "", errors.New("search token is too long")
	}
	return token, nil
}

func ValidateContact(r contact.Request) map[string]string {
	errs := make(map[string]string)

	// Normalize
	email := strings.ToLower(strings.TrimSpace(r.Email))
	first := strings.TrimSpace(r.FirstName)
	last := strings.TrimSpace(r.LastName)
	bdate := strings.TrimSpace(r.BornDate)
	phone := strings.TrimSpace(r.Phone)

	// email (required + format)
	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	// first_name / last_name (optional, length + allowed chars when present)
	if first != "" {
		if utf8.RuneCountInString(first) > maxNameLen {
			errs["first_name"] = "first_name is too long"
		} else if !isHumanName(first) {
			errs["first_name"] = "allowed characters: letters, space, '-', '''"
		}
	}
	if last != "" {
		if utf8.RuneCountInString(last) > maxNameLen {
			errs["last_name"] = "last_name is too long"
		} else if !isHumanName(last) {
			errs["last_name"] = "allowed characters: letters, space, '-', '''"
		}
	}

	// born_date (required, format checked by the dto mapper)
	if bdate == "" {
		errs["born_date"] = "born_date is required"
	}

	// phone (optional, E.164 when present)
	if phone != "" && !e164Re.MatchString(phone) {
		errs["phone"] = "must be in E.164 format (e.g., +380441234567)"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func isHumanName(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\'' {
			continue
		}
		return false
	}
	return true
}

func ValidateSignup(r auth.SignupRequest) map[string]string {
	return validateCredentials(r.Email, r.Password)
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	return validateCredentials(r.Email, r.Password)
}

func validateCredentials(email, password string) map[string]string {
	errs := make(map[string]string)

	email = strings.ToLower(strings.TrimSpace(email))

	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	if strings.TrimSpace(password) == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8-72 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
