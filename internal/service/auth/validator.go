package auth

import "regexp"

var (
	namePattern   = regexp.MustCompile(`^[a-zA-Z'\- ]+$`)
	letterPattern = regexp.MustCompile(`[A-Za-z]`)
	digitPattern  = regexp.MustCompile(`\d`)
	emailPattern  = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")
)

const (
	minNameLength   = 2
	maxNameLength   = 20
	minPasswordSize = 8
)

// IsValidName accepts 2-20 characters of letters, apostrophes, hyphens and
// spaces.
func IsValidName(name string) bool {
	if len(name) < minNameLength || len(name) > maxNameLength {
		return false
	}
	return namePattern.MatchString(name)
}

// IsValidPassword requires at least one letter, at least one digit and a
// minimum length of eight.
func IsValidPassword(password string) bool {
	if len(password) < minPasswordSize {
		return false
	}
	return letterPattern.MatchString(password) && digitPattern.MatchString(password)
}

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
