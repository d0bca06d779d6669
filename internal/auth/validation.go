package auth

import (
	"strings"
	"unicode/utf8"
)

const (
	UsernameMinLen = 3
	UsernameMaxLen = 10
	PasswordMinLen = 8
	PasswordMaxLen = 20

	PasswordSymbols = "!@#$%^&*"
)

// Issue describes one failed credential rule.
type Issue struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type passwordRule struct {
	name    string
	message string
	ok      func(string) bool
}

var passwordRules = []passwordRule{
	{"digit", "password must contain a digit", containsFunc(inRange('0', '9'))},
	{"symbol", "password must contain one of " + PasswordSymbols, func(s string) bool {
		return strings.ContainsAny(s, PasswordSymbols)
	}},
	{"uppercase", "password must contain an uppercase letter", containsFunc(inRange('A', 'Z'))},
	{"lowercase", "password must contain a lowercase letter", containsFunc(inRange('a', 'z'))},
}

// Character classes are ASCII only.
func inRange(lo, hi rune) func(rune) bool {
	return func(r rune) bool {
		return r >= lo && r <= hi
	}
}

func containsFunc(f func(rune) bool) func(string) bool {
	return func(s string) bool {
		return strings.IndexFunc(s, f) >= 0
	}
}

// ValidateCredentials checks the signup shape rules and returns every
// failed rule; an empty result means the credentials are acceptable.
func ValidateCredentials(username, password string) []Issue {
	var issues []Issue

	if n := utf8.RuneCountInString(username); n < UsernameMinLen {
		issues = append(issues, Issue{"username", "min_length", "username must be at least 3 characters"})
	} else if n > UsernameMaxLen {
		issues = append(issues, Issue{"username", "max_length", "username must be at most 10 characters"})
	}

	if n := utf8.RuneCountInString(password); n < PasswordMinLen {
		issues = append(issues, Issue{"password", "min_length", "password must be at least 8 characters"})
	} else if n > PasswordMaxLen {
		issues = append(issues, Issue{"password", "max_length", "password must be at most 20 characters"})
	}

	for _, rule := range passwordRules {
		if !rule.ok(password) {
			issues = append(issues, Issue{"password", rule.name, rule.message})
		}
	}

	return issues
}
