package mailer

import "strings"

// EmailField is the record field holding the recipient address.
const EmailField = "email"

// Record is any user record that exposes string fields by name.
// The adapter only ever reads EmailField.
type Record interface {
	Get(field string) (string, bool)
}

// Fields is a map-backed Record.
type Fields map[string]string

// Get implements Record.
func (f Fields) Get(field string) (string, bool) {
	v, ok := f[field]
	return v, ok
}

// RecipientEmail extracts the recipient address from r.
// The address is returned without surrounding whitespace.
// Returns ErrEmailRequired if r is nil or the field is missing or blank.
func RecipientEmail(r Record) (string, error) {
	if r == nil {
		return "", ErrEmailRequired
	}
	email, ok := r.Get(EmailField)
	email = strings.TrimSpace(email)
	if !ok || email == "" {
		return "", ErrEmailRequired
	}
	return email, nil
}
