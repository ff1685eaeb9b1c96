package templates

import (
	"maps"
	"slices"
)

const (
	NameVerification  = "verification"
	NamePasswordReset = "password-reset"
)

var registry = map[string]Func{
	NameVerification:  Verification,
	NamePasswordReset: PasswordReset,
}

// Names returns the names of the built-in templates in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// Lookup returns the built-in template registered under name.
func Lookup(name string) (Func, bool) {
	fn, ok := registry[name]
	return fn, ok
}
