package mailer

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates the adapter was constructed with missing settings.
	ErrInvalidConfig = errors.New("invalid mail adapter configuration")

	// ErrEmailRequired indicates the recipient address could not be read from the user record.
	ErrEmailRequired = errors.New("user email is required but was not found")

	// ErrProvider indicates the email provider reported an error for the message.
	ErrProvider = errors.New("email provider rejected the message")

	// ErrRenderFailed indicates template rendering failed.
	ErrRenderFailed = errors.New("failed to render template")
)

// ProviderError carries the error message reported by the email provider.
// It matches ErrProvider with errors.Is.
type ProviderError struct {
	Err     error  // Error returned by the provider client, if any
	Message string // Provider's message
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s", ErrProvider.Error(), e.Message)
}

func (e *ProviderError) Is(target error) bool {
	return target == ErrProvider
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
