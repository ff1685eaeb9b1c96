package mailer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubjects(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Verify your email address for Acme", VerificationSubject("Acme"))
	require.Equal(t, "Reset your password for Acme", PasswordResetSubject("Acme"))
}

func TestProviderError(t *testing.T) {
	t.Parallel()

	cause := errors.New("[ERROR]: bad request")
	err := error(&ProviderError{Err: cause, Message: "bad request"})

	require.ErrorIs(t, err, ErrProvider)
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "bad request")

	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, "bad request", perr.Message)
}

func TestProviderError_WithoutCause(t *testing.T) {
	t.Parallel()

	err := error(&ProviderError{Message: "empty response"})

	require.ErrorIs(t, err, ErrProvider)
	require.NotErrorIs(t, err, ErrRenderFailed)
	require.Equal(t, "email provider rejected the message: empty response", err.Error())
}
