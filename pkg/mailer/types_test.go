package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, display, email, want string
	}{
		{name: "display name", display: "Acme Support", email: "support@acme.com", want: "Acme Support <support@acme.com>"},
		{name: "bare email", email: "no-reply@acme.com", want: "no-reply@acme.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Address(tt.display, tt.email))
		})
	}
}

func TestModeString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "html", ModeHTML.String())
	require.Equal(t, "text", ModePlainText.String())
	require.Equal(t, "mode(7)", Mode(7).String())
}
