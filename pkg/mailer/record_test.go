package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// userModel mimics a framework user type exposing fields through Get.
type userModel struct {
	attrs map[string]string
}

func (u *userModel) Get(field string) (string, bool) {
	v, ok := u.attrs[field]
	return v, ok
}

func TestRecipientEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		record  Record
		name    string
		want    string
		wantErr bool
	}{
		{name: "fields with email", record: Fields{"email": "alice@example.com"}, want: "alice@example.com"},
		{name: "custom record", record: &userModel{attrs: map[string]string{"email": "bob@example.com"}}, want: "bob@example.com"},
		{name: "padded email", record: Fields{"email": " carol@example.com\n"}, want: "carol@example.com"},
		{name: "nil record", record: nil, wantErr: true},
		{name: "missing field", record: Fields{"username": "alice"}, wantErr: true},
		{name: "empty email", record: Fields{"email": ""}, wantErr: true},
		{name: "blank email", record: Fields{"email": "   "}, wantErr: true},
		{name: "nil fields map", record: Fields(nil), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RecipientEmail(tt.record)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrEmailRequired)
				require.Empty(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
