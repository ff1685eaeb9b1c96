package resend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailadapter/pkg/mailer"
)

// fakeAPI is a minimal stand-in for the Resend HTTP API.
type fakeAPI struct {
	body   map[string]any
	auth   string
	path   string
	status int
	reply  string
	mu     sync.Mutex
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.path = r.URL.Path
	f.auth = r.Header.Get("Authorization")
	f.body = map[string]any{}
	_ = json.NewDecoder(r.Body).Decode(&f.body)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(f.status)
	_, _ = w.Write([]byte(f.reply))
}

func newSDKAdapter(t *testing.T, api *fakeAPI) *Adapter {
	t.Helper()

	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	a, err := New(Config{APIKey: "re_test", DefaultFrom: "Acme <no-reply@acme.com>"},
		WithHTTPClient(srv.Client()),
		WithBaseURL(srv.URL),
	)
	require.NoError(t, err)
	return a
}

func TestSDK_SendVerificationEmail(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{status: http.StatusOK, reply: `{"id":"49a3999c-0ce1-4ea6-ab68-afcd6dc2e794"}`}
	a := newSDKAdapter(t, api)

	res, err := a.SendVerificationEmail(context.Background(), mailer.LinkParams{
		Link:    "https://acme.com/verify?token=abc",
		AppName: "Acme",
		User:    mailer.Fields{"email": "alice@example.com"},
	})
	require.NoError(t, err)
	require.Equal(t, "49a3999c-0ce1-4ea6-ab68-afcd6dc2e794", res.ID)

	api.mu.Lock()
	defer api.mu.Unlock()

	assert.Equal(t, "/emails", api.path)
	assert.Equal(t, "Bearer re_test", api.auth)
	assert.Equal(t, "Acme <no-reply@acme.com>", api.body["from"])
	assert.Equal(t, []any{"alice@example.com"}, api.body["to"])
	assert.Equal(t, "Verify your email address for Acme", api.body["subject"])
	assert.Contains(t, api.body["html"], "Verify Email Address")
	assert.Contains(t, api.body["text"], "https://acme.com/verify?token=abc")
}

func TestSDK_ProviderError(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{
		status: http.StatusUnprocessableEntity,
		reply:  `{"statusCode":422,"name":"validation_error","message":"bad request"}`,
	}
	a := newSDKAdapter(t, api)

	res, err := a.SendMail(context.Background(), mailer.MailOptions{To: "a@b.com", Subject: "S", Text: "T"})

	require.Nil(t, res)
	require.ErrorIs(t, err, mailer.ErrProvider)
	require.Contains(t, err.Error(), "bad request")
}

func TestSDK_TransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	a, err := New(Config{APIKey: "re_test", DefaultFrom: "no-reply@acme.com"}, WithBaseURL(baseURL))
	require.NoError(t, err)

	_, err = a.SendMail(context.Background(), mailer.MailOptions{To: "a@b.com", Subject: "S", Text: "T"})

	require.Error(t, err)
	require.NotErrorIs(t, err, mailer.ErrProvider)
}
