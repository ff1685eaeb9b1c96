package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailadapter/pkg/mailer"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"RESEND_API_KEY", "RESEND_FROM_EMAIL", "RESEND_FROM_NAME", "RESEND_BASE_URL",
		"MAIL_BRAND_LOGO_URL", "MAIL_BRAND_COLOR", "SENTRY_DSN", "LOG_LEVEL",
	} {
		t.Setenv(key, "") // restores the original value on cleanup
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestRender_Text(t *testing.T) {
	clearEnv(t)

	out, err := execute(t, "render", "verification", "--format", "text", "--app-name", "Acme", "--link", "https://acme.com/v")

	require.NoError(t, err)
	require.Contains(t, out, "Acme")
	require.Contains(t, out, "https://acme.com/v")
	require.NotContains(t, out, "<html")
}

func TestRender_HTMLWithPropsFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAIL_BRAND_COLOR", "#222222")

	path := filepath.Join(t.TempDir(), "props.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app_name: Globex\nbrand_color: \"#ff6600\"\n"), 0o600))

	out, err := execute(t, "render", "password-reset", "--props", path)

	require.NoError(t, err)
	require.Contains(t, out, "<html")
	require.Contains(t, out, "Globex")
	require.Contains(t, out, "#ff6600")
	require.NotContains(t, out, "#222222")
}

func TestRender_Errors(t *testing.T) {
	clearEnv(t)

	_, err := execute(t, "render", "welcome")
	require.ErrorContains(t, err, "unknown template")

	_, err = execute(t, "render", "verification", "--format", "pdf")
	require.ErrorContains(t, err, "unknown format")

	_, err = execute(t, "--log-level", "loud", "render", "verification")
	require.ErrorContains(t, err, "invalid log level")

	_, err = execute(t, "render")
	require.ErrorContains(t, err, "template name is required")

	_, err = execute(t, "render", "--all")
	require.ErrorContains(t, err, "--all requires --out")

	_, err = execute(t, "render", "verification", "--all", "--out", t.TempDir())
	require.ErrorContains(t, err, "does not take a template name")
}

func TestRender_OmitLinks(t *testing.T) {
	clearEnv(t)

	args := []string{"render", "verification", "--format", "text", "--link", "https://acme.com/v"}

	out, err := execute(t, args...)
	require.NoError(t, err)
	require.Contains(t, out, "( https://acme.com/v )")

	out, err = execute(t, append(args, "--omit-links")...)
	require.NoError(t, err)
	require.Contains(t, out, "Verify Email Address")
	require.NotContains(t, out, "( https://acme.com/v )")
}

func TestRender_All(t *testing.T) {
	clearEnv(t)

	dir := filepath.Join(t.TempDir(), "out")

	_, err := execute(t, "render", "--all", "--out", dir, "--app-name", "Acme")
	require.NoError(t, err)

	for _, name := range []string{"verification", "password-reset"} {
		html, err := os.ReadFile(filepath.Join(dir, name+".html"))
		require.NoError(t, err)
		require.Contains(t, string(html), "<html")
		require.Contains(t, string(html), "Acme")

		text, err := os.ReadFile(filepath.Join(dir, name+".txt"))
		require.NoError(t, err)
		require.Contains(t, string(text), "Acme")
		require.NotContains(t, string(text), "<html")
	}
}

func TestSend_RequiresConfig(t *testing.T) {
	clearEnv(t)

	_, err := execute(t, "send", "raw", "--to", "a@b.com", "--subject", "S", "--text", "T")
	require.ErrorIs(t, err, mailer.ErrInvalidConfig)
}

func TestSend_Verification(t *testing.T) {
	clearEnv(t)

	bodies := make(chan map[string]any, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		bodies <- body
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_cli"}`))
	}))
	t.Cleanup(srv.Close)

	t.Setenv("RESEND_API_KEY", "re_test")
	t.Setenv("RESEND_FROM_EMAIL", "no-reply@acme.com")
	t.Setenv("RESEND_FROM_NAME", "Acme")
	t.Setenv("RESEND_BASE_URL", srv.URL)

	out, err := execute(t, "send", "verification", "--to", "alice@example.com", "--link", "https://acme.com/v", "--app-name", "Acme")

	require.NoError(t, err)
	require.Equal(t, "msg_cli\n", out)
	got := <-bodies
	require.Equal(t, "Verify your email address for Acme", got["subject"])
	require.Equal(t, "Acme <no-reply@acme.com>", got["from"])
}

func TestLoadConfig_EnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("RESEND_API_KEY=re_file\n"), 0o600))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "re_file", cfg.Resend.APIKey)
	require.Equal(t, "#000000", cfg.Resend.BrandColor)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_MissingEnvFile(t *testing.T) {
	clearEnv(t)

	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}
