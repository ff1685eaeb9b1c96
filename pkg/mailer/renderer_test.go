package mailer

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"
)

func staticComponent(html string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, html)
		return err
	})
}

func TestRenderer_Render_HTML(t *testing.T) {
	t.Parallel()

	r := NewRenderer()
	c := staticComponent(`<html><body><p>Hello <strong>Alice</strong></p></body></html>`)

	out, err := r.Render(context.Background(), c, ModeHTML)
	require.NoError(t, err)
	require.Equal(t, `<html><body><p>Hello <strong>Alice</strong></p></body></html>`, out)
}

func TestRenderer_Render_PlainText(t *testing.T) {
	t.Parallel()

	r := NewRenderer()
	c := staticComponent(`<html><body><p>Hello <strong>Alice</strong></p>` +
		`<p><a href="https://example.com/verify">https://example.com/verify</a></p></body></html>`)

	out, err := r.Render(context.Background(), c, ModePlainText)
	require.NoError(t, err)
	require.Contains(t, out, "Alice")
	require.Contains(t, out, "https://example.com/verify")
	require.NotContains(t, out, "<p>")
	require.NotContains(t, out, "<strong>")
}

func TestRenderer_Render_ComponentError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	c := templ.ComponentFunc(func(context.Context, io.Writer) error {
		return cause
	})

	_, err := NewRenderer().Render(context.Background(), c, ModeHTML)
	require.ErrorIs(t, err, ErrRenderFailed)
	require.ErrorIs(t, err, cause)
}

func TestRenderer_Render_NilComponent(t *testing.T) {
	t.Parallel()

	_, err := NewRenderer().Render(context.Background(), nil, ModeHTML)
	require.ErrorIs(t, err, ErrRenderFailed)
}

func TestRenderer_Render_UnknownMode(t *testing.T) {
	t.Parallel()

	_, err := NewRenderer().Render(context.Background(), staticComponent("<p>x</p>"), Mode(42))
	require.ErrorIs(t, err, ErrRenderFailed)
}
