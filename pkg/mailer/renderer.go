package mailer

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/a-h/templ"
	"github.com/jaytaylor/html2text"
)

// Mode selects the output produced by a Renderer.
type Mode int

const (
	ModeHTML Mode = iota
	ModePlainText
)

func (m Mode) String() string {
	switch m {
	case ModeHTML:
		return "html"
	case ModePlainText:
		return "text"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Renderer turns a template component into message body content.
// One call produces one output mode.
type Renderer interface {
	Render(ctx context.Context, c templ.Component, mode Mode) (string, error)
}

// TemplRenderer renders templ components.
// Plain text is derived from the HTML output, keeping link targets.
type TemplRenderer struct {
	text html2text.Options
}

// NewRenderer creates a renderer with default plain text options.
func NewRenderer() *TemplRenderer {
	return &TemplRenderer{}
}

// NewRendererWithOptions creates a renderer with custom plain text conversion options.
func NewRendererWithOptions(opts html2text.Options) *TemplRenderer {
	return &TemplRenderer{text: opts}
}

// Render implements Renderer.
func (r *TemplRenderer) Render(ctx context.Context, c templ.Component, mode Mode) (string, error) {
	if c == nil {
		return "", fmt.Errorf("%w: nil component", ErrRenderFailed)
	}
	if mode != ModeHTML && mode != ModePlainText {
		return "", fmt.Errorf("%w: unsupported %s", ErrRenderFailed, mode)
	}

	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return "", errors.Join(ErrRenderFailed, err)
	}

	if mode == ModeHTML {
		return buf.String(), nil
	}

	text, err := html2text.FromString(buf.String(), r.text)
	if err != nil {
		return "", errors.Join(ErrRenderFailed, err)
	}
	return text, nil
}
