package resend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/mailadapter/pkg/logger"
	"github.com/dmitrymomot/mailadapter/pkg/mailer"
	"github.com/dmitrymomot/mailadapter/pkg/mailer/templates"
)

// EmailClient is the part of the Resend SDK the adapter delivers through.
// The Emails service of *resend.Client satisfies it.
type EmailClient interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Adapter implements mailer.Adapter using the Resend API.
// It is immutable after New and safe for concurrent use.
type Adapter struct {
	client        EmailClient
	renderer      mailer.Renderer
	logger        *slog.Logger
	verification  templates.Func
	passwordReset templates.Func
	from          string
	brandLogoURL  string
	brandColor    string
}

var _ mailer.Adapter = (*Adapter)(nil)

// New creates a Resend adapter.
// Returns mailer.ErrInvalidConfig if the API key or default sender is missing.
func New(cfg Config, opts ...Option) (*Adapter, error) {
	cfg = cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := &options{
		logger:   logger.NewNope(),
		renderer: mailer.NewRenderer(),
	}
	for _, opt := range opts {
		opt(o)
	}

	client := o.client
	if client == nil {
		c, err := newSDKClient(cfg.APIKey, o)
		if err != nil {
			return nil, err
		}
		client = c.Emails
	}

	a := &Adapter{
		client:        client,
		renderer:      o.renderer,
		logger:        o.logger.With(slog.String("provider", "resend")),
		verification:  templates.Verification,
		passwordReset: templates.PasswordReset,
		from:          mailer.Address(cfg.FromName, cfg.DefaultFrom),
		brandLogoURL:  cfg.BrandLogoURL,
		brandColor:    cfg.BrandColor,
	}
	if cfg.Templates.Verification != nil {
		a.verification = cfg.Templates.Verification
	}
	if cfg.Templates.PasswordReset != nil {
		a.passwordReset = cfg.Templates.PasswordReset
	}

	return a, nil
}

func newSDKClient(apiKey string, o *options) (*resend.Client, error) {
	var c *resend.Client
	if o.httpClient != nil {
		c = resend.NewCustomClient(o.httpClient, apiKey)
	} else {
		c = resend.NewClient(apiKey)
	}

	if o.baseURL != "" {
		u, err := url.Parse(o.baseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("%w: invalid base URL %q", mailer.ErrInvalidConfig, o.baseURL)
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		c.BaseURL = u
	}

	return c, nil
}

// SendMail implements mailer.Adapter.
func (a *Adapter) SendMail(ctx context.Context, opts mailer.MailOptions) (*mailer.SendResult, error) {
	from := opts.From
	if from == "" {
		from = a.from
	}

	return a.deliver(ctx, mailer.KindRaw, &mailer.Message{
		From:    from,
		To:      opts.To,
		Subject: opts.Subject,
		Text:    opts.Text,
		HTML:    opts.HTML,
	})
}

// SendVerificationEmail implements mailer.Adapter.
func (a *Adapter) SendVerificationEmail(ctx context.Context, params mailer.LinkParams) (*mailer.SendResult, error) {
	return a.sendTemplated(ctx, mailer.KindVerification, a.verification,
		mailer.VerificationSubject(params.AppName), params)
}

// SendPasswordResetEmail implements mailer.Adapter.
func (a *Adapter) SendPasswordResetEmail(ctx context.Context, params mailer.LinkParams) (*mailer.SendResult, error) {
	return a.sendTemplated(ctx, mailer.KindPasswordReset, a.passwordReset,
		mailer.PasswordResetSubject(params.AppName), params)
}

func (a *Adapter) sendTemplated(
	ctx context.Context,
	kind mailer.Kind,
	tmpl templates.Func,
	subject string,
	params mailer.LinkParams,
) (*mailer.SendResult, error) {
	to, err := mailer.RecipientEmail(params.User)
	if err != nil {
		a.logger.ErrorContext(ctx, "mail recipient missing",
			slog.String("kind", string(kind)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	component := tmpl(templates.Props{
		Link:         params.Link,
		AppName:      params.AppName,
		BrandLogoURL: a.brandLogoURL,
		BrandColor:   a.brandColor,
	})

	html, text, err := a.render(ctx, component)
	if err != nil {
		a.logger.ErrorContext(ctx, "mail rendering failed",
			slog.String("kind", string(kind)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	return a.deliver(ctx, kind, &mailer.Message{
		From:    a.from,
		To:      to,
		Subject: subject,
		Text:    text,
		HTML:    html,
	})
}

// render produces the HTML body, then the plain text body, from the same component.
// The passes never overlap, so components need not be safe for concurrent use.
func (a *Adapter) render(ctx context.Context, c templ.Component) (html, text string, err error) {
	html, err = a.renderer.Render(ctx, c, mailer.ModeHTML)
	if err != nil {
		return "", "", err
	}
	text, err = a.renderer.Render(ctx, c, mailer.ModePlainText)
	if err != nil {
		return "", "", err
	}
	return html, text, nil
}

func (a *Adapter) deliver(ctx context.Context, kind mailer.Kind, msg *mailer.Message) (*mailer.SendResult, error) {
	req := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Text:    msg.Text,
		Html:    msg.HTML,
	}

	resp, err := a.client.SendWithContext(ctx, req)
	switch {
	case err != nil && isTransportError(err):
		a.logger.ErrorContext(ctx, "mail delivery failed",
			slog.String("kind", string(kind)),
			slog.String("error", err.Error()),
		)
		return nil, err
	case err != nil:
		perr := &mailer.ProviderError{Err: err, Message: providerMessage(err)}
		a.logger.ErrorContext(ctx, "mail rejected by provider",
			slog.String("kind", string(kind)),
			slog.String("error", perr.Message),
		)
		return nil, perr
	case resp == nil:
		perr := &mailer.ProviderError{Message: "empty response"}
		a.logger.ErrorContext(ctx, "mail rejected by provider",
			slog.String("kind", string(kind)),
			slog.String("error", perr.Message),
		)
		return nil, perr
	}

	a.logger.DebugContext(ctx, "mail sent",
		slog.String("kind", string(kind)),
		slog.String("id", resp.Id),
	)

	return &mailer.SendResult{ID: resp.Id}, nil
}

// isTransportError reports whether err came from the network or from
// (de)serialization rather than from the Resend API itself.
func isTransportError(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	var (
		netErr    net.Error
		urlErr    *url.Error
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	return errors.As(err, &netErr) || errors.As(err, &urlErr) ||
		errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}

// providerMessage strips the SDK's generic prefix from API errors.
func providerMessage(err error) string {
	msg := strings.TrimSpace(strings.TrimPrefix(err.Error(), "[ERROR]:"))
	if msg == "" {
		return "unknown provider error"
	}
	return msg
}
