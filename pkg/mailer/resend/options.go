package resend

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/mailadapter/pkg/mailer"
)

// options holds optional adapter dependencies.
type options struct {
	client     EmailClient
	renderer   mailer.Renderer
	logger     *slog.Logger
	httpClient *http.Client
	baseURL    string
}

// Option configures the adapter.
type Option func(*options)

// WithClient sets the client used for delivery instead of the Resend SDK client.
// Useful for tests and for wrapping the SDK.
func WithClient(c EmailClient) Option {
	return func(o *options) {
		if c != nil {
			o.client = c
		}
	}
}

// WithRenderer sets the template renderer.
func WithRenderer(r mailer.Renderer) Option {
	return func(o *options) {
		if r != nil {
			o.renderer = r
		}
	}
}

// WithLogger sets the logger for delivery diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithHTTPClient sets the HTTP client used by the Resend SDK.
// Ignored when WithClient is used.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithBaseURL points the Resend SDK at another API endpoint.
// Ignored when WithClient is used.
func WithBaseURL(u string) Option {
	return func(o *options) {
		o.baseURL = u
	}
}
