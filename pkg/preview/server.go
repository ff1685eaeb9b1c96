package preview

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/mailadapter/pkg/logger"
	"github.com/dmitrymomot/mailadapter/pkg/mailer"
	"github.com/dmitrymomot/mailadapter/pkg/mailer/templates"
)

// Server renders templates for HTTP clients.
type Server struct {
	renderer mailer.Renderer
	logger   *slog.Logger
	idGen    func() string
	props    templates.Props
}

// Option configures the preview server.
type Option func(*Server)

// WithRenderer sets the renderer. Default: mailer.NewRenderer().
func WithRenderer(r mailer.Renderer) Option {
	return func(s *Server) {
		if r != nil {
			s.renderer = r
		}
	}
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithProps sets the base props every preview starts from.
func WithProps(p templates.Props) Option {
	return func(s *Server) {
		s.props = p
	}
}

// WithRequestIDGenerator sets the request ID generator. Default: uuid.NewString.
func WithRequestIDGenerator(gen func() string) Option {
	return func(s *Server) {
		s.idGen = gen
	}
}

// New creates a preview server.
func New(opts ...Option) *Server {
	s := &Server{
		renderer: mailer.NewRenderer(),
		logger:   logger.NewNope(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = slog.New(logger.NewLogHandlerDecorator(s.logger.Handler(), RequestIDExtractor()))
	return s
}

// Handler returns the HTTP handler serving previews.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID(s.idGen))
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/", s.index)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "OK")
	})
	r.Get("/templates/{name}", s.render)

	return r
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexPage(templates.Names()).Render(r.Context(), w); err != nil {
		s.logger.ErrorContext(r.Context(), "index rendering failed", slog.String("error", err.Error()))
	}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	tmpl, ok := templates.Lookup(name)
	if !ok {
		http.NotFound(w, r)
		return
	}

	mode := mailer.ModeHTML
	contentType := "text/html; charset=utf-8"
	switch strings.ToLower(r.URL.Query().Get("format")) {
	case "", "html":
	case "text", "txt":
		mode = mailer.ModePlainText
		contentType = "text/plain; charset=utf-8"
	default:
		http.Error(w, "format must be html or text", http.StatusBadRequest)
		return
	}

	props := MergeQuery(s.props, r.URL.Query())
	out, err := s.renderer.Render(r.Context(), tmpl(props), mode)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "template rendering failed",
			slog.String("template", name),
			slog.String("mode", mode.String()),
			slog.String("error", err.Error()),
		)
		http.Error(w, "failed to render template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	_, _ = io.WriteString(w, out)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.logger.InfoContext(r.Context(), "preview request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

func indexPage(names []string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>Email templates</title></head>`)
		b.WriteString(`<body style="font-family:sans-serif;"><h1>Email templates</h1><ul>`)
		for _, name := range names {
			href := templ.EscapeString(string(templ.URL("/templates/" + name)))
			b.WriteString(`<li><a href="` + href + `">` + templ.EscapeString(name) + `</a> `)
			b.WriteString(`(<a href="` + href + `?format=text">text</a>)</li>`)
		}
		b.WriteString(`</ul></body></html>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
