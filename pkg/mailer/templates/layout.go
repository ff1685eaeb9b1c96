package templates

import (
	"context"

	"github.com/a-h/templ"
	templruntime "github.com/a-h/templ/runtime"
)

// notice colours: background, border, text.
type tone struct {
	background string
	border     string
	text       string
}

var (
	toneWarning = tone{background: "#fefce8", border: "#fef08a", text: "#854d0e"}
	toneDanger  = tone{background: "#fef2f2", border: "#fecaca", text: "#991b1b"}
)

// content is the message-specific copy placed into the shared layout.
type content struct {
	title    string
	intro    string
	action   string
	security string
	notes    []string
	tone     tone
}

const (
	fontStack      = `-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,'Helvetica Neue',Arial,sans-serif`
	blockStyle     = "text-align:center;margin:0 0 32px;"
	smallTextStyle = "font-size:14px;line-height:20px;color:#6b7280;margin:0 0 8px;"
	buttonStyle    = "display:inline-block;padding:12px 24px;color:#ffffff;font-weight:600;" +
		"border-radius:6px;text-decoration:none;"
)

// document renders the shared email layout around c.
// Props must already have defaults applied.
func document(p Props, c content) templ.Component {
	link := templ.URL(p.Link)
	return page(templ.Join(
		logo(p.BrandLogoURL),
		heading(c.title, c.intro),
		button(link, p.BrandColor, c.action),
		fallbackLink(link),
		notes(c.notes),
		securityNotice(c.tone, c.security),
	))
}

func page(body templ.Component) templ.Component {
	return component(func(ctx context.Context, buf *templruntime.Buffer) error {
		if err := write(buf,
			`<!DOCTYPE html><html lang="en"><head>`,
			`<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`,
			`</head><body style="background-color:#f9fafb;margin:0;font-family:`, templ.EscapeString(fontStack), `;">`,
			`<div style="max-width:600px;margin:0 auto;padding:80px 16px;">`,
			`<div style="background-color:#ffffff;border:1px solid #e5e7eb;border-radius:6px;padding:32px;">`,
		); err != nil {
			return err
		}
		if err := body.Render(ctx, buf); err != nil {
			return err
		}
		return write(buf, `</div></div></body></html>`)
	})
}

func logo(src string) templ.Component {
	if src == "" {
		return templ.NopComponent
	}
	return component(func(_ context.Context, buf *templruntime.Buffer) error {
		return write(buf,
			`<div style="`, blockStyle, `"><img src="`, templ.EscapeString(string(templ.URL(src))),
			`" alt="Brand Logo" width="120" height="40" style="display:block;margin:0 auto 16px;"></div>`,
		)
	})
}

func heading(title, intro string) templ.Component {
	return component(func(_ context.Context, buf *templruntime.Buffer) error {
		return write(buf,
			`<div style="`, blockStyle, `">`,
			`<p style="font-size:24px;line-height:32px;font-weight:700;color:#1f2937;margin:0 0 8px;">`,
			templ.EscapeString(title),
			`</p><p style="font-size:16px;line-height:24px;color:#374151;margin:0 0 16px;">`,
			templ.EscapeString(intro),
			`</p></div>`,
		)
	})
}

func button(link templ.SafeURL, color, label string) templ.Component {
	return component(func(_ context.Context, buf *templruntime.Buffer) error {
		return write(buf,
			`<div style="`, blockStyle, `"><a href="`, templ.EscapeString(string(link)),
			`" style="`, templ.EscapeString(string(templ.SanitizeCSS("background-color", color))), buttonStyle, `">`,
			templ.EscapeString(label),
			`</a></div>`,
		)
	})
}

func fallbackLink(link templ.SafeURL) templ.Component {
	return component(func(_ context.Context, buf *templruntime.Buffer) error {
		href := templ.EscapeString(string(link))
		return write(buf,
			`<div style="text-align:center;margin:0 0 24px;"><p style="`, smallTextStyle, `">`,
			templ.EscapeString("If the button doesn't work, copy and paste this link into your browser:"),
			`</p><p style="font-size:14px;line-height:20px;color:#2563eb;word-break:break-all;margin:0;">`,
			`<a href="`, href, `" style="color:#2563eb;">`, href, `</a></p></div>`,
		)
	})
}

func notes(lines []string) templ.Component {
	return component(func(_ context.Context, buf *templruntime.Buffer) error {
		for _, line := range lines {
			if err := write(buf,
				`<div style="text-align:center;margin:0 0 24px;"><p style="`, smallTextStyle, `">`,
				templ.EscapeString(line),
				`</p></div>`,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

func securityNotice(t tone, text string) templ.Component {
	return component(func(_ context.Context, buf *templruntime.Buffer) error {
		return write(buf,
			`<div style="background-color:`, t.background, `;border:1px solid `, t.border,
			`;border-radius:6px;padding:16px;"><p style="font-size:14px;line-height:20px;color:`, t.text,
			`;margin:0;"><strong>Security:</strong> `, templ.EscapeString(text),
			`</p></div>`,
		)
	})
}

// component wraps body in templ's pooled buffer handling, the same way generated templates do.
func component(body func(ctx context.Context, buf *templruntime.Buffer) error) templ.Component {
	return templruntime.GeneratedTemplate(func(in templruntime.GeneratedComponentInput) (err error) {
		if err := in.Context.Err(); err != nil {
			return err
		}
		buf, isBuffer := templruntime.GetBuffer(in.Writer)
		if !isBuffer {
			defer func() {
				if bufErr := templruntime.ReleaseBuffer(buf); err == nil {
					err = bufErr
				}
			}()
		}
		return body(templ.InitializeContext(in.Context), buf)
	})
}

func write(buf *templruntime.Buffer, parts ...string) error {
	for _, s := range parts {
		if _, err := buf.WriteString(s); err != nil {
			return err
		}
	}
	return nil
}
