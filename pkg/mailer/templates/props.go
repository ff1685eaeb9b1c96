package templates

import "github.com/a-h/templ"

const (
	DefaultAppName           = "Your App"
	DefaultBrandColor        = "#000000"
	DefaultVerificationLink  = "https://example.com/verify"
	DefaultPasswordResetLink = "https://example.com/reset-password"
)

// Props are the inputs shared by all message templates.
type Props struct {
	Link         string `yaml:"link"`
	AppName      string `yaml:"app_name"`
	BrandLogoURL string `yaml:"brand_logo_url"`
	BrandColor   string `yaml:"brand_color"`
}

// Func builds a renderable message from props.
// The returned component is rendered once per output mode, one pass after the other.
type Func func(Props) templ.Component

func (p Props) withDefaults(link string) Props {
	if p.Link == "" {
		p.Link = link
	}
	if p.AppName == "" {
		p.AppName = DefaultAppName
	}
	if p.BrandColor == "" {
		p.BrandColor = DefaultBrandColor
	}
	return p
}
