package resend

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/mailadapter/pkg/mailer"
	"github.com/dmitrymomot/mailadapter/pkg/mailer/templates"
)

// Config holds Resend adapter configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Templates    Templates // Optional template overrides, not read from env
	APIKey       string    `env:"RESEND_API_KEY" validate:"required"`
	DefaultFrom  string    `env:"RESEND_FROM_EMAIL" validate:"required"`
	FromName     string    `env:"RESEND_FROM_NAME"` // Optional display name for DefaultFrom
	BrandLogoURL string    `env:"MAIL_BRAND_LOGO_URL"`
	BrandColor   string    `env:"MAIL_BRAND_COLOR" envDefault:"#000000"`
}

// Templates replaces the built-in templates when a field is set.
type Templates struct {
	Verification  templates.Func
	PasswordReset templates.Func
}

// validate is shared by all adapters; validator caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report env variable names, which is what operators set.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("env"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate reports missing required settings as mailer.ErrInvalidConfig.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Join(mailer.ErrInvalidConfig, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fmt.Errorf("%w: missing %s", mailer.ErrInvalidConfig, strings.Join(fields, ", "))
}

func (c Config) normalize() Config {
	c.APIKey = strings.TrimSpace(c.APIKey)
	c.DefaultFrom = strings.TrimSpace(c.DefaultFrom)
	c.FromName = strings.TrimSpace(c.FromName)
	c.BrandLogoURL = strings.TrimSpace(c.BrandLogoURL)
	c.BrandColor = strings.TrimSpace(c.BrandColor)
	if c.BrandColor == "" {
		c.BrandColor = templates.DefaultBrandColor
	}
	return c
}
