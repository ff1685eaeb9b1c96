// Package mailer defines the mail-sending contract used by the server framework,
// the values passed through it, and the component renderer shared by provider adapters.
//
// # Architecture
//
// The package consists of three main parts:
//
//   - Adapter: Interface with SendMail, SendVerificationEmail and SendPasswordResetEmail
//   - Renderer: Renders a templ component as HTML or plain text, one mode per call
//   - Record: Read-only view of a user record the recipient address is taken from
//
// Provider implementations live in sub-packages. The Resend adapter is in
// github.com/dmitrymomot/mailadapter/pkg/mailer/resend, the built-in templates in
// github.com/dmitrymomot/mailadapter/pkg/mailer/templates.
//
// # Usage
//
//	adapter, err := resend.New(resend.Config{
//		APIKey:      os.Getenv("RESEND_API_KEY"),
//		DefaultFrom: "Acme <no-reply@acme.com>",
//	})
//	if err != nil {
//		return err
//	}
//
//	var m mailer.Adapter = adapter
//	res, err := m.SendVerificationEmail(ctx, mailer.LinkParams{
//		Link:    "https://acme.com/verify?token=abc",
//		AppName: "Acme",
//		User:    mailer.Fields{"email": "alice@example.com"},
//	})
//
// Any type with a Get(field string) (string, bool) method can be passed as User,
// so framework user models don't need to be converted.
//
// # Rendering
//
// Templates are templ components. The renderer is called twice per templated message,
// once with ModeHTML and once with ModePlainText. Plain text is produced from the
// rendered HTML.
//
// # Errors
//
//   - ErrInvalidConfig: Adapter constructed without API key or default sender
//   - ErrEmailRequired: User record has no email
//   - ErrProvider: Provider reported an error (see ProviderError for the message)
//   - ErrRenderFailed: Template rendering failed
//
// Network and serialization failures from the provider client are returned unchanged.
package mailer
