// Package templates provides the built-in email verification and password reset messages.
//
// Each template is a pure function of Props returning a templ.Component. Adapters accept
// any Func with the same signature as an override, so a custom design can replace either
// message without touching the adapter:
//
//	cfg.Templates.Verification = func(p templates.Props) templ.Component {
//		return views.MyVerificationEmail(p.Link, p.AppName)
//	}
//
// Empty props fall back to example values (see the Default constants). The logo block
// is rendered only when BrandLogoURL is set.
package templates
