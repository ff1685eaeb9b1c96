// Package preview serves the built-in email templates over HTTP for local development.
//
// Routes:
//
//	GET /                   list of templates
//	GET /templates/{name}   rendered template (?format=text for the plain text part)
//	GET /healthz            liveness check
//
// Query parameters link, app_name, brand_logo_url and brand_color override the base
// props passed with WithProps, so a designer can try branding without restarting:
//
//	srv := preview.New(preview.WithProps(props), preview.WithLogger(log))
//	err := preview.Run(ctx, ":3000", srv.Handler(), log)
package preview
