package templates

import "github.com/a-h/templ"

// PasswordReset renders the password reset message.
// The copy states that the link expires after 24 hours.
func PasswordReset(p Props) templ.Component {
	p = p.withDefaults(DefaultPasswordResetLink)
	return document(p, content{
		title:  "Reset Your Password",
		intro:  "We received a request to reset your password for your " + p.AppName + " account.",
		action: "Reset Password",
		notes: []string{
			"This password reset link will expire in 24 hours for security reasons.",
		},
		security: "If you didn't request a password reset, please ignore this email. " +
			"Your password will remain unchanged. " +
			"If you're concerned about your account security, please contact our support team.",
		tone: toneDanger,
	})
}
