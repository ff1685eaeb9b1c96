package templates

import "github.com/a-h/templ"

// Verification renders the email address verification message.
func Verification(p Props) templ.Component {
	p = p.withDefaults(DefaultVerificationLink)
	return document(p, content{
		title:    "Verify Your Email Address",
		intro:    "Welcome to " + p.AppName + "! Please verify your email address to complete your registration.",
		action:   "Verify Email Address",
		security: "If you didn't create an account with " + p.AppName + ", you can safely ignore this email.",
		tone:     toneWarning,
	})
}
