package mailer

import "context"

// Adapter is the mail-sending capability a server framework depends on.
// Each call performs at most one delivery through the underlying provider.
type Adapter interface {
	// SendMail delivers an arbitrary message.
	// The adapter's default sender is used when opts.From is empty.
	SendMail(ctx context.Context, opts MailOptions) (*SendResult, error)

	// SendVerificationEmail delivers the email address verification message
	// to the address stored in params.User.
	SendVerificationEmail(ctx context.Context, params LinkParams) (*SendResult, error)

	// SendPasswordResetEmail delivers the password reset message
	// to the address stored in params.User.
	SendPasswordResetEmail(ctx context.Context, params LinkParams) (*SendResult, error)
}

// VerificationSubject returns the subject line of the verification message.
func VerificationSubject(appName string) string {
	return "Verify your email address for " + appName
}

// PasswordResetSubject returns the subject line of the password reset message.
func PasswordResetSubject(appName string) string {
	return "Reset your password for " + appName
}
