package mailer

import "fmt"

// Kind identifies the type of message an adapter is sending.
type Kind string

const (
	KindRaw           Kind = "raw"
	KindVerification  Kind = "verification"
	KindPasswordReset Kind = "password_reset"
)

// MailOptions describes an arbitrary message passed to Adapter.SendMail.
type MailOptions struct {
	To      string // Recipient address
	Subject string // Subject line
	Text    string // Plain text body
	HTML    string // Optional HTML body
	From    string // Optional sender override
}

// LinkParams carries the inputs of the templated messages.
type LinkParams struct {
	User    Record // Recipient record, must expose an "email" field
	Link    string // Verification or reset URL
	AppName string // Application name used in subject and body
}

// Message is a fully-prepared outgoing message.
// It is built per call and handed to the provider once.
type Message struct {
	From    string
	To      string
	Subject string
	Text    string
	HTML    string // Empty means no HTML part
}

// SendResult is returned by the provider when a message is accepted.
type SendResult struct {
	ID string // Provider-assigned message identifier
}

// Address builds a sender or recipient address.
// Returns "Name <email>" when name is set, otherwise email as is.
func Address(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}
