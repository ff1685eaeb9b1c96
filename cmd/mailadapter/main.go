// Command mailadapter renders, previews and sends the transactional emails
// provided by the mail adapter.
//
//	mailadapter render verification --app-name Acme --format text
//	mailadapter render --all --out ./preview --app-name Acme
//	mailadapter serve --addr :3000 --props brand.yaml
//	mailadapter send password-reset --to alice@example.com --link https://acme.com/reset --app-name Acme
//
// Settings come from the environment (RESEND_API_KEY, RESEND_FROM_EMAIL, RESEND_FROM_NAME,
// MAIL_BRAND_LOGO_URL, MAIL_BRAND_COLOR, SENTRY_DSN, LOG_LEVEL), optionally loaded from a .env file.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
)

func main() {
	err := newRootCmd().ExecuteContext(context.Background())
	sentry.Flush(2 * time.Second)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
