package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/mailadapter/pkg/mailer"
)

func newSendCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a message through Resend",
	}

	cmd.AddCommand(
		newSendTemplatedCmd(a, "verification", "Send the email verification message",
			func(ctx context.Context, m mailer.Adapter, p mailer.LinkParams) (*mailer.SendResult, error) {
				return m.SendVerificationEmail(ctx, p)
			}),
		newSendTemplatedCmd(a, "password-reset", "Send the password reset message",
			func(ctx context.Context, m mailer.Adapter, p mailer.LinkParams) (*mailer.SendResult, error) {
				return m.SendPasswordResetEmail(ctx, p)
			}),
		newSendRawCmd(a),
	)

	return cmd
}

type sendFunc func(ctx context.Context, m mailer.Adapter, p mailer.LinkParams) (*mailer.SendResult, error)

func newSendTemplatedCmd(a *app, use, short string, send sendFunc) *cobra.Command {
	var to, link, appName string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.adapter()
			if err != nil {
				return err
			}

			res, err := send(cmd.Context(), m, mailer.LinkParams{
				Link:    link,
				AppName: appName,
				User:    mailer.Fields{mailer.EmailField: to},
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "recipient address")
	cmd.Flags().StringVar(&link, "link", "", "action link")
	cmd.Flags().StringVar(&appName, "app-name", "", "application name")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("link")
	_ = cmd.MarkFlagRequired("app-name")

	return cmd
}

func newSendRawCmd(a *app) *cobra.Command {
	var opts mailer.MailOptions

	cmd := &cobra.Command{
		Use:   "raw",
		Short: "Send an arbitrary message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.adapter()
			if err != nil {
				return err
			}

			res, err := m.SendMail(cmd.Context(), opts)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&opts.To, "to", "", "recipient address")
	cmd.Flags().StringVar(&opts.Subject, "subject", "", "subject line")
	cmd.Flags().StringVar(&opts.Text, "text", "", "plain text body")
	cmd.Flags().StringVar(&opts.HTML, "html", "", "HTML body")
	cmd.Flags().StringVar(&opts.From, "from", "", "sender (default RESEND_FROM_EMAIL)")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}
