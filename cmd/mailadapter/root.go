package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		envFile  string
		logLevel string
	)
	a := &app{}

	root := &cobra.Command{
		Use:           "mailadapter",
		Short:         "Render, preview and send transactional emails through Resend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(envFile, logLevel, cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", "", "load environment from this file (default ./.env if present)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides LOG_LEVEL)")

	root.AddCommand(
		newRenderCmd(a),
		newServeCmd(a),
		newSendCmd(a),
	)

	return root
}
