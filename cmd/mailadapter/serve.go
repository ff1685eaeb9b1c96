package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/mailadapter/pkg/preview"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		props propsFlags
		addr  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve template previews over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := props.resolve(a)
			if err != nil {
				return err
			}

			srv := preview.New(
				preview.WithProps(p),
				preview.WithLogger(a.log),
			)
			return preview.Run(cmd.Context(), addr, srv.Handler(), a.log)
		},
	}

	props.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", ":3000", "listen address")

	return cmd
}
