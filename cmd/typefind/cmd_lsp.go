package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dhamidi/typefind/index"
	"github.com/dhamidi/typefind/lsp"
)

func newLSPCmd() *cobra.Command {
	var (
		src     sourceOptions
		address string
	)

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		Long: `Serve method search as workspace symbols over stdio, or over TCP with
--tcp. The index is rebuilt whenever a class path entry or stub file
changes.

Examples:
  typefind lsp -cp rt.jar --profile compact1
  typefind lsp --stub api/ --tcp 127.0.0.1:7998`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := src.check(); err != nil {
				return err
			}
			load := func(ctx context.Context) (*index.Index, error) {
				return loadIndex(ctx, &src)
			}
			server := lsp.NewServer(version, load, src.watched()...)
			if address != "" {
				return server.RunTCP(address)
			}
			return server.RunStdio()
		},
	}

	src.addFlags(cmd)
	cmd.Flags().StringVar(&address, "tcp", "", "listen on this address instead of stdio")

	return cmd
}
