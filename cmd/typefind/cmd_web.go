package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/typefind/ui"
)

func newWebCmd() *cobra.Command {
	var (
		src  sourceOptions
		addr string
	)

	cmd := &cobra.Command{
		Use:   "web",
		Short: "Start the web search server",
		Long: `Index every public method and serve a search page. Results can be
bookmarked as /q/<query>, and /api/search?q=<query>&limit=<n> answers
with JSON.

Examples:
  typefind web -cp rt.jar --profile compact1
  typefind web --stub api/ --addr 127.0.0.1:9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := src.check(); err != nil {
				return err
			}
			ix, err := loadIndex(cmd.Context(), &src)
			if err != nil {
				return err
			}
			handler, err := ui.NewServer(ix)
			if err != nil {
				return fmt.Errorf("create server: %w", err)
			}

			displayAddr := addr
			if strings.HasPrefix(addr, ":") {
				displayAddr = "localhost" + addr
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Serving %d methods at http://%s\n", ix.Len(), displayAddr)

			server := &http.Server{Addr: addr, Handler: handler}
			go func() {
				<-cmd.Context().Done()
				server.Shutdown(context.Background())
			}()
			if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	src.addFlags(cmd)
	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "address to listen on")

	return cmd
}
