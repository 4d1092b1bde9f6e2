package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/typefind/index"
	"github.com/dhamidi/typefind/typesig"
)

func newSearchCmd() *cobra.Command {
	var (
		src   sourceOptions
		out   outputOptions
		limit int
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find methods by signature or name",
		Long: `Index every public method and print those whose name or signature
contains the query. Case and whitespace are ignored, and the shortest
signatures come first.

Examples:
  typefind search -cp rt.jar "String -> int"
  typefind search -cp rt.jar --profile compact1 "(T -> R)"
  typefind search --stub util.jstub -n 0 "list<e>->boolean"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := out.encoder(cmd)
			if err != nil {
				return err
			}
			if err := src.check(); err != nil {
				return err
			}
			ix, err := loadIndex(cmd.Context(), &src)
			if err != nil {
				return err
			}
			for _, r := range ix.Search(strings.Join(args, " "), limit) {
				if err := enc.Encode(r); err != nil {
					return err
				}
			}
			return nil
		},
	}

	src.addFlags(cmd)
	out.addFlags(cmd)
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of results, 0 for all")

	return cmd
}

// loadIndex describes every allowed public method into a new index.
func loadIndex(ctx context.Context, src *sourceOptions) (*index.Index, error) {
	allow, err := src.pattern()
	if err != nil {
		return nil, err
	}
	p, err := src.open(ctx)
	if err != nil {
		return nil, err
	}
	defer p.Close()

	ix := index.New()
	stats, err := ix.Load(ctx, typesig.Methods(p.Classes(allow)))
	if err != nil {
		return nil, fmt.Errorf("index: %w", err)
	}
	if stats.Failed > 0 {
		log.Warningf("%d methods could not be described", stats.Failed)
	}
	return ix, nil
}
