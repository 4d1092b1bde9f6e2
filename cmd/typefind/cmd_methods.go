package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/typefind/typesig"
)

func newMethodsCmd() *cobra.Command {
	var (
		src sourceOptions
		out outputOptions
	)

	cmd := &cobra.Command{
		Use:   "methods",
		Short: "Print the signatures of every public method on the class path",
		Long: `Describe every public method of every public class, optionally restricted
to a set of packages. Methods that cannot be described are logged and
skipped.

Examples:
  typefind methods -cp rt.jar --profile compact1
  typefind methods -cp rt.jar -p java.util -p java.util.function -f json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := out.encoder(cmd)
			if err != nil {
				return err
			}
			if err := src.check(); err != nil {
				return err
			}
			allow, err := src.pattern()
			if err != nil {
				return err
			}
			p, err := src.open(cmd.Context())
			if err != nil {
				return err
			}
			defer p.Close()

			failed := 0
			for md, err := range typesig.Methods(p.Classes(allow)) {
				if ctxErr := cmd.Context().Err(); ctxErr != nil {
					return ctxErr
				}
				if err != nil {
					failed++
					log.Warningf("skipping: %s", err)
					continue
				}
				if err := enc.Encode(md.Record()); err != nil {
					return err
				}
			}
			if failed > 0 {
				log.Infof("%d methods could not be described", failed)
			}
			return nil
		},
	}

	src.addFlags(cmd)
	out.addFlags(cmd)

	return cmd
}
