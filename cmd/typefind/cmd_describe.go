package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/typefind/typesig"
)

func newDescribeCmd() *cobra.Command {
	var (
		src sourceOptions
		out outputOptions
	)

	cmd := &cobra.Command{
		Use:   "describe <class>...",
		Short: "Print the signatures of the public methods of classes",
		Long: `Print the simplified and full signature of every public method a class
declares itself.

Examples:
  typefind describe -cp rt.jar java.lang.String
  typefind describe --stub function.jstub java.util.function.Function
  typefind describe -cp lib/guava.jar -f json com.google.common.base.Strings`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := out.encoder(cmd)
			if err != nil {
				return err
			}
			if err := src.check(); err != nil {
				return err
			}
			p, err := src.open(cmd.Context())
			if err != nil {
				return err
			}
			defer p.Close()

			for _, name := range args {
				c, err := p.Lookup(name)
				if err != nil {
					return fmt.Errorf("describe %s: %w", name, err)
				}
				for _, m := range typesig.PublicMethods(c) {
					md, err := typesig.DescribeMethod(m)
					if err != nil {
						return fmt.Errorf("describe %s.%s: %w", name, m.Name(), err)
					}
					if err := enc.Encode(md.Record()); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}

	src.addFlags(cmd)
	out.addFlags(cmd)

	return cmd
}
