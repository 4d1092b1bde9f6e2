package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dhamidi/typefind/pkgpattern"
)

func newPackagesCmd() *cobra.Command {
	var (
		profile  string
		packages []string
	)

	cmd := &cobra.Command{
		Use:   "packages [name...]",
		Short: "Show or test a package allow-list",
		Long: `Without arguments, print the regular expression an allow-list compiles
to. With arguments, report for each package name whether it is allowed.
Subpackages are not included by their parent.

Examples:
  typefind packages --profile compact1
  typefind packages -p java.util -p java.util.function java.util.stream`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := sourceOptions{Profile: profile, Packages: packages}
			if err := validate.StructPartial(&opts, "Profile", "Packages"); err != nil {
				return validationError(err)
			}
			if profile == "" && len(packages) == 0 {
				opts.Profile = string(pkgpattern.Full)
			}
			allow, err := opts.pattern()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(w, allow.String())
				return nil
			}

			allowed := color.New(color.FgGreen)
			rejected := color.New(color.FgRed)
			for _, name := range args {
				if allow.IsAllowedNamespace(name) {
					fmt.Fprintf(w, "%s %s\n", allowed.Sprint("allowed "), name)
				} else {
					fmt.Fprintf(w, "%s %s\n", rejected.Sprint("rejected"), name)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "", "JDK profile: compact1, compact2, compact3 or full (default full)")
	cmd.Flags().StringSliceVarP(&packages, "package", "p", nil, "packages to allow instead of a profile")

	return cmd
}
