package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

var log = commonlog.GetLogger("typefind")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := newRootCmd()
	rootCmd.SetArgs(javaStyleArgs(os.Args[1:]))
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts globalOptions

	rootCmd := &cobra.Command{
		Use:     "typefind",
		Short:   "Search Java APIs by the shape of their method signatures",
		Version: version,
		Long: `typefind renders every public method of a set of Java classes as a
function from its arguments to its result, e.g.

  java.lang.String#length   String -> int
  java.util.List#sort       (List<E>, ((E, E) -> int)) -> ()

Classes come from a class path of directories and jars (-cp, or the
TYPEFIND_CLASSPATH environment variable) or from stub files declaring
interfaces and classes without bodies (--stub).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.Struct(&opts); err != nil {
				return validationError(err)
			}
			commonlog.Configure(opts.Verbosity, nil)
			if opts.NoColor {
				disableColor()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().CountVarP(&opts.Verbosity, "verbose", "v", "log more (repeat for more detail)")
	rootCmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newDescribeCmd())
	rootCmd.AddCommand(newMethodsCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newPackagesCmd())
	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newWebCmd())

	return rootCmd
}
