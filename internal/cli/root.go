package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Single  bool   // evaluate in float32
	Stats   bool   // report kernel and interval counters
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the robustgeo CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "robustgeo",
		Short: "Evaluate exact geometric predicates",
		Long: `Evaluate filtered exact geometric predicates on planar points.

Each predicate is computed with outward-rounded interval arithmetic and, when
the interval cannot certify the sign, recomputed in exact arithmetic. The
answer is always the sign of the exact real value of the input coordinates.

Coordinates are positional arguments. Put "--" before the first coordinate
when any of them is negative.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flag", err)
	})

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log exact fallbacks to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVar(&opts.Single, "float32", false, "evaluate in single precision")
	cmd.PersistentFlags().BoolVar(&opts.Stats, "stats", false, "print predicate and interval counters")

	cmd.AddCommand(NewOrientCommand(opts))
	cmd.AddCommand(NewInCircleCommand(opts))
	cmd.AddCommand(NewPrefDirCommand(opts))
	cmd.AddCommand(NewConvexCommand(opts))
	cmd.AddCommand(NewDelaunayCommand(opts))
	cmd.AddCommand(NewPDDelaunayCommand(opts))

	return cmd
}
