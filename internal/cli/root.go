// Package cli provides the command-line interface for brandtinct.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/brandtinct/internal/colour"
	"github.com/jmylchreest/brandtinct/internal/version"
)

// rootOptions is state shared by every subcommand of one command tree.
type rootOptions struct {
	config   Config
	verbose  bool
	noColour bool
	logger   hclog.Logger
}

// NewRootCmd builds a fresh command tree. Defaults come from the
// environment; each call reads it again.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{
		config: NewConfigBuilder().WithEnvConfig().Build(),
		logger: hclog.NewNullLogger(),
	}

	rootCmd := &cobra.Command{
		Use:   "brandtinct",
		Short: "A brand colour system generator",
		Long: `brandtinct turns a brand personality into a complete, accessibility-checked
colour system: base colours, tint and shade ramps, neutrals, semantic colours,
a dark mode and quality metrics for contrast, colour vision deficiency and
competitor collisions.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = newLogger(opts.verbose, cmd.ErrOrStderr())
			colour.DisableColourOutput = !opts.colourEnabled(cmd.OutOrStdout())
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&opts.noColour, "no-colour", opts.config.NoColour, "disable ANSI colour swatches")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateCmd(opts))
	rootCmd.AddCommand(newContrastCmd(opts))
	rootCmd.AddCommand(newCVDCmd(opts))
	rootCmd.AddCommand(newCompetitorCmd(opts))
	rootCmd.AddCommand(newSeedsCmd(opts))
	rootCmd.AddCommand(newTemplatesCmd(opts))

	return rootCmd
}

// Execute runs the command tree. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger returns the named CLI logger: debug level when verbose,
// silent otherwise.
func newLogger(verbose bool, w io.Writer) hclog.Logger {
	if !verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "brandtinct",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "brandtinct",
		Output: w,
		Level:  hclog.Debug,
	})
}

// colourEnabled reports whether swatches should carry ANSI colour on w.
func (o *rootOptions) colourEnabled(w io.Writer) bool {
	if o.noColour {
		return false
	}
	f, ok := w.(*os.File)
	return ok && colour.SupportsANSIColours(f)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
