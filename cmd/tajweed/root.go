package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/raphi011/tajweed/internal/config"
	"github.com/raphi011/tajweed/internal/log"
	"github.com/raphi011/tajweed/internal/output"
	"github.com/raphi011/tajweed/internal/ui/styles"
)

// Command group IDs for organizing help output
const (
	GroupCache  = "cache"
	GroupIndex  = "index"
	GroupConfig = "config"
)

// newRootCmd builds the command tree. Running the root command without a
// subcommand performs the download sweep.
func newRootCmd() *cobra.Command {
	var (
		verbose bool
		quiet   bool
		flags   sweepFlags
	)

	cmd := &cobra.Command{
		Use:   "tajweed",
		Short: "Download and cache tajweed verse markup",
		Long: `tajweed downloads the tajweed-annotated HTML of every Quran verse from the
quran.com API and caches it as one file per verse:

  <output_dir>/<chapter>/<verse>.html

Verses that are already cached are skipped, so an interrupted run can simply
be started again. A failing verse is reported and the download continues.`,
		Args:                       cobra.NoArgs,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2, // Enable typo suggestions
		Example: `  tajweed                       # Download everything not yet cached
  tajweed -o ./data             # Use a different output directory
  tajweed --chapters 1,36,67-78 # Only some chapters
  tajweed --chapters kahf -n    # Show what would be fetched
  tajweed --progress            # Progress bar instead of one line per verse`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate mutually exclusive flags
			if verbose && quiet {
				return fmt.Errorf("--verbose and --quiet are mutually exclusive")
			}

			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			styles.Init(cfg.Theme)

			// Rebuild the logger now that verbosity flags are parsed
			l := log.New(log.FromContext(ctx).Writer(), verbose, quiet)
			cmd.SetContext(log.WithLogger(ctx, l))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd, flags)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show HTTP requests being made")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	flags.register(cmd)

	// Version flag
	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	cmd.AddGroup(
		&cobra.Group{ID: GroupCache, Title: "Cache Commands:"},
		&cobra.Group{ID: GroupIndex, Title: "Index Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Cache commands
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newShowCmd())

	// Index commands
	cmd.AddCommand(newChaptersCmd())

	// Config commands
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newCompletionCmd())

	return cmd
}

// Execute builds the root command and runs it with a signal-aware context.
func Execute() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctx = config.WithConfig(ctx, &cfg)

	// Create logger (stderr for diagnostics); verbosity is applied once flags are parsed
	ctx = log.WithLogger(ctx, log.New(os.Stderr, false, false))

	// Add output printer (stdout for primary data), downsampling colors for pipes
	ctx = output.WithPrinter(ctx, colorprofile.NewWriter(os.Stdout, os.Environ()))

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'tajweed -h' for help")
		cancel()
		os.Exit(1)
	}
}
