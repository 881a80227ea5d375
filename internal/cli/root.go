package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/villagegame/internal/config"
	"github.com/mcoot/villagegame/internal/factory"
	"github.com/mcoot/villagegame/internal/logging"
)

var (
	cfg       *Config
	loader    *config.Loader
	app       *factory.App
	logCloser io.Closer
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()
	logCloser = nil

	rootCmd := &cobra.Command{
		Use:   "village",
		Short: "Build a village on a grid and score it",
		Long: `village is a single-player tile-placement game.

Each building scores points from its neighbours and from the buildings sharing
its row and column. Boards can be played interactively with "play" or given as
layouts to "score" and "normalize", one argument per row, one glyph per cell.
Run "village types" to see the glyphs and scoring rules.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfg.ConfigFile, "config", "c", cfg.ConfigFile, "Rules config file, YAML/TOML/JSON (env: VILLAGE_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: VILLAGE_OUTPUT)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Debug logging")

	// Add subcommands
	rootCmd.AddCommand(newTypesCmd())
	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newNormalizeCmd())
	rootCmd.AddCommand(newPlayCmd())

	return rootCmd
}

// setup loads the rules and wires the application for the command about to run
func setup(cmd *cobra.Command) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	loader = config.NewLoader(cfg.ConfigFile)
	rules, err := loader.Load()
	if err != nil {
		return err
	}
	if cfg.Verbose {
		rules.Log.Level = "debug"
	}

	logger, closer, err := logging.New(rules.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	logCloser = closer

	app, err = factory.New(factory.Config{Rules: *rules, Logger: logger})
	return err
}

func newOutput(cmd *cobra.Command) *Output {
	return NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// run executes cmd and closes the log sink whether or not the command failed
func run(cmd *cobra.Command) error {
	err := cmd.Execute()
	if logCloser != nil {
		closeErr := logCloser.Close()
		logCloser = nil
		if err == nil {
			err = closeErr
		}
	}
	return err
}

// Execute runs the root command
func Execute() {
	if err := run(NewRootCmd()); err != nil {
		os.Exit(1)
	}
}
