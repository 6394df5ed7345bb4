package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/you-not-fish/lumen/internal/config"
	"github.com/you-not-fish/lumen/internal/diag"
	"github.com/you-not-fish/lumen/internal/logging"
)

var (
	cfgFile   string
	colorMode string
	logLevel  string
	verbose   bool
)

// env is the environment of the running command, set up before any
// subcommand runs.
var env = defaultEnvironment()

var rootCmd = &cobra.Command{
	Use:   "lumenc",
	Short: "lumen front end: tokenizer, parser and diagnostics",
	Long: `lumenc reads lumen source files and reports their syntax tree.

Commands:
  parse    - parse a file and print its AST
  tokens   - print the token stream of a file
  fmt      - print a file in canonical form
  repl     - parse statements interactively`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		env = e
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $LUMEN_CONFIG, ./lumen.toml, ./lumen.yaml)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "", "colour diagnostics: auto, always or never")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
}

// environment holds the resolved settings of one invocation.
type environment struct {
	cfg *config.Config
	log *slog.Logger
}

func defaultEnvironment() *environment {
	return &environment{cfg: config.Default(), log: logging.Discard()}
}

// setup loads the configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command) (*environment, error) {
	var (
		cfg *config.Config
		src string
		err error
	)
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
		src = cfgFile
	} else {
		cfg, src, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("color") {
		cfg.Diagnostics.Color = colorMode
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	log, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return nil, err
	}
	if src != "" {
		log.Debug("loaded config", "path", src)
	} else {
		log.Debug("using default config")
	}
	return &environment{cfg: cfg, log: log}, nil
}

// renderer returns a diagnostic renderer for f.
func (e *environment) renderer(f *os.File) *diag.Renderer {
	color := false
	switch e.cfg.Diagnostics.Color {
	case "always":
		color = true
	case "auto":
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return diag.NewRenderer(
		diag.WithColor(color),
		diag.WithFrameWidth(e.cfg.Diagnostics.FrameWidth),
		diag.WithOutput(f),
	)
}

// report renders err against the file at path to stderr and returns the
// exit status.
func (e *environment) report(err error, path string) int {
	serr := diag.WithSource(err, path)
	e.log.Debug("diagnostic", "code", serr.Code(), "path", path, "loc", serr.Loc)
	if rerr := e.renderer(os.Stderr).Render(os.Stderr, serr); rerr != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return 1
}
