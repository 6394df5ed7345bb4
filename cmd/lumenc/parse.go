package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/lumen/internal/logging"
	"github.com/you-not-fish/lumen/internal/syntax"
)

var (
	parsePath   string
	parseFormat string
)

var parseCmd = &cobra.Command{
	Use:   "parse [FILE]",
	Short: "Parse a file and print its AST",
	Long: `Parse a lumen source file and print the resulting syntax tree.

On the first lexical or syntax error the offending line is shown with
a caret under the failing token and the command exits with status 1.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := inputPath(parsePath, args)
		if err != nil {
			return err
		}
		format := env.cfg.Output.Format
		if cmd.Flags().Changed("format") {
			format = parseFormat
		}
		return exit(runParse(env, path, format))
	},
}

func init() {
	parseCmd.Flags().StringVarP(&parsePath, "path", "p", "", "the path to the file to read")
	parseCmd.Flags().StringVar(&parseFormat, "format", "text", "AST output format (text or json)")
	rootCmd.AddCommand(parseCmd)
}

// inputPath picks the input file from the --path flag or the argument.
func inputPath(flag string, args []string) (string, error) {
	switch {
	case flag != "" && len(args) > 0:
		return "", errors.New("give the input file either as argument or with --path, not both")
	case flag != "":
		return flag, nil
	case len(args) > 0:
		return args[0], nil
	}
	return "", errors.New("no input file")
}

// parseFile parses the file at path. Errors are reported to stderr; ok is
// false if there were any.
func parseFile(e *environment, path string) (m *syntax.Module, ok bool) {
	log := logging.Component(e.log, "parse")

	f, err := os.Open(path)
	if err != nil {
		e.report(err, path)
		return nil, false
	}
	defer f.Close()

	lr := syntax.NewLineReader(f)
	m, err = syntax.Parse(lr)
	if rerr := lr.Err(); rerr != nil {
		e.report(fmt.Errorf("read %s: %w", path, rerr), path)
		return nil, false
	}
	if err != nil {
		e.report(err, path)
		return nil, false
	}

	log.Debug("parsed", "path", path, "statements", len(m.Stmts))
	return m, true
}

func runParse(e *environment, path, format string) int {
	m, ok := parseFile(e, path)
	if !ok {
		return 1
	}

	switch format {
	case "json":
		if err := syntax.FprintJSON(os.Stdout, m); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	case "text":
		syntax.Fprint(os.Stdout, m)
	default:
		fmt.Fprintf(os.Stderr, "error: unknown format %q\n", format)
		return 1
	}
	return 0
}
