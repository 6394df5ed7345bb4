package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/lumen/internal/syntax"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE",
	Short: "Print the token stream of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return exit(runTokens(env, args[0]))
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(e *environment, path string) int {
	f, err := os.Open(path)
	if err != nil {
		return e.report(err, path)
	}
	defer f.Close()

	lr := syntax.NewLineReader(f)
	tz := syntax.NewTokenizer(lr)

	fmt.Printf("%-12s %-10s %s\n", "POSITION", "TOKEN", "LITERAL")
	fmt.Printf("%-12s %-10s %s\n", strings.Repeat("-", 12), strings.Repeat("-", 10), strings.Repeat("-", 20))

	n := 0
	for {
		tok, ok := tz.Next()
		if !ok {
			break
		}
		lit := ""
		if tok.IsLiteral() {
			lit = strconv.Quote(tok.Lit)
		}
		fmt.Printf("%-12s %-10s %s\n", tok.Loc, tok.Op, lit)
		n++
	}

	if err := tz.Err(); err != nil {
		return e.report(err, path)
	}
	if err := lr.Err(); err != nil {
		return e.report(fmt.Errorf("read %s: %w", path, err), path)
	}
	e.log.Debug("tokenized", "path", path, "tokens", n, "lines", tz.Lines())
	return 0
}
