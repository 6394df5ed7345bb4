package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/you-not-fish/lumen/internal/logging"
	"github.com/you-not-fish/lumen/internal/syntax"
)

const (
	historyFile = ".lumen_history"
	promptMain  = "lumen> "
	promptCont  = "...... "
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse statements interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return exit(runRepl(env))
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(e *environment) int {
	fmt.Println("lumen REPL\nStatements end with ';'. Ctrl+D exits, :quit too.")
	log := logging.Component(e.log, "repl")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		src, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			return 0
		}
		switch strings.TrimSpace(src) {
		case "":
			continue
		case ":quit":
			return 0
		}

		if err := evalInput(os.Stdout, os.Stderr, src); err != nil {
			log.Debug("rejected input", "error", err)
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
	}
}

// prompter reads one line of input.
type prompter interface {
	Prompt(prompt string) (string, error)
}

// readByParseProbe reads lines until they form input the parser does not
// reject for ending too early. ok is false at end of input.
func readByParseProbe(p prompter, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		pr := prompt
		if b.Len() > 0 {
			pr = cont
		}
		line, err := p.Prompt(pr)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C drops the pending input.
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		if _, err := syntax.ParseString(src); syntax.IsIncomplete(err) {
			continue
		}
		return src, true
	}
}

// evalInput parses src and prints its tree, or the error.
func evalInput(stdout, stderr io.Writer, src string) error {
	m, err := syntax.ParseString(src)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}
	syntax.Fprint(stdout, m)
	return nil
}
