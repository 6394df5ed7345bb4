package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/lumen/internal/syntax"
)

var fmtCheck bool

var fmtCmd = &cobra.Command{
	Use:   "fmt FILE",
	Short: "Print a file in canonical form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return exit(runFmt(env, args[0], fmtCheck))
	},
}

func init() {
	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "check format; exit 1 if the file would change")
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(e *environment, path string, check bool) int {
	m, ok := parseFile(e, path)
	if !ok {
		return 1
	}
	out := syntax.Format(m)

	if !check {
		fmt.Print(out)
		return 0
	}
	orig, err := os.ReadFile(path)
	if err != nil {
		return e.report(err, path)
	}
	if string(orig) != out {
		fmt.Println(path)
		return 1
	}
	return 0
}
