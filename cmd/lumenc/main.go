// Package main implements the lumen front-end command.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		var code exitCode
		if errors.As(err, &code) {
			os.Exit(int(code))
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// exitCode carries a command's exit status through cobra. The command has
// already reported the failure.
type exitCode int

func (c exitCode) Error() string {
	return fmt.Sprintf("exit status %d", int(c))
}

// exit converts the status of a run function into a cobra error.
func exit(code int) error {
	if code == 0 {
		return nil
	}
	return exitCode(code)
}
