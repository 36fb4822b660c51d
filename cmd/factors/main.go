package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Iron-Ham/factors/internal/cmd"
	"github.com/Iron-Ham/factors/internal/errors"
	"github.com/Iron-Ham/factors/internal/styles"
)

// Exit codes
const (
	exitOK    = 0
	exitError = 1
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and maps its outcome to a process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if err := cmd.Run(args, stdout, stderr); err != nil {
		reportError(stderr, err)
		return exitError
	}
	return exitOK
}

// reportError prints err to w. Warnings (bad input or usage) and failures
// get different label styles; errors not raised by this program are marked
// as internal.
func reportError(w io.Writer, err error) {
	label := styles.Error
	if errors.GetSeverity(err) <= errors.SeverityWarning {
		label = styles.Warning
	}

	msg := err.Error()
	if !errors.IsUserFacing(err) {
		msg = "internal error: " + msg
	}
	fmt.Fprintln(w, label.Render("Error:")+" "+msg)
}
