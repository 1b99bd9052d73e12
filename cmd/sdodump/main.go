// Command sdodump loads TOML catalogs and prints their types and object
// trees, and translates primitive type names between XSD and SDO.
package main

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	root := newRootCommand(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return 0
	}
	var failed *commandError
	if errors.As(err, &failed) {
		a.log().Error(failed.msg, "err", failed.err)
		return 1
	}
	// Anything else comes from argument or flag parsing.
	a.log().Error("invalid usage", "err", err)
	return 2
}

// commandError marks a failure after arguments were accepted.
type commandError struct {
	err error
	msg string
}

func (e *commandError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *commandError) Unwrap() error {
	return e.err
}

func fail(msg string, err error) error {
	return &commandError{msg: msg, err: err}
}

// log returns the configured logger, or a default one when configuration
// failed before a logger existed.
func (a *app) log() *log.Logger {
	if a.logger == nil {
		a.logger = newLogger(a.stderr, log.InfoLevel)
	}
	return a.logger
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: "sdodump",
		Level:  level,
	})
}
