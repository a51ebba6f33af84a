// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

// wiipatch checks and patches Nintendo Wii asset files: Yaz0-compressed U8
// font archives (".szs"), BRFNT fonts and rating tables.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/woozymasta/wiiasset/asseterr"
)

// Exit codes by error class.
const (
	exitOK         = 0
	exitFailure    = 1
	exitValidation = 2
	exitFormat     = 3
	exitNotFound   = 4
)

// errUsage means command line arguments are wrong.
var errUsage = asseterr.Validation("usage")

const usage = `wiipatch checks and patches Wii asset files.

Usage:
  wiipatch check [flags] FILE...
  wiipatch font [flags] --entry NAME -o OUT IN.szs PAYLOAD
  wiipatch yaz0 compress|decompress [flags] -o OUT IN
  wiipatch u8 list [flags] FILE
  wiipatch rating dump [flags] FILE
  wiipatch rating set [flags] --profile ID -o OUT FILE

Run "wiipatch COMMAND --help" for command flags.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code.
func run(args []string, stdout io.Writer, stderr io.Writer) int {
	err := dispatch(args, stdout, stderr)
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}

	fmt.Fprintf(stderr, "error: %v\n", err)
	return exitCode(err)
}

// exitCode maps error class to exit code.
func exitCode(err error) int {
	switch {
	case errors.Is(err, asseterr.ErrValidation):
		return exitValidation
	case errors.Is(err, asseterr.ErrFormat):
		return exitFormat
	case errors.Is(err, asseterr.ErrNotFound):
		return exitNotFound
	default:
		return exitFailure
	}
}

// dispatch routes args to a subcommand.
func dispatch(args []string, stdout io.Writer, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return fmt.Errorf("%w: missing command", errUsage)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "check":
		return runCheck(rest, stdout, stderr)
	case "font":
		return runFont(rest, stdout, stderr)
	case "yaz0":
		return runYaz0(rest, stdout, stderr)
	case "u8":
		return runU8(rest, stdout, stderr)
	case "rating":
		return runRating(rest, stdout, stderr)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return nil
	default:
		fmt.Fprint(stderr, usage)
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

// newLogger builds a text logger at level writing to w.
func newLogger(level string, w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errConfig, err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	return logger, nil
}

// command is a parsed subcommand environment.
type command struct {
	cfg    *Config
	log    *logrus.Logger
	fs     *pflag.FlagSet
	stdout io.Writer
}

// parseCommand parses flags for name, loads config and builds the logger.
// register adds command-specific flags before parsing.
func parseCommand(name string, args []string, stdout io.Writer, stderr io.Writer, register func(*pflag.FlagSet)) (*command, error) {
	var common commonFlags
	fs := pflag.NewFlagSet("wiipatch "+name, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	common.add(fs)
	if register != nil {
		register(fs)
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}

	if help, _ := fs.GetBool("help"); help {
		fmt.Fprintf(stderr, "Usage of wiipatch %s:\n%s", name, fs.FlagUsages())
		return nil, pflag.ErrHelp
	}

	cfg, err := common.resolve(fs)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.LogLevel, stderr)
	if err != nil {
		return nil, err
	}

	return &command{cfg: cfg, log: logger, fs: fs, stdout: stdout}, nil
}

// requireArgs checks positional argument count.
func (c *command) requireArgs(lo int, hi int) ([]string, error) {
	args := c.fs.Args()
	if len(args) < lo || (hi >= 0 && len(args) > hi) {
		return nil, fmt.Errorf("%w: %s expects %d..%d arguments, got %d", errUsage, c.fs.Name(), lo, hi, len(args))
	}

	return args, nil
}
