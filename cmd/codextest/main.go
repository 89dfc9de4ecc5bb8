// Package main implements the codextest CLI. It records every invocation in
// the history file, then either prints usage or scans the environment for
// PostgreSQL connection settings and checks the requirements file.
package main

import (
	"errors"
	"io"
	"os"

	"github.com/bcomnes/codextest"
)

func main() {
	os.Exit(run(os.Args[1:], codextest.DefaultConfig(), os.Stderr))
}

// run executes one invocation against cfg and returns the process exit code.
// Diagnostics go to stderr; everything user-facing goes to cfg.Stdout.
func run(args []string, cfg codextest.Config, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.LookupEnv == nil {
		cfg.LookupEnv = os.LookupEnv
	}

	logger := newLogger(stderr, cfg.LookupEnv)
	cfg.Log = logger
	logger.WithField("version", codextest.Version).Debug("codextest starting")

	if err := codextest.NewHistory(cfg.HistoryFile).Record(args); err != nil {
		logger.WithError(err).WithField("path", cfg.HistoryFile).Debug("history not recorded")
	}

	cmd := newRootCmd(cfg, logger)
	cmd.SetArgs(args)
	cmd.SetOut(cfg.Stdout)
	cmd.SetErr(stderr)

	if err := execute(cmd, cfg, logger, args); err != nil {
		if !errors.Is(err, errUnknownCommand) {
			logger.WithError(err).Error("codextest failed")
		}
		return 1
	}
	return 0
}
