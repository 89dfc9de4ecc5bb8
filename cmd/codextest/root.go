package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bcomnes/codextest"
)

const usageText = `Usage: codextest [--test]

Options:
  --test       Scan environment for postgres DB connections and check requirements.
  -h, --help   Show this help message.

Command history is saved to ~/.codextest_history.`

// errUnknownCommand is returned for any first argument that is not a known
// option. Usage has already been printed when it is returned.
var errUnknownCommand = errors.New("unknown command")

// newRootCmd builds the single root command. Flag parsing is disabled so
// routing depends on the first argument alone and the rest are ignored.
func newRootCmd(cfg codextest.Config, logger *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:                "codextest [--test]",
		Short:              "Scan for PostgreSQL connection settings and required tools",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return dispatch(cfg, logger, args)
		},
	}
}

// execute runs cmd, except for cobra's hidden shell-completion request
// names, which cobra would route to its own command. Those go to dispatch
// like any other unknown first argument.
func execute(cmd *cobra.Command, cfg codextest.Config, logger *logrus.Logger, args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return dispatch(cfg, logger, args)
		}
	}
	return cmd.Execute()
}

func dispatch(cfg codextest.Config, logger *logrus.Logger, args []string) error {
	if len(args) == 0 {
		return printUsage(cfg.Stdout)
	}
	switch args[0] {
	case "-h", "--help":
		return printUsage(cfg.Stdout)
	case "--test":
		return runTest(cfg, logger)
	default:
		logger.WithField("arg", args[0]).Debug("unknown command")
		if err := printUsage(cfg.Stdout); err != nil {
			return err
		}
		return fmt.Errorf("%w: %s", errUnknownCommand, args[0])
	}
}

// runTest scans the environment, then checks the default requirements file.
func runTest(cfg codextest.Config, logger *logrus.Logger) error {
	report, err := codextest.NewScanner(cfg).Run()
	if err != nil {
		return fmt.Errorf("failed to print scan report: %w", err)
	}
	if logger.IsLevelEnabled(logrus.DebugLevel) {
		codextest.Inspect(report).Log(logger)
	}

	if _, err := codextest.NewChecker(cfg).Run(""); err != nil {
		return err
	}
	return nil
}

func printUsage(w io.Writer) error {
	_, err := fmt.Fprintln(w, usageText)
	return err
}
