package codextest

import (
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const (
	// HistoryFileName is the history log kept in the user's home directory.
	HistoryFileName = ".codextest_history"

	// RequirementsFileName is the tool list read from next to the executable.
	RequirementsFileName = "requirements.list"
)

// Config holds everything the components read from the process. Tests build
// one by hand to point every path at a temporary directory.
type Config struct {
	// HomeDir is the user's home directory. Empty when it cannot be determined.
	HomeDir string

	// HistoryFile is the path invocations are appended to.
	HistoryFile string

	// RequirementsFile is the default tool list checked by --test.
	RequirementsFile string

	// LookupEnv reports the value of an environment variable and whether it is set.
	LookupEnv func(key string) (string, bool)

	// LookPath resolves a bare executable name on the search path.
	LookPath func(file string) (string, error)

	// Stdout receives all user-facing output.
	Stdout io.Writer

	// Log receives diagnostics. Nil means discard.
	Log logrus.FieldLogger
}

// DefaultConfig builds a Config from the running process.
func DefaultConfig() Config {
	cfg := Config{
		LookupEnv: os.LookupEnv,
		LookPath:  exec.LookPath,
		Stdout:    os.Stdout,
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.HomeDir = home
		cfg.HistoryFile = filepath.Join(home, HistoryFileName)
	}
	if exe, err := os.Executable(); err == nil {
		cfg.RequirementsFile = filepath.Join(filepath.Dir(exe), RequirementsFileName)
	} else {
		cfg.RequirementsFile = RequirementsFileName
	}
	return cfg
}

// withDefaults fills any unset function or writer so components never
// dereference nil.
func (c Config) withDefaults() Config {
	if c.LookupEnv == nil {
		c.LookupEnv = os.LookupEnv
	}
	if c.LookPath == nil {
		c.LookPath = exec.LookPath
	}
	if c.Stdout == nil {
		c.Stdout = io.Discard
	}
	if c.Log == nil {
		c.Log = NopLogger()
	}
	return c
}

// homePath joins name onto the home directory, or returns "" when the home
// directory is unknown.
func (c Config) homePath(name string) string {
	if c.HomeDir == "" {
		return ""
	}
	return filepath.Join(c.HomeDir, name)
}

// NopLogger returns a logger that discards everything.
func NopLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
