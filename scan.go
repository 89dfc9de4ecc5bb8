package codextest

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// ConnectionEnvVars are the variables reported by Scan, in output order.
var ConnectionEnvVars = []string{
	"DATABASE_URL",
	"POSTGRES_URL",
	"POSTGRES_URI",
	"POSTGRES_DSN",
	"PGHOST",
	"PGPORT",
	"PGUSER",
	"PGPASSWORD",
	"PGDATABASE",
}

const (
	passfileEnv    = "PGPASSFILE"
	servicefileEnv = "PGSERVICEFILE"

	defaultPassfile    = ".pgpass"
	defaultServicefile = ".pg_service.conf"

	noConnectionInfo = "No postgres connection info found."
)

// EnvVar is a connection variable found in the environment.
type EnvVar struct {
	Name  string
	Value string
}

// Report is the result of one environment scan.
type Report struct {
	// Vars holds the present connection variables in ConnectionEnvVars order.
	Vars []EnvVar

	// Passfile is the resolved pgpass path; PassfileFound reports whether it exists.
	Passfile      string
	PassfileFound bool

	// Servicefile is the resolved service file path; ServicefileFound reports whether it exists.
	Servicefile      string
	ServicefileFound bool
}

// Empty reports whether the scan found no connection information at all.
func (r *Report) Empty() bool {
	return len(r.Vars) == 0 && !r.PassfileFound && !r.ServicefileFound
}

// Lines renders the report as the lines printed by Print.
func (r *Report) Lines() []string {
	var lines []string
	for _, v := range r.Vars {
		lines = append(lines, v.Name+"="+v.Value)
	}
	if r.PassfileFound {
		lines = append(lines, "Found pgpass file at "+r.Passfile)
	}
	if r.ServicefileFound {
		lines = append(lines, "Found pg service file at "+r.Servicefile)
	}
	if len(lines) == 0 {
		lines = append(lines, noConnectionInfo)
	}
	return lines
}

// Print writes the report to w, one line each.
func (r *Report) Print(w io.Writer) error {
	for _, line := range r.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Scanner looks for PostgreSQL connection settings. It only reads the
// environment and stats files.
type Scanner struct {
	cfg Config
}

// NewScanner returns a Scanner bound to cfg.
func NewScanner(cfg Config) *Scanner {
	return &Scanner{cfg: cfg.withDefaults()}
}

// Scan takes a fresh look at the environment and the well-known files.
func (s *Scanner) Scan() *Report {
	r := &Report{}
	for _, name := range ConnectionEnvVars {
		if v, ok := s.cfg.LookupEnv(name); ok {
			r.Vars = append(r.Vars, EnvVar{Name: name, Value: v})
		}
	}

	r.Passfile = s.resolve(passfileEnv, defaultPassfile)
	r.PassfileFound = exists(r.Passfile)

	r.Servicefile = s.resolve(servicefileEnv, defaultServicefile)
	r.ServicefileFound = exists(r.Servicefile)

	s.cfg.Log.WithFields(logrus.Fields{
		"vars":        len(r.Vars),
		"passfile":    r.Passfile,
		"servicefile": r.Servicefile,
	}).Debug("environment scanned")
	return r
}

// Run scans and prints the report to the configured stdout.
func (s *Scanner) Run() (*Report, error) {
	r := s.Scan()
	return r, r.Print(s.cfg.Stdout)
}

// resolve returns the value of env when set, even if empty, else the
// home-relative fallback.
func (s *Scanner) resolve(env, fallback string) string {
	if v, ok := s.cfg.LookupEnv(env); ok {
		return v
	}
	return s.cfg.homePath(fallback)
}

func exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
