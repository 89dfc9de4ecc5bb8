// SPDX-License-Identifier: MIT

// Package codextest looks for PostgreSQL connection settings on the local
// machine and checks that required command-line tools are installed.
//
// Nothing here talks to a database. The package reads environment
// variables, stats the well-known client files and resolves tool names on
// the search path. The companion CLI lives in cmd/codextest.
//
// # Install
//
//	go get github.com/bcomnes/codextest@latest
//
// # Quick start
//
//	cfg := codextest.DefaultConfig()
//
//	report := codextest.NewScanner(cfg).Scan()
//	report.Print(os.Stdout)
//
//	reqs, err := codextest.NewChecker(cfg).Check("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	reqs.Print(os.Stdout)
//
// # Configuration
//
// Every component takes a Config at construction time:
//
//   - HomeDir          : base for ~/.pgpass, ~/.pg_service.conf and the history file
//   - HistoryFile      : where invocations are appended (default ~/.codextest_history)
//   - RequirementsFile : tool list used when Check is given "" (default requirements.list next to the binary)
//   - LookupEnv        : environment lookup (default os.LookupEnv)
//   - LookPath         : executable lookup (default exec.LookPath)
//   - Stdout           : destination for Run output
//   - Log              : logrus logger for diagnostics (default: discard)
//
// DefaultConfig fills all of these from the running process.
//
// # Environment scan
//
// Scan reports, in this order, every one of DATABASE_URL, POSTGRES_URL,
// POSTGRES_URI, POSTGRES_DSN, PGHOST, PGPORT, PGUSER, PGPASSWORD and
// PGDATABASE that is set, followed by the pgpass file ($PGPASSFILE or
// ~/.pgpass) and the service file ($PGSERVICEFILE or ~/.pg_service.conf) when
// they exist. Files are only checked for existence.
//
// Inspect goes one step further for debugging: it parses those files and
// resolves the connection target with pgconn.ParseConfig, still without
// connecting.
//
// # Requirements file
//
// One tool name per line; blank lines are ignored:
//
//	psql
//	pg_dump
//
// # History
//
// History.Record appends the space-joined arguments of each invocation. Its
// error is informational; the CLI never fails because of it.
//
// # Versioning
//
// A version string is exposed as:
//
//	var Version = "vX.Y.Z"
//
// Generated documentation; update whenever public API or CLI flags change.
package codextest
