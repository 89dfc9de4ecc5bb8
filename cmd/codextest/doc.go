// SPDX-License-Identifier: MIT

// Package main provides codextest, a command-line check for PostgreSQL
// client configuration and required tools on the local machine.
//
// # Install
//
//	go install github.com/bcomnes/codextest/cmd/codextest@latest
//
// # Synopsis
//
//	codextest [--test] | [-h|--help]
//
// # Options
//
//	--test       Print every PostgreSQL connection variable that is set, note
//	             the pgpass and service files when they exist, then report
//	             each tool in requirements.list as found or not found.
//	-h, --help   Show usage. Running with no arguments does the same.
//
// Only the first argument is considered. Anything else prints usage and
// exits 1.
//
// # Environment
//
//	DATABASE_URL, POSTGRES_URL, POSTGRES_URI, POSTGRES_DSN,
//	PGHOST, PGPORT, PGUSER, PGPASSWORD, PGDATABASE
//	                     Reported as NAME=value when set.
//	PGPASSFILE           pgpass location (default ~/.pgpass).
//	PGSERVICEFILE        Service file location (default ~/.pg_service.conf).
//	CODEXTEST_LOG_LEVEL  logrus level for stderr diagnostics (default "warn").
//	                     At "debug", --test also parses the pgpass and service
//	                     files and logs the resolved connection target.
//
// # Files
//
//	~/.codextest_history  Every invocation's arguments, one line each.
//	requirements.list     Tool names, one per line, next to the binary.
//
// # Examples
//
//	# What would psql pick up here?
//	codextest --test
//
//	# Same, with the parsed connection target on stderr
//	CODEXTEST_LOG_LEVEL=debug codextest --test
//
// # Exit status
//
// 0 for usage and --test; 1 for an unknown argument or a requirements file
// that exists but cannot be read. A history file that cannot be written
// never affects the exit status.
//
// Generated documentation; update when flags or behaviour change.
package main
