package codextest

import (
	"github.com/jackc/pgpassfile"
	"github.com/jackc/pgservicefile"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

// urlEnvVars are the connection string variables, in the order they are
// preferred when resolving a target.
var urlEnvVars = []string{"DATABASE_URL", "POSTGRES_URL", "POSTGRES_URI", "POSTGRES_DSN"}

// Target is the connection a PostgreSQL client would attempt with the
// discovered settings. It never carries the password itself.
type Target struct {
	// Source names the variable the connection string came from, or
	// "environment" when only PG* variables and libpq defaults applied.
	Source      string
	Host        string
	Port        uint16
	Database    string
	User        string
	HasPassword bool
}

// Details is the parsed view of what Scan found. Every field is best-effort:
// a parse failure is kept next to the value it prevented.
type Details struct {
	// Passfile is the pgpass file that was parsed; empty when none was found.
	Passfile        string
	PassfileEntries int
	PassfileErr     error

	// Servicefile is the service file that was parsed; empty when none was found.
	Servicefile    string
	Services       []string
	ServicefileErr error

	Target    *Target
	TargetErr error
}

// Inspect parses the files named in r and resolves the effective connection
// target. It reads files only and never opens a connection.
func Inspect(r *Report) *Details {
	d := &Details{}

	if r.PassfileFound {
		d.Passfile = r.Passfile
		pf, err := pgpassfile.ReadPassfile(r.Passfile)
		if err != nil {
			d.PassfileErr = err
		} else {
			d.PassfileEntries = len(pf.Entries)
		}
	}

	if r.ServicefileFound {
		d.Servicefile = r.Servicefile
		sf, err := pgservicefile.ReadServicefile(r.Servicefile)
		if err != nil {
			d.ServicefileErr = err
		} else {
			for _, svc := range sf.Services {
				d.Services = append(d.Services, svc.Name)
			}
		}
	}

	source, connString := "environment", ""
	for _, v := range r.Vars {
		if isURLVar(v.Name) {
			source, connString = v.Name, v.Value
			break
		}
	}
	cc, err := pgconn.ParseConfig(connString)
	if err != nil {
		d.TargetErr = err
	} else {
		d.Target = &Target{
			Source:      source,
			Host:        cc.Host,
			Port:        cc.Port,
			Database:    cc.Database,
			User:        cc.User,
			HasPassword: cc.Password != "",
		}
	}
	return d
}

// Log writes the details to l at debug level.
func (d *Details) Log(l logrus.FieldLogger) {
	l = l.WithField("component", "inspect")
	switch {
	case d.PassfileErr != nil:
		l.WithError(d.PassfileErr).WithField("path", d.Passfile).Debug("pgpass file could not be parsed")
	case d.Passfile != "":
		l.WithField("path", d.Passfile).WithField("entries", d.PassfileEntries).Debug("pgpass file parsed")
	}
	switch {
	case d.ServicefileErr != nil:
		l.WithError(d.ServicefileErr).WithField("path", d.Servicefile).Debug("pg service file could not be parsed")
	case d.Servicefile != "":
		l.WithField("path", d.Servicefile).WithField("services", d.Services).Debug("pg service file parsed")
	}
	if d.TargetErr != nil {
		l.WithError(d.TargetErr).Debug("connection target could not be resolved")
		return
	}
	l.WithFields(logrus.Fields{
		"source":       d.Target.Source,
		"host":         d.Target.Host,
		"port":         d.Target.Port,
		"database":     d.Target.Database,
		"user":         d.Target.User,
		"has_password": d.Target.HasPassword,
	}).Debug("connection target resolved")
}

func isURLVar(name string) bool {
	for _, n := range urlEnvVars {
		if n == name {
			return true
		}
	}
	return false
}
