package codextest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"strings"
)

// Requirement is one tool from the requirements file.
type Requirement struct {
	Name string

	// Path is where the tool resolved to; empty when not found.
	Path  string
	Found bool
}

// RequirementsReport is the result of checking one requirements file.
type RequirementsReport struct {
	Path         string
	FileFound    bool
	Requirements []Requirement
}

// Lines renders the report as the lines printed by Print.
func (r *RequirementsReport) Lines() []string {
	if !r.FileFound {
		return []string{"Requirements file not found at " + r.Path}
	}
	lines := make([]string, 0, len(r.Requirements))
	for _, req := range r.Requirements {
		if req.Found {
			lines = append(lines, req.Name+": found")
		} else {
			lines = append(lines, req.Name+": not found")
		}
	}
	return lines
}

// Print writes the report to w, one line each.
func (r *RequirementsReport) Print(w io.Writer) error {
	for _, line := range r.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Checker verifies that the tools listed in a requirements file are
// installed on the search path.
type Checker struct {
	cfg Config
}

// NewChecker returns a Checker bound to cfg.
func NewChecker(cfg Config) *Checker {
	return &Checker{cfg: cfg.withDefaults()}
}

// Check reads the requirements file at path, or the configured default when
// path is empty, and resolves each listed tool. A missing file is reported
// in the result, not as an error.
func (c *Checker) Check(path string) (*RequirementsReport, error) {
	if path == "" {
		path = c.cfg.RequirementsFile
	}
	r := &RequirementsReport{Path: path}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.cfg.Log.WithField("path", path).Debug("requirements file not found")
			return r, nil
		}
		return r, fmt.Errorf("failed to open requirements file %s: %w", path, err)
	}
	defer f.Close()
	r.FileFound = true

	// Lines are read whole; a tool list has no reason to cap their length.
	br := bufio.NewReader(f)
	for {
		line, err := br.ReadString('\n')
		if name := strings.TrimSpace(line); name != "" {
			r.Requirements = append(r.Requirements, c.resolve(name))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return r, fmt.Errorf("failed to read requirements file %s: %w", path, err)
		}
	}
	return r, nil
}

// resolve looks name up on the search path. A match found only through a
// relative PATH entry such as "." still counts as installed.
func (c *Checker) resolve(name string) Requirement {
	req := Requirement{Name: name}
	resolved, err := c.cfg.LookPath(name)
	if err == nil || (errors.Is(err, exec.ErrDot) && resolved != "") {
		req.Path = resolved
		req.Found = true
	}
	c.cfg.Log.WithField("tool", name).WithField("found", req.Found).Debug("requirement checked")
	return req
}

// Run checks path and prints the report to the configured stdout. Nothing is
// printed when the file exists but cannot be read.
func (c *Checker) Run(path string) (*RequirementsReport, error) {
	r, err := c.Check(path)
	if err != nil {
		return r, err
	}
	return r, r.Print(c.cfg.Stdout)
}
