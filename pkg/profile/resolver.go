package profile

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/germanamz/provreg/pkg/envlookup"
)

const (
	// PrimaryKeyEnvVar is the one credential variable with fallback
	// handling: when a profile names it and the variable is unset, the
	// resolver consults its PrimaryKey hook before failing.
	PrimaryKeyEnvVar = "OPENAI_API_KEY"

	// CustomHeadersEnvVar holds process-wide header overrides as
	// newline-separated "Name: Value" lines. Entries here win over
	// same-named per-profile headers.
	CustomHeadersEnvVar = "PROVREG_CUSTOM_HEADERS"
)

// MissingKeyError reports a required credential variable that is unset or
// blank. Instructions, when present, tell the user how to obtain and set
// a value.
type MissingKeyError struct {
	Var          string
	Instructions string
}

func (e *MissingKeyError) Error() string {
	if e.Instructions != "" {
		return fmt.Sprintf("profile: environment variable %s is not set: %s", e.Var, e.Instructions)
	}

	return fmt.Sprintf("profile: environment variable %s is not set", e.Var)
}

// Resolver resolves profiles against an environment. The zero value reads
// the real process environment, logs through slog.Default, and has no
// primary-key fallback. Resolvers hold no mutable state and are safe for
// concurrent use.
type Resolver struct {
	// Env is the environment to read. Nil falls back to envlookup.OS().
	Env envlookup.Env

	// Log receives non-fatal diagnostics from header substitution.
	// Nil falls back to slog.Default().
	Log *slog.Logger

	// PrimaryKey is an optional alternate lookup for PrimaryKeyEnvVar,
	// consulted only after the environment itself comes up empty.
	PrimaryKey func() (string, bool)
}

func (r *Resolver) env() envlookup.Env {
	if r.Env != nil {
		return r.Env
	}

	return envlookup.OS()
}

func (r *Resolver) log() *slog.Logger {
	if r.Log != nil {
		return r.Log
	}

	return slog.Default()
}

// APIKey returns the credential for p, or ("", nil) when the profile needs
// none. A variable that is unset, empty, or all whitespace yields a
// *MissingKeyError carrying the variable name and the profile's
// remediation instructions. The environment is re-read on every call.
func (r *Resolver) APIKey(p Profile) (string, error) {
	if p.EnvKey == "" {
		return "", nil
	}

	if v, ok := r.env().Lookup(p.EnvKey); ok && strings.TrimSpace(v) != "" {
		return v, nil
	}

	if p.EnvKey == PrimaryKeyEnvVar && r.PrimaryKey != nil {
		if v, ok := r.PrimaryKey(); ok && strings.TrimSpace(v) != "" {
			return v, nil
		}
	}

	return "", &MissingKeyError{Var: p.EnvKey, Instructions: p.EnvKeyInstructions}
}

// Headers returns the final header set for p. Per-profile custom headers
// are inserted first, then the process-wide CustomHeadersEnvVar block, so
// a deployment-wide override shadows a same-named provider default. Every
// value from both sources goes through placeholder substitution.
func (r *Resolver) Headers(p Profile) map[string]string {
	headers := make(map[string]string, len(p.CustomHeaders))

	for name, value := range p.CustomHeaders {
		headers[name] = r.substitute(value)
	}

	block, ok := r.env().Lookup(CustomHeadersEnvVar)
	if !ok {
		return headers
	}

	for _, line := range strings.Split(block, "\n") {
		name, value, found := strings.Cut(line, ":")
		if !found {
			// Ad hoc operator input; drop malformed lines quietly.
			continue
		}

		headers[strings.TrimSpace(name)] = r.substitute(strings.TrimSpace(value))
	}

	return headers
}

// substitute replaces each ${VAR} in s with the environment value of VAR.
// A missing variable becomes the empty string plus a warning. An opening
// ${ with no closing brace ends the scan, leaving the rest of s verbatim.
// Purely textual: no nesting, escapes, or default-value syntax.
func (r *Resolver) substitute(s string) string {
	var b strings.Builder

	rest := s
	for {
		start := strings.Index(rest, "${")
		if start < 0 {
			break
		}

		end := strings.Index(rest[start+2:], "}")
		if end < 0 {
			break
		}

		name := rest[start+2 : start+2+end]

		value, ok := r.env().Lookup(name)
		if !ok {
			r.log().Warn("environment variable not found in header template", "var", name)
		}

		b.WriteString(rest[:start])
		b.WriteString(value)

		rest = rest[start+3+end:]
	}

	b.WriteString(rest)

	return b.String()
}
