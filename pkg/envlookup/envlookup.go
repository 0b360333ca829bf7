// Package envlookup abstracts environment-variable access behind a small
// interface so resolution logic can run against deterministic fake
// environments in tests instead of mutating real process state.
package envlookup

import "os"

// Env looks up a variable by name. The boolean reports whether the
// variable is present at all; a present-but-empty variable returns
// ("", true).
type Env interface {
	Lookup(name string) (string, bool)
}

// OS returns an Env backed by the real process environment.
func OS() Env { return osEnv{} }

type osEnv struct{}

func (osEnv) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// Map is an in-memory Env for tests and static configuration.
type Map map[string]string

// Lookup implements Env.
func (m Map) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}
