// Package registry holds the set of known provider profiles: built-in
// defaults compiled into the binary plus user-defined entries loaded from
// the provreg config file, which override or extend the defaults by id.
package registry

import (
	"sort"

	"github.com/germanamz/provreg/pkg/profile"
)

// Registry maps provider ids to profiles. Build one with New and treat it
// as read-only afterwards.
type Registry map[string]profile.Profile

// BuiltIns returns the default provider set. Only OpenAI ships built in;
// adjudicating which third-party providers to bundle is not this
// project's business, so everything else comes from user config.
func BuiltIns() Registry {
	return Registry{
		"openai": {
			Name:               "OpenAI",
			BaseURL:            "https://api.openai.com/v1",
			EnvKey:             "OPENAI_API_KEY",
			EnvKeyInstructions: "Create an API key (https://platform.openai.com) and export it as an environment variable.",
			WireAPI:            profile.WireAPIResponses,
		},
	}
}

// New merges the given overrides on top of the built-in defaults. An
// override with a built-in id replaces the built-in entirely.
func New(overrides map[string]profile.Profile) Registry {
	reg := BuiltIns()
	for id, p := range overrides {
		reg[id] = p
	}

	return reg
}

// Get returns the profile for id.
func (r Registry) Get(id string) (profile.Profile, bool) {
	p, ok := r[id]
	return p, ok
}

// IDs returns the registered provider ids in sorted order.
func (r Registry) IDs() []string {
	ids := make([]string, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}
