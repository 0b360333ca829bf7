// Package profile describes model provider connection profiles and resolves
// them against the process environment: the full request URL, the API key,
// and the final header set after placeholder substitution.
//
// Profiles can come from two places: built-in defaults (see pkg/registry)
// and user-defined entries in the provreg config file, which override or
// extend the defaults.
package profile

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// WireAPI is the wire protocol a provider speaks. Most third-party services
// only implement the classic Chat Completions JSON schema, whereas OpenAI
// itself (and a handful of others) additionally expose the newer Responses
// API. The two use different request/response shapes and cannot be detected
// at runtime, so each profile must declare which one it expects.
type WireAPI int

const (
	// WireAPIChat targets /chat/completions. Zero value, so it is the
	// default for profiles that don't declare a wire_api.
	WireAPIChat WireAPI = iota

	// WireAPIResponses targets the Responses API at /responses.
	WireAPIResponses
)

// String returns the config-file form of the variant.
func (w WireAPI) String() string {
	if w == WireAPIResponses {
		return "responses"
	}

	return "chat"
}

// UnmarshalYAML decodes the lowercase string forms "chat" and "responses".
func (w *WireAPI) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	switch s {
	case "chat", "":
		*w = WireAPIChat
	case "responses":
		*w = WireAPIResponses
	default:
		return fmt.Errorf("profile: unknown wire_api %q", s)
	}

	return nil
}

// MarshalYAML encodes the variant as its lowercase string form.
func (w WireAPI) MarshalYAML() (any, error) {
	return w.String(), nil
}

// Profile describes how to reach one OpenAI-compatible provider API. It is
// a value: construct it once from configuration and treat it as read-only.
type Profile struct {
	// Name is the friendly display name.
	Name string `yaml:"name"`

	// BaseURL is the provider's API base URL, without a trailing slash.
	// No normalization is applied.
	BaseURL string `yaml:"base_url"`

	// EnvKey names the environment variable holding the API key. Empty
	// means the provider needs no credential.
	EnvKey string `yaml:"env_key"`

	// EnvKeyInstructions is optional remediation text shown to the user
	// when the EnvKey variable is not set.
	EnvKeyInstructions string `yaml:"env_key_instructions"`

	// WireAPI selects the request/response schema and URL suffix.
	WireAPI WireAPI `yaml:"wire_api"`

	// QueryParams are appended to the built URL verbatim, in map order.
	QueryParams map[string]string `yaml:"query_params"`

	// CustomHeaders maps header names to template values. ${VAR}
	// placeholders in values are substituted from the environment.
	CustomHeaders map[string]string `yaml:"custom_headers"`
}

// FullURL composes the request URL from the base URL, the wire protocol
// suffix, and any query parameters. Keys and values are inserted verbatim,
// with no percent-encoding; callers needing escaping must pre-encode.
func (p Profile) FullURL() string {
	var query string
	if len(p.QueryParams) > 0 {
		pairs := make([]string, 0, len(p.QueryParams))
		for k, v := range p.QueryParams {
			pairs = append(pairs, k+"="+v)
		}

		query = "?" + strings.Join(pairs, "&")
	}

	switch p.WireAPI {
	case WireAPIResponses:
		return p.BaseURL + "/responses" + query
	default:
		return p.BaseURL + "/chat/completions" + query
	}
}
