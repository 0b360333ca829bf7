package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFullURL_Suffixes(t *testing.T) {
	tests := []struct {
		name string
		wire WireAPI
		want string
	}{
		{name: "chat", wire: WireAPIChat, want: "https://api.example.com/v1/chat/completions"},
		{name: "responses", wire: WireAPIResponses, want: "https://api.example.com/v1/responses"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Profile{Name: "Example", BaseURL: "https://api.example.com/v1", WireAPI: tc.wire}
			assert.Equal(t, tc.want, p.FullURL())
		})
	}
}

func TestFullURL_DefaultsToChat(t *testing.T) {
	p := Profile{Name: "Ollama", BaseURL: "http://localhost:11434/v1"}
	assert.Equal(t, "http://localhost:11434/v1/chat/completions", p.FullURL())
}

func TestFullURL_QueryParams(t *testing.T) {
	p := Profile{
		Name:        "Azure",
		BaseURL:     "https://x.openai.azure.com/openai",
		WireAPI:     WireAPIChat,
		QueryParams: map[string]string{"api-version": "2025-04-01-preview"},
	}

	assert.Equal(t, "https://x.openai.azure.com/openai/chat/completions?api-version=2025-04-01-preview", p.FullURL())
}

func TestFullURL_MultipleQueryParams(t *testing.T) {
	p := Profile{
		Name:        "Example",
		BaseURL:     "https://api.example.com/v1",
		QueryParams: map[string]string{"a": "1", "b": "2"},
	}

	// Entry order is unspecified; both renderings are valid.
	url := p.FullURL()
	assert.Contains(t, []string{
		"https://api.example.com/v1/chat/completions?a=1&b=2",
		"https://api.example.com/v1/chat/completions?b=2&a=1",
	}, url)
}

func TestFullURL_EmptyQueryParams(t *testing.T) {
	p := Profile{BaseURL: "https://api.example.com/v1", QueryParams: map[string]string{}}
	assert.Equal(t, "https://api.example.com/v1/chat/completions", p.FullURL())
}

func TestProfile_UnmarshalYAML_Defaults(t *testing.T) {
	doc := `
name: Ollama
base_url: http://localhost:11434/v1
`

	var p Profile
	require.NoError(t, yaml.Unmarshal([]byte(doc), &p))

	assert.Equal(t, "Ollama", p.Name)
	assert.Equal(t, "http://localhost:11434/v1", p.BaseURL)
	assert.Empty(t, p.EnvKey)
	assert.Equal(t, WireAPIChat, p.WireAPI)
	assert.Nil(t, p.QueryParams)
	assert.Nil(t, p.CustomHeaders)
}

func TestProfile_UnmarshalYAML_Full(t *testing.T) {
	doc := `
name: Azure
base_url: https://x.openai.azure.com/openai
env_key: AZURE_OPENAI_API_KEY
wire_api: responses
query_params:
  api-version: 2025-04-01-preview
custom_headers:
  X-Custom-Auth: ${CUSTOM_TOKEN}
  X-App-Version: 1.0.0
`

	var p Profile
	require.NoError(t, yaml.Unmarshal([]byte(doc), &p))

	assert.Equal(t, "AZURE_OPENAI_API_KEY", p.EnvKey)
	assert.Equal(t, WireAPIResponses, p.WireAPI)
	assert.Equal(t, map[string]string{"api-version": "2025-04-01-preview"}, p.QueryParams)
	assert.Equal(t, "${CUSTOM_TOKEN}", p.CustomHeaders["X-Custom-Auth"])
	assert.Equal(t, "1.0.0", p.CustomHeaders["X-App-Version"])
}

func TestWireAPI_UnmarshalYAML_Unknown(t *testing.T) {
	var p Profile
	err := yaml.Unmarshal([]byte("wire_api: grpc"), &p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown wire_api")
}

func TestWireAPI_MarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(Profile{Name: "OpenAI", WireAPI: WireAPIResponses})
	require.NoError(t, err)
	assert.Contains(t, string(out), "wire_api: responses")
}

func TestWireAPI_String(t *testing.T) {
	assert.Equal(t, "chat", WireAPIChat.String())
	assert.Equal(t, "responses", WireAPIResponses.String())
}
