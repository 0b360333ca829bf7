package provregdir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaths(t *testing.T) {
	d := New("/tmp/project/.provreg")

	assert.Equal(t, "/tmp/project/.provreg", d.Root())
	assert.Equal(t, filepath.Join(d.Root(), "config.yaml"), d.ConfigPath())
	assert.Equal(t, filepath.Join(d.Root(), "credentials.env"), d.CredentialsPath())
}

func TestNew_RelativeBecomesAbsolute(t *testing.T) {
	d := New(".provreg")
	assert.True(t, filepath.IsAbs(d.Root()))
}

func TestCredentials(t *testing.T) {
	root := t.TempDir()
	d := New(root)

	content := "OPENAI_API_KEY=sk-from-file\nOTHER_KEY=abc\n"
	require.NoError(t, os.WriteFile(d.CredentialsPath(), []byte(content), 0o600))

	creds, err := d.Credentials()
	require.NoError(t, err)
	assert.Equal(t, "sk-from-file", creds["OPENAI_API_KEY"])
	assert.Equal(t, "abc", creds["OTHER_KEY"])
}

func TestCredentials_MissingFile(t *testing.T) {
	d := New(t.TempDir())

	creds, err := d.Credentials()
	require.NoError(t, err)
	assert.Empty(t, creds)
}

func TestPrimaryKey(t *testing.T) {
	root := t.TempDir()
	d := New(root)

	require.NoError(t, os.WriteFile(d.CredentialsPath(), []byte("OPENAI_API_KEY=sk-fallback\n"), 0o600))

	key, ok := d.PrimaryKey()()
	require.True(t, ok)
	assert.Equal(t, "sk-fallback", key)
}

func TestPrimaryKey_MissingFile(t *testing.T) {
	d := New(t.TempDir())

	_, ok := d.PrimaryKey()()
	assert.False(t, ok)
}
