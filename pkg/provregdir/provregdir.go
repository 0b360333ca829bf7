// Package provregdir encapsulates path knowledge for the .provreg/
// directory. It provides a Dir value object with accessors for the config
// file and the credentials file used as the OPENAI_API_KEY fallback.
package provregdir

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/germanamz/provreg/pkg/profile"
)

// Dir is a value object that resolves paths within a .provreg/ directory.
type Dir struct {
	root string
}

// New creates a Dir rooted at the given path. The path is converted to an
// absolute path. No I/O is performed.
func New(root string) Dir {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}

	return Dir{root: abs}
}

// Default returns the Dir under the user's home directory.
func Default() (Dir, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Dir{}, fmt.Errorf("provregdir: resolve home: %w", err)
	}

	return New(filepath.Join(home, ".provreg")), nil
}

// Root returns the absolute path to the .provreg/ directory.
func (d Dir) Root() string { return d.root }

// ConfigPath returns the path to the provider config file.
func (d Dir) ConfigPath() string { return filepath.Join(d.root, "config.yaml") }

// CredentialsPath returns the path to the credentials file, a dotenv-format
// file holding API keys outside the process environment.
func (d Dir) CredentialsPath() string { return filepath.Join(d.root, "credentials.env") }

// Credentials reads the credentials file. A missing file yields an empty
// map, not an error.
func (d Dir) Credentials() (map[string]string, error) {
	creds, err := godotenv.Read(d.CredentialsPath())
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("provregdir: read credentials: %w", err)
	}

	return creds, nil
}

// PrimaryKey adapts the credentials file into a resolver fallback hook for
// profile.PrimaryKeyEnvVar. Read errors count as "not found".
func (d Dir) PrimaryKey() func() (string, bool) {
	return func() (string, bool) {
		creds, err := d.Credentials()
		if err != nil {
			return "", false
		}

		key, ok := creds[profile.PrimaryKeyEnvVar]
		return key, ok
	}
}
