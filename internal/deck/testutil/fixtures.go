package testutil

import (
	"os"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// LoadYAML decodes the YAML fixture at path into a T.
func LoadYAML[T any](t *testing.T, path string) T {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err, "reading fixture %s", path)

	var fixture T
	require.NoError(t, yaml.Unmarshal(data, &fixture), "decoding fixture %s", path)

	return fixture
}

// LoadTOML decodes the TOML fixture at path into a T. Unknown keys are
// reported as failures so typos in fixtures do not go unnoticed.
func LoadTOML[T any](t *testing.T, path string) T {
	t.Helper()

	var fixture T
	meta, err := toml.DecodeFile(path, &fixture)
	require.NoError(t, err, "decoding fixture %s", path)
	require.Empty(t, meta.Undecoded(), "unknown keys in fixture %s", path)

	return fixture
}
