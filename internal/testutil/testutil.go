// Package testutil provides shared test helpers for creating config files.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig writes a minimal config file into tmpDir and returns its
// path. Credentials are not written: they bind from environment variables
// only, so tests set them with t.Setenv.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	configContent := `provider: rulebased
openai:
  model: gpt-4o-mini
server:
  address: ":8080"
`
	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}
