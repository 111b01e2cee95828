// Package testutil provides shared test helpers for creating config files.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a minimal config file and the export directory for testing.
// Any extra YAML is appended as is. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, extra string) string {
	t.Helper()

	exportDir := filepath.Join(tmpDir, "transcripts")
	require.NoError(t, os.MkdirAll(exportDir, 0755))

	configContent := fmt.Sprintf(`resources:
  source: catalog
transcripts:
  export_directory: %s
  format: text
`, exportDir) + extra

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupTestConfigWithAPIKeys sets fake credentials of every provider for tests
// that need them to be present.
func SetupTestConfigWithAPIKeys(t *testing.T, tmpDir string, extra string) string {
	t.Helper()
	t.Setenv("HUGGING_FACE_API_KEY", "fake-hf-key")
	t.Setenv("GOOGLE_TRANSLATE_API_KEY", "fake-google-key")
	t.Setenv("OPENAI_API_KEY", "fake-openai-key")
	return SetupTestConfig(t, tmpDir, extra)
}
