package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestConfig(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfig(t, tmpDir, "server:\n  port: 9090\n")

	want := filepath.Join(tmpDir, "config.yml")
	assert.Equal(t, want, got)

	content, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Contains(t, string(content), "export_directory: "+filepath.Join(tmpDir, "transcripts"))
	assert.Contains(t, string(content), "server:\n  port: 9090\n")

	info, err := os.Stat(filepath.Join(tmpDir, "transcripts"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSetupTestConfigWithAPIKeys(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfigWithAPIKeys(t, tmpDir, "")

	assert.Equal(t, filepath.Join(tmpDir, "config.yml"), got)
	assert.Equal(t, "fake-hf-key", os.Getenv("HUGGING_FACE_API_KEY"))
	assert.Equal(t, "fake-google-key", os.Getenv("GOOGLE_TRANSLATE_API_KEY"))
	assert.Equal(t, "fake-openai-key", os.Getenv("OPENAI_API_KEY"))
}
