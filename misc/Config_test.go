package misc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("GROQASSIST_CONFIG", path)
	ResetConfigForTest()
	t.Cleanup(ResetConfigForTest)
}

func TestGetConfigValueDefault_MissingFile(t *testing.T) {
	t.Setenv("GROQASSIST_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
	ResetConfigForTest()
	t.Cleanup(ResetConfigForTest)

	assert.Equal(t, "fallback", GetConfigValueDefault("llm", "MODEL", "fallback"))
}

func TestGetConfigValueDefault_ReadsSectionKey(t *testing.T) {
	writeConfig(t, "llm:\n  MODEL: llama3-70b-8192\n  BASE_URL: \"  http://localhost:8080/v1  \"\n")

	assert.Equal(t, "llama3-70b-8192", GetConfigValueDefault("llm", "MODEL", "fallback"))
	// Values are trimmed.
	assert.Equal(t, "http://localhost:8080/v1", GetConfigValueDefault("llm", "BASE_URL", ""))
	// Missing key in present section.
	assert.Equal(t, "d", GetConfigValueDefault("llm", "MISSING", "d"))
	// Missing section.
	assert.Equal(t, "d", GetConfigValueDefault("nope", "KEY", "d"))
}

func TestGetConfigValueDefault_MalformedFile(t *testing.T) {
	writeConfig(t, "not: [valid: yaml: here\n")

	assert.Equal(t, "d", GetConfigValueDefault("llm", "MODEL", "d"))
}

func TestGetMaxContext(t *testing.T) {
	writeConfig(t, "misc:\n  MaxContext: \"8\"\n")
	assert.Equal(t, 8*1024, GetMaxContext())
}

func TestGetMaxContext_DefaultAndInvalid(t *testing.T) {
	writeConfig(t, "misc:\n  MaxContext: \"zero\"\n")
	assert.Equal(t, 32*1024, GetMaxContext())
}
