package cmd

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(prev)
	})
}

// runCommand executes the root command with a no-op logger. Flag values stick
// to the command between invocations, so callers pass every flag explicitly.
func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	logger = zap.NewNop()
	RootCmd.SetArgs(args)
	return RootCmd.Execute()
}

func TestExportCommandWithConfigFile(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("a.txt", []byte("hello"), 0o644))
	configContent := `specific_files:
  - a.txt
output_filename: context.txt
`
	require.NoError(t, os.WriteFile("collo.yaml", []byte(configContent), 0o644))

	err := runCommand(t, "export", "-c", "collo.yaml", "-o", "")
	require.NoError(t, err)

	data, err := os.ReadFile("context.txt")
	require.NoError(t, err)
	assert.Equal(t, "a.txt\n```\nhello\n```\n\n", string(data))
}

func TestExportCommandOutputOverride(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("a.txt", []byte("hello"), 0o644))
	configContent := `specific_files:
  - a.txt
output_filename: ignored.txt
`
	require.NoError(t, os.WriteFile("collo.yaml", []byte(configContent), 0o644))

	err := runCommand(t, "export", "-c", "collo.yaml", "-o", "override.txt")
	require.NoError(t, err)

	_, statErr := os.Stat("override.txt")
	assert.NoError(t, statErr)
	_, statErr = os.Stat("ignored.txt")
	assert.True(t, os.IsNotExist(statErr))
}

func TestExportCommandMissingConfigUsesDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	// No config file and none of the default inputs exist: the run still
	// succeeds and produces an empty artifact under the default name.
	err := runCommand(t, "export", "-c", "collo.yaml", "-o", "")
	require.NoError(t, err)

	data, err := os.ReadFile("project_context.txt")
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestExportCommandMalformedConfig(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("collo.yaml", []byte("specific_files: {not: [valid"), 0o644))

	err := runCommand(t, "export", "-c", "collo.yaml", "-o", "")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	err := runCommand(t, "version", "--short")
	assert.NoError(t, err)
}
