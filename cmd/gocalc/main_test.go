package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sivchari/gocalc/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	configFile = ""
	verbose = false

	t.Cleanup(func() {
		configFile = ""
		verbose = false
		_ = configInitCmd.Flags().Set("force", "false")
	})

	var out bytes.Buffer

	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)

	if args == nil {
		args = []string{}
	}

	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return out.String(), err
}

func TestRootCmd_RunsCalculator(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := execute(t, "1\n2\n3\n5\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Welcome to the Simple Calculator!")
	assert.Contains(t, out, "✓ 2.0 + 3.0 = 5.0")
	assert.Contains(t, out, "Thank you for using the calculator. Goodbye!")
}

func TestRootCmd_RejectsArguments(t *testing.T) {
	_, err := execute(t, "", "extra")
	require.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "gocalc version "+version+"\n", out)
}

func TestConfigInitCmd(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	out, err := execute(t, "", "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created "+config.DefaultFile)

	_, err = os.Stat(filepath.Join(dir, config.DefaultFile))
	require.NoError(t, err)

	_, err = execute(t, "", "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "", "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigValidateCmd(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("log:\n  level: debug\n"), 0600))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("log:\n  level: chatty\n"), 0600))

	out, err := execute(t, "", "config", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")

	out, err = execute(t, "", "config", "validate", bad)
	require.Error(t, err)
	assert.Contains(t, out, "Configuration validation failed")
}

func TestRootCmd_BadConfig(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("log:\n  format: xml\n"), 0600))

	_, err := execute(t, "5\n", "--config", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create engine")
}
