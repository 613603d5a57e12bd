package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		envFile = ""
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "volleystats v"+version+"\n", out)
}

func TestEnvFileFlag(t *testing.T) {
	t.Run("missing file is an error", func(t *testing.T) {
		_, err := execute(t, "--env-file", filepath.Join(t.TempDir(), "nope.env"), "version")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "env file")
	})
}

func TestSeedRejectsUnknownRole(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("STORE_JWT_SECRET", "seed-test-secret-0123")
	t.Setenv("GIN_MODE", "test")
	t.Cleanup(func() { seedOpts.role = "director_tecnic" })

	_, err := execute(t, "seed", "--role", "capità")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid role "capità"`)
}
