//go:build unit
// +build unit

package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRootCmd(t *testing.T) *cobra.Command {
	t.Helper()

	rootCmd := &cobra.Command{Use: "realshot-cli", SilenceUsage: true, SilenceErrors: true}
	AddConfigFlag(rootCmd)
	require.NoError(t, InitMigrateCommands(rootCmd))
	require.NoError(t, InitCleanupCommands(rootCmd))
	require.NoError(t, InitUserCommands(rootCmd))
	return rootCmd
}

func TestCommandTree(t *testing.T) {
	rootCmd := newRootCmd(t)

	for _, path := range [][]string{{"migrate"}, {"cleanup", "run"}, {"users", "promote"}} {
		cmd, _, err := rootCmd.Find(path)
		require.NoError(t, err)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}

	run, _, err := rootCmd.Find([]string{"cleanup", "run"})
	require.NoError(t, err)
	job, err := run.Flags().GetString("job")
	require.NoError(t, err)
	assert.Equal(t, "all", job)
}

func TestCleanupRun_UnknownJob(t *testing.T) {
	rootCmd := newRootCmd(t)
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"cleanup", "run", "--job", "everything"})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown cleanup job")
}

func TestUsersPromote_RequiresEmail(t *testing.T) {
	rootCmd := newRootCmd(t)
	rootCmd.SetArgs([]string{"users", "promote"})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--email is required")
}

func TestMigrate_MissingConfig(t *testing.T) {
	rootCmd := newRootCmd(t)
	rootCmd.SetArgs([]string{"migrate", "--config", filepath.Join(t.TempDir(), "missing.yaml")})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize config")
}

func TestConfigPath_Precedence(t *testing.T) {
	rootCmd := newRootCmd(t)

	t.Setenv("CONFIG_PATH", "")
	assert.Equal(t, defaultConfigPath, configPath(rootCmd))

	t.Setenv("CONFIG_PATH", "/etc/realshot/env.yaml")
	assert.Equal(t, "/etc/realshot/env.yaml", configPath(rootCmd))

	require.NoError(t, rootCmd.PersistentFlags().Set(configFlag, "/tmp/flag.yaml"))
	assert.Equal(t, "/tmp/flag.yaml", configPath(rootCmd))
}
