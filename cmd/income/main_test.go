package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/Veraticus/the-income-must-flow/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{name: "console info", level: "info", format: "console"},
		{name: "json debug", level: "debug", format: "json"},
		{name: "bad level", level: "loud", format: "console", wantErr: true},
		{name: "bad format", level: "info", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			viper.Set("logging.level", tt.level)
			viper.Set("logging.format", tt.format)

			err := setupLogging(&bytes.Buffer{})
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrInvalidConfig)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOpenLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "income.log")

	f, err := openLogFile(path)
	require.NoError(t, err)
	t.Cleanup(closeLogFile)

	assert.Equal(t, f, logFile)
	assert.FileExists(t, path)
}

func TestDatabasePath(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	path, err := databasePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "income", "income.db"), path)

	t.Setenv("INCOME_TEST_DIR", dir)
	viper.Set("database.path", "$INCOME_TEST_DIR/custom.db")
	path, err = databasePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "custom.db"), path)
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range newRootCmd().Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"add", "list", "categories", "auth", "import", "migrate", "version"} {
		assert.True(t, names[want], "missing %s command", want)
	}
}
