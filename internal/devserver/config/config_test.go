package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dev.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"listen_addr":":4000","shutdown_timeout":"1s"}`), 0o600))

	tests := []struct {
		name      string
		args      []string
		expected  *Config
		expectErr bool
	}{
		{
			name:     "defaults",
			expected: &Config{ListenAddr: ":3001", SecretKey: "secret-dev", ShutdownTimeout: 5 * time.Second, LogLevel: "info"},
		},
		{
			name:     "json then flags",
			args:     []string{"-c", path, "-s", "other", "-a", ":5000"},
			expected: &Config{ListenAddr: ":5000", SecretKey: "other", ShutdownTimeout: time.Second, LogLevel: "info"},
		},
		{name: "missing file", args: []string{"-config", filepath.Join(dir, "nope.json")}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.args)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
