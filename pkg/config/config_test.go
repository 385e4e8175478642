package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cbodonnell/bomberman/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		file    string
		args    []string
		want    *Config
		wantErr bool
	}{
		{
			name: "defaults",
			want: &Config{ServerURL: DefaultServerURL, PreferencesURL: DefaultPreferencesURL, LogLevel: log.LogLevelInfo},
		},
		{
			name: "env file",
			file: "BOMBERMAN_SERVER_URL=wss://bomberman.example.com/ws\nBOMBERMAN_LOG_LEVEL=debug\n",
			want: &Config{ServerURL: "wss://bomberman.example.com/ws", PreferencesURL: DefaultPreferencesURL, LogLevel: log.LogLevelDebug},
		},
		{
			name: "environment wins over file",
			env:  map[string]string{EnvPreferencesURL: "memory://"},
			file: "BOMBERMAN_PREFERENCES_URL=sqlite://other.db\n",
			want: &Config{ServerURL: DefaultServerURL, PreferencesURL: "memory://", LogLevel: log.LogLevelInfo},
		},
		{
			name: "flags win over environment",
			env:  map[string]string{EnvServerURL: "ws://env:1"},
			args: []string{"-server-url", "ws://flag:2", "-debug-addr", ":6060", "-record", "out.zst", "-debug", "-spectator", "-headless"},
			want: &Config{
				ServerURL:      "ws://flag:2",
				PreferencesURL: DefaultPreferencesURL,
				LogLevel:       log.LogLevelInfo,
				DebugAddr:      ":6060",
				RecordPath:     "out.zst",
				Debug:          true,
				Spectator:      true,
				Headless:       true,
			},
		},
		{name: "bad log level", args: []string{"-log-level", "loud"}, wantErr: true},
		{name: "bad scheme", args: []string{"-server-url", "http://localhost:8765"}, wantErr: true},
		{name: "missing host", args: []string{"-server-url", "ws://"}, wantErr: true},
		{name: "unknown flag", args: []string{"-nope"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			envFile := filepath.Join(t.TempDir(), ".env")
			if tt.file != "" {
				require.NoError(t, os.WriteFile(envFile, []byte(tt.file), 0o600))
			}
			// godotenv writes into the process environment
			for _, key := range []string{EnvServerURL, EnvPreferencesURL, EnvLogLevel} {
				if _, ok := tt.env[key]; !ok {
					t.Setenv(key, "")
					os.Unsetenv(key)
				}
			}

			got, err := LoadFrom(envFile, tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
