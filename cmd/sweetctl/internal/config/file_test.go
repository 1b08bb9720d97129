package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetFileValue(t *testing.T) {
	home := isolate(t)

	path, err := SetFileValue(home, KeyAPIURL, "https://shop.example.com/api/")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "config.yaml"), path)

	_, err = SetFileValue(home, KeyLogLevel, "DEBUG")
	require.NoError(t, err)

	s, err := Resolve(Flags{})
	require.NoError(t, err)
	assert.Equal(t, "https://shop.example.com/api", s.APIURL)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, path, s.ConfigFile)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	assert.NoFileExists(t, path+".tmp")
}

func TestSetFileValue_EmptyRemovesKey(t *testing.T) {
	home := isolate(t)
	_, err := SetFileValue(home, KeyLogLevel, "error")
	require.NoError(t, err)
	_, err = SetFileValue(home, KeyLogLevel, "")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(home, "config.yaml"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "log_level")
}

func TestSetFileValue_Rejects(t *testing.T) {
	tests := []struct {
		name, key, value, wantErr string
	}{
		{"unknown key", "home", "/tmp", "unknown config key"},
		{"relative url", KeyAPIURL, "localhost:5000", "expected an http(s) URL"},
		{"bad level", KeyLogLevel, "loud", "invalid log_level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := isolate(t)
			_, err := SetFileValue(home, tt.key, tt.value)
			assert.ErrorContains(t, err, tt.wantErr)
			assert.NoFileExists(t, filepath.Join(home, "config.yaml"))
		})
	}
}
