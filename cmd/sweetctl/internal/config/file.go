package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Validate checks the values a config file may hold.
func (fs fileSettings) Validate() error {
	if fs.APIURL != "" {
		u, err := url.Parse(fs.APIURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid %s %q: expected an http(s) URL", KeyAPIURL, fs.APIURL)
		}
	}
	if fs.LogLevel != "" {
		if _, err := zapcore.ParseLevel(fs.LogLevel); err != nil {
			return fmt.Errorf("invalid %s %q: %w", KeyLogLevel, fs.LogLevel, err)
		}
	}
	return nil
}

// FileKeys lists the keys `config set` accepts.
func FileKeys() []string {
	return []string{KeyAPIURL, KeyLogLevel}
}

// SetFileValue stores key=value in home/config.yaml, keeping other keys.
// An empty value removes the key.
func SetFileValue(home, key, value string) (string, error) {
	path := filepath.Join(home, configFileName)
	fs, _, err := readFile(path)
	if err != nil {
		return "", err
	}

	value = strings.TrimSpace(value)
	switch key {
	case KeyAPIURL:
		fs.APIURL = strings.TrimRight(value, "/")
	case KeyLogLevel:
		fs.LogLevel = strings.ToLower(value)
	default:
		return "", fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(FileKeys(), ", "))
	}

	if err := writeFile(path, fs); err != nil {
		return "", err
	}
	return path, nil
}

// writeFile writes the config file atomically (temp file + rename).
func writeFile(path string, fs fileSettings) error {
	if err := fs.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(fs)
	if err != nil {
		return fmt.Errorf("marshal config yaml: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
