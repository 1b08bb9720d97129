package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/sakshighanekar/sweetshelf/pkg/sdk"
)

const (
	envPrefix      = "SWEETSHELF_"
	configFileName = "config.yaml"
	defaultHomeDir = ".sweetshelf"
	defaultLevel   = "warn"
)

// Keys shared by the config file and the environment. The environment form is
// SWEETSHELF_ followed by the screaming-snake key, e.g. SWEETSHELF_API_URL.
const (
	KeyAPIURL         = "api_url"
	KeyLogLevel       = "log_level"
	KeyHome           = "home"
	KeyNonInteractive = "non_interactive"
)

// Settings is the resolved configuration for a run.
type Settings struct {
	APIURL         string
	LogLevel       string
	Home           string
	NonInteractive bool

	// ConfigFile is where file settings were read from, empty if none was found.
	ConfigFile string
}

// Flags holds command-line values. Empty strings mean the flag was not given.
type Flags struct {
	APIURL         string
	LogLevel       string
	NonInteractive bool
}

// fileSettings is the config.yaml shape.
type fileSettings struct {
	APIURL   string `yaml:"api_url,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
}

// EnvKey returns the environment variable for key.
func EnvKey(key string) string {
	return envPrefix + strcase.ToScreamingSnake(key)
}

// LoadDotEnv loads a .env file into the process environment without
// overriding variables that are already set. A missing file is ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// Resolve merges flags, environment, $SWEETSHELF_HOME/config.yaml and defaults,
// in that order of precedence.
func Resolve(flags Flags) (Settings, error) {
	home, err := resolveHome()
	if err != nil {
		return Settings{}, err
	}

	s := Settings{
		APIURL:   sdk.DefaultBaseURL,
		LogLevel: defaultLevel,
		Home:     home,
	}

	file, path, err := readFile(filepath.Join(home, configFileName))
	if err != nil {
		return Settings{}, err
	}
	s.ConfigFile = path
	override(&s.APIURL, file.APIURL)
	override(&s.LogLevel, file.LogLevel)

	override(&s.APIURL, os.Getenv(EnvKey(KeyAPIURL)))
	override(&s.LogLevel, os.Getenv(EnvKey(KeyLogLevel)))
	if v := os.Getenv(EnvKey(KeyNonInteractive)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid %s %q: %w", EnvKey(KeyNonInteractive), v, err)
		}
		s.NonInteractive = b
	}

	override(&s.APIURL, flags.APIURL)
	override(&s.LogLevel, flags.LogLevel)
	if flags.NonInteractive {
		s.NonInteractive = true
	}

	s.APIURL = strings.TrimRight(s.APIURL, "/")
	if err := (fileSettings{APIURL: s.APIURL, LogLevel: s.LogLevel}).Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func override(target *string, value string) {
	if v := strings.TrimSpace(value); v != "" {
		*target = v
	}
}

func resolveHome() (string, error) {
	if v := strings.TrimSpace(os.Getenv(EnvKey(KeyHome))); v != "" {
		return v, nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(userHome, defaultHomeDir), nil
}

func readFile(path string) (fileSettings, string, error) {
	var fs fileSettings
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fs, "", nil
		}
		return fs, "", fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return fs, "", fmt.Errorf("unmarshal config yaml %s: %w", path, err)
	}
	return fs, path, nil
}

// YAML renders the settings for `config view`.
func (s Settings) YAML() (string, error) {
	out, err := yaml.Marshal(map[string]any{
		KeyAPIURL:         s.APIURL,
		KeyLogLevel:       s.LogLevel,
		KeyHome:           s.Home,
		KeyNonInteractive: s.NonInteractive,
	})
	if err != nil {
		return "", fmt.Errorf("marshal settings: %w", err)
	}
	return string(out), nil
}
