package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

const editorName = "red"

// Config holds the settings that may be kept in the config file.
type Config struct {
	Prompt  string `toml:"prompt"`
	Verbose bool   `toml:"verbose"`
	Silent  bool   `toml:"silent"`
}

// ConfigFile returns the default location of the config file.
func ConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, editorName, editorName+".toml")
}

// LoadConfig decodes the TOML file at path. A missing file is only an
// error when required is set.
func LoadConfig(path string, required bool) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()

	if err := toml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Options turns the config into editor options.
func (c Config) Options() []Option {
	return []Option{
		WithPrompt(c.Prompt),
		WithVerbose(c.Verbose),
		WithSilent(c.Silent),
	}
}

func GenerateSampleConfig() string {
	return `# Sample red settings file

# prompt is printed before every command. The default is no prompt.
#prompt="*"

# verbose prints full diagnostics instead of "?".
#verbose=false

# silent suppresses the byte count printed when a file is loaded.
#silent=false
`
}
