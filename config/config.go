package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable that points at a config file.
const EnvVar = "MONKEY_CONFIG"

var ErrUnknownFormat = errors.New("unknown config format")

type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Mode selects what the REPL does with each line.
type Mode string

const (
	ModeLex   Mode = "lex"
	ModeParse Mode = "parse"
)

type Config struct {
	REPL REPLConfig `toml:"repl" yaml:"repl"`
	Log  LogConfig  `toml:"log" yaml:"log"`
}

type REPLConfig struct {
	Prompt      string `toml:"prompt" yaml:"prompt"`
	Mode        Mode   `toml:"mode" yaml:"mode"`
	HistoryFile string `toml:"history_file" yaml:"history_file"`
	Color       bool   `toml:"color" yaml:"color"`
}

type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
	// Trace turns on BEGIN/END tracing of the parser's grammar rules.
	Trace bool `toml:"trace" yaml:"trace"`
}

func Default() *Config {
	cfg := &Config{REPL: REPLConfig{Color: true}}
	cfg.applyDefaults()
	return cfg
}

// Load reads a TOML or YAML file, picked by extension.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	return LoadFromString(string(content), format)
}

func LoadFromString(content string, format Format) (*Config, error) {
	cfg := &Config{REPL: REPLConfig{Color: true}}

	switch format {
	case FormatTOML:
		if _, err := toml.Decode(content, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse toml config: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse yaml config: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by MONKEY_CONFIG, falling back to the
// default locations and finally to Default().
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}

	for _, p := range defaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

func defaultPaths() []string {
	paths := []string{"./monkey.toml", "./monkey.yaml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths,
			filepath.Join(dir, "monkey", "config.toml"),
			filepath.Join(dir, "monkey", "config.yaml"),
		)
	}
	return paths
}

func detectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

func (c *Config) applyDefaults() {
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = ">> "
	}
	if c.REPL.Mode == "" {
		c.REPL.Mode = ModeParse
	}
	if c.REPL.HistoryFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.REPL.HistoryFile = filepath.Join(home, ".monkey_history")
		}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func (c *Config) Validate() error {
	switch c.REPL.Mode {
	case ModeLex, ModeParse:
	default:
		return fmt.Errorf("invalid repl mode %q (want %q or %q)", c.REPL.Mode, ModeLex, ModeParse)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	return nil
}
