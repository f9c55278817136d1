package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/xxcmd/internal/config/loader"
	"github.com/dshills/xxcmd/internal/controller"
)

// EnvPrefix is the prefix of environment variables read as settings.
const EnvPrefix = "XXCMD_"

// Default locations.
const (
	DefaultShell          = "/bin/sh"
	DefaultGlobalDatabase = "/etc/xxcmd"
	DatabaseFileName      = ".xxcmd"
	DirName               = "xxcmd"
	FileName              = "config.toml"
)

// Config holds every setting.
type Config struct {
	Display  DisplayConfig  `toml:"display"`
	Search   SearchConfig   `toml:"search"`
	Database DatabaseConfig `toml:"database"`
	Exec     ExecConfig     `toml:"exec"`
	Logging  LoggingConfig  `toml:"logging"`
}

// DisplayConfig controls how the console is drawn.
type DisplayConfig struct {
	ShowLabels         bool     `toml:"show_labels"`
	ShowCommands       bool     `toml:"show_commands"`
	AlignCommands      bool     `toml:"align_commands"`
	BracketLabels      bool     `toml:"bracket_labels"`
	BoldLabels         bool     `toml:"bold_labels"`
	WholeLineSelection bool     `toml:"whole_line_selection"`
	DrawWindowBorder   bool     `toml:"draw_window_border"`
	DisplayHelpFooter  bool     `toml:"display_help_footer"`
	LabelPadding       int      `toml:"label_padding"`
	FlashDuration      Duration `toml:"flash_duration"`
}

// SearchConfig controls filtering and ordering.
type SearchConfig struct {
	// Mode is a search policy name: labels-first, labels-only or both.
	Mode string `toml:"mode"`
	// Sort is none, label or command.
	Sort          string `toml:"sort"`
	CaseSensitive bool   `toml:"case_sensitive"`
}

// DatabaseConfig locates the command databases.
type DatabaseConfig struct {
	File       string `toml:"file"`
	GlobalFile string `toml:"global_file"`
	LoadGlobal bool   `toml:"load_global"`
}

// ExecConfig controls how a chosen command runs.
type ExecConfig struct {
	Shell        string `toml:"shell"`
	EchoCommands bool   `toml:"echo_commands"`
}

// LoggingConfig controls the log output.
type LoggingConfig struct {
	Level string `toml:"level"`
	// File receives log output. Empty discards logs.
	File string `toml:"file"`
}

// Duration is a time.Duration written as "1s" in TOML.
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Default returns the built-in configuration. lookupEnv resolves SHELL
// and HOME; pass os.LookupEnv outside tests.
func Default(lookupEnv func(string) (string, bool)) Config {
	shell := DefaultShell
	if v, ok := lookupEnv("SHELL"); ok && v != "" {
		shell = v
	}
	dbFile := DatabaseFileName
	if home, ok := lookupEnv("HOME"); ok && home != "" {
		dbFile = filepath.Join(home, DatabaseFileName)
	}

	return Config{
		Display: DisplayConfig{
			ShowLabels:         true,
			ShowCommands:       true,
			AlignCommands:      true,
			BracketLabels:      false,
			BoldLabels:         true,
			WholeLineSelection: true,
			DrawWindowBorder:   true,
			DisplayHelpFooter:  true,
			LabelPadding:       2,
			FlashDuration:      Duration(time.Second),
		},
		Search: SearchConfig{
			Mode: controller.LabelsFirst.String(),
			Sort: controller.SortNone.String(),
		},
		Database: DatabaseConfig{
			File:       dbFile,
			GlobalFile: DefaultGlobalDatabase,
			LoadGlobal: true,
		},
		Exec: ExecConfig{
			Shell:        shell,
			EchoCommands: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, DirName, FileName), nil
}

// Load builds the configuration from defaults, the TOML file at path and
// the XXCMD_* entries of environ. A missing file is not an error.
func Load(path string, environ []string) (Config, error) {
	return LoadFS(loader.DefaultFS(), path, environ)
}

// LoadFS is Load over a custom file system.
func LoadFS(fsys loader.FileSystem, path string, environ []string) (Config, error) {
	cfg := Default(lookupIn(environ))

	fileValues, err := loader.NewTOMLLoaderWithFS(fsys, path).Load()
	if err != nil {
		return cfg, err
	}
	envValues, err := loader.NewEnvLoaderFrom(EnvPrefix, environ).Load()
	if err != nil {
		return cfg, err
	}

	if err := decode(loader.DeepMerge(fileValues, envValues), &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// WriteDefault writes cfg as TOML to path, creating parent directories.
// It returns ErrConfigExists if path is already present.
func WriteDefault(path string, cfg Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s: %w", path, ErrConfigExists)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", path, err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// ControllerOptions converts the search settings. The names were checked
// when the config was decoded.
func (c Config) ControllerOptions() controller.Options {
	search, _ := controller.ParseSearchPolicy(c.Search.Mode)
	sort, _ := controller.ParseSortPolicy(c.Search.Sort)
	return controller.Options{
		Search:        search,
		Sort:          sort,
		CaseSensitive: c.Search.CaseSensitive,
	}
}

func lookupIn(environ []string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		for _, kv := range environ {
			if k, v, ok := strings.Cut(kv, "="); ok && k == key {
				return v, true
			}
		}
		return "", false
	}
}
