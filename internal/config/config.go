package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"
)

// Environment variables read by the tool.
const (
	EnvFunctions = "ALIASES_FUNCTIONS"
	EnvConfig    = "ALIASES_CONFIG"
	EnvLogLevel  = "ALIASES_LOG_LEVEL"
	EnvShell     = "SHELL"
)

const defaultLogLevel = "warn"

var supportedShells = []string{"bash", "zsh", "sh", "fish"}

// Environment is the process state the configuration is built from.
// It is captured once at startup so that nothing below main reads the environment.
type Environment struct {
	HomeDir    string
	WorkDir    string
	ShellPath  string
	Functions  string
	ConfigPath string
	LogLevel   string
}

// EnvironmentFromOS captures the current process environment.
// A missing home directory is not an error; the global scope is then disabled.
func EnvironmentFromOS() (Environment, error) {
	wd, err := os.Getwd()
	if err != nil {
		return Environment{}, fmt.Errorf("config.EnvironmentFromOS: %w", err)
	}
	home, _ := os.UserHomeDir()
	return Environment{
		HomeDir:    home,
		WorkDir:    wd,
		ShellPath:  os.Getenv(EnvShell),
		Functions:  os.Getenv(EnvFunctions),
		ConfigPath: os.Getenv(EnvConfig),
		LogLevel:   os.Getenv(EnvLogLevel),
	}, nil
}

// File is the optional TOML configuration file.
type File struct {
	Template string `toml:"template"`
	Shell    string `toml:"shell"`
	LogLevel string `toml:"log_level"`
}

// Config is the resolved configuration handed to the components.
type Config struct {
	HomeDir string
	WorkDir string
	// ConfigPath is the file the configuration was read from, empty if none.
	ConfigPath string
	// TemplatePath overrides the bundled template when set.
	TemplatePath string
	// Shell forces the script dialect; empty means detect it from ShellPath.
	Shell     string
	ShellPath string
	LogLevel  string
	// PreviousFunctions are the function names defined by the last rehash.
	PreviousFunctions []string
}

// ShellName returns the shell dialect to render scripts for: the configured
// shell if any, otherwise the one ShellPath points to.
func (c Config) ShellName() string {
	if c.Shell != "" {
		return c.Shell
	}
	return DetectShell(c.ShellPath)
}

// DetectShell maps a shell path such as the value of $SHELL to a shell name.
// POSIX shells without their own dialect map to "sh"; unknown shells are
// returned as their base name.
func DetectShell(shellPath string) string {
	if shellPath == "" {
		return "sh"
	}
	name := strings.TrimPrefix(filepath.Base(shellPath), "-")
	switch name {
	case "dash", "ash", "ksh", "mksh":
		return "sh"
	}
	return name
}

// DefaultPath returns the configuration file location inside homeDir.
func DefaultPath(homeDir string) string {
	return filepath.Join(homeDir, ".config", "aliases", "config.toml")
}

// Load builds the Config for env. The file named by ALIASES_CONFIG must exist;
// the default file is optional. Environment values win over file values.
func Load(env Environment) (Config, error) {
	var file File
	path := env.ConfigPath
	explicit := path != ""
	if !explicit && env.HomeDir != "" {
		path = DefaultPath(env.HomeDir)
	}

	if path != "" {
		md, err := toml.DecodeFile(path, &file)
		switch {
		case err == nil:
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				return Config{}, fmt.Errorf("config.Load: %s: unknown key %q", path, undecoded[0].String())
			}
		case !explicit && errors.Is(err, fs.ErrNotExist):
			path = ""
		default:
			return Config{}, fmt.Errorf("config.Load: %w", err)
		}
	}

	cfg := Config{
		HomeDir:           env.HomeDir,
		WorkDir:           env.WorkDir,
		ConfigPath:        path,
		Shell:             file.Shell,
		ShellPath:         env.ShellPath,
		LogLevel:          file.LogLevel,
		PreviousFunctions: strings.Fields(env.Functions),
	}
	if env.LogLevel != "" {
		cfg.LogLevel = env.LogLevel
	}
	if file.Template != "" {
		cfg.TemplatePath = expandPath(file.Template, env.HomeDir, filepath.Dir(path))
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	c.Shell = strings.ToLower(c.Shell)
}

func (c *Config) validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config.Load: log_level: %w", err)
	}
	if c.Shell != "" && !slices.Contains(supportedShells, c.Shell) {
		return fmt.Errorf("config.Load: shell %q is not one of %s", c.Shell, strings.Join(supportedShells, ", "))
	}
	return nil
}

// expandPath resolves "~/" against homeDir and relative paths against baseDir.
func expandPath(path, homeDir, baseDir string) string {
	if homeDir != "" && (path == "~" || strings.HasPrefix(path, "~/")) {
		return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
	}
	if !filepath.IsAbs(path) {
		return filepath.Join(baseDir, path)
	}
	return path
}
