// Package config loads user settings from an ini file and the environment.
//
// Lookup order for the file is the --config flag, $JSONVAL_CONFIG, then
// $XDG_CONFIG_HOME/jsonval/config.ini. A missing XDG file is not an error.
//
//	[format]
//	indent = 4        ; number of spaces, "tab", or a quoted literal
//
//	[output]
//	pager = true
//	color = auto      ; auto, always or never
//
//	[log]
//	level  = warn     ; debug, info, warn or error
//	format = text     ; text or json
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/samber/lo"
	"gopkg.in/ini.v1"

	"github.com/mpyw/jsonval/internal/jsonutil"
)

// Environment variables consulted by Load.
const (
	EnvPath     = "JSONVAL_CONFIG"
	EnvIndent   = "JSONVAL_INDENT"
	EnvLogLevel = "JSONVAL_LOG_LEVEL"
)

const (
	relativePath = "jsonval/config.ini"
	maxIndent    = 16
)

// ErrInvalidIndent is returned for indent values that are neither a width nor whitespace.
var ErrInvalidIndent = errors.New("invalid indent")

// ColorMode controls colored output.
type ColorMode string

// Supported color modes.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config holds user settings.
type Config struct {
	Indent    string
	Pager     bool
	Color     ColorMode
	LogLevel  string
	LogFormat string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Indent:    jsonutil.DefaultIndent,
		Pager:     true,
		Color:     ColorAuto,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Load returns Default overlaid with the config file and environment.
// An explicitly given path (argument or $JSONVAL_CONFIG) must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	path = lo.CoalesceOrEmpty(path, os.Getenv(EnvPath))
	if path == "" {
		if found, err := xdg.SearchConfigFile(relativePath); err == nil {
			path = found
		}
	}

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.loadEnv(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	f, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config %s: %w", path, err)
	}

	if raw := f.Section("format").Key("indent").String(); raw != "" {
		indent, err := ParseIndent(raw)
		if err != nil {
			return fmt.Errorf("%s: [format] indent: %w", path, err)
		}

		c.Indent = indent
	}

	output := f.Section("output")
	c.Pager = output.Key("pager").MustBool(c.Pager)
	c.Color = ColorMode(output.Key("color").In(string(c.Color), []string{
		string(ColorAuto), string(ColorAlways), string(ColorNever),
	}))

	log := f.Section("log")
	c.LogLevel = log.Key("level").MustString(c.LogLevel)
	c.LogFormat = log.Key("format").In(c.LogFormat, []string{"text", "json"})

	return nil
}

func (c *Config) loadEnv() error {
	if raw := os.Getenv(EnvIndent); raw != "" {
		indent, err := ParseIndent(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvIndent, err)
		}

		c.Indent = indent
	}

	c.LogLevel = lo.CoalesceOrEmpty(os.Getenv(EnvLogLevel), c.LogLevel)

	return nil
}

// ParseIndent interprets an indent setting.
// Accepted forms are a width between 1 and 16 ("4"), "tab", or a literal made of
// spaces and tabs.
func ParseIndent(raw string) (string, error) {
	if strings.EqualFold(raw, "tab") {
		return "\t", nil
	}

	if n, err := strconv.Atoi(raw); err == nil {
		if n < 1 || n > maxIndent {
			return "", fmt.Errorf("%w: width must be between 1 and %d, got %d", ErrInvalidIndent, maxIndent, n)
		}

		return strings.Repeat(" ", n), nil
	}

	if raw == "" || strings.Trim(raw, " \t") != "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidIndent, raw)
	}

	return raw, nil
}
