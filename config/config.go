// Package config loads controller and logging settings from TOML.
//
//	[log]
//	level = "debug"
//
//	[controllers.bundle]
//	action_suffix = "Action"
//	default_action = "index"
//	disable_default = false
package config

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rohanthewiz/serr"
)

var (
	// ErrUnknownKeys is returned when a document holds keys no setting uses.
	ErrUnknownKeys = errors.New("config: unknown keys")

	// ErrEmptyDefault is returned when default_action is present but blank.
	// Omit the key to keep the built-in default.
	ErrEmptyDefault = errors.New("config: empty default_action")
)

// Config is the decoded document.
type Config struct {
	Log         LogConfig                   `toml:"log"`
	Controllers map[string]ControllerConfig `toml:"controllers"`
}

// LogConfig selects the minimum level the default logger emits.
type LogConfig struct {
	Level string `toml:"level"`
}

// ControllerConfig is the per-controller configuration surface.
type ControllerConfig struct {
	ActionSuffix string `toml:"action_suffix"`
	// DefaultAction is nil when the key is absent, so the built-in default
	// applies. A present but blank value is rejected by Load and Parse.
	DefaultAction  *string `toml:"default_action"`
	DisableDefault bool    `toml:"disable_default"`
}

// Load reads and decodes the TOML file at path.
func Load(path string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, serr.Wrap(err, "path", path)
	}
	if err = checkUndecoded(md); err != nil {
		return nil, serr.Wrap(err, "path", path)
	}
	if err = cfg.validate(); err != nil {
		return nil, serr.Wrap(err, "path", path)
	}
	return &cfg, nil
}

// Parse decodes a TOML document held in memory.
func Parse(doc string) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(doc, &cfg)
	if err != nil {
		return nil, serr.Wrap(err, "source", "inline")
	}
	if err = checkUndecoded(md); err != nil {
		return nil, err
	}
	if err = cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return &UnknownKeysError{Keys: names}
}

// validate rejects settings that decode but cannot be honoured.
func (c *Config) validate() error {
	for _, name := range c.ControllerNames() {
		cc := c.Controllers[name]
		if cc.DefaultAction != nil && strings.TrimSpace(*cc.DefaultAction) == "" {
			return &EmptyDefaultError{Controller: name}
		}
	}
	return nil
}

// EmptyDefaultError names the controller whose default_action is blank.
type EmptyDefaultError struct {
	Controller string
}

func (e *EmptyDefaultError) Error() string {
	return ErrEmptyDefault.Error() + " for controller " + strconv.Quote(e.Controller)
}

func (e *EmptyDefaultError) Is(target error) bool {
	return target == ErrEmptyDefault
}

// UnknownKeysError lists keys that were present but not decoded.
type UnknownKeysError struct {
	Keys []string
}

func (e *UnknownKeysError) Error() string {
	return ErrUnknownKeys.Error() + ": " + strings.Join(e.Keys, ", ")
}

func (e *UnknownKeysError) Is(target error) bool {
	return target == ErrUnknownKeys
}

// Controller returns the settings for name, or the zero value when the
// document has no entry for it.
func (c *Config) Controller(name string) ControllerConfig {
	if c == nil || c.Controllers == nil {
		return ControllerConfig{}
	}
	return c.Controllers[name]
}

// ControllerNames returns the configured controller names, sorted.
func (c *Config) ControllerNames() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.Controllers))
	for k := range c.Controllers {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
