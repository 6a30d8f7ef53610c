// Package config loads the YAML configuration: strategy and analysis
// parameter tables, named strategies, teams, and tournaments. Files are
// merged at the section level, and named profiles override the default
// profile per section entry.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultProfile is the profile every lookup starts from.
const DefaultProfile = "default"

// ConfigError reports invalid or missing configuration detected while
// constructing engine objects.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return e.Msg }

// Errorf builds a ConfigError.
func Errorf(format string, args ...any) *ConfigError {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// Config aggregates parameters from one or more YAML files. File structure:
//
//	default:
//	  my_section:
//	    my_param: value
//	alt_profile:
//	  my_section:
//	    my_param: alt_value
type Config struct {
	profile string
	paths   []string
	// profile -> section -> params
	profileData map[string]map[string]map[string]any
}

// New loads the given config files in order; later files overwrite earlier
// entries at the section-entry level.
func New(paths ...string) (*Config, error) {
	c := &Config{profileData: make(map[string]map[string]map[string]any)}
	for _, path := range paths {
		if _, err := c.Load(path); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Load reads one more config file. A file that was already loaded is
// skipped, reported by the false return.
func (c *Config) Load(path string) (bool, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false, fmt.Errorf("failed to resolve config path: %w", err)
	}
	for _, p := range c.paths {
		if p == abs {
			return false, nil
		}
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return false, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := c.merge(data); err != nil {
		return false, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	c.paths = append(c.paths, abs)
	return true, nil
}

// LoadBytes merges raw config content, for embedded defaults and tests.
func (c *Config) LoadBytes(data []byte) error {
	return c.merge(data)
}

func (c *Config) merge(data []byte) error {
	var raw map[string]map[string]map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if len(raw) == 0 {
		return fmt.Errorf("empty config content")
	}
	for profile, sections := range raw {
		if _, ok := c.profileData[profile]; !ok {
			c.profileData[profile] = make(map[string]map[string]any)
		}
		for section, params := range sections {
			if _, ok := c.profileData[profile][section]; !ok {
				c.profileData[profile][section] = make(map[string]any)
			}
			for k, v := range params {
				c.profileData[profile][section][k] = v
			}
		}
	}
	return nil
}

// SetProfile selects the profile whose values override the default
// profile for subsequent lookups.
func (c *Config) SetProfile(profile string) error {
	if profile != "" && profile != DefaultProfile {
		if _, ok := c.profileData[profile]; !ok {
			return Errorf("profile '%s' never loaded", profile)
		}
	}
	c.profile = profile
	return nil
}

// Section returns the merged parameters for a section; a missing section
// yields an empty map.
func (c *Config) Section(section string) (map[string]any, error) {
	defaults, ok := c.profileData[DefaultProfile]
	if !ok {
		return nil, Errorf("default profile ('%s') never loaded", DefaultProfile)
	}
	params := make(map[string]any, len(defaults[section]))
	for k, v := range defaults[section] {
		params[k] = v
	}
	if c.profile != "" && c.profile != DefaultProfile {
		for k, v := range c.profileData[c.profile][section] {
			params[k] = v
		}
	}
	return params, nil
}

// SubSection decodes one entry of a section into out.
func (c *Config) SubSection(section, name string, out any) error {
	params, err := c.Section(section)
	if err != nil {
		return err
	}
	entry, ok := params[name]
	if !ok {
		return Errorf("'%s' not found in section '%s'", name, section)
	}
	return reencode(entry, out)
}

// StrategyEntry is a named strategy from the strategies section.
type StrategyEntry struct {
	BaseClass      string         `yaml:"base_class"`
	StrategyParams map[string]any `yaml:"strategy_params"`
}

// Strategy returns the named strategy entry.
func (c *Config) Strategy(name string) (StrategyEntry, error) {
	var entry StrategyEntry
	if err := c.SubSection("strategies", name, &entry); err != nil {
		return entry, Errorf("strategy '%s' is not known", name)
	}
	if entry.BaseClass == "" {
		return entry, Errorf("'base_class' not specified for strategy '%s'", name)
	}
	return entry, nil
}

// StrategyNames lists the configured strategy names.
func (c *Config) StrategyNames() ([]string, error) {
	params, err := c.Section("strategies")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	return names, nil
}

// BaseStrategyParams returns the parameter defaults for a strategy class.
func (c *Config) BaseStrategyParams(class string) (map[string]any, error) {
	return c.classParams("base_strategy_params", class)
}

// BaseAnalysisParams returns the parameter defaults for an analysis class.
func (c *Config) BaseAnalysisParams(class string) (map[string]any, error) {
	return c.classParams("base_analysis_params", class)
}

func (c *Config) classParams(section, class string) (map[string]any, error) {
	params, err := c.Section(section)
	if err != nil {
		return nil, err
	}
	entry, ok := params[class]
	if !ok {
		return map[string]any{}, nil
	}
	var out map[string]any
	if err := reencode(entry, &out); err != nil {
		return nil, Errorf("bad %s for '%s': %v", section, class, err)
	}
	return out, nil
}

// TeamEntry is a named team from the teams section.
type TeamEntry struct {
	Strategy string `yaml:"strategy"`
}

// Team returns the named team entry.
func (c *Config) Team(name string) (TeamEntry, error) {
	var entry TeamEntry
	if err := c.SubSection("teams", name, &entry); err != nil {
		return entry, Errorf("team '%s' is not known", name)
	}
	if entry.Strategy == "" {
		return entry, Errorf("'strategy' not specified for team '%s'", name)
	}
	return entry, nil
}

// TeamNames lists the configured team names.
func (c *Config) TeamNames() ([]string, error) {
	params, err := c.Section("teams")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	return names, nil
}

// TournamentEntry is a named tournament from the tournaments section.
type TournamentEntry struct {
	TournType string         `yaml:"tourn_type"`
	Teams     []string       `yaml:"teams"`
	Params    map[string]any `yaml:"tourn_params"`
}

// Tournament returns the named tournament entry.
func (c *Config) Tournament(name string) (TournamentEntry, error) {
	var entry TournamentEntry
	if err := c.SubSection("tournaments", name, &entry); err != nil {
		return entry, Errorf("tournament '%s' is not known", name)
	}
	return entry, nil
}

// TournamentNames lists the configured tournament names.
func (c *Config) TournamentNames() ([]string, error) {
	params, err := c.Section("tournaments")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	return names, nil
}

// BaseTournParams returns the tournament parameter defaults.
func (c *Config) BaseTournParams() (map[string]any, error) {
	return c.Section("base_tourn_params")
}

// DecodeParams overlays the parameter maps left to right (nil entries do
// not override) and decodes the result into out.
func DecodeParams(out any, layers ...map[string]any) error {
	merged := make(map[string]any)
	for _, layer := range layers {
		for k, v := range layer {
			if v == nil {
				continue
			}
			merged[k] = v
		}
	}
	return reencode(merged, out)
}

// reencode round-trips a decoded YAML value into a typed target.
func reencode(in, out any) error {
	data, err := yaml.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to re-marshal config value: %w", err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode config value: %w", err)
	}
	return nil
}

var (
	defaultCfg *Config
	loadOnce   sync.Once
	loadErr    error
)

// LoadDefault loads the process-wide configuration from the given paths
// (or $EUCHRE_CONFIG_FILE when empty), once. With no path at all the
// embedded base config is used.
func LoadDefault(paths ...string) error {
	loadOnce.Do(func() {
		if len(paths) == 0 {
			if env := os.Getenv("EUCHRE_CONFIG_FILE"); env != "" {
				paths = []string{env}
			}
		}
		c, err := New(paths...)
		if err != nil {
			loadErr = err
			return
		}
		if len(c.profileData) == 0 {
			if err := c.LoadBytes([]byte(BaseConfig)); err != nil {
				loadErr = err
				return
			}
		}
		defaultCfg = c
	})
	return loadErr
}

// Default returns the process-wide configuration, or nil before
// LoadDefault.
func Default() *Config {
	return defaultCfg
}
