package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/titanous/json5"
)

// Intensity bounds for zalgo_intensity.
const (
	MinIntensity     = 0
	MaxIntensity     = 50
	DefaultIntensity = 10
)

// DefaultSampleText is shown by list --sample when no sample_text is set.
const DefaultSampleText = "The quick brown fox"

// Config holds user preferences.
type Config struct {
	ZalgoIntensity *int   `json:"zalgo_intensity,omitempty"`
	AutoCopy       *bool  `json:"auto_copy,omitempty"`
	OpenExport     *bool  `json:"open_export,omitempty"`
	RecordHistory  *bool  `json:"record_history,omitempty"`
	ExportDir      string `json:"export_dir,omitempty"`
	SampleText     string `json:"sample_text,omitempty"`
}

// field binds a config key to its Config field. get reports ("", false)
// while the key is unset; set receives an already validated value. def
// describes what applies while the key is unset.
type field struct {
	def      string
	validate func(string) error
	get      func(*Config) (string, bool)
	set      func(*Config, string)
	unset    func(*Config)
}

var fields = map[string]field{
	"zalgo_intensity": {
		def:      strconv.Itoa(DefaultIntensity),
		validate: validateIntRange(MinIntensity, MaxIntensity),
		get: func(c *Config) (string, bool) {
			if c.ZalgoIntensity == nil {
				return "", false
			}

			return strconv.Itoa(*c.ZalgoIntensity), true
		},
		set: func(c *Config, v string) {
			n, _ := strconv.Atoi(v)
			c.ZalgoIntensity = &n
		},
		unset: func(c *Config) { c.ZalgoIntensity = nil },
	},
	"auto_copy":      boolField(false, func(c *Config) **bool { return &c.AutoCopy }),
	"open_export":    boolField(false, func(c *Config) **bool { return &c.OpenExport }),
	"record_history": boolField(true, func(c *Config) **bool { return &c.RecordHistory }),
	"export_dir":     stringField("current directory", func(c *Config) *string { return &c.ExportDir }),
	"sample_text":    stringField(DefaultSampleText, func(c *Config) *string { return &c.SampleText }),
}

func boolField(def bool, ref func(*Config) **bool) field {
	return field{
		def:      strconv.FormatBool(def),
		validate: validateBool,
		get: func(c *Config) (string, bool) {
			if b := *ref(c); b != nil {
				return strconv.FormatBool(*b), true
			}

			return "", false
		},
		set: func(c *Config, v string) {
			b := v == "true"
			*ref(c) = &b
		},
		unset: func(c *Config) { *ref(c) = nil },
	}
}

func stringField(def string, ref func(*Config) *string) field {
	return field{
		def: def,
		get: func(c *Config) (string, bool) {
			v := *ref(c)

			return v, v != ""
		},
		set:   func(c *Config, v string) { *ref(c) = v },
		unset: func(c *Config) { *ref(c) = "" },
	}
}

func validateIntRange(lo, hi int) func(string) error {
	return func(val string) error {
		n, err := strconv.Atoi(val)
		if err != nil {
			return errors.New("must be an integer")
		}

		if n < lo || n > hi {
			return fmt.Errorf("must be between %d and %d", lo, hi)
		}

		return nil
	}
}

func validateBool(val string) error {
	if val != "true" && val != "false" {
		return errors.New("must be true or false")
	}

	return nil
}

func lookup(key string) (field, error) {
	f, ok := fields[key]
	if !ok {
		return field{}, fmt.Errorf("unknown config key: %s (valid keys: %s)", key, strings.Join(KnownKeys(), ", "))
	}

	return f, nil
}

// Intensity returns the configured zalgo intensity, or DefaultIntensity.
func (cfg *Config) Intensity() int {
	if cfg == nil || cfg.ZalgoIntensity == nil {
		return DefaultIntensity
	}

	return *cfg.ZalgoIntensity
}

// CopyByDefault reports whether results are copied without --copy.
func (cfg *Config) CopyByDefault() bool {
	return cfg != nil && cfg.AutoCopy != nil && *cfg.AutoCopy
}

// OpenAfterExport reports whether exported files are opened without --open.
func (cfg *Config) OpenAfterExport() bool {
	return cfg != nil && cfg.OpenExport != nil && *cfg.OpenExport
}

// HistoryEnabled reports whether applied transforms are recorded. Defaults
// to true.
func (cfg *Config) HistoryEnabled() bool {
	return cfg == nil || cfg.RecordHistory == nil || *cfg.RecordHistory
}

// Sample returns the sample text used for previews.
func (cfg *Config) Sample() string {
	if cfg == nil || cfg.SampleText == "" {
		return DefaultSampleText
	}

	return cfg.SampleText
}

// Load reads config from the JSON5 file at path.
// Returns an empty Config if the file does not exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := json5.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.ZalgoIntensity != nil {
		n := min(max(*cfg.ZalgoIntensity, MinIntensity), MaxIntensity)
		cfg.ZalgoIntensity = &n
	}

	return &cfg, nil
}

// Save writes config as indented JSON. Comments from a hand-edited JSON5
// file are not preserved.
func Save(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return WriteFileAtomic(path, append(data, '\n'))
}

// Get returns the string value for a config key and whether it is set.
func (cfg *Config) Get(key string) (string, bool) {
	f, ok := fields[key]
	if !ok {
		return "", false
	}

	return f.get(cfg)
}

// Default describes the value that applies while key is unset.
func Default(key string) (string, bool) {
	f, ok := fields[key]

	return f.def, ok
}

// Set validates value and stores it under key.
func (cfg *Config) Set(key, value string) error {
	f, err := lookup(key)
	if err != nil {
		return err
	}

	if f.validate != nil {
		if err := f.validate(value); err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}
	}

	f.set(cfg, value)

	return nil
}

// Unset clears key so its default applies again.
func (cfg *Config) Unset(key string) error {
	f, err := lookup(key)
	if err != nil {
		return err
	}

	f.unset(cfg)

	return nil
}

// KnownKeys returns the valid config key names, sorted.
func KnownKeys() []string {
	return slices.Sorted(maps.Keys(fields))
}

type ctxKey struct{}

// WithConfig stores a Config in the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext returns the Config stored by WithConfig, or nil.
func FromContext(ctx context.Context) *Config {
	cfg, _ := ctx.Value(ctxKey{}).(*Config)

	return cfg
}
