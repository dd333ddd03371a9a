package cmd

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/dedene/casekit/internal/config"
	"github.com/dedene/casekit/internal/outfmt"
)

// ConfigCmd groups configuration subcommands.
type ConfigCmd struct {
	Path  ConfigPathCmd  `cmd:"" help:"Show config file path"`
	List  ConfigListCmd  `cmd:"" help:"List all config values"`
	Get   ConfigGetCmd   `cmd:"" help:"Get a config value"`
	Set   ConfigSetCmd   `cmd:"" help:"Set a config value"`
	Unset ConfigUnsetCmd `cmd:"" help:"Unset a config value"`
}

func unsetLabel(key string) string {
	if def, ok := config.Default(key); ok {
		return "(unset, default: " + def + ")"
	}

	return "(unset)"
}

func checkKey(key string) error {
	if slices.Contains(config.KnownKeys(), key) {
		return nil
	}

	return usageError(fmt.Errorf("unknown config key: %s", key))
}

func configFromContext(ctx context.Context) *config.Config {
	if cfg := config.FromContext(ctx); cfg != nil {
		return cfg
	}

	return &config.Config{}
}

// editConfig loads the config file, applies fn and writes it back.
func editConfig(fn func(*config.Config) error) error {
	path, err := config.ConfigPath()
	if err != nil {
		return err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if err := fn(cfg); err != nil {
		return err
	}

	return config.Save(path, cfg)
}

// ConfigPathCmd prints the config file path.
type ConfigPathCmd struct {
	Data bool `help:"Print the data directory (favorites, history) instead" name:"data"`
}

// Run prints the config file path or the data directory.
func (c *ConfigPathCmd) Run(_ context.Context) error {
	where := config.ConfigPath
	if c.Data {
		where = config.DataDir
	}

	path, err := where()
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, path)

	return nil
}

// ConfigListCmd lists all config values.
type ConfigListCmd struct{}

// Run lists every key, marking unset ones with their default.
func (c *ConfigListCmd) Run(ctx context.Context) error {
	cfg := configFromContext(ctx)

	if outfmt.IsJSON(ctx) {
		return outfmt.WriteJSON(os.Stdout, cfg)
	}

	for _, key := range config.KnownKeys() {
		val, ok := cfg.Get(key)
		if !ok {
			val = unsetLabel(key)
		}

		fmt.Fprintf(os.Stdout, "%s = %s\n", key, val)
	}

	return nil
}

// ConfigGetCmd gets a single config value.
type ConfigGetCmd struct {
	Key string `arg:"" help:"Config key to get"`
}

type configValue struct {
	Key     string `json:"key"`
	Value   string `json:"value,omitempty"`
	Set     bool   `json:"set"`
	Default string `json:"default"`
}

// Run prints the value for the given key, or "(unset)".
func (c *ConfigGetCmd) Run(ctx context.Context) error {
	if err := checkKey(c.Key); err != nil {
		return err
	}

	val, ok := configFromContext(ctx).Get(c.Key)
	def, _ := config.Default(c.Key)

	if outfmt.IsJSON(ctx) {
		return outfmt.WriteJSON(os.Stdout, configValue{Key: c.Key, Value: val, Set: ok, Default: def})
	}

	if !ok {
		val = "(unset)"
	}

	fmt.Fprintln(os.Stdout, val)

	return nil
}

// ConfigSetCmd sets a config value.
type ConfigSetCmd struct {
	Key   string `arg:"" help:"Config key"`
	Value string `arg:"" help:"Config value"`
}

// Run validates and persists the value.
func (c *ConfigSetCmd) Run(ctx context.Context) error {
	if err := checkKey(c.Key); err != nil {
		return err
	}

	// Validate before touching the file so a bad value is a usage error.
	if err := new(config.Config).Set(c.Key, c.Value); err != nil {
		return usageError(err)
	}

	if err := editConfig(func(cfg *config.Config) error { return cfg.Set(c.Key, c.Value) }); err != nil {
		return err
	}

	notef(ctx, "Set %s = %s", c.Key, c.Value)

	return nil
}

// ConfigUnsetCmd removes a config value.
type ConfigUnsetCmd struct {
	Key string `arg:"" help:"Config key to unset"`
}

// Run clears the key so its default applies again.
func (c *ConfigUnsetCmd) Run(ctx context.Context) error {
	if err := checkKey(c.Key); err != nil {
		return err
	}

	if err := editConfig(func(cfg *config.Config) error { return cfg.Unset(c.Key) }); err != nil {
		return err
	}

	notef(ctx, "Unset %s", c.Key)

	return nil
}
