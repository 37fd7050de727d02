// Package config layers command-line flags, AUTOTILING_* environment
// variables and an optional YAML file into one Config.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mj1618/autotiling/internal/autotile"
)

// Config holds runtime settings.
type Config struct {
	Ratio      float64
	Workspaces []int
	Socket     string
	DryRun     bool
	LogLevel   slog.Level
	// File is the config file that was read, empty if none.
	File string
}

// flagKeys maps viper keys to the flag names that override them.
var flagKeys = map[string]string{
	"ratio":     "ratio",
	"socket":    "socket",
	"dry_run":   "dry-run",
	"log_level": "log-level",
}

// Load resolves configuration. Precedence: flags the user set, then
// environment, then the config file, then defaults. flags may be nil.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("ratio", autotile.DefaultRatio)
	v.SetDefault("workspaces", []int{})
	v.SetDefault("socket", "")
	v.SetDefault("dry_run", false)
	v.SetDefault("log_level", "info")

	v.SetConfigType("yaml")
	cfgPath := os.Getenv("AUTOTILING_CONFIG")
	if flags != nil {
		if f := flags.Lookup("config"); f != nil && f.Changed {
			cfgPath = f.Value.String()
		}
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(defaultConfigDir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("AUTOTILING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicit path that does not exist is an error; the default
		// location is optional.
		if !errors.As(err, &notFound) || cfgPath != "" {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	c := Config{
		Ratio:  v.GetFloat64("ratio"),
		Socket: v.GetString("socket"),
		DryRun: v.GetBool("dry_run"),
		File:   v.ConfigFileUsed(),
	}

	workspaces, err := loadWorkspaces(v, flags)
	if err != nil {
		return Config{}, err
	}
	c.Workspaces = workspaces

	if err := c.LogLevel.UnmarshalText([]byte(v.GetString("log_level"))); err != nil {
		return Config{}, fmt.Errorf("invalid log level %q: %w", v.GetString("log_level"), err)
	}
	if err := autotile.ValidateRatio(c.Ratio); err != nil {
		return Config{}, err
	}
	return c, nil
}

// loadWorkspaces reads the repeatable --workspace flag when given, else the
// "workspaces" key, which may be a YAML list or a comma-separated env value.
func loadWorkspaces(v *viper.Viper, flags *pflag.FlagSet) ([]int, error) {
	if flags != nil {
		if f := flags.Lookup("workspace"); f != nil && f.Changed {
			ws, err := flags.GetIntSlice("workspace")
			if err != nil {
				return nil, fmt.Errorf("workspace flag: %w", err)
			}
			return ws, nil
		}
	}
	if s, ok := v.Get("workspaces").(string); ok {
		return parseIntList(s)
	}
	return v.GetIntSlice("workspaces"), nil
}

func parseIntList(s string) ([]int, error) {
	var out []int
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' }) {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid workspace number %q", part)
		}
		out = append(out, n)
	}
	return out, nil
}

func defaultConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "autotiling")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "autotiling")
}
