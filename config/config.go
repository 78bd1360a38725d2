// Package config wraps viper for the handful of knobs the solver and
// shell need. Every option is settable as a flag or as a GOBBLER_
// environment variable.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	v    *viper.Viper
	args []string
}

func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("gobbler", pflag.ContinueOnError)
	fs.String("data-path", ".", "directory for cache files and the solve registry")
	fs.Bool("debug", false, "debug logging")
	fs.Int("table-exp", 29, "log2 of the tablebase capacity")
	fs.Bool("compress-cache", false, "write cache files zstd-compressed")
	fs.String("cpu-profile", "", "path for CPU profile")
	fs.String("mem-profile", "", "path for memory profile")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c.args = fs.Args()

	c.v = viper.New()
	c.v.SetEnvPrefix("gobbler")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()
	return c.v.BindPFlags(fs)
}

// Args returns the positional arguments left over after flag parsing:
// a one-shot shell command line, when one was given.
func (c *Config) Args() []string {
	return c.args
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

// AllSettings returns the resolved settings, for logging at startup.
func (c *Config) AllSettings() map[string]any {
	return c.v.AllSettings()
}
