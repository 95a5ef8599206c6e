// Package config is the settings layer for pegthing. Flags are the source
// of truth, with PEGTHING_* environment variables overriding defaults, all
// held in a viper instance behind simple typed getters.
package config

import (
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	v *viper.Viper
}

// Load parses args (usually os.Args[1:]) and binds them, plus the
// environment, into this config.
func (c *Config) Load(args []string) error {
	c.v = viper.New()

	fs := pflag.NewFlagSet("pegthing", pflag.ContinueOnError)
	fs.Int("rows", 5, "default number of board rows for a new game")
	fs.Bool("debug", false, "debug logging")
	fs.Int("threads", runtime.NumCPU(), "worker count for autoplay")
	fs.String("cpu-profile", "", "path to write a CPU profile to")
	fs.String("autoplay-log", "", "CSV file to stream autoplay results to")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c.v.SetEnvPrefix("pegthing")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()
	return c.v.BindPFlags(fs)
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// SanitizedSettings dumps all settings for the startup log line. There is
// nothing secret to strip from this config.
func (c *Config) SanitizedSettings() map[string]any {
	return c.v.AllSettings()
}
