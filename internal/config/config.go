// Package config loads the user's INI config and owns the XDG paths the
// tool stores state under.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const appName = "boj-submit"

// Dir is where the config file lives.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, appName)
}

// DataDir is where persisted session state lives.
func DataDir() string {
	return filepath.Join(xdg.DataHome, appName)
}

// CookieFile is the path of the persisted cookie jar.
func CookieFile() string {
	return filepath.Join(DataDir(), "cookies.json")
}

// Config holds the optional per-language compiler/version overrides. An
// absent file or section is not an error; callers fall back to their
// defaults.
type Config struct {
	v *viper.Viper
}

// Load reads the config file from the XDG config directory.
func Load() (*Config, error) {
	return LoadFrom(filepath.Join(Dir(), "config"))
}

// LoadFrom reads an INI config from an explicit path.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			logrus.Debugf("no config file at %s, using defaults", path)
			return &Config{v: v}, nil
		}
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	logrus.Debugf("loaded config from %s", path)
	return &Config{v: v}, nil
}

// Language returns the Compiler and Version keys of the named section.
// ok is false when the section is absent entirely.
func (c *Config) Language(name string) (compiler, version string, ok bool) {
	section := strings.ToLower(name)
	if !c.v.IsSet(section) {
		return "", "", false
	}
	return c.v.GetString(section + ".compiler"), c.v.GetString(section + ".version"), true
}
