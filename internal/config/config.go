// Package config reads the naptr-editor TOML configuration.
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const (
	// EnvConfigJSON names the environment variable whose JSON overrides the file.
	EnvConfigJSON = "NAPTR_EDITOR_CONFIG_JSON"

	defaultZoneFile   = "zonefile"
	defaultTTL        = 60
	defaultVHost      = "localhost"
	defaultTimeoutSec = 30
)

var validate = validator.New()

// Default returns the settings used when no config file is given.
func Default() Config {
	var c Config

	c.Log.LogLevel = "info"
	c.Log.AppName = "naptr-editor"
	c.Log.Console.Enabled = true
	c.Log.Console.UseConsoleWriter = true

	c.Zone.File = defaultZoneFile
	c.Zone.DefaultTTL = defaultTTL

	c.PowerDNS.VHost = defaultVHost
	c.PowerDNS.TimeoutSec = defaultTimeoutSec

	return c
}

// ReadConfig decodes the TOML file at path over the defaults. An empty path
// keeps the defaults. The JSON in EnvConfigJSON is merged last.
func ReadConfig(path string) (Config, error) {
	c := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &c); err != nil {
			return Config{}, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	if configAsJSON := os.Getenv(EnvConfigJSON); configAsJSON != "" {
		var err error

		if c, err = decodeAndMergeConfig(c, configAsJSON); err != nil {
			return Config{}, err
		}
	}

	return c, Validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	if err := json.Unmarshal([]byte(configAsJSON), &c); err != nil {
		return Config{}, errors.Wrapf(err, "failed to read %s", EnvConfigJSON)
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer

	if err := toml.NewEncoder(&buffer).Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer

	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// Validate checks the struct tags and fills values derived from others.
func Validate(c *Config) error {
	if err := validate.Struct(c); err != nil {
		var (
			fields []string
			verrs  validator.ValidationErrors
		)

		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields = append(fields, fe.Namespace()+" ("+fe.Tag()+")")
			}
		}

		return errors.Wrap(ErrInvalidConfig, strings.Join(fields, ", "))
	}

	if c.PowerDNS.Zone == "" {
		c.PowerDNS.Zone = c.Zone.Origin
	}

	return nil
}
