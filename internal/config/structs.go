package config

import (
	"github.com/GoPowerDNS-Admin/naptr-editor/internal/logger"
)

// Zone configures the zone file handling.
type Zone struct {
	File         string `toml:"file"         validate:"required"`
	Origin       string `toml:"origin"`       // owner for records without one
	DefaultTTL   uint32 `toml:"defaultTTL"`   // TTL for records without one
	KeepComments bool   `toml:"keepComments"` // write comments back on save
	StrictRange  bool   `toml:"strictRange"`  // order and preference must fit 16 bit
}

// PowerDNS holds the API settings used by the push command.
type PowerDNS struct {
	APIServerURL string `toml:"apiServerURL" validate:"omitempty,url"`
	APIKey       string `toml:"apiKey"       validate:"required_with=APIServerURL"`
	VHost        string `toml:"vhost"`
	Zone         string `toml:"zone"` // defaults to Zone.Origin
	TimeoutSec   int    `toml:"timeoutSec"   validate:"gte=0"`
}

// Metrics configures the Prometheus textfile written after each run.
type Metrics struct {
	TextFile string `toml:"textFile"`
}

// Config overall data structure.
type Config struct {
	Log      logger.Log `toml:"log"`
	Zone     Zone       `toml:"zone"`
	PowerDNS PowerDNS   `toml:"powerdns"`
	Metrics  Metrics    `toml:"metrics"`
}
