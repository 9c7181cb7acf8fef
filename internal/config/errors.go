package config

import (
	"errors"
)

var (
	// ErrInvalidConfig is returned if the config fails validation.
	ErrInvalidConfig = errors.New("invalid config")
)
