package powerdns

import (
	"errors"
)

var (
	// ErrClientNotInitialized is returned when no PowerDNS API server is configured.
	ErrClientNotInitialized = errors.New("PowerDNS client not initialized")

	// ErrNoZone is returned when neither powerdns.zone nor zone.origin is set.
	ErrNoZone = errors.New("no PowerDNS zone configured")
)
