// Package powerdns publishes NAPTR records to a PowerDNS authoritative
// server through its HTTP API.
package powerdns

import (
	"context"
	"strings"
	"time"

	"github.com/joeig/go-powerdns/v3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/GoPowerDNS-Admin/naptr-editor/internal/config"
	"github.com/GoPowerDNS-Admin/naptr-editor/internal/naptr"
)

const rrTypeNAPTR = powerdns.RRType("NAPTR")

// Publisher replaces the NAPTR RRsets of one zone.
type Publisher struct {
	client     *powerdns.Client
	zone       string
	defaultTTL uint32
	timeout    time.Duration
}

// PublishReport lists the owner names whose RRset was replaced.
type PublishReport struct {
	Owners  []string
	Records int
}

// New creates a Publisher for cfg. Records without a TTL column are sent with defaultTTL.
func New(cfg config.PowerDNS, defaultTTL uint32) (*Publisher, error) {
	if cfg.APIServerURL == "" {
		return nil, ErrClientNotInitialized
	}

	if cfg.Zone == "" {
		return nil, ErrNoZone
	}

	return &Publisher{
		client:     powerdns.New(cfg.APIServerURL, cfg.VHost, powerdns.WithAPIKey(cfg.APIKey)),
		zone:       normalizeZoneName(cfg.Zone),
		defaultTTL: defaultTTL,
		timeout:    time.Duration(cfg.TimeoutSec) * time.Second,
	}, nil
}

func (p *Publisher) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, p.timeout)
}

// Test checks that the API answers by listing its zones.
func (p *Publisher) Test(ctx context.Context) error {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	zones, err := p.client.Zones.List(ctx)
	if err != nil {
		return errors.Wrap(err, "PowerDNS API connection test failed")
	}

	log.Info().Int("zone_count", len(zones)).Msg("PowerDNS API connection test successful")

	return nil
}

// Publish replaces one NAPTR RRset per owner name with the given records.
// Every record is checked before the first change is sent, so a record that
// is not valid DNS leaves the server untouched. An RRset gets the smallest
// TTL of its records.
func (p *Publisher) Publish(ctx context.Context, records []naptr.Record) (PublishReport, error) {
	var (
		report PublishReport
		sets   = make(map[string]*rrset)
	)

	for i, r := range records {
		rr, err := r.RR(p.zone, p.defaultTTL)
		if err != nil {
			return PublishReport{}, errors.Wrapf(err, "record %d", i+1)
		}

		owner := rr.Hdr.Name

		set, ok := sets[owner]
		if !ok {
			set = &rrset{ttl: rr.Hdr.Ttl}
			sets[owner] = set
			report.Owners = append(report.Owners, owner)
		}

		set.ttl = min(set.ttl, rr.Hdr.Ttl)
		set.content = append(set.content, strings.TrimPrefix(rr.String(), rr.Hdr.String()))
	}

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	for _, owner := range report.Owners {
		set := sets[owner]

		if err := p.client.Records.Change(ctx, p.zone, owner, rrTypeNAPTR, set.ttl, set.content); err != nil {
			return report, errors.Wrapf(err, "failed to replace NAPTR RRset %s", owner)
		}

		report.Records += len(set.content)

		log.Debug().Str("zone", p.zone).Str("owner", owner).Int("records", len(set.content)).
			Msg("replaced NAPTR RRset")
	}

	return report, nil
}

type rrset struct {
	ttl     uint32
	content []string
}

// normalizeZoneName ensures the zone name has a trailing dot.
func normalizeZoneName(name string) string {
	if !strings.HasSuffix(name, ".") {
		return name + "."
	}

	return name
}
