package app

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/GoPowerDNS-Admin/naptr-editor/internal/config"
	"github.com/GoPowerDNS-Admin/naptr-editor/internal/metrics"
	"github.com/GoPowerDNS-Admin/naptr-editor/internal/zone"
)

// session carries what PersistentPreRunE prepared to the subcommands.
type session struct {
	cfg     config.Config
	metrics *metrics.Metrics
}

func (s *session) newStore() *zone.Store {
	return zone.New(
		zone.WithKeepComments(s.cfg.Zone.KeepComments),
		zone.WithStrictRange(s.cfg.Zone.StrictRange),
		zone.WithMetrics(s.metrics),
	)
}

// load reads the configured zone file. Rejected lines are logged and
// skipped, only a missing or unreadable file fails.
func (s *session) load() (*zone.Store, error) {
	store := s.newStore()

	report, err := store.LoadFile(s.cfg.Zone.File)
	if err != nil {
		return nil, err
	}

	logReport(s.cfg.Zone.File, report)

	return store, nil
}

func logReport(file string, report zone.LoadReport) {
	for _, f := range report.Failures {
		log.Warn().Err(f.Err).Str("file", file).Str("line", f.Line).Msg("skipped NAPTR line")
	}

	ev := log.Info().Str("file", file).Int("records", report.Loaded).Int("failures", len(report.Failures))
	if report.ResponseSize != nil {
		ev = ev.Int("response_size", *report.ResponseSize)
	}

	ev.Msg("loaded zone file")
}

func (s *session) save(store *zone.Store, path string) error {
	if path == "" {
		path = s.cfg.Zone.File
	}

	if err := store.SaveFile(path); err != nil {
		return err
	}

	log.Info().Str("file", path).Int("records", store.Len()).Msg("saved zone file")

	return nil
}

// printRecords lists the records numbered from 1, the numbers edit and delete take.
func printRecords(w io.Writer, store *zone.Store) {
	for i, r := range store.Records() {
		_, _ = fmt.Fprintf(w, "%d. %s\n", i+1, r)
	}
}
