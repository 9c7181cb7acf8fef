// Package zone holds the ordered NAPTR record set of one zone file.
//
// A Store is loaded from lines, edited by 1-based index and saved back. The
// records are kept sorted by naptr.Compare after every load and every
// mutation that can change the order. Comment lines are kept aside and only
// written back when WithKeepComments is set.
//
// A Store is not safe for concurrent use.
package zone

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/GoPowerDNS-Admin/naptr-editor/internal/metrics"
	"github.com/GoPowerDNS-Admin/naptr-editor/internal/naptr"
)

var (
	commentRE     = regexp.MustCompile(`^[[:space:]]*;`)
	messageSizeRE = regexp.MustCompile(`MSG SIZE`)
	digitsRE      = regexp.MustCompile(`\d+`)
)

const naptrMarker = "NAPTR"

// Store is an ordered set of NAPTR records plus the comments of its source.
type Store struct {
	records      []naptr.Record
	comments     []string
	responseSize *int

	keepComments bool
	parseOpts    []naptr.ParseOption
	metrics      *metrics.Metrics
}

// Option configures a Store.
type Option func(*Store)

// WithKeepComments makes Save emit the loaded comment lines ahead of the records.
func WithKeepComments(keep bool) Option {
	return func(s *Store) {
		s.keepComments = keep
	}
}

// WithStrictRange limits order and preference to 0-65535 on load and edit.
func WithStrictRange(strict bool) Option {
	return func(s *Store) {
		if strict {
			s.parseOpts = append(s.parseOpts, naptr.WithStrictRange())
		}
	}
}

// WithMetrics counts loaded, rejected and saved records.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

// New returns an empty Store.
func New(opts ...Option) *Store {
	s := &Store{}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Load replaces records and comments with the content of lines. Lines that
// look like NAPTR records but don't parse are reported, not returned as
// error. Lines that are neither comments nor NAPTR records are skipped.
func (s *Store) Load(lines []string) LoadReport {
	var report LoadReport

	s.records = nil
	s.comments = nil
	s.responseSize = nil

	for _, line := range lines {
		switch {
		case commentRE.MatchString(line):
			s.comments = append(s.comments, line)

			if messageSizeRE.MatchString(line) {
				s.setResponseSize(line)
			}
		case strings.Contains(line, naptrMarker):
			r, err := naptr.Parse(line, s.parseOpts...)
			if err != nil {
				le := LineError{Line: line, Err: err}
				report.Failures = append(report.Failures, le)
				s.metrics.Failed(le.Kind())

				continue
			}

			s.records = append(s.records, r)
		}
	}

	naptr.Sort(s.records)
	s.metrics.Loaded(len(s.records))

	report.Loaded = len(s.records)
	report.ResponseSize = s.responseSize

	return report
}

// setResponseSize takes the first digit run of a MSG SIZE comment. A comment
// without a usable number clears the size.
func (s *Store) setResponseSize(line string) {
	s.responseSize = nil

	n, err := strconv.Atoi(digitsRE.FindString(line))
	if err != nil {
		return
	}

	s.responseSize = &n
}

// Save renders the records in sort order, one line each.
func (s *Store) Save() []string {
	lines := make([]string, 0, len(s.records)+len(s.comments))

	if s.keepComments {
		lines = append(lines, s.comments...)
	}

	for _, r := range s.records {
		lines = append(lines, r.String())
	}

	return lines
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Records returns a copy of the records in sort order.
func (s *Store) Records() []naptr.Record {
	return append([]naptr.Record(nil), s.records...)
}

// Comments returns the comment lines of the last load.
func (s *Store) Comments() []string {
	return append([]string(nil), s.comments...)
}

// ResponseSize returns the size announced by a MSG SIZE comment.
func (s *Store) ResponseSize() (int, bool) {
	if s.responseSize == nil {
		return 0, false
	}

	return *s.responseSize, true
}

// Get returns the record at the 1-based index.
func (s *Store) Get(index int) (naptr.Record, error) {
	i, err := s.position(index)
	if err != nil {
		return naptr.Record{}, err
	}

	return s.records[i], nil
}

// Append adds a record and restores the sort order.
func (s *Store) Append(r naptr.Record) {
	s.records = append(s.records, r)
	naptr.Sort(s.records)
}

// UpdateField changes one field of the record at the 1-based index. The set
// is only re-sorted if order or preference changed.
func (s *Store) UpdateField(index int, field naptr.Field, value string) error {
	i, err := s.position(index)
	if err != nil {
		return err
	}

	r := s.records[i]
	if err = r.Set(field, value, s.parseOpts...); err != nil {
		return errors.Wrapf(err, "record %d", index)
	}

	s.records[i] = r

	if field.Sorting() {
		naptr.Sort(s.records)
	}

	return nil
}

// Remove deletes the record at the 1-based index.
func (s *Store) Remove(index int) error {
	i, err := s.position(index)
	if err != nil {
		return err
	}

	s.records = append(s.records[:i], s.records[i+1:]...)

	return nil
}

func (s *Store) position(index int) (int, error) {
	if index < 1 || index > len(s.records) {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "index %d, have %d records", index, len(s.records))
	}

	return index - 1, nil
}
