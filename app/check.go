package app

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ErrCheckFailed is returned by the check command if any record or line failed.
var ErrCheckFailed = errors.New("zone check failed")

func newCheckCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that every NAPTR line parses and is a valid DNS NAPTR record",
		Long: `check reports lines that could not be parsed and records the DNS
presentation format does not accept, e.g. an order above 65535, a class
other than IN, a non numeric TTL or an invalid owner name. Records without
an owner use zone.origin, records without a TTL use zone.defaultTTL.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := s.newStore()

			report, err := store.LoadFile(s.cfg.Zone.File)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := len(report.Failures)

			for _, f := range report.Failures {
				_, _ = fmt.Fprintf(out, "skipped: %v\n", f)
			}

			for i, r := range store.Records() {
				if _, err = r.RR(s.cfg.Zone.Origin, s.cfg.Zone.DefaultTTL); err != nil {
					failed++

					_, _ = fmt.Fprintf(out, "%d. %s\n   %v\n", i+1, r, err)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d NAPTR lines", ErrCheckFailed, failed, store.Len()+len(report.Failures))
			}

			_, _ = fmt.Fprintf(out, "%d NAPTR records ok\n", store.Len())

			return nil
		},
	}
}
