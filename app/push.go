package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/naptr-editor/internal/powerdns"
)

func newPushCmd(s *session) *cobra.Command {
	var testOnly bool

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Replace the NAPTR RRsets of the zone on a PowerDNS server",
		Long: `push sends the NAPTR records of the zone file to the PowerDNS API
configured in the [powerdns] section. Records are grouped by owner name and
each group replaces the NAPTR RRset of that name. Nothing is sent if any
record fails the checks of the check command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			publisher, err := powerdns.New(s.cfg.PowerDNS, s.cfg.Zone.DefaultTTL)
			if err != nil {
				return err
			}

			if testOnly {
				return publisher.Test(cmd.Context())
			}

			store, err := s.load()
			if err != nil {
				return err
			}

			report, err := publisher.Publish(cmd.Context(), store.Records())
			if err != nil {
				return err
			}

			for _, owner := range report.Owners {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "replaced %s NAPTR\n", owner)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&testOnly, "test", false, "only test the API connection")

	return cmd
}
