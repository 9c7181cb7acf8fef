package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDisplayCmd(s *session) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:     "display",
		Aliases: []string{"show", "list"},
		Short:   "Show the NAPTR records of the zone file in processing order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := s.load()
			if err != nil {
				return err
			}

			if !plain {
				printRecords(cmd.OutOrStdout(), store)
				return nil
			}

			for _, line := range store.Save() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print the records as saved, without numbers")

	return cmd
}
