package app

import (
	"github.com/spf13/cobra"
)

func newDeleteCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <index>",
		Aliases: []string{"rm"},
		Short:   "Delete a NAPTR record by its display number and save the zone file",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			store, err := s.load()
			if err != nil {
				return err
			}

			if err = store.Remove(index); err != nil {
				return err
			}

			printRecords(cmd.OutOrStdout(), store)

			return s.save(store, "")
		},
	}
}
