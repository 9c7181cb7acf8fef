package app

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/naptr-editor/internal/naptr"
)

func newEditCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <index> <field> <value>",
		Short: "Change one field of a NAPTR record and save the zone file",
		Long: `edit changes a single field of the record numbered <index> in the
display listing. Valid fields: zone, ttl, class, type, order, preference,
flags, service, delimiter, regexp, replacement, terminator. Changing order
or preference moves the record to its new position.`,
		Args: cobra.ExactArgs(3), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			field, err := naptr.ParseField(args[1])
			if err != nil {
				return err
			}

			store, err := s.load()
			if err != nil {
				return err
			}

			if err = store.UpdateField(index, field, args[2]); err != nil {
				return err
			}

			printRecords(cmd.OutOrStdout(), store)

			return s.save(store, "")
		},
	}
}

func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Wrapf(err, "record index %q", arg)
	}

	return index, nil
}
