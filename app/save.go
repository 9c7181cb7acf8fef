package app

import (
	"github.com/spf13/cobra"
)

func newSaveCmd(s *session) *cobra.Command {
	var (
		out          string
		keepComments bool
	)

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Rewrite the zone file with its NAPTR records sorted and normalized",
		Long: `save loads the zone file and writes its NAPTR records back in processing
order, always in the ten column form. Comments and all other lines are
dropped unless --keep-comments or zone.keepComments is set, in which case
the comment lines are written ahead of the records.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("keep-comments") {
				s.cfg.Zone.KeepComments = keepComments
			}

			store, err := s.load()
			if err != nil {
				return err
			}

			return s.save(store, out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "destination file, defaults to the zone file")
	cmd.Flags().BoolVar(&keepComments, "keep-comments", false, "write comment lines back")

	return cmd
}
