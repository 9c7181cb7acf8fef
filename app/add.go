package app

import (
	"errors"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/naptr-editor/internal/naptr"
)

func newAddCmd(s *session) *cobra.Command {
	var (
		nonTerminal bool
		values      = make(map[naptr.Field]*string)
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a NAPTR record and save the zone file",
		Long: `add starts from the terminal record template (order 100, preference 50,
flag "U", regexp "^.*$", delimiter "!") or, with --non-terminal, from the
non-terminal one (order 32767, empty regexp), applies the given fields and
saves the zone file. A missing zone file is created.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := s.load()

			switch {
			case errors.Is(err, fs.ErrNotExist):
				log.Info().Str("file", s.cfg.Zone.File).Msg("zone file does not exist, creating it")

				store = s.newStore()
			case err != nil:
				return err
			}

			r := naptr.NewTerminal()
			if nonTerminal {
				r = naptr.NewNonTerminal()
			}

			if err = applyFields(cmd, &r, values, strictOpts(s.cfg.Zone.StrictRange)...); err != nil {
				return err
			}

			store.Append(r)
			printRecords(cmd.OutOrStdout(), store)

			return s.save(store, "")
		},
	}

	cmd.Flags().BoolVar(&nonTerminal, "non-terminal", false, "start from the non-terminal template")

	for _, name := range naptr.Fields() {
		f, _ := naptr.ParseField(name)
		values[f] = cmd.Flags().String(name, "", "record "+name)
	}

	return cmd
}

// applyFields copies every flag given on the command line into r.
func applyFields(cmd *cobra.Command, r *naptr.Record, values map[naptr.Field]*string, opts ...naptr.ParseOption) error {
	for f, v := range values {
		if !cmd.Flags().Changed(f.String()) {
			continue
		}

		if err := r.Set(f, *v, opts...); err != nil {
			return err
		}
	}

	return nil
}

func strictOpts(strict bool) []naptr.ParseOption {
	if strict {
		return []naptr.ParseOption{naptr.WithStrictRange()}
	}

	return nil
}
