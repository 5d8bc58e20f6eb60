package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/constgen/tables"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <definition.yaml>...",
		Short: "Validate table definitions without writing anything",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var errs []error
			for _, path := range args {
				units, err := tables.Load(path)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				for _, cu := range units {
					if err := cu.Validate(); err != nil {
						errs = append(errs, fmt.Errorf("%s: %s: %w", path, cu.Path(), err))
						continue
					}
					log.Debugf("%s: %s ok", path, cu.Path())
				}
			}
			for _, err := range errs {
				log.Error(err.Error())
			}
			if len(errs) > 0 {
				return errors.Join(errs...)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}
