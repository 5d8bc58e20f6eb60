package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/constgen/javasrc"
	"github.com/dhamidi/constgen/tables"
)

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render <definition.yaml>",
		Short: "Print the Java source for every class in a table definition",
		Long: `Print the Java source for every class in a table definition to stdout.

Compilation units are separated by a blank line. Nothing is printed if any
unit fails to render.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			units, err := tables.Load(args[0])
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			for i, cu := range units {
				if i > 0 {
					buf.WriteByte('\n')
				}
				if err := javasrc.WriteCompilationUnit(&buf, cu); err != nil {
					return fmt.Errorf("render %s: %w", cu.Path(), err)
				}
			}
			if _, err := buf.WriteTo(cmd.OutOrStdout()); err != nil {
				return err
			}
			log.Infof("rendered %d compilation units", len(units))
			return nil
		},
	}
}
