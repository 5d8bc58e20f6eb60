package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dhamidi/constgen/javasrc"
	"github.com/dhamidi/constgen/tables"
)

func newGenerateCmd() *cobra.Command {
	var outDir string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "generate <definition.yaml>...",
		Short: "Write Java sources for table definitions into a source tree",
		Long: `Write one .java file per class into the output directory, using the
package name as the directory path (com.example.Foo goes to
<out>/com/example/Foo.java).

Every definition is validated before any file is written.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var units []*javasrc.CompilationUnit
			for _, path := range args {
				more, err := tables.Load(path)
				if err != nil {
					return err
				}
				units = append(units, more...)
			}
			if dryRun {
				for _, cu := range units {
					if err := cu.Validate(); err != nil {
						return fmt.Errorf("generate %s: %w", cu.Path(), err)
					}
				}
				for _, cu := range units {
					fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(outDir, filepath.FromSlash(cu.Path())))
				}
				return nil
			}

			if err := javasrc.WriteCompilationUnitsToFileSystem(outDir, units...); err != nil {
				return fmt.Errorf("generate: %w", err)
			}
			for _, cu := range units {
				log.Infof("wrote %s", filepath.Join(outDir, filepath.FromSlash(cu.Path())))
			}
			log.Noticef("generated %d files in %s", len(units), outDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "root of the Java source tree")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "print the files that would be written")

	return cmd
}
