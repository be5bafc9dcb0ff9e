package cmd

import (
	"fmt"

	"unihdr/pkg/config"
	"unihdr/pkg/merge"
	"unihdr/pkg/source"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *App) newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Write the single-header library",
		Long: `Merge the declarations header and the implementation file into one header.

The output is the header without its last --tail-lines lines, then the
implementation starting at its first line beginning with --marker, then the
held-back header lines.`,
		Example: "  unihdr merge -d src/hashmap.h -i src/hashmap.c -o dist/hashmap.h",
		Args:    cobra.NoArgs,
		RunE:    a.runMerge,
	}
	cmd.Flags().Bool(config.KeyDryRun, false, "Merge without writing the output")
	return cmd
}

func (a *App) runMerge(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.viper)
	if err != nil {
		a.logger.Error("Invalid configuration", zap.Error(err))
		return err
	}

	store := source.NewFileStore(a.fs, a.logger)
	res, err := merge.Run(cfg, store, a.logger)
	if err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}

	verb := "wrote"
	if !res.Written {
		verb = "would write"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d lines (%d declarations, %d implementation, %d tail)\n",
		verb, cfg.OutputPath, len(res.Lines), res.DeclarationsBody, res.ImplementationBody, res.Tail)
	return nil
}
