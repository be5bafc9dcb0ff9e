// Package cmd wires the unihdr commands.
package cmd

import (
	"fmt"

	"unihdr/pkg/config"
	"unihdr/pkg/logging"
	"unihdr/pkg/version"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const appName = "unihdr"

// App holds what the commands share during one invocation.
type App struct {
	fs     afero.Fs
	logger *zap.Logger
	viper  *viper.Viper

	configFile string
	debug      bool
}

// NewApp returns an App on the OS filesystem. Its logger is built once the
// flags are parsed.
func NewApp() *App {
	return &App{fs: afero.NewOsFs()}
}

// Logger returns the logger built for this invocation, or nil if the
// command failed before it could be built.
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Execute runs the root command with the process arguments.
func (a *App) Execute() error {
	return a.newRootCmd().Execute()
}

func (a *App) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "unihdr merges a C header and its implementation into a single-header library",
		Long: `unihdr builds a single-header distribution of a C library. The implementation
file, minus its leading banner and includes, is placed inside the inclusion
guard of the declarations header.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "YAML file with merge options")
	flags.BoolVar(&a.debug, "debug", false, "Enable debug logging")
	flags.StringP(config.KeyDeclarations, "d", "", "Declarations header (e.g. src/hashmap.h)")
	flags.StringP(config.KeyImplementation, "i", "", "Implementation file (e.g. src/hashmap.c)")
	flags.StringP(config.KeyOutput, "o", "", "Path of the merged single header")
	flags.Int(config.KeyTailLines, config.DefaultTailLineCount, "Trailing header lines that close the inclusion guard")
	flags.String(config.KeyMarker, config.DefaultMarkerPrefix, "Prefix of the first implementation line to keep")

	root.AddCommand(a.newMergeCmd(), a.newConfigCmd(), newVersionCmd())
	return root
}

// setup builds the logger and the configuration source for every subcommand.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	if a.logger == nil {
		logger, err := logging.Setup(a.debug, appName, version.Version)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.logger = logger
	}

	v, err := config.New(a.configFile)
	if err != nil {
		a.logger.Error("Failed to load configuration", zap.String("config", a.configFile), zap.Error(err))
		return err
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}
	a.viper = v
	return nil
}
