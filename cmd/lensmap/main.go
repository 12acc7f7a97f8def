// Command lensmap evaluates lens models described in YAML and renders maps
// of the derived quantities.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	verbose    bool
	configPath string
	timeout    time.Duration
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:   "lensmap",
		Short: "Evaluate and render gravitational lens models",
		Long: `lensmap evaluates composite lens models (Gaussian and SIS components)
described in a YAML file and writes convergence, deflection, shear and
magnification maps.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Lens model YAML file")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", time.Minute, "Evaluation timeout")

	root.AddCommand(a.evalCmd())
	root.AddCommand(a.renderCmd())
	root.AddCommand(a.radialCmd())
	root.AddCommand(cpuinfoCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
