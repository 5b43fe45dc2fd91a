// SPDX-License-Identifier: MIT

// Command smallmat inspects, multiplies, inverts, compares and exports
// SmallMatrix YAML documents.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/smallmat/config"
	"github.com/katalvlaran/smallmat/device"
	_ "github.com/katalvlaran/smallmat/device/emulated" // registers the "emulated" backend
	"github.com/katalvlaran/smallmat/internal/logging"
	"github.com/katalvlaran/smallmat/matrix"
)

// version is overridden at link time (-ldflags "-X main.version=...").
var version = "dev"

// Output formats for matrix-valued results.
const (
	outputTable = "table"
	outputYAML  = "yaml"
)

// rootOptions carries global flags and the state PersistentPreRunE builds.
type rootOptions struct {
	configPath string
	verbose    bool
	output     string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}

	root := &cobra.Command{
		Use:   "smallmat",
		Short: "Fixed-size dense matrix toolbox",
		Long: `smallmat works on small dense matrices stored as YAML documents.

Each document carries its layout (rows, cols, storage order F or C, start
index 0 or 1) and a row-major literal. Results print as tables or YAML.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if o.logger != nil {
				_ = o.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&o.configPath, "config", "", "config file (YAML)")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().StringVarP(&o.output, "output", "o", outputTable, "output format: table or yaml")

	root.AddCommand(
		newInspectCmd(o),
		newMulCmd(o),
		newInvCmd(o),
		newCompareCmd(o),
		newExportCmd(o),
		newVersionCmd(),
	)

	return root
}

// setup loads configuration, installs the logger and activates the device
// backend named by the configuration.
func (o *rootOptions) setup() error {
	switch o.output {
	case outputTable, outputYAML:
	default:
		return fmt.Errorf("unknown output format %q (valid: %s, %s)", o.output, outputTable, outputYAML)
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	level := cfg.Logging.Level
	if o.verbose {
		level = "debug"
	}
	o.logger, err = logging.New(level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	matrix.SetLogger(o.logger)
	config.SetGlobal(cfg)
	o.cfg = cfg

	if cfg.Device.Backend != "" {
		if err = device.Use(cfg.Device.Backend); err != nil {
			return fmt.Errorf("device backend %q (available: %v): %w", cfg.Device.Backend, device.Available(), err)
		}
	}
	o.logger.Debug("configured",
		zap.Bool("have_gpu", cfg.Device.HaveGPU),
		zap.String("backend", cfg.Device.Backend),
		zap.String("export_order", cfg.Export.Order),
	)

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
