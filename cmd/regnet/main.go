// Command regnet parses regulatory network specifications and builds the
// domain graphs of parameter points.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/regnet/config"
	"github.com/katalvlaran/regnet/metrics"
)

// app carries flag values and the state built by the root pre-run hook.
type app struct {
	// Global flags
	configPath  string
	verbose     bool
	model       string
	metricsFile string

	cfg     *config.Config
	logger  *zap.Logger
	metrics *metrics.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "regnet",
		Short: "Regulatory network parser and domain graph builder",
		Long: `regnet reads gene regulatory network specifications, prints them in
canonical form or as Graphviz, and builds the state transition graph of a
parameter point over the (possibly extended) phase space.

A SPEC argument containing ':' is inline specification text; anything
else is a file path.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
			if path := a.cfg.Metrics.Textfile; path != "" {
				if err := a.metrics.WriteTextfile(path); err != nil {
					return fmt.Errorf("write metrics: %w", err)
				}
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&a.model, "model", "", "Logic grammar: original (default) or ecology (overrides config)")
	flags.StringVar(&a.metricsFile, "metrics-file", "", "Write prometheus metrics to this textfile on exit")

	root.AddCommand(a.newParseCmd())
	root.AddCommand(a.newGraphvizCmd())
	root.AddCommand(a.newDomainGraphCmd())

	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return err
		}
	}
	if a.model != "" {
		cfg.Model = a.model
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if a.metricsFile != "" {
		cfg.Metrics.Textfile = a.metricsFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := cfg.Logger()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.cfg = cfg
	a.logger = logger
	a.metrics = metrics.NewRegistry()

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
