// Package cli implements the dfnutil command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/GriffinCanCode/dfnlib/internal/config"
	"github.com/GriffinCanCode/dfnlib/internal/locate"
	"github.com/GriffinCanCode/dfnlib/internal/logging"
	"github.com/GriffinCanCode/dfnlib/internal/providers/station"
	"github.com/GriffinCanCode/dfnlib/internal/service"
	"github.com/spf13/cobra"
)

// app carries what every command needs once flags are parsed.
type app struct {
	cfg      *config.Config
	logger   *logging.Logger
	registry *service.Registry
	output   string
	out      io.Writer
}

// NewRootCommand builds the dfnutil command tree.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	a := &app{cfg: cfg, out: os.Stdout}
	var logLevel string
	var backend string

	root := &cobra.Command{
		Use:   "dfnutil",
		Short: "Fireball station file and time helpers",
		Long: `dfnutil locates station config and log files, normalizes
Unix epoch / Julian Day / ISO timestamps to UTC, and extracts values from
station operation logs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.out = cmd.OutOrStdout()
			return a.setup(logLevel, backend)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.output, "output", "o", "text", "output format: text, json, yaml")
	root.PersistentFlags().StringVar(&logLevel, "log-level", cfg.Logging.Level, "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&backend, "backend", cfg.Search.Backend, "log search backend: walk, find")

	root.AddCommand(
		a.timeCommand(),
		a.filesCommand(),
		a.logCommand(),
		a.toolsCommand(),
	)
	return root
}

func (a *app) setup(logLevel, backend string) error {
	if err := checkFormat(a.output); err != nil {
		return err
	}

	logger, err := logging.NewAtLevel(logLevel, a.cfg.Logging.Development)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	a.logger = logger

	b, err := locate.ParseBackend(backend)
	if err != nil {
		return err
	}
	finder := locate.NewFinder(b, logger.Named("locate").Logger)
	finder.FindBin = a.cfg.Search.FindBin

	a.registry = service.NewRegistry()
	for _, p := range []service.Provider{
		station.NewTimeProvider(),
		station.NewFilesProvider(finder, a.cfg.Station.DataDir, a.cfg.Station.LogExtension, logger.Named("files").Logger),
		station.NewLogProvider(),
	} {
		if err := a.registry.Register(p); err != nil {
			return err
		}
	}
	return nil
}

// run executes a tool and renders its result. A failed result becomes an error.
func (a *app) run(ctx context.Context, toolID string, params map[string]interface{}) error {
	result, err := a.registry.Execute(ctx, toolID, params)
	if err != nil {
		return err
	}
	if !result.Success {
		msg := "unknown error"
		if result.Error != nil {
			msg = *result.Error
		}
		return fmt.Errorf("%s: %s", toolID, msg)
	}
	return render(a.out, a.output, result.Data)
}

// Execute runs the root command with configuration from the environment.
func Execute() {
	cfg := config.LoadOrDefault()
	if err := NewRootCommand(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
