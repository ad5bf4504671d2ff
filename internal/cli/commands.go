package cli

import (
	"github.com/GriffinCanCode/dfnlib/internal/oplog"
	"github.com/spf13/cobra"
)

func (a *app) timeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time",
		Short: "Normalize and round time values",
	}

	normalize := &cobra.Command{
		Use:     "normalize <value>",
		Short:   "Convert a Unix epoch, Julian Day or ISO timestamp to UTC",
		Example: "  dfnutil time normalize 2457754.5\n  dfnutil time normalize 2017-06-30T16:13:29",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), "time.normalize", map[string]interface{}{"time": args[0]})
		},
	}

	var n int
	round := &cobra.Command{
		Use:     "round <value>",
		Short:   "Round a time to the nearest n-second boundary",
		Example: "  dfnutil time round 1498800007.0 --n 30",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), "time.round", map[string]interface{}{"time": args[0], "n": float64(n)})
		},
	}
	round.Flags().IntVarP(&n, "n", "n", 30, "interval in seconds (must divide 60)")

	julian := &cobra.Command{
		Use:   "julian <value>",
		Short: "Show the Julian Date of a time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), "time.julian", map[string]interface{}{"time": args[0]})
		},
	}

	cmd.AddCommand(normalize, round, julian)
	return cmd
}

func (a *app) filesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "Locate station files",
	}

	var (
		exts      []string
		dir       string
		prefix    string
		suffix    string
		logSuffix string
		extension string
		system    string
	)

	glob := &cobra.Command{
		Use:     "glob",
		Short:   "List dir/prefix*suffix*.ext files, sorted",
		Example: "  dfnutil files glob --ext NEF --ext CR2 --dir /data/2017-06-30",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := map[string]interface{}{"extensions": exts, "prefix": prefix, "suffix": suffix}
			if dir != "" {
				params["directory"] = dir
			}
			return a.run(cmd.Context(), "files.glob", params)
		},
	}
	glob.Flags().StringSliceVar(&exts, "ext", []string{"NEF"}, "extensions to match")
	glob.Flags().StringVar(&dir, "dir", "", "directory (default from DFN_DATA_DIR)")
	glob.Flags().StringVar(&prefix, "prefix", "", "filename prefix")
	glob.Flags().StringVar(&suffix, "suffix", "", "substring after the prefix")

	configCmd := &cobra.Command{
		Use:   "config [dir]",
		Short: "Find the dfnstation config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := map[string]interface{}{}
			if len(args) == 1 {
				params["directory"] = args[0]
			}
			return a.run(cmd.Context(), "files.config", params)
		},
	}

	logFile := &cobra.Command{
		Use:     "log [base-dir]",
		Short:   "Recursively find a log file by suffix",
		Example: "  dfnutil files log /data --suffix _log_interval --system 15",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := map[string]interface{}{"suffix": logSuffix, "extension": extension, "system": system}
			if len(args) == 1 {
				params["directory"] = args[0]
			}
			return a.run(cmd.Context(), "files.log", params)
		},
	}
	logFile.Flags().StringVar(&logSuffix, "suffix", "", "log suffix, e.g. _log_interval")
	logFile.Flags().StringVar(&extension, "ext", "", "log extension (default from DFN_LOG_EXT)")
	logFile.Flags().StringVar(&system, "system", "", "system number")
	_ = logFile.MarkFlagRequired("suffix")

	rawMaker := &cobra.Command{
		Use:   "raw-maker <extension>",
		Short: "Show the camera maker of a raw extension",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), "files.raw_maker", map[string]interface{}{"extension": args[0]})
		},
	}

	band := &cobra.Command{
		Use:   "band <channel>",
		Short: "Show the photometric band of a processing channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), "files.filter_band", map[string]interface{}{"name": args[0]})
		},
	}

	cmd.AddCommand(glob, configCmd, logFile, rawMaker, band)
	return cmd
}

func (a *app) logCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Read station operation logs",
	}

	var key, module, mode string
	search := &cobra.Command{
		Use:     "search <log-file>",
		Short:   "Extract the value logged for a key",
		Example: "  dfnutil log search run.txt --key leostick_version --module interval_control_lin",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), "log.search", map[string]interface{}{
				"path": args[0], "key": key, "module": module, "mode": mode,
			})
		},
	}
	search.Flags().StringVar(&key, "key", "", "key to extract")
	search.Flags().StringVar(&module, "module", "", "logging module (default: any)")
	search.Flags().StringVar(&mode, "mode", string(oplog.ModeFirst), "first or list")
	_ = search.MarkFlagRequired("key")

	cmd.AddCommand(search)
	return cmd
}

func (a *app) toolsCommand() *cobra.Command {
	var stats bool

	cmd := &cobra.Command{
		Use:   "tools [query]",
		Short: "List available tools, optionally matching a query",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if stats {
				return render(a.out, a.output, a.registry.Stats())
			}

			services := a.registry.List(nil)
			if len(args) == 1 {
				services = a.registry.Discover(args[0], len(services))
			}

			tools := []interface{}{}
			for _, svc := range services {
				for _, tool := range svc.Tools {
					tools = append(tools, map[string]interface{}{
						"id":          tool.ID,
						"description": tool.Description,
					})
				}
			}
			return render(a.out, a.output, map[string]interface{}{"tools": tools, "count": len(tools)})
		},
	}
	cmd.Flags().BoolVar(&stats, "stats", false, "show service and tool counts instead of the list")
	return cmd
}
