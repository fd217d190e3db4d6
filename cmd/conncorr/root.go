package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cwbudde/algo-connectivity/stats/connectivity"
)

type options struct {
	input        string
	layout       string
	settingsPath string
	mode         string
	noDemean     bool
	fisherZ      bool
	workers      int
	verbose      bool
}

func newRootCommand(logger *zerolog.Logger) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "conncorr",
		Short:         "Correlation and covariance of matrix series",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			level := zerolog.InfoLevel
			if opts.verbose {
				level = zerolog.DebugLevel
			}
			*logger = logger.Level(level)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.input, "input", "i", "-", "matrix file, - for stdin")
	pf.StringVar(&opts.layout, "layout", "rows", "matrix layout: rows (one series per row) or columns (one time point per row)")
	pf.StringVar(&opts.settingsPath, "settings", "", "YAML settings file")
	pf.StringVar(&opts.mode, "mode", "correlation", "correlation or covariance")
	pf.BoolVar(&opts.noDemean, "no-demean", false, "do not subtract the mean (correlation only)")
	pf.BoolVar(&opts.fisherZ, "fisher-z", false, "apply the Fisher Z transform (correlation only)")
	pf.IntVar(&opts.workers, "workers", 0, "maximum worker goroutines, 0 for GOMAXPROCS")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(seriesCommand(opts, logger))
	root.AddCommand(roiCommand(opts, logger))
	root.AddCommand(externalCommand(opts, logger))

	return root
}

func seriesCommand(opts *options, logger *zerolog.Logger) *cobra.Command {
	var index int
	cmd := &cobra.Command{
		Use:   "series",
		Short: "Score one series against all series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := buildEngine(cmd, opts, *logger)
			if err != nil {
				return err
			}
			scores, err := e.ScoreSeries(nil, index)
			if err != nil {
				return err
			}
			return writeScores(cmd.OutOrStdout(), scores)
		},
	}
	cmd.Flags().IntVar(&index, "index", 0, "series index")
	return cmd
}

func roiCommand(opts *options, logger *zerolog.Logger) *cobra.Command {
	var indices []int
	cmd := &cobra.Command{
		Use:   "roi",
		Short: "Score the mean of several series against all series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := buildEngine(cmd, opts, *logger)
			if err != nil {
				return err
			}
			scores, err := e.ScoreROIAverage(nil, indices)
			if err != nil {
				return err
			}
			return writeScores(cmd.OutOrStdout(), scores)
		},
	}
	cmd.Flags().IntSliceVar(&indices, "indices", nil, "series indices of the region")
	return cmd
}

func externalCommand(opts *options, logger *zerolog.Logger) *cobra.Command {
	var queryPath string
	cmd := &cobra.Command{
		Use:   "external",
		Short: "Score a series read from a file against all series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := buildEngine(cmd, opts, *logger)
			if err != nil {
				return err
			}
			query, err := readQuery(queryPath)
			if err != nil {
				return err
			}
			scores, err := e.ScoreExternal(nil, query)
			if err != nil {
				return err
			}
			return writeScores(cmd.OutOrStdout(), scores)
		},
	}
	cmd.Flags().StringVar(&queryPath, "query", "", "file holding the query series (all values are read in order)")
	_ = cmd.MarkFlagRequired("query")
	return cmd
}

// resolveSettings starts from the settings file (if any) and applies the
// flags the user set explicitly.
func resolveSettings(flags *pflag.FlagSet, opts *options) (connectivity.Settings, error) {
	settings := connectivity.DefaultSettings()
	if opts.settingsPath != "" {
		f, err := os.Open(opts.settingsPath)
		if err != nil {
			return settings, err
		}
		defer f.Close()
		if settings, err = connectivity.LoadSettings(f); err != nil {
			return settings, fmt.Errorf("%s: %w", opts.settingsPath, err)
		}
	}

	if opts.settingsPath == "" || flags.Changed("mode") {
		mode, err := connectivity.ParseMode(opts.mode)
		if err != nil {
			return settings, err
		}
		settings.Mode = mode
	}
	if flags.Changed("no-demean") {
		settings.NoDemean = opts.noDemean
	}
	if flags.Changed("fisher-z") {
		settings.FisherZ = opts.fisherZ
	}
	return settings, nil
}

func buildEngine(cmd *cobra.Command, opts *options, logger zerolog.Logger) (*connectivity.Engine, error) {
	settings, err := resolveSettings(cmd.Flags(), opts)
	if err != nil {
		return nil, err
	}

	rows, err := readMatrixFile(opts.input, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}

	layout, err := matrixLayout(rows, opts.layout)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("input", opts.input).
		Int("rows", len(rows)).
		Str("layout", layout.Name()).
		Msg("matrix loaded")

	return connectivity.New(layout, settings,
		connectivity.WithLogger(logger),
		connectivity.WithWorkers(opts.workers))
}

func writeScores(w io.Writer, scores []float64) error {
	buf := make([]byte, 0, 32*len(scores))
	for _, v := range scores {
		buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
		buf = append(buf, '\n')
	}
	_, err := w.Write(buf)
	return err
}
