// Package cli implements the telelog command line tool.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/arloliu/telelog"
	"github.com/arloliu/telelog/series"
)

// BuildInfo is stamped into the binary at link time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

type app struct {
	verbose     bool
	configPath  string
	byteOrder   string
	compression string

	cfg    Config
	logger *slog.Logger
}

// NewRootCommand builds the command tree.
func NewRootCommand(info BuildInfo) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "telelog",
		Short: "Inspect and export binary telemetry logs",
		Long: `telelog decodes the binary telemetry logs written by recording devices
and shows or exports the time series they contain.

Quick Start:
  telelog inspect telemetry.rrd            # session summary and every value
  telelog series telemetry.rrd             # plottable series
  telelog values telemetry.rrd speed       # sorted values of one series
  telelog export telemetry.rrd -f csv      # export all series`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	flags.StringVar(&a.configPath, "config", os.Getenv("TELELOG_CONFIG"), "Path to a YAML config file")
	flags.StringVar(&a.byteOrder, "byte-order", "", "Byte order of the log: little, big or native")
	flags.StringVar(&a.compression, "compression", "", "Compression of the log: auto, none, zstd, s2 or lz4")
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	root.AddCommand(
		newInspectCommand(a),
		newSeriesCommand(a),
		newValuesCommand(a),
		newExportCommand(a),
	)

	return root
}

// Execute runs the tool and returns the process exit code.
func Execute(info BuildInfo) int {
	root := NewRootCommand(info)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}

	return 0
}

func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if a.byteOrder != "" {
		cfg.ByteOrder = a.byteOrder
	}
	if a.compression != "" {
		cfg.Compression = a.compression
	}
	a.cfg = cfg

	a.logger.Debug("configuration resolved",
		"config", a.configPath,
		"byte_order", cfg.ByteOrder,
		"compression", cfg.Compression)

	return nil
}

func (a *app) load(path string) (*series.Session, error) {
	opts, err := a.cfg.LoadOptions()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	sess, err := telelog.LoadFile(path, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	a.logger.Debug("log decoded",
		"path", path,
		"session", sess.Name(),
		"series", sess.Len(),
		"fingerprint", fmt.Sprintf("%016x", sess.Fingerprint()),
		"elapsed", time.Since(start))

	if sess.HasNameCollision() {
		a.logger.Debug("series name hashes collide; lookups fall back to name comparison", "path", path)
	}
	if dups := sess.DuplicateNames(); len(dups) > 0 {
		a.logger.Warn("series names are not unique; lookups by name use the lowest id",
			"path", path, "names", dups)
	}

	return sess, nil
}
