package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chiton/dijkstra"
	"github.com/katalvlaran/chiton/gridgraph"
)

// app carries the streams and the resolved settings shared by all commands.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	tiles      int
	logLevel   string

	cfg    Config
	logger *slog.Logger
}

// newRootCmd builds the command tree bound to the given streams.
func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:   "chiton",
		Short: "Find the lowest total risk path through a cave risk map",
		Long: `chiton reads a rectangular map of risk digits and reports the lowest
total risk of any path from the top-left to the bottom-right cell, for the
map itself and for the map tiled into a larger one.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	pf.IntVar(&a.tiles, "tiles", gridgraph.DefaultTiles, "repeats per axis for the expanded map")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn or error")

	solveCmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Print the lowest total risk for the map and its expansion",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runSolve,
	}
	expandCmd := &cobra.Command{
		Use:   "expand [file]",
		Short: "Print the expanded map as digit rows",
		Long: `expand prints the tiled map one row per line. Every cost must fit in a
single digit; a map holding a larger cost is reported as an error rather
than printed.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runExpand,
	}
	rootCmd.AddCommand(solveCmd, expandCmd)

	return rootCmd
}

// setup resolves the config (defaults < file < explicit flags) and the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("tiles") {
		cfg.Tiles = a.tiles
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := parseLevel(cfg.LogLevel)

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	a.logger.Debug("configuration resolved", "tiles", cfg.Tiles, "log_level", cfg.LogLevel, "config", a.configPath)

	return nil
}

// loadGrid reads the map named by args (stdin when absent).
func (a *app) loadGrid(args []string) (*gridgraph.GridGraph, error) {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	r, closeFn, err := openInput(path, a.stdin)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	gg, err := gridgraph.FromLines(lines)
	if err != nil {
		return nil, fmt.Errorf("invalid risk map: %w", err)
	}
	a.logger.Info("risk map loaded", "width", gg.Width(), "height", gg.Height())

	return gg, nil
}

func (a *app) runSolve(_ *cobra.Command, args []string) error {
	base, err := a.loadGrid(args)
	if err != nil {
		return err
	}

	part1, err := a.solve("base", base)
	if err != nil {
		return err
	}
	expanded, err := gridgraph.ExpandN(base, a.cfg.Tiles)
	if err != nil {
		return err
	}
	part2, err := a.solve("expanded", expanded)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "part 1: %d\n", part1)
	fmt.Fprintf(a.stdout, "part 2: %d\n", part2)

	return nil
}

func (a *app) runExpand(_ *cobra.Command, args []string) error {
	base, err := a.loadGrid(args)
	if err != nil {
		return err
	}
	expanded, err := gridgraph.ExpandN(base, a.cfg.Tiles)
	if err != nil {
		return err
	}
	a.logger.Debug("map expanded", "tiles", a.cfg.Tiles, "width", expanded.Width(), "height", expanded.Height())

	return writeGrid(a.stdout, expanded)
}

// writeGrid prints gg as digit rows followed by a newline.
func writeGrid(w io.Writer, gg *gridgraph.GridGraph) error {
	text, err := gg.MarshalText()
	if err != nil {
		return fmt.Errorf("render expanded map: %w", err)
	}
	text = append(text, '\n')
	_, err = w.Write(text)

	return err
}

// solve runs one search and logs its counters.
func (a *app) solve(name string, gg *gridgraph.GridGraph) (int64, error) {
	var st dijkstra.Stats
	start := time.Now()
	risk, err := dijkstra.LowestRisk(gg, dijkstra.WithStats(&st))
	if err != nil {
		return 0, fmt.Errorf("solve %s map: %w", name, err)
	}
	a.logger.Debug("search finished",
		"map", name,
		"width", gg.Width(),
		"height", gg.Height(),
		"risk", risk,
		"settled", st.Settled,
		"pushes", st.Pushes,
		"stale", st.Stale,
		"elapsed", time.Since(start),
	)

	return risk, nil
}
