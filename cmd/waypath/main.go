// Command waypath loads a weighted undirected graph and prints shortest-path
// results computed with Dijkstra and Floyd–Warshall.
//
// Usage:
//
//	waypath [-graph file.yaml] [-from v1] [-to v5] [-strategy heap] [-log-level info] [-metrics]
//
// Without -graph the built-in eight-vertex reference graph is used.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/waypath/dijkstra"
	"github.com/katalvlaran/waypath/graphfile"
	"github.com/katalvlaran/waypath/metrics"
	"github.com/katalvlaran/waypath/router"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// config holds the parsed command line.
type config struct {
	graphPath string
	from, to  string
	level     slog.Level
	strategy  dijkstra.Strategy
	metrics   bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var (
		cfg      config
		level    string
		strategy string
	)
	fs := flag.NewFlagSet("waypath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.graphPath, "graph", "", "path to a graph YAML file (default: built-in reference graph)")
	fs.StringVar(&cfg.from, "from", "", "source vertex (default: first vertex)")
	fs.StringVar(&cfg.to, "to", "", "target vertex (default: last vertex)")
	fs.StringVar(&level, "log-level", "info", "log level: debug, info, warn, error")
	fs.StringVar(&strategy, "strategy", "heap", "dijkstra selection strategy: heap or linear")
	fs.BoolVar(&cfg.metrics, "metrics", false, "dump Prometheus metrics to stderr on exit")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if err := cfg.level.UnmarshalText([]byte(level)); err != nil {
		return cfg, fmt.Errorf("waypath: -log-level: %w", err)
	}
	switch strategy {
	case dijkstra.StrategyHeap.String():
		cfg.strategy = dijkstra.StrategyHeap
	case dijkstra.StrategyLinearScan.String():
		cfg.strategy = dijkstra.StrategyLinearScan
	default:
		return cfg, fmt.Errorf("waypath: -strategy: unknown value %q", strategy)
	}

	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.level}))

	spec := graphfile.Reference()
	if cfg.graphPath != "" {
		if spec, err = graphfile.Load(cfg.graphPath); err != nil {
			return err
		}
	}
	g, err := spec.Build()
	if err != nil {
		return err
	}
	logger.Info("graph loaded", "name", spec.Name, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	labels := g.Vertices()
	if cfg.from == "" {
		cfg.from = labels[0]
	}
	if cfg.to == "" {
		cfg.to = labels[len(labels)-1]
	}

	reg := prometheus.NewRegistry()
	r := router.New(g, router.WithLogger(logger), router.WithMetrics(metrics.New(reg)),
		router.WithStrategy(cfg.strategy))

	report(r, cfg, stdout, logger)

	if cfg.metrics {
		return dumpMetrics(reg, stderr)
	}

	return nil
}

// report prints every query for cfg.from and cfg.to. Query failures are
// printed in place and do not abort the report.
func report(r *router.Router, cfg config, w io.Writer, logger *slog.Logger) {
	fmt.Fprintf(w, "dijkstra %s -> %s: ", cfg.from, cfg.to)
	if p, d, err := r.Path(cfg.from, cfg.to); err != nil {
		fmt.Fprintf(w, "error: %v\n", err)
	} else {
		fmt.Fprintf(w, "%s (%s)\n", strings.Join(p, " -> "), formatDist(d))
	}

	fmt.Fprintf(w, "dijkstra from %s:\n", cfg.from)
	if res, err := r.ShortestPathsFrom(cfg.from); err != nil {
		fmt.Fprintf(w, "  error: %v\n", err)
	} else {
		for _, label := range res.Order {
			d, _ := res.Distance(label)
			fmt.Fprintf(w, "  %s: %s via %s\n", label, formatDist(d), strings.Join(res.Path(label), " -> "))
		}
	}

	fmt.Fprintf(w, "floyd-warshall %s -> %s: ", cfg.from, cfg.to)
	if d, err := r.Distance(cfg.from, cfg.to); err != nil {
		fmt.Fprintf(w, "error: %v\n", err)
	} else {
		fmt.Fprintln(w, formatDist(d))
	}

	apsp, err := r.AllPairs()
	if err != nil {
		logger.Error("all-pairs failed", "err", err)
		return
	}
	fmt.Fprintln(w, "floyd-warshall matrix:")
	labels := apsp.Labels()
	fmt.Fprintf(w, "%6s", "")
	for _, l := range labels {
		fmt.Fprintf(w, "%6s", l)
	}
	fmt.Fprintln(w)
	for i, row := range apsp.Matrix() {
		fmt.Fprintf(w, "%6s", labels[i])
		for _, d := range row {
			fmt.Fprintf(w, "%6s", formatDist(d))
		}
		fmt.Fprintln(w)
	}
}

// formatDist renders +Inf as "inf" and everything else with %g.
func formatDist(d float64) string {
	if math.IsInf(d, 1) {
		return "inf"
	}

	return fmt.Sprintf("%g", d)
}

func dumpMetrics(reg *prometheus.Registry, w io.Writer) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("waypath: gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("waypath: write metrics: %w", err)
		}
	}

	return nil
}
