package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/scenario"
	"github.com/katalvlaran/gridpath/search"
)

// execute loads the scenario, runs the search, and writes the report.
func execute(ctx context.Context, outW io.Writer, logger *slog.Logger, cfg *config) error {
	sc, err := scenario.LoadFile(cfg.ScenarioPath)
	if err != nil {
		return err
	}
	if cfg.Algorithm != "" {
		sc.Algorithm = cfg.Algorithm
	}
	setup, err := sc.Build()
	if err != nil {
		return err
	}
	logger.Info("Scenario loaded.",
		"path", cfg.ScenarioPath,
		"rows", setup.Grid.Rows(),
		"algorithm", setup.Model.Name())

	opts := []search.Option{
		search.WithContext(ctx),
		search.WithLogger(logger),
		search.WithPathMarking(!cfg.NoMark),
		search.WithMaxExpansions(cfg.MaxExpansions),
	}
	if cfg.Trace {
		step := 0
		opts = append(opts, search.WithOnStep(func(g *grid.Grid) {
			step++
			fmt.Fprintf(outW, "step %d\n%s\n", step, g)
		}))
	}

	res, err := search.Run(setup.Grid, setup.Start, setup.End, setup.Model, opts...)
	if err != nil {
		return err
	}
	logger.Info("Search finished.",
		"status", res.Status.String(),
		"cost", res.Cost,
		"expanded", res.Expanded)

	writeReport(outW, sc.Name, setup, res)

	switch res.Status {
	case search.Exhausted:
		return &ExitError{Code: exitNoPath}
	case search.Cancelled:
		return &ExitError{Code: exitCancelled, Message: "search cancelled"}
	}
	return nil
}

// writeReport prints the result summary followed by the grid.
func writeReport(w io.Writer, name string, setup *scenario.Setup, res search.Result) {
	if name != "" {
		fmt.Fprintf(w, "scenario:  %s\n", name)
	}
	fmt.Fprintf(w, "algorithm: %s\n", setup.Model.Name())
	fmt.Fprintf(w, "status:    %s\n", res.Status)
	if res.Found() {
		fmt.Fprintf(w, "cost:      %d\n", res.Cost)
		fmt.Fprintf(w, "path:      %s\n", formatPath(res.Path))
	}
	fmt.Fprintf(w, "expanded:  %d\n", res.Expanded)
	fmt.Fprintf(w, "pushed:    %d\n", res.Pushed)
	fmt.Fprintf(w, "\n%s", setup.Grid)
}

func formatPath(path []grid.Coord) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
