package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ExitError is an error that carries a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Exit codes beyond the generic 1.
const (
	exitUsage     = 2
	exitNoPath    = 3
	exitCancelled = 130
)

// config is the parsed command line.
type config struct {
	ScenarioPath  string
	Algorithm     string // overrides the scenario's algorithm when set
	LogLevel      string
	LogFormat     string
	Trace         bool
	NoMark        bool
	MaxExpansions int
}

// parseArgs processes command-line arguments. It returns the config, a flag
// telling the caller to exit cleanly (help or missing scenario), or an
// ExitError.
func parseArgs(args []string, output io.Writer) (*config, bool, error) {
	flagSet := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gridpath - shortest paths on a square grid with Dijkstra or A*.

Usage:
  gridpath [options] [SCENARIO_PATH]

Arguments:
  SCENARIO_PATH
    Path to a YAML scenario file.

Options:
`)
		flagSet.PrintDefaults()
	}

	scenarioFlag := flagSet.String("scenario", "", "Path to the YAML scenario file.")
	algoFlag := flagSet.String("algo", "", "Override the scenario algorithm: 'dijkstra' or 'astar'.")
	logLevelFlag := flagSet.String("log-level", "info", "Logging level: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format: 'text' or 'json'.")
	traceFlag := flagSet.Bool("trace", false, "Print the grid after every expansion.")
	noMarkFlag := flagSet.Bool("no-mark", false, "Do not mark the found path on the grid.")
	maxExpFlag := flagSet.Int("max-expansions", 0, "Stop after this many expansions (0 = unlimited).")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: exitUsage, Message: err.Error()}
	}

	path := *scenarioFlag
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}
	if *maxExpFlag < 0 {
		return nil, false, &ExitError{Code: exitUsage, Message: "max-expansions must not be negative"}
	}
	slog.Debug("Arguments parsed.", "scenario", path)

	return &config{
		ScenarioPath:  path,
		Algorithm:     *algoFlag,
		LogLevel:      strings.ToLower(*logLevelFlag),
		LogFormat:     strings.ToLower(*logFormatFlag),
		Trace:         *traceFlag,
		NoMark:        *noMarkFlag,
		MaxExpansions: *maxExpFlag,
	}, false, nil
}

// newLogger builds a slog.Logger writing to w in the requested format.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info", "":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}
