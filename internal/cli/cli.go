// Package cli implements the invpart command: a read/print shell around
// partition counting plus the table, encode and decode tools.
//
// Run is the whole program minus process concerns; cmd/invpart only wires
// signals and os.Exit around it.
package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/zeusvoltaire/invpart/internal/config"
	"github.com/zeusvoltaire/invpart/internal/metrics"
	"github.com/zeusvoltaire/invpart/log"
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitFailure = 1 // invalid input or a failed computation
	ExitUsage   = 2 // bad flags or configuration
)

// errUsage marks errors that map to ExitUsage.
var errUsage = errors.New("usage")

// command is one subcommand. flags registers command-specific flags on fs and
// returns a hook that copies explicitly set values into cfg.
type command struct {
	name    string
	summary string
	flags   func(fs *flag.FlagSet) func(cfg *config.Config, set map[string]bool)
	run     func(ctx context.Context, e *env, args []string) error
}

var commands = []command{
	{"count", "print p(N) for N from the argument or stdin (default)", countFlags, runCount},
	{"table", "print k p(k) for k = 0..N", countFlags, runTable},
	{"encode", "print Z for a password", codecFlags, runEncode},
	{"decode", "print passwords that encode to Z", decodeFlags, runDecode},
}

// env is the per-invocation state shared by every command.
type env struct {
	cfg     config.Config
	logger  log.Logger
	metrics metrics.Collector
	stdin   *bufio.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// Run executes the command line args (without the program name) and returns
// the process exit code. Results go to stdout; prompts, logs and errors go to
// stderr.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := commands[0]
	if len(args) > 0 {
		for _, c := range commands {
			if args[0] == c.name {
				cmd, args = c, args[1:]
				break
			}
		}
	}

	fs := flag.NewFlagSet("invpart "+cmd.name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(fs, cmd) }
	configPath := fs.String("config", "", "YAML configuration file")
	fs.String("log-level", "", "log level: debug, info, warn, error")
	fs.String("metrics-file", "", "write Prometheus metrics to this file on exit")
	fs.String("lookup-table", "", "CSV lookup table (character,partition_value)")
	apply := cmd.flags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "invpart: %v\n", err)
		return ExitUsage
	}
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	applyCommon(fs, &cfg, set)
	apply(&cfg, set)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "invpart: %v\n", err)
		return ExitUsage
	}

	logger, err := log.New(stderr, cfg.LogLevel)
	if err != nil {
		logger.Warnf("%v", err)
	}

	e := &env{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics.NewNop(),
		stdin:   bufio.NewReader(stdin),
		stdout:  stdout,
		stderr:  stderr,
	}
	var reg *prometheus.Registry
	if cfg.MetricsFile != "" {
		reg = prometheus.NewRegistry()
		e.metrics = metrics.NewPrometheus(reg, "invpart")
	}

	err = cmd.run(ctx, e, fs.Args())

	if reg != nil {
		if werr := prometheus.WriteToTextfile(cfg.MetricsFile, reg); werr != nil {
			logger.Warnf("write metrics to %s: %v", cfg.MetricsFile, werr)
		} else {
			logger.Debugf("metrics written to %s", cfg.MetricsFile)
		}
	}

	if err != nil {
		fmt.Fprintf(stderr, "invpart: %v\n", err)
		if errors.Is(err, errUsage) {
			fs.Usage()
			return ExitUsage
		}
		return ExitFailure
	}

	return ExitOK
}

// applyCommon copies the shared flags that were set on the command line into cfg.
func applyCommon(fs *flag.FlagSet, cfg *config.Config, set map[string]bool) {
	value := func(name string) string { return fs.Lookup(name).Value.String() }
	if set["log-level"] {
		cfg.LogLevel = value("log-level")
	}
	if set["metrics-file"] {
		cfg.MetricsFile = value("metrics-file")
	}
	if set["lookup-table"] {
		cfg.Codec.LookupTable = value("lookup-table")
	}
}

func usage(fs *flag.FlagSet, cmd command) {
	out := fs.Output()
	fmt.Fprintf(out, "Usage: invpart [command] [flags] [argument]\n\nCommands:\n")
	for _, c := range commands {
		fmt.Fprintf(out, "  %-7s %s\n", c.name, c.summary)
	}
	fmt.Fprintf(out, "\nFlags for %s:\n", cmd.name)
	fs.PrintDefaults()
}

// argOrLine returns the single positional argument, or one line read from
// stdin after writing prompt to stderr. The result is trimmed of surrounding
// whitespace.
func (e *env) argOrLine(args []string, prompt string) (string, error) {
	switch len(args) {
	case 0:
	case 1:
		return strings.TrimSpace(args[0]), nil
	default:
		return "", fmt.Errorf("%w: expected at most one argument, got %d", errUsage, len(args))
	}

	fmt.Fprint(e.stderr, prompt)
	line, err := e.stdin.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: no input on stdin", errUsage)
		}
		return "", fmt.Errorf("read stdin: %w", err)
	}

	return strings.TrimSpace(line), nil
}
