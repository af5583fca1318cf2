package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/zeusvoltaire/invpart/internal/config"
	"github.com/zeusvoltaire/invpart/partition"
)

const countPrompt = "Enter the partition number: "

// countFlags registers the partition flags shared by count and table.
func countFlags(fs *flag.FlagSet) func(*config.Config, map[string]bool) {
	method := fs.String("method", "", "recurrence: coin-change or pentagonal")
	workers := fs.Int("workers", 0, "goroutines for the coin-change fill (1 = sequential)")
	maxN := fs.Int("max-n", 0, "reject N above this limit (0 = unlimited)")

	return func(cfg *config.Config, set map[string]bool) {
		if set["method"] {
			cfg.Partition.Method = *method
		}
		if set["workers"] {
			cfg.Partition.Workers = *workers
		}
		if set["max-n"] {
			cfg.Partition.MaxN = *maxN
		}
	}
}

// runCount reads one numeral and prints
//
//	The inverse of partitions for <input> is <p(input)>
//
// where <input> is the numeral exactly as entered, surrounding whitespace removed.
func runCount(_ context.Context, e *env, args []string) error {
	input, err := e.argOrLine(args, countPrompt)
	if err != nil {
		return err
	}

	n, err := partition.ParseInput(input)
	if err != nil {
		e.metrics.IncInvalidInput(invalidReason(err))
		return err
	}

	opts := e.cfg.PartitionOptions()
	start := time.Now()
	p, err := partition.CountWithOptions(n, opts)
	if err != nil {
		e.metrics.IncInvalidInput(invalidReason(err))
		return err
	}
	elapsed := time.Since(start)
	e.metrics.ObserveCount(opts.Method.String(), n, elapsed.Seconds())
	e.logger.Debugf("p(%d) via %s with %d worker(s) in %s", n, opts.Method, opts.Workers, elapsed)

	_, err = fmt.Fprintf(e.stdout, "The inverse of partitions for %s is %s\n", input, p)

	return err
}

// runTable prints "k p(k)" for k = 0..N, one pair per line.
func runTable(_ context.Context, e *env, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: table needs exactly one argument N", errUsage)
	}
	n, err := partition.ParseInput(args[0])
	if err != nil {
		e.metrics.IncInvalidInput(invalidReason(err))
		return err
	}

	opts := e.cfg.PartitionOptions()
	start := time.Now()
	table, err := partition.Table(n, opts)
	if err != nil {
		e.metrics.IncInvalidInput(invalidReason(err))
		return err
	}
	e.metrics.ObserveCount(opts.Method.String(), n, time.Since(start).Seconds())

	w := bufio.NewWriter(e.stdout)
	for k, p := range table {
		fmt.Fprintf(w, "%d %s\n", k, p)
	}

	return w.Flush()
}

// invalidReason maps an input error to a metrics label.
func invalidReason(err error) string {
	switch {
	case errors.Is(err, partition.ErrTooLarge):
		return "too_large"
	case errors.Is(err, partition.ErrInvalidInput):
		return "not_a_number"
	default:
		return "other"
	}
}
