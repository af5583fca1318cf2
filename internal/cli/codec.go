package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/zeusvoltaire/invpart/codec"
	"github.com/zeusvoltaire/invpart/internal/config"
)

const passwordPrompt = "Enter the password: "

// codecFlags registers the flags shared by encode and decode.
func codecFlags(fs *flag.FlagSet) func(*config.Config, map[string]bool) {
	constant := fs.String("constant", "", "additive constant C")
	minLen := fs.Int("min-length", 0, "shortest password length")
	maxLen := fs.Int("max-length", 0, "longest password length")

	return func(cfg *config.Config, set map[string]bool) {
		if set["constant"] {
			cfg.Codec.Constant = *constant
		}
		if set["min-length"] {
			cfg.Codec.MinLength = *minLen
		}
		if set["max-length"] {
			cfg.Codec.MaxLength = *maxLen
		}
	}
}

// decodeFlags adds the search flags to codecFlags.
func decodeFlags(fs *flag.FlagSet) func(*config.Config, map[string]bool) {
	common := codecFlags(fs)
	strategy := fs.String("strategy", "", "search strategy: backtracking or mitm")
	maxSolutions := fs.Int("max-solutions", 0, "stop after this many candidates (0 = all)")
	timeout := fs.Duration("timeout", 0, "abort the search after this long (0 = never)")
	noPrune := fs.Bool("no-prune", false, "disable bound pruning in backtracking")

	return func(cfg *config.Config, set map[string]bool) {
		common(cfg, set)
		if set["strategy"] {
			cfg.Codec.Strategy = *strategy
		}
		if set["max-solutions"] {
			cfg.Codec.MaxSolutions = *maxSolutions
		}
		if set["timeout"] {
			cfg.Codec.Timeout = *timeout
		}
		if set["no-prune"] {
			cfg.Codec.Prune = !*noPrune
		}
	}
}

// runEncode prints Z for the password given as argument or read from stdin.
func runEncode(_ context.Context, e *env, args []string) error {
	password, err := e.argOrLine(args, passwordPrompt)
	if err != nil {
		return err
	}
	enc, err := e.encoder()
	if err != nil {
		return err
	}

	z, err := enc.Encode(password)
	if err != nil {
		e.metrics.IncInvalidInput(codecReason(err))
		return err
	}
	_, err = fmt.Fprintln(e.stdout, z)

	return err
}

// runDecode prints every password found for Z, one per line.
// Candidates found before a timeout are still printed.
func runDecode(ctx context.Context, e *env, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: decode needs exactly one argument Z", errUsage)
	}
	z, ok := new(big.Int).SetString(args[0], 10)
	if !ok {
		e.metrics.IncInvalidInput("not_a_number")
		return fmt.Errorf("%q is not an integer", args[0])
	}
	enc, err := e.encoder()
	if err != nil {
		return err
	}

	if t := e.cfg.Codec.Timeout; t > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t)
		defer cancel()
	}

	strategy := e.strategy()
	lo, hi := enc.LengthBounds()
	e.logger.Debugf("decode Z=%s with %s, lengths %d..%d", z, strategy.Name(), lo, hi)

	res, err := enc.Decode(ctx, z, strategy)
	if errors.Is(err, codec.ErrNegativeTarget) {
		e.metrics.IncInvalidInput(codecReason(err))
		return err
	}
	e.metrics.ObserveDecode(res.Stats.Strategy, res.Stats.Checked, res.Stats.Pruned,
		len(res.Solutions), res.Stats.Duration.Seconds())
	e.logger.Infof("%s: %d candidate(s), %d nodes checked, %d pruned in %s",
		res.Stats.Strategy, len(res.Solutions), res.Stats.Checked, res.Stats.Pruned,
		res.Stats.Duration.Round(time.Millisecond))

	for _, s := range res.Solutions {
		if _, werr := fmt.Fprintln(e.stdout, s); werr != nil {
			return werr
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("decode timed out after %s: %w", e.cfg.Codec.Timeout, err)
	}

	return err
}

// encoder builds the Encoder described by the codec configuration.
func (e *env) encoder() (*codec.Encoder, error) {
	table, err := e.lookupTable()
	if err != nil {
		return nil, err
	}
	c, err := e.cfg.Codec.ConstantValue()
	if err != nil {
		return nil, err
	}

	return codec.NewEncoder(table,
		codec.WithConstant(c),
		codec.WithLengthBounds(e.cfg.Codec.MinLength, e.cfg.Codec.MaxLength),
	)
}

// lookupTable loads the configured CSV table, or the built-in ASCII table.
func (e *env) lookupTable() (*codec.LookupTable, error) {
	path := e.cfg.Codec.LookupTable
	if path == "" {
		return codec.DefaultLookupTable(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table, err := codec.LoadLookupTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	e.logger.Debugf("loaded %d characters from %s", table.Len(), path)

	return table, nil
}

// strategy builds the configured decode strategy.
func (e *env) strategy() codec.Strategy {
	c := e.cfg.Codec
	if c.Strategy == config.StrategyMITM {
		return &codec.MeetInTheMiddle{MaxEntries: c.MaxEntries, MaxSolutions: c.MaxSolutions}
	}

	return &codec.Backtracking{Prune: c.Prune, MaxSolutions: c.MaxSolutions}
}

// codecReason maps an encode/decode input error to a metrics label.
func codecReason(err error) string {
	switch {
	case errors.Is(err, codec.ErrUnknownCharacter):
		return "unknown_character"
	case errors.Is(err, codec.ErrPasswordLength):
		return "password_length"
	case errors.Is(err, codec.ErrNegativeTarget):
		return "below_constant"
	default:
		return "other"
	}
}
