// Package batch enciphers many files with the same starting settings.
//
// Every file gets its own machine built from the configuration, so files are
// independent of each other and of the order in which workers pick them up.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"enigma-simulator/internal/alphabet"
	"enigma-simulator/internal/config"
	"enigma-simulator/internal/logging"
)

// Options control a batch run.
type Options struct {
	Parallel int          // worker count, runtime.NumCPU() when zero or less
	Group    int          // output group size, 0 for no grouping
	Logger   *slog.Logger // logging.New("batch") when nil
}

// Result is the outcome for one file. Err is set when the file could not be
// read or contains a character without a key.
type Result struct {
	Path    string
	Output  string
	Symbols int
	Err     error
}

// Run enciphers every path. Results are returned in input order. Per-file
// failures are reported in Result.Err; the returned error is only set when
// the configuration is invalid or ctx is cancelled.
func Run(ctx context.Context, f *config.File, paths []string, opts Options) ([]Result, error) {
	if diags := config.Validate(f); diags.HasErrors() {
		return nil, fmt.Errorf("invalid machine: %w", diags.Error())
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.New("batch")
	}

	parallel := opts.Parallel
	if parallel <= 0 {
		parallel = runtime.NumCPU()
	}

	results := make([]Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = encipherFile(f, path, opts.Group)
			if results[i].Err != nil {
				logger.Warn("file failed", slog.String("path", path), slog.Any("error", results[i].Err))
			} else {
				logger.Debug("file enciphered", slog.String("path", path), slog.Int("symbols", results[i].Symbols))
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, nil
}

// Encipher runs text through a fresh machine built from f.
func Encipher(f *config.File, text string) (string, int, error) {
	m, err := config.Build(f)
	if err != nil {
		return "", 0, err
	}

	syms, err := alphabet.Parse(text)
	if err != nil {
		return "", 0, err
	}

	out, err := m.TranslateAll(syms)
	if err != nil {
		return "", 0, err
	}

	return alphabet.Decode(out), len(out), nil
}

func encipherFile(f *config.File, path string, group int) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Path: path, Err: err}
	}

	out, n, err := Encipher(f, string(data))
	if err != nil {
		return Result{Path: path, Err: fmt.Errorf("%s: %w", path, err)}
	}

	return Result{Path: path, Output: alphabet.Group(out, group), Symbols: n}
}
