// Package session runs the interactive line-by-line text front end of a
// machine.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"enigma-simulator/internal/alphabet"
	"enigma-simulator/internal/format"
	"enigma-simulator/internal/logging"
	"enigma-simulator/machine"
)

// DefaultExit is the line that ends a session.
const DefaultExit = "exit"

// Options control a Session. Zero values select the defaults.
type Options struct {
	Exit   string       // sentinel line, DefaultExit when empty
	Group  int          // output group size, 0 for no grouping
	Quiet  bool         // suppress the prompt
	Logger *slog.Logger // logging.New("session") when nil
}

// Session owns one machine for the lifetime of an interactive exchange.
type Session struct {
	ID      uuid.UUID
	machine *machine.Machine
	opts    Options
	logger  *slog.Logger
	lines   int
	symbols int
}

// New starts a session on m. The session must be the machine's only user.
func New(m *machine.Machine, opts Options) *Session {
	if opts.Exit == "" {
		opts.Exit = DefaultExit
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.New("session")
	}

	id := uuid.New()

	return &Session{
		ID:      id,
		machine: m,
		opts:    opts,
		logger:  logger.With(slog.String("session", id.String())),
	}
}

// Process enciphers one line of text. Whitespace is dropped and letters are
// upper-cased; any other character rejects the whole line before a key is
// pressed.
func (s *Session) Process(line string) (string, error) {
	syms, err := alphabet.Parse(line)
	if err != nil {
		return "", err
	}

	out, err := s.machine.TranslateAll(syms)
	if err != nil {
		return "", err
	}

	s.lines++
	s.symbols += len(syms)

	return alphabet.Group(alphabet.Decode(out), s.opts.Group), nil
}

// maxLine bounds a single input line (64 MiB).
const maxLine = 64 * 1024 * 1024

// Run reads lines from in until the exit line, end of input or ctx is done,
// writing one result per line to out. Cancellation is noticed while Run
// waits for input.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	s.logger.Info("session started", slog.String("window", format.Window(s.machine.Positions())))

	defer func() {
		s.logger.Info("session ended",
			slog.Int("lines", s.lines),
			slog.Int("symbols", s.symbols),
			slog.String("window", format.Window(s.machine.Positions())))
	}()

	done := make(chan struct{})
	defer close(done)

	lines, errc := readLines(in, done)

	for {
		if !s.opts.Quiet {
			fmt.Fprintf(out, "Enter input text (%q to quit):\n", s.opts.Exit)
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		var line string

		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return <-errc
			}

			line = strings.TrimSpace(l)
		}

		if line == s.opts.Exit {
			return nil
		}

		result, err := s.Process(line)

		var invalid *alphabet.InvalidCharError

		switch {
		case errors.As(err, &invalid):
			s.logger.Debug("line rejected", slog.Int("position", invalid.Position))
			fmt.Fprintf(out, "ERROR: Invalid character %q at position %d\n", string(invalid.Char), invalid.Position)
		case err != nil:
			return err
		default:
			s.logger.Debug("line enciphered", slog.Int("symbols", len(result)), slog.String("window", format.Window(s.machine.Positions())))
			fmt.Fprintln(out, result)
		}

		fmt.Fprintln(out)
	}
}

// readLines scans in on its own goroutine so a blocked read never holds up
// cancellation. lines is closed at end of input, after the scan error (nil on
// a clean end) has been sent on errc. Closing done stops the reader at its
// next line.
func readLines(in io.Reader, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)

		sc := bufio.NewScanner(in)
		sc.Buffer(make([]byte, 64*1024), maxLine)

		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}

		errc <- sc.Err()
	}()

	return lines, errc
}
