package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/huynhanx03/go-pieces/pkg/common/apperr"
	"github.com/huynhanx03/go-pieces/pkg/inventory"
)

const quitCode = 0

// Shell is the interactive menu loop around an inventory.
// Only the goroutine running Run touches the inventory.
type Shell struct {
	inv *inventory.Inventory
	in  io.Reader
	out io.Writer
	log *zap.Logger
}

// New creates a Shell reading selections from in and writing to out.
func New(inv *inventory.Inventory, in io.Reader, out io.Writer, log *zap.Logger) *Shell {
	if log == nil {
		log = zap.NewNop()
	}
	return &Shell{inv: inv, in: in, out: out, log: log}
}

// Run shows the state and menu, reads one selection per line and applies it
// until the quit code, end of input, or ctx cancellation.
// Returns nil on quit or end of input, ctx.Err() on cancellation.
func (s *Shell) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	lines, readErr := readLines(s.in, done)

	for {
		RenderState(s.out, s.inv.Snapshot())
		RenderMenu(s.out, s.inv.StackCap())

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			s.log.Info("shell interrupted", zap.Error(ctx.Err()))
			return ctx.Err()
		case line, ok = <-lines:
		}

		if !ok {
			if err := <-readErr; err != nil {
				return fmt.Errorf("reading selection: %w", err)
			}
			s.quit()
			return nil
		}

		code, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			s.invalid(line)
			continue
		}
		if code == quitCode {
			s.quit()
			return nil
		}

		a := inventory.Action(code)
		if !a.Valid() {
			s.invalid(line)
			continue
		}
		s.apply(a)
	}
}

func (s *Shell) apply(a inventory.Action) {
	out := s.inv.Perform(a)
	fmt.Fprintf(s.out, "\n%s\n", out.Message())

	if !out.OK() {
		s.log.Warn("action rejected",
			zap.Stringer("action", a),
			zap.Stringer("code", apperr.CodeOf(out.Err)),
			zap.Error(out.Err),
		)
		return
	}
	s.log.Info("action applied",
		zap.Stringer("action", a),
		zap.Int("queue_len", s.inv.QueueLen()),
		zap.Int("stack_len", s.inv.StackLen()),
	)
}

func (s *Shell) invalid(line string) {
	fmt.Fprintf(s.out, "\nInvalid selection. Choose an option from %d to %d.\n", quitCode, len(inventory.Actions()))
	s.log.Debug("invalid selection", zap.String("input", line))
}

func (s *Shell) quit() {
	RenderSummary(s.out, s.inv.Stats())
	fmt.Fprint(s.out, "\nClosing the piece manager. Goodbye!\n")
	s.log.Info("shell closed", zap.Int("actions", s.inv.Stats().Total()))
}

// readLines scans r on its own goroutine so Run can select on ctx.
// The goroutine exits at end of input or once done is closed.
func readLines(r io.Reader, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				errc <- nil
				return
			}
		}
		errc <- sc.Err()
	}()
	return lines, errc
}
