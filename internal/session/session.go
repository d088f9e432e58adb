// Package session runs the interactive calculator loop.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sivchari/gocalc/internal/dispatch"
	"github.com/sivchari/gocalc/internal/input"
	"github.com/sivchari/gocalc/internal/menu"
	"go.uber.org/zap"
)

// Messages printed by the session.
const (
	WelcomeMessage       = "Welcome to the Simple Calculator!"
	FarewellMessage      = "Thank you for using the calculator. Goodbye!"
	InvalidChoiceMessage = "Invalid choice! Please select 1-5."

	selectionPrompt = "\nSelect operation (1-5): "
	operandsHeader  = "\nEnter two numbers:"
	firstPrompt     = "First number: "
	secondPrompt    = "Second number: "
)

// State is a position in the session's state machine.
type State int

const (
	// StateAwaitingSelection shows the menu and waits for a choice.
	StateAwaitingSelection State = iota
	// StateAwaitingOperands waits for the two numbers of the chosen operation.
	StateAwaitingOperands
	// StateTerminated ends the session.
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateAwaitingSelection:
		return "awaiting_selection"
	case StateAwaitingOperands:
		return "awaiting_operands"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Session holds the state of one interactive run.
type Session struct {
	reader      *input.Reader
	out         io.Writer
	logger      *zap.Logger
	successMark string

	state    State
	selector int
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the diagnostic logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSuccessMark sets the marker printed before each result.
func WithSuccessMark(mark string) Option {
	return func(s *Session) {
		if mark != "" {
			s.successMark = mark
		}
	}
}

// New creates a session reading answers from in and printing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		reader:      input.NewReader(in, out),
		out:         out,
		logger:      zap.NewNop(),
		successMark: "✓",
		state:       StateAwaitingSelection,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Run drives the session until the user exits or input is exhausted.
// Cancelling ctx stops the loop before the next prompt.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, WelcomeMessage)
	s.logger.Info("session started")

	for s.state != StateTerminated {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.step(); err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out)
				s.logger.Info("input closed")
				s.transition(StateTerminated)

				return nil
			}

			return fmt.Errorf("failed to read input: %w", err)
		}
	}

	s.logger.Info("session finished")

	return nil
}

// step performs the work of the current state. Only input errors are
// returned; everything else is reported and the loop resumes at the menu.
func (s *Session) step() (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("recovered from panic", zap.Any("panic", r), zap.Stringer("state", s.state))
			fmt.Fprintf(s.out, "Unexpected error: %v\n", r)
			s.transition(StateAwaitingSelection)
			err = nil
		}
	}()

	switch s.state {
	case StateAwaitingSelection:
		return s.awaitSelection()
	case StateAwaitingOperands:
		return s.awaitOperands()
	default:
		return nil
	}
}

func (s *Session) awaitSelection() error {
	if err := menu.Render(s.out); err != nil {
		return fmt.Errorf("failed to write menu: %w", err)
	}

	choice, err := s.reader.ReadSelection(selectionPrompt)
	if err != nil {
		var parseErr *input.ParseError
		if errors.As(err, &parseErr) {
			s.logger.Debug("rejected selection", zap.String("text", parseErr.Text))
			fmt.Fprintf(s.out, "Error: %v\n", err)

			return nil
		}

		return err
	}

	switch {
	case choice == menu.ExitSelector:
		fmt.Fprintf(s.out, "\n%s\n", FarewellMessage)
		s.transition(StateTerminated)
	case choice < 1 || choice > menu.ExitSelector:
		s.logger.Debug("selection out of range", zap.Int("selector", choice))
		fmt.Fprintln(s.out, InvalidChoiceMessage)
	default:
		s.selector = choice
		s.transition(StateAwaitingOperands)
	}

	return nil
}

func (s *Session) awaitOperands() error {
	fmt.Fprintln(s.out, operandsHeader)

	a, err := s.reader.ReadNumber(firstPrompt)
	if err != nil {
		return err
	}

	b, err := s.reader.ReadNumber(secondPrompt)
	if err != nil {
		return err
	}

	s.transition(StateAwaitingSelection)

	result, err := dispatch.Dispatch(s.selector, a, b)
	if err != nil {
		s.logger.Error("dispatch failed", zap.Int("selector", s.selector), zap.Error(err))
		fmt.Fprintf(s.out, "Unexpected error: %v\n", err)

		return nil
	}

	s.logger.Debug("computed",
		zap.Int("selector", s.selector),
		zap.Float64("a", a),
		zap.Float64("b", b),
		zap.String("result", result))
	fmt.Fprintf(s.out, "\n%s %s\n", s.successMark, result)

	return nil
}

func (s *Session) transition(to State) {
	if s.state == to {
		return
	}

	s.logger.Debug("state transition", zap.Stringer("from", s.state), zap.Stringer("to", to))
	s.state = to
}
