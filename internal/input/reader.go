// Package input reads prompted, line-oriented user input.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// InvalidNumberMessage is printed each time a number prompt receives unparsable text.
const InvalidNumberMessage = "Invalid input! Please enter a valid number."

// ErrNotInteger is wrapped by ParseError when a selection is not a whole number.
var ErrNotInteger = errors.New("not a whole number")

// ErrNotNumber is wrapped by ParseError when text is not a floating-point number.
var ErrNotNumber = errors.New("not a number")

// ParseError describes input text that could not be converted.
type ParseError struct {
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid input %q: %v", e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Reader prompts on out and reads answers from in, one line per prompt.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewReader creates a new reader.
func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ReadLine writes prompt and returns the next line without its line ending.
// A final line lacking a newline is returned as is; io.EOF is only
// returned when no text remains.
func (r *Reader) ReadLine(prompt string) (string, error) {
	if _, err := io.WriteString(r.out, prompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := r.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimLineEnding(line), nil
		}

		return "", err
	}

	return trimLineEnding(line), nil
}

// ReadNumber prompts until the user enters a valid floating-point number.
// Parse failures are reported and retried without limit; only read
// errors end the loop.
func (r *Reader) ReadNumber(prompt string) (float64, error) {
	for {
		line, err := r.ReadLine(prompt)
		if err != nil {
			return 0, err
		}

		value, err := ParseNumber(line)
		if err == nil {
			return value, nil
		}

		if _, err := fmt.Fprintln(r.out, InvalidNumberMessage); err != nil {
			return 0, fmt.Errorf("failed to write message: %w", err)
		}
	}
}

// ReadSelection prompts once and parses the answer as a whole number.
func (r *Reader) ReadSelection(prompt string) (int, error) {
	line, err := r.ReadLine(prompt)
	if err != nil {
		return 0, err
	}

	return ParseSelection(line)
}

// ParseNumber parses text as a float64, ignoring surrounding whitespace.
func ParseNumber(text string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			// Out-of-range literals saturate to ±Inf.
			return value, nil
		}

		return 0, &ParseError{Text: text, Err: ErrNotNumber}
	}

	return value, nil
}

// ParseSelection parses text as a base-10 integer, ignoring surrounding whitespace.
func ParseSelection(text string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			// Oversized integers clamp to math.MaxInt or math.MinInt and stay out of range.
			return value, nil
		}

		return 0, &ParseError{Text: text, Err: ErrNotInteger}
	}

	return value, nil
}

func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")

	return strings.TrimSuffix(line, "\r")
}
