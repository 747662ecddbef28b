// Package repl runs the calculator line loop.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/kr/pretty"

	"go.creack.net/gocalc/executor"
	"go.creack.net/gocalc/parser"
)

// ErrLinesFailed is returned by Run in keep-going mode when at least one line
// failed.
var ErrLinesFailed = errors.New("lines failed")

// LineError wraps the error of a failing input line.
type LineError struct {
	Line int // 1-based, the last physical line for continued lines.
	Err  error
}

func (e *LineError) Error() string { return fmt.Sprintf("line %d: %s", e.Line, e.Err) }

func (e *LineError) Unwrap() error { return e.Err }

// Options configures a Session.
type Options struct {
	Mode      parser.Mode
	Format    string // Result verb, "%g" if empty.
	KeepGoing bool   // Report errors and continue instead of stopping at the first one.
	Color     bool   // Color error messages.
	Tree      bool   // Write the syntax tree of each line to stderr.
	Dump      bool   // Write the Go AST of each line to stderr.

	Vars map[string]float64 // Initial variables, variables mode only.
}

// Stats counts the lines a Session went through. Blank lines are not counted.
type Stats struct {
	Lines  int
	Failed int
}

// Session evaluates lines one after the other, sharing one environment.
type Session struct {
	opts   Options
	env    *executor.Env // nil in basic mode.
	stdout io.Writer
	stderr io.Writer

	errColor *color.Color
	stats    Stats
}

// NewSession creates a session writing results to stdout and errors and
// debug output to stderr.
func NewSession(stdout, stderr io.Writer, opts Options) (*Session, error) {
	if opts.Format == "" {
		opts.Format = "%g"
	}
	if err := CheckFormat(opts.Format); err != nil {
		return nil, err
	}
	s := &Session{
		opts:     opts,
		stdout:   stdout,
		stderr:   stderr,
		errColor: color.New(color.FgRed),
	}
	if opts.Color {
		s.errColor.EnableColor()
	} else {
		s.errColor.DisableColor()
	}

	switch opts.Mode {
	case parser.ModeBasic:
		if len(opts.Vars) > 0 {
			return nil, fmt.Errorf("variables given in %s mode", opts.Mode)
		}
	case parser.ModeVariables:
		s.env = executor.NewEnv()
		for name, value := range opts.Vars {
			s.env.Set(name, value)
		}
	default:
		return nil, fmt.Errorf("unsupported mode %s", opts.Mode)
	}
	return s, nil
}

// Env returns the session environment, nil in basic mode.
func (s *Session) Env() *executor.Env { return s.env }

// Stats returns the counters so far.
func (s *Session) Stats() Stats { return s.stats }

// Eval parses and evaluates one line. Lines without expression return
// executor.ErrNoExpression.
func (s *Session) Eval(line string) (float64, error) {
	file, err := parser.Parse(line, s.opts.Mode)
	if err != nil {
		return 0, err
	}
	if s.opts.Tree {
		fmt.Fprintf(s.stderr, "%s\n", file.Dump())
	}
	if s.opts.Dump {
		pretty.Fprintf(s.stderr, "%# v\n", file)
	}
	return executor.Evaluate(file, line, s.env)
}

// Run evaluates every line of in and prints "<line>=<result>" for each. A
// line ending with a backslash continues on the next one.
//
// By default Run stops at the first failing line and returns its error. With
// KeepGoing, errors are reported and the loop moves on to the next line.
func (s *Session) Run(in io.Reader) (Stats, error) {
	reader := bufio.NewReader(in)
	var pending strings.Builder
	lineNo := 0
	for {
		text, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return s.stats, fmt.Errorf("read input: %w", err)
		}
		if text == "" {
			break
		}
		lineNo++
		text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
		pending.WriteString(text)
		if strings.HasSuffix(text, "\\") {
			pending.WriteByte('\n')
			continue
		}
		line := pending.String()
		pending.Reset()

		if err := s.runLine(line); err != nil {
			if !s.opts.KeepGoing {
				return s.stats, &LineError{Line: lineNo, Err: err}
			}
		}
	}
	if pending.Len() > 0 {
		if err := s.runLine(pending.String()); err != nil && !s.opts.KeepGoing {
			return s.stats, &LineError{Line: lineNo, Err: err}
		}
	}
	if s.stats.Failed > 0 {
		return s.stats, fmt.Errorf("%d of %d: %w", s.stats.Failed, s.stats.Lines, ErrLinesFailed)
	}
	return s.stats, nil
}

func (s *Session) runLine(line string) error {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}
	value, err := s.Eval(line)
	if errors.Is(err, executor.ErrNoExpression) {
		return nil // Comments only.
	}
	s.stats.Lines++
	if err != nil {
		s.stats.Failed++
		s.errColor.Fprintf(s.stderr, "gocalc: %s: %s\n", trimmed, err)
		return err
	}
	fmt.Fprintf(s.stdout, "%s=%s\n", trimmed, fmt.Sprintf(s.opts.Format, value))
	return nil
}

// CheckFormat reports whether format prints a float64 with exactly one verb.
func CheckFormat(format string) error {
	if out := fmt.Sprintf(format, 1.5); strings.Contains(out, "%!") {
		return fmt.Errorf("invalid format %q: %s", format, out)
	}
	return nil
}

// Run evaluates every line of in in a new session.
func Run(in io.Reader, stdout, stderr io.Writer, opts Options) (Stats, error) {
	s, err := NewSession(stdout, stderr, opts)
	if err != nil {
		return Stats{}, err
	}
	return s.Run(in)
}
