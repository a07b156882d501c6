package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"bigcalc/calc"
	"bigcalc/env"
	"bigcalc/eval"
)

const helpText = `Commands:
/vars	print the defined variables
/clear	delete every variable
/del	delete the named variables (space separated)
/con	print the postfix form of an expression
/help	print this message
/exit	leave the calculator

Expressions combine arbitrary-precision integers with + - * / ^ and
parentheses. Variables are runs of Latin letters; assign with
'name = value' where value is an integer or another variable.`

var (
	errInvalidAssignment = errors.New("invalid assignment")
	errUnknownCommand    = errors.New("unknown command")
)

// session owns the state of one interactive run: the variable environment,
// the output writer and an optional transcript file.
type session struct {
	id          uuid.UUID
	environment *env.Environment
	out         io.Writer
	transcript  io.Writer

	// warn decorates error output; the default adds nothing.
	warn func(a ...any) string
}

func newSession(out io.Writer) *session {
	return &session{
		id:          uuid.New(),
		environment: env.New(),
		out:         out,
		warn:        fmt.Sprint,
	}
}

// run feeds every line of r through the session. It reports whether the
// session is still alive afterwards (a script may contain /exit).
func (s *session) run(r io.Reader) bool {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if !s.handleLine(scanner.Text()) {
			return false
		}
	}

	return true
}

// handleLine processes one input line and reports whether the session
// should keep reading. Every error is local to its line.
func (s *session) handleLine(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}

	output, alive, err := s.dispatch(line)
	if err != nil {
		output = errorMessage(err)
	}

	if output != "" {
		if err != nil {
			fmt.Fprintln(s.out, s.warn(output))
		} else {
			fmt.Fprintln(s.out, output)
		}
	}

	s.record(line, output)

	return alive
}

func (s *session) dispatch(line string) (string, bool, error) {
	switch {
	case strings.HasPrefix(line, "/"):
		return s.command(line)
	case strings.Contains(line, "="):
		return "", true, s.assign(line)
	default:
		output, err := s.evaluate(line)
		return output, true, err
	}
}

var integerLine = regexp.MustCompile(`^[+-]?\d+$`)

func (s *session) evaluate(line string) (string, error) {
	// A lone signed integer skips the pipeline and resolves directly.
	if integerLine.MatchString(line) {
		v, err := eval.Resolve(line, s.environment)
		if err != nil {
			return "", err
		}
		return v.String(), nil
	}

	postfix, err := calc.Parse(line)
	if err != nil {
		return "", err
	}

	v, err := eval.Evaluate(postfix, s.environment)
	if err != nil {
		return "", err
	}

	return v.String(), nil
}

// assign handles 'identifier = rest' lines. The right-hand side is operand
// resolution only, not full expression evaluation.
func (s *session) assign(line string) error {
	sides := strings.SplitN(line, "=", 2)
	name := strings.TrimSpace(sides[0])
	text := strings.TrimSpace(sides[1])

	if !env.ValidName(name) {
		return fmt.Errorf("%w: %q", env.ErrInvalidIdentifier, name)
	}

	value, err := eval.Resolve(text, s.environment)
	if err != nil {
		if errors.Is(err, eval.ErrUnknownVariable) {
			return err
		}
		return fmt.Errorf("%w: %v", errInvalidAssignment, err)
	}

	return s.environment.Assign(name, value)
}

func (s *session) command(line string) (string, bool, error) {
	parts := strings.SplitN(line[1:], " ", 2)
	arg := ""
	if len(parts) == 2 {
		arg = strings.TrimSpace(parts[1])
	}

	switch parts[0] {
	case "exit":
		return "Bye!", false, nil
	case "help":
		return helpText, true, nil
	case "vars":
		return s.variables(), true, nil
	case "clear":
		s.environment.Clear()
		return "", true, nil
	case "del":
		if arg == "" {
			return "", true, nil
		}
		s.environment.Delete(strings.Fields(arg)...)
		return "", true, nil
	case "con":
		if arg == "" {
			return "", true, nil
		}
		postfix, err := calc.ConvertToPostfix(arg)
		return postfix, true, err
	default:
		return "", true, errUnknownCommand
	}
}

func (s *session) variables() string {
	var b strings.Builder
	for _, name := range s.environment.Names() {
		v, _ := s.environment.Lookup(name)
		fmt.Fprintf(&b, "%s = %s\n", name, v)
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// record appends one line and its output to the transcript, if any.
func (s *session) record(in, out string) {
	if s.transcript == nil {
		return
	}

	fmt.Fprintf(s.transcript, "%s\t%s\n", in, out)
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, eval.ErrUnknownVariable):
		return "Unknown variable"
	case errors.Is(err, env.ErrInvalidIdentifier):
		return "Invalid identifier"
	case errors.Is(err, eval.ErrDivisionByZero):
		return "Division by zero"
	case errors.Is(err, eval.ErrInvalidExponent):
		return "Invalid exponent"
	case errors.Is(err, errInvalidAssignment):
		return "Invalid assignment"
	case errors.Is(err, errUnknownCommand):
		return "Unknown command"
	default:
		return "Invalid expression"
	}
}
