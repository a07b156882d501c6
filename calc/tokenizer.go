package calc

import (
	"fmt"
	"regexp"
	"strings"
)

type tokenRegexps struct {
	name    tokenType
	regexps []*regexp.Regexp

	// resolve refines the token type once the rule has matched. Only the
	// minus-run rule needs it.
	resolve func(match string) tokenType
}

// Rules are tried top to bottom, anchored at the front of the residual
// line. Operator rules come before operand rules so that parentheses and
// sign runs are never reinterpreted as part of an operand.
var regexps = []*tokenRegexps{
	{
		name:    leftParenthesis,
		regexps: []*regexp.Regexp{regexp.MustCompile(`^\(`)},
	},
	{
		name:    rightParenthesis,
		regexps: []*regexp.Regexp{regexp.MustCompile(`^\)`)},
	},
	{
		name:    add,
		regexps: []*regexp.Regexp{regexp.MustCompile(`^\+(\s*\+)*`)},
	},
	{
		name:    subtract,
		regexps: []*regexp.Regexp{regexp.MustCompile(`^-(\s*-)*`)},
		resolve: resolveMinusRun,
	},
	{
		name:    multiply,
		regexps: []*regexp.Regexp{regexp.MustCompile(`^\*`)},
	},
	{
		name:    divide,
		regexps: []*regexp.Regexp{regexp.MustCompile(`^/`)},
	},
	{
		name:    power,
		regexps: []*regexp.Regexp{regexp.MustCompile(`^\^`)},
	},
	{
		name:    numberLiteral,
		regexps: []*regexp.Regexp{regexp.MustCompile(`^[+-]?\d+`)},
	},
	{
		name:    identifier,
		regexps: []*regexp.Regexp{regexp.MustCompile(`^[a-zA-Z]+`)},
	},
	{
		name:    whitespace,
		regexps: []*regexp.Regexp{regexp.MustCompile(`^\s+`)},
	},
	{
		name:    invalid,
		regexps: []*regexp.Regexp{regexp.MustCompile(`^.+`)},
	},
}

// resolveMinusRun collapses a run of minus signs: an even count cancels to
// an add, an odd count is a subtract.
func resolveMinusRun(match string) tokenType {
	if strings.Count(match, "-")%2 == 0 {
		return add
	}

	return subtract
}

type tokenizer struct {
	line   string
	cursor int
}

func newTokenizer(line string) *tokenizer {
	return &tokenizer{line: line}
}

func (t *tokenizer) getNextToken() (*token, error) {
	if t.cursor >= len(t.line) {
		return &tokenNoop, nil
	}

	s := t.line[t.cursor:]
	column := t.cursor + 1
	match := ""
	var tk *token

	for _, tr := range regexps {
		for _, r := range tr.regexps {
			match = r.FindString(s)
			if match != "" {
				name := tr.name
				if tr.resolve != nil {
					name = tr.resolve(match)
				}
				tk = &token{
					_type:    name,
					strValue: match,

					column: column,
				}
				break
			}
		}
		if match != "" {
			break
		}
	}

	if tk == nil {
		return &tokenNoop, nil
	}

	t.cursor += len(match)

	if tk._type == whitespace {
		return t.getNextToken()
	}

	if tk._type == invalid {
		return nil, fmt.Errorf("%w: unexpected character %q at column %d", ErrInvalidExpression, s[:1], column)
	}

	return tk, nil
}
