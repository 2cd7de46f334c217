// Package lexer implements the indentation-aware tokenizer described in
// the language front-end's design: it synthesizes virtual Indent/Dedent
// tokens from leading whitespace, collapses comments and blank lines, and
// emits a well-formed terminal token stream one token at a time.
//
// The state machine is written as an explicit loop rather than the
// recursive descent the reference implementation used, so that runs of
// blank lines or comments cost no call-stack depth.
package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/amrul94/InterpreterForMython/token"
)

// indentWidth is the number of spaces that make up one block level. Fixed
// by the language: there is no configuration knob for it anywhere in this
// module, ambient config included.
const indentWidth = 2

// Lexer pulls tokens from a byte slice on demand. It has no lookahead
// beyond a single byte, except for two-character operators.
type Lexer struct {
	src  []byte
	pos  int
	line int

	current token.Token

	countIndent int
	dedentCount int
	isStartLine bool
	isCodeBlock bool
}

// New constructs a Lexer over source, discards leading blank lines, and
// primes CurrentToken with the first token.
func New(source []byte) (*Lexer, error) {
	l := &Lexer{src: source, line: 1}
	for l.pos < len(l.src) && l.src[l.pos] == '\n' {
		l.pos++
		l.line++
	}
	if err := l.advance(); err != nil {
		return nil, err
	}
	return l, nil
}

// CurrentToken returns the most recently produced token. It is valid only
// until the next call to NextToken.
func (l *Lexer) CurrentToken() token.Token {
	return l.current
}

// NextToken advances the lexer and returns the new current token.
func (l *Lexer) NextToken() (token.Token, error) {
	if err := l.advance(); err != nil {
		return token.Token{}, err
	}
	return l.current, nil
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

// advance runs the production rules until a token has been assigned to
// l.current, or an error is found. See spec §4.1 for the rule ordering.
func (l *Lexer) advance() (err error) {
	line := l.line
	defer func() {
		if err == nil {
			l.current.Line = line
		}
	}()
	for {
		line = l.line
		if l.current.Kind == token.Eof {
			return nil
		}

		if l.atEnd() {
			switch {
			case l.countIndent > 0:
				l.countIndent -= indentWidth
				l.current = token.MakeUnit(token.Dedent)
			case l.current.Kind != token.Newline && l.current.Kind != token.Dedent:
				l.current = token.MakeUnit(token.Newline)
			default:
				l.current = token.MakeUnit(token.Eof)
			}
			return nil
		}

		if l.dedentCount > 0 {
			l.dedentCount--
			l.countIndent -= indentWidth
			l.current = token.MakeUnit(token.Dedent)
			return nil
		}

		c := l.src[l.pos]
		l.pos++

		switch {
		case c == '#':
			for !l.atEnd() && l.src[l.pos] != '\n' {
				l.pos++
			}
			if !l.atEnd() {
				l.pos++ // consume the trailing newline along with the comment
				l.line++
			}
			l.current = token.MakeUnit(token.Newline)
			if l.isStartLine {
				continue // blank comment-only line: it produced no token
			}
			return nil

		case c == '\n' && l.current.Kind == token.Newline:
			l.line++
			l.isStartLine = true
			continue // collapse consecutive blank lines

		case l.isStartLine && l.countIndent > 0 && c != ' ' && !l.isCodeBlock:
			l.pos--
			l.current = token.MakeUnit(token.Dedent)
			l.countIndent -= indentWidth
			return nil
		}

		l.isCodeBlock = false

		switch {
		case c == '\n':
			l.line++
			l.current = token.MakeUnit(token.Newline)
			l.isStartLine = true
			return nil

		case c == '\'' || c == '"':
			tok, err := l.scanString(c)
			if err != nil {
				return err
			}
			l.current = tok

		case isDigit(c):
			l.pos--
			tok, err := l.scanNumber()
			if err != nil {
				return err
			}
			l.current = tok

		case isIdentFirst(c):
			l.pos--
			l.current = l.scanIdentifier()

		case c == ' ':
			l.pos--
			produced, err := l.scanIndent()
			if err != nil {
				return err
			}
			if !produced {
				continue
			}

		default:
			l.pos--
			tok, err := l.scanOperator()
			if err != nil {
				return err
			}
			l.current = tok
		}

		l.isStartLine = false
		return nil
	}
}

// scanIndent is only reached with l.pos pointing at a space. It implements
// spec §4.1's indentation scanning rule, meaningful only when the previous
// token is Newline. produced reports whether l.current was assigned; when
// false the caller should keep looping (the equivalent of the reference
// lexer's tail recursion).
func (l *Lexer) scanIndent() (produced bool, err error) {
	if l.current.Kind != token.Newline {
		l.pos++ // inline whitespace is ignored
		return false, nil
	}

	n := 0
	for !l.atEnd() && l.src[l.pos] == ' ' {
		n++
		l.pos++
	}

	switch {
	case n == l.countIndent:
		l.isCodeBlock = true
		return false, nil

	case n-l.countIndent == indentWidth:
		l.countIndent += indentWidth
		l.current = token.MakeUnit(token.Indent)
		return true, nil

	case n < l.countIndent:
		diff := l.countIndent - n
		l.countIndent -= indentWidth
		l.current = token.MakeUnit(token.Dedent)
		for diff > indentWidth {
			diff -= indentWidth
			l.dedentCount++
		}
		return true, nil

	default:
		return true, fmt.Errorf(
			"lexer: line %d: indentation increased by %d spaces, expected exactly %d",
			l.line, n-l.countIndent, indentWidth,
		)
	}
}

func (l *Lexer) scanString(quote byte) (token.Token, error) {
	var sb strings.Builder
	startLine := l.line

	for {
		if l.atEnd() {
			return token.Token{}, fmt.Errorf("lexer: line %d: unterminated string literal", startLine)
		}

		c := l.src[l.pos]
		l.pos++

		if c == quote {
			return token.MakeString(sb.String()), nil
		}

		if c == '\\' {
			if l.atEnd() {
				return token.Token{}, fmt.Errorf("lexer: line %d: unterminated escape sequence", startLine)
			}
			esc := l.src[l.pos]
			l.pos++
			switch esc {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '"':
				sb.WriteByte('"')
			case '\'':
				sb.WriteByte('\'')
			case '\\':
				sb.WriteByte('\\')
			default:
				// Unknown escape: emit the character after the backslash literally.
				sb.WriteByte(esc)
			}
			continue
		}

		if c == '\n' {
			l.line++
		}
		sb.WriteByte(c)
	}
}

func (l *Lexer) scanNumber() (token.Token, error) {
	start := l.pos
	for !l.atEnd() && isDigit(l.src[l.pos]) {
		l.pos++
	}

	v, err := strconv.Atoi(string(l.src[start:l.pos]))
	if err != nil {
		return token.Token{}, fmt.Errorf("lexer: line %d: invalid integer literal: %w", l.line, err)
	}
	return token.MakeNumber(v), nil
}

func (l *Lexer) scanIdentifier() token.Token {
	start := l.pos
	for !l.atEnd() && isIdentChar(l.src[l.pos]) {
		l.pos++
	}

	lexeme := string(l.src[start:l.pos])
	if kind, ok := token.Keywords[lexeme]; ok {
		return token.MakeUnit(kind)
	}
	return token.MakeId(lexeme)
}

func (l *Lexer) scanOperator() (token.Token, error) {
	c := l.src[l.pos]
	l.pos++

	twoChar := func(next byte, kind token.Kind) (token.Token, bool) {
		if !l.atEnd() && l.src[l.pos] == next {
			l.pos++
			return token.MakeUnit(kind), true
		}
		return token.Token{}, false
	}

	switch c {
	case '=':
		if tok, ok := twoChar('=', token.Eq); ok {
			return tok, nil
		}
		return token.MakeChar('='), nil
	case '>':
		if tok, ok := twoChar('=', token.GreaterOrEq); ok {
			return tok, nil
		}
		return token.MakeChar('>'), nil
	case '<':
		if tok, ok := twoChar('=', token.LessOrEq); ok {
			return tok, nil
		}
		return token.MakeChar('<'), nil
	case '!':
		if tok, ok := twoChar('=', token.NotEq); ok {
			return tok, nil
		}
		return token.Token{}, fmt.Errorf("lexer: line %d: unexpected character '!'", l.line)
	case '(', ')', ',', ':', '.', '+', '-', '*', '/':
		return token.MakeChar(c), nil
	default:
		return token.Token{}, fmt.Errorf("lexer: line %d: unexpected character %q", l.line, c)
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentFirst(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentFirst(c) || isDigit(c)
}
