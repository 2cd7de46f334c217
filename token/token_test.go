package token_test

import (
	"testing"

	"github.com/amrul94/InterpreterForMython/lexer"
	"github.com/amrul94/InterpreterForMython/token"
)

func TestEqual(t *testing.T) {
	cases := []struct {
		name     string
		lhs, rhs token.Token
		want     bool
	}{
		{"same number", token.MakeNumber(5), token.MakeNumber(5), true},
		{"different number", token.MakeNumber(5), token.MakeNumber(6), false},
		{"same id", token.MakeId("x"), token.MakeId("x"), true},
		{"different id", token.MakeId("x"), token.MakeId("y"), false},
		{"same string", token.MakeString("hi"), token.MakeString("hi"), true},
		{"different string", token.MakeString("hi"), token.MakeString("bye"), false},
		{"same char", token.MakeChar('='), token.MakeChar('='), true},
		{"different char", token.MakeChar('='), token.MakeChar('+'), false},
		{"same unit kind", token.MakeUnit(token.If), token.MakeUnit(token.If), true},
		{"different unit kind", token.MakeUnit(token.If), token.MakeUnit(token.Else), false},
		{"different kind entirely", token.MakeNumber(1), token.MakeId("1"), false},
		{"line does not affect equality", token.Token{Kind: token.Eof, Line: 1}, token.Token{Kind: token.Eof, Line: 99}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := token.Equal(c.lhs, c.rhs); got != c.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", c.lhs, c.rhs, got, c.want)
			}
		})
	}
}

func TestKeywordsRoundTrip(t *testing.T) {
	for lexeme, kind := range token.Keywords {
		l, err := lexer.New([]byte(lexeme + "\n"))
		if err != nil {
			t.Fatalf("lexer.New(%q): %v", lexeme, err)
		}
		got := []token.Kind{l.CurrentToken().Kind}
		for l.CurrentToken().Kind != token.Eof {
			tok, err := l.NextToken()
			if err != nil {
				t.Fatalf("NextToken(%q): %v", lexeme, err)
			}
			got = append(got, tok.Kind)
		}
		if len(got) != 3 || got[0] != kind || got[1] != token.Newline || got[2] != token.Eof {
			t.Errorf("lexing %q = %v, want [%v Newline Eof]", lexeme, got, kind)
		}
	}
}
