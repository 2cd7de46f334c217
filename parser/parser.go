// Package parser implements a recursive-descent parser over the lexer's
// token stream, producing an ast.Block of top-level statements.
//
// Grounded on the teacher's parser.Parser: token consumption helpers
// (advance/match/check/consume), and panic-based syntax error recovery via
// synchronize, adapted from Lox's brace-delimited grammar to indentation
// blocks (Newline/Indent/Dedent instead of "{"/"}").
package parser

import (
	"errors"
	"fmt"

	"github.com/amrul94/InterpreterForMython/ast"
	"github.com/amrul94/InterpreterForMython/lexer"
	"github.com/amrul94/InterpreterForMython/token"
	"github.com/amrul94/InterpreterForMython/value"
)

// syntaxError is panicked by the token-consumption helpers on a grammar
// violation and recovered by parseStatementSafe, matching the teacher's
// Parser.error/synchronize pattern.
type syntaxError struct{ msg string }

func (e *syntaxError) Error() string { return e.msg }

// Parser turns a token stream into an executable AST.
type Parser struct {
	lex *lexer.Lexer
}

// New wraps an already-constructed Lexer.
func New(lex *lexer.Lexer) *Parser {
	return &Parser{lex: lex}
}

// ParseProgram parses lex's entire token stream into a single top-level
// ast.Block. Syntax errors are collected (not just the first one): each
// bad statement is skipped up to the next statement boundary via
// synchronize, so one typo doesn't hide every other one.
func ParseProgram(lex *lexer.Lexer) (value.Executable, error) {
	return New(lex).ParseProgram()
}

func (p *Parser) ParseProgram() (value.Executable, error) {
	var stmts []value.Executable
	var errs []error

	for p.cur().Kind != token.Eof {
		if p.cur().Kind == token.Newline {
			p.advance()
			continue
		}
		stmt, err := p.parseStatementSafe()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &ast.Block{Stmts: stmts}, nil
}

func (p *Parser) parseStatementSafe() (stmt value.Executable, err error) {
	defer func() {
		if r := recover(); r != nil {
			se, ok := r.(*syntaxError)
			if !ok {
				panic(r)
			}
			err = se
			p.synchronize()
		}
	}()
	return p.statement(), nil
}

// synchronize discards tokens through the next Newline, giving the parser
// a clean statement boundary to resume from.
func (p *Parser) synchronize() {
	for p.cur().Kind != token.Eof {
		if p.cur().Kind == token.Newline {
			p.advance()
			return
		}
		p.advance()
	}
}

// --- token consumption helpers -------------------------------------------------

func (p *Parser) cur() token.Token {
	return p.lex.CurrentToken()
}

func (p *Parser) advance() token.Token {
	tok := p.cur()
	if _, err := p.lex.NextToken(); err != nil {
		panic(&syntaxError{msg: err.Error()})
	}
	return tok
}

func (p *Parser) check(kind token.Kind) bool {
	return p.cur().Kind == kind
}

func (p *Parser) checkChar(c byte) bool {
	return p.cur().Kind == token.Char && p.cur().CharValue == c
}

func (p *Parser) match(kind token.Kind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) matchChar(c byte) bool {
	if p.checkChar(c) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) consume(kind token.Kind, what string) token.Token {
	if !p.check(kind) {
		p.errorHere(what)
	}
	return p.advance()
}

func (p *Parser) consumeChar(c byte, what string) token.Token {
	if !p.checkChar(c) {
		p.errorHere(what)
	}
	return p.advance()
}

func (p *Parser) errorHere(what string) {
	panic(&syntaxError{msg: fmt.Sprintf("parser: line %d: expected %s, got %s", p.cur().Line, what, p.cur())})
}

// --- statements -----------------------------------------------------------

func (p *Parser) statement() value.Executable {
	switch {
	case p.check(token.Class):
		return p.classDecl()
	case p.check(token.If):
		return p.ifStmt()
	case p.check(token.Print):
		return p.printStmt()
	case p.check(token.Return):
		return p.returnStmt()
	default:
		return p.exprOrAssignStmt()
	}
}

// suite parses an indented block: NEWLINE INDENT statement+ DEDENT.
func (p *Parser) suite() value.Executable {
	p.consume(token.Newline, "a newline before an indented block")
	p.consume(token.Indent, "an indented block")

	var stmts []value.Executable
	for !p.check(token.Dedent) && !p.check(token.Eof) {
		if p.check(token.Newline) {
			p.advance()
			continue
		}
		stmts = append(stmts, p.statement())
	}
	p.consume(token.Dedent, "a dedent to close the block")
	return &ast.Block{Stmts: stmts}
}

func (p *Parser) classDecl() value.Executable {
	p.advance() // 'class'
	name := p.consume(token.Id, "a class name").Text

	var parentName string
	if p.matchChar('(') {
		parentName = p.consume(token.Id, "a superclass name").Text
		p.consumeChar(')', "')' after the superclass name")
	}
	p.consumeChar(':', "':' after the class header")
	p.consume(token.Newline, "a newline after the class header")
	p.consume(token.Indent, "an indented class body")

	var methods []ast.MethodDecl
	for !p.check(token.Dedent) && !p.check(token.Eof) {
		if p.check(token.Newline) {
			p.advance()
			continue
		}
		methods = append(methods, p.methodDecl())
	}
	p.consume(token.Dedent, "a dedent to close the class body")

	return ast.ClassDef{Name: name, ParentName: parentName, Methods: methods}
}

func (p *Parser) methodDecl() ast.MethodDecl {
	p.consume(token.Def, "'def'")
	name := p.consume(token.Id, "a method name").Text
	p.consumeChar('(', "'(' after the method name")

	self := p.consume(token.Id, "'self' as the method's first parameter")
	if self.Text != "self" {
		p.errorHere("'self' as the method's first parameter")
	}

	var params []string
	for p.matchChar(',') {
		params = append(params, p.consume(token.Id, "a parameter name").Text)
	}
	p.consumeChar(')', "')' after the parameter list")
	p.consumeChar(':', "':' after the method signature")

	// Params excludes self: ClassInstance.Call binds it separately from
	// the receiver, then binds Params 1:1 against the caller's args.
	return ast.MethodDecl{Name: name, Params: params, Body: p.suite()}
}

func (p *Parser) ifStmt() value.Executable {
	p.advance() // 'if'
	cond := p.expression()
	p.consumeChar(':', "':' after the if condition")
	thenBranch := p.suite()

	var elseBranch value.Executable
	if p.match(token.Else) {
		p.consumeChar(':', "':' after else")
		elseBranch = p.suite()
	}
	return ast.If{Cond: cond, Then: thenBranch, Else: elseBranch}
}

func (p *Parser) printStmt() value.Executable {
	p.advance() // 'print'
	args := []value.Executable{p.expression()}
	for p.matchChar(',') {
		args = append(args, p.expression())
	}
	p.consume(token.Newline, "a newline after the print statement")
	return ast.Print{Args: args}
}

func (p *Parser) returnStmt() value.Executable {
	p.advance() // 'return'
	var val value.Executable
	if !p.check(token.Newline) {
		val = p.expression()
	}
	p.consume(token.Newline, "a newline after the return statement")
	return ast.Return{Value: val}
}

func (p *Parser) exprOrAssignStmt() value.Executable {
	expr := p.expression()

	if p.matchChar('=') {
		rhs := p.expression()
		p.consume(token.Newline, "a newline after the assignment")
		switch lhs := expr.(type) {
		case ast.Identifier:
			return ast.Assign{Name: lhs.Name, Value: rhs}
		case ast.FieldGet:
			return ast.FieldAssign{Object: lhs.Object, Field: lhs.Field, Value: rhs}
		default:
			p.errorHere("an assignable target (a name or a field access) on the left of '='")
		}
	}

	p.consume(token.Newline, "a newline after the expression statement")
	return expr
}

// --- expressions, lowest to highest precedence -----------------------------

func (p *Parser) expression() value.Executable {
	return p.orExpr()
}

func (p *Parser) orExpr() value.Executable {
	left := p.andExpr()
	for p.match(token.Or) {
		left = ast.Or{Left: left, Right: p.andExpr()}
	}
	return left
}

func (p *Parser) andExpr() value.Executable {
	left := p.notExpr()
	for p.match(token.And) {
		left = ast.And{Left: left, Right: p.notExpr()}
	}
	return left
}

func (p *Parser) notExpr() value.Executable {
	if p.match(token.Not) {
		return ast.UnaryOp{Op: ast.UnNot, Operand: p.notExpr()}
	}
	return p.comparison()
}

func (p *Parser) comparison() value.Executable {
	left := p.addition()
	for {
		var op ast.BinOp
		switch {
		case p.match(token.Eq):
			op = ast.OpEq
		case p.match(token.NotEq):
			op = ast.OpNotEq
		case p.matchChar('<'):
			op = ast.OpLess
		case p.matchChar('>'):
			op = ast.OpGreater
		case p.match(token.LessOrEq):
			op = ast.OpLessOrEq
		case p.match(token.GreaterOrEq):
			op = ast.OpGreaterOrEq
		default:
			return left
		}
		left = ast.BinaryOp{Op: op, Left: left, Right: p.addition()}
	}
}

func (p *Parser) addition() value.Executable {
	left := p.term()
	for {
		var op ast.BinOp
		switch {
		case p.matchChar('+'):
			op = ast.OpAdd
		case p.matchChar('-'):
			op = ast.OpSub
		default:
			return left
		}
		left = ast.BinaryOp{Op: op, Left: left, Right: p.term()}
	}
}

func (p *Parser) term() value.Executable {
	left := p.unary()
	for {
		var op ast.BinOp
		switch {
		case p.matchChar('*'):
			op = ast.OpMul
		case p.matchChar('/'):
			op = ast.OpDiv
		default:
			return left
		}
		left = ast.BinaryOp{Op: op, Left: left, Right: p.unary()}
	}
}

func (p *Parser) unary() value.Executable {
	switch {
	case p.matchChar('-'):
		return ast.UnaryOp{Op: ast.UnNeg, Operand: p.unary()}
	case p.matchChar('+'):
		return ast.UnaryOp{Op: ast.UnPos, Operand: p.unary()}
	default:
		return p.call()
	}
}

func (p *Parser) call() value.Executable {
	expr := p.primary()
	for p.matchChar('.') {
		name := p.consume(token.Id, "a property name after '.'").Text
		if p.matchChar('(') {
			args := p.argList()
			p.consumeChar(')', "')' after the argument list")
			expr = ast.MethodCall{Receiver: expr, Method: name, Args: args}
			continue
		}
		expr = ast.FieldGet{Object: expr, Field: name}
	}
	return expr
}

func (p *Parser) argList() []value.Executable {
	var args []value.Executable
	if p.checkChar(')') {
		return args
	}
	args = append(args, p.expression())
	for p.matchChar(',') {
		args = append(args, p.expression())
	}
	return args
}

func (p *Parser) primary() value.Executable {
	tok := p.cur()
	switch tok.Kind {
	case token.Number:
		p.advance()
		return ast.Literal{Value: value.NewHolder(value.Number{Value: tok.NumberValue})}
	case token.String:
		p.advance()
		return ast.Literal{Value: value.NewHolder(value.String{Value: tok.Text})}
	case token.True:
		p.advance()
		return ast.Literal{Value: value.NewHolder(value.Bool{Value: true})}
	case token.False:
		p.advance()
		return ast.Literal{Value: value.NewHolder(value.Bool{Value: false})}
	case token.None:
		p.advance()
		return ast.Literal{Value: value.NewHolder(nil)}
	case token.Id:
		p.advance()
		if p.matchChar('(') {
			args := p.argList()
			p.consumeChar(')', "')' after the argument list")
			return ast.Construct{ClassName: tok.Text, Args: args}
		}
		return ast.Identifier{Name: tok.Text}
	case token.Char:
		if tok.CharValue == '(' {
			p.advance()
			expr := p.expression()
			p.consumeChar(')', "')' after the parenthesized expression")
			return expr
		}
	}
	p.errorHere("an expression")
	return nil // unreachable: errorHere always panics
}
