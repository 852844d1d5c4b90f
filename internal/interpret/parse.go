package interpret

import (
	"github.com/ian-shakespeare/liblox/pkg/array"
)

type parser struct {
	tokens  []Token
	current int
}

// NewParser reads from tokens as produced by Scan. A missing trailing
// EOF_TOKEN is supplied.
func NewParser(tokens []Token) *parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != EOF_TOKEN {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		tokens = append(tokens[:len(tokens):len(tokens)], Token{Type: EOF_TOKEN, Line: line})
	}
	return &parser{tokens: tokens}
}

// Parse builds one statement per top-level expression. The first syntax error
// aborts parsing and no statements are returned with it.
func Parse(tokens []Token) ([]Stmt, error) {
	return NewParser(tokens).Parse()
}

func (p *parser) Parse() ([]Stmt, error) {
	statements := []Stmt{}
	for !p.isAtEnd() {
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		p.match(SEMICOLON_TOKEN)
		statements = append(statements, &ExpressionStmt{Expression: expr})
	}
	return statements, nil
}

func (p *parser) expression() (Expr, error) {
	return p.equality()
}

func (p *parser) equality() (Expr, error) {
	return p.binary(p.comparison, BANG_EQUAL_TOKEN, EQUAL_EQUAL_TOKEN)
}

func (p *parser) comparison() (Expr, error) {
	return p.binary(p.term, GREATER_TOKEN, GREATER_EQUAL_TOKEN, LESS_TOKEN, LESS_EQUAL_TOKEN)
}

func (p *parser) term() (Expr, error) {
	return p.binary(p.factor, MINUS_TOKEN, PLUS_TOKEN)
}

func (p *parser) factor() (Expr, error) {
	return p.binary(p.unary, SLASH_TOKEN, STAR_TOKEN)
}

// binary parses a left-associative level: operand (op operand)*.
func (p *parser) binary(operand func() (Expr, error), operators ...TokenType) (Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}

	for p.match(operators...) {
		operator := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}

	return expr, nil
}

func (p *parser) unary() (Expr, error) {
	if p.match(BANG_TOKEN, MINUS_TOKEN) {
		operator := p.previous()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Operator: operator, Operand: operand}, nil
	}

	return p.primary()
}

func (p *parser) primary() (Expr, error) {
	if p.match(FALSE_TOKEN, TRUE_TOKEN, NIL_TOKEN, NUMBER_TOKEN, STRING_TOKEN) {
		return &LiteralExpr{Value: p.previous()}, nil
	}

	if p.match(IDENTIFIER_TOKEN) {
		return &IdentifierExpr{Name: p.previous()}, nil
	}

	if p.match(LEFT_PAREN_TOKEN) {
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.consume(RIGHT_PAREN_TOKEN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &GroupingExpr{Inner: inner}, nil
	}

	return nil, p.syntaxError("Expect expression.")
}

func (p *parser) consume(t TokenType, message string) error {
	if p.check(t) {
		p.advance()
		return nil
	}
	return p.syntaxError(message)
}

// syntaxError reports at the line of the last consumed token, or of the
// current token when nothing has been consumed yet.
func (p *parser) syntaxError(message string) *Error {
	line := p.peek().Line
	if p.current > 0 {
		line = p.previous().Line
	}
	return NewSyntaxError(p.peek(), line, message)
}

func (p *parser) peek() Token {
	return p.tokens[p.current]
}

func (p *parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) check(t TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *parser) match(types ...TokenType) bool {
	if p.isAtEnd() || !array.Contains(types, p.peek().Type) {
		return false
	}
	p.advance()
	return true
}

func (p *parser) isAtEnd() bool {
	return p.peek().Type == EOF_TOKEN
}
