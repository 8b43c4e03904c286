// Package parser turns a token stream from pkg/lexer into a
// pkg/lambda.Term: identifiers, lambda abstraction with implicit
// currying, left-associative application, parenthesised grouping, and
// a top-level `let NAME = EXPR` definition (spec §6.4).
package parser

import (
	"fmt"

	"github.com/vic/lambdarepl/pkg/lambda"
	"github.com/vic/lambdarepl/pkg/lexer"
)

// Error reports an unexpected token, with the location to underline
// (§7: "Parse error (unexpected token) ... Report with underlined
// location").
type Error struct {
	Begin   int
	Message string
}

func (e *Error) Error() string { return e.Message }

type Parser struct {
	tokens []lexer.Token
	pos    int
}

// Parse lexes and parses a single line of input.
func Parse(input string) (lambda.Term, error) {
	tokens, err := lexer.Tokens(input)
	if err != nil {
		return nil, err
	}
	p := &Parser{tokens: tokens}
	term, err := p.parseTop()
	if err != nil {
		return nil, err
	}
	if p.current().Type != lexer.EOF {
		return nil, p.errorf("unexpected trailing input %q", p.current().Literal)
	}
	return term, nil
}

func (p *Parser) current() lexer.Token { return p.tokens[p.pos] }

func (p *Parser) advance() lexer.Token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) expect(tt lexer.TokenType) (lexer.Token, error) {
	if p.current().Type != tt {
		return lexer.Token{}, p.errorf("expected %s, got %s", tt, p.current().Type)
	}
	return p.advance(), nil
}

func (p *Parser) errorf(format string, args ...any) error {
	return &Error{Begin: p.current().Begin, Message: fmt.Sprintf(format, args...)}
}

func (p *Parser) parseTop() (lambda.Term, error) {
	if p.current().Type == lexer.Let {
		return p.parseLet()
	}
	return p.parseExpr()
}

func (p *Parser) parseLet() (lambda.Term, error) {
	begin := p.advance().Begin // consume 'let'
	name, err := p.expect(lexer.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.Equal); err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &lambda.Let{
		Name:  name.Literal,
		Value: value,
		At:    lambda.Location{Begin: begin, Length: p.current().Begin - begin},
	}, nil
}

func (p *Parser) parseExpr() (lambda.Term, error) {
	if p.current().Type == lexer.Lambda {
		return p.parseLambda()
	}
	return p.parseApp()
}

func (p *Parser) parseLambda() (lambda.Term, error) {
	begin := p.advance().Begin // consume λ/\

	var params []lexer.Token
	for p.current().Type == lexer.Ident {
		params = append(params, p.advance())
	}
	if len(params) == 0 {
		return nil, p.errorf("expected at least one parameter after lambda")
	}
	if p.current().Type != lexer.Dot && p.current().Type != lexer.Arrow {
		return nil, p.errorf("expected '.' or '->' after lambda parameters")
	}
	p.advance()

	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	// Implicit currying: \x y.B desugars to λx.λy.B, built innermost out.
	term := body
	for i := len(params) - 1; i >= 0; i-- {
		term = &lambda.Lambda{
			Param:    params[i].Literal,
			ParamLoc: lambda.Location{Begin: params[i].Begin, Length: len(params[i].Literal)},
			Body:     term,
			At:       lambda.Location{Begin: begin, Length: p.current().Begin - begin},
		}
	}
	return term, nil
}

func (p *Parser) parseApp() (lambda.Term, error) {
	begin := p.current().Begin
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.current().Type == lexer.Ident || p.current().Type == lexer.LParen || p.current().Type == lexer.Lambda {
		var right lambda.Term
		if p.current().Type == lexer.Lambda {
			// A lambda extends as far right as possible, so one
			// trailing lambda absorbs the rest of the application.
			right, err = p.parseLambda()
		} else {
			right, err = p.parseAtom()
		}
		if err != nil {
			return nil, err
		}
		left = &lambda.Apply{
			Fn:  left,
			Arg: right,
			At:  lambda.Location{Begin: begin, Length: p.current().Begin - begin},
		}
		if _, wasLambda := right.(*lambda.Lambda); wasLambda {
			break
		}
	}
	return left, nil
}

func (p *Parser) parseAtom() (lambda.Term, error) {
	switch p.current().Type {
	case lexer.Ident:
		tok := p.advance()
		return &lambda.Var{Name: tok.Literal, At: lambda.Location{Begin: tok.Begin, Length: len(tok.Literal)}}, nil
	case lexer.LParen:
		p.advance()
		term, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RParen); err != nil {
			return nil, err
		}
		return term, nil
	default:
		return nil, p.errorf("unexpected token %s", p.current().Type)
	}
}
