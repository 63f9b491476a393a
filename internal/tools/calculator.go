package tools

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

const calculatorDescription = "Perform mathematical calculations. Input should be a valid math expression like '2 + 2' or '25 * 4'."

// Calculator evaluates arithmetic expressions over +, -, *, /, parentheses
// and decimal numbers. Anything else is rejected before evaluation. Failures
// come back as error strings, never as Go errors, so the model sees them as
// observations.
func Calculator(ctx context.Context, expression string) (string, error) {
	for _, c := range expression {
		if !strings.ContainsRune("0123456789+-*/.() ", c) {
			return "Error: Invalid characters in expression", nil
		}
	}

	p := &exprParser{input: expression}
	value, err := p.parseExpr()
	if err == nil && !p.atEnd() {
		err = fmt.Errorf("unexpected %q at position %d", p.peek(), p.pos)
	}
	if err != nil {
		return fmt.Sprintf("Error evaluating expression: %v", err), nil
	}

	return strconv.FormatFloat(value, 'f', -1, 64), nil
}

// exprParser is a recursive-descent parser over the usual grammar:
//
//	expr   = term   (('+' | '-') term)*
//	term   = unary  (('*' | '/') unary)*
//	unary  = ('-' | '+')* primary
//	primary = number | '(' expr ')'
type exprParser struct {
	input string
	pos   int
}

func (p *exprParser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

func (p *exprParser) atEnd() bool {
	p.skipSpaces()
	return p.pos >= len(p.input)
}

func (p *exprParser) peek() byte {
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *exprParser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			left += right
		case '-':
			p.pos++
			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			left -= right
		default:
			return left, nil
		}
	}
}

func (p *exprParser) parseTerm() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '*':
			p.pos++
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			left *= right
		case '/':
			p.pos++
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			left /= right
		default:
			return left, nil
		}
	}
}

func (p *exprParser) parseUnary() (float64, error) {
	switch p.peek() {
	case '-':
		p.pos++
		v, err := p.parseUnary()
		return -v, err
	case '+':
		p.pos++
		return p.parseUnary()
	}
	return p.parsePrimary()
}

func (p *exprParser) parsePrimary() (float64, error) {
	c := p.peek()

	if c == '(' {
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, fmt.Errorf("missing closing parenthesis")
		}
		p.pos++
		return v, nil
	}

	start := p.pos
	for p.pos < len(p.input) && (isDigit(p.input[p.pos]) || p.input[p.pos] == '.') {
		p.pos++
	}
	if p.pos == start {
		if c == 0 {
			return 0, fmt.Errorf("unexpected end of expression")
		}
		return 0, fmt.Errorf("unexpected %q at position %d", c, p.pos)
	}

	v, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", p.input[start:p.pos])
	}
	return v, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
