package netlist

import (
	"fmt"
)

// Expr is a parsed network expression such as
//
//	vdd + r1 | r2 | v + r3
//
// Operators, loosest first: "|" (parallel), "+" and "-" (series, or plain
// addition of like quantities), "*" and "/", unary "-". All binary
// operators are left-associative, so the example reads
// ((vdd + r1) | r2) | (v + r3).
type Expr struct {
	src  string
	root node
}

// Env binds names used in an expression.
type Env map[string]Value

type node interface {
	eval(env Env) (Value, error)
}

type literal struct {
	v Value
}

type name struct {
	id  string
	pos int
}

type negate struct {
	x node
}

type binary struct {
	op   byte
	x, y node
	pos  int
}

// Parse compiles src into an Expr.
func Parse(src string) (*Expr, error) {
	p := &parser{lex: lexer{src: src}}
	if err := p.advance(); err != nil {
		return nil, err
	}

	root, err := p.parallel()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, fmt.Errorf("%w: unexpected %q at %d", ErrSyntax, p.tok.text, p.tok.pos)
	}

	return &Expr{src: src, root: root}, nil
}

func (e *Expr) String() string { return e.src }

// Eval evaluates e with the given bindings.
func (e *Expr) Eval(env Env) (Value, error) {
	return e.root.eval(env)
}

// Names lists the identifiers e refers to, in order of first use.
func (e *Expr) Names() []string {
	var names []string
	seen := make(map[string]bool)
	var walk func(n node)
	walk = func(n node) {
		switch n := n.(type) {
		case name:
			if !seen[n.id] {
				seen[n.id] = true
				names = append(names, n.id)
			}
		case negate:
			walk(n.x)
		case binary:
			walk(n.x)
			walk(n.y)
		}
	}
	walk(e.root)
	return names
}

type parser struct {
	lex lexer
	tok token
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) isOp(ops string) bool {
	if p.tok.kind != tokOp {
		return false
	}
	for i := 0; i < len(ops); i++ {
		if p.tok.text[0] == ops[i] {
			return true
		}
	}
	return false
}

// binaryLevel parses operand (op operand)* for the operators in ops.
func (p *parser) binaryLevel(ops string, operand func() (node, error)) (node, error) {
	x, err := operand()
	if err != nil {
		return nil, err
	}
	for p.isOp(ops) {
		op, pos := p.tok.text[0], p.tok.pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		y, err := operand()
		if err != nil {
			return nil, err
		}
		x = binary{op: op, x: x, y: y, pos: pos}
	}
	return x, nil
}

func (p *parser) parallel() (node, error) { return p.binaryLevel("|", p.series) }
func (p *parser) series() (node, error)   { return p.binaryLevel("+-", p.product) }
func (p *parser) product() (node, error)  { return p.binaryLevel("*/", p.unary) }

func (p *parser) unary() (node, error) {
	if p.isOp("-") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		return negate{x: x}, nil
	}
	return p.primary()
}

func (p *parser) primary() (node, error) {
	tok := p.tok
	switch {
	case tok.kind == tokValue:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return literal{v: tok.value}, nil

	case tok.kind == tokName:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return name{id: tok.text, pos: tok.pos}, nil

	case p.isOp("("):
		if err := p.advance(); err != nil {
			return nil, err
		}
		x, err := p.parallel()
		if err != nil {
			return nil, err
		}
		if !p.isOp(")") {
			return nil, fmt.Errorf("%w: missing ) for ( at %d", ErrSyntax, tok.pos)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return x, nil

	case tok.kind == tokEOF:
		return nil, fmt.Errorf("%w: unexpected end of expression", ErrSyntax)

	default:
		return nil, fmt.Errorf("%w: unexpected %q at %d", ErrSyntax, tok.text, tok.pos)
	}
}

func (n literal) eval(Env) (Value, error) { return n.v, nil }

func (n name) eval(env Env) (Value, error) {
	v, ok := env[n.id]
	if !ok {
		return Value{}, fmt.Errorf("%w: %q at %d", ErrUnknownName, n.id, n.pos)
	}
	return v, nil
}

func (n negate) eval(env Env) (Value, error) {
	x, err := n.x.eval(env)
	if err != nil {
		return Value{}, err
	}
	r, ok := neg(x.x)
	if !ok {
		return Value{}, fmt.Errorf("%w: -%s", ErrIncompatible, x.Kind())
	}
	return Value{r}, nil
}

func (n binary) eval(env Env) (Value, error) {
	x, err := n.x.eval(env)
	if err != nil {
		return Value{}, err
	}
	y, err := n.y.eval(env)
	if err != nil {
		return Value{}, err
	}

	var (
		r  any
		ok bool
	)
	switch n.op {
	case '+':
		r, ok = add(x.x, y.x)
	case '-':
		r, ok = sub(x.x, y.x)
	case '*':
		r, ok = mul(x.x, y.x)
	case '/':
		r, ok = div(x.x, y.x)
	case '|':
		r, ok = par(x.x, y.x)
	}
	if !ok {
		return Value{}, fmt.Errorf("%w: %s %c %s at %d", ErrIncompatible, x.Kind(), n.op, y.Kind(), n.pos)
	}
	return Value{r}, nil
}
