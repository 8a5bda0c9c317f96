package netlist

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokValue
	tokName
	tokOp
)

type token struct {
	kind  tokenKind
	text  string
	value Value // tokValue only
	pos   int   // byte offset in the source
}

type lexer struct {
	src string
	pos int
}

func isNameStart(r rune) bool { return r == '_' || unicode.IsLetter(r) }
func isNamePart(r rune) bool  { return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) }
func isDigit(b byte) bool     { return b >= '0' && b <= '9' }

func (l *lexer) peekByte(off int) byte {
	if l.pos+off < len(l.src) {
		return l.src[l.pos+off]
	}
	return 0
}

func (l *lexer) next() (token, error) {
	for l.pos < len(l.src) && (l.src[l.pos] == ' ' || l.src[l.pos] == '\t' || l.src[l.pos] == '\n' || l.src[l.pos] == '\r') {
		l.pos++
	}
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, pos: l.pos}, nil
	}

	start := l.pos
	c := l.src[l.pos]

	switch {
	case c == '+' || c == '-' || c == '*' || c == '/' || c == '|' || c == '(' || c == ')':
		l.pos++
		return token{kind: tokOp, text: string(c), pos: start}, nil

	case isDigit(c) || (c == '.' && isDigit(l.peekByte(1))):
		return l.lexValue(start)
	}

	r, size := utf8.DecodeRuneInString(l.src[l.pos:])
	if !isNameStart(r) {
		return token{}, fmt.Errorf("%w: unexpected %q at %d", ErrSyntax, r, start)
	}
	l.pos += size
	for l.pos < len(l.src) {
		r, size = utf8.DecodeRuneInString(l.src[l.pos:])
		if !isNamePart(r) {
			break
		}
		l.pos += size
	}
	return token{kind: tokName, text: l.src[start:l.pos], pos: start}, nil
}

// lexValue reads a number with its glued prefix and unit, e.g. "1.5nF".
func (l *lexer) lexValue(start int) (token, error) {
	for l.pos < len(l.src) && (isDigit(l.src[l.pos]) || l.src[l.pos] == '.') {
		l.pos++
	}
	// Exponent, only when digits follow
	if c := l.peekByte(0); c == 'e' || c == 'E' {
		switch {
		case isDigit(l.peekByte(1)):
			l.pos++
		case (l.peekByte(1) == '+' || l.peekByte(1) == '-') && isDigit(l.peekByte(2)):
			l.pos += 2
		}
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
	}
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !unicode.IsLetter(r) {
			break
		}
		l.pos += size
	}

	text := l.src[start:l.pos]
	v, err := ParseValue(text)
	if err != nil {
		return token{}, fmt.Errorf("at %d: %w", start, err)
	}
	return token{kind: tokValue, text: text, value: v, pos: start}, nil
}
