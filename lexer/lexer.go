// Package lexer tokenizes hotaru source text.
//
// Tokens are produced into a bounded ring-buffer cache rather than one at a
// time, so Peek(k) can look arbitrarily far ahead (up to the cache's
// capacity) without re-scanning: each slot holds one already-scanned token,
// and Next/Peek pull from the front while scanning refills the back.
package lexer

import (
	"github.com/bagasjs/hotaru/hlog"
	"github.com/bagasjs/hotaru/strview"
	"github.com/bagasjs/hotaru/token"
)

// cacheCapacity is the number of look-ahead tokens the ring buffer can hold
// at once.
const cacheCapacity = 32

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// Lexer scans source text into tokens on demand, buffering look-ahead in a
// fixed-size ring.
type Lexer struct {
	source string
	i      int
	cc, pc byte
	pos    token.Position
	start  token.Position // where the token being scanned begins

	cache      [cacheCapacity]token.Token
	head, tail uint32
	carry      bool
}

// New returns a Lexer positioned at the start of source.
func New(source string) *Lexer {
	l := &Lexer{source: source}
	if len(source) > 0 {
		l.cc = source[0]
	}
	if len(source) > 1 {
		l.pc = source[1]
	}
	return l
}

func (l *Lexer) cacheCount() uint32 {
	if l.carry {
		return l.head + cacheCapacity - l.tail
	}
	return l.head - l.tail
}

func (l *Lexer) cachePush(tok token.Token) bool {
	index := l.head
	if index+1 >= cacheCapacity {
		if l.carry {
			return false
		}
		l.carry = true
		l.head = 0
	} else {
		l.head++
	}
	l.cache[index] = tok
	return true
}

func (l *Lexer) cacheShift() (token.Token, bool) {
	index := l.tail
	if index+1 >= cacheCapacity {
		if !l.carry {
			return token.Token{}, false
		}
		l.carry = false
		l.tail = 0
	} else {
		l.tail++
	}
	return l.cache[index], true
}

func (l *Lexer) extend(kind token.Type, literal strview.StringView) bool {
	return l.cachePush(token.Token{Type: kind, Literal: literal, Pos: l.start})
}

func (l *Lexer) advance() {
	l.i++
	if l.i < len(l.source) {
		l.cc = l.source[l.i]
	} else {
		l.cc = 0
	}
	if l.i+1 < len(l.source) {
		l.pc = l.source[l.i+1]
	} else {
		l.pc = 0
	}
	l.pos.Col++
}

func (l *Lexer) sv(start, end int) strview.StringView {
	return strview.StringView{Data: l.source, Start: start, End: end}
}

// scanOne skips whitespace, scans exactly one token into the cache, and
// reports whether a token was produced (false at end of input).
func (l *Lexer) scanOne() bool {
	for l.cc != 0 && isSpace(l.cc) {
		newline := l.cc == '\n'
		l.advance()
		if newline {
			l.pos.Row++
			l.pos.Col = 0
		}
	}

	if l.cc == 0 {
		return false
	}
	l.start = l.pos

	switch l.cc {
	case '{':
		l.extend(token.LCURLY, l.sv(l.i, l.i+1))
		l.advance()
	case '}':
		l.extend(token.RCURLY, l.sv(l.i, l.i+1))
		l.advance()
	case '(':
		l.extend(token.LPAREN, l.sv(l.i, l.i+1))
		l.advance()
	case ')':
		l.extend(token.RPAREN, l.sv(l.i, l.i+1))
		l.advance()
	case ';':
		l.extend(token.SEMICOLON, l.sv(l.i, l.i+1))
		l.advance()
	case '+':
		l.extend(token.PLUS, l.sv(l.i, l.i+1))
		l.advance()
	case '-':
		l.extend(token.MINUS, l.sv(l.i, l.i+1))
		l.advance()
	case '*':
		l.extend(token.ASTERISK, l.sv(l.i, l.i+1))
		l.advance()
	case '!':
		start := l.i
		l.advance()
		if l.cc == '=' {
			l.extend(token.NE, l.sv(start, l.i+1))
			l.advance()
		} else {
			hlog.Fatalf("invalid syntax `!%c` at %d:%d", l.cc, l.pos.Row, l.pos.Col)
		}
	case '>':
		start := l.i
		l.advance()
		if l.cc == '=' {
			l.extend(token.GE, l.sv(start, l.i+1))
			l.advance()
		} else {
			l.extend(token.GT, l.sv(start, l.i))
		}
	case '<':
		start := l.i
		l.advance()
		if l.cc == '=' {
			l.extend(token.LE, l.sv(start, l.i+1))
			l.advance()
		} else {
			l.extend(token.LT, l.sv(start, l.i))
		}
	case '=':
		start := l.i
		l.advance()
		if l.cc == '=' {
			l.extend(token.EQ, l.sv(start, l.i+1))
			l.advance()
		} else {
			l.extend(token.ASSIGN, l.sv(start, l.i))
		}
	default:
		switch {
		case isLetter(l.cc):
			start := l.i
			for isLetter(l.cc) || isDigit(l.cc) {
				l.advance()
			}
			name := l.sv(start, l.i)
			if kind, ok := token.KeyWords[name.String()]; ok {
				l.extend(kind, name)
			} else {
				l.extend(token.IDENTIFIER, name)
			}
		case isDigit(l.cc):
			start := l.i
			floatingPoint := false
			for isDigit(l.cc) || l.cc == '.' {
				if l.cc == '.' {
					if floatingPoint {
						hlog.Fatalf("unexpected second '.' in numeric literal at %d:%d", l.pos.Row, l.pos.Col)
					}
					floatingPoint = true
				}
				l.advance()
			}
			kind := token.INT_LITERAL
			if floatingPoint {
				kind = token.FLOAT_LITERAL
			}
			l.extend(kind, l.sv(start, l.i))
		default:
			l.extend(token.NONE, l.sv(l.i, l.i+1))
			l.advance()
		}
	}
	return true
}

// Next consumes and returns the next token, scanning more input if the
// cache has run dry.
func (l *Lexer) Next() token.Token {
	if l.cacheCount() == 0 {
		if !l.scanOne() {
			return token.Token{Type: token.EOF, Pos: l.pos}
		}
	}
	tok, _ := l.cacheShift()
	return tok
}

// Peek returns the k-th token (0-based) beyond the front of the cache
// without consuming it, scanning ahead as needed.
func (l *Lexer) Peek(k uint32) token.Token {
	for l.cacheCount() <= k {
		if !l.scanOne() {
			return token.Token{Type: token.EOF, Pos: l.pos}
		}
	}
	index := (l.tail + k) % cacheCapacity
	return l.cache[index]
}

// Expect consumes the next token and terminates the program via hlog.Fatalf
// if it does not have the expected kind.
func (l *Lexer) Expect(kind token.Type) token.Token {
	tok := l.Next()
	if tok.Type != kind {
		hlog.Fatalf("expected a token `%s` but got `%s` at %d:%d", kind, tok.Type, tok.Pos.Row, tok.Pos.Col)
	}
	return tok
}
