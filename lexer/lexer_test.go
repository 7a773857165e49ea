package lexer

import (
	"testing"

	"github.com/bagasjs/hotaru/token"
)

func TestNextScansVarStatement(t *testing.T) {
	l := New("var x = 1 + 2;")

	want := []token.Type{
		token.VAR, token.IDENTIFIER, token.ASSIGN,
		token.INT_LITERAL, token.PLUS, token.INT_LITERAL,
		token.SEMICOLON, token.EOF,
	}
	for i, kind := range want {
		if got := l.Next().Type; got != kind {
			t.Fatalf("token %d: got %s, want %s", i, got, kind)
		}
	}
}

func TestNextRecognizesKeywords(t *testing.T) {
	l := New("while if elif else dd break continue")
	want := []token.Type{
		token.WHILE, token.IF, token.ELIF, token.ELSE,
		token.DUMP, token.BREAK, token.CONTINUE, token.EOF,
	}
	for i, kind := range want {
		if got := l.Next().Type; got != kind {
			t.Fatalf("token %d: got %s, want %s", i, got, kind)
		}
	}
}

func TestNextDistinguishesTwoCharOperators(t *testing.T) {
	l := New("== != >= <= > < =")
	want := []token.Type{
		token.EQ, token.NE, token.GE, token.LE, token.GT, token.LT, token.ASSIGN, token.EOF,
	}
	for i, kind := range want {
		if got := l.Next().Type; got != kind {
			t.Fatalf("token %d: got %s, want %s", i, got, kind)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	l := New("1 + 2")

	first := l.Peek(0)
	second := l.Peek(0)
	if first.Type != second.Type || first.Literal.String() != second.Literal.String() {
		t.Fatalf("repeated Peek(0) diverged: %v vs %v", first, second)
	}

	next := l.Next()
	if next.Type != first.Type {
		t.Fatalf("Next() after Peek(0) returned %v, want %v", next, first)
	}
}

func TestPeekLooksAheadWithoutDisturbingOrder(t *testing.T) {
	l := New("1 + 2 * 3")

	third := l.Peek(2)
	if third.Type != token.INT_LITERAL || third.Literal.String() != "2" {
		t.Fatalf("Peek(2) = %v, want INT_LITERAL \"2\"", third)
	}

	var got []token.Type
	for {
		tok := l.Next()
		got = append(got, tok.Type)
		if tok.Type == token.EOF {
			break
		}
	}

	want := []token.Type{
		token.INT_LITERAL, token.PLUS, token.INT_LITERAL,
		token.ASTERISK, token.INT_LITERAL, token.EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestNextPastEOFKeepsReturningEOF(t *testing.T) {
	l := New(";")
	l.Next()
	for i := 0; i < 3; i++ {
		if tok := l.Next(); tok.Type != token.EOF {
			t.Fatalf("Next() past end = %s, want EOF", tok.Type)
		}
	}
}

func TestTokenLiteralsReconstructSource(t *testing.T) {
	source := "var x = 1;\nwhile (x < 10) {\n\tx = x + 1;\n}\ndd x;"
	l := New(source)

	var rebuilt []byte
	for {
		tok := l.Next()
		if tok.Type == token.EOF {
			break
		}
		rebuilt = append(rebuilt, tok.Literal.String()...)
	}

	var stripped []byte
	for i := 0; i < len(source); i++ {
		c := source[i]
		if c != ' ' && c != '\t' && c != '\r' && c != '\n' {
			stripped = append(stripped, c)
		}
	}

	if string(rebuilt) != string(stripped) {
		t.Fatalf("concatenated literals = %q, want %q", rebuilt, stripped)
	}
}

func TestUnknownCharacterProducesNoneToken(t *testing.T) {
	l := New("@")
	if tok := l.Next(); tok.Type != token.NONE {
		t.Fatalf("got %s, want NONE", tok.Type)
	}
}

func TestRowAndColumnTracking(t *testing.T) {
	l := New("var x\nwhile")
	if tok := l.Next(); tok.Pos.Row != 0 || tok.Pos.Col != 0 {
		t.Fatalf("first token at %d:%d, want 0:0", tok.Pos.Row, tok.Pos.Col)
	}
	if tok := l.Next(); tok.Pos.Row != 0 || tok.Pos.Col != 4 {
		t.Fatalf("x at %d:%d, want 0:4", tok.Pos.Row, tok.Pos.Col)
	}
	if tok := l.Next(); tok.Pos.Row != 1 || tok.Pos.Col != 0 {
		t.Fatalf("token after newline at %d:%d, want 1:0", tok.Pos.Row, tok.Pos.Col)
	}
}

func TestFloatLiteralIsLexedButIdentifiable(t *testing.T) {
	l := New("3.14")
	tok := l.Next()
	if tok.Type != token.FLOAT_LITERAL {
		t.Fatalf("got %s, want FLOAT_LITERAL", tok.Type)
	}
	if tok.Literal.String() != "3.14" {
		t.Fatalf("literal = %q, want %q", tok.Literal.String(), "3.14")
	}
}
