package lexer

import (
	"testing"

	"github.com/cwbudde/golox/internal/token"
)

func TestNextTokenPunctuationAndOperators(t *testing.T) {
	input := `(){},.-+;*!!====<<=>>=/`

	want := []token.Type{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.BANG, token.BANG_EQUAL, token.EQUAL_EQUAL, token.EQUAL,
		token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL, token.SLASH,
		token.EOF,
	}

	l := New(input)
	for i, tt := range want {
		tok := l.NextToken()
		if tok.Type != tt {
			t.Fatalf("token %d: want %s, got %s (%q)", i, tt, tok.Type, tok.Lexeme)
		}
	}
}

func TestNextTokenSkipsLineComments(t *testing.T) {
	input := "// a comment\nvar"
	l := New(input)

	tok := l.NextToken()
	if tok.Type != token.VAR {
		t.Fatalf("want VAR, got %s", tok.Type)
	}
	if tok.Pos.Line != 2 {
		t.Fatalf("want line 2, got %d", tok.Pos.Line)
	}
}

func TestNextTokenNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"123", 123},
		{"123.456", 123.456},
		{"0.5", 0.5},
	}

	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != token.NUMBER {
			t.Fatalf("%q: want NUMBER, got %s", tt.input, tok.Type)
		}
		if tok.Literal.(float64) != tt.want {
			t.Fatalf("%q: want %v, got %v", tt.input, tt.want, tok.Literal)
		}
	}
}

func TestNextTokenNumberWithTrailingDotIsNotFloat(t *testing.T) {
	// "123." has no digit after the dot, so it scans as an integer token
	// followed by a separate DOT token (used for method-call-like chains).
	l := New("123.")
	tok := l.NextToken()
	if tok.Type != token.NUMBER || tok.Literal.(float64) != 123 {
		t.Fatalf("want NUMBER 123, got %s %v", tok.Type, tok.Literal)
	}
	tok = l.NextToken()
	if tok.Type != token.DOT {
		t.Fatalf("want DOT, got %s", tok.Type)
	}
}

func TestNextTokenStrings(t *testing.T) {
	l := New(`"hello world"`)
	tok := l.NextToken()
	if tok.Type != token.STRING {
		t.Fatalf("want STRING, got %s", tok.Type)
	}
	if tok.Literal.(string) != "hello world" {
		t.Fatalf("want %q, got %q", "hello world", tok.Literal)
	}
}

func TestNextTokenUnterminatedStringReportsError(t *testing.T) {
	l := New(`"unterminated`)
	l.NextToken()
	if len(l.Errors()) != 1 {
		t.Fatalf("want 1 error, got %d", len(l.Errors()))
	}
	if l.Errors()[0].Message != "Unterminated string." {
		t.Fatalf("unexpected message: %q", l.Errors()[0].Message)
	}
}

func TestNextTokenMultilineString(t *testing.T) {
	l := New("\"line one\nline two\"\nvar")
	tok := l.NextToken()
	if tok.Type != token.STRING {
		t.Fatalf("want STRING, got %s", tok.Type)
	}
	tok = l.NextToken()
	if tok.Type != token.VAR || tok.Pos.Line != 3 {
		t.Fatalf("want VAR on line 3, got %s on line %d", tok.Type, tok.Pos.Line)
	}
}

func TestNextTokenIdentifiersAndKeywords(t *testing.T) {
	input := "and class else false for fun if nil or print return super this true var while foo _bar baz2"

	want := []token.Type{
		token.AND, token.CLASS, token.ELSE, token.FALSE, token.FOR, token.FUN,
		token.IF, token.NIL, token.OR, token.PRINT, token.RETURN, token.SUPER,
		token.THIS, token.TRUE, token.VAR, token.WHILE,
		token.IDENTIFIER, token.IDENTIFIER, token.IDENTIFIER,
		token.EOF,
	}

	l := New(input)
	for i, tt := range want {
		tok := l.NextToken()
		if tok.Type != tt {
			t.Fatalf("token %d: want %s, got %s (%q)", i, tt, tok.Type, tok.Lexeme)
		}
	}
}

func TestNextTokenIllegalCharacterReportsErrorAndContinues(t *testing.T) {
	l := New("1 @ 2")
	tokens := l.ScanTokens()

	if len(l.Errors()) != 1 {
		t.Fatalf("want 1 lexical error, got %d", len(l.Errors()))
	}

	var types []token.Type
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	want := []token.Type{token.NUMBER, token.ILLEGAL, token.NUMBER, token.EOF}
	if len(types) != len(want) {
		t.Fatalf("want %v, got %v", want, types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("want %v, got %v", want, types)
		}
	}
}

func TestNextTokenUnicodeIdentifier(t *testing.T) {
	l := New("var Δ = 1;")
	tokens := l.ScanTokens()
	if tokens[1].Type != token.IDENTIFIER || tokens[1].Lexeme != "Δ" {
		t.Fatalf("want identifier Δ, got %+v", tokens[1])
	}
}

func TestScanTokensEndsWithEOF(t *testing.T) {
	l := New("")
	tokens := l.ScanTokens()
	if len(tokens) != 1 || tokens[0].Type != token.EOF {
		t.Fatalf("want single EOF token for empty input, got %+v", tokens)
	}
}
