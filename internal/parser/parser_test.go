package parser

import (
	"testing"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/lexer"
)

func parseSource(t *testing.T, src string) *ast.Program {
	t.Helper()
	program, errs := Parse(lexer.New(src))
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, errs)
	}
	return program
}

func TestParseExpressionPrecedence(t *testing.T) {
	program := parseSource(t, "1 + 2 * 3 - -4;")
	if len(program.Statements) != 1 {
		t.Fatalf("want 1 statement, got %d", len(program.Statements))
	}
	stmt, ok := program.Statements[0].(*ast.ExpressionStmt)
	if !ok {
		t.Fatalf("want ExpressionStmt, got %T", program.Statements[0])
	}
	want := "((1 + (2 * 3)) - (-4))"
	if got := stmt.Expr.String(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestParseVarDeclaration(t *testing.T) {
	program := parseSource(t, "var a = 1;\nvar b;")
	if len(program.Statements) != 2 {
		t.Fatalf("want 2 statements, got %d", len(program.Statements))
	}
	first := program.Statements[0].(*ast.VarStmt)
	if first.Name.Lexeme != "a" || first.Initializer == nil {
		t.Fatalf("unexpected first var stmt: %+v", first)
	}
	second := program.Statements[1].(*ast.VarStmt)
	if second.Name.Lexeme != "b" || second.Initializer != nil {
		t.Fatalf("unexpected second var stmt: %+v", second)
	}
}

func TestParseAssignmentTargets(t *testing.T) {
	program := parseSource(t, "a = 1;\na.b = 2;")
	if _, ok := program.Statements[0].(*ast.ExpressionStmt).Expr.(*ast.AssignExpr); !ok {
		t.Fatalf("want AssignExpr, got %T", program.Statements[0].(*ast.ExpressionStmt).Expr)
	}
	if _, ok := program.Statements[1].(*ast.ExpressionStmt).Expr.(*ast.SetExpr); !ok {
		t.Fatalf("want SetExpr, got %T", program.Statements[1].(*ast.ExpressionStmt).Expr)
	}
}

func TestParseInvalidAssignmentTargetReportsError(t *testing.T) {
	_, errs := Parse(lexer.New("1 = 2;"))
	if len(errs) != 1 || errs[0].Message != "Invalid assignment target." {
		t.Fatalf("want a single invalid-assignment-target error, got %v", errs)
	}
}

func TestParseForDesugarsToWhile(t *testing.T) {
	program := parseSource(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	block, ok := program.Statements[0].(*ast.BlockStmt)
	if !ok {
		t.Fatalf("want desugared BlockStmt, got %T", program.Statements[0])
	}
	if len(block.Statements) != 2 {
		t.Fatalf("want initializer + while, got %d statements", len(block.Statements))
	}
	if _, ok := block.Statements[0].(*ast.VarStmt); !ok {
		t.Fatalf("want VarStmt initializer, got %T", block.Statements[0])
	}
	whileStmt, ok := block.Statements[1].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("want WhileStmt, got %T", block.Statements[1])
	}
	body, ok := whileStmt.Body.(*ast.BlockStmt)
	if !ok || len(body.Statements) != 2 {
		t.Fatalf("want body+increment block, got %+v", whileStmt.Body)
	}
}

func TestParseForWithMissingConditionDefaultsToTrue(t *testing.T) {
	program := parseSource(t, "for (;;) print 1;")
	whileStmt := program.Statements[0].(*ast.WhileStmt)
	lit, ok := whileStmt.Condition.(*ast.LiteralExpr)
	if !ok || lit.Value != true {
		t.Fatalf("want literal true condition, got %+v", whileStmt.Condition)
	}
}

func TestParseClassWithSuperclassAndMethods(t *testing.T) {
	program := parseSource(t, "class B < A { m(x) { return x; } }")
	class := program.Statements[0].(*ast.ClassStmt)
	if class.Name.Lexeme != "B" {
		t.Fatalf("want class B, got %s", class.Name.Lexeme)
	}
	if class.Superclass == nil || class.Superclass.Name.Lexeme != "A" {
		t.Fatalf("want superclass A, got %+v", class.Superclass)
	}
	if len(class.Methods) != 1 || class.Methods[0].Name.Lexeme != "m" {
		t.Fatalf("want method m, got %+v", class.Methods)
	}
}

func TestParseCallAndGetChaining(t *testing.T) {
	program := parseSource(t, "a.b(1, 2).c;")
	expr := program.Statements[0].(*ast.ExpressionStmt).Expr
	get, ok := expr.(*ast.GetExpr)
	if !ok {
		t.Fatalf("want outer GetExpr, got %T", expr)
	}
	call, ok := get.Object.(*ast.CallExpr)
	if !ok || len(call.Arguments) != 2 {
		t.Fatalf("want CallExpr with 2 args, got %+v", get.Object)
	}
}

func TestParseTooManyArgumentsReportsNonFatalError(t *testing.T) {
	src := "f("
	for i := 0; i < 255; i++ {
		if i > 0 {
			src += ", "
		}
		src += "1"
	}
	src += ", 2);"

	_, errs := Parse(lexer.New(src))
	if len(errs) != 1 || errs[0].Message != "Can't have more than 255 arguments." {
		t.Fatalf("want a single arg-limit error, got %v", errs)
	}
}

func TestParseMissingExpressionSynchronizes(t *testing.T) {
	_, errs := Parse(lexer.New("var a = ;\nvar b = 1;"))
	if len(errs) == 0 {
		t.Fatalf("want at least one syntax error")
	}
}
