package golox

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// scenarios mirrors the six concrete end-to-end scenarios: variable
// shadowing inside a block, a closure capturing its defining environment by
// reference, lexical (not dynamic) scope resolution over late binding,
// a class with an initializer, single inheritance with a super call, and an
// arity mismatch surfacing as a runtime error rather than a static one.
var scenarios = []struct {
	name   string
	source string
}{
	{
		name: "BlockShadowing",
		source: `
var a = "global";
{
  var a = "block";
  print a;
}
print a;
`,
	},
	{
		name: "ClosureCapturesByReference",
		source: `
fun makeCounter() {
  var count = 0;
  fun increment() {
    count = count + 1;
    print count;
  }
  return increment;
}
var counter = makeCounter();
counter();
counter();
counter();
`,
	},
	{
		name: "LexicalScopeOverLateBinding",
		source: `
var a = "global";
fun showA() {
  print a;
}
fun main() {
  var a = "local";
  showA();
}
main();
`,
	},
	{
		name: "ClassWithInitializer",
		source: `
class Point {
  init(x, y) {
    this.x = x;
    this.y = y;
  }
  toString() {
    print this.x;
    print this.y;
  }
}
var p = Point(1, 2);
p.toString();
`,
	},
	{
		name: "SingleInheritanceWithSuperCall",
		source: `
class Animal {
  speak() {
    print "...";
  }
}
class Dog < Animal {
  speak() {
    super.speak();
    print "Woof";
  }
}
Dog().speak();
`,
	},
	{
		name: "ArityMismatchIsRuntimeError",
		source: `
fun add(a, b) {
  return a + b;
}
print add(1);
`,
	},
}

func TestScenarios(t *testing.T) {
	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			var out bytes.Buffer
			result := Run(sc.source, &out)
			snaps.MatchSnapshot(t, sc.name+"_status", result.Status)
			snaps.MatchSnapshot(t, sc.name+"_output", out.String())
			snaps.MatchSnapshot(t, sc.name+"_diagnostics", result.Diagnostics)
		})
	}
}

func TestRunStringReturnsPrintedOutput(t *testing.T) {
	got := RunString(`print "hi";`)
	if got != "hi\n" {
		t.Fatalf("want %q, got %q", "hi\n", got)
	}
}

func TestRunStringAppendsDiagnosticsOnError(t *testing.T) {
	got := RunString(`print ;`)
	if got == "" {
		t.Fatalf("want diagnostics appended to output, got empty string")
	}
}

func TestSessionPersistsEnvironmentAcrossRuns(t *testing.T) {
	var out bytes.Buffer
	session := NewSession(&out)

	if res := session.Run(`var count = 0;`); res.Status != StatusOK {
		t.Fatalf("unexpected status for declaration: %v diags=%v", res.Status, res.Diagnostics)
	}
	if res := session.Run(`count = count + 1; print count;`); res.Status != StatusOK {
		t.Fatalf("unexpected status for increment: %v diags=%v", res.Status, res.Diagnostics)
	}
	if res := session.Run(`count = count + 1; print count;`); res.Status != StatusOK {
		t.Fatalf("unexpected status for second increment: %v diags=%v", res.Status, res.Diagnostics)
	}

	want := "1\n2\n"
	if out.String() != want {
		t.Fatalf("want %q, got %q", want, out.String())
	}
}

func TestRunStopsAtFirstStaticError(t *testing.T) {
	result := Run(`var a = ;`, &bytes.Buffer{})
	if result.Status != StatusStaticError {
		t.Fatalf("want StatusStaticError, got %v", result.Status)
	}
}

func TestRunReportsUndefinedVariableAsRuntimeError(t *testing.T) {
	result := Run(`print nope;`, &bytes.Buffer{})
	if result.Status != StatusRuntimeError {
		t.Fatalf("want StatusRuntimeError, got %v", result.Status)
	}
	if len(result.Diagnostics) != 1 {
		t.Fatalf("want exactly one diagnostic, got %v", result.Diagnostics)
	}
}
