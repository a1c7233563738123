package interp

import "testing"

func TestEnvironmentDefineAndGet(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("a", 1.0)
	v, ok := env.Get("a")
	if !ok || v != 1.0 {
		t.Fatalf("want (1.0, true), got (%v, %v)", v, ok)
	}
}

func TestEnvironmentGetWalksOuterChain(t *testing.T) {
	global := NewEnvironment(nil)
	global.Define("a", "global")
	local := NewEnvironment(global)
	v, ok := local.Get("a")
	if !ok || v != "global" {
		t.Fatalf("want (\"global\", true), got (%v, %v)", v, ok)
	}
}

func TestEnvironmentGetMissReturnsFalse(t *testing.T) {
	env := NewEnvironment(nil)
	if _, ok := env.Get("missing"); ok {
		t.Fatalf("want ok=false for undefined name")
	}
}

func TestEnvironmentAssignRebindsExistingOuterBinding(t *testing.T) {
	global := NewEnvironment(nil)
	global.Define("a", 1.0)
	local := NewEnvironment(global)
	if ok := local.Assign("a", 2.0); !ok {
		t.Fatalf("want assign to succeed")
	}
	v, _ := global.Get("a")
	if v != 2.0 {
		t.Fatalf("want global binding updated to 2.0, got %v", v)
	}
}

func TestEnvironmentAssignUndefinedReturnsFalse(t *testing.T) {
	env := NewEnvironment(nil)
	if ok := env.Assign("nope", 1.0); ok {
		t.Fatalf("want assign to undefined name to fail")
	}
}

func TestEnvironmentGetAtAndAssignAtUseExactDistance(t *testing.T) {
	global := NewEnvironment(nil)
	global.Define("a", "global")
	middle := NewEnvironment(global)
	middle.Define("a", "middle")
	inner := NewEnvironment(middle)

	if v := inner.GetAt(1, "a"); v != "middle" {
		t.Fatalf("want \"middle\" at distance 1, got %v", v)
	}
	if v := inner.GetAt(2, "a"); v != "global" {
		t.Fatalf("want \"global\" at distance 2, got %v", v)
	}

	inner.AssignAt(2, "a", "rewritten")
	v, _ := global.Get("a")
	if v != "rewritten" {
		t.Fatalf("want global rewritten, got %v", v)
	}
}

func TestEnvironmentGetAtMissingVariablePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("want panic on inconsistent resolver depth")
		}
	}()
	env := NewEnvironment(nil)
	env.GetAt(0, "nope")
}
