//go:build js && wasm

// Command golox-wasm exposes the interpreter to JavaScript via syscall/js,
// the same stdlib-only mechanism the teacher uses for its own WASM build
// (no additional third-party dependency). It supplements a feature present
// in the original Rust implementation's lib.rs (a wasm_bindgen `run_lox`
// export) that spec.md's distillation dropped; see SPEC_FULL.md §3.
package main

import (
	"syscall/js"

	"github.com/cwbudde/golox/pkg/golox"
)

func runLoxSource(_ js.Value, args []js.Value) any {
	if len(args) == 0 {
		return ""
	}
	source := args[0].String()
	return golox.RunString(source)
}

func main() {
	done := make(chan struct{})
	js.Global().Set("runLoxSource", js.FuncOf(runLoxSource))
	<-done
}
