// Package interp evaluates a resolved AST: an environment chain, a value
// domain, and callables for user functions, native functions, and classes.
package interp

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is anything a Lox expression can produce: nil, bool, float64,
// string, *Function, *NativeFunction, *Class, or *Instance. There is no
// dedicated wrapper type — Go's `any` plus type switches on evaluation
// plays the role of the tagged variant the language describes.
type Value any

// isTruthy implements Lox truthiness: nil and boolean false are falsey,
// everything else — including 0 and the empty string — is truthy.
func isTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// isEqual implements Lox equality: only operands sharing a Go type compare
// equal (so 1 and "1" are never equal without error), numbers use IEEE
// equality, and nil equals only nil.
func isEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return a == b
	}
}

// stringify renders v the way `print` and string concatenation display it.
func stringify(v Value) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		return formatNumber(val)
	case string:
		return val
	case *Class:
		return val.Name
	case *Instance:
		return val.Class.Name + " instance"
	case *Function:
		return "<fun " + val.Declaration.Name.Lexeme + ">"
	case *NativeFunction:
		return "<native fun " + val.Name + ">"
	case *BoundMethod:
		return "<fun " + val.Method.Declaration.Name.Lexeme + ">"
	default:
		return fmt.Sprintf("%v", val)
	}
}

// formatNumber renders a Lox number with no trailing ".0" for integral
// values, matching the reference display format.
func formatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if strings.HasSuffix(s, ".0") {
		return s[:len(s)-2]
	}
	return s
}
