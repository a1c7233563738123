package interp

import (
	"strconv"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/token"
)

func (it *Interpreter) evaluate(expr ast.Expression) (Value, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return e.Value, nil

	case *ast.GroupingExpr:
		return it.evaluate(e.Expression)

	case *ast.VariableExpr:
		return it.lookUpVariable(e.Name, e)

	case *ast.AssignExpr:
		return it.evalAssign(e)

	case *ast.UnaryExpr:
		return it.evalUnary(e)

	case *ast.BinaryExpr:
		return it.evalBinary(e)

	case *ast.LogicalExpr:
		return it.evalLogical(e)

	case *ast.CallExpr:
		return it.evalCall(e)

	case *ast.GetExpr:
		return it.evalGet(e)

	case *ast.SetExpr:
		return it.evalSet(e)

	case *ast.ThisExpr:
		return it.lookUpVariable(e.Keyword, e)

	case *ast.SuperExpr:
		return it.evalSuper(e)
	}
	return nil, nil
}

func (it *Interpreter) evalAssign(e *ast.AssignExpr) (Value, error) {
	value, err := it.evaluate(e.Value)
	if err != nil {
		return nil, err
	}

	if distance, ok := e.Depth(); ok {
		it.environment.AssignAt(distance, e.Name.Lexeme, value)
		return value, nil
	}
	if it.globals.Assign(e.Name.Lexeme, value) {
		return value, nil
	}
	return nil, it.newRuntimeError(e.Name, "Undefined variable '"+e.Name.Lexeme+"'.")
}

func (it *Interpreter) evalUnary(e *ast.UnaryExpr) (Value, error) {
	right, err := it.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, it.newRuntimeError(e.Operator, "Operand must be a number.")
		}
		return -n, nil
	case token.BANG:
		return !isTruthy(right), nil
	}
	return nil, nil
}

func (it *Interpreter) evalLogical(e *ast.LogicalExpr) (Value, error) {
	left, err := it.evaluate(e.Left)
	if err != nil {
		return nil, err
	}

	if e.Operator.Type == token.OR {
		if isTruthy(left) {
			return left, nil
		}
	} else {
		if !isTruthy(left) {
			return left, nil
		}
	}
	return it.evaluate(e.Right)
}

func (it *Interpreter) evalBinary(e *ast.BinaryExpr) (Value, error) {
	left, err := it.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.PLUS:
		if lf, ok := left.(float64); ok {
			if rf, ok := right.(float64); ok {
				return lf + rf, nil
			}
		}
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
		}
		return nil, it.newRuntimeError(e.Operator, "Operands must be two numbers or two strings.")

	case token.MINUS:
		lf, rf, err := it.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return lf - rf, nil

	case token.STAR:
		lf, rf, err := it.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return lf * rf, nil

	case token.SLASH:
		lf, rf, err := it.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return lf / rf, nil

	case token.GREATER:
		lf, rf, err := it.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return lf > rf, nil

	case token.GREATER_EQUAL:
		lf, rf, err := it.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return lf >= rf, nil

	case token.LESS:
		lf, rf, err := it.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return lf < rf, nil

	case token.LESS_EQUAL:
		lf, rf, err := it.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return lf <= rf, nil

	case token.BANG_EQUAL:
		return !isEqual(left, right), nil

	case token.EQUAL_EQUAL:
		return isEqual(left, right), nil
	}
	return nil, nil
}

func (it *Interpreter) numberOperands(op token.Token, left, right Value) (float64, float64, error) {
	lf, lok := left.(float64)
	rf, rok := right.(float64)
	if !lok || !rok {
		return 0, 0, it.newRuntimeError(op, "Operands must be numbers.")
	}
	return lf, rf, nil
}

func (it *Interpreter) evalCall(e *ast.CallExpr) (Value, error) {
	callee, err := it.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Arguments))
	for i, a := range e.Arguments {
		v, err := it.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, it.newRuntimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, it.newRuntimeError(e.Paren, "Expected "+strconv.Itoa(fn.Arity())+" arguments but got "+strconv.Itoa(len(args))+".")
	}

	it.pushFrame(callableName(callee), e.Paren.Pos)
	defer it.popFrame()
	return fn.Call(it, args)
}

// callableName names a frame in the call-stack trace: a user function or
// method's declared name, or a bracketed description for anything else
// that implements Callable (native functions, class constructors).
func callableName(callee Value) string {
	switch c := callee.(type) {
	case *Function:
		return c.Declaration.Name.Lexeme
	case *BoundMethod:
		return c.Method.Declaration.Name.Lexeme
	case *Class:
		return c.Name
	case *NativeFunction:
		return c.Name
	default:
		return "<unknown>"
	}
}

func (it *Interpreter) evalGet(e *ast.GetExpr) (Value, error) {
	obj, err := it.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, it.newRuntimeError(e.Name, "Only instances have properties.")
	}
	v, ok := instance.get(e.Name.Lexeme)
	if !ok {
		return nil, it.newRuntimeError(e.Name, "Undefined property '"+e.Name.Lexeme+"'.")
	}
	return v, nil
}

func (it *Interpreter) evalSet(e *ast.SetExpr) (Value, error) {
	obj, err := it.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, it.newRuntimeError(e.Name, "Only instances have fields.")
	}
	value, err := it.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	instance.set(e.Name.Lexeme, value)
	return value, nil
}

// evalSuper fetches `super` from the depth the resolver recorded for the
// keyword, and `this` from exactly one scope closer in — the resolver
// always pushes the `this` scope immediately inside the `super` scope, so
// this distance is always depth-1.
func (it *Interpreter) evalSuper(e *ast.SuperExpr) (Value, error) {
	distance, _ := e.Depth()
	superclass := it.environment.GetAt(distance, "super").(*Class)
	instance := it.environment.GetAt(distance-1, "this").(*Instance)

	method, ok := superclass.findMethod(e.Method.Lexeme)
	if !ok {
		return nil, it.newRuntimeError(e.Method, "Undefined property '"+e.Method.Lexeme+"'.")
	}
	return method.bind(instance), nil
}
