package interp

import "github.com/cwbudde/golox/internal/ast"

// Callable is anything that can appear on the left of a Call expression.
type Callable interface {
	Arity() int
	Call(interp *Interpreter, args []Value) (Value, error)
}

// Function is a user-defined function or method: an AST declaration plus
// the environment it closed over. isInitializer marks a class's `init`
// method, whose call protocol differs (it always yields `this`).
type Function struct {
	Declaration   *ast.FunctionStmt
	Closure       *Environment
	isInitializer bool
}

func (f *Function) Arity() int { return len(f.Declaration.Params) }

// Call binds each parameter to its argument in a fresh environment chained
// to the closure, executes the body, and unwraps a returnSignal into its
// value. An initializer always yields `this` regardless of what the body
// returns, per the resolver's guarantee that an initializer never returns
// an explicit value.
func (f *Function) Call(it *Interpreter, args []Value) (Value, error) {
	env := NewEnvironment(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := it.executeBlock(f.Declaration.Body, env)
	if ret, ok := err.(*returnSignal); ok {
		if f.isInitializer {
			return f.Closure.GetAt(0, "this"), nil
		}
		return ret.value, nil
	}
	if err != nil {
		return nil, err
	}
	if f.isInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

// bind returns a new Function whose closure extends f's closure with a
// single binding: `this` = instance. Rebinding is cheap and side-effect
// free, so the same method fetched twice off an instance binds identically
// each time.
func (f *Function) bind(instance *Instance) *Function {
	env := NewEnvironment(f.Closure)
	env.Define("this", instance)
	return &Function{Declaration: f.Declaration, Closure: env, isInitializer: f.isInitializer}
}

// BoundMethod is a thin wrapper distinguishing a method value that already
// carries its receiver from a plain Function, purely for stringify's "<fun
// NAME>" display; Call and Arity delegate straight through.
type BoundMethod struct {
	Method *Function
}

func (b *BoundMethod) Arity() int { return b.Method.Arity() }
func (b *BoundMethod) Call(it *Interpreter, args []Value) (Value, error) {
	return b.Method.Call(it, args)
}

// NativeFunction wraps a host-implemented builtin such as clock.
type NativeFunction struct {
	Name    string
	arity   int
	handler func(it *Interpreter, args []Value) (Value, error)
}

func (n *NativeFunction) Arity() int { return n.arity }
func (n *NativeFunction) Call(it *Interpreter, args []Value) (Value, error) {
	return n.handler(it, args)
}

// Class is a class value: its name, optional superclass, and its own
// (non-inherited) methods. Method lookup walks the superclass chain.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

// findMethod looks up name on this class, then its ancestors.
func (c *Class) findMethod(name string) (*Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.findMethod(name)
	}
	return nil, false
}

// Arity is the initializer's arity, or 0 if the class declares none.
func (c *Class) Arity() int {
	if init, ok := c.findMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a new Instance and, if the class (or an ancestor) defines
// `init`, binds and invokes it with args before returning the instance.
func (c *Class) Call(it *Interpreter, args []Value) (Value, error) {
	instance := &Instance{Class: c, Fields: make(map[string]Value)}
	if init, ok := c.findMethod("init"); ok {
		if _, err := init.bind(instance).Call(it, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Instance is a runtime object: its class and its own field map. A field
// read that misses falls back to a method lookup on the class, returned
// already bound to this instance.
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

func (i *Instance) get(name string) (Value, bool) {
	if v, ok := i.Fields[name]; ok {
		return v, true
	}
	if m, ok := i.Class.findMethod(name); ok {
		return m.bind(i), true
	}
	return nil, false
}

func (i *Instance) set(name string, value Value) {
	i.Fields[name] = value
}
