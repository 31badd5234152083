package step

import (
	"context"
	"reflect"
)

// Hooks holds a model's suite- and test-level lifecycle hooks. Any of these
// may be empty; the engine simply skips absent hooks.
type Hooks struct {
	BeforeSuite ActionFunc
	AfterSuite  ActionFunc
	BeforeTest  ActionFunc
	AfterTest   ActionFunc
	Before      ActionFunc
	After       ActionFunc
}

// actionSignature is the single signature every invokable (step action,
// lifecycle hook, or per-step pre/post hook) must have: func(context.Context) error.
var actionSignature = reflect.TypeOf((*ActionFunc)(nil)).Elem()

// bindAction looks up an exported method named name on v and, if present and
// signature-compatible, returns it bound as an ActionFunc. The zero value
// (nil, false) means "not found"; a signature mismatch is also "not found"
// rather than an error, since a same-named method with the wrong shape is
// simply not a hook (idiomatic "matched by a closed grammar of reserved
// prefixes" per the design notes: unknown-shaped methods are silently not
// claimed, not a fatal error).
func bindAction(v reflect.Value, name string) (ActionFunc, bool) {
	m := v.MethodByName(name)
	if !m.IsValid() {
		return nil, false
	}
	fn, ok := m.Interface().(func(context.Context) error)
	if !ok {
		return nil, false
	}
	return ActionFunc(fn), true
}

// bindGuard looks up an exported method named name on v with signature
// func() bool, wrapping it into a GuardFunc.
func bindGuard(v reflect.Value, name string) (GuardFunc, bool) {
	m := v.MethodByName(name)
	if !m.IsValid() {
		return nil, false
	}
	if fn, ok := m.Interface().(func() (bool, error)); ok {
		return GuardFunc(fn), true
	}
	if fn, ok := m.Interface().(func() bool); ok {
		return func() (bool, error) { return fn(), nil }, true
	}
	return nil, false
}

// bindWeight looks up an exported method named name on v with signature
// func() float64, wrapping it into a WeightFunc.
func bindWeight(v reflect.Value, name string) (WeightFunc, bool) {
	m := v.MethodByName(name)
	if !m.IsValid() {
		return nil, false
	}
	if fn, ok := m.Interface().(func() (float64, error)); ok {
		return WeightFunc(fn), true
	}
	if fn, ok := m.Interface().(func() float64); ok {
		return func() (float64, error) { return fn(), nil }, true
	}
	return nil, false
}

// resolveHooks binds the fixed suite/test/step hook names by convention.
func resolveHooks(v reflect.Value) Hooks {
	var h Hooks
	h.BeforeSuite, _ = bindAction(v, "BeforeSuite")
	h.AfterSuite, _ = bindAction(v, "AfterSuite")
	h.BeforeTest, _ = bindAction(v, "BeforeTest")
	h.AfterTest, _ = bindAction(v, "AfterTest")
	h.Before, _ = bindAction(v, "Before")
	h.After, _ = bindAction(v, "After")
	return h
}
