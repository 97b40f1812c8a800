// Package every boxes a value of any concrete type behind a uniform erased
// container while keeping enough runtime information to recover the concrete
// type later, through checked downcasts that fail with a descriptive
// [DowncastError] instead of a bare false.
//
// A [Value] may be handed freely between goroutines; it is an ordinary Go
// value and needs the caller's own synchronization only when shared, like
// anything else. Tables and other consumers built on top of this package
// rely solely on the identity check preceding every typed view, never on
// ownership tracking.
package every

import "reflect"

// Value is an owned, erased container for a value of some concrete type.
// It is created by Box and remembers the payload's runtime identity and
// name. The zero Value holds nothing and fails every downcast.
type Value struct {
	// ptr is always a *T for the boxed T. The typed view of the payload is
	// recovered exclusively through the checked assertions in Is, Ref and
	// Take; there is no unchecked path.
	ptr any
}

// Box copies value into a fresh erased container. Because the payload is
// copied, later mutation through Ref never aliases the caller's variable.
func Box[T any](value T) Value {
	return Value{ptr: &value}
}

// Type returns the runtime identity of the boxed value, or nil for the zero
// Value.
func (v Value) Type() reflect.Type {
	if v.ptr == nil {
		return nil
	}
	return reflect.TypeOf(v.ptr).Elem()
}

// TypeName returns the human-readable name of the boxed value's type.
func (v Value) TypeName() string {
	return typeName(v.Type())
}

// Is reports whether the boxed value is a T.
func Is[T any](v Value) bool {
	_, ok := v.ptr.(*T)
	return ok
}

// Ref returns a typed view of the boxed value. The pointer aliases the box,
// so it serves both read and in-place mutation; writes through it are
// visible to every holder of v. A mismatched T yields a DowncastError
// naming both the actual and the requested type.
func Ref[T any](v Value) (*T, error) {
	p, ok := v.ptr.(*T)
	if !ok {
		return nil, cannotDowncast[T](v)
	}
	return p, nil
}

// Take recovers an owned copy of the boxed value. On mismatch the box is
// left undisturbed, so the caller loses nothing by probing for the wrong
// type.
func Take[T any](v Value) (T, error) {
	p, ok := v.ptr.(*T)
	if !ok {
		var zero T
		return zero, cannotDowncast[T](v)
	}
	return *p, nil
}
