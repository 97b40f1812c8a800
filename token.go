package vtable

import "reflect"

// Token is proof that a V-kind table has been specialised for values of
// type T. It is the sole sanctioned way to hand a table to a consumer:
// every token goes through registry resolution, so a token can never pair a
// value type with a table built for a different type. T is a compile-time
// marker only; a Token carries nothing of T at runtime.
type Token[T any, V any] struct {
	table *V
}

// VTable returns the resolved table. The reference remains valid for the
// lifetime of the registry that built it.
func (t Token[T, V]) VTable() *V {
	return t.table
}

// Resolve returns a token for (T, V) against the process-wide registry,
// building the table with specialise on first resolution and reusing the
// cached instance thereafter.
func Resolve[T any, V any](specialise func() *V) Token[T, V] {
	return ResolveIn[T](Singleton(), specialise)
}

// ResolveIn is Resolve against an explicit registry.
func ResolveIn[T any, V any](r *Registry, specialise func() *V) Token[T, V] {
	key := Key{
		Value: reflect.TypeFor[T](),
		Table: reflect.TypeFor[V](),
	}
	table := r.GetOrCreate(key, func() any { return specialise() })
	return Token[T, V]{table: table.(*V)}
}
