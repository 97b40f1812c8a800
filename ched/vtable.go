package ched

import (
	"fmt"
	"io"

	"github.com/obsidiandynamics/vtable"
	"github.com/obsidiandynamics/vtable/every"
)

type (
	// CloneFn produces a new owned box holding a deep copy of the payload.
	CloneFn func(v every.Value) every.Value

	// DebugFn writes the payload's native rendering to w.
	DebugFn func(v every.Value, w io.Writer) error

	// EqualFn reports whether two boxed payloads are equal. It is total
	// across types: mismatched runtime types compare unequal.
	EqualFn func(a, b every.Value) bool

	// HashFn feeds the payload's identity bytes into acc. Boxes that
	// compare equal feed identical byte sequences.
	HashFn func(v every.Value, acc io.Writer)
)

// VTable binds the four value-semantics operations to one concrete type.
//
// Precondition: every entry trusts that the box handed to it holds exactly
// the type the table was specialised for. Token-gated construction of
// Object upholds this; a violation indicates a defect in this library and
// panics with the underlying DowncastError rather than returning an error.
type VTable struct {
	clone CloneFn
	debug DebugFn
	equal EqualFn
	hash  HashFn
}

// Specialise builds the table for T. The registry invokes it at most once
// per T; call TokenOf rather than invoking this directly.
func Specialise[T comparable]() *VTable {
	return &VTable{
		clone: cloneOf[T],
		debug: debugOf[T],
		equal: equalOf[T],
		hash:  hashOf[T],
	}
}

// Token is proof that the clone/hash/equal/debug table has been specialised
// for T via the registry.
type Token[T comparable] = vtable.Token[T, VTable]

// TokenOf resolves the token for T, building and caching the table on first
// use. Subsequent calls for the same T return a token to the same table.
func TokenOf[T comparable]() Token[T] {
	return vtable.Resolve[T](Specialise[T])
}

func cloneOf[T comparable](v every.Value) every.Value {
	payload := every.Must(every.Ref[T](v))
	return every.Box(*payload)
}

func debugOf[T comparable](v every.Value, w io.Writer) error {
	payload := every.Must(every.Ref[T](v))
	_, err := fmt.Fprintf(w, "%v", *payload)
	return err
}

func equalOf[T comparable](a, b every.Value) bool {
	lhs := every.Must(every.Ref[T](a))
	rhs, err := every.Ref[T](b)
	return err == nil && *lhs == *rhs
}

func hashOf[T comparable](v every.Value, acc io.Writer) {
	payload := every.Must(every.Ref[T](v))
	io.WriteString(acc, v.TypeName())
	fmt.Fprintf(acc, "%v", *payload)
}
