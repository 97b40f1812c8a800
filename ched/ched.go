// Package ched provides a dynamic value container supporting Clone, Hash,
// Equal and Debug over an erased payload, dispatching each through an
// operation table specialised for the payload's concrete type.
//
// Construction requires a [Token], which can only be obtained through
// registry resolution for the same type being boxed. The container
// therefore maintains a single invariant for its whole lifetime: the
// attached table's specialised type always matches the payload's runtime
// type. Nothing replaces the payload's type in place, so dispatch never
// observes a mismatch.
package ched

import (
	"io"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/obsidiandynamics/vtable/every"
)

// Object pairs one erased payload with the table specialised for the
// payload's concrete type.
type Object struct {
	inner  every.Value
	vtable *VTable
}

// New boxes value and attaches the table carried by tok.
func New[T comparable](value T, tok Token[T]) Object {
	return Object{
		inner:  every.Box(value),
		vtable: tok.VTable(),
	}
}

// Inner exposes the erased payload for direct downcasting: every.Ref for a
// (mutable) view, every.Take for an owned copy.
func (o Object) Inner() every.Value {
	return o.inner
}

// Clone returns an Object holding a deep, independent copy of the payload.
// The table is shared by reference; tables are immutable and outlive every
// object attached to them.
func (o Object) Clone() Object {
	return Object{
		inner:  o.vtable.clone(o.inner),
		vtable: o.vtable,
	}
}

// Debug writes the payload's native rendering to w.
func (o Object) Debug(w io.Writer) error {
	return o.vtable.debug(o.inner, w)
}

// String renders the payload exactly as the concrete type renders itself.
func (o Object) String() string {
	var sb strings.Builder
	o.Debug(&sb)
	return sb.String()
}

// Equal reports value equality. Objects wrapping different concrete types
// are never equal; objects of the same type compare under the type's native
// equality.
func (o Object) Equal(other Object) bool {
	return o.vtable.equal(o.inner, other.inner)
}

// WriteHash feeds the payload's identity bytes into acc. Objects that
// compare equal feed identical byte sequences, which makes objects usable
// as associative-container keys.
func (o Object) WriteHash(acc io.Writer) {
	o.vtable.hash(o.inner, acc)
}

// Sum64 is WriteHash through a fresh xxhash digest.
func (o Object) Sum64() uint64 {
	digest := xxhash.New()
	o.WriteHash(digest)
	return digest.Sum64()
}
