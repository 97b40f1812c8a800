package every

import (
	"fmt"
	"reflect"
)

// DowncastError reports a checked downcast whose requested type did not
// match the boxed value's runtime type. It is comparable: two failures of
// the same cast on the same source type are equal.
type DowncastError struct {
	Source reflect.Type
	Target reflect.Type
}

func (e DowncastError) Error() string {
	return fmt.Sprintf("cannot downcast %s into %s", typeName(e.Source), typeName(e.Target))
}

func cannotDowncast[T any](v Value) DowncastError {
	return DowncastError{Source: v.Type(), Target: reflect.TypeFor[T]()}
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// Must unwraps the result of a checked downcast, panicking with the error
// when the cast failed. Use at call sites where a mismatch is a programming
// error rather than a recoverable condition.
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}
