package ched_test

import (
	"fmt"

	"github.com/obsidiandynamics/vtable/ched"
	"github.com/obsidiandynamics/vtable/every"
)

func Example() {
	tok := ched.TokenOf[int]()
	obj := ched.New(42, tok)

	fmt.Println(obj)
	fmt.Println(obj.Equal(ched.New(42, tok)))
	fmt.Println(obj.Equal(ched.New(43, tok)))
	fmt.Println(obj.Equal(ched.New("foo", ched.TokenOf[string]())))
	// Output:
	// 42
	// true
	// false
	// false
}

func ExampleObject_Inner() {
	obj := ched.New(int32(42), ched.TokenOf[int32]())

	if n, err := every.Take[int32](obj.Inner()); err == nil {
		fmt.Println(n)
	}
	if _, err := every.Take[uint32](obj.Inner()); err != nil {
		fmt.Println(err)
	}
	// Output:
	// 42
	// cannot downcast int32 into uint32
}
