// Package nilness documents the non-nil interface holding a nil pointer, the
// single most reported Go FAQ entry.
package nilness

import (
	"fmt"
	"io"

	"gotraps/internal/catalog"
)

type myErr struct {
	msg string
}

func (e *myErr) Error() string { return e.msg }

func lookupErr() *myErr { return nil }

// Section returns the nil-interface comparison entries.
func Section() catalog.Section {
	return catalog.Section{
		ID:    "nilness",
		Title: "Interfaces & Nil",
		Intro: "An interface value is a (type, value) pair. It compares equal " +
			"to nil only when both halves are nil.",
		Entries: []catalog.Entry{
			nilInterface(),
		},
	}
}

func nilInterface() catalog.Entry {
	return catalog.Entry{
		ID:    "nil-error-interface",
		Title: "A Nil Pointer in an Error Interface Is Not Nil",
		Doc: "`myErr` is a nil `*MyErr`, and compares equal to nil. Assigning " +
			"it to an `error` variable wraps it in an interface whose type " +
			"half is `*MyErr`, so `err == nil` is false even though the value " +
			"half is nil. Asserting the concrete type back out recovers the " +
			"nil pointer. The fix is to return the literal `nil` from " +
			"functions declared to return `error`, never a typed nil pointer.",
		Code: `package main

import "fmt"

type MyErr struct{ msg string }

func (e *MyErr) Error() string { return e.msg }

func lookupErr() *MyErr { return nil }

func main() {
	myErr := lookupErr()
	fmt.Println(myErr == nil)

	var err error = myErr // interface now holds (*MyErr)(nil)
	fmt.Println(err == nil)

	fmt.Println(err.(*MyErr) == nil)
}
`,
		Output: "true\nfalse\ntrue\n",
		Run: func(w io.Writer) {
			e := lookupErr()
			fmt.Fprintln(w, e == nil)

			var err error = e
			fmt.Fprintln(w, err == nil)

			fmt.Fprintln(w, err.(*myErr) == nil)
		},
	}
}
