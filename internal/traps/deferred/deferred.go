// Package deferred documents when deferred calls run and when their
// arguments are evaluated.
package deferred

import (
	"fmt"
	"io"

	"gotraps/internal/catalog"
)

// Section returns the defer timing entries.
func Section() catalog.Section {
	return catalog.Section{
		ID:    "deferred",
		Title: "Defer Timing",
		Intro: "A deferred call runs after the surrounding function sets its " +
			"result values but before it returns to the caller. Its arguments " +
			"are evaluated at the `defer` statement, not at call time.",
		Entries: []catalog.Entry{
			namedResult(),
			argEvaluation(),
		},
	}
}

func message() (s string) {
	defer func() { s = "bar" }()
	return "foo"
}

func namedResult() catalog.Entry {
	return catalog.Entry{
		ID:    "defer-named-result",
		Title: "A Deferred Closure Can Rewrite a Named Result",
		Doc: "`return \"foo\"` assigns `\"foo\"` to the named result `s`, " +
			"then the deferred closure runs and overwrites it. The caller " +
			"sees `bar`. With unnamed results the deferred closure has " +
			"nothing to write to and the return value is unaffected. This is " +
			"the mechanism behind the common `defer func() { err = f.Close() }()` " +
			"pattern.",
		Code: `package main

import "fmt"

func message() (s string) {
	defer func() { s = "bar" }()
	return "foo"
}

func main() {
	fmt.Println(message())
}
`,
		Output: "bar\n",
		Run: func(w io.Writer) {
			fmt.Fprintln(w, message())
		},
	}
}

func argEvaluation() catalog.Entry {
	return catalog.Entry{
		ID:    "defer-arg-evaluation",
		Title: "Deferred Arguments Are Evaluated Immediately",
		Doc: "The `defer fmt.Println(i)` statement evaluates `i` on the spot " +
			"and stores the value 0 with the pending call. The increment that " +
			"follows is irrelevant to it. To observe the final value instead, " +
			"defer a closure that reads `i` when it runs.",
		Code: `package main

import "fmt"

func main() {
	i := 0
	defer fmt.Println(i) // i evaluated here: the pending call prints 0
	i++
	fmt.Println(i)
}
`,
		Output: "1\n0\n",
		Run: func(w io.Writer) {
			func() {
				i := 0
				defer fmt.Fprintln(w, i)
				i++
				fmt.Fprintln(w, i)
			}()
		},
	}
}
