// Package slicing documents how slice views alias their underlying storage,
// and when a growth operation silently breaks that aliasing.
package slicing

import (
	"fmt"
	"io"

	"gotraps/internal/catalog"
)

// Section returns the slice capacity and aliasing entries.
func Section() catalog.Section {
	return catalog.Section{
		ID:    "slicing",
		Title: "Slice Capacity & Aliasing",
		Intro: "A slice is a view: pointer, length, capacity. Two views over " +
			"the same underlying storage see each other's writes until one of " +
			"them grows past its capacity and is moved to fresh storage.",
		Entries: []catalog.Entry{
			aliasing(),
			fullSliceExpression(),
		},
	}
}

func aliasing() catalog.Entry {
	return catalog.Entry{
		ID:    "slice-append-aliasing",
		Title: "Append Through a Sub-Slice",
		Doc: "`b := a[:2]` has length 2 but capacity 3, so the first append " +
			"fits inside `a`'s storage and overwrites `a[2]` in place. The " +
			"second append exceeds the capacity, `b` is moved to new storage, " +
			"and from then on writes through `b` are invisible through `a`. " +
			"Nothing in the program text marks the moment the aliasing ends.",
		Code: `package main

import "fmt"

func main() {
	a := []int{1, 2, 3}
	b := a[:2] // len 2, cap 3: shares a's underlying storage

	b = append(b, -1) // fits within cap, overwrites a[2]
	fmt.Println(len(a))
	fmt.Println(cap(a))
	fmt.Println(a[2])

	b = append(b, 9) // exceeds cap: b moves to new storage
	b[2] = 7         // no longer visible through a
	fmt.Println(len(a))
	fmt.Println(a[2])
}
`,
		Output: "3\n3\n-1\n3\n-1\n",
		Run: func(w io.Writer) {
			a := []int{1, 2, 3}
			b := a[:2]

			b = append(b, -1)
			fmt.Fprintln(w, len(a))
			fmt.Fprintln(w, cap(a))
			fmt.Fprintln(w, a[2])

			b = append(b, 9)
			b[2] = 7
			fmt.Fprintln(w, len(a))
			fmt.Fprintln(w, a[2])
		},
	}
}

func fullSliceExpression() catalog.Entry {
	return catalog.Entry{
		ID:    "full-slice-expression",
		Title: "Capping a View with a Full Slice Expression",
		Doc: "The three-index form `a[low:high:max]` limits the new view's " +
			"capacity. With `b := a[:2:2]` the very first append already " +
			"exceeds the capacity, so `b` detaches immediately and `a` is " +
			"never clobbered. Hand out capped views when callers may append.",
		Code: `package main

import "fmt"

func main() {
	a := []int{1, 2, 3}
	b := a[:2:2] // len 2, cap 2: appends can never reach a's storage

	b = append(b, -1) // reallocates right away
	fmt.Println(a[2])
	fmt.Println(b[2])
}
`,
		Output: "3\n-1\n",
		Run: func(w io.Writer) {
			a := []int{1, 2, 3}
			b := a[:2:2]

			b = append(b, -1)
			fmt.Fprintln(w, a[2])
			fmt.Fprintln(w, b[2])
		},
	}
}
