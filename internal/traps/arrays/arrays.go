// Package arrays documents that arrays are values: assignment and parameter
// passing copy every element, unlike slices.
package arrays

import (
	"fmt"
	"io"

	"gotraps/internal/catalog"
)

// Section returns the array value-semantics entries.
func Section() catalog.Section {
	return catalog.Section{
		ID:    "arrays",
		Title: "Arrays Are Values",
		Intro: "An array type includes its length, and an array variable is " +
			"the whole block of elements, not a reference to one.",
		Entries: []catalog.Entry{
			valueCopy(),
		},
	}
}

func valueCopy() catalog.Entry {
	return catalog.Entry{
		ID:    "array-value-copy",
		Title: "Assigning an Array Copies Every Element",
		Doc: "`a2 := a1` copies all three elements, so mutating `a2` leaves " +
			"`a1` untouched. The same copy happens when an array is passed to " +
			"a function. Coming from languages where arrays are references, " +
			"this reads like aliasing but is not.",
		Code: `package main

import "fmt"

func main() {
	a1 := [3]int{}
	a2 := a1 // full copy

	a2[0] = 100
	fmt.Println(a1[0])
	fmt.Println(a2[0])
}
`,
		Output: "0\n100\n",
		Run: func(w io.Writer) {
			a1 := [3]int{}
			a2 := a1

			a2[0] = 100
			fmt.Fprintln(w, a1[0])
			fmt.Fprintln(w, a2[0])
		},
	}
}
