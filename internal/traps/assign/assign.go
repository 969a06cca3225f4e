// Package assign documents assignability between defined types that share an
// underlying type.
package assign

import (
	"fmt"
	"io"

	"gotraps/internal/catalog"
)

// Section returns the defined-type assignability entries.
func Section() catalog.Section {
	return catalog.Section{
		ID:    "assign",
		Title: "Defined Types & Assignability",
		Intro: "Declaring `type MyInt int` creates a new type, not an alias. " +
			"Identical underlying types are not enough for assignment; at " +
			"least one side must be an unnamed type.",
		Entries: []catalog.Entry{
			definedTypes(),
		},
	}
}

func definedTypes() catalog.Entry {
	return catalog.Entry{
		ID:    "defined-type-assignability",
		Title: "Two Defined Types Need a Conversion",
		Doc: "`var m MyInt = i` is rejected at compile time: `int` and " +
			"`MyInt` are distinct defined types even though their underlying " +
			"type is the same, so an explicit conversion is required. " +
			"`var ids IDs = raw` compiles, because `[]int` is an unnamed " +
			"composite type and assignability only demands that one side be " +
			"unnamed. The conversion between slice types is free: it does not " +
			"copy the elements, both values share the same storage.",
		Code: `package main

import "fmt"

type MyInt int

type IDs []int

func main() {
	var i int = 7
	// var m MyInt = i  // compile error: cannot use i (type int) as MyInt
	m := MyInt(i) // explicit conversion required
	fmt.Println(m)

	var raw []int = []int{1, 2}
	var ids IDs = raw // legal: the right side's type []int is unnamed
	ids = append(ids, 3)
	fmt.Println(len(ids))
}
`,
		Output: "7\n3\n",
		Run: func(w io.Writer) {
			type myInt int
			type ids []int

			var i int = 7
			m := myInt(i)
			fmt.Fprintln(w, m)

			var raw []int = []int{1, 2}
			var xs ids = raw
			xs = append(xs, 3)
			fmt.Fprintln(w, len(xs))
		},
	}
}
