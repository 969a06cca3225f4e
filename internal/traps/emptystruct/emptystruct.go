// Package emptystruct documents struct{} as the zero-width type and its two
// idiomatic uses.
package emptystruct

import (
	"fmt"
	"io"
	"unsafe"

	"gotraps/internal/catalog"
)

// Section returns the empty-struct entries.
func Section() catalog.Section {
	return catalog.Section{
		ID:    "emptystruct",
		Title: "The Empty Struct",
		Intro: "struct{} carries no data and occupies no memory. It is the " +
			"type to reach for when only presence matters.",
		Entries: []catalog.Entry{
			zeroWidth(),
		},
	}
}

func zeroWidth() catalog.Entry {
	return catalog.Entry{
		ID:    "empty-struct-uses",
		Title: "Zero Bytes: Sets and Signal Channels",
		Doc: "`unsafe.Sizeof(struct{}{})` is 0, and a `map[string]struct{}` " +
			"stores only its keys, which is why it is the idiomatic set: " +
			"`map[string]bool` spends a byte per element to encode a fact the " +
			"key's presence already encodes. A `chan struct{}` likewise says " +
			"in the type that the channel carries no payload, only the events " +
			"of sending and closing.",
		Code: `package main

import (
	"fmt"
	"unsafe"
)

func main() {
	fmt.Println(unsafe.Sizeof(struct{}{}))

	seen := map[string]struct{}{"a": {}, "b": {}}
	_, ok := seen["a"]
	fmt.Println(ok)

	done := make(chan struct{})
	go close(done) // signal only, no payload
	<-done
	fmt.Println("done")
}
`,
		Output: "0\ntrue\ndone\n",
		Run: func(w io.Writer) {
			fmt.Fprintln(w, unsafe.Sizeof(struct{}{}))

			seen := map[string]struct{}{"a": {}, "b": {}}
			_, ok := seen["a"]
			fmt.Fprintln(w, ok)

			done := make(chan struct{})
			go close(done)
			<-done
			fmt.Fprintln(w, "done")
		},
	}
}
