// Package channels documents receive semantics on closed and nil channels.
package channels

import (
	"fmt"
	"io"

	"gotraps/internal/catalog"
)

// Section returns the channel receive entries.
func Section() catalog.Section {
	return catalog.Section{
		ID:    "channels",
		Title: "Closed & Nil Channels",
		Intro: "Closing a channel is a broadcast, not a teardown: receives " +
			"keep succeeding forever. A nil channel is the opposite extreme, " +
			"it blocks forever.",
		Entries: []catalog.Entry{
			closedReceive(),
			nilReceive(),
		},
	}
}

func closedReceive() catalog.Entry {
	return catalog.Entry{
		ID:    "closed-channel-receive",
		Title: "Receiving from a Closed Channel Never Blocks",
		Doc: "A closed buffered channel first drains its buffered values with " +
			"`ok == true`. Once empty, every receive completes immediately " +
			"with the element type's zero value and `ok == false`, forever. " +
			"Ranging over a channel uses exactly this: the loop ends at the " +
			"first zero-value/false receive. The trap is treating the zero " +
			"value as data; check `ok` when the zero value is meaningful.",
		Code: `package main

import "fmt"

func main() {
	ch := make(chan int, 2)
	ch <- 1
	close(ch)

	v, ok := <-ch
	fmt.Println(v, ok) // buffered value drains first

	v, ok = <-ch
	fmt.Println(v, ok) // closed and empty: zero value, false

	v, ok = <-ch
	fmt.Println(v, ok) // and so on forever
}
`,
		Output: "1 true\n0 false\n0 false\n",
		Run: func(w io.Writer) {
			ch := make(chan int, 2)
			ch <- 1
			close(ch)

			v, ok := <-ch
			fmt.Fprintln(w, v, ok)

			v, ok = <-ch
			fmt.Fprintln(w, v, ok)

			v, ok = <-ch
			fmt.Fprintln(w, v, ok)
		},
	}
}

func nilReceive() catalog.Entry {
	return catalog.Entry{
		ID:    "nil-channel-receive",
		Title: "Receiving from a Nil Channel Blocks Forever",
		Doc: "The zero value of a channel type is nil, and both send and " +
			"receive on a nil channel block forever. Here the only goroutine " +
			"parks on `<-ch` with no way to wake, so the runtime aborts with " +
			"`fatal error: all goroutines are asleep - deadlock!`. The usual " +
			"source is a forgotten `make`. Inside a `select`, a nil channel " +
			"case is deliberately used to switch a branch off.",
		Code: `package main

func main() {
	var ch chan int // nil: make was never called
	<-ch            // deadlock
}
`,
		Crashes: true,
	}
}
