// Package panics documents where recover is effective and where it is not.
package panics

import (
	"fmt"
	"io"

	"gotraps/internal/catalog"
)

// Section returns the panic/recover scoping entries.
func Section() catalog.Section {
	return catalog.Section{
		ID:    "panics",
		Title: "Panic & Recover Scoping",
		Intro: "recover stops a panic only when called directly by a " +
			"deferred function of the panicking goroutine. Called anywhere " +
			"else it returns nil and does nothing.",
		Entries: []catalog.Entry{
			recoverPlacement(),
			goroutinePanic(),
		},
	}
}

func safeDivide(a, b int) (q int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered: %v", r)
		}
	}()
	return a / b, nil
}

func recoverPlacement() catalog.Entry {
	return catalog.Entry{
		ID:    "recover-placement",
		Title: "Recover Works Only Inside a Deferred Function",
		Doc: "The deferred closure in `safeDivide` catches the divide-by-zero " +
			"panic and converts it into an error through the named result. " +
			"The second print shows the other half of the rule: calling " +
			"`recover()` inline, outside any deferred call, is a no-op that " +
			"returns nil even while nothing is panicking.",
		Code: `package main

import "fmt"

func safeDivide(a, b int) (q int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered: %v", r)
		}
	}()
	return a / b, nil
}

func main() {
	_, err := safeDivide(1, 0)
	fmt.Println(err)

	fmt.Println(recover()) // inline recover is a no-op
}
`,
		Output: "recovered: runtime error: integer divide by zero\n<nil>\n",
		Run: func(w io.Writer) {
			_, err := safeDivide(1, 0)
			fmt.Fprintln(w, err)

			fmt.Fprintln(w, recover())
		},
	}
}

func goroutinePanic() catalog.Entry {
	return catalog.Entry{
		ID:    "goroutine-panic",
		Title: "A Parent Cannot Recover a Child Goroutine's Panic",
		Doc: "The deferred recover in `main` belongs to `main`'s goroutine. " +
			"The panic is raised in the child, whose own defer stack has no " +
			"recover, so the runtime tears the whole process down: the " +
			"program dies with `panic: boom` and the parent's recover never " +
			"observes it. Every goroutine that may panic needs its own " +
			"deferred recover; there is no process-wide catch.",
		Code: `package main

import "fmt"

func main() {
	defer func() {
		// Never reached for the child's panic.
		fmt.Println("recovered:", recover())
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		panic("boom") // crashes the whole program
	}()
	<-done
}
`,
		Crashes: true,
	}
}
