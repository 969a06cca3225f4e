// Package rwlock documents sync.RWMutex's write-preference: a parked writer
// blocks readers that arrive after it, even while earlier readers still hold
// the lock.
package rwlock

import (
	"fmt"
	"io"
	"sync"
	"time"

	"gotraps/internal/catalog"
)

// settle is how long the demo waits for a goroutine to park inside a lock
// call before moving on. Generous relative to scheduler latency so the
// printed order is stable on loaded machines.
const settle = 10 * time.Millisecond

// Section returns the reader-writer lock fairness entries.
func Section() catalog.Section {
	return catalog.Section{
		ID:    "rwlock",
		Title: "RWMutex Write Preference",
		Intro: "sync.RWMutex is not a free-for-all reader lock. To keep " +
			"writers from starving, a blocked Lock call stops later RLock " +
			"calls from succeeding until the writer has had its turn.",
		Entries: []catalog.Entry{
			writerPreference(),
		},
	}
}

func writerPreference() catalog.Entry {
	return catalog.Entry{
		ID:    "rwmutex-writer-preference",
		Title: "A Pending Writer Blocks Later Readers",
		Doc: "The early reader holds the read lock when the writer calls " +
			"`Lock` and parks. The late reader then calls `RLock` and parks " +
			"too, even though only readers hold the lock at that moment: the " +
			"pending writer has priority over readers that arrive after it. " +
			"When the early reader releases, the writer runs first and the " +
			"late reader only after the writer unlocks. The documented " +
			"consequence: `RLock` must not be used recursively, because a " +
			"writer arriving between the two acquisitions deadlocks both.",
		Code: `package main

import (
	"fmt"
	"sync"
	"time"
)

func main() {
	var mu sync.RWMutex
	events := make(chan string, 3)

	mu.RLock() // early reader
	events <- "early reader holds RLock"

	writerUp := make(chan struct{})
	writerDone := make(chan struct{})
	go func() {
		close(writerUp)
		mu.Lock() // parks behind the early reader
		events <- "writer acquired Lock"
		mu.Unlock()
		close(writerDone)
	}()
	<-writerUp
	time.Sleep(10 * time.Millisecond) // let the writer park in Lock

	lateDone := make(chan struct{})
	go func() {
		mu.RLock() // parks behind the pending writer
		events <- "late reader acquired RLock"
		mu.RUnlock()
		close(lateDone)
	}()
	time.Sleep(10 * time.Millisecond) // let the late reader park in RLock

	mu.RUnlock() // release the early reader; the writer goes first
	<-writerDone
	<-lateDone

	close(events)
	for ev := range events {
		fmt.Println(ev)
	}
}
`,
		Output: "early reader holds RLock\nwriter acquired Lock\nlate reader acquired RLock\n",
		Run: func(w io.Writer) {
			var mu sync.RWMutex
			events := make(chan string, 3)

			mu.RLock()
			events <- "early reader holds RLock"

			writerUp := make(chan struct{})
			writerDone := make(chan struct{})
			go func() {
				close(writerUp)
				mu.Lock()
				events <- "writer acquired Lock"
				mu.Unlock()
				close(writerDone)
			}()
			<-writerUp
			time.Sleep(settle)

			lateDone := make(chan struct{})
			go func() {
				mu.RLock()
				events <- "late reader acquired RLock"
				mu.RUnlock()
				close(lateDone)
			}()
			time.Sleep(settle)

			mu.RUnlock()
			<-writerDone
			<-lateDone

			close(events)
			for ev := range events {
				fmt.Fprintln(w, ev)
			}
		},
	}
}
