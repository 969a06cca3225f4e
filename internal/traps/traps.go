// Package traps assembles the full catalog in document order.
package traps

import (
	"gotraps/internal/catalog"
	"gotraps/internal/traps/arrays"
	"gotraps/internal/traps/assign"
	"gotraps/internal/traps/channels"
	"gotraps/internal/traps/deferred"
	"gotraps/internal/traps/emptystruct"
	"gotraps/internal/traps/nilness"
	"gotraps/internal/traps/panics"
	"gotraps/internal/traps/rwlock"
	"gotraps/internal/traps/slicing"
)

// Title is the rendered document's title.
const Title = "Go Traps: Semantics Worth Tripping Over Once"

// Catalog returns the assembled registry. Section order is document order.
func Catalog() *catalog.Registry {
	return catalog.MustNew(
		slicing.Section(),
		arrays.Section(),
		nilness.Section(),
		assign.Section(),
		deferred.Section(),
		panics.Section(),
		channels.Section(),
		rwlock.Section(),
		emptystruct.Section(),
	)
}
