// -*- tab-width:2 -*-

// Package stoch provides seedable samplers over common continuous
// distributions and a Poisson arrival process simulator with a
// virtual-time replay loop to generate statistics
package stoch

import (
	"sync"

	ll "github.com/jayalane/go-lll"
)

var (
	ml     *ll.Lll
	mlOnce sync.Once
)

// Milliseconds is the internal virtual time type.
type Milliseconds float64

// Init must be called before running a replay loop
// it merely inits the logger.
func Init() {
	mlOnce.Do(func() {
		ml = ll.Init("STOCH", "none")
	})
}

// InitWithLogger is an init where you can
// pass in the go-lll logger.
func InitWithLogger(lg *ll.Lll) {
	mlOnce.Do(func() {
		ml = lg
	})
}
