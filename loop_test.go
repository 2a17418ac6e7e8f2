// -*- tab-width:2 -*-

package stoch

import (
	"errors"
	"os"
	"testing"

	count "github.com/jayalane/go-counter"
	ll "github.com/jayalane/go-lll"
)

func TestMain(m *testing.M) {
	ll.SetWriter(os.Stdout)
	count.InitCounters()
	Init()

	os.Exit(m.Run())
}

// TestLoop runs a small replay with two sources and checks the
// recorders against the merged sequence.
func TestLoop(t *testing.T) {
	loop := NewLoop("default")

	fast, err := MakeSource(&SourceConf{Name: "fast", Lambda: 0.05, Seed: 17}, loop)
	if err != nil {
		t.Fatal(err)
	}

	slow, err := MakeSource(&SourceConf{Name: "slow", Lambda: 0.01, Seed: 23}, loop)
	if err != nil {
		t.Fatal(err)
	}

	events := 0
	tap, err := MakeSource(&SourceConf{
		Name:   "tapped",
		Lambda: 0.02,
		Seed:   31,
		OnEvent: func(_ *Source, _ Milliseconds) {
			events++
		},
	}, loop)
	if err != nil {
		t.Fatal(err)
	}

	loop.Run(10_000) // msecs
	loop.Stats()

	if events != len(tap.Times()) {
		t.Fatalf("callback fired %d times for %d arrivals", events, len(tap.Times()))
	}

	merged := loop.Merged()

	total := fast.Recorder().Total() + slow.Recorder().Total() + tap.Recorder().Total()
	if uint64(len(merged)) != total {
		t.Fatalf("merged %d arrivals, recorders saw %d", len(merged), total)
	}

	prev := float64(0)
	for _, x := range merged {
		if x < prev {
			t.Fatalf("merged sequence out of order: %f after %f", x, prev)
		}

		prev = x
	}

	// Expected counts over 10000 ms: 500 fast, 100 slow. The bounds
	// are many sigmas wide.
	if fast.Recorder().Total() < 350 || fast.Recorder().Total() > 650 {
		t.Fatalf("fast source generated %d arrivals, expected about 500",
			fast.Recorder().Total())
	}

	if slow.Recorder().Total() < 40 || slow.Recorder().Total() > 160 {
		t.Fatalf("slow source generated %d arrivals, expected about 100",
			slow.Recorder().Total())
	}

	if len(fast.Recorder().History()) != 10_000 {
		t.Fatalf("recorder history has %d ticks, expected 10000",
			len(fast.Recorder().History()))
	}
}

func TestMakeSourceBadLambda(t *testing.T) {
	loop := NewLoop("bad")

	for _, lambda := range []float64{0, -0.5} {
		_, err := MakeSource(&SourceConf{Name: "nope", Lambda: lambda}, loop)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("lambda %f should be rejected, got %v", lambda, err)
		}
	}
}
