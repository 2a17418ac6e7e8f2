// -*- tab-width:2 -*-

// Package main runs a sample Poisson arrival replay: a few traffic
// classes with different rates replayed over virtual time, with
// summary statistics at the end.
package main

import (
	"fmt"
	"os"

	count "github.com/jayalane/go-counter"
	ll "github.com/jayalane/go-lll"
	stoch "github.com/jayalane/go-stoch"
	"golang.org/x/exp/rand"
	"gopkg.in/yaml.v3"
)

const (
	defaultDurationMs = 10_000 // 10 seconds of simulated time
	traceArrivals     = 50
	traceRate         = 10.0 // arrivals per ms
	traceSeed         = 99
)

// sourceConf is one traffic class in the scenario file.
type sourceConf struct {
	Name   string  `yaml:"name"`
	Lambda float64 `yaml:"lambda"` // arrivals per ms
	Seed   uint64  `yaml:"seed"`
}

// scenario is the YAML config for a replay run.
type scenario struct {
	DurationMs float64      `yaml:"duration_ms"`
	Sources    []sourceConf `yaml:"sources"`
}

func defaultScenario() *scenario {
	return &scenario{
		DurationMs: defaultDurationMs,
		Sources: []sourceConf{
			{Name: "login-traffic", Lambda: 0.005, Seed: 1},
			{Name: "checkout-traffic", Lambda: 0.003, Seed: 2},
			{Name: "pay-traffic", Lambda: 0.002, Seed: 3},
		},
	}
}

func loadScenario(path string) (*scenario, error) {
	data, err := os.ReadFile(path) //nolint:gosec // operator-supplied path
	if err != nil {
		return nil, err
	}

	s := scenario{}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}

	if s.DurationMs <= 0 {
		s.DurationMs = defaultDurationMs
	}

	return &s, nil
}

func main() {
	ll.SetWriter(os.Stdout)
	count.InitCounters()

	stoch.Init()

	sc := defaultScenario()

	if len(os.Args) > 1 {
		loaded, err := loadScenario(os.Args[1])
		if err != nil {
			fmt.Println("bad scenario file:", err)
			os.Exit(1)
		}

		sc = loaded
	}

	loop := stoch.NewLoop("sample")

	for _, c := range sc.Sources {
		_, err := stoch.MakeSource(&stoch.SourceConf{
			Name:   c.Name,
			Lambda: c.Lambda,
			Seed:   c.Seed,
		}, loop)
		if err != nil {
			fmt.Println("bad source conf:", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Replaying %.0f ms of traffic over %d sources...\n",
		sc.DurationMs, len(sc.Sources))

	loop.Run(sc.DurationMs)
	loop.Stats()

	merged := loop.Merged()
	if len(merged) > 0 {
		mean, variance := stoch.Moments(stoch.Gaps(merged))
		fmt.Printf("merged arrivals: %d, gap mean %.2f ms, gap variance %.2f\n",
			len(merged), mean, variance)
	}

	// One-shot fixed-seed trace using the pure-function path.
	times, err := stoch.Arrivals(traceArrivals, traceRate, rand.NewSource(traceSeed))
	if err != nil {
		fmt.Println("arrivals:", err)
		os.Exit(1)
	}

	fmt.Printf("seeded trace: %d arrivals, last at %.3f ms\n",
		len(times), times[len(times)-1])

	count.LogCounters()
}
