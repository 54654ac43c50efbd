// Package bench runs a variant headlessly over many seeds on a worker pool.
package bench

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"gridgames/pkg/core"
)

// Options selects what to sweep.
type Options struct {
	Variant string
	Sizes   []int
	Seeds   []int64
	Steps   int
	Workers int
	// Randomize fills the board before stepping, at the variant's default
	// density.
	Randomize bool
}

// Scenario is a single (size, seed) run.
type Scenario struct {
	Size int
	Seed int64
}

// Result summarizes one scenario.
type Result struct {
	Scenario
	Steps      int
	Terminated bool
	// Occupied counts live cells for Life and painted cells for Ant. It is
	// meaningless when HasOccupancy is false.
	Occupied     int
	HasOccupancy bool
	// Status holds the variant's end-of-run statistics, such as RPS counts.
	Status  []core.Parameter
	Elapsed time.Duration
	Err     error
}

// TicksPerSecond reports the stepping rate of the run.
func (r Result) TicksPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Steps) / r.Elapsed.Seconds()
}

// Run executes every size × seed scenario and returns results ordered by
// size, then seed.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	v, ok := core.Lookup(opts.Variant)
	if !ok {
		return nil, fmt.Errorf("unknown variant %q: %w", opts.Variant, core.ErrInvalidConfig)
	}
	if opts.Steps <= 0 {
		return nil, fmt.Errorf("steps %d: %w", opts.Steps, core.ErrInvalidConfig)
	}
	sizes := opts.Sizes
	if len(sizes) == 0 {
		sizes = []int{v.Defaults.BoardSize}
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var scenarios []Scenario
	for _, size := range sizes {
		for _, seed := range opts.Seeds {
			scenarios = append(scenarios, Scenario{Size: size, Seed: seed})
		}
	}

	jobs := make(chan Scenario)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(v, sc, opts)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for _, sc := range scenarios {
			select {
			case jobs <- sc:
			case <-ctx.Done():
				return
			}
		}
	}()

	all := make([]Result, 0, len(scenarios))
	for res := range results {
		all = append(all, res)
	}
	if err := ctx.Err(); err != nil {
		return all, err
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Size != all[j].Size {
			return all[i].Size < all[j].Size
		}
		return all[i].Seed < all[j].Seed
	})
	return all, nil
}

func runScenario(v core.Variant, sc Scenario, opts Options) Result {
	res := Result{Scenario: sc}
	cfg := v.Defaults
	cfg.Seed = sc.Seed
	cfg.BoardSize = sc.Size
	cfg, err := cfg.Validate(v.Limits)
	if err != nil {
		res.Err = err
		return res
	}
	sim, err := v.New(cfg, core.NewRNG(cfg.Seed))
	if err != nil {
		res.Err = err
		return res
	}
	if opts.Randomize {
		if err := sim.Randomize(cfg.Density); err != nil {
			res.Err = err
			return res
		}
	}

	start := time.Now()
	for res.Steps < opts.Steps {
		if err := sim.Step(); err != nil {
			res.Err = err
			break
		}
		res.Steps++
		if sim.Done() {
			res.Terminated = true
			break
		}
	}
	res.Elapsed = time.Since(start)

	switch o := sim.(type) {
	case core.Occupier:
		res.Occupied, res.HasOccupancy = o.Occupied(), true
	case core.LivingCounter:
		res.Occupied, res.HasOccupancy = o.Living(), true
	}
	if sr, ok := sim.(core.StatusReporter); ok {
		res.Status = sr.Status()
	}
	return res
}
