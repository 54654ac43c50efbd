package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"gridgames/internal/bench"
	"gridgames/pkg/core"
	_ "gridgames/pkg/sims/ant"
	_ "gridgames/pkg/sims/life"
	_ "gridgames/pkg/sims/rps"
)

func main() {
	sim := flag.String("sim", "life", "simulation to run ("+strings.Join(core.Names(), ", ")+")")
	sizes := flag.String("sizes", "", "comma-separated board sizes (default: the variant default)")
	seeds := flag.Int("seeds", 16, "number of seeds to sweep, starting at -first-seed")
	firstSeed := flag.Int64("first-seed", 1, "first seed of the sweep")
	steps := flag.Int("steps", 1000, "ticks to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	randomize := flag.Bool("randomize", true, "randomize the board before stepping")
	flag.Parse()

	sizeList, err := parseSizes(*sizes)
	if err != nil {
		log.Fatalf("sizes: %v", err)
	}
	seedList := make([]int64, *seeds)
	for i := range seedList {
		seedList[i] = *firstSeed + int64(i)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	opts := bench.Options{
		Variant:   *sim,
		Sizes:     sizeList,
		Seeds:     seedList,
		Steps:     *steps,
		Workers:   *workers,
		Randomize: *randomize,
	}
	fmt.Printf("Sweeping %s over %d seeds (%d workers, %d steps)\n", *sim, len(seedList), *workers, *steps)

	start := time.Now()
	results, err := bench.Run(ctx, opts)
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "size\tseed\tsteps\tterminated\toccupied\tstatus\tticks/s\terror")
	terminated := 0
	for _, r := range results {
		errText := ""
		if r.Err != nil {
			errText = r.Err.Error()
		}
		if r.Terminated {
			terminated++
		}
		occupied := "-"
		if r.HasOccupancy {
			occupied = strconv.Itoa(r.Occupied)
		}
		status := make([]string, 0, len(r.Status))
		for _, p := range r.Status {
			status = append(status, p.Key+"="+p.Value)
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%v\t%s\t%s\t%.0f\t%s\n", r.Size, r.Seed, r.Steps, r.Terminated, occupied, strings.Join(status, " "), r.TicksPerSecond(), errText)
	}
	_ = tw.Flush()
	fmt.Printf("\n%d/%d scenarios terminated naturally; finished in %s\n", terminated, len(results), time.Since(start).Round(time.Millisecond))
}

func parseSizes(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	var out []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
