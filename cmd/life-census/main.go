package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"

	"lifeboard/internal/census"
	"lifeboard/pkg/life"
)

func main() {
	span := flag.Int("span", life.DefaultSpan, "board side length in cells")
	density := flag.Float64("density", life.DefaultDensity, "probability a cell starts alive")
	generations := flag.Int("generations", 1000, "maximum generations per board")
	count := flag.Int("boards", 32, "number of seeded boards")
	first := flag.Int64("seed", 1, "first seed; boards use consecutive seeds")
	window := flag.Int("window", 8, "past generations checked for repeats")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel board evaluations")
	flag.Parse()

	seeds, err := seedRange(*first, *count)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := census.Run(ctx, census.Options{
		Span:        *span,
		Density:     *density,
		Generations: *generations,
		Seeds:       seeds,
		Workers:     *workers,
		Window:      *window,
	})
	if err != nil {
		log.Fatal(err)
	}

	settled := 0
	for _, r := range results {
		status := "running"
		if r.Settled() {
			settled++
			status = fmt.Sprintf("period %d", r.Period)
		}
		fmt.Printf("seed %-6d gen %-5d pop %5d -> %-5d %s\n", r.Seed, r.Generation, r.Initial, r.Population, status)
	}
	fmt.Printf("\n%d/%d boards settled within %d generations\n", settled, len(results), *generations)
}

// seedRange returns count consecutive seeds starting at first.
func seedRange(first int64, count int) ([]int64, error) {
	if count < 1 {
		return nil, fmt.Errorf("-boards must be at least 1, got %d", count)
	}
	seeds := make([]int64, count)
	for i := range seeds {
		seeds[i] = first + int64(i)
	}
	return seeds, nil
}
