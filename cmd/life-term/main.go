package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lifeboard/internal/app"
	"lifeboard/internal/render"
)

func main() {
	cfg := app.NewConfig()
	cfg.Span = 30
	cfg.Bind(flag.CommandLine)
	frame := flag.Duration("frame", 33*time.Millisecond, "terminal refresh interval")
	limit := flag.Int("generations", 0, "exit after this many generations (0 runs until interrupted)")
	flag.Parse()
	if err := cfg.Resolve(flag.CommandLine); err != nil {
		log.Fatalf("config: %v", err)
	}

	eng, err := cfg.NewEngine(render.NewText(os.Stdout, true))
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(*frame)
	defer ticker.Stop()

	start := time.Now()
	eng.Start(0)
	for {
		select {
		case <-ctx.Done():
			eng.Stop()
			log.Printf("stopped at generation %d, population %d", eng.Generation(), eng.Board().Population())
			return
		case <-ticker.C:
			if _, err := eng.Tick(time.Since(start)); err != nil {
				log.Fatal(err)
			}
			if *limit > 0 && eng.Generation() >= *limit {
				stop()
			}
		}
	}
}
