package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"jobalert-engine/internal/config"
	"jobalert-engine/internal/pipeline"
	"jobalert-engine/internal/scheduler"

	"github.com/gofrs/flock"
	"github.com/joho/godotenv"
)

func main() {
	var (
		cfgFlag = flag.String("config", "", "path to config.yml (default: <data dir>/config.yml, seeded from config/config.yml)")
		every   = flag.Duration("every", 0, "re-run on this interval instead of exiting (e.g. 6h); default is one pass")
	)
	flag.Parse()

	// .env is optional; CI and cron usually export the variables directly.
	_ = godotenv.Load()

	dataDir := os.Getenv("JOBALERT_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}

	cfgPath := *cfgFlag
	if cfgPath == "" {
		p, err := config.EnsureUserConfig(dataDir, filepath.Join("config", "config.yml"))
		if err != nil {
			log.Fatalf("config bootstrap failed: %v", err)
		}
		cfgPath = p
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", cfgPath, err)
	}
	if cfg.App.DataDir == "" {
		cfg.App.DataDir = dataDir
	}

	cfg, res := config.NormalizeAndValidate(cfg)
	for _, w := range res.Warnings {
		log.Printf("[config] warning: %s", w)
	}
	if !res.OK() {
		for _, e := range res.Errors {
			log.Printf("[config] error: %s", e)
		}
		log.Fatalf("config invalid: %s", cfgPath)
	}

	// An external scheduler firing before the previous pass finished must not
	// double-send the report.
	lock := flock.New(filepath.Join(cfg.App.DataDir, "jobalert.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("run lock: %v", err)
	}
	if !locked {
		log.Printf("[run] another run is in progress; exiting")
		return
	}
	defer lock.Unlock()

	runner := pipeline.New(cfg)
	runOnce := func(ctx context.Context) error {
		sum := runner.Run(ctx)
		log.Printf("[run] sources=%v unique=%d sent=%v", sum.PerSource, sum.Deduped, sum.Sent)
		return nil
	}

	ctx := context.Background()
	if *every > 0 {
		if *every < time.Minute {
			log.Fatalf("-every %s is below the one minute floor", *every)
		}
		scheduler.Every(ctx, *every, "jobalert", runOnce)
		return
	}
	_ = runOnce(ctx)
}
