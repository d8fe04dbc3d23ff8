package pipeline

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"jobalert-engine/internal/config"
	"jobalert-engine/internal/notify"
	"jobalert-engine/internal/report"
	"jobalert-engine/internal/scrape"
	"jobalert-engine/internal/scrape/indeed"
	"jobalert-engine/internal/scrape/naukri"
	"jobalert-engine/internal/scrape/portal"
	"jobalert-engine/internal/scrape/types"
	"jobalert-engine/internal/scrape/util"
)

// Notifier is the delivery stage. notify.Mailer satisfies it; tests swap in
// a recorder.
type Notifier interface {
	Send(reportPath string, recordCount int) bool
}

// Summary is what one full run reports back, for logging only.
type Summary struct {
	PerSource  map[string]int
	Merged     int
	Filtered   int
	Deduped    int
	ReportPath string
	Sent       bool
	Elapsed    time.Duration
}

type Runner struct {
	cfg      config.Config
	notifier Notifier
	fetchers []types.Fetcher
}

// New wires the enabled source adapters in their configured order. A pause
// between requests to the same host comes from the shared limiter.
func New(cfg config.Config) *Runner {
	limiter := util.NewHostLimiter(cfg.App.PauseSeconds)
	ua := util.BrowserUA(cfg.Fetch.UserAgent)

	var fetchers []types.Fetcher
	if cfg.Sources.Naukri.Enabled {
		fetchers = append(fetchers, naukri.New(cfg, limiter, ua))
	}
	if cfg.Sources.IndeedRSS.Enabled {
		fetchers = append(fetchers, indeed.New(cfg, limiter, ua))
	}
	if cfg.Sources.Portals.Enabled {
		fetchers = append(fetchers, portal.New(cfg, limiter, ua))
	}

	return &Runner{
		cfg:      cfg,
		notifier: notify.New(cfg),
		fetchers: fetchers,
	}
}

// Run executes one full pass: scrape, filter, dedup, report, notify. Every
// stage runs on whatever survived the previous one, including the empty set,
// so a day where every source is down still produces and sends a report.
// Nothing in here terminates the run.
func (r *Runner) Run(ctx context.Context) Summary {
	start := time.Now()
	log.Printf("[run] starting with %d sources", len(r.fetchers))

	merged, perSource := scrape.RunAll(ctx, r.fetchers)

	filtered := scrape.FilterRecords(merged)
	deduped := scrape.Dedupe(filtered)
	log.Printf("[run] merged=%d filtered=%d unique=%d", len(merged), len(filtered), len(deduped))

	sum := Summary{
		PerSource: perSource,
		Merged:    len(merged),
		Filtered:  len(filtered),
		Deduped:   len(deduped),
	}

	outPath := r.cfg.App.ReportFile
	if r.cfg.App.DataDir != "" && !filepath.IsAbs(outPath) {
		outPath = filepath.Join(r.cfg.App.DataDir, outPath)
	}

	path, err := report.Write(outPath, deduped)
	if err != nil {
		// no artifact means nothing to attach; notify is skipped but the run
		// still ends normally
		log.Printf("[run] report error: %v", err)
		sum.Elapsed = time.Since(start)
		return sum
	}
	sum.ReportPath = path
	log.Printf("[run] report written: %s", path)

	if r.cfg.MailConfigured() {
		sum.Sent = r.notifier.Send(path, len(deduped))
	} else {
		log.Printf("[run] email credentials not set; skipping delivery")
	}

	sum.Elapsed = time.Since(start)
	log.Printf("[run] done in %.2fs, %d unique jobs", sum.Elapsed.Seconds(), sum.Deduped)
	return sum
}
