package portal

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"jobalert-engine/internal/config"
	"jobalert-engine/internal/domain"
	"jobalert-engine/internal/scrape/types"
	"jobalert-engine/internal/scrape/util"

	"github.com/PuerkitoBio/goquery"
)

// Scraper walks a list of company career portals and collects anchors whose
// href matches the configured keyword pattern. Portal pages expose almost no
// structure, so records carry fixed title/location and portal sentinels; the
// link is the payload. One unreachable portal skips only that portal.
type Scraper struct {
	cfg     config.Config
	hc      *http.Client
	limiter *util.HostLimiter
	ua      string
}

func New(cfg config.Config, limiter *util.HostLimiter, ua string) *Scraper {
	return &Scraper{
		cfg:     cfg,
		hc:      &http.Client{Timeout: time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second},
		limiter: limiter,
		ua:      ua,
	}
}

func (s *Scraper) Name() string { return "portals" }

func (s *Scraper) Fetch(ctx context.Context) (types.ScrapeResult, error) {
	out := types.ScrapeResult{Source: s.Name()}
	src := s.cfg.Sources.Portals

	pattern, err := regexp.Compile(src.HrefPattern)
	if err != nil {
		return out, fmt.Errorf("portal href pattern: %w", err)
	}

	title := src.Title
	if title == "" {
		title = "Data Engineer"
	}
	runDate := time.Now().Format("2006-01-02")

	for _, co := range src.Companies {
		records, err := s.fetchPortal(ctx, co, pattern, title, runDate)
		if err != nil {
			out.Skipped = append(out.Skipped, types.ExtractionError{
				Source: s.Name(),
				Reason: fmt.Sprintf("portal %s: %v", co.Name, err),
			})
			continue
		}
		out.Records = append(out.Records, records...)
	}

	return out, nil
}

func (s *Scraper) fetchPortal(ctx context.Context, co config.Portal, pattern *regexp.Regexp, title, runDate string) ([]domain.JobRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, co.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", s.ua)

	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, co.URL); err != nil {
			return nil, err
		}
	}
	res, err := s.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("status %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var records []domain.JobRecord
	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		if len(records) >= s.cfg.Sources.Portals.MaxLinks {
			return false
		}
		href, _ := a.Attr("href")
		if !pattern.MatchString(href) {
			return true
		}
		link := util.ResolveURL(co.URL, href)
		if link == "" {
			return true
		}

		records = append(records, domain.JobRecord{
			Title:      title,
			Company:    co.Name,
			Location:   s.cfg.Sources.Portals.Region,
			Salary:     domain.CheckPortal,
			Experience: "0-2 years",
			Source:     co.Name + " Portal",
			PostedDate: runDate,
			URL:        link,
		})
		return true
	})

	return records, nil
}
