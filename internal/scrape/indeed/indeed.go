package indeed

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"jobalert-engine/internal/config"
	"jobalert-engine/internal/domain"
	"jobalert-engine/internal/scrape/types"
	"jobalert-engine/internal/scrape/util"

	"github.com/mmcdole/gofeed"
)

// Scraper reads the Indeed search RSS feed. The feed has no structured
// company field, so every record carries the Check Posting sentinel and
// dedup keys on (title, url) for this source.
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

func (s *Scraper) Name() string { return "indeed_rss" }

func (s *Scraper) Fetch(ctx context.Context) (types.ScrapeResult, error) {
	out := types.ScrapeResult{Source: s.Name()}
	src := s.cfg.Sources.IndeedRSS

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return out, fmt.Errorf("indeed build request: %w", err)
	}
	req.Header.Set("User-Agent", s.ua)

	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, src.URL); err != nil {
			return out, err
		}
	}
	res, err := s.hc.Do(req)
	if err != nil {
		return out, fmt.Errorf("indeed get feed: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return out, fmt.Errorf("indeed feed status %d", res.StatusCode)
	}

	feed, err := gofeed.NewParser().Parse(res.Body)
	if err != nil {
		return out, fmt.Errorf("indeed parse feed: %w", err)
	}

	keyword := strings.ToLower(src.TitleKeyword)
	runDate := time.Now().Format("2006-01-02")

	for _, item := range feed.Items {
		title := util.CleanText(item.Title)
		link := strings.TrimSpace(item.Link)
		if title == "" || link == "" {
			out.Skipped = append(out.Skipped, types.ExtractionError{
				Source: s.Name(),
				Reason: "item missing title or link",
			})
			continue
		}
		if keyword != "" && !strings.Contains(strings.ToLower(title), keyword) {
			continue
		}

		posted := runDate
		if item.Published != "" {
			posted = item.Published
		}

		// The description holds the posting blurb; the experience rule runs
		// on it after merge.
		exp := util.CleanText(item.Description)
		if exp == "" {
			exp = domain.NotSpecified
		}

		// no salary in the feed at all; left empty so the report can drop
		// the column when this is the only live source
		out.Records = append(out.Records, domain.JobRecord{
			Title:      title,
			Company:    domain.CheckPosting,
			Location:   src.Region,
			Experience: exp,
			Source:     "Indeed RSS",
			PostedDate: posted,
			URL:        link,
		})
	}

	return out, nil
}
