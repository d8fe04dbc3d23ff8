package naukri

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"jobalert-engine/internal/config"
	"jobalert-engine/internal/domain"
	"jobalert-engine/internal/scrape/types"
	"jobalert-engine/internal/scrape/util"

	"github.com/PuerkitoBio/goquery"
)

// Scraper extracts job cards from the Naukri search results page. The
// selector set comes from config because the site's class names change
// underneath us.
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

func (s *Scraper) Name() string { return "naukri" }

func (s *Scraper) Fetch(ctx context.Context) (types.ScrapeResult, error) {
	out := types.ScrapeResult{Source: s.Name()}
	src := s.cfg.Sources.Naukri

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return out, fmt.Errorf("naukri build request: %w", err)
	}
	req.Header.Set("User-Agent", s.ua)

	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, src.URL); err != nil {
			return out, err
		}
	}
	res, err := s.hc.Do(req)
	if err != nil {
		return out, fmt.Errorf("naukri get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return out, fmt.Errorf("naukri status %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return out, fmt.Errorf("naukri parse html: %w", err)
	}

	sel := src.Selectors
	runDate := time.Now().Format("2006-01-02")

	doc.Find(sel.Card).EachWithBreak(func(_ int, card *goquery.Selection) bool {
		if len(out.Records) >= src.MaxItems {
			return false
		}

		title := util.CleanText(card.Find(sel.Title).First().Text())
		company := util.CleanText(card.Find(sel.Company).First().Text())
		location := util.CleanText(card.Find(sel.Location).First().Text())

		if title == "" || company == "" || location == "" {
			frag, _ := card.Html()
			out.Skipped = append(out.Skipped, types.ExtractionError{
				Source:   s.Name(),
				Reason:   "missing title, company, or location",
				Fragment: util.CleanText(frag),
			})
			return true
		}

		salary := util.CleanText(card.Find(sel.Salary).First().Text())
		if salary == "" {
			salary = domain.NotSpecified
		}
		exp := util.CleanText(card.Find(sel.Exp).First().Text())
		if exp == "" {
			exp = domain.NotSpecified
		}

		href, _ := card.Find(sel.Title).First().Attr("href")
		jobURL := util.ResolveURL(src.BaseURL, href)
		if jobURL == "" {
			frag, _ := card.Html()
			out.Skipped = append(out.Skipped, types.ExtractionError{
				Source:   s.Name(),
				Reason:   "no usable job link",
				Fragment: util.CleanText(frag),
			})
			return true
		}

		out.Records = append(out.Records, domain.JobRecord{
			Title:      title,
			Company:    company,
			Location:   location,
			Salary:     salary,
			Experience: exp,
			Source:     "Naukri.com",
			PostedDate: runDate,
			URL:        jobURL,
		})
		return true
	})

	return out, nil
}
