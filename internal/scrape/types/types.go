package types

import (
	"context"
	"fmt"

	"jobalert-engine/internal/domain"
)

// ScrapeResult is what one source adapter hands back: the records it could
// extract plus a typed failure per entry it could not. Skipped entries are
// logged by the caller, never silently dropped.
type ScrapeResult struct {
	Source  string
	Records []domain.JobRecord
	Skipped []ExtractionError
}

// ExtractionError describes one candidate entry that failed extraction.
// Fragment keeps enough raw context to diagnose markup drift.
type ExtractionError struct {
	Source   string
	Reason   string
	Fragment string
}

func (e ExtractionError) Error() string {
	if e.Fragment == "" {
		return fmt.Sprintf("%s: %s", e.Source, e.Reason)
	}
	return fmt.Sprintf("%s: %s (fragment: %.80s)", e.Source, e.Reason, e.Fragment)
}

type Fetcher interface {
	Name() string
	Fetch(ctx context.Context) (ScrapeResult, error)
}
