package scrape

import (
	"context"
	"log"

	"jobalert-engine/internal/domain"
	"jobalert-engine/internal/scrape/types"
)

// RunAll invokes every fetcher in order and merges their records. One broken
// source never stops the next one: a fetcher error is logged and the loop
// moves on. Per-entry extraction failures arrive inside the result and are
// logged here with their fragment so markup drift shows up in the run log.
func RunAll(ctx context.Context, fetchers []types.Fetcher) (merged []domain.JobRecord, perSource map[string]int) {
	perSource = make(map[string]int, len(fetchers))

	for _, f := range fetchers {
		log.Printf("[%s] Running...", f.Name())

		res, err := f.Fetch(ctx)
		if err != nil {
			log.Printf("[%s] fetch error: %v", f.Name(), err)
			perSource[f.Name()] = 0
			continue
		}

		for _, skip := range res.Skipped {
			log.Printf("[%s] entry skipped: %v", f.Name(), skip)
		}

		perSource[f.Name()] = len(res.Records)
		log.Printf("[%s] collected %d records (%d skipped)",
			f.Name(), len(res.Records), len(res.Skipped))
		merged = append(merged, res.Records...)
	}

	return merged, perSource
}
