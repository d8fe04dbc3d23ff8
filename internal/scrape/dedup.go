package scrape

import "jobalert-engine/internal/domain"

// Dedupe keeps the first record seen per identity key and drops the rest,
// preserving input order. Running it on an already-deduplicated slice is a
// no-op.
func Dedupe(records []domain.JobRecord) []domain.JobRecord {
	seen := map[string]bool{}
	out := make([]domain.JobRecord, 0, len(records))
	for _, r := range records {
		k := r.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, r)
	}
	return out
}
