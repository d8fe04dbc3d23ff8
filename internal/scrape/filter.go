package scrape

import (
	"regexp"
	"strconv"
	"strings"

	"jobalert-engine/internal/domain"
)

var digits = regexp.MustCompile(`\d+`)

// AcceptableExperience decides whether an experience requirement fits the
// at-most-two-years rule. Missing data is not evidence of a mismatch, so
// empty text passes. "Fresher" and "entry level" wordings pass regardless of
// any numbers around them. Otherwise the largest integer in the text decides:
// "0-2 years" passes, "5-7 years" does not. Text with no numbers passes.
func AcceptableExperience(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" || text == domain.NotSpecified {
		return true
	}

	low := strings.ToLower(text)
	if strings.Contains(low, "fresher") || strings.Contains(low, "entry") {
		return true
	}

	maxYears := -1
	for _, m := range digits.FindAllString(low, -1) {
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		if n > maxYears {
			maxYears = n
		}
	}
	if maxYears < 0 {
		return true
	}
	return maxYears <= 2
}

// FilterRecords applies the experience rule once, after all sources are
// merged, and returns the surviving records in order.
func FilterRecords(records []domain.JobRecord) []domain.JobRecord {
	out := make([]domain.JobRecord, 0, len(records))
	for _, r := range records {
		if AcceptableExperience(r.Experience) {
			out = append(out, r)
		}
	}
	return out
}
