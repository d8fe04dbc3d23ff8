package scrape

import (
	"testing"

	"jobalert-engine/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestAcceptableExperience(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"not specified sentinel", domain.NotSpecified, true},
		{"fresher", "Fresher", true},
		{"fresher with big numbers", "Fresher (5-7 years also welcome)", true},
		{"entry level", "Entry Level", true},
		{"entry mixed case", "ENTRY-LEVEL role", true},
		{"zero to two", "0-2 years", true},
		{"exactly two", "2 years", true},
		{"upto one", "upto 1 year", true},
		{"three years", "3 years", false},
		{"five to seven", "5-7 years", false},
		{"two to five is max based", "2-5 years", false},
		{"no numbers no keywords", "Some experience preferred", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AcceptableExperience(tt.text))
		})
	}
}

func TestFilterRecordsPostMerge(t *testing.T) {
	in := []domain.JobRecord{
		{Title: "A", Experience: "5-7 years"},
		{Title: "B", Experience: "Fresher, upto 1 year"},
		{Title: "C", Experience: ""},
	}
	out := FilterRecords(in)
	assert.Len(t, out, 2)
	assert.Equal(t, "B", out[0].Title)
	assert.Equal(t, "C", out[1].Title)
}
