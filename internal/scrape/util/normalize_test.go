package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	assert.Equal(t, "Data Engineer", CleanText("  Data  Engineer \n"))
	assert.Equal(t, "", CleanText("   "))
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		name, base, href, want string
	}{
		{"relative", "https://www.naukri.com", "/job-listings-data-engineer-123", "https://www.naukri.com/job-listings-data-engineer-123"},
		{"absolute untouched", "https://www.naukri.com", "https://other.com/x", "https://other.com/x"},
		{"empty href", "https://www.naukri.com", "", ""},
		{"relative without base", "", "/x", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveURL(tt.base, tt.href))
		})
	}
}
