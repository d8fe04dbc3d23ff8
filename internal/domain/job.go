package domain

import "strings"

// Sentinel values used when a source cannot supply a field. Keeping them in
// one place lets dedup tell a real company name from a placeholder.
const (
	NotSpecified = "Not Specified"
	CheckPosting = "Check Posting"
	CheckPortal  = "Check Portal"
)

// JobRecord is the unit entity flowing through the pipeline. Everything is
// free text; PostedDate is whatever the source reported, or the run date.
type JobRecord struct {
	Title      string
	Company    string
	Location   string
	Salary     string
	Experience string
	Source     string
	PostedDate string
	URL        string
}

// Key is the dedup identity. Records with a real company name and a location
// key on (company, title, location); records whose source could not isolate
// the company fall back to (title, url).
func (j JobRecord) Key() string {
	if j.Location != "" && j.Company != "" && !IsSentinel(j.Company) {
		return strings.ToLower(j.Company + "|" + j.Title + "|" + j.Location)
	}
	return strings.ToLower(j.Title + "|" + j.URL)
}

func IsSentinel(s string) bool {
	switch s {
	case NotSpecified, CheckPosting, CheckPortal:
		return true
	}
	return false
}
