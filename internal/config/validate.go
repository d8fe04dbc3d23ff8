package config

import (
	"fmt"
	"regexp"
	"strings"
)

type Validation struct {
	Errors   []string
	Warnings []string
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy of cfg plus everything an
// operator should know before a run starts.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	// ---- Normalization ----

	out.Sources.Naukri.URL = strings.TrimSpace(out.Sources.Naukri.URL)
	out.Sources.Naukri.BaseURL = strings.TrimSpace(out.Sources.Naukri.BaseURL)
	out.Sources.IndeedRSS.URL = strings.TrimSpace(out.Sources.IndeedRSS.URL)

	var portals []Portal
	seen := map[string]bool{}
	for _, p := range out.Sources.Portals.Companies {
		p.Name = strings.TrimSpace(p.Name)
		p.URL = strings.TrimSpace(p.URL)
		if p.Name == "" || p.URL == "" {
			res.addWarn("portal entry with empty name or url dropped")
			continue
		}
		key := strings.ToLower(p.URL)
		if seen[key] {
			continue
		}
		seen[key] = true
		portals = append(portals, p)
	}
	out.Sources.Portals.Companies = portals

	// ---- Validation rules ----

	anySource := (out.Sources.Naukri.Enabled && out.Sources.Naukri.URL != "") ||
		(out.Sources.IndeedRSS.Enabled && out.Sources.IndeedRSS.URL != "") ||
		(out.Sources.Portals.Enabled && len(out.Sources.Portals.Companies) > 0)
	if !anySource {
		res.addErr("no sources enabled: enable naukri, indeed_rss, or portals")
	}

	if out.Sources.Naukri.Enabled && out.Sources.Naukri.URL == "" {
		res.addErr("sources.naukri.url is required when naukri is enabled")
	}
	if out.Sources.IndeedRSS.Enabled && out.Sources.IndeedRSS.URL == "" {
		res.addErr("sources.indeed_rss.url is required when indeed_rss is enabled")
	}
	if out.Sources.Portals.Enabled {
		if _, err := regexp.Compile(out.Sources.Portals.HrefPattern); err != nil {
			res.addErr("sources.portals.href_pattern does not compile: %v", err)
		}
	}

	if out.Fetch.TimeoutSeconds < 5 {
		res.addWarn("fetch.timeout_seconds is very low (%d); slow sources will be skipped often.", out.Fetch.TimeoutSeconds)
	}
	if out.App.PauseSeconds < 0 {
		res.addErr("app.pause_seconds must be >= 0")
	}
	if !strings.HasSuffix(out.App.ReportFile, ".xlsx") {
		res.addWarn("app.report_file %q has no .xlsx extension; the attachment will still be a spreadsheet.", out.App.ReportFile)
	}

	if out.Mail.Port != 465 {
		res.addWarn("mail.port %d is not the implicit-TLS SMTP port; delivery uses SSL/TLS on connect.", out.Mail.Port)
	}

	return out, res
}
