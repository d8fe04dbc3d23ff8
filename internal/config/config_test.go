package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
app:
  report_file: alerts.xlsx
  pause_seconds: 1
sources:
  naukri:
    enabled: true
    url: https://example.com/jobs-search?k=data%20engineer
    base_url: https://example.com
  indeed_rss:
    enabled: true
    url: https://example.com/rss?q=data+engineer
  portals:
    enabled: true
    companies:
      - name: Cognizant
        url: https://careers.example.com/search-jobs
`

func writeTemp(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeTemp(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "alerts.xlsx", cfg.App.ReportFile)
	assert.Equal(t, 15, cfg.Fetch.TimeoutSeconds)
	assert.Equal(t, 25, cfg.Sources.Naukri.MaxItems)
	assert.Equal(t, "div.srp-jobtuple-wrapper", cfg.Sources.Naukri.Selectors.Card)
	assert.Equal(t, "India", cfg.Sources.Portals.Region)
	assert.Equal(t, "smtp.gmail.com", cfg.Mail.Host)
	assert.Equal(t, 465, cfg.Mail.Port)
}

func TestLoadOverlaysCredentialsFromEnv(t *testing.T) {
	t.Setenv("SENDER_EMAIL", "me@example.com")
	t.Setenv("EMAIL_PASSWORD", "app-password")
	t.Setenv("RECIPIENT_EMAIL", "you@example.com")

	cfg, err := Load(writeTemp(t, sampleYAML))
	require.NoError(t, err)
	assert.True(t, cfg.MailConfigured())
	assert.Equal(t, "me@example.com", cfg.Mail.Sender)
}

func TestMailConfiguredRequiresAllThree(t *testing.T) {
	t.Setenv("SENDER_EMAIL", "me@example.com")
	t.Setenv("EMAIL_PASSWORD", "")
	t.Setenv("RECIPIENT_EMAIL", "you@example.com")

	cfg, err := Load(writeTemp(t, sampleYAML))
	require.NoError(t, err)
	assert.False(t, cfg.MailConfigured())
}

func TestNormalizeAndValidate(t *testing.T) {
	cfg, err := Load(writeTemp(t, sampleYAML))
	require.NoError(t, err)

	out, res := NormalizeAndValidate(cfg)
	assert.True(t, res.OK(), "errors: %v", res.Errors)
	assert.Len(t, out.Sources.Portals.Companies, 1)
}

func TestValidateRejectsNoSources(t *testing.T) {
	cfg, err := Load(writeTemp(t, "app:\n  pause_seconds: 1\n"))
	require.NoError(t, err)

	_, res := NormalizeAndValidate(cfg)
	assert.False(t, res.OK())
}

func TestValidateRejectsBadHrefPattern(t *testing.T) {
	body := sampleYAML + "\n    href_pattern: \"([\"\n"
	cfg, err := Load(writeTemp(t, body))
	require.NoError(t, err)

	_, res := NormalizeAndValidate(cfg)
	assert.False(t, res.OK())
}

func TestEnsureUserConfigCopiesDefault(t *testing.T) {
	dir := t.TempDir()
	def := filepath.Join(dir, "default.yml")
	require.NoError(t, os.WriteFile(def, []byte(sampleYAML), 0o644))

	dataDir := filepath.Join(dir, "data")
	p, err := EnsureUserConfig(dataDir, def)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, "config.yml"), p)

	// second call returns the existing copy untouched
	require.NoError(t, os.WriteFile(p, []byte("app: {}\n"), 0o644))
	p2, err := EnsureUserConfig(dataDir, def)
	require.NoError(t, err)
	b, err := os.ReadFile(p2)
	require.NoError(t, err)
	assert.Equal(t, "app: {}\n", string(b))
}
