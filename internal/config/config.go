package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Portal struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// NaukriSelectors is the CSS selector set for the listing-site markup.
// Selectors drift whenever the site ships a redesign, so they live in config
// rather than code.
type NaukriSelectors struct {
	Card     string `yaml:"card"`
	Title    string `yaml:"title"`
	Company  string `yaml:"company"`
	Location string `yaml:"location"`
	Salary   string `yaml:"salary"`
	Exp      string `yaml:"exp"`
}

type Config struct {
	App struct {
		DataDir      string `yaml:"data_dir"`
		ReportFile   string `yaml:"report_file"`
		PauseSeconds int    `yaml:"pause_seconds"`
	} `yaml:"app"`

	Fetch struct {
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		UserAgent      string `yaml:"user_agent"` // empty = pick a browser UA per run
	} `yaml:"fetch"`

	Sources struct {
		Naukri struct {
			Enabled   bool            `yaml:"enabled"`
			URL       string          `yaml:"url"`
			BaseURL   string          `yaml:"base_url"`
			MaxItems  int             `yaml:"max_items"`
			Selectors NaukriSelectors `yaml:"selectors"`
		} `yaml:"naukri"`

		IndeedRSS struct {
			Enabled      bool   `yaml:"enabled"`
			URL          string `yaml:"url"`
			TitleKeyword string `yaml:"title_keyword"`
			Region       string `yaml:"region"`
		} `yaml:"indeed_rss"`

		Portals struct {
			Enabled     bool     `yaml:"enabled"`
			Title       string   `yaml:"title"`
			Region      string   `yaml:"region"`
			HrefPattern string   `yaml:"href_pattern"`
			MaxLinks    int      `yaml:"max_links"`
			Companies   []Portal `yaml:"companies"`
		} `yaml:"portals"`
	} `yaml:"sources"`

	Mail struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		// Credentials come from the environment, never from the file.
		Sender    string `yaml:"-"`
		Password  string `yaml:"-"`
		Recipient string `yaml:"-"`
	} `yaml:"mail"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	cfg.applyDefaults()
	cfg.overlayEnv()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.App.ReportFile == "" {
		c.App.ReportFile = "job_alerts.xlsx"
	}
	if c.App.PauseSeconds == 0 {
		c.App.PauseSeconds = 2
	}
	if c.Fetch.TimeoutSeconds == 0 {
		c.Fetch.TimeoutSeconds = 15
	}
	if c.Sources.Naukri.MaxItems == 0 {
		c.Sources.Naukri.MaxItems = 25
	}
	if c.Sources.Portals.MaxLinks == 0 {
		c.Sources.Portals.MaxLinks = 5
	}
	if c.Sources.Portals.Region == "" {
		c.Sources.Portals.Region = "India"
	}
	if c.Sources.Portals.HrefPattern == "" {
		c.Sources.Portals.HrefPattern = `(?i)data.*engineer|engineer.*data`
	}
	if c.Sources.IndeedRSS.TitleKeyword == "" {
		c.Sources.IndeedRSS.TitleKeyword = "data engineer"
	}
	if c.Sources.IndeedRSS.Region == "" {
		c.Sources.IndeedRSS.Region = "India"
	}
	s := &c.Sources.Naukri.Selectors
	if s.Card == "" {
		s.Card = "div.srp-jobtuple-wrapper"
	}
	if s.Title == "" {
		s.Title = "a.title"
	}
	if s.Company == "" {
		s.Company = "a.comp-name"
	}
	if s.Location == "" {
		s.Location = "span.location-wrapper"
	}
	if s.Salary == "" {
		s.Salary = "span.sal-wrap"
	}
	if s.Exp == "" {
		s.Exp = "span.exp-wrap"
	}
	if c.Mail.Host == "" {
		c.Mail.Host = "smtp.gmail.com"
	}
	if c.Mail.Port == 0 {
		c.Mail.Port = 465
	}
}

func (c *Config) overlayEnv() {
	c.Mail.Sender = os.Getenv("SENDER_EMAIL")
	c.Mail.Password = os.Getenv("EMAIL_PASSWORD")
	c.Mail.Recipient = os.Getenv("RECIPIENT_EMAIL")
}

// MailConfigured reports whether all three delivery credentials are present.
func (c Config) MailConfigured() bool {
	return c.Mail.Sender != "" && c.Mail.Password != "" && c.Mail.Recipient != ""
}
