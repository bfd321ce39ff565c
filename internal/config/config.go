package config

import "time"

// CMS holds the remote content endpoint settings.
type CMS struct {
	Endpoint   string        `mapstructure:"endpoint"`
	Timeout    time.Duration `mapstructure:"timeout"`
	Revalidate time.Duration `mapstructure:"revalidate"`
}

// Config is the application configuration, read from config.yaml with
// GTAVERSO_ environment overrides.
type Config struct {
	SiteTitle       string `mapstructure:"siteTitle"`
	SiteDescription string `mapstructure:"siteDescription"`
	BaseURL         string `mapstructure:"baseURL"`
	OutputDir       string `mapstructure:"outputDir"`
	ContentDir      string `mapstructure:"contentDir"`
	LayoutsDir      string `mapstructure:"layoutsDir"`
	StaticDir       string `mapstructure:"staticDir"`
	Source          string `mapstructure:"source"`
	CMS             CMS    `mapstructure:"cms"`
}
