package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"capm-calculator/internal/chart"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Log          LogConfig          `yaml:"log"`
	Defaults     FormDefaults       `yaml:"defaults"`
	Chart        ChartConfig        `yaml:"chart"`
	Presentation PresentationConfig `yaml:"presentation"`
}

type ServerConfig struct {
	Port        string   `yaml:"port"`
	Env         string   `yaml:"env"` // "development" or "production"
	StaticDir   string   `yaml:"static_dir"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// FormDefaults are the prefilled input values, in form units (rates in percent).
type FormDefaults struct {
	RiskFreeRatePct   float64 `yaml:"risk_free_rate_pct"`
	Beta              float64 `yaml:"beta"`
	MarketReturnPct   float64 `yaml:"market_return_pct"`
	ExpectedReturnPct float64 `yaml:"expected_return_pct"`
}

type ChartConfig struct {
	SampleCount int           `yaml:"sample_count"`
	BetaMax     float64       `yaml:"beta_max"`
	Width       int           `yaml:"width"`
	Height      int           `yaml:"height"`
	CacheTTL    time.Duration `yaml:"cache_ttl"` // 0 disables the render cache
}

// PresentationConfig holds the cosmetic behaviour of the calculate endpoint.
type PresentationConfig struct {
	ProcessingDelay time.Duration `yaml:"processing_delay"`
	ImagePath       string        `yaml:"image_path"`
}

// Default returns the stock calculator settings.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:      "8080",
			Env:       "development",
			StaticDir: "./web/dist",
		},
		Log: LogConfig{Level: "info"},
		Defaults: FormDefaults{
			RiskFreeRatePct:   2.0,
			Beta:              1.0,
			MarketReturnPct:   8.0,
			ExpectedReturnPct: 5.0,
		},
		Chart: ChartConfig{
			SampleCount: chart.DefaultSampleCount,
			BetaMax:     chart.DefaultBetaMax,
			Width:       800,
			Height:      450,
			CacheTTL:    time.Hour,
		},
		Presentation: PresentationConfig{
			ProcessingDelay: 2 * time.Second,
			ImagePath:       "mario.gif",
		},
	}
}

// Load reads path over the defaults, applies env overrides and validates.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked reads path over the defaults, without env overrides or validation.
func LoadUnchecked(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

// ApplyEnv overlays environment variables onto c.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("API_PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("API_ENV"); v != "" {
		c.Server.Env = v
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		c.Server.StaticDir = v
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		c.Server.CORSOrigins = splitList(v)
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("CAPM_IMAGE_PATH"); v != "" {
		c.Presentation.ImagePath = v
	}
	if v := os.Getenv("CAPM_PROCESSING_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("CAPM_PROCESSING_DELAY: %w", err)
		}
		c.Presentation.ProcessingDelay = d
	}
	if v := os.Getenv("CAPM_CHART_SAMPLES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CAPM_CHART_SAMPLES: %w", err)
		}
		c.Chart.SampleCount = n
	}
	return nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("server.port must be numeric: %q", c.Server.Port)
	}
	d := c.Defaults
	if d.RiskFreeRatePct < 0 || d.Beta < 0 || d.MarketReturnPct < 0 || d.ExpectedReturnPct < 0 {
		return errors.New("defaults must be >= 0")
	}
	if c.Chart.SampleCount < 2 {
		return errors.New("chart.sample_count must be >= 2")
	}
	if c.Chart.BetaMax <= 0 {
		return errors.New("chart.beta_max must be > 0")
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return errors.New("chart.width and chart.height must be > 0")
	}
	if c.Chart.CacheTTL < 0 {
		return errors.New("chart.cache_ttl must be >= 0")
	}
	if c.Presentation.ProcessingDelay < 0 {
		return errors.New("presentation.processing_delay must be >= 0")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// CurveOptions turns the chart section into builder options.
func (c *Config) CurveOptions() []chart.CurveOption {
	return []chart.CurveOption{
		chart.WithSampleCount(c.Chart.SampleCount),
		chart.WithBetaMax(c.Chart.BetaMax),
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
