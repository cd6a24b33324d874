package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	_ "time/tzdata" // zone database for minimal images
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Quota.DailyLimit < 0 {
		return fmt.Errorf("quota.daily_limit must be >= 0 (got %d)", c.Quota.DailyLimit)
	}

	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return fmt.Errorf("app.timezone: invalid IANA timezone %q: %w", c.App.Timezone, err)
	}
	c.App.Location = loc

	if err := c.AI.validate(); err != nil {
		return fmt.Errorf("ai: %w", err)
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate_limit: requests_per_second and burst must be > 0")
	}

	return nil
}

func (a *AIConfig) validate() error {
	a.Analyzer = strings.ToLower(strings.TrimSpace(a.Analyzer))

	if a.OpenAIAPIKey == "" {
		return fmt.Errorf("openai_api_key is required")
	}
	if _, err := url.ParseRequestURI(a.OpenAIBaseURL); err != nil {
		return fmt.Errorf("openai_base_url: %w", err)
	}

	switch a.Analyzer {
	case AnalyzerOpenAI:
	case AnalyzerAnthropic:
		if a.AnthropicAPIKey == "" {
			return fmt.Errorf("anthropic_api_key is required when analyzer is %q", AnalyzerAnthropic)
		}
	default:
		return fmt.Errorf("analyzer must be %q or %q (got %q)", AnalyzerOpenAI, AnalyzerAnthropic, a.Analyzer)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	if s.URL == "" {
		return fmt.Errorf("url is required")
	}
	if _, err := url.ParseRequestURI(s.URL); err != nil {
		return fmt.Errorf("url: %w", err)
	}
	if s.ServiceKey == "" {
		return fmt.Errorf("service_key is required")
	}
	s.URL = strings.TrimRight(s.URL, "/")
	return nil
}
