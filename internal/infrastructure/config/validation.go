package config

import (
	"fmt"
	"math"
	"net/url"
	"strings"

	domainurl "github.com/bnema/meikai/internal/domain/url"
	"github.com/bnema/meikai/internal/logging"
)

const (
	minPollIntervalMs = 50
	maxPollIntervalMs = 60000
	maxTitleBarHeight = 200
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateWindow(config)...)
	validationErrors = append(validationErrors, validateSizing("window.sizing", config.Window.Sizing)...)
	validationErrors = append(validationErrors, validateSizing("panel.sizing", config.Panel.Sizing)...)
	validationErrors = append(validationErrors, validatePanel(config)...)
	validationErrors = append(validationErrors, validateURLMonitor(config)...)
	validationErrors = append(validationErrors, validateSearchEngine(config)...)
	validationErrors = append(validationErrors, validateSuggestions(config)...)

	// If there are validation errors, return them
	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if config.Logging.Level != "" {
		if _, ok := logging.ParseLevel(config.Logging.Level); !ok {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"logging.level must be one of: trace, debug, info, warn, error, fatal, disabled (got: %s)",
				config.Logging.Level,
			))
		}
	}
	switch config.Logging.Format {
	case "console", "json", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: console, json (got: %s)",
			config.Logging.Format,
		))
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_age_days must be non-negative")
	}
	return validationErrors
}

func validateWindow(config *Config) []string {
	var validationErrors []string
	if config.Window.TitleBarHeight < 0 || config.Window.TitleBarHeight > maxTitleBarHeight {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"window.title_bar_height must be between 0 and %d (got: %d)",
			maxTitleBarHeight, config.Window.TitleBarHeight,
		))
	}
	if config.Window.MaxWindowGroups < 0 {
		validationErrors = append(validationErrors, "window.max_window_groups must be non-negative")
	}
	if config.Window.MaxPopupDepth < 0 {
		validationErrors = append(validationErrors, "window.max_popup_depth must be non-negative")
	}
	return validationErrors
}

func validatePanel(config *Config) []string {
	limit := config.Panel.QuickLinksLimit
	if limit < minQuickLinksLimit || limit > maxQuickLinksLimit {
		return []string{fmt.Sprintf(
			"panel.quick_links_limit must be between %d and %d (got: %d)",
			minQuickLinksLimit, maxQuickLinksLimit, limit,
		)}
	}
	return nil
}

func validateSizing(prefix string, s SizingConfig) []string {
	var validationErrors []string

	switch s.Mode {
	case SizingModeFixed:
		if s.Width <= 0 || s.Height <= 0 {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"%s.width and %s.height must be positive in fixed mode", prefix, prefix,
			))
		}
	case SizingModePercent:
		validationErrors = append(validationErrors, validateFraction(prefix+".width_percent", s.WidthPercent)...)
		validationErrors = append(validationErrors, validateFraction(prefix+".height_percent", s.HeightPercent)...)
	case SizingModeAspect:
		validationErrors = append(validationErrors, validateFraction(prefix+".width_percent", s.WidthPercent)...)
		if !isPositiveFinite(s.AspectWidth) || !isPositiveFinite(s.AspectHeight) {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"%s.aspect_width and %s.aspect_height must be positive in aspect mode", prefix, prefix,
			))
		}
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"%s.mode must be one of: fixed, percent, aspect (got: %s)", prefix, s.Mode,
		))
	}

	if s.FallbackWidth <= 0 || s.FallbackHeight <= 0 {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"%s.fallback_width and %s.fallback_height must be positive", prefix, prefix,
		))
	}
	return validationErrors
}

func validateFraction(key string, v float64) []string {
	if !isPositiveFinite(v) || v > 1 {
		return []string{fmt.Sprintf("%s must be in (0, 1] (got: %g)", key, v)}
	}
	return nil
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func validateURLMonitor(config *Config) []string {
	ms := config.URLMonitor.PollIntervalMs
	if ms < minPollIntervalMs || ms > maxPollIntervalMs {
		return []string{fmt.Sprintf(
			"url_monitor.poll_interval_ms must be between %d and %d (got: %d)",
			minPollIntervalMs, maxPollIntervalMs, ms,
		)}
	}
	return nil
}

func validateSearchEngine(config *Config) []string {
	var validationErrors []string
	if config.Search.DefaultEngine == "" {
		validationErrors = append(validationErrors, "search.default_engine cannot be empty")
	} else {
		validationErrors = append(validationErrors, validateTemplate("search.default_engine", config.Search.DefaultEngine)...)
	}

	for key, shortcut := range config.Search.Shortcuts {
		if strings.ContainsAny(key, " \t") || key == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("search.shortcuts key %q must be a single word", key))
		}
		validationErrors = append(validationErrors, validateTemplate("search.shortcuts."+key+".url", shortcut.URL)...)
	}
	return validationErrors
}

func validateTemplate(key, tmpl string) []string {
	if !strings.Contains(tmpl, "%s") {
		return []string{fmt.Sprintf("%s must contain %%s placeholder for the search query", key)}
	}
	if _, err := domainurl.ParseWindowURL(strings.Replace(tmpl, "%s", "q", 1)); err != nil {
		return []string{fmt.Sprintf("%s is not a loadable URL: %v", key, err)}
	}
	return nil
}

func validateSuggestions(config *Config) []string {
	s := config.Search.Suggestions
	var validationErrors []string
	if s.MaxResults < 0 {
		validationErrors = append(validationErrors, "search.suggestions.max_results must be non-negative")
	}
	if !s.Enabled {
		return validationErrors
	}
	if s.TimeoutMs <= 0 {
		validationErrors = append(validationErrors, "search.suggestions.timeout_ms must be positive")
	}
	u, err := url.Parse(s.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"search.suggestions.endpoint must be an http(s) URL (got: %q)", s.Endpoint,
		))
	}
	return validationErrors
}
