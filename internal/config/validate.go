package config

import (
	"fmt"
	"net/url"
	"strings"

	"formedit/internal/codegen"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// Validate checks a normalized config for correctness.
func Validate(cfg *Config) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		collector.add("server.addr", "is required")
	}

	if parsed, err := url.Parse(cfg.Submit.URL); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		collector.add("submit.url", fmt.Sprintf("not an absolute URL: %q", cfg.Submit.URL))
	}
	if cfg.Submit.TimeoutSeconds <= 0 {
		collector.add("submit.timeout_seconds", "must be positive")
	}

	if _, err := codegen.ParseTarget(cfg.Editor.DefaultView); err != nil {
		collector.add("editor.default_view", err.Error())
	}

	return collector.result()
}
