package form

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a question sequence.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("form validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Validate checks the model invariants: every rule must bind to an existing
// option value, rule targets must be in-range indices other than the owning
// question, and quota values must be non-negative when set.
func Validate(questions []Question) error {
	collector := &issueCollector{}
	for qi, question := range questions {
		prefix := fmt.Sprintf("questions[%d]", qi)
		if strings.TrimSpace(question.Text) == "" {
			collector.add(prefix+".text", "is required")
		}
		if len(question.Options) == 0 {
			collector.add(prefix+".options", "must include at least one entry")
		}
		for ri, rule := range question.Logic {
			rulePrefix := fmt.Sprintf("%s.logic[%d]", prefix, ri)
			if !question.HasOption(rule.Option) {
				collector.add(rulePrefix+".option", fmt.Sprintf("unknown option %q", rule.Option))
			}
			for ti, target := range rule.ShowQuestions {
				targetPrefix := fmt.Sprintf("%s.showQuestions[%d]", rulePrefix, ti)
				if target == qi {
					collector.add(targetPrefix, "question cannot show itself")
				} else if target < 0 || target >= len(questions) {
					collector.add(targetPrefix, fmt.Sprintf("index %d out of range", target))
				}
			}
			validateQuota(collector, rulePrefix+".quotaCheck", rule.QuotaCheck)
		}
		validateQuota(collector, prefix+".quota", question.Quota)
	}
	return collector.result()
}

func validateQuota(collector *issueCollector, field string, quota *Quota) {
	if quota == nil {
		return
	}
	switch quota.Condition {
	case "=", "<", ">":
	default:
		collector.add(field+".condition", fmt.Sprintf("unknown condition %q", quota.Condition))
	}
	if quota.Value != nil && *quota.Value < 0 {
		collector.add(field+".value", "must be non-negative")
	}
}
