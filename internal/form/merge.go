package form

import "github.com/google/uuid"

// Merge reconciles a freshly parsed question sequence against a previously
// held one, carrying forward logic rules and quotas that have no structural
// representation. Questions match on exact text equality only; an edited
// title breaks the match and drops that question's behavioral metadata,
// which is why callers run a confirmation flow before committing a text
// change on a question with attached logic.
//
// Rules whose option no longer exists in the fresh options are discarded.
// Quotas are question-scoped and carry unconditionally. Indices are
// re-derived from position in the fresh sequence; Merge does not attempt to
// remap ShowQuestions targets across reorders.
func Merge(previous, fresh []Question) []Question {
	merged := make([]Question, 0, len(fresh))
	for _, parsed := range fresh {
		question := parsed.Clone()
		if match, ok := findByText(previous, question.Text); ok {
			if match.ID != "" {
				question.ID = match.ID
			}
			question.Logic = carryRules(match.Logic, question.Options)
			question.Quota = match.Quota.Clone()
		}
		if question.ID == "" {
			question.ID = uuid.NewString()
		}
		merged = append(merged, question)
	}
	return SanitizeRules(merged)
}

// SanitizeRules drops invalid rule content in place of raising errors:
// rules bound to options that do not exist, self-referencing targets, and
// targets outside the current question range. The rules themselves survive
// with empty target lists; only the invalid references are removed.
func SanitizeRules(questions []Question) []Question {
	for qi := range questions {
		question := &questions[qi]
		kept := question.Logic[:0]
		for _, rule := range question.Logic {
			if !question.HasOption(rule.Option) {
				continue
			}
			targets := rule.ShowQuestions[:0]
			for _, target := range rule.ShowQuestions {
				if target == qi || target < 0 || target >= len(questions) {
					continue
				}
				targets = append(targets, target)
			}
			rule.ShowQuestions = targets
			kept = append(kept, rule)
		}
		question.Logic = kept
	}
	return questions
}

func carryRules(previous []LogicRule, options []string) []LogicRule {
	var carried []LogicRule
	for _, rule := range previous {
		for _, option := range options {
			if rule.Option == option {
				carried = append(carried, rule.Clone())
				break
			}
		}
	}
	return carried
}

func findByText(questions []Question, text string) (Question, bool) {
	for _, question := range questions {
		if question.Text == text {
			return question, true
		}
	}
	return Question{}, false
}
