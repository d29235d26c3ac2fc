package response

import "formedit/internal/form"

// ResolveVisible computes the set of currently visible question indices.
//
// A question is unconditional when no rule's show list anywhere targets it;
// unconditional questions are always visible. Conditional questions become
// visible only when a rule naming them matches an explicitly recorded
// answer. Matching is one hop: a question revealed by a rule does not
// trigger its own rules unless the end user has actually answered it. This
// is deliberately not a fixed-point computation over a dependency graph.
func ResolveVisible(questions []form.Question, responses Responses) map[int]struct{} {
	conditional := conditionalSet(questions)

	visible := make(map[int]struct{})
	for qi := range questions {
		if _, ok := conditional[qi]; !ok {
			visible[qi] = struct{}{}
		}
	}

	for qi, question := range questions {
		if len(question.Logic) == 0 {
			continue
		}
		answer, answered := responses[qi]
		if !answered {
			continue
		}
		for _, rule := range question.Logic {
			if !ruleMatches(question.Kind, rule, answer) {
				continue
			}
			for _, target := range rule.ShowQuestions {
				if target >= 0 && target < len(questions) {
					visible[target] = struct{}{}
				}
			}
		}
	}
	return visible
}

// conditionalSet is the union of every rule's show list across the model.
func conditionalSet(questions []form.Question) map[int]struct{} {
	conditional := make(map[int]struct{})
	for _, question := range questions {
		for _, rule := range question.Logic {
			for _, target := range rule.ShowQuestions {
				conditional[target] = struct{}{}
			}
		}
	}
	return conditional
}

func ruleMatches(kind form.Kind, rule form.LogicRule, answer Value) bool {
	if kind == form.MultiSelect {
		return answer.containsMulti(rule.Option)
	}
	return answer.Scalar != "" && answer.Scalar == rule.Option
}
