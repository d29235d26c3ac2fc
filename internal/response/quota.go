package response

import "formedit/internal/form"

// QuotaResult reports one question's quota evaluation.
type QuotaResult struct {
	QuestionIndex int
	Condition     string
	Value         *int
	Passed        bool
}

// EvaluateQuotas checks each question's quota condition against the count of
// answers supplied for it. Questions without a quota are omitted rather than
// emitted with a vacuous pass. A quota whose value is unset never passes.
func EvaluateQuotas(questions []form.Question, responses Responses) []QuotaResult {
	var results []QuotaResult
	for qi, question := range questions {
		if question.Quota == nil {
			continue
		}
		quota := question.Quota
		count := responses[qi].count()
		results = append(results, QuotaResult{
			QuestionIndex: qi,
			Condition:     quota.Condition,
			Value:         quota.Value,
			Passed:        quotaPassed(quota, count),
		})
	}
	return results
}

func quotaPassed(quota *form.Quota, count int) bool {
	if quota.Value == nil {
		return false
	}
	switch quota.Condition {
	case "=":
		return count == *quota.Value
	case "<":
		return count < *quota.Value
	case ">":
		return count > *quota.Value
	default:
		return false
	}
}
