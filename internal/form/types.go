package form

import "github.com/google/uuid"

// Placeholder values used when a representation omits a field.
const (
	PlaceholderText   = "Untitled Question"
	PlaceholderOption = "Option 1"
	NewQuestionText   = "New Question"
)

// Kind distinguishes single-select (radio) from multi-select (checkbox)
// questions. It determines whether a response is a scalar or a set.
type Kind int

const (
	SingleSelect Kind = iota
	MultiSelect
)

// Wire returns the serialized form of the kind.
func (k Kind) Wire() string {
	if k == MultiSelect {
		return "checkbox"
	}
	return "radio"
}

// KindFromWire maps a serialized type to a Kind. Anything other than
// "checkbox" is treated as single-select.
func KindFromWire(value string) Kind {
	if value == "checkbox" {
		return MultiSelect
	}
	return SingleSelect
}

// Quota is a numeric threshold condition over the count of answers supplied
// for a question. Value is nil only when unset.
type Quota struct {
	Condition       string
	Value           *int
	MeetRequirement bool
}

// Clone returns a deep copy of the quota.
func (q *Quota) Clone() *Quota {
	if q == nil {
		return nil
	}
	clone := *q
	if q.Value != nil {
		value := *q.Value
		clone.Value = &value
	}
	return &clone
}

// LogicRule binds one option value of its owning question to the set of
// question indices to reveal when that option is selected. Rules key on
// option value; with duplicate option values the first match wins, a known
// ambiguity kept for compatibility.
type LogicRule struct {
	Option        string
	ShowQuestions []int
	QuotaCheck    *Quota
}

// Clone returns a deep copy of the rule.
func (r LogicRule) Clone() LogicRule {
	clone := r
	clone.ShowQuestions = append([]int(nil), r.ShowQuestions...)
	clone.QuotaCheck = r.QuotaCheck.Clone()
	return clone
}

// Question is the canonical unit of the form model. A question's position in
// the sequence is its index; indices are not stable identifiers, which is why
// each question also carries an opaque ID assigned at creation.
type Question struct {
	ID      string
	Text    string
	Kind    Kind
	Options []string
	Logic   []LogicRule
	Quota   *Quota
}

// New creates an empty question with placeholder content and a fresh ID.
func New() Question {
	return Question{
		ID:      uuid.NewString(),
		Text:    NewQuestionText,
		Kind:    SingleSelect,
		Options: []string{PlaceholderOption},
	}
}

// Clone returns a deep copy of the question.
func (q Question) Clone() Question {
	clone := q
	clone.Options = append([]string(nil), q.Options...)
	clone.Logic = nil
	for _, rule := range q.Logic {
		clone.Logic = append(clone.Logic, rule.Clone())
	}
	clone.Quota = q.Quota.Clone()
	return clone
}

// CloneAll returns a deep copy of a question sequence.
func CloneAll(questions []Question) []Question {
	if questions == nil {
		return nil
	}
	cloned := make([]Question, 0, len(questions))
	for _, question := range questions {
		cloned = append(cloned, question.Clone())
	}
	return cloned
}

// HasOption reports whether the question has an option with the given value.
func (q Question) HasOption(value string) bool {
	for _, option := range q.Options {
		if option == value {
			return true
		}
	}
	return false
}

// RuleFor returns the first rule bound to the given option value.
func (q Question) RuleFor(option string) (LogicRule, bool) {
	for _, rule := range q.Logic {
		if rule.Option == option {
			return rule, true
		}
	}
	return LogicRule{}, false
}
