package editor

import (
	"strconv"
	"strings"

	"formedit/internal/form"
)

// AddQuestion appends an empty question with placeholder content.
func (s Session) AddQuestion() Session {
	questions := form.CloneAll(s.Questions)
	return s.commit(append(questions, form.New()))
}

// RemoveQuestion deletes the question at the given index and clears logic
// and quotas on every surviving question. Index shifts can silently misroute
// show-list targets, so removal invalidates behavioral metadata wholesale
// rather than attempting a remap.
func (s Session) RemoveQuestion(index int) Session {
	if index < 0 || index >= len(s.Questions) {
		return s
	}
	questions := form.CloneAll(s.Questions)
	questions = append(questions[:index], questions[index+1:]...)
	for qi := range questions {
		questions[qi].Logic = nil
		questions[qi].Quota = nil
	}
	return s.commit(questions)
}

// SetQuestionText changes a question title. When the question carries logic
// the change is parked as a pending confirmation instead, because the text
// is the merge identity and committing it would drop the attached rules.
func (s Session) SetQuestionText(index int, text string) Session {
	if index < 0 || index >= len(s.Questions) {
		return s
	}
	if len(s.Questions[index].Logic) > 0 {
		s.Pending = &TextChange{Index: index, OldText: s.Questions[index].Text, NewText: text}
		return s
	}
	questions := form.CloneAll(s.Questions)
	questions[index].Text = text
	return s.commit(questions)
}

// ConfirmTextChange applies the pending title change, keeping or clearing
// the question's logic as decided by the user.
func (s Session) ConfirmTextChange(keepLogic bool) Session {
	if s.Pending == nil {
		return s
	}
	change := *s.Pending
	s.Pending = nil
	if change.Index < 0 || change.Index >= len(s.Questions) {
		return s
	}
	questions := form.CloneAll(s.Questions)
	questions[change.Index].Text = change.NewText
	if !keepLogic {
		questions[change.Index].Logic = nil
	}
	return s.commit(questions)
}

// CancelTextChange discards the pending title change.
func (s Session) CancelTextChange() Session {
	s.Pending = nil
	return s
}

// ToggleKind flips a question between single-select and multi-select.
func (s Session) ToggleKind(index int) Session {
	if index < 0 || index >= len(s.Questions) {
		return s
	}
	questions := form.CloneAll(s.Questions)
	if questions[index].Kind == form.MultiSelect {
		questions[index].Kind = form.SingleSelect
	} else {
		questions[index].Kind = form.MultiSelect
	}
	return s.commit(questions)
}

// AddOption appends a numbered placeholder option.
func (s Session) AddOption(index int) Session {
	if index < 0 || index >= len(s.Questions) {
		return s
	}
	questions := form.CloneAll(s.Questions)
	name := "Option " + strconv.Itoa(len(questions[index].Options)+1)
	questions[index].Options = append(questions[index].Options, name)
	return s.commit(questions)
}

// RemoveOption deletes an option and drops the question's rules bound to
// that option value. With duplicate option values every rule on the value is
// dropped even though another copy survives; this mirrors value-keyed rule
// matching everywhere else.
func (s Session) RemoveOption(index, optionIndex int) Session {
	if index < 0 || index >= len(s.Questions) {
		return s
	}
	questions := form.CloneAll(s.Questions)
	question := &questions[index]
	if optionIndex < 0 || optionIndex >= len(question.Options) {
		return s
	}
	removed := question.Options[optionIndex]
	question.Options = append(question.Options[:optionIndex], question.Options[optionIndex+1:]...)
	kept := question.Logic[:0]
	for _, rule := range question.Logic {
		if rule.Option != removed {
			kept = append(kept, rule)
		}
	}
	question.Logic = kept
	return s.commit(questions)
}

// SetOptionText renames an option and rebinds the first rule attached to the
// old value so the rule follows the rename.
func (s Session) SetOptionText(index, optionIndex int, text string) Session {
	if index < 0 || index >= len(s.Questions) {
		return s
	}
	questions := form.CloneAll(s.Questions)
	question := &questions[index]
	if optionIndex < 0 || optionIndex >= len(question.Options) {
		return s
	}
	previous := question.Options[optionIndex]
	question.Options[optionIndex] = text
	for ri := range question.Logic {
		if question.Logic[ri].Option == previous {
			question.Logic[ri].Option = text
			break
		}
	}
	return s.commit(questions)
}

// SaveLogic installs the rule for one option of one question, replacing any
// existing rule on that option. Self-references and out-of-range targets are
// filtered silently; an empty target list is legal and kept. Unknown option
// values are ignored.
func (s Session) SaveLogic(index int, option string, targets []int) Session {
	if index < 0 || index >= len(s.Questions) {
		return s
	}
	if !s.Questions[index].HasOption(option) {
		return s
	}
	questions := form.CloneAll(s.Questions)
	question := &questions[index]
	kept := question.Logic[:0]
	for _, rule := range question.Logic {
		if rule.Option != option {
			kept = append(kept, rule)
		}
	}
	question.Logic = append(kept, form.LogicRule{
		Option:        option,
		ShowQuestions: sanitizeTargets(index, len(questions), targets),
	})
	return s.commit(questions)
}

// RemoveLogic deletes the rule bound to the given option value.
func (s Session) RemoveLogic(index int, option string) Session {
	if index < 0 || index >= len(s.Questions) {
		return s
	}
	questions := form.CloneAll(s.Questions)
	question := &questions[index]
	kept := question.Logic[:0]
	for _, rule := range question.Logic {
		if rule.Option != option {
			kept = append(kept, rule)
		}
	}
	question.Logic = kept
	return s.commit(questions)
}

// SetQuota attaches a quota to a question, replacing any existing one.
func (s Session) SetQuota(index int, quota *form.Quota) Session {
	if index < 0 || index >= len(s.Questions) {
		return s
	}
	questions := form.CloneAll(s.Questions)
	questions[index].Quota = quota.Clone()
	return s.commit(questions)
}

// ClearQuota removes a question's quota.
func (s Session) ClearQuota(index int) Session {
	return s.SetQuota(index, nil)
}

// ParseShowList parses a 1-based, comma-separated question number list (the
// logic editing surface convention) into 0-based indices. Entries that do
// not parse or fall below 1 are dropped.
func ParseShowList(csv string) []int {
	var targets []int
	for _, field := range strings.Split(csv, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		number, err := strconv.Atoi(field)
		if err != nil || number < 1 {
			continue
		}
		targets = append(targets, number-1)
	}
	return targets
}

// sanitizeTargets dedupes targets preserving order and drops self-references
// and out-of-range indices.
func sanitizeTargets(owner, total int, targets []int) []int {
	seen := make(map[int]struct{}, len(targets))
	sanitized := make([]int, 0, len(targets))
	for _, target := range targets {
		if target == owner || target < 0 || target >= total {
			continue
		}
		if _, dup := seen[target]; dup {
			continue
		}
		seen[target] = struct{}{}
		sanitized = append(sanitized, target)
	}
	return sanitized
}
