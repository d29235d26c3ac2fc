// Package payload implements the data-interchange document embedded in
// generated code samples and handed to the submission boundary:
// {"form": [{question, answer, type, options, logic, quota}]}.
package payload

import (
	"github.com/google/uuid"

	"formedit/internal/form"
)

// Document is the payload document wrapping the serialized form.
type Document struct {
	Form []Entry `json:"form"`
}

// Entry is the serialized shape of one question. Answer is always emitted
// empty: the document describes a definition, not a response. ID carries the
// opaque question identity through code-sample round trips and is omitted
// from externally-authored payloads that never had one.
type Entry struct {
	Question string   `json:"question"`
	Answer   []string `json:"answer"`
	Type     string   `json:"type"`
	Options  []string `json:"options"`
	Logic    []Rule   `json:"logic"`
	Quota    *Quota   `json:"quota"`
	ID       string   `json:"id,omitempty"`
	Text     string   `json:"text,omitempty"`
}

// Rule is the serialized shape of a logic rule.
type Rule struct {
	Option        string `json:"option"`
	ShowQuestions []int  `json:"showQuestions"`
	QuotaCheck    *Quota `json:"quotaCheck,omitempty"`
}

// Quota is the serialized shape of a quota condition.
type Quota struct {
	Condition       string `json:"condition"`
	Value           *int   `json:"value"`
	MeetRequirement bool   `json:"meetRequirement"`
}

// Encode maps the canonical model to a payload document.
func Encode(questions []form.Question) Document {
	doc := Document{Form: make([]Entry, 0, len(questions))}
	for _, question := range questions {
		entry := Entry{
			Question: question.Text,
			Answer:   []string{},
			Type:     question.Kind.Wire(),
			Options:  append([]string{}, question.Options...),
			Logic:    make([]Rule, 0, len(question.Logic)),
			Quota:    quotaFromModel(question.Quota),
			ID:       question.ID,
		}
		for _, rule := range question.Logic {
			entry.Logic = append(entry.Logic, Rule{
				Option:        rule.Option,
				ShowQuestions: append([]int{}, rule.ShowQuestions...),
				QuotaCheck:    quotaFromModel(rule.QuotaCheck),
			})
		}
		doc.Form = append(doc.Form, entry)
	}
	return doc
}

// Decode maps a payload document back to the canonical model, applying the
// definition defaults: placeholder text when the question field (or its
// alternate) is absent, single-select unless the type is explicitly
// "checkbox", a single placeholder option when none are given, and a fresh
// identity when the document carries none.
func Decode(doc Document) []form.Question {
	questions := make([]form.Question, 0, len(doc.Form))
	for _, entry := range doc.Form {
		question := form.Question{
			Text:    entryText(entry),
			Kind:    form.KindFromWire(entry.Type),
			Options: append([]string{}, entry.Options...),
			Quota:   quotaToModel(entry.Quota),
			ID:      entry.ID,
		}
		if len(question.Options) == 0 {
			question.Options = []string{form.PlaceholderOption}
		}
		for _, rule := range entry.Logic {
			question.Logic = append(question.Logic, form.LogicRule{
				Option:        rule.Option,
				ShowQuestions: append([]int{}, rule.ShowQuestions...),
				QuotaCheck:    quotaToModel(rule.QuotaCheck),
			})
		}
		if question.ID == "" {
			question.ID = uuid.NewString()
		}
		questions = append(questions, question)
	}
	return questions
}

func entryText(entry Entry) string {
	if entry.Question != "" {
		return entry.Question
	}
	if entry.Text != "" {
		return entry.Text
	}
	return form.PlaceholderText
}

func quotaFromModel(quota *form.Quota) *Quota {
	if quota == nil {
		return nil
	}
	wire := &Quota{Condition: quota.Condition, MeetRequirement: quota.MeetRequirement}
	if quota.Value != nil {
		value := *quota.Value
		wire.Value = &value
	}
	return wire
}

func quotaToModel(quota *Quota) *form.Quota {
	if quota == nil {
		return nil
	}
	model := &form.Quota{Condition: quota.Condition, MeetRequirement: quota.MeetRequirement}
	if quota.Value != nil {
		value := *quota.Value
		model.Value = &value
	}
	return model
}
