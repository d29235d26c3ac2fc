package payload

import (
	"encoding/json"
	"fmt"
	"math"
)

// DecodeError reports an invalid payload block with a human-readable reason.
// It is returned by value: a failed parse must never disturb the caller's
// last-known-good model.
type DecodeError struct {
	Reason string
}

// Error returns the decode failure message.
func (err *DecodeError) Error() string {
	return "decode payload: " + err.Reason
}

// Parse decodes a user-edited payload block into a Document. The block is
// first run through a tolerant cleanup pass (comments, single-quoted
// strings, trailing commas) because hand-edited code samples rarely stay
// strict JSON, then decoded defensively: wrong-typed fields coerce to their
// zero shape instead of failing, and non-integral or negative rule targets
// are dropped.
func Parse(text string) (Document, error) {
	cleaned := tolerantCleanup(text)
	var root jsonValue
	if err := json.Unmarshal([]byte(cleaned), &root); err != nil {
		return Document{}, &DecodeError{Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}
	if _, ok := root.objectValue(); !ok {
		return Document{}, &DecodeError{Reason: "payload is not an object"}
	}
	entries, ok := root.field("form").arrayValue()
	if !ok {
		return Document{}, &DecodeError{Reason: `missing "form" array`}
	}

	doc := Document{Form: make([]Entry, 0, len(entries))}
	for _, entry := range entries {
		doc.Form = append(doc.Form, coerceEntry(entry))
	}
	return doc, nil
}

func coerceEntry(value jsonValue) Entry {
	entry := Entry{
		Answer:  coerceStrings(value.field("answer")),
		Options: coerceStrings(value.field("options")),
		Logic:   coerceRules(value.field("logic")),
		Quota:   coerceQuota(value.field("quota")),
	}
	entry.Question, _ = value.field("question").stringValue()
	entry.Text, _ = value.field("text").stringValue()
	entry.Type, _ = value.field("type").stringValue()
	entry.ID, _ = value.field("id").stringValue()
	return entry
}

func coerceRules(value jsonValue) []Rule {
	elements, ok := value.arrayValue()
	if !ok {
		return []Rule{}
	}
	rules := make([]Rule, 0, len(elements))
	for _, element := range elements {
		option, ok := element.field("option").stringValue()
		if !ok {
			continue
		}
		rules = append(rules, Rule{
			Option:        option,
			ShowQuestions: coerceIndices(element.field("showQuestions")),
			QuotaCheck:    coerceQuota(element.field("quotaCheck")),
		})
	}
	return rules
}

func coerceIndices(value jsonValue) []int {
	elements, ok := value.arrayValue()
	if !ok {
		return []int{}
	}
	indices := make([]int, 0, len(elements))
	for _, element := range elements {
		if element.Kind != jsonNumber {
			continue
		}
		number := element.Number
		if math.IsNaN(number) || math.IsInf(number, 0) || number != math.Trunc(number) || number < 0 {
			continue
		}
		indices = append(indices, int(number))
	}
	return indices
}

func coerceQuota(value jsonValue) *Quota {
	object, ok := value.objectValue()
	if !ok {
		return nil
	}
	quota := &Quota{}
	quota.Condition, _ = value.field("condition").stringValue()
	if raw, exists := object["value"]; exists && raw.Kind == jsonNumber {
		number := int(raw.Number)
		quota.Value = &number
	}
	if flag := value.field("meetRequirement"); flag.Kind == jsonBool {
		quota.MeetRequirement = flag.Bool
	}
	return quota
}

func coerceStrings(value jsonValue) []string {
	elements, ok := value.arrayValue()
	if !ok {
		return []string{}
	}
	values := make([]string, 0, len(elements))
	for _, element := range elements {
		if text, ok := element.stringValue(); ok {
			values = append(values, text)
		}
	}
	return values
}
