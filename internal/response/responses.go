// Package response evaluates end-user answers against the question model:
// which questions are currently visible, and which quota conditions pass.
package response

// Value holds one end-user answer keyed by question index: a scalar choice
// for single-select questions or a set of choices for multi-select ones.
type Value struct {
	Scalar string
	Multi  []string
}

// Scalar wraps a single-select answer.
func Scalar(value string) Value {
	return Value{Scalar: value}
}

// Multi wraps a multi-select answer set.
func Multi(values ...string) Value {
	return Value{Multi: append([]string{}, values...)}
}

// Responses maps question indices to their current answers.
type Responses map[int]Value

// count returns the number of answers supplied: the size of the set for
// array-valued answers, one for a non-empty scalar, zero otherwise.
func (v Value) count() int {
	if v.Multi != nil {
		return len(v.Multi)
	}
	if v.Scalar != "" {
		return 1
	}
	return 0
}

func (v Value) containsMulti(option string) bool {
	for _, selected := range v.Multi {
		if selected == option {
			return true
		}
	}
	return false
}
