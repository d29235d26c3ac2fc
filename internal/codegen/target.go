// Package codegen renders the question model into per-language code samples
// and locates the single payload block embedded in them.
package codegen

import "fmt"

// Target selects one of the fixed textual views of the form definition.
type Target string

const (
	TargetMarkup     Target = "markup"
	TargetPython     Target = "python"
	TargetVBScript   Target = "vbscript"
	TargetJavaScript Target = "javascript"
)

// Targets lists every supported target in presentation order.
func Targets() []Target {
	return []Target{TargetMarkup, TargetPython, TargetVBScript, TargetJavaScript}
}

// ParseTarget maps a target name to a Target.
func ParseTarget(name string) (Target, error) {
	switch Target(name) {
	case TargetMarkup, TargetPython, TargetVBScript, TargetJavaScript:
		return Target(name), nil
	default:
		return "", fmt.Errorf("unknown target %q", name)
	}
}

// Anchor returns the marker phrase that precedes the embedded payload block
// in this target's code sample. The markup target embeds no block.
func (t Target) Anchor() string {
	switch t {
	case TargetPython:
		return "payload = "
	case TargetVBScript:
		return "Set payload = "
	case TargetJavaScript:
		return "const payload = "
	default:
		return ""
	}
}
