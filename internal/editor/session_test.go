package editor

import (
	"strings"
	"testing"

	"formedit/internal/codegen"
	"formedit/internal/payload"
)

// TestNewSessionParsesSeed verifies a fresh session holds the seed document's
// questions and a canonical markup source.
func TestNewSessionParsesSeed(t *testing.T) {
	session := NewSession("")
	if len(session.Questions) != 1 {
		t.Fatalf("expected one seed question, got %d", len(session.Questions))
	}
	if session.Questions[0].Text != "What is your favorite color?" {
		t.Fatalf("unexpected seed question %q", session.Questions[0].Text)
	}
	if session.Questions[0].ID == "" {
		t.Fatalf("expected identity assigned at load")
	}
	if session.View != codegen.TargetMarkup || session.Source != session.Markup {
		t.Fatalf("expected markup view sourced from canonical markup")
	}
}

// TestSetSourceMarkupKeepsLogicThroughReparse verifies a markup edit merges
// against the held model instead of discarding behavioral metadata.
func TestSetSourceMarkupKeepsLogicThroughReparse(t *testing.T) {
	session := NewSession("")
	session = session.SaveLogic(0, "Blue", []int{})
	if len(session.Questions[0].Logic) != 1 {
		t.Fatalf("expected saved rule")
	}

	edited := strings.Replace(session.Markup, "</form>",
		"  <div class=\"question\">\n    <p>Why blue?</p>\n    <label><input type=\"radio\" name=\"q1\" value=\"Calming\" /> Calming</label>\n  </div>\n</form>", 1)
	session = session.SetSource(edited)
	if len(session.Questions) != 2 {
		t.Fatalf("expected two questions after edit, got %d", len(session.Questions))
	}
	if len(session.Questions[0].Logic) != 1 || session.Questions[0].Logic[0].Option != "Blue" {
		t.Fatalf("expected rule carried through reparse, got %v", session.Questions[0].Logic)
	}
}

// TestSetSourceCodeViewRoundTrip verifies an edited payload block in a code
// view updates the model.
func TestSetSourceCodeViewRoundTrip(t *testing.T) {
	session := NewSession("").SetView(codegen.TargetPython)
	doc := session.Payload()
	doc.Form[0].Question = "Renamed question"
	block, err := codegen.FormatDocument(doc)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	edited := codegen.ReplaceBlock(session.Source, codegen.TargetPython.Anchor(), block)

	session = session.SetSource(edited)
	if session.LastError != "" {
		t.Fatalf("unexpected error %q", session.LastError)
	}
	if session.Questions[0].Text != "Renamed question" {
		t.Fatalf("expected model updated, got %q", session.Questions[0].Text)
	}
}

// TestSetSourceDecodeFailureKeepsModel verifies an invalid block surfaces an
// error and leaves the last-known-good model intact.
func TestSetSourceDecodeFailureKeepsModel(t *testing.T) {
	session := NewSession("").SetView(codegen.TargetPython)
	before := session.Questions

	edited := codegen.ReplaceBlock(session.Source, codegen.TargetPython.Anchor(), `{"form": "not an array"}`)
	session = session.SetSource(edited)
	if session.LastError == "" {
		t.Fatalf("expected decode error recorded")
	}
	if len(session.Questions) != len(before) || session.Questions[0].Text != before[0].Text {
		t.Fatalf("model must stay untouched on decode failure")
	}
}

// TestSetSourceErrorClearsOnSuccess verifies the error message reflects only
// the most recent decode attempt.
func TestSetSourceErrorClearsOnSuccess(t *testing.T) {
	session := NewSession("").SetView(codegen.TargetPython)
	session = session.SetSource(codegen.ReplaceBlock(session.Source, codegen.TargetPython.Anchor(), `{"nope": 1}`))
	if session.LastError == "" {
		t.Fatalf("expected error")
	}
	block, err := codegen.FormatDocument(payload.Encode(session.Questions))
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	session = session.SetSource(codegen.ReplaceBlock(session.Source, codegen.TargetPython.Anchor(), block))
	if session.LastError != "" {
		t.Fatalf("expected error cleared, got %q", session.LastError)
	}
}

// TestSetSourceWithoutBlockIsNoop verifies boilerplate-only edits change
// nothing this cycle.
func TestSetSourceWithoutBlockIsNoop(t *testing.T) {
	session := NewSession("").SetView(codegen.TargetPython)
	before := session.Questions
	session = session.SetSource("# just a comment, block deleted")
	if len(session.Questions) != len(before) {
		t.Fatalf("expected model unchanged without a block")
	}
	if session.LastError != "" {
		t.Fatalf("a missing block is not an error")
	}
}

// TestSetViewRegeneratesSource verifies view switches re-render the source
// deterministically from the model.
func TestSetViewRegeneratesSource(t *testing.T) {
	session := NewSession("")
	python := session.SetView(codegen.TargetPython)
	if !strings.Contains(python.Source, "import requests") {
		t.Fatalf("expected python boilerplate")
	}
	back := python.SetView(codegen.TargetMarkup)
	if back.Source != session.Markup {
		t.Fatalf("expected canonical markup restored")
	}
}
