package markup

import (
	"reflect"
	"strings"
	"testing"

	"formedit/internal/form"
)

// TestRenderParseRoundTrip verifies parsing rendered markup reproduces the
// structural sequence that produced it.
func TestRenderParseRoundTrip(t *testing.T) {
	questions := []form.Question{
		{Text: "What is your favorite color?", Kind: form.SingleSelect, Options: []string{"Red", "Blue", "Green"}},
		{Text: "Toppings?", Kind: form.MultiSelect, Options: []string{"Olives", "Cheese"}},
	}
	parsed := Parse(Render(questions))
	if len(parsed) != len(questions) {
		t.Fatalf("expected %d questions, got %d", len(questions), len(parsed))
	}
	for i := range questions {
		if parsed[i].Text != questions[i].Text {
			t.Fatalf("question %d text mismatch: %q", i, parsed[i].Text)
		}
		if parsed[i].Kind != questions[i].Kind {
			t.Fatalf("question %d kind mismatch", i)
		}
		if !reflect.DeepEqual(parsed[i].Options, questions[i].Options) {
			t.Fatalf("question %d options mismatch: %v", i, parsed[i].Options)
		}
	}
}

// TestRenderInputNaming verifies the index-derived name scheme, with the
// array marker suffix on multi-select rows.
func TestRenderInputNaming(t *testing.T) {
	questions := []form.Question{
		{Text: "A", Kind: form.SingleSelect, Options: []string{"x"}},
		{Text: "B", Kind: form.MultiSelect, Options: []string{"y"}},
	}
	rendered := Render(questions)
	if !strings.Contains(rendered, `name="q0"`) {
		t.Fatalf("expected q0 input name in:\n%s", rendered)
	}
	if !strings.Contains(rendered, `name="q1[]"`) {
		t.Fatalf("expected q1[] input name in:\n%s", rendered)
	}
}

// TestRenderDeterminism verifies identical input yields byte-identical output.
func TestRenderDeterminism(t *testing.T) {
	questions := []form.Question{{Text: "A", Options: []string{"x", "y"}}}
	if Render(questions) != Render(questions) {
		t.Fatalf("render is not deterministic")
	}
}

// TestRenderEscapesValues verifies markup metacharacters in user content are
// escaped and survive the round trip.
func TestRenderEscapesValues(t *testing.T) {
	questions := []form.Question{{Text: `Tom & "Jerry" <3`, Options: []string{`a<b>"c"`}}}
	rendered := Render(questions)
	if strings.Contains(rendered, `<3`) || strings.Contains(rendered, `<b>`) {
		t.Fatalf("unescaped content in:\n%s", rendered)
	}
	parsed := Parse(rendered)
	if len(parsed) != 1 || parsed[0].Text != questions[0].Text {
		t.Fatalf("text did not survive round trip: %v", parsed)
	}
	if parsed[0].Options[0] != questions[0].Options[0] {
		t.Fatalf("option did not survive round trip: %v", parsed[0].Options)
	}
}
