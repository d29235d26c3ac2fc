// Package editor holds the form editor session: the canonical question
// model, the markup and code-sample views derived from it, and the editing
// operations that keep all of them synchronized. Every operation takes the
// session by value and returns an updated snapshot; there are no
// subscriptions and no background work, so callers may invoke the pipeline
// on every keystroke and own any debouncing themselves.
package editor

import (
	"formedit/internal/codegen"
	"formedit/internal/form"
	"formedit/internal/markup"
	"formedit/internal/payload"
)

// SeedMarkup is the document a fresh editor opens with.
const SeedMarkup = `<form>
  <div class="question">
    <p>What is your favorite color?</p>
    <label><input type="radio" name="q0" value="Red" /> Red</label>
    <label><input type="radio" name="q0" value="Blue" /> Blue</label>
    <label><input type="radio" name="q0" value="Green" /> Green</label>
  </div>
</form>`

// TextChange is a parked question-title edit awaiting confirmation because
// the question carries logic that text-identity matching would silently
// drop.
type TextChange struct {
	Index   int
	OldText string
	NewText string
}

// Session is one editor state snapshot.
type Session struct {
	Questions []form.Question
	Markup    string // canonical markup for the current model
	View      codegen.Target
	Source    string // the editable text shown for the current view
	LastError string // most recent decode failure, cleared on success
	Pending   *TextChange
}

// NewSession opens a session on the given markup document. An empty seed
// falls back to SeedMarkup.
func NewSession(seed string) Session {
	if seed == "" {
		seed = SeedMarkup
	}
	questions := form.Merge(nil, markup.Parse(seed))
	session := Session{Questions: questions, View: codegen.TargetMarkup}
	session.Markup = markup.Render(questions)
	session.Source = session.Markup
	return session
}

// SetView switches the current textual view and regenerates its source text
// from the canonical model.
func (s Session) SetView(target codegen.Target) Session {
	s.View = target
	s.Source = s.renderView()
	return s
}

// SetSource accepts an edited source text for the current view and runs the
// synchronization pipeline. In the markup view the text is reparsed and
// merged against the held model. In a code view the embedded payload block
// is extracted and decoded; an absent block means the user is editing
// boilerplate and nothing updates this cycle, while a decode failure is
// recorded in LastError and leaves the model untouched.
func (s Session) SetSource(text string) Session {
	s.Source = text
	if s.View == codegen.TargetMarkup {
		s.Questions = form.Merge(s.Questions, markup.Parse(text))
		s.Markup = markup.Render(s.Questions)
		s.LastError = ""
		return s
	}

	block, ok := codegen.ExtractBlock(text, s.View.Anchor())
	if !ok {
		return s
	}
	doc, err := payload.Parse(block.Text)
	if err != nil {
		s.LastError = err.Error()
		return s
	}
	s.Questions = form.Merge(s.Questions, payload.Decode(doc))
	s.Markup = markup.Render(s.Questions)
	s.LastError = ""
	return s
}

// Payload returns the payload document for the current model.
func (s Session) Payload() payload.Document {
	return payload.Encode(s.Questions)
}

// commit installs an edited question sequence and regenerates every derived
// view. A committed edit counts as a successful cycle, so it clears the
// current error.
func (s Session) commit(questions []form.Question) Session {
	s.Questions = form.SanitizeRules(questions)
	s.Markup = markup.Render(s.Questions)
	s.Source = s.renderView()
	s.LastError = ""
	return s
}

func (s Session) renderView() string {
	rendered, err := codegen.Render(s.View, s.Questions, s.Markup)
	if err != nil {
		return s.Source
	}
	return rendered
}
