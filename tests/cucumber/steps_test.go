package cucumber

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"formedit/internal/codegen"
	"formedit/internal/editor"
)

// featureState holds scenario state for editor round-trip tests.
type featureState struct {
	session editor.Session
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.session = editor.Session{}
		return ctx, nil
	})

	ctx.Step(`^a session seeded with the favorite color form$`, state.aSeededSession)
	ctx.Step(`^I add a question titled "([^"]+)"$`, state.iAddAQuestion)
	ctx.Step(`^I attach logic showing question (\d+) when "([^"]+)" is chosen$`, state.iAttachLogic)
	ctx.Step(`^I switch to the "([^"]+)" view$`, state.iSwitchView)
	ctx.Step(`^I rename the first question to "([^"]+)" inside the payload block$`, state.iRenameInPayload)
	ctx.Step(`^I remove option "([^"]+)" from question (\d+)$`, state.iRemoveOption)
	ctx.Step(`^I replace the payload block with:$`, state.iReplacePayloadBlock)
	ctx.Step(`^question (\d+) still routes "([^"]+)" to question (\d+)$`, state.questionRoutesTo)
	ctx.Step(`^question (\d+) has no logic$`, state.questionHasNoLogic)
	ctx.Step(`^the markup contains "([^"]+)"$`, state.markupContains)
	ctx.Step(`^the session reports a payload error$`, state.sessionReportsError)
	ctx.Step(`^the form still has (\d+) question(?:s)?$`, state.formHasQuestions)
}

func (s *featureState) aSeededSession() error {
	s.session = editor.NewSession("")
	if len(s.session.Questions) != 1 {
		return fmt.Errorf("expected one seed question, got %d", len(s.session.Questions))
	}
	return nil
}

func (s *featureState) iAddAQuestion(title string) error {
	s.session = s.session.AddQuestion()
	s.session = s.session.SetQuestionText(len(s.session.Questions)-1, title)
	return nil
}

func (s *featureState) iAttachLogic(target int, option string) error {
	s.session = s.session.SaveLogic(0, option, []int{target - 1})
	if len(s.session.Questions[0].Logic) == 0 {
		return fmt.Errorf("rule was not attached")
	}
	return nil
}

// iSwitchView switches the view and feeds the rendered source back through
// the edit path, exercising the extract-and-merge cycle a real view change
// triggers.
func (s *featureState) iSwitchView(name string) error {
	target, err := codegen.ParseTarget(name)
	if err != nil {
		return err
	}
	s.session = s.session.SetView(target)
	s.session = s.session.SetSource(s.session.Source)
	if s.session.LastError != "" {
		return fmt.Errorf("unexpected error after view switch: %s", s.session.LastError)
	}
	return nil
}

func (s *featureState) iRenameInPayload(title string) error {
	doc := s.session.Payload()
	if len(doc.Form) == 0 {
		return fmt.Errorf("payload has no entries")
	}
	doc.Form[0].Question = title
	block, err := codegen.FormatDocument(doc)
	if err != nil {
		return err
	}
	edited := codegen.ReplaceBlock(s.session.Source, s.session.View.Anchor(), block)
	s.session = s.session.SetSource(edited)
	if s.session.LastError != "" {
		return fmt.Errorf("edit rejected: %s", s.session.LastError)
	}
	return nil
}

func (s *featureState) iRemoveOption(option string, number int) error {
	index := number - 1
	if index < 0 || index >= len(s.session.Questions) {
		return fmt.Errorf("no question %d", number)
	}
	for oi, value := range s.session.Questions[index].Options {
		if value == option {
			s.session = s.session.RemoveOption(index, oi)
			return nil
		}
	}
	return fmt.Errorf("question %d has no option %q", number, option)
}

func (s *featureState) iReplacePayloadBlock(block *godog.DocString) error {
	edited := codegen.ReplaceBlock(s.session.Source, s.session.View.Anchor(), block.Content)
	s.session = s.session.SetSource(edited)
	return nil
}

func (s *featureState) questionRoutesTo(number int, option string, target int) error {
	index := number - 1
	if index < 0 || index >= len(s.session.Questions) {
		return fmt.Errorf("no question %d", number)
	}
	rule, ok := s.session.Questions[index].RuleFor(option)
	if !ok {
		return fmt.Errorf("question %d has no rule for %q", number, option)
	}
	for _, shown := range rule.ShowQuestions {
		if shown == target-1 {
			return nil
		}
	}
	return fmt.Errorf("rule for %q does not show question %d: %v", option, target, rule.ShowQuestions)
}

func (s *featureState) questionHasNoLogic(number int) error {
	index := number - 1
	if index < 0 || index >= len(s.session.Questions) {
		return fmt.Errorf("no question %d", number)
	}
	if len(s.session.Questions[index].Logic) != 0 {
		return fmt.Errorf("question %d still has logic %v", number, s.session.Questions[index].Logic)
	}
	return nil
}

func (s *featureState) markupContains(text string) error {
	if !strings.Contains(s.session.Markup, text) {
		return fmt.Errorf("markup does not contain %q:\n%s", text, s.session.Markup)
	}
	return nil
}

func (s *featureState) sessionReportsError() error {
	if s.session.LastError == "" {
		return fmt.Errorf("expected a payload error")
	}
	return nil
}

func (s *featureState) formHasQuestions(count int) error {
	if len(s.session.Questions) != count {
		return fmt.Errorf("expected %d questions, got %d", count, len(s.session.Questions))
	}
	return nil
}
