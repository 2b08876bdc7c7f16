package dialogue

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tbxark/lessonflow/catalog"
	"github.com/tbxark/lessonflow/types"
)

func TestBackPrependedWithHistory(t *testing.T) {
	g := NewLocalDialogueGenerator(catalog.Default())
	q, err := g.GenerateDialogue(context.Background(), &Request{
		Step:    catalog.StepLessonClass,
		Locale:  types.LocaleFR,
		Data:    map[string]string{"flow_type": "lesson", "subsystem": "esg"},
		History: []types.StepID{types.StepSelectOption, catalog.StepLessonSubsystem},
	})
	if err != nil {
		t.Fatalf("GenerateDialogue: %v", err)
	}
	if len(q.Options) != 8 || q.Options[0] != "⬅️ Retour" || q.Options[1] != "6ème" {
		t.Errorf("unexpected options: %v", q.Options)
	}
	if q.IsTextInput {
		t.Error("class step is a menu")
	}
}

func TestNoBackWithoutHistory(t *testing.T) {
	g := NewLocalDialogueGenerator(catalog.Default())
	q, err := g.GenerateDialogue(context.Background(), &Request{Step: types.StepSelectOption, Locale: types.LocaleEN})
	if err != nil {
		t.Fatalf("GenerateDialogue: %v", err)
	}
	want := []string{"Prepare a lesson", "Prepare a digital lesson", "Produce an integration activity", "Create an assessment"}
	if strings.Join(q.Options, "|") != strings.Join(want, "|") {
		t.Errorf("options = %v", q.Options)
	}
}

func TestFreeTextAndNotice(t *testing.T) {
	g := NewLocalDialogueGenerator(catalog.Default())
	q, err := g.GenerateDialogue(context.Background(), &Request{
		Step:    catalog.StepEvaluationDuration,
		Locale:  types.LocaleEN,
		History: []types.StepID{types.StepSelectOption},
		Notice:  Text(MsgNotUnderstood, types.LocaleEN),
	})
	if err != nil {
		t.Fatalf("GenerateDialogue: %v", err)
	}
	if !q.IsTextInput {
		t.Error("duration step expects free text")
	}
	if !strings.HasPrefix(q.Message, "Sorry, I didn't understand.") {
		t.Errorf("notice missing: %q", q.Message)
	}
	if len(q.Options) != 1 || q.Options[0] != "⬅️ Back" {
		t.Errorf("options = %v", q.Options)
	}
}

func TestUnknownStep(t *testing.T) {
	g := NewLocalDialogueGenerator(catalog.Default())
	_, err := g.GenerateDialogue(context.Background(), &Request{Step: "nowhere"})
	if !errors.Is(err, ErrUnknownStep) {
		t.Fatalf("expected ErrUnknownStep, got %v", err)
	}
}

func TestPostGenerationOptions(t *testing.T) {
	got := PostGenerationOptions(types.LocaleEN, types.FlowLesson)
	if strings.Join(got, "|") != "Restart|Regenerate|Download PDF" {
		t.Errorf("lesson options = %v", got)
	}
	got = PostGenerationOptions(types.LocaleFR, types.FlowDigital)
	if got[2] != "Télécharger la présentation" {
		t.Errorf("digital label = %q", got[2])
	}
}
