package testcases

import (
	"context"
	"strings"
	"testing"

	"github.com/tbxark/lessonflow/types"
)

// TestLessonPlan walks the English lesson flow through to a generated plan.
func TestLessonPlan(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	conv := NewConversation(t)

	resp := conv.SayAll(ctx,
		"English",
		"Prepare a lesson",
		"General Education",
		"Form 1",
		"Mathematics",
		"Algebra",
		"Linear equations",
		"🤖 Automatic Search (RAG)",
		"English",
	)

	if resp.State.CurrentStep != types.StepGeneration {
		t.Fatalf("expected generation_step, got %s", resp.State.CurrentStep)
	}
	if strings.TrimSpace(resp.Response) == "" {
		t.Fatal("generated lesson is empty")
	}
	if resp.State.GeneratedText != resp.Response {
		t.Error("generated text should be kept in the state")
	}
	t.Logf("lesson plan:\n%s", resp.Response)
}

// TestDigitalPresentation checks the presentation flow and its download label.
func TestDigitalPresentation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	conv := NewConversation(t)

	resp := conv.SayAll(ctx,
		"Français",
		"Préparer une leçon numérique",
		"Enseignement Secondaire Général (ESG)",
		"Seconde",
		"Histoire",
		"La décolonisation",
		"Les indépendances africaines",
		"Français",
	)

	if resp.State.FlowType() != types.FlowDigital {
		t.Fatalf("flow type = %s", resp.State.FlowType())
	}
	found := false
	for _, opt := range resp.Options {
		if opt == "Télécharger la présentation" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the presentation download option, got %v", resp.Options)
	}
	t.Logf("presentation:\n%s", resp.Response)
}
