package testcases

import (
	"context"
	"strings"
	"testing"

	"github.com/tbxark/lessonflow/generator"
	"github.com/tbxark/lessonflow/types"
)

// TestEvaluationWithAnswerKey generates an MCQ paper and regenerates it.
func TestEvaluationWithAnswerKey(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	conv := NewConversation(t)

	resp := conv.SayAll(ctx,
		"Français",
		"Créer une évaluation",
		"Enseignement Secondaire Général (ESG)",
		"Seconde",
		"Physique",
		"Mécanique",
		"Les forces, Le travail",
		"✍️ Fournir Manuellement",
		"Chapitre 3 : forces et travail mécanique",
		"2h, 3",
		"QCM Uniquement",
		"Français",
	)

	if resp.State.CurrentStep != types.StepGeneration {
		t.Fatalf("expected generation_step, got %s", resp.State.CurrentStep)
	}
	if !strings.Contains(resp.Response, generator.AnswerKeySeparator) {
		t.Logf("answer key separator missing from the paper")
	}
	first := resp.Response

	resp = conv.Say(ctx, "Régénérer")
	if resp.State.CurrentStep != types.StepGeneration || strings.TrimSpace(resp.Response) == "" {
		t.Fatalf("regeneration failed: %+v", resp.State)
	}
	if resp.State.CollectedData["duree"] != "2h" || resp.State.CollectedData["coeff"] != "3" {
		t.Errorf("collected data changed on regenerate: %v", resp.State.CollectedData)
	}
	t.Logf("first paper:\n%s\n\nsecond paper:\n%s", first, resp.Response)
}

// TestIntegrationActivity walks the integration flow in English.
func TestIntegrationActivity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	conv := NewConversation(t)

	resp := conv.SayAll(ctx,
		"English",
		"Integration activity",
		"Technical Education",
		"Form 2",
		"Biology",
		"Photosynthesis, Respiration",
		"Explain energy flow in plants",
		"English",
	)

	if resp.State.FlowType() != types.FlowIntegration {
		t.Fatalf("flow type = %s", resp.State.FlowType())
	}
	if strings.TrimSpace(resp.Response) == "" {
		t.Fatal("integration activity is empty")
	}
	t.Logf("integration activity:\n%s", resp.Response)
}
