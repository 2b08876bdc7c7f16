package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cloudwego/eino/components/model"
	"github.com/tbxark/lessonflow/types"
)

var _ ContentGenerator = (*ChatGenerator)(nil)

// ChatGenerator implements ContentGenerator with one prompt chain per flow.
type ChatGenerator struct {
	chains map[types.FlowType]*Chain
}

func NewChatGenerator(chatModel model.BaseChatModel, opts ...model.Option) *ChatGenerator {
	return &ChatGenerator{
		chains: map[types.FlowType]*Chain{
			types.FlowLesson:      NewChain(chatModel, newTemplate(lessonPrompt), opts...),
			types.FlowDigital:     NewChain(chatModel, newTemplate(digitalLessonPrompt), opts...),
			types.FlowIntegration: NewChain(chatModel, newTemplate(integrationPrompt), opts...),
			types.FlowEvaluation:  NewChain(chatModel, newTemplate(evaluationPrompt), opts...),
		},
	}
}

func (g *ChatGenerator) GenerateLesson(ctx context.Context, args LessonArgs) (string, error) {
	return g.invoke(ctx, types.FlowLesson, args.ContentLanguage, map[string]any{
		"class":        args.Class,
		"subject":      args.Subject,
		"module":       args.Module,
		"lesson_title": args.LessonTitle,
		"syllabus":     args.Syllabus,
	})
}

func (g *ChatGenerator) GenerateDigitalLesson(ctx context.Context, args DigitalLessonArgs) (string, error) {
	return g.invoke(ctx, types.FlowDigital, args.ContentLanguage, map[string]any{
		"class":        args.Class,
		"subject":      args.Subject,
		"module":       args.Module,
		"lesson_title": args.LessonTitle,
	})
}

func (g *ChatGenerator) GenerateIntegration(ctx context.Context, args IntegrationArgs) (string, error) {
	return g.invoke(ctx, types.FlowIntegration, args.ContentLanguage, map[string]any{
		"class":       args.Class,
		"subject":     args.Subject,
		"lesson_list": args.LessonList,
		"objectives":  args.Objectives,
	})
}

func (g *ChatGenerator) GenerateEvaluation(ctx context.Context, args EvaluationArgs) (string, error) {
	return g.invoke(ctx, types.FlowEvaluation, args.ContentLanguage, map[string]any{
		"class":            args.Class,
		"subject":          args.Subject,
		"lesson_list":      args.LessonList,
		"duration":         args.Duration,
		"coefficient":      args.Coefficient,
		"assessment_type":  args.AssessmentTypeKey,
		"syllabus_context": args.SyllabusContext,
	})
}

func (g *ChatGenerator) invoke(ctx context.Context, flow types.FlowType, contentLanguage string, vars map[string]any) (string, error) {
	vars["content_language"] = contentLanguage
	vars["titles_language"] = types.ContentLanguageCode(contentLanguage)
	slog.Debug("Generating content", "flow_type", flow, "titles_language", vars["titles_language"])
	text, err := g.chains[flow].Invoke(ctx, vars)
	if err != nil {
		return "", fmt.Errorf("generate %s: %w", flow, err)
	}
	return text, nil
}
