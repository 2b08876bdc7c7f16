package generator

import (
	"context"
	"errors"
)

var ErrEmptyCompletion = errors.New("model returned an empty completion")

// AnswerKeySeparator splits an evaluation paper from its marking guide.
const AnswerKeySeparator = "---CORRIGE---"

const (
	AssessmentMCQ                   = "junior_mcq"
	AssessmentResourcesCompetencies = "junior_resources_competencies"
)

type LessonArgs struct {
	Class           string
	Subject         string
	Module          string
	LessonTitle     string
	Syllabus        string
	ContentLanguage string
}

type DigitalLessonArgs struct {
	Class           string
	Subject         string
	Module          string
	LessonTitle     string
	ContentLanguage string
}

type IntegrationArgs struct {
	Class           string
	Subject         string
	LessonList      string
	Objectives      string
	ContentLanguage string
}

type EvaluationArgs struct {
	Class             string
	Subject           string
	LessonList        string
	Duration          string
	Coefficient       string
	ContentLanguage   string
	AssessmentTypeKey string
	SyllabusContext   string
}

// ContentGenerator produces the document body for each flow.
type ContentGenerator interface {
	GenerateLesson(ctx context.Context, args LessonArgs) (string, error)
	GenerateDigitalLesson(ctx context.Context, args DigitalLessonArgs) (string, error)
	GenerateIntegration(ctx context.Context, args IntegrationArgs) (string, error)
	GenerateEvaluation(ctx context.Context, args EvaluationArgs) (string, error)
}
