package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tbxark/lessonflow/generator"
	"github.com/tbxark/lessonflow/types"
)

var (
	ErrMissingFlowType = errors.New("flow type is not set")
	ErrUnknownFlowType = errors.New("unknown flow type")
)

// SyllabusNotProvided replaces a missing syllabus for evaluations.
const SyllabusNotProvided = "L'enseignant n'a pas fourni de contexte."

// Dispatcher calls the content generator matching the collected flow type
// with only the fields that flow accepts.
type Dispatcher struct {
	generator generator.ContentGenerator
}

func NewDispatcher(gen generator.ContentGenerator) *Dispatcher {
	return &Dispatcher{generator: gen}
}

func (d *Dispatcher) Dispatch(ctx context.Context, data map[string]string) (text string, err error) {
	defer func() {
		if e := recover(); e != nil {
			text, err = "", fmt.Errorf("recover from panic: %v", e)
		}
	}()
	flow := types.FlowType(data[string(types.FieldFlowType)])
	switch flow {
	case "":
		return "", ErrMissingFlowType
	case types.FlowLesson:
		return d.generator.GenerateLesson(ctx, LessonArgs(data))
	case types.FlowDigital:
		return d.generator.GenerateDigitalLesson(ctx, DigitalLessonArgs(data))
	case types.FlowIntegration:
		return d.generator.GenerateIntegration(ctx, IntegrationArgs(data))
	case types.FlowEvaluation:
		return d.generator.GenerateEvaluation(ctx, EvaluationArgs(data))
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFlowType, flow)
	}
}

func field(data map[string]string, f types.Field) string {
	if v, ok := data[string(f)]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	return types.NotAvailable
}

func LessonArgs(data map[string]string) generator.LessonArgs {
	return generator.LessonArgs{
		Class:           field(data, types.FieldClass),
		Subject:         field(data, types.FieldSubject),
		Module:          field(data, types.FieldModule),
		LessonTitle:     field(data, types.FieldLesson),
		Syllabus:        field(data, types.FieldSyllabus),
		ContentLanguage: field(data, types.FieldContentLocale),
	}
}

func DigitalLessonArgs(data map[string]string) generator.DigitalLessonArgs {
	return generator.DigitalLessonArgs{
		Class:           field(data, types.FieldClass),
		Subject:         field(data, types.FieldSubject),
		Module:          field(data, types.FieldModule),
		LessonTitle:     field(data, types.FieldLesson),
		ContentLanguage: field(data, types.FieldContentLocale),
	}
}

func IntegrationArgs(data map[string]string) generator.IntegrationArgs {
	return generator.IntegrationArgs{
		Class:           field(data, types.FieldClass),
		Subject:         field(data, types.FieldSubject),
		LessonList:      field(data, types.FieldLessonList),
		Objectives:      field(data, types.FieldObjectives),
		ContentLanguage: field(data, types.FieldContentLocale),
	}
}

// EvaluationArgs names the paper after the module when one was given,
// otherwise after the subject.
func EvaluationArgs(data map[string]string) generator.EvaluationArgs {
	syllabus := field(data, types.FieldSyllabus)
	if syllabus == types.NotAvailable {
		syllabus = SyllabusNotProvided
	}
	subject := field(data, types.FieldModule)
	if subject == types.NotAvailable {
		subject = field(data, types.FieldSubject)
	}
	return generator.EvaluationArgs{
		Class:             field(data, types.FieldClass),
		Subject:           subject,
		LessonList:        field(data, types.FieldLessonList),
		Duration:          field(data, types.FieldDuration),
		Coefficient:       field(data, types.FieldCoefficient),
		ContentLanguage:   field(data, types.FieldContentLocale),
		AssessmentTypeKey: AssessmentTypeKey(data[string(types.FieldAssessment)]),
		SyllabusContext:   syllabus,
	}
}

// AssessmentTypeKey maps the free-text assessment type to a generator key.
func AssessmentTypeKey(assessmentType string) string {
	upper := strings.ToUpper(assessmentType)
	if strings.Contains(upper, "QCM") || strings.Contains(upper, "MCQ") {
		return generator.AssessmentMCQ
	}
	return generator.AssessmentResourcesCompetencies
}
