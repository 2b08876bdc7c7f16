package catalog

import (
	"strings"

	"github.com/tbxark/lessonflow/types"
)

const (
	StepLessonSubsystem      types.StepID = "lecon_ask_subsystem"
	StepLessonClass          types.StepID = "lecon_ask_classe"
	StepLessonSubject        types.StepID = "lecon_ask_matiere"
	StepLessonModule         types.StepID = "lecon_ask_module"
	StepLessonTitle          types.StepID = "lecon_ask_lecon"
	StepLessonSyllabusMethod types.StepID = "lecon_ask_syllabus_method"
	StepLessonSyllabus       types.StepID = "lecon_get_manual_syllabus"
	StepLessonLanguage       types.StepID = "lecon_ask_langue_contenu"

	StepDigitalSubsystem types.StepID = "num_ask_subsystem"
	StepDigitalClass     types.StepID = "num_ask_classe"
	StepDigitalSubject   types.StepID = "num_ask_matiere"
	StepDigitalModule    types.StepID = "num_ask_module"
	StepDigitalTitle     types.StepID = "num_ask_lecon"
	StepDigitalLanguage  types.StepID = "num_ask_langue_contenu"

	StepIntegrationSubsystem  types.StepID = "int_ask_subsystem"
	StepIntegrationClass      types.StepID = "int_ask_classe"
	StepIntegrationSubject    types.StepID = "int_ask_matiere"
	StepIntegrationLessons    types.StepID = "int_ask_lecons"
	StepIntegrationObjectives types.StepID = "int_ask_objectifs"
	StepIntegrationLanguage   types.StepID = "int_ask_langue_contenu"

	StepEvaluationSubsystem      types.StepID = "eval_ask_subsystem"
	StepEvaluationClass          types.StepID = "eval_ask_classe"
	StepEvaluationSubject        types.StepID = "eval_ask_matiere"
	StepEvaluationModule         types.StepID = "eval_ask_module"
	StepEvaluationLessons        types.StepID = "eval_ask_lecons"
	StepEvaluationSyllabusMethod types.StepID = "eval_ask_syllabus_method"
	StepEvaluationSyllabus       types.StepID = "eval_get_manual_syllabus"
	StepEvaluationDuration       types.StepID = "eval_ask_duree_coeff"
	StepEvaluationType           types.StepID = "eval_ask_type"
	StepEvaluationLanguage       types.StepID = "eval_ask_langue_contenu"
)

// FlowEntry is the first step of each flow.
var FlowEntry = map[types.FlowType]types.StepID{
	types.FlowLesson:      StepLessonSubsystem,
	types.FlowDigital:     StepDigitalSubsystem,
	types.FlowIntegration: StepIntegrationSubsystem,
	types.FlowEvaluation:  StepEvaluationSubsystem,
}

type step struct {
	id       types.StepID
	prompt   localized[string]
	options  func(types.Locale, map[string]string) []string
	freeText bool
	next     func(reply string) (types.StepID, bool)
}

func (s *step) ID() types.StepID { return s.id }

func (s *step) Prompt(locale types.Locale) string { return s.prompt.get(locale) }

func (s *step) Options(locale types.Locale, data map[string]string) []string {
	if s.options == nil {
		return []string{}
	}
	return s.options(locale, data)
}

func (s *step) FreeText() bool { return s.freeText }

func (s *step) Next(reply string) (types.StepID, bool) { return s.next(reply) }

// answered moves to next for any non-blank reply.
func answered(next types.StepID) func(string) (types.StepID, bool) {
	return func(reply string) (types.StepID, bool) {
		if strings.TrimSpace(reply) == "" {
			return "", false
		}
		return next, true
	}
}

func syllabusBranch(manual, auto types.StepID) func(string) (types.StepID, bool) {
	return func(reply string) (types.StepID, bool) {
		normalized := strings.ToLower(reply)
		switch {
		case containsAny(normalized, manualKeywords):
			return manual, true
		case containsAny(normalized, autoKeywords):
			return auto, true
		}
		return "", false
	}
}

func selectFlow(reply string) (types.StepID, bool) {
	flow, ok := ClassifyFlow(reply)
	if !ok {
		return "", false
	}
	return FlowEntry[flow], true
}

var prompts = struct {
	menu, subsystem, class, subject, module, lesson, syllabusMethod, syllabus,
	integrationLessons, objectives, evaluationLessons, durationCoeff, assessmentType,
	lessonLanguage, activityLanguage, evaluationLanguage localized[string]
}{
	menu:               localized[string]{types.LocaleFR: "Que souhaitez-vous préparer aujourd'hui ?", types.LocaleEN: "What would you like to prepare today?"},
	subsystem:          localized[string]{types.LocaleFR: "Pour quel sous-système d'enseignement ?", types.LocaleEN: "For which education subsystem?"},
	class:              localized[string]{types.LocaleFR: "Veuillez choisir une classe :", types.LocaleEN: "Please choose a class:"},
	subject:            localized[string]{types.LocaleFR: "Veuillez choisir une matière :", types.LocaleEN: "Please choose a subject:"},
	module:             localized[string]{types.LocaleFR: "Quel est le titre du module ?", types.LocaleEN: "What is the title of the module?"},
	lesson:             localized[string]{types.LocaleFR: "Quel est le titre de la leçon ?", types.LocaleEN: "What is the title of the lesson?"},
	syllabusMethod:     localized[string]{types.LocaleFR: "Comment souhaitez-vous fournir le contexte du programme ?", types.LocaleEN: "How would you like to provide the syllabus context?"},
	syllabus:           localized[string]{types.LocaleFR: "Collez ici l'extrait du programme à utiliser :", types.LocaleEN: "Paste the syllabus extract to use:"},
	integrationLessons: localized[string]{types.LocaleFR: "Listez les leçons concernées par l'activité d'intégration :", types.LocaleEN: "List the lessons covered by the integration activity:"},
	objectives:         localized[string]{types.LocaleFR: "Quels sont les objectifs visés par ces leçons ?", types.LocaleEN: "What are the objectives of these lessons?"},
	evaluationLessons:  localized[string]{types.LocaleFR: "Listez les leçons couvertes par l'évaluation :", types.LocaleEN: "List the lessons covered by the assessment:"},
	durationCoeff:      localized[string]{types.LocaleFR: "Indiquez la durée et le coefficient, séparés par une virgule (ex : 2h, 3) :", types.LocaleEN: "Enter the duration and the coefficient, separated by a comma (e.g. 2h, 3):"},
	assessmentType:     localized[string]{types.LocaleFR: "Quel type d'épreuve souhaitez-vous ?", types.LocaleEN: "Which type of assessment would you like?"},
	lessonLanguage:     localized[string]{types.LocaleFR: "En quelle langue le contenu doit-il être rédigé ?", types.LocaleEN: "In which language should the content be written?"},
	activityLanguage:   localized[string]{types.LocaleFR: "En quelle langue l'activité doit-elle être rédigée ?", types.LocaleEN: "In which language should the activity be written?"},
	evaluationLanguage: localized[string]{types.LocaleFR: "En quelle langue l'épreuve doit-elle être rédigée ?", types.LocaleEN: "In which language should the assessment be written?"},
}

func bind(fields ...types.Field) Binding {
	return Binding{Fields: fields}
}

func buildDefault() *Catalog {
	c := New()
	c.Register(&step{
		id:      types.StepSelectOption,
		prompt:  prompts.menu,
		options: static(flowLabels),
		next:    selectFlow,
	}, Binding{Fields: []types.Field{types.FieldFlowType}, Normalize: normalizeFlow})

	subsystemStep := func(id, next types.StepID) {
		c.Register(&step{id: id, prompt: prompts.subsystem, options: static(subsystems), next: answered(next)},
			Binding{Fields: []types.Field{types.FieldSubsystem}, Normalize: NormalizeSubsystem})
	}
	classStep := func(id, next types.StepID) {
		c.Register(&step{id: id, prompt: prompts.class, options: bySubsystem(classes), next: answered(next)}, bind(types.FieldClass))
	}
	subjectStep := func(id, next types.StepID) {
		c.Register(&step{id: id, prompt: prompts.subject, options: bySubsystem(subjects), next: answered(next)}, bind(types.FieldSubject))
	}
	textStep := func(id, next types.StepID, prompt localized[string], field types.Field) {
		c.Register(&step{id: id, prompt: prompt, options: noOptions, freeText: true, next: answered(next)}, bind(field))
	}
	languageStep := func(id types.StepID, prompt localized[string]) {
		c.Register(&step{id: id, prompt: prompt, options: static(contentLanguages), next: answered(types.StepPendingGeneration)}, bind(types.FieldContentLocale))
	}
	syllabusMethodStep := func(id, manual, auto types.StepID) {
		c.Register(&step{id: id, prompt: prompts.syllabusMethod, options: static(syllabusMethods), next: syllabusBranch(manual, auto)}, Binding{})
	}

	subsystemStep(StepLessonSubsystem, StepLessonClass)
	classStep(StepLessonClass, StepLessonSubject)
	subjectStep(StepLessonSubject, StepLessonModule)
	textStep(StepLessonModule, StepLessonTitle, prompts.module, types.FieldModule)
	textStep(StepLessonTitle, StepLessonSyllabusMethod, prompts.lesson, types.FieldLesson)
	syllabusMethodStep(StepLessonSyllabusMethod, StepLessonSyllabus, StepLessonLanguage)
	textStep(StepLessonSyllabus, StepLessonLanguage, prompts.syllabus, types.FieldSyllabus)
	languageStep(StepLessonLanguage, prompts.lessonLanguage)

	subsystemStep(StepDigitalSubsystem, StepDigitalClass)
	classStep(StepDigitalClass, StepDigitalSubject)
	subjectStep(StepDigitalSubject, StepDigitalModule)
	textStep(StepDigitalModule, StepDigitalTitle, prompts.module, types.FieldModule)
	textStep(StepDigitalTitle, StepDigitalLanguage, prompts.lesson, types.FieldLesson)
	languageStep(StepDigitalLanguage, prompts.lessonLanguage)

	subsystemStep(StepIntegrationSubsystem, StepIntegrationClass)
	classStep(StepIntegrationClass, StepIntegrationSubject)
	subjectStep(StepIntegrationSubject, StepIntegrationLessons)
	textStep(StepIntegrationLessons, StepIntegrationObjectives, prompts.integrationLessons, types.FieldLessonList)
	textStep(StepIntegrationObjectives, StepIntegrationLanguage, prompts.objectives, types.FieldObjectives)
	languageStep(StepIntegrationLanguage, prompts.activityLanguage)

	subsystemStep(StepEvaluationSubsystem, StepEvaluationClass)
	classStep(StepEvaluationClass, StepEvaluationSubject)
	subjectStep(StepEvaluationSubject, StepEvaluationModule)
	textStep(StepEvaluationModule, StepEvaluationLessons, prompts.module, types.FieldModule)
	textStep(StepEvaluationLessons, StepEvaluationSyllabusMethod, prompts.evaluationLessons, types.FieldLessonList)
	syllabusMethodStep(StepEvaluationSyllabusMethod, StepEvaluationSyllabus, StepEvaluationDuration)
	textStep(StepEvaluationSyllabus, StepEvaluationDuration, prompts.syllabus, types.FieldSyllabus)
	c.Register(&step{
		id:       StepEvaluationDuration,
		prompt:   prompts.durationCoeff,
		options:  noOptions,
		freeText: true,
		next:     answered(StepEvaluationType),
	}, bind(types.FieldDuration, types.FieldCoefficient))
	c.Register(&step{
		id:      StepEvaluationType,
		prompt:  prompts.assessmentType,
		options: static(assessmentTypes),
		next:    answered(StepEvaluationLanguage),
	}, bind(types.FieldAssessment))
	languageStep(StepEvaluationLanguage, prompts.evaluationLanguage)

	return c
}
