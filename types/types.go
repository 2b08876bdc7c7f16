package types

import "maps"

type StepID string

const (
	StepStart             StepID = "start"
	StepSelectOption      StepID = "select_option"
	StepPendingGeneration StepID = "pending_generation"
	StepGeneration        StepID = "generation_step"
)

// IsControl reports whether the step is one of the reserved values that are
// not present in the flow catalog.
func (s StepID) IsControl() bool {
	switch s {
	case StepStart, StepPendingGeneration, StepGeneration:
		return true
	}
	return false
}

type Locale string

const (
	LocaleFR Locale = "fr"
	LocaleEN Locale = "en"
)

// Or returns l, or LocaleEN when l is not a supported locale.
func (l Locale) Or() Locale {
	if l == LocaleFR {
		return LocaleFR
	}
	return LocaleEN
}

type FlowType string

const (
	FlowLesson      FlowType = "lesson"
	FlowDigital     FlowType = "digital"
	FlowIntegration FlowType = "integration"
	FlowEvaluation  FlowType = "evaluation"
)

func (f FlowType) Valid() bool {
	switch f {
	case FlowLesson, FlowDigital, FlowIntegration, FlowEvaluation:
		return true
	}
	return false
}

// Field is a key of SessionState.CollectedData.
type Field string

const (
	FieldFlowType      Field = "flow_type"
	FieldSubsystem     Field = "subsystem"
	FieldClass         Field = "classe"
	FieldSubject       Field = "matiere"
	FieldModule        Field = "module"
	FieldLesson        Field = "lecon"
	FieldSyllabus      Field = "syllabus"
	FieldLessonList    Field = "liste_lecons"
	FieldObjectives    Field = "objectifs_lecons"
	FieldDuration      Field = "duree"
	FieldCoefficient   Field = "coeff"
	FieldAssessment    Field = "type_epreuve"
	FieldContentLocale Field = "langue_contenu"
)

const (
	SubsystemGeneral   = "esg"
	SubsystemTechnical = "est"
)

// NotAvailable fills the positions of a sequence binding the reply did not provide.
const NotAvailable = "N/A"

type SessionState struct {
	CurrentStep   StepID            `json:"currentStep"`
	Locale        Locale            `json:"locale,omitempty"`
	CollectedData map[string]string `json:"collectedData"`
	StepHistory   []StepID          `json:"stepHistory"`
	GeneratedText string            `json:"generatedText,omitempty"`
}

func NewSessionState() SessionState {
	return SessionState{
		CurrentStep:   StepStart,
		CollectedData: map[string]string{},
		StepHistory:   []StepID{},
	}
}

// Clone returns a deep copy so a turn never writes through to the caller's value.
func (s SessionState) Clone() SessionState {
	out := s
	out.CollectedData = make(map[string]string, len(s.CollectedData))
	maps.Copy(out.CollectedData, s.CollectedData)
	out.StepHistory = make([]StepID, len(s.StepHistory))
	copy(out.StepHistory, s.StepHistory)
	if out.CurrentStep == "" {
		out.CurrentStep = StepStart
	}
	return out
}

// ResetToMenu keeps the locale and returns the session to the flow menu.
func (s SessionState) ResetToMenu() SessionState {
	return SessionState{
		CurrentStep:   StepSelectOption,
		Locale:        s.Locale,
		CollectedData: map[string]string{},
		StepHistory:   []StepID{},
	}
}

func (s SessionState) Get(f Field) (string, bool) {
	v, ok := s.CollectedData[string(f)]
	return v, ok
}

func (s SessionState) FlowType() FlowType {
	return FlowType(s.CollectedData[string(FieldFlowType)])
}
