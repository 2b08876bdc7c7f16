package document

import (
	"strings"

	"github.com/tbxark/lessonflow/types"
)

var baseNames = map[DocumentType]map[types.Locale]string{
	TypeLesson:       {types.LocaleFR: "Fiche_Lecon", types.LocaleEN: "Lesson_Plan"},
	TypePresentation: {types.LocaleFR: "Presentation", types.LocaleEN: "Presentation"},
	TypeIntegration:  {types.LocaleFR: "Activite_Integration", types.LocaleEN: "Integration_Activity"},
	TypeEvaluation:   {types.LocaleFR: "Evaluation", types.LocaleEN: "Assessment"},
}

var unsafeChars = strings.NewReplacer(
	" ", "_", "/", "-", "\\", "-", ":", "-", "\"", "", "'", "", "?", "", "*", "", "<", "", ">", "", "|", "",
)

// DownloadName names the rendered file after its type and the lesson title,
// falling back to the module then the subject.
func DownloadName(state types.SessionState, req Request) string {
	base := baseNames[req.DocumentType][state.Locale.Or()]
	if base == "" {
		base = "Document"
	}
	subject := ""
	for _, f := range []types.Field{types.FieldLesson, types.FieldModule, types.FieldSubject} {
		if v := strings.TrimSpace(state.CollectedData[string(f)]); v != "" && v != types.NotAvailable {
			subject = v
			break
		}
	}
	name := base
	if subject != "" {
		name += "_" + unsafeChars.Replace(subject)
	}
	return name + "." + string(req.OutputFormat)
}
