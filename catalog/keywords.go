package catalog

import (
	"strings"

	"github.com/tbxark/lessonflow/types"
)

type flowKeywords struct {
	flow     types.FlowType
	keywords []string
}

// Checked in order, first match wins. "Préparer une leçon numérique" must
// resolve to the digital flow before the lesson keywords are tried.
var flowTable = []flowKeywords{
	{types.FlowDigital, []string{"numérique", "numerique", "digital"}},
	{types.FlowLesson, []string{"leçon", "lecon", "lesson"}},
	{types.FlowIntegration, []string{"intégration", "integration"}},
	{types.FlowEvaluation, []string{"évaluation", "evaluation", "assessment"}},
}

var (
	generalKeywords = []string{"général", "general"}
	manualKeywords  = []string{"manuel", "manual"}
	autoKeywords    = []string{"rag", "automati"}
)

// ClassifyFlow maps a menu reply to a flow type by keyword containment.
func ClassifyFlow(reply string) (types.FlowType, bool) {
	normalized := strings.ToLower(reply)
	for _, entry := range flowTable {
		if containsAny(normalized, entry.keywords) {
			return entry.flow, true
		}
	}
	return "", false
}

// NormalizeSubsystem returns esg for general education replies and est otherwise.
func NormalizeSubsystem(reply string) string {
	if containsAny(strings.ToLower(reply), generalKeywords) {
		return types.SubsystemGeneral
	}
	return types.SubsystemTechnical
}

func normalizeFlow(reply string) string {
	flow, _ := ClassifyFlow(reply)
	return string(flow)
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
