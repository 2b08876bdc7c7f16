package document

import (
	"errors"
	"strings"
	"testing"

	"github.com/tbxark/lessonflow/generator"
	"github.com/tbxark/lessonflow/types"
)

func TestRequestFor(t *testing.T) {
	state := types.SessionState{
		Locale:        types.LocaleFR,
		CollectedData: map[string]string{"flow_type": "digital", "langue_contenu": "English"},
		GeneratedText: "## Slide 1",
	}
	req, err := RequestFor(state, "")
	if err != nil {
		t.Fatalf("RequestFor: %v", err)
	}
	if req.DocumentType != TypePresentation || req.OutputFormat != FormatPPTX || req.TargetLanguageCode != "en" || req.Text != "## Slide 1" {
		t.Errorf("unexpected request %+v", req)
	}

	req, _ = RequestFor(state, "edited")
	if req.Text != "edited" {
		t.Errorf("override ignored: %q", req.Text)
	}

	if _, err := RequestFor(types.SessionState{}, " "); !errors.Is(err, ErrNothingToRender) {
		t.Errorf("expected ErrNothingToRender, got %v", err)
	}
}

func TestDownloadName(t *testing.T) {
	cases := []struct {
		locale types.Locale
		data   map[string]string
		want   string
	}{
		{types.LocaleFR, map[string]string{"flow_type": "lesson", "lecon": "Les fractions"}, "Fiche_Lecon_Les_fractions.pdf"},
		{types.LocaleEN, map[string]string{"flow_type": "lesson", "lecon": "Speed/Velocity"}, "Lesson_Plan_Speed-Velocity.pdf"},
		{types.LocaleEN, map[string]string{"flow_type": "integration", "matiere": "History"}, "Integration_Activity_History.pdf"},
		{types.LocaleFR, map[string]string{"flow_type": "evaluation", "module": "Mécanique"}, "Evaluation_Mécanique.pdf"},
		{types.LocaleEN, map[string]string{"flow_type": "digital"}, "Presentation.pptx"},
	}
	for _, tc := range cases {
		state := types.SessionState{Locale: tc.locale, CollectedData: tc.data, GeneratedText: "x"}
		req, err := RequestFor(state, "")
		if err != nil {
			t.Fatalf("RequestFor: %v", err)
		}
		if got := DownloadName(state, req); got != tc.want {
			t.Errorf("DownloadName = %q, want %q", got, tc.want)
		}
	}
}

func TestPrepareMarkdownSplitsAnswerKey(t *testing.T) {
	text := "Paper" + "\n" + generator.AnswerKeySeparator + "\nKey"
	out := prepareMarkdown(Request{Text: text, DocumentType: TypeEvaluation, OutputFormat: FormatPDF})
	if strings.Contains(out, generator.AnswerKeySeparator) || !strings.Contains(out, "\\newpage") {
		t.Errorf("unexpected markdown %q", out)
	}
	if prepareMarkdown(Request{Text: text, DocumentType: TypeLesson}) != text {
		t.Error("non-evaluation text must be unchanged")
	}
}

func TestPandocArgs(t *testing.T) {
	p := NewPandocRenderer("", "")
	args := strings.Join(p.args(Request{TargetLanguageCode: "ar", OutputFormat: FormatPDF}, "/tmp/out.pdf"), " ")
	for _, want := range []string{"--output=/tmp/out.pdf", "--pdf-engine=xelatex", "--metadata=dir:rtl", "--metadata=lang:ar"} {
		if !strings.Contains(args, want) {
			t.Errorf("args %q missing %q", args, want)
		}
	}
}
