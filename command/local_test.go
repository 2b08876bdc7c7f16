package command

import (
	"context"
	"testing"

	"github.com/tbxark/lessonflow/types"
)

func TestLocalCommandParser(t *testing.T) {
	p := NewLocalCommandParser()
	cases := []struct {
		input string
		want  Command
	}{
		{"Back", Back},
		{"  ⬅️ Retour ", Back},
		{"Recommencer", Restart},
		{"restart", Restart},
		{" régénérer", Regenerate},
		{"Regenerate", Regenerate},
		{SignalShowStep, ShowStep},
		{SignalTriggerGeneration, TriggerGeneration},
		{SignalRenderFailed, RenderFailed},
		{SignalDownloadComplete, DownloadComplete},
		{" internal_show_step", None},
		{"Go back to the previous lesson", None},
		{"Mathématiques", None},
	}
	for _, tc := range cases {
		got, err := p.ParseCommand(context.Background(), tc.input)
		if err != nil {
			t.Fatalf("ParseCommand(%q): %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("ParseCommand(%q) = %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestLabelsRoundTrip(t *testing.T) {
	p := NewLocalCommandParser()
	for _, cmd := range []Command{Back, Restart, Regenerate} {
		for _, locale := range []types.Locale{types.LocaleFR, types.LocaleEN} {
			label := Label(cmd, locale)
			got, _ := p.ParseCommand(context.Background(), label)
			if got != cmd {
				t.Errorf("label %q parsed as %s, want %s", label, got, cmd)
			}
		}
	}
	if Label(Back, "") != "⬅️ Back" {
		t.Errorf("unexpected default label %q", Label(Back, ""))
	}
}
