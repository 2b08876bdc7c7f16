package types

import "testing"

func TestCloneIsDeep(t *testing.T) {
	s := SessionState{
		CurrentStep:   "lecon_ask_classe",
		Locale:        LocaleFR,
		CollectedData: map[string]string{"flow_type": "lesson"},
		StepHistory:   []StepID{StepSelectOption},
	}
	c := s.Clone()
	c.CollectedData["classe"] = "6ème"
	c.StepHistory = append(c.StepHistory[:0], "other")
	if _, ok := s.CollectedData["classe"]; ok {
		t.Error("clone shares collected data")
	}
	if s.StepHistory[0] != StepSelectOption {
		t.Error("clone shares history")
	}
}

func TestCloneDefaultsToStart(t *testing.T) {
	c := SessionState{}.Clone()
	if c.CurrentStep != StepStart || c.CollectedData == nil || c.StepHistory == nil {
		t.Errorf("unexpected zero clone: %+v", c)
	}
}

func TestResetToMenuKeepsLocale(t *testing.T) {
	s := SessionState{CurrentStep: StepGeneration, Locale: LocaleEN, CollectedData: map[string]string{"a": "b"}, GeneratedText: "x"}
	r := s.ResetToMenu()
	if r.CurrentStep != StepSelectOption || r.Locale != LocaleEN || len(r.CollectedData) != 0 || len(r.StepHistory) != 0 || r.GeneratedText != "" {
		t.Errorf("unexpected reset state: %+v", r)
	}
}

func TestContentLanguageCode(t *testing.T) {
	cases := map[string]string{
		"English":         "en",
		"Anglais":         "en",
		"Deutsch":         "de",
		"Español":         "es",
		"Italiano":        "it",
		"中文 (Chinois)":    "zh",
		"العربية (Arabe)": "ar",
		"Français":        "fr",
		"":                "fr",
	}
	for in, want := range cases {
		if got := ContentLanguageCode(in); got != want {
			t.Errorf("ContentLanguageCode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLocaleOr(t *testing.T) {
	if Locale("").Or() != LocaleEN || Locale("de").Or() != LocaleEN || LocaleFR.Or() != LocaleFR {
		t.Error("unexpected locale fallback")
	}
}
