package model

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"Standard", CategoryStandard},
		{"Cautionary", CategoryCautionary},
		{"High-Risk", CategoryHighRisk},
		{"high-risk", CategoryUnknown},
		{"Severe", CategoryUnknown},
		{"", CategoryUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseCategory(tt.in); got != tt.want {
				t.Errorf("ParseCategory(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestInterpretSentiment(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.5, "Positive"},
		{0.11, "Positive"},
		{0.1, "Neutral"},
		{0.0, "Neutral"},
		{-0.1, "Neutral"},
		{-0.11, "Negative"},
		{-0.9, "Negative"},
	}
	for _, tt := range tests {
		if got := InterpretSentiment(tt.score); got != tt.want {
			t.Errorf("InterpretSentiment(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestHighRiskCount(t *testing.T) {
	r := AnalysisResult{Highlights: []Highlight{
		{Text: "a", Category: CategoryStandard},
		{Text: "b", Category: CategoryHighRisk},
		{Text: "c", Category: CategoryCautionary},
		{Text: "d", Category: CategoryHighRisk},
	}}
	if got := r.HighRiskCount(); got != 2 {
		t.Errorf("HighRiskCount() = %d, want 2", got)
	}
}

func TestSetChecklistEmptyStillDone(t *testing.T) {
	var r AnalysisResult
	if r.ChecklistDone {
		t.Fatal("fresh result must not have a completed checklist")
	}
	r.SetChecklist(nil)
	if !r.ChecklistDone {
		t.Error("empty checklist response must still retire the affordance")
	}
}

func TestLanguageTable(t *testing.T) {
	if len(translationLanguages) != 10 {
		t.Fatalf("supported language set has %d entries, want 10", len(translationLanguages))
	}
	for _, l := range translationLanguages {
		if !TranslationSupported(l) {
			t.Errorf("%s listed but not supported", l)
		}
	}
	if TranslationSupported("Klingon") {
		t.Error("Klingon must not be a supported translation target")
	}
}

func TestNextLanguageWraps(t *testing.T) {
	if got := NextLanguage("Korean"); got != "English" {
		t.Errorf("NextLanguage(Korean) = %q, want English", got)
	}
	if got := NextLanguage("English"); got != "Spanish" {
		t.Errorf("NextLanguage(English) = %q, want Spanish", got)
	}
	if got := NextLanguage("Klingon"); got != "English" {
		t.Errorf("NextLanguage(unknown) = %q, want English", got)
	}
}
