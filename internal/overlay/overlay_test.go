package overlay

import (
	"strings"
	"testing"

	"github.com/hbeckett/clausewise/internal/model"
)

func joined(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
	}
	return b.String()
}

func marked(segs []Segment) []Segment {
	var out []Segment
	for _, s := range segs {
		if s.Marked {
			out = append(out, s)
		}
	}
	return out
}

func TestApplyMarksAllOccurrences(t *testing.T) {
	text := "The party shall indemnify. The other party shall indemnify too."
	segs := Apply(text, []model.Highlight{
		{Text: "shall indemnify", Category: model.CategoryCautionary},
	})

	m := marked(segs)
	if len(m) != 2 {
		t.Fatalf("expected 2 marked spans, got %d", len(m))
	}
	for _, s := range m {
		if s.Text != "shall indemnify" {
			t.Errorf("marked span = %q, want %q", s.Text, "shall indemnify")
		}
		if s.Category != model.CategoryCautionary {
			t.Errorf("marked span category = %v, want Cautionary", s.Category)
		}
	}
	if joined(segs) != text {
		t.Errorf("segmentation does not reproduce input:\n%q\n%q", joined(segs), text)
	}
}

func TestApplyWhitespaceFlexible(t *testing.T) {
	text := "The Receiving Party shall not\ndisclose any Confidential Information."
	segs := Apply(text, []model.Highlight{
		{Text: "shall not disclose", Category: model.CategoryHighRisk},
	})

	m := marked(segs)
	if len(m) != 1 {
		t.Fatalf("expected 1 marked span, got %d", len(m))
	}
	if m[0].Text != "shall not\ndisclose" {
		t.Errorf("marked span = %q, want the line-broken document text", m[0].Text)
	}
}

func TestApplyLongerHighlightNeverSplit(t *testing.T) {
	text := "This agreement shall not disclose trade secrets."
	long := model.Highlight{Text: "shall not disclose trade secrets", Category: model.CategoryHighRisk}
	short := model.Highlight{Text: "disclose", Category: model.CategoryStandard}

	for name, hs := range map[string][]model.Highlight{
		"long first":  {long, short},
		"short first": {short, long},
	} {
		t.Run(name, func(t *testing.T) {
			segs := Apply(text, hs)
			m := marked(segs)
			if len(m) != 1 {
				t.Fatalf("expected 1 marked span, got %d: %+v", len(m), m)
			}
			if m[0].Category != model.CategoryHighRisk {
				t.Errorf("category = %v, want HighRisk (longer match wins)", m[0].Category)
			}
			if m[0].Text != "shall not disclose trade secrets" {
				t.Errorf("span = %q, fragmented by shorter highlight", m[0].Text)
			}
		})
	}
}

func TestApplyOrderStableForEqualLengthDisjoint(t *testing.T) {
	text := "Fee is due monthly. Term ends in June."
	a := model.Highlight{Text: "due monthly", Category: model.CategoryCautionary}
	b := model.Highlight{Text: "ends in Jun", Category: model.CategoryStandard}

	first := Apply(text, []model.Highlight{a, b})
	second := Apply(text, []model.Highlight{b, a})
	if len(first) != len(second) {
		t.Fatalf("segment counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("segment %d differs across orders: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestApplyUnknownCategoryUnmarked(t *testing.T) {
	text := "Nothing to see here."
	segs := Apply(text, []model.Highlight{
		{Text: "Nothing to see", Category: model.ParseCategory("Severe")},
	})
	if len(marked(segs)) != 0 {
		t.Error("unrecognized category must be left unmarked")
	}
	if joined(segs) != text {
		t.Errorf("text altered: %q", joined(segs))
	}
}

func TestApplyNoMatch(t *testing.T) {
	text := "plain text"
	segs := Apply(text, []model.Highlight{
		{Text: "absent clause", Category: model.CategoryStandard},
	})
	if len(segs) != 1 || segs[0].Marked {
		t.Fatalf("expected single unmarked segment, got %+v", segs)
	}
}

func TestApplyRegexMetacharactersLiteral(t *testing.T) {
	text := "Liability is capped at $1,000 (one thousand)."
	segs := Apply(text, []model.Highlight{
		{Text: "$1,000 (one thousand)", Category: model.CategoryCautionary},
	})
	m := marked(segs)
	if len(m) != 1 || m[0].Text != "$1,000 (one thousand)" {
		t.Fatalf("metacharacters not matched literally: %+v", m)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"crlf", "a\r\nb", "a\nb"},
		{"bare cr", "a\rb", "a\nb"},
		{"escape stripped", "a\x1b[31mb", "a[31mb"},
		{"tab kept", "a\tb", "a\tb"},
		{"bell stripped", "a\x07b", "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestApplyEmptyHighlightText(t *testing.T) {
	text := "content survives"
	segs := Apply(text, []model.Highlight{
		{Text: "   ", Category: model.CategoryHighRisk},
	})
	if joined(segs) != text {
		t.Errorf("empty highlight text must not affect segmentation")
	}
	if len(marked(segs)) != 0 {
		t.Error("empty highlight text must not mark anything")
	}
}

func TestRenderPlainPassthrough(t *testing.T) {
	segs := []Segment{
		{Text: "before "},
		{Text: "risk", Category: model.CategoryHighRisk, Marked: true},
		{Text: " after"},
	}
	out := Render(segs, Styles{}) // zero styles render text unchanged
	if !strings.Contains(out, "before ") || !strings.Contains(out, " after") {
		t.Errorf("plain segments altered: %q", out)
	}
	if !strings.Contains(out, "risk") {
		t.Errorf("marked segment text dropped: %q", out)
	}
}

func TestScenarioMutualNDA(t *testing.T) {
	text := "MUTUAL NON-DISCLOSURE AGREEMENT\n\nThe Receiving Party shall not disclose the Confidential Information to any third party."
	segs := Apply(text, []model.Highlight{
		{Text: "shall not disclose", Category: model.ParseCategory("High-Risk"), Explanation: "Broad non-disclosure duty."},
	})
	m := marked(segs)
	if len(m) != 1 {
		t.Fatalf("expected exactly 1 high-risk span, got %d", len(m))
	}
	if m[0].Category != model.CategoryHighRisk {
		t.Errorf("category = %v, want HighRisk", m[0].Category)
	}
	if joined(segs) != text {
		t.Errorf("document text not preserved")
	}
}
