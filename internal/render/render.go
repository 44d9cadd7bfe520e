// Package render projects an analysis result into an ordered list of display
// fragments. Project is a pure function; the dashboard turns fragments into
// styled panels without further decisions. Every backend-originated string is
// normalized on the way into a fragment, so a response can never smuggle
// terminal escape sequences into the rendered view.
package render

import (
	"fmt"

	"github.com/hbeckett/clausewise/internal/model"
	"github.com/hbeckett/clausewise/internal/overlay"
	"github.com/hbeckett/clausewise/internal/speech"
)

// SummaryPlaceholder is shown when the backend returned an empty summary.
const SummaryPlaceholder = "No summary is available for this document."

// NoChecklistItems is shown when a checklist request returned an empty list.
const NoChecklistItems = "No action items found."

// Kind discriminates display fragments.
type Kind int

const (
	KindSummary Kind = iota
	KindRiskPanel
	KindSentiment
	KindReadability
	KindEntities
	KindChecklistPrompt
	KindChecklist
	KindTranslateControl
	KindAudioControl
)

// Fragment is one display unit. Which fields are set depends on Kind:
// Text for summary/sentiment/readability lines, Risks and Count for the risk
// panel, Items for entities and checklist entries.
type Fragment struct {
	Kind  Kind
	Text  string
	Count int
	Items []string
	Risks []model.Highlight
}

// Project renders result for the given display language. The summary fragment
// is always first; optional panels appear only when their data is present;
// the translate and audio controls appear only when the display language
// supports them.
func Project(result *model.AnalysisResult, displayLanguage string) []Fragment {
	var frags []Fragment

	summary := overlay.Normalize(result.Summary)
	if summary == "" {
		summary = SummaryPlaceholder
	}
	frags = append(frags, Fragment{Kind: KindSummary, Text: summary})

	if risks := highRisks(result); len(risks) > 0 {
		frags = append(frags, Fragment{
			Kind:  KindRiskPanel,
			Count: len(risks),
			Risks: risks,
		})
	}

	if s := result.Sentiment; s != nil {
		interp := overlay.Normalize(s.Interpretation)
		if interp == "" {
			interp = model.InterpretSentiment(s.Score)
		}
		frags = append(frags, Fragment{
			Kind: KindSentiment,
			Text: fmt.Sprintf("%s (score %.2f, magnitude %.2f)", interp, s.Score, s.Magnitude),
		})
	}

	if r := result.Readability; r != nil {
		frags = append(frags, Fragment{
			Kind: KindReadability,
			Text: fmt.Sprintf("%s (score %.1f)", overlay.Normalize(r.Level), r.Score),
		})
	}

	if len(result.Entities) > 0 {
		items := make([]string, len(result.Entities))
		for i, e := range result.Entities {
			items[i] = fmt.Sprintf("%s (%s)", overlay.Normalize(e.MentionText), overlay.Normalize(e.Type))
		}
		frags = append(frags, Fragment{Kind: KindEntities, Items: items})
	}

	frags = append(frags, checklistFragment(result))

	if model.TranslationSupported(displayLanguage) {
		frags = append(frags, Fragment{Kind: KindTranslateControl, Text: displayLanguage})
	}
	if speech.Supported(displayLanguage) {
		frags = append(frags, Fragment{Kind: KindAudioControl, Text: displayLanguage})
	}

	return frags
}

func highRisks(result *model.AnalysisResult) []model.Highlight {
	var risks []model.Highlight
	for _, h := range result.Highlights {
		if h.Category == model.CategoryHighRisk {
			risks = append(risks, model.Highlight{
				Text:        overlay.Normalize(h.Text),
				Category:    h.Category,
				Explanation: overlay.Normalize(h.Explanation),
			})
		}
	}
	return risks
}

// checklistFragment encodes the one-shot affordance: before the first
// checklist request the prompt is shown; afterwards the rendered list (or the
// empty notice) replaces it permanently for this result.
func checklistFragment(result *model.AnalysisResult) Fragment {
	if !result.ChecklistDone {
		return Fragment{Kind: KindChecklistPrompt}
	}
	if len(result.Checklist) == 0 {
		return Fragment{Kind: KindChecklist, Text: NoChecklistItems}
	}
	items := make([]string, len(result.Checklist))
	for i, item := range result.Checklist {
		items[i] = overlay.Normalize(item)
	}
	return Fragment{Kind: KindChecklist, Items: items}
}
