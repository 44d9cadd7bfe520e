package model

// Category is the risk classification of a highlight. The backend speaks the
// three literal strings "Standard", "Cautionary" and "High-Risk"; anything
// else parses to CategoryUnknown and renders unmarked.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryStandard
	CategoryCautionary
	CategoryHighRisk
)

// ParseCategory maps a wire category string to its Category. The mapping is
// total: unrecognized strings yield CategoryUnknown.
func ParseCategory(s string) Category {
	switch s {
	case "Standard":
		return CategoryStandard
	case "Cautionary":
		return CategoryCautionary
	case "High-Risk":
		return CategoryHighRisk
	}
	return CategoryUnknown
}

func (c Category) String() string {
	switch c {
	case CategoryStandard:
		return "Standard"
	case CategoryCautionary:
		return "Cautionary"
	case CategoryHighRisk:
		return "High-Risk"
	}
	return "Unknown"
}

// Highlight is one risk annotation span: the exact (whitespace-flexible)
// substring matched in the document, its category, and the rationale shown in
// the risk panel for High-Risk items.
type Highlight struct {
	Text        string
	Category    Category
	Explanation string
}

// Sentiment is the document-level sentiment block of an analysis.
type Sentiment struct {
	Score          float64 // in [-1, 1]
	Magnitude      float64 // >= 0
	Interpretation string
}

// InterpretSentiment derives the interpretation label from a score, used when
// the backend omits it. Thresholds match the backend's own labeling.
func InterpretSentiment(score float64) string {
	switch {
	case score > 0.1:
		return "Positive"
	case score < -0.1:
		return "Negative"
	}
	return "Neutral"
}

// Readability is the document complexity block of an analysis. Level is one
// of "Easy to read", "Moderate complexity" or "Complex legal language".
type Readability struct {
	Score float64
	Level string
}

// Entity is one named entity mention reported by the backend.
type Entity struct {
	MentionText string
	Type        string
	Salience    float64
}

// AnalysisResult is one backend analysis snapshot. A new analysis replaces
// the previous result wholesale; the checklist is the only field appended
// after the fact, by a separate request.
type AnalysisResult struct {
	Summary     string
	Highlights  []Highlight
	Sentiment   *Sentiment
	Readability *Readability
	Entities    []Entity

	// Checklist starts nil. ChecklistDone records that a checklist request
	// completed for this result, which permanently removes the generation
	// affordance even when the returned list is empty.
	Checklist     []string
	ChecklistDone bool
}

// HighRiskCount returns the number of High-Risk highlights.
func (r *AnalysisResult) HighRiskCount() int {
	n := 0
	for _, h := range r.Highlights {
		if h.Category == CategoryHighRisk {
			n++
		}
	}
	return n
}

// SetChecklist records the outcome of the one checklist request allowed per
// result.
func (r *AnalysisResult) SetChecklist(items []string) {
	r.Checklist = items
	r.ChecklistDone = true
}
