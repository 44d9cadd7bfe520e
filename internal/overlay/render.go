package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hbeckett/clausewise/internal/model"
)

// Styles holds the three fixed category styles for marked spans.
type Styles struct {
	Standard   lipgloss.Style
	Cautionary lipgloss.Style
	HighRisk   lipgloss.Style
}

// DefaultStyles returns the category palette used by the dashboard.
func DefaultStyles() Styles {
	return Styles{
		Standard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("235")).
			Background(lipgloss.Color("78")), // green
		Cautionary: lipgloss.NewStyle().
			Foreground(lipgloss.Color("235")).
			Background(lipgloss.Color("214")), // amber
		HighRisk: lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("160")). // red
			Bold(true),
	}
}

// Render applies category styling to a segmentation. Marked spans are styled
// line by line so a highlight spanning a line break styles each line cleanly.
func Render(segs []Segment, st Styles) string {
	var b strings.Builder
	for _, seg := range segs {
		if !seg.Marked {
			b.WriteString(seg.Text)
			continue
		}
		style, ok := st.categoryStyle(seg.Category)
		if !ok {
			b.WriteString(seg.Text)
			continue
		}
		lines := strings.Split(seg.Text, "\n")
		for i, line := range lines {
			if i > 0 {
				b.WriteByte('\n')
			}
			if line != "" {
				b.WriteString(style.Render(line))
			}
		}
	}
	return b.String()
}

// Markup is the full overlay pipeline: segment then style.
func Markup(text string, highlights []model.Highlight, st Styles) string {
	return Render(Apply(text, highlights), st)
}

func (st Styles) categoryStyle(c model.Category) (lipgloss.Style, bool) {
	switch c {
	case model.CategoryStandard:
		return st.Standard, true
	case model.CategoryCautionary:
		return st.Cautionary, true
	case model.CategoryHighRisk:
		return st.HighRisk, true
	}
	return lipgloss.Style{}, false
}
