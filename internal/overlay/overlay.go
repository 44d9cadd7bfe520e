// Package overlay merges a plain-text document with category-tagged highlight
// spans into a marked segmentation. The segmentation is pure and
// terminal-agnostic; Render applies lipgloss styling on top.
package overlay

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/hbeckett/clausewise/internal/model"
)

// Segment is one run of document text, either plain or marked with a
// highlight category. Concatenating the Text of all segments reproduces the
// normalized document exactly.
type Segment struct {
	Text     string
	Category model.Category
	Marked   bool
}

type span struct {
	start, end int
	category   model.Category
}

// Normalize converts line breaks to the display convention (bare \n) and
// strips control characters so document content can never smuggle terminal
// escape sequences into the rendered view.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r == '\t' || (r >= 0x20 && r != 0x7f) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// pattern compiles a highlight text into a whitespace-flexible matcher:
// literal characters match exactly, any whitespace run in the highlight
// matches any whitespace run in the document.
func pattern(highlightText string) (*regexp.Regexp, error) {
	fields := strings.Fields(highlightText)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty highlight text")
	}
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = regexp.QuoteMeta(f)
	}
	return regexp.Compile(strings.Join(quoted, `\s+`))
}

// Apply computes the marked segmentation of text under the given highlights.
//
// Highlights are applied longest text first, so a highlight whose text is a
// substring of another's can never split the longer one's span. Every
// non-overlapping occurrence of each highlight is marked; occurrences that
// would overlap an already-claimed span are dropped. Highlights with an
// unrecognized category are left unmarked.
func Apply(text string, highlights []model.Highlight) []Segment {
	text = Normalize(text)

	hs := make([]model.Highlight, len(highlights))
	copy(hs, highlights)
	sort.SliceStable(hs, func(i, j int) bool {
		return len(hs[i].Text) > len(hs[j].Text)
	})

	var claimed []span
	for _, h := range hs {
		if h.Category == model.CategoryUnknown {
			continue
		}
		re, err := pattern(h.Text)
		if err != nil {
			continue
		}
		for _, m := range re.FindAllStringIndex(text, -1) {
			if overlapsAny(claimed, m[0], m[1]) {
				continue
			}
			claimed = append(claimed, span{m[0], m[1], h.Category})
		}
	}

	sort.Slice(claimed, func(i, j int) bool {
		return claimed[i].start < claimed[j].start
	})

	var segs []Segment
	pos := 0
	for _, s := range claimed {
		if s.start > pos {
			segs = append(segs, Segment{Text: text[pos:s.start]})
		}
		segs = append(segs, Segment{
			Text:     text[s.start:s.end],
			Category: s.category,
			Marked:   true,
		})
		pos = s.end
	}
	if pos < len(text) {
		segs = append(segs, Segment{Text: text[pos:]})
	}
	return segs
}

func overlapsAny(spans []span, start, end int) bool {
	for _, s := range spans {
		if start < s.end && end > s.start {
			return true
		}
	}
	return false
}
