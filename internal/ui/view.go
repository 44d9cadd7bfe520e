package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hbeckett/clausewise/internal/model"
	"github.com/hbeckett/clausewise/internal/overlay"
	"github.com/hbeckett/clausewise/internal/render"
	"github.com/hbeckett/clausewise/internal/speech"
)

func (a *App) resize() {
	w := a.width
	if w < 20 {
		w = 20
	}
	a.paste.SetWidth(w - 4)
	a.paste.SetHeight(maxInt(a.height-8, 5))
	a.fileInput.Width = w - 10
	a.question.Width = w - 10
	a.docView.Width = w
	a.docView.Height = maxInt(a.height-6, 5)
}

// View renders the current screen.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	var body string
	switch a.screen {
	case ScreenPaste:
		body = a.pasteView()
	case ScreenLoading:
		body = a.loadingView()
	case ScreenDashboard:
		body = a.dashboardView()
	default:
		body = a.landingView()
	}

	parts := []string{body}
	if a.notice != "" {
		parts = append(parts, NoticeStyle.Width(a.width).Render(a.notice))
	}
	parts = append(parts, a.statusBar())
	return strings.Join(parts, "\n")
}

func (a App) landingView() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("clausewise · understand what you are signing"))
	b.WriteString("\n\n")
	b.WriteString("Analyze a legal document for risky clauses, plain-language summaries,\nobligations and more.\n\n")

	if a.fileMode {
		b.WriteString("Document file:\n")
		b.WriteString(a.fileInput.View())
		b.WriteString("\n")
		b.WriteString(MutedStyle.Render("enter to analyze, esc to cancel"))
		b.WriteString("\n")
	}

	if len(a.history) > 0 {
		b.WriteString("\n")
		b.WriteString(PanelTitleStyle.Render("Recent analyses"))
		b.WriteString("\n")
		for _, rec := range a.history {
			line := fmt.Sprintf("  %s · %d highlights, %d high-risk (%s)",
				rec.Name, rec.HighlightCount, rec.HighRiskCount, rec.Language)
			b.WriteString(MutedStyle.Render(line))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (a App) pasteView() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Paste document text"))
	b.WriteString("\n\n")
	b.WriteString(a.paste.View())
	b.WriteString("\n")
	return b.String()
}

func (a App) loadingView() string {
	name := a.pendingName
	if name == "" {
		name = "document"
	}
	return fmt.Sprintf("\n\n  %s Analyzing %s...\n\n  %s\n",
		a.spinner.View(), name,
		MutedStyle.Render("Extracting text and reviewing clauses with the analysis service."))
}

func (a App) dashboardView() string {
	header := TitleStyle.Render(a.doc.Name) + " " +
		StatusTextStyle.Render("· "+a.doc.DisplayLanguage)
	return header + "\n" + a.docView.View()
}

// refreshDashboard recomputes the dashboard's scrollable content from the
// current result, display language and pending flags.
func (a *App) refreshDashboard() {
	if a.result == nil {
		return
	}

	width := maxInt(a.width-4, 24)
	frags := render.Project(a.result, a.doc.DisplayLanguage)

	var sections []string
	for _, f := range frags {
		if s := a.renderFragment(f, width); s != "" {
			sections = append(sections, s)
		}
	}
	if len(a.chat) > 0 || a.answerBusy {
		sections = append(sections, a.renderChat(width))
	}
	sections = append(sections, a.renderDocument(width))

	a.docView.SetContent(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (a App) renderFragment(f render.Fragment, width int) string {
	switch f.Kind {
	case render.KindSummary:
		return PanelStyle.Width(width).Render(
			PanelTitleStyle.Render("Summary") + "\n" + f.Text)

	case render.KindRiskPanel:
		var b strings.Builder
		b.WriteString(RiskCountStyle.Render(fmt.Sprintf("%d high-risk", f.Count)))
		for _, r := range f.Risks {
			b.WriteString("\n\n")
			b.WriteString(a.overlayStyles.HighRisk.Render(r.Text))
			if r.Explanation != "" {
				b.WriteString("\n")
				b.WriteString(r.Explanation)
			}
		}
		return RiskPanelStyle.Width(width).Render(b.String())

	case render.KindSentiment:
		return PanelStyle.Width(width).Render(
			PanelTitleStyle.Render("Sentiment") + "\n" + f.Text)

	case render.KindReadability:
		return PanelStyle.Width(width).Render(
			PanelTitleStyle.Render("Readability") + "\n" + f.Text)

	case render.KindEntities:
		return PanelStyle.Width(width).Render(
			PanelTitleStyle.Render("Entities") + "\n" + strings.Join(f.Items, "\n"))

	case render.KindChecklistPrompt:
		hint := "press c to generate an obligation checklist"
		if a.checklistBusy {
			hint = "generating checklist..."
		}
		return PanelStyle.Width(width).Render(
			PanelTitleStyle.Render("Checklist") + "\n" + MutedStyle.Render(hint))

	case render.KindChecklist:
		body := f.Text
		if len(f.Items) > 0 {
			var lines []string
			for _, item := range f.Items {
				lines = append(lines, "☐ "+item)
			}
			body = strings.Join(lines, "\n")
		}
		return PanelStyle.Width(width).Render(
			PanelTitleStyle.Render("Checklist") + "\n" + body)
	}
	// Control fragments surface in the status bar, not the panel stack.
	return ""
}

func (a App) renderChat(width int) string {
	var b strings.Builder
	b.WriteString(PanelTitleStyle.Render("Questions"))
	for _, entry := range a.chat {
		b.WriteString("\n")
		b.WriteString(ChatQuestionStyle.Render("Q: " + entry.Question))
		b.WriteString("\nA: ")
		b.WriteString(overlay.Normalize(entry.Answer))
		b.WriteString("\n")
	}
	if a.answerBusy {
		b.WriteString("\n")
		b.WriteString(MutedStyle.Render("thinking..."))
	}
	return PanelStyle.Width(width).Render(b.String())
}

func (a App) renderDocument(width int) string {
	marked := overlay.Markup(a.doc.RawText, a.result.Highlights, a.overlayStyles)
	return PanelStyle.Width(width).Render(
		PanelTitleStyle.Render("Document") + "\n" + marked)
}

func (a App) statusBar() string {
	var hints []string
	hint := func(key, desc string) {
		hints = append(hints, StatusKeyStyle.Render(key)+" "+StatusTextStyle.Render(desc))
	}

	switch a.screen {
	case ScreenLanding:
		hint("p", "paste text")
		hint("o", "open file")
		hint("q", "quit")
	case ScreenPaste:
		hint("ctrl+s", "analyze")
		hint("esc", "back")
	case ScreenLoading:
		hint("", "working...")
	case ScreenDashboard:
		if a.asking {
			return StatusBarStyle.Width(a.width).Render("Question: " + a.question.View())
		}
		frags := render.Project(a.result, a.doc.DisplayLanguage)
		for _, f := range frags {
			switch f.Kind {
			case render.KindChecklistPrompt:
				if !a.checklistBusy {
					hint("c", "checklist")
				}
			case render.KindTranslateControl:
				if !a.translateBusy {
					hint("t", "translate → "+nextLanguageLabel(a.doc.DisplayLanguage))
				}
			case render.KindAudioControl:
				hint("a", a.audioLabel())
			}
		}
		hint("/", "ask")
		hint("n", "new document")
		hint("q", "quit")
	}
	return StatusBarStyle.Width(a.width).Render(strings.Join(hints, "  "))
}

// audioLabel derives the play control from the playback state. The Idle
// label names the currently selected language, whatever language the last
// clip was synthesized in.
func (a App) audioLabel() string {
	switch a.speech.State() {
	case speech.Loading:
		return "synthesizing..."
	case speech.Playing:
		return "stop audio"
	}
	return "listen (" + a.doc.DisplayLanguage + ")"
}

func nextLanguageLabel(current string) string {
	return model.NextLanguage(current)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
