package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hbeckett/clausewise/internal/model"
)

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.screen {
	case ScreenLanding:
		return a.handleLandingKey(msg)
	case ScreenPaste:
		return a.handlePasteKey(msg)
	case ScreenLoading:
		// Single-flight: no initiation affordances while a request is
		// pending, and ingestion has no cancellation path.
		return a, nil
	case ScreenDashboard:
		return a.handleDashboardKey(msg)
	}
	return a, nil
}

func (a App) handleLandingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.fileMode {
		switch msg.String() {
		case "enter":
			path := strings.TrimSpace(a.fileInput.Value())
			a.fileMode = false
			a.fileInput.Blur()
			return a.startFileAnalysis(path)
		case "esc":
			a.fileMode = false
			a.fileInput.Blur()
			a.fileInput.Reset()
			return a, nil
		default:
			var cmd tea.Cmd
			a.fileInput, cmd = a.fileInput.Update(msg)
			return a, cmd
		}
	}

	// Any key dismisses the notification.
	a.notice = ""

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "p":
		a.screen = ScreenPaste
		a.paste.Focus()
		return a, textarea.Blink
	case "o":
		a.fileMode = true
		return a, a.fileInput.Focus()
	case "n":
		return a.reset()
	}
	return a, nil
}

func (a App) handlePasteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.paste.Blur()
		a.notice = ""
		a.screen = ScreenLanding
		return a, nil
	case "ctrl+s":
		return a.startPasteAnalysis(a.paste.Value())
	default:
		var cmd tea.Cmd
		a.paste, cmd = a.paste.Update(msg)
		return a, cmd
	}
}

func (a App) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.asking {
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(a.question.Value())
			a.asking = false
			a.question.Blur()
			a.question.Reset()
			if q == "" {
				return a, nil
			}
			return a.startQuestion(q)
		case "esc":
			a.asking = false
			a.question.Blur()
			a.question.Reset()
			return a, nil
		default:
			var cmd tea.Cmd
			a.question, cmd = a.question.Update(msg)
			return a, cmd
		}
	}

	a.notice = ""

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "n":
		return a.reset()
	case "c":
		return a.startChecklist()
	case "t":
		return a.startTranslation()
	case "a":
		return a.toggleAudio()
	case "/":
		a.asking = true
		return a, a.question.Focus()
	default:
		var cmd tea.Cmd
		a.docView, cmd = a.docView.Update(msg)
		return a, cmd
	}
}

// Dashboard actions. Each one is single-flight: the triggering key is a
// no-op while its request is pending, and the pending flag is cleared when
// the tagged response arrives so the control returns to its enabled state.

func (a App) startChecklist() (tea.Model, tea.Cmd) {
	if a.result == nil || a.result.ChecklistDone || a.checklistBusy {
		return a, nil
	}
	a.checklistBusy = true
	a.refreshDashboard()

	backend, sessionID, text := a.backend, a.doc.ID, a.doc.RawText
	return a, func() tea.Msg {
		items, err := backend.GenerateChecklist(context.Background(), text)
		return ChecklistDone{SessionID: sessionID, Items: items, Err: err}
	}
}

func (a App) startTranslation() (tea.Model, tea.Cmd) {
	if a.result == nil || a.translateBusy {
		return a, nil
	}
	target := model.NextLanguage(a.doc.DisplayLanguage)
	a.translateBusy = true
	a.refreshDashboard()

	backend, sessionID, summary := a.backend, a.doc.ID, a.result.Summary
	return a, func() tea.Msg {
		translated, err := backend.TranslateSummary(context.Background(), summary, target)
		return TranslationDone{SessionID: sessionID, Language: target, Summary: translated, Err: err}
	}
}

func (a App) toggleAudio() (tea.Model, tea.Cmd) {
	if a.result == nil {
		return a, nil
	}
	req, err := a.speech.Begin(a.result.Summary, a.doc.DisplayLanguage)
	if err != nil {
		a.notice = userMessage(err)
		return a, nil
	}
	a.refreshDashboard()
	if req == nil {
		// Acted as a stop request, or synthesis already in flight.
		return a, nil
	}

	backend, sessionID := a.backend, a.doc.ID
	text, voice := req.Text, req.Voice
	return a, func() tea.Msg {
		audio, err := backend.Synthesize(context.Background(), text, voice.Name, voice.LanguageCode)
		return SynthesisDone{SessionID: sessionID, Audio: audio, Err: err}
	}
}

func (a App) startQuestion(q string) (tea.Model, tea.Cmd) {
	if a.result == nil || a.answerBusy {
		return a, nil
	}
	a.answerBusy = true
	a.refreshDashboard()

	backend, sessionID, text := a.backend, a.doc.ID, a.doc.RawText
	return a, func() tea.Msg {
		answer, err := backend.Ask(context.Background(), text, q)
		return AnswerDone{SessionID: sessionID, Question: q, Answer: answer, Err: err}
	}
}
