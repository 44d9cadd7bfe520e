package ui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/hbeckett/clausewise/internal/gateway"
	"github.com/hbeckett/clausewise/internal/logging"
	"github.com/hbeckett/clausewise/internal/model"
	"github.com/hbeckett/clausewise/internal/overlay"
	"github.com/hbeckett/clausewise/internal/speech"
	"github.com/hbeckett/clausewise/internal/store"
)

// Screen is the lifecycle state: which screen the user sees.
type Screen int

const (
	ScreenLanding Screen = iota
	ScreenPaste
	ScreenLoading
	ScreenDashboard
)

func (s Screen) String() string {
	switch s {
	case ScreenPaste:
		return "Paste"
	case ScreenLoading:
		return "Loading"
	case ScreenDashboard:
		return "Dashboard"
	}
	return "Landing"
}

// Backend is the gateway surface the UI drives. Satisfied by *gateway.Client.
type Backend interface {
	ExtractDocument(ctx context.Context, path string) (gateway.Extraction, error)
	Analyze(ctx context.Context, text string) (*model.AnalysisResult, error)
	GenerateChecklist(ctx context.Context, text string) ([]string, error)
	TranslateSummary(ctx context.Context, summary, targetLanguage string) (string, error)
	Synthesize(ctx context.Context, text, voiceName, languageCode string) ([]byte, error)
	Ask(ctx context.Context, documentText, question string) (string, error)
}

// Archive is the history surface. Satisfied by *store.Store; may be nil when
// no archive is available.
type Archive interface {
	SaveAnalysis(rec store.Record) error
	Recent(limit int) ([]store.Record, error)
}

// ChatEntry is one answered question in the session's Q&A log.
type ChatEntry struct {
	Question string
	Answer   string
}

// App is the root Bubble Tea model: the document lifecycle state machine and
// all screen state. App does not perform I/O itself; backend calls run as
// commands and come back as session-tagged messages.
type App struct {
	backend Backend
	archive Archive
	speech  *speech.Controller

	screen Screen
	width  int
	height int
	ready  bool

	// pendingSession tags the ingestion in flight while on the loading
	// screen. Cleared by the reset transition so stale responses drop.
	pendingSession string
	pendingName    string

	doc    model.Document
	result *model.AnalysisResult
	chat   []ChatEntry

	history      []store.Record
	historyLimit int

	fileInput textinput.Model
	fileMode  bool

	paste textarea.Model

	spinner spinner.Model

	docView       viewport.Model
	question      textinput.Model
	asking        bool
	checklistBusy bool
	translateBusy bool
	answerBusy    bool

	overlayStyles overlay.Styles
	notice        string
}

// NewApp creates the application model. archive may be nil.
func NewApp(backend Backend, archive Archive, ctrl *speech.Controller, historyLimit int) App {
	ta := textarea.New()
	ta.Placeholder = "Paste the legal document text here..."
	ta.CharLimit = 0

	fi := textinput.New()
	fi.Placeholder = "/path/to/document.pdf"

	q := textinput.New()
	q.Placeholder = "Ask a question about this document..."

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorHighlight)

	if historyLimit <= 0 {
		historyLimit = 10
	}

	return App{
		backend:       backend,
		archive:       archive,
		speech:        ctrl,
		historyLimit:  historyLimit,
		fileInput:     fi,
		paste:         ta,
		question:      q,
		spinner:       sp,
		overlayStyles: overlay.DefaultStyles(),
	}
}

// Init loads the recent-analysis list for the landing screen.
func (a App) Init() tea.Cmd {
	return a.loadHistory()
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.resize()
		if a.screen == ScreenDashboard {
			a.refreshDashboard()
		}
		return a, nil

	case spinner.TickMsg:
		if a.screen != ScreenLoading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case HistoryLoaded:
		if msg.Err != nil {
			logging.Warn("history load failed", "error", msg.Err)
			return a, nil
		}
		a.history = msg.Records
		return a, nil

	case AnalysisDone:
		return a.handleAnalysisDone(msg)

	case ChecklistDone:
		if msg.SessionID != a.doc.ID {
			return a, nil
		}
		a.checklistBusy = false
		if msg.Err != nil {
			a.notice = userMessage(msg.Err)
		} else {
			a.result.SetChecklist(msg.Items)
		}
		a.refreshDashboard()
		return a, nil

	case TranslationDone:
		return a.handleTranslationDone(msg)

	case SynthesisDone:
		if msg.SessionID != a.doc.ID {
			return a, nil
		}
		wait, err := a.speech.HandleSynthesized(msg.Audio, msg.Err)
		if err != nil {
			a.notice = userMessage(err)
		}
		a.refreshDashboard()
		if wait != nil {
			sessionID := msg.SessionID
			generation := a.speech.Generation()
			return a, func() tea.Msg {
				return PlaybackFinished{SessionID: sessionID, Generation: generation, Err: wait()}
			}
		}
		return a, nil

	case PlaybackFinished:
		a.speech.HandleFinished(msg.Generation)
		if msg.Err != nil && msg.SessionID == a.doc.ID {
			a.notice = userMessage(msg.Err)
		}
		if a.screen == ScreenDashboard {
			a.refreshDashboard()
		}
		return a, nil

	case AnswerDone:
		if msg.SessionID != a.doc.ID {
			return a, nil
		}
		a.answerBusy = false
		if msg.Err != nil {
			a.notice = userMessage(msg.Err)
		} else {
			a.chat = append(a.chat, ChatEntry{Question: msg.Question, Answer: msg.Answer})
		}
		a.refreshDashboard()
		return a, nil

	case ArchiveSaved:
		if msg.Err != nil {
			logging.Warn("archive save failed", "error", msg.Err)
		}
		return a, nil
	}

	return a, nil
}

func (a App) handleAnalysisDone(msg AnalysisDone) (tea.Model, tea.Cmd) {
	if msg.SessionID != a.pendingSession {
		logging.Debug("stale analysis dropped", "session", msg.SessionID)
		return a, nil
	}
	a.pendingSession = ""
	a.pendingName = ""

	if msg.Err != nil {
		// Failed ingestion routes back to Landing through the reset
		// transition; no partial dashboard state survives.
		notice := userMessage(msg.Err)
		m, cmd := a.reset()
		app := m.(App)
		app.notice = notice
		return app, cmd
	}

	a.doc = model.NewDocument(msg.SessionID, msg.Name, msg.RawText)
	a.result = msg.Result
	if len(a.result.Entities) == 0 && len(msg.Entities) > 0 {
		a.result.Entities = msg.Entities
	}
	a.screen = ScreenDashboard
	a.notice = ""
	a.refreshDashboard()
	a.docView.GotoTop()

	logging.Info("analysis complete", "name", msg.Name,
		"highlights", len(a.result.Highlights), "high_risk", a.result.HighRiskCount())

	return a, a.archiveCurrent()
}

func (a App) handleTranslationDone(msg TranslationDone) (tea.Model, tea.Cmd) {
	if msg.SessionID != a.doc.ID {
		return a, nil
	}
	a.translateBusy = false
	if msg.Err != nil {
		a.notice = userMessage(msg.Err)
		a.refreshDashboard()
		return a, nil
	}

	a.doc.DisplayLanguage = msg.Language
	a.result.Summary = msg.Summary
	// A switch to a language without a synthesis voice force-stops playback.
	a.speech.LanguageChanged(msg.Language)
	a.refreshDashboard()
	return a, a.archiveCurrent()
}

// reset is the single state-clearing transition: from any screen back to
// Landing with the document, result, chat log and playback session cleared.
func (a App) reset() (tea.Model, tea.Cmd) {
	a.speech.Teardown()
	a.doc = model.Document{}
	a.result = nil
	a.chat = nil
	a.pendingSession = ""
	a.pendingName = ""
	a.checklistBusy = false
	a.translateBusy = false
	a.answerBusy = false
	a.asking = false
	a.fileMode = false
	a.notice = ""
	a.paste.Reset()
	a.fileInput.Reset()
	a.question.Reset()
	a.screen = ScreenLanding
	return a, a.loadHistory()
}

// Commands

func (a App) loadHistory() tea.Cmd {
	if a.archive == nil {
		return nil
	}
	archive, limit := a.archive, a.historyLimit
	return func() tea.Msg {
		recs, err := archive.Recent(limit)
		return HistoryLoaded{Records: recs, Err: err}
	}
}

func (a App) archiveCurrent() tea.Cmd {
	if a.archive == nil || a.result == nil {
		return nil
	}
	rec := store.Record{
		ID:             a.doc.ID,
		Name:           a.doc.Name,
		Summary:        a.result.Summary,
		Language:       a.doc.DisplayLanguage,
		HighlightCount: len(a.result.Highlights),
		HighRiskCount:  a.result.HighRiskCount(),
	}
	archive := a.archive
	return func() tea.Msg {
		return ArchiveSaved{Err: archive.SaveAnalysis(rec)}
	}
}

// startPasteAnalysis begins ingestion of pasted text.
func (a App) startPasteAnalysis(text string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(text) == "" {
		a.notice = "Please paste some document text first."
		return a, nil
	}
	return a.startIngestion(model.PastedName, func(ctx context.Context, sessionID string) tea.Msg {
		result, err := a.backend.Analyze(ctx, text)
		return AnalysisDone{SessionID: sessionID, Name: model.PastedName, RawText: text, Result: result, Err: err}
	})
}

// startFileAnalysis begins ingestion of an uploaded file: extraction first,
// then analysis of the extracted text. The two calls are strictly sequential.
func (a App) startFileAnalysis(path string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(path) == "" {
		a.notice = "Enter the path of a document to analyze."
		return a, nil
	}
	name := filepath.Base(path)
	backend := a.backend
	return a.startIngestion(name, func(ctx context.Context, sessionID string) tea.Msg {
		ex, err := backend.ExtractDocument(ctx, path)
		if err != nil {
			return AnalysisDone{SessionID: sessionID, Name: name, Err: err}
		}
		result, err := backend.Analyze(ctx, ex.Text)
		return AnalysisDone{
			SessionID: sessionID,
			Name:      name,
			RawText:   ex.Text,
			Entities:  ex.Entities,
			Result:    result,
			Err:       err,
		}
	})
}

func (a App) startIngestion(name string, run func(ctx context.Context, sessionID string) tea.Msg) (tea.Model, tea.Cmd) {
	sessionID := uuid.NewString()
	a.pendingSession = sessionID
	a.pendingName = name
	a.screen = ScreenLoading
	a.notice = ""
	logging.Info("ingestion started", "name", name, "session", sessionID)
	return a, tea.Batch(
		a.spinner.Tick,
		func() tea.Msg { return run(context.Background(), sessionID) },
	)
}

// userMessage converts an error into the single user-visible notification.
func userMessage(err error) string {
	if err == nil {
		return ""
	}
	var ge *gateway.Error
	if errors.As(err, &ge) {
		switch ge.Kind {
		case gateway.NetworkFailure:
			return "Could not reach the analysis service. Check your connection and try again."
		case gateway.ServerError:
			return fmt.Sprintf("The analysis service reported an error (status %d).", ge.Status)
		case gateway.MissingData:
			if ge.Detail != "" {
				return ge.Detail
			}
			return "The analysis service returned an incomplete response."
		case gateway.UnsupportedLanguage:
			return "That language is not supported."
		case gateway.UserInputError:
			if ge.Detail != "" {
				return ge.Detail
			}
			return "Invalid input."
		}
	}
	if errors.Is(err, speech.ErrUnsupportedLanguage) {
		return "Audio is not available for the current language."
	}
	return err.Error()
}
