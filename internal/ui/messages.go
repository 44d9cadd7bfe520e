// Package ui provides the Bubble Tea TUI for clausewise: the landing, paste,
// loading and dashboard screens and the document lifecycle between them.
package ui

import (
	"github.com/hbeckett/clausewise/internal/model"
	"github.com/hbeckett/clausewise/internal/store"
)

// Every message produced by a backend call carries the session ID it was
// issued for. A message whose session no longer matches the live document is
// stale (a "new document" reset happened while it was in flight) and is
// dropped instead of applied.

// HistoryLoaded is sent when the landing screen's recent-analysis list has
// been read from the archive.
type HistoryLoaded struct {
	Records []store.Record
	Err     error
}

// AnalysisDone is sent when ingestion completes: extraction (for files)
// followed by the full analysis. Err covers either stage.
type AnalysisDone struct {
	SessionID string
	Name      string
	RawText   string
	Entities  []model.Entity // extraction entities, used when analysis reported none
	Result    *model.AnalysisResult
	Err       error
}

// ChecklistDone is sent when the checklist request finishes.
type ChecklistDone struct {
	SessionID string
	Items     []string
	Err       error
}

// TranslationDone is sent when a summary translation finishes.
type TranslationDone struct {
	SessionID string
	Language  string // target language of the request
	Summary   string
	Err       error
}

// SynthesisDone is sent when the speech endpoint returns audio.
type SynthesisDone struct {
	SessionID string
	Audio     []byte
	Err       error
}

// PlaybackFinished is sent when audio playback ends, naturally or with an
// error. Generation names the clip that ended; a completion from a clip the
// controller already superseded is ignored.
type PlaybackFinished struct {
	SessionID  string
	Generation int
	Err        error
}

// AnswerDone is sent when a question has been answered.
type AnswerDone struct {
	SessionID string
	Question  string
	Answer    string
	Err       error
}

// ArchiveSaved is sent after an analysis was written to the archive.
type ArchiveSaved struct {
	Err error
}
