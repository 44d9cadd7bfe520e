// Package speech drives text-to-speech playback: a small Idle/Loading/Playing
// state machine over one global playback session, plus the voice table for
// supported display languages.
package speech

import (
	"errors"
	"unicode/utf8"
)

// ErrUnsupportedLanguage is returned when a play request names a language
// with no synthesis voice.
var ErrUnsupportedLanguage = errors.New("no synthesis voice for language")

// MaxSynthesisChars caps the text sent to the synthesis endpoint.
const MaxSynthesisChars = 5000

const truncationNotice = "... (text truncated for audio)"

// State is the playback session state.
type State int

const (
	Idle State = iota
	Loading
	Playing
)

func (s State) String() string {
	switch s {
	case Loading:
		return "Loading"
	case Playing:
		return "Playing"
	}
	return "Idle"
}

// Player starts playback of encoded audio and reports completion. Start
// returns a wait function that blocks until playback ends; a stopped playback
// waits to a nil error.
type Player interface {
	Start(data []byte) (wait func() error, err error)
	Stop()
}

// Request is one validated synthesis request: the (possibly truncated) text
// and the voice mapped from the language selected at request time.
type Request struct {
	Text     string
	Voice    Voice
	Language string
}

// Controller is the single playback state machine. At most one session is
// active; starting a new one tears down the previous one. Not safe for
// concurrent use: it is owned by the UI update loop.
type Controller struct {
	state    State
	language string // language at request time, not the current selection
	player   Player

	// generation counts started playbacks, so a completion signal from a
	// clip that was already superseded cannot idle a newer session.
	generation int
}

// NewController creates an idle controller playing through p.
func NewController(p Player) *Controller {
	return &Controller{player: p}
}

// Begin validates a play request. While Playing the call is a stop request:
// playback is torn down, no synthesis is issued, and both return values are
// nil. While Loading the call is ignored the same way. Otherwise the language
// must have a voice mapping or ErrUnsupportedLanguage is returned with the
// controller still Idle.
func (c *Controller) Begin(text, language string) (*Request, error) {
	switch c.state {
	case Playing:
		c.player.Stop()
		c.state = Idle
		return nil, nil
	case Loading:
		return nil, nil
	}

	voice, ok := VoiceFor(language)
	if !ok {
		return nil, ErrUnsupportedLanguage
	}

	c.state = Loading
	c.language = language
	return &Request{
		Text:     TruncateForSynthesis(text),
		Voice:    voice,
		Language: language,
	}, nil
}

// HandleSynthesized consumes the synthesis outcome. On success playback
// starts immediately and the returned wait function blocks until it ends.
// Outcomes arriving after a teardown are dropped.
func (c *Controller) HandleSynthesized(audio []byte, synthErr error) (func() error, error) {
	if c.state != Loading {
		return nil, nil
	}
	if synthErr != nil {
		c.state = Idle
		return nil, synthErr
	}

	wait, err := c.player.Start(audio)
	if err != nil {
		c.state = Idle
		return nil, err
	}
	c.state = Playing
	c.generation++
	return wait, nil
}

// Generation identifies the currently playing clip. Callers capture it when
// playback starts and pass it back to HandleFinished.
func (c *Controller) Generation() int {
	return c.generation
}

// HandleFinished records natural completion or a playback error for the
// given clip; the session returns to Idle unless a newer clip has started
// in the meantime.
func (c *Controller) HandleFinished(generation int) {
	if c.state == Playing && generation == c.generation {
		c.state = Idle
	}
}

// LanguageChanged applies the language-switch rule: a playing clip keeps
// playing unless the newly selected language has no synthesis voice, in which
// case playback is force-stopped.
func (c *Controller) LanguageChanged(language string) {
	if c.state == Playing && !Supported(language) {
		c.player.Stop()
		c.state = Idle
	}
}

// Teardown stops any playback and resets to Idle. Used by the new-document
// transition.
func (c *Controller) Teardown() {
	if c.state == Playing {
		c.player.Stop()
	}
	c.state = Idle
}

// State returns the current session state.
func (c *Controller) State() State {
	return c.state
}

// RequestLanguage returns the language captured when the active session was
// requested, so a later language switch cannot relabel a playing clip.
func (c *Controller) RequestLanguage() string {
	return c.language
}

// TruncateForSynthesis limits text to the synthesis cap, appending the
// truncation notice when anything was cut.
func TruncateForSynthesis(text string) string {
	if len(text) <= MaxSynthesisChars {
		return text
	}
	cut := MaxSynthesisChars
	// Do not split a multi-byte rune at the boundary.
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + truncationNotice
}
