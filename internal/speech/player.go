package speech

import (
	"fmt"
	"os"
	"os/exec"
	"sync"

	"github.com/hbeckett/clausewise/internal/logging"
)

// playerCandidates are tried in order; the first binary on PATH wins. The
// backend returns MP3 payloads, so every candidate must handle MP3 input.
var playerCandidates = [][]string{
	{"mpg123", "-q"},
	{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"},
	{"afplay"},
}

// CommandPlayer plays MP3 audio through an external player binary.
type CommandPlayer struct {
	argv []string

	mu      sync.Mutex
	cmd     *exec.Cmd
	stopped bool
}

// NewCommandPlayer locates a usable player binary.
func NewCommandPlayer() (*CommandPlayer, error) {
	for _, candidate := range playerCandidates {
		if _, err := exec.LookPath(candidate[0]); err == nil {
			logging.Debug("audio player selected", "binary", candidate[0])
			return &CommandPlayer{argv: candidate}, nil
		}
	}
	return nil, fmt.Errorf("no audio player found (tried mpg123, ffplay, afplay)")
}

// Start writes the audio to a temp file and launches the player. The returned
// wait function blocks until the player exits and cleans up the temp file.
// A playback ended by Stop waits to a nil error.
func (p *CommandPlayer) Start(data []byte) (func() error, error) {
	tmp, err := os.CreateTemp("", "clausewise-*.mp3")
	if err != nil {
		return nil, fmt.Errorf("write audio: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("write audio: %w", err)
	}
	tmp.Close()

	args := append(append([]string{}, p.argv[1:]...), tmp.Name())
	cmd := exec.Command(p.argv[0], args...)
	if err := cmd.Start(); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("start player: %w", err)
	}

	p.mu.Lock()
	p.cmd = cmd
	p.stopped = false
	p.mu.Unlock()

	wait := func() error {
		err := cmd.Wait()
		os.Remove(tmp.Name())

		p.mu.Lock()
		stopped := p.stopped
		if p.cmd == cmd {
			p.cmd = nil
		}
		p.mu.Unlock()

		if stopped {
			return nil
		}
		if err != nil {
			return fmt.Errorf("playback: %w", err)
		}
		return nil
	}
	return wait, nil
}

// DisabledPlayer is the fallback when no player binary is on PATH. Every
// start attempt fails, which surfaces as a notification instead of a crash.
type DisabledPlayer struct{}

func (DisabledPlayer) Start([]byte) (func() error, error) {
	return nil, fmt.Errorf("audio playback unavailable: no player binary found")
}

func (DisabledPlayer) Stop() {}

// Stop kills the active player process, if any.
func (p *CommandPlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cmd != nil && p.cmd.Process != nil {
		p.stopped = true
		_ = p.cmd.Process.Kill()
	}
}
