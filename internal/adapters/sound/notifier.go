// Package sound gives audible feedback by playing audio files and speaking phrases.
package sound

import (
	"context"
	"io"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/revwatch/internal/core/domain"
	"go.trai.ch/revwatch/internal/core/ports"
)

// AudioExtensions lists the file extensions picked up from sound directories.
var AudioExtensions = []string{".wav", ".mp3", ".ogg", ".flac"}

// Notifier implements ports.Notifier.
type Notifier struct {
	starter  ports.ProcessStarter
	logger   ports.Logger
	commands Commands
	bell     io.Writer

	mu  sync.Mutex
	rnd *rand.Rand
}

var _ ports.Notifier = (*Notifier)(nil)

// Option configures a Notifier.
type Option func(*Notifier)

// WithRand sets the source used to sample sounds.
func WithRand(r *rand.Rand) Option {
	return func(n *Notifier) { n.rnd = r }
}

// WithCommands overrides the platform commands.
func WithCommands(c Commands) Option {
	return func(n *Notifier) { n.commands = c }
}

// WithBell sets the writer receiving the alert character.
func WithBell(w io.Writer) Option {
	return func(n *Notifier) { n.bell = w }
}

// NewNotifier creates a Notifier for the running platform.
func NewNotifier(starter ports.ProcessStarter, logger ports.Logger, opts ...Option) *Notifier {
	n := &Notifier{
		starter:  starter,
		logger:   logger,
		commands: DefaultCommands(),
		bell:     os.Stderr,
		rnd:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), //nolint:gosec // not security sensitive
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Play samples one candidate and plays it without waiting for playback to finish.
// A directory candidate is resolved by sampling among the audio files below it.
func (n *Notifier) Play(ctx context.Context, sounds domain.SoundSelector) {
	path, ok := n.Resolve(sounds)
	if !ok {
		return
	}

	proc, err := n.starter.Start(ctx, n.commands.Play(path))
	if err != nil {
		n.logger.Warn("failed to play sound " + path + ": " + err.Error())
		return
	}
	go reap(proc)
}

// Speak reads the phrase aloud and waits until it has been spoken.
func (n *Notifier) Speak(ctx context.Context, phrase string) {
	if strings.TrimSpace(phrase) == "" {
		return
	}

	proc, err := n.starter.Start(ctx, n.commands.Speak(phrase))
	if err != nil {
		n.logger.Warn("failed to speak: " + err.Error())
		return
	}
	reap(proc)
}

// Beep writes the terminal bell character.
func (n *Notifier) Beep() {
	_, _ = io.WriteString(n.bell, "\a")
}

// Resolve picks the audio file to play for a selector.
func (n *Notifier) Resolve(sounds domain.SoundSelector) (string, bool) {
	if len(sounds) == 0 {
		return "", false
	}

	candidate := sounds[n.intN(len(sounds))]
	info, err := os.Stat(candidate)
	if err != nil {
		n.logger.Warn("sound path " + candidate + " does not exist")
		return "", false
	}
	if !info.IsDir() {
		return candidate, true
	}

	files := findAudioFiles(candidate)
	if len(files) == 0 {
		n.logger.Warn("no sound found in " + candidate)
		return "", false
	}
	return files[n.intN(len(files))], true
}

func (n *Notifier) intN(size int) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.rnd.IntN(size)
}

func findAudioFiles(dir string) []string {
	var files []string
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // unreadable entries are skipped
		}
		if !d.IsDir() && slices.Contains(AudioExtensions, strings.ToLower(filepath.Ext(path))) {
			files = append(files, path)
		}
		return nil
	})
	return files
}

func reap(proc ports.Process) {
	for range proc.Lines() {
	}
	_, _ = proc.Wait()
}
