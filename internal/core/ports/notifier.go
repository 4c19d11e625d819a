package ports

import (
	"context"

	"go.trai.ch/revwatch/internal/core/domain"
)

// Notifier gives audible feedback. It never fails: problems are logged and skipped.
//
//go:generate mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks
type Notifier interface {
	// Play plays one asset sampled from the selector.
	Play(ctx context.Context, sounds domain.SoundSelector)
	// Speak reads the phrase aloud.
	Speak(ctx context.Context, phrase string)
	// Beep emits the system alert sound.
	Beep()
}
