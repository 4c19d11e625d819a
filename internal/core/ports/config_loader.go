package ports

import "go.trai.ch/revwatch/internal/core/domain"

// ConfigLoader defines the interface for loading the configuration snapshot.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads and validates the configuration file at path.
	// A returned error wrapping domain.ErrConfigInvalid still carries the parsed snapshot,
	// so callers can report which sections are invalid.
	Load(path string) (domain.Config, error)
}
