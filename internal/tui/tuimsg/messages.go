// Package tuimsg defines the messages scenes send to the root TUI model.
package tuimsg

import (
	"github.com/rgehrsitz/creatorcalc/internal/domain"
)

// PlatformSelectedMsg opens the calculator for a platform
type PlatformSelectedMsg struct {
	PlatformID string
}

// SaveSnapshotMsg asks the root model to write the calculator state to disk
type SaveSnapshotMsg struct {
	Entry  domain.PlatformEntry
	Region string
	Niche  string
	Period string
}

// SaveCompleteMsg reports the outcome of a snapshot save
type SaveCompleteMsg struct {
	Path string
	Err  error
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}
