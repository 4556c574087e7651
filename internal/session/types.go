// Package session owns per-visitor UI state: theme, the in-flight flag and
// the latest explanation. State changes only through Manager methods.
package session

import (
	"errors"
	"fmt"
	"time"
)

// Theme is the display mode.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme validates s as a Theme.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
	}
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

var (
	ErrNotFound      = errors.New("session not found")
	ErrBusy          = errors.New("an explanation is already in progress")
	ErrNothingToCopy = errors.New("no explanation to copy")
	ErrInvalidTheme  = errors.New("invalid theme")
)

// CopyAckDuration is how long State.Copied stays true after a copy.
const CopyAckDuration = 2 * time.Second

// State is a snapshot of one session.
type State struct {
	ID          string    `json:"id"`
	Theme       Theme     `json:"theme"`
	Busy        bool      `json:"busy"`
	Language    string    `json:"language,omitempty"`
	Explanation string    `json:"explanation"`
	HTML        string    `json:"html"`
	Source      string    `json:"source,omitempty"`
	Notice      string    `json:"notice,omitempty"`
	Copied      bool      `json:"copied"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// record is the persisted part of State.
type record struct {
	ID          string
	Theme       Theme
	Language    string
	Explanation string
	HTML        string
	Source      string
	Notice      string
	UpdatedAt   time.Time
}
