package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ziadkadry99/codeexplainer/internal/explainer"
)

// Manager coordinates session state. Busy flags and copy acknowledgments are
// held in memory; everything else goes through the Store.
type Manager struct {
	store *Store

	mu     sync.Mutex
	busy   map[string]bool
	copied map[string]time.Time

	now func() time.Time
}

// NewManager creates a Manager over store.
func NewManager(store *Store) *Manager {
	return &Manager{
		store:  store,
		busy:   make(map[string]bool),
		copied: make(map[string]time.Time),
		now:    time.Now,
	}
}

// Create starts a new light-themed session.
func (m *Manager) Create(ctx context.Context) (*State, error) {
	r, err := m.store.create(ctx, ThemeLight)
	if err != nil {
		return nil, err
	}
	return m.snapshot(r), nil
}

// Get returns the current state of session id.
func (m *Manager) Get(ctx context.Context, id string) (*State, error) {
	r, err := m.store.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return m.snapshot(r), nil
}

// Ensure returns session id, creating a fresh session when id is empty or
// unknown.
func (m *Manager) Ensure(ctx context.Context, id string) (*State, error) {
	if id != "" {
		st, err := m.Get(ctx, id)
		if err == nil {
			return st, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}
	return m.Create(ctx)
}

// Begin marks session id as having a request in flight and clears the
// previous explanation. It fails with ErrBusy if a request is already in
// flight for the session.
func (m *Manager) Begin(ctx context.Context, id string) error {
	m.mu.Lock()
	if m.busy[id] {
		m.mu.Unlock()
		return ErrBusy
	}
	m.busy[id] = true
	delete(m.copied, id)
	m.mu.Unlock()

	if err := m.store.setExplanation(ctx, record{ID: id}); err != nil {
		m.clearBusy(id)
		return err
	}
	return nil
}

// Finish clears the in-flight flag and records res as the session's
// explanation. A nil res only clears the flag.
func (m *Manager) Finish(ctx context.Context, id string, res *explainer.Result) error {
	defer m.clearBusy(id)
	if res == nil {
		return nil
	}
	return m.store.setExplanation(ctx, record{
		ID:          id,
		Language:    string(res.Language),
		Explanation: res.Raw,
		HTML:        res.HTML,
		Source:      string(res.Source),
		Notice:      res.Notice,
	})
}

// Copy returns the exact text of the current explanation and starts the
// transient copy acknowledgment.
func (m *Manager) Copy(ctx context.Context, id string) (string, error) {
	r, err := m.store.get(ctx, id)
	if err != nil {
		return "", err
	}
	if r.Explanation == "" {
		return "", ErrNothingToCopy
	}

	m.mu.Lock()
	m.copied[id] = m.now()
	m.mu.Unlock()

	return r.Explanation, nil
}

// SetTheme sets the session's theme.
func (m *Manager) SetTheme(ctx context.Context, id string, theme Theme) (*State, error) {
	if _, err := ParseTheme(string(theme)); err != nil {
		return nil, err
	}
	if err := m.store.setTheme(ctx, id, theme); err != nil {
		return nil, err
	}
	return m.Get(ctx, id)
}

// ToggleTheme flips the session between light and dark.
func (m *Manager) ToggleTheme(ctx context.Context, id string) (*State, error) {
	r, err := m.store.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return m.SetTheme(ctx, id, r.Theme.Toggle())
}

func (m *Manager) clearBusy(id string) {
	m.mu.Lock()
	delete(m.busy, id)
	m.mu.Unlock()
}

func (m *Manager) snapshot(r *record) *State {
	m.mu.Lock()
	busy := m.busy[r.ID]
	copiedAt, ok := m.copied[r.ID]
	copied := ok && m.now().Sub(copiedAt) < CopyAckDuration
	if ok && !copied {
		delete(m.copied, r.ID)
	}
	m.mu.Unlock()

	return &State{
		ID:          r.ID,
		Theme:       r.Theme,
		Busy:        busy,
		Language:    r.Language,
		Explanation: r.Explanation,
		HTML:        r.HTML,
		Source:      r.Source,
		Notice:      r.Notice,
		Copied:      copied,
		UpdatedAt:   r.UpdatedAt,
	}
}
