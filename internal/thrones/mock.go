package thrones

import (
	"context"
	"net/http"
	"sync"
)

// MockAPI is an in-memory API for tests. It serves a fixed character list and
// records every call.
type MockAPI struct {
	mu         sync.Mutex
	characters []Character

	// Err, when set, is returned by every call.
	Err error

	ListCalls int
	GetCalls  []int
	Saved     []CharacterUpdate
}

var _ API = (*MockAPI)(nil)

// NewMockAPI creates a MockAPI serving the given characters.
func NewMockAPI(characters ...Character) *MockAPI {
	return &MockAPI{characters: characters}
}

func (m *MockAPI) ListCharacters(_ context.Context) ([]Character, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ListCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]Character, len(m.characters))
	copy(out, m.characters)
	return out, nil
}

func (m *MockAPI) GetCharacter(_ context.Context, id int) (*Character, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.GetCalls = append(m.GetCalls, id)
	if m.Err != nil {
		return nil, m.Err
	}
	for _, c := range m.characters {
		if c.ID == id {
			char := c
			return &char, nil
		}
	}
	return nil, &ErrStatus{Op: "get character", Code: http.StatusNotFound}
}

func (m *MockAPI) SaveCharacter(_ context.Context, update CharacterUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Saved = append(m.Saved, update)
	return m.Err
}

// SetErr changes the error returned by subsequent calls.
func (m *MockAPI) SetErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Err = err
}

// ListCount returns the number of ListCharacters calls made.
func (m *MockAPI) ListCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ListCalls
}

// SavedUpdates returns a copy of every update received.
func (m *MockAPI) SavedUpdates() []CharacterUpdate {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]CharacterUpdate, len(m.Saved))
	copy(out, m.Saved)
	return out
}
