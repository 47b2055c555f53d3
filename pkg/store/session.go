package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/societyhub/society-api/pkg/sdk"
)

// SessionStorage persists the logged-in session between runs.
type SessionStorage interface {
	// Load returns nil without error when no session is stored.
	Load() (*sdk.AuthResponse, error)
	Save(session sdk.AuthResponse) error
	Remove() error
}

// FileSessionStorage keeps the session as a JSON file.
type FileSessionStorage struct {
	Path string
}

func NewFileSessionStorage(path string) *FileSessionStorage {
	return &FileSessionStorage{Path: path}
}

func (f *FileSessionStorage) Load() (*sdk.AuthResponse, error) {
	b, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}

	var session sdk.AuthResponse
	if err := json.Unmarshal(b, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}

// Save writes the session through a temporary file so readers never see a
// partial blob.
func (f *FileSessionStorage) Save(session sdk.AuthResponse) error {
	b, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		return fmt.Errorf("replace session: %w", err)
	}
	return nil
}

func (f *FileSessionStorage) Remove() error {
	if err := os.Remove(f.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

// MemorySessionStorage keeps the session in memory.
type MemorySessionStorage struct {
	mu      sync.Mutex
	session *sdk.AuthResponse
}

func (m *MemorySessionStorage) Load() (*sdk.AuthResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return nil, nil
	}
	s := *m.session
	return &s, nil
}

func (m *MemorySessionStorage) Save(session sdk.AuthResponse) error {
	m.mu.Lock()
	m.session = &session
	m.mu.Unlock()
	return nil
}

func (m *MemorySessionStorage) Remove() error {
	m.mu.Lock()
	m.session = nil
	m.mu.Unlock()
	return nil
}
