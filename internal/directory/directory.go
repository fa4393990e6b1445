// Package directory resolves opaque access codes to recipient identity.
// The lookup is read-only to the pipeline; implementations never mutate.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/traydesk/transferdesk/internal/common"
)

// Entry is one resolved identity.
type Entry struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Directory resolves an access code to an entry. Unknown codes return
// common.ErrNotFound.
type Directory interface {
	Resolve(ctx context.Context, code string) (Entry, error)
}

// Static is an in-memory directory, typically loaded from a JSON file of
// the form {"123abc": {"name": "John", "email": "john@example.com"}}.
type Static struct {
	entries map[string]Entry
}

func NewStatic(entries map[string]Entry) *Static {
	if entries == nil {
		entries = map[string]Entry{}
	}
	return &Static{entries: entries}
}

// LoadStatic reads a JSON directory file from disk.
func LoadStatic(path string) (*Static, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read directory file: %w", err)
	}
	var entries map[string]Entry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("parse directory file: %w", err)
	}
	return NewStatic(entries), nil
}

func (s *Static) Resolve(_ context.Context, code string) (Entry, error) {
	e, ok := s.entries[code]
	if !ok {
		return Entry{}, common.ErrNotFound
	}
	return e, nil
}
