package directory

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/traydesk/transferdesk/internal/common"
)

func TestStaticResolve(t *testing.T) {
	d := NewStatic(map[string]Entry{
		"123abc": {Name: "John", Email: "john@example.com"},
	})

	e, err := d.Resolve(context.Background(), "123abc")
	assert.NoError(t, err)
	assert.Equal(t, "John", e.Name)
	assert.Equal(t, "john@example.com", e.Email)
}

func TestStaticUnknownCode(t *testing.T) {
	d := NewStatic(nil)

	_, err := d.Resolve(context.Background(), "nope")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestLoadStatic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "directory.json")
	data := `{"456def": {"name": "Jane", "email": "jane@example.com"}}`
	assert.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	d, err := LoadStatic(path)
	assert.NoError(t, err)

	e, err := d.Resolve(context.Background(), "456def")
	assert.NoError(t, err)
	assert.Equal(t, "Jane", e.Name)
}

func TestLoadStaticBadFile(t *testing.T) {
	_, err := LoadStatic(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	_, err = LoadStatic(path)
	assert.Error(t, err)
}
