package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/societyhub/society-api/pkg/sdk"
)

func TestFileSessionStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "society", "session.json")
	fs := NewFileSessionStorage(path)

	got, err := fs.Load()
	require.NoError(t, err)
	assert.Nil(t, got, "missing file is not an error")

	session := sdk.AuthResponse{User: sdk.User{ID: "u1", Email: "a@b.com", UserRole: "resident"}, Token: "tok"}
	require.NoError(t, fs.Save(session))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err = fs.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, session, *got)

	require.NoError(t, fs.Remove())
	require.NoError(t, fs.Remove(), "removing twice is fine")
	got, err = fs.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFileSessionStorage_CorruptBlob(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileSessionStorage(path).Load()
	assert.Error(t, err)
}

func TestMemorySessionStorage(t *testing.T) {
	var m MemorySessionStorage

	got, err := m.Load()
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, m.Save(sdk.AuthResponse{Token: "tok"}))
	got, err = m.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok", got.Token)

	require.NoError(t, m.Remove())
	got, _ = m.Load()
	assert.Nil(t, got)
}
