package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_UploadAndURL(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewLocalStorage(dir, "http://localhost:8080/uploads/")
	require.NoError(t, err)

	key, err := s.Upload(ctx, strings.NewReader("img"), "evidence/SPX-1/a.jpg", "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "evidence/SPX-1/a.jpg", key)

	data, err := os.ReadFile(filepath.Join(dir, "evidence", "SPX-1", "a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "img", string(data))

	url, err := s.GetURL(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/evidence/SPX-1/a.jpg", url)
}

func TestLocalStorage_TraversalStaysInsideBase(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewLocalStorage(filepath.Join(dir, "uploads"), "/uploads")
	require.NoError(t, err)

	key, err := s.Upload(ctx, strings.NewReader("x"), "../../outside.txt", "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "outside.txt", key)

	_, err = os.Stat(filepath.Join(dir, "outside.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorage_DeleteMissingIsNoop(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	assert.NoError(t, s.Delete(context.Background(), "evidence/missing.jpg"))
}
