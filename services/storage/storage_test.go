package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStorage struct {
	result *Result
	err    error
	calls  int
}

func (s *stubStorage) Upload(_ context.Context, _, _, _, _ string, _ []byte) (*Result, error) {
	s.calls++
	return s.result, s.err
}

func TestFallbackStorageUsesPrimary(t *testing.T) {
	primary := &stubStorage{result: &Result{StoredFileName: "a.png", StorageKey: "k", Storage: "s3"}}
	fallback := &stubStorage{result: &Result{Storage: "local"}}
	store := &FallbackStorage{Primary: primary, Fallback: fallback}

	result, err := store.Upload(context.Background(), "BO-20260315-123456", "invoice", "a.png", "image/png", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "s3", result.Storage)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, fallback.calls)
}

func TestFallbackStorageFallsBackOnMimeRejection(t *testing.T) {
	primary := &stubStorage{err: ErrUnsupportedMimeType}
	fallback := &stubStorage{result: &Result{StoredFileName: "a.zip", StorageKey: "p", Storage: "local"}}
	store := &FallbackStorage{Primary: primary, Fallback: fallback}

	result, err := store.Upload(context.Background(), "BO-20260315-123456", "docs", "a.zip", "application/zip", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "local", result.Storage)
	assert.Equal(t, 1, fallback.calls)
}

func TestFallbackStoragePropagatesOtherErrors(t *testing.T) {
	primary := &stubStorage{err: errors.New("connection refused")}
	fallback := &stubStorage{}
	store := &FallbackStorage{Primary: primary, Fallback: fallback}

	_, err := store.Upload(context.Background(), "BO-20260315-123456", "docs", "a.png", "image/png", []byte("x"))
	assert.Error(t, err)
	assert.Equal(t, 0, fallback.calls)
}

func TestLocalStorageWritesUnderReservationPath(t *testing.T) {
	base := t.TempDir()
	store := &LocalStorage{BaseDir: base}

	result, err := store.Upload(context.Background(), "MR-20260315-123456", "reference", "spec.pdf", "application/pdf", []byte("content"))
	require.NoError(t, err)
	assert.Equal(t, "local", result.Storage)
	assert.Equal(t, ".pdf", filepath.Ext(result.StoredFileName))

	data, err := os.ReadFile(result.StorageKey)
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), data)

	// The key keeps the bucket path convention
	assert.Equal(t, filepath.Join(base, "MR-20260315-123456", "reference", result.StoredFileName), result.StorageKey)
}

func TestGenerateFileNameKeepsExtension(t *testing.T) {
	name := generateFileName("photo.JPG")
	assert.Equal(t, ".JPG", filepath.Ext(name))
	assert.NotEqual(t, "photo.JPG", name)
}
