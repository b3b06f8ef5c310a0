package service

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wish2code/AI-Powered-Book-Summarizer/types"
)

func newTestFileService(t *testing.T) *FileService {
	t.Helper()
	fs, err := NewFileService(t.TempDir())
	require.NoError(t, err)
	return fs
}

func TestFileServiceSaveUpload(t *testing.T) {
	fs := newTestFileService(t)

	stored, err := fs.SaveUpload("My Book.pdf", []byte("%PDF-1.4 data"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stored, "My_Book_"), "name is sanitized, got %s", stored)
	assert.True(t, strings.HasSuffix(stored, ".pdf"))

	data, err := os.ReadFile(fs.Path(stored))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 data"), data)
}

func TestFileServiceRejectsNonPDF(t *testing.T) {
	fs := newTestFileService(t)

	for _, name := range []string{"notes.txt", "archive.zip", "noextension"} {
		_, err := fs.SaveUpload(name, []byte("data"))
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, types.ErrExtractionFailed))
	}
}

func TestFileServiceResolve(t *testing.T) {
	fs := newTestFileService(t)

	stored, err := fs.SaveUpload("report.pdf", []byte("content"))
	require.NoError(t, err)

	// Exact stored name.
	name, err := fs.Resolve(stored)
	require.NoError(t, err)
	assert.Equal(t, stored, name)

	// Original name without the timestamp suffix.
	name, err = fs.Resolve("report.pdf")
	require.NoError(t, err)
	assert.Equal(t, stored, name)

	// And without the extension.
	name, err = fs.Resolve("report")
	require.NoError(t, err)
	assert.Equal(t, stored, name)

	_, err = fs.Resolve("missing.pdf")
	assert.Error(t, err)
}

func TestFileServiceResolveIgnoresNonTimestampSuffix(t *testing.T) {
	fs := newTestFileService(t)
	require.NoError(t, os.WriteFile(fs.Path("draft_v2.pdf"), []byte("x"), 0644))

	// "v2" is not a timestamp, so "draft" must not resolve to it.
	_, err := fs.Resolve("draft")
	assert.Error(t, err)

	// The literal name still resolves.
	name, err := fs.Resolve("draft_v2.pdf")
	require.NoError(t, err)
	assert.Equal(t, "draft_v2.pdf", name)
}

func TestFileServiceReadStored(t *testing.T) {
	fs := newTestFileService(t)

	_, err := fs.SaveUpload("book.pdf", []byte("pdf bytes"))
	require.NoError(t, err)

	data, err := fs.ReadStored("book.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf bytes"), data)

	_, err = fs.ReadStored("other.pdf")
	assert.Error(t, err)
}
