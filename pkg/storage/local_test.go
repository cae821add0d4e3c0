package storage_test

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eventify/eventify-backend/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(body, writer.Boundary())
	form, err := reader.ReadForm(int64(len(content)) + 10240)
	require.NoError(t, err)

	return form.File["image"][0]
}

func TestLocalStorageSave(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)

	path, err := store.Save(fileHeader(t, "poster.png", []byte("png-bytes")))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, "uploads/"))
	assert.True(t, strings.HasSuffix(path, "-poster.png"))

	saved, err := os.ReadFile(filepath.Join(dir, filepath.Base(path)))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), saved)
}

func TestLocalStorageRejectsUnsupportedExtensions(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"shell.php", "notes.txt", "anim.gif", "noext"} {
		_, err := store.Save(fileHeader(t, name, []byte("data")))
		assert.ErrorIs(t, err, storage.ErrUnsupportedType, name)
	}
}

func TestLocalStorageDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)

	path, err := store.Save(fileHeader(t, "banner.jpg", []byte("jpg-bytes")))
	require.NoError(t, err)

	require.NoError(t, store.Delete(path))
	_, err = os.Stat(filepath.Join(dir, filepath.Base(path)))
	assert.True(t, os.IsNotExist(err))

	// Deleting twice is not an error.
	assert.NoError(t, store.Delete(path))
	assert.NoError(t, store.Delete(""))
}
