package document

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentIsUntitled(t *testing.T) {
	doc := New()
	assert.Equal(t, UntitledName, doc.Name())
	assert.Empty(t, doc.Text())
}

func TestSaveThenLoadIsByteIdentical(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	texts := []string{
		"",
		"plain",
		"crlf\r\nline endings\r\n",
		"tabs\tand 🐊 emoji\nno trailing newline",
		Advertisement,
	}

	for _, text := range texts {
		require.NoError(t, Save(path, text))

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []byte(text), raw)

		loaded, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, text, loaded)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadRejectsBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob.bin")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0xc3}, 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrNotText)
}

func TestSaveIntoMissingDirectoryFails(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "nope", "notes.txt"), "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
