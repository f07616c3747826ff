package naming

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileSystemRenamer_Rename(t *testing.T) {
	a := require.New(t)
	sut := NewFileSystemRenamer()

	t.Run("Rename", func(t *testing.T) {
		dir := t.TempDir()
		oldPath := filepath.Join(dir, "a.jpg")
		newPath := filepath.Join(dir, "b.jpg")
		a.Nil(os.WriteFile(oldPath, []byte("a"), 0o644))

		a.Nil(sut.Rename(oldPath, newPath))
		a.NoFileExists(oldPath)
		a.FileExists(newPath)
	})

	t.Run("Source missing", func(t *testing.T) {
		dir := t.TempDir()
		err := sut.Rename(filepath.Join(dir, "missing.jpg"), filepath.Join(dir, "b.jpg"))
		a.ErrorIs(err, os.ErrNotExist)
	})

	t.Run("Target exists", func(t *testing.T) {
		dir := t.TempDir()
		oldPath := filepath.Join(dir, "a.jpg")
		newPath := filepath.Join(dir, "b.jpg")
		a.Nil(os.WriteFile(oldPath, []byte("a"), 0o644))
		a.Nil(os.WriteFile(newPath, []byte("b"), 0o644))

		err := sut.Rename(oldPath, newPath)
		a.ErrorIs(err, ErrTargetExists)

		content, err := os.ReadFile(newPath)
		a.Nil(err)
		a.Equal("b", string(content))
		a.FileExists(oldPath)
	})

	t.Run("Target directory missing", func(t *testing.T) {
		dir := t.TempDir()
		oldPath := filepath.Join(dir, "a.jpg")
		a.Nil(os.WriteFile(oldPath, []byte("a"), 0o644))

		err := sut.Rename(oldPath, filepath.Join(dir, "nope", "b.jpg"))
		a.NotNil(err)
		a.FileExists(oldPath)
	})
}
