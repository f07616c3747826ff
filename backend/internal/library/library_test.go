package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"vincit.fi/exif-renamer/common/testutil"
)

func TestLibrary_InitializeFromDirectory(t *testing.T) {
	a := require.New(t)

	dir := t.TempDir()
	testutil.WriteFile(t, dir, "b.JPG", testutil.PlainJpeg())
	testutil.WriteFile(t, dir, "a.png", testutil.PlainJpeg())
	testutil.WriteFile(t, dir, "notes.txt", []byte("text"))
	a.Nil(os.Mkdir(filepath.Join(dir, "folder.jpg"), 0o755))

	sut := NewLibrary()
	a.Nil(sut.InitializeFromDirectory(dir))
	a.Equal(dir, sut.Directory())

	images := sut.GetImages()
	a.Len(images, 2)
	a.Equal("a.png", images[0].FileName())
	a.Equal("b.JPG", images[1].FileName())

	t.Run("Get by name", func(t *testing.T) {
		a.Equal(filepath.Join(dir, "b.JPG"), sut.GetImageByName("b.JPG").Path())
		a.Nil(sut.GetImageByName("notes.txt"))
	})

	t.Run("Reload", func(t *testing.T) {
		testutil.WriteFile(t, dir, "c.gif", testutil.PlainJpeg())
		a.Nil(sut.Reload())
		a.Len(sut.GetImages(), 3)
	})
}

func TestLibrary_MissingDirectory(t *testing.T) {
	a := require.New(t)

	sut := NewLibrary()
	a.NotNil(sut.InitializeFromDirectory(filepath.Join(t.TempDir(), "missing")))
	a.Empty(sut.GetImages())
}

func TestLibrary_Empty(t *testing.T) {
	a := require.New(t)

	sut := NewLibrary()
	a.Nil(sut.Reload())
	a.Empty(sut.GetImages())
	a.Nil(sut.GetImageByName("a.jpg"))
}
