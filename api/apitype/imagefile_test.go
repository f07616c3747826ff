package apitype

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageFile_String(t *testing.T) {
	a := assert.New(t)

	var nilImageFile *ImageFile
	a.Equal("ImageFile<nil>", nilImageFile.String())
	a.Equal("ImageFile<invalid>", (&ImageFile{}).String())
	a.Equal("ImageFile{file.jpeg}", NewImageFile("/some/dir", "file.jpeg").String())
}

func TestValidImageFile(t *testing.T) {
	a := assert.New(t)

	imageFile := NewImageFile("some/dir", "my.trip.JPEG")

	t.Run("Validity", func(t *testing.T) {
		a.True(imageFile.IsValid())
	})
	t.Run("Properties", func(t *testing.T) {
		a.Equal("my.trip.JPEG", imageFile.FileName())
		a.Equal("some/dir", imageFile.Directory())
		a.Equal(filepath.Join("some", "dir", "my.trip.JPEG"), imageFile.Path())
		a.Equal("my.trip", imageFile.BaseName())
		a.Equal(".JPEG", imageFile.Extension())
	})
	t.Run("From path", func(t *testing.T) {
		fromPath := NewImageFileFromPath(filepath.Join("some", "dir", "my.trip.JPEG"))
		a.Equal(imageFile.Path(), fromPath.Path())
		a.Equal(imageFile.FileName(), fromPath.FileName())
	})
}

func TestNilImageFile(t *testing.T) {
	a := assert.New(t)

	var imageFile *ImageFile

	t.Run("Validity", func(t *testing.T) {
		a.False(imageFile.IsValid())
	})
	t.Run("Properties", func(t *testing.T) {
		a.Equal("", imageFile.FileName())
		a.Equal("", imageFile.Directory())
		a.Equal("", imageFile.Path())
		a.Equal("", imageFile.Extension())
	})
}

func TestSplitExt(t *testing.T) {
	a := assert.New(t)

	split := func(fileName string) [2]string {
		name, ext := SplitExt(fileName)
		return [2]string{name, ext}
	}

	a.Equal([2]string{"IMG_0001", ".JPG"}, split("IMG_0001.JPG"))
	a.Equal([2]string{"archive.tar", ".gz"}, split("archive.tar.gz"))
	a.Equal([2]string{"noext", ""}, split("noext"))
	a.Equal([2]string{".hidden", ""}, split(".hidden"))
	a.Equal([2]string{"..", ""}, split(".."))
	a.Equal([2]string{"name", "."}, split("name."))
}

func TestIsSupported(t *testing.T) {
	a := assert.New(t)

	t.Run("Valid", func(t *testing.T) {
		validValues := []string{
			"jpeg", "JPEG", "jpg", "JPG", "png", "bmp", "gif", "Gif",
		}
		for _, value := range validValues {
			a.True(IsSupported("image."+value), value)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		invalidValues := []string{
			"image.exe", "image.EXE", "jpg", ".jpg", "image.heic",
		}
		for _, value := range invalidValues {
			a.False(IsSupported(value), value)
		}
	})
}

func TestLoadImageFiles(t *testing.T) {
	a := require.New(t)

	dir := t.TempDir()
	for _, name := range []string{"c.gif", "B.JPG", "a.jpg", "notes.txt"} {
		a.Nil(os.WriteFile(filepath.Join(dir, name), []byte{}, 0o644))
	}
	a.Nil(os.Mkdir(filepath.Join(dir, "dir.jpg"), 0o755))

	images, err := LoadImageFiles(dir)
	a.Nil(err)

	var names []string
	for _, image := range images {
		names = append(names, image.FileName())
		a.Equal(dir, image.Directory())
	}
	a.Equal([]string{"B.JPG", "a.jpg", "c.gif"}, names)

	_, err = LoadImageFiles(filepath.Join(dir, "missing"))
	a.ErrorIs(err, os.ErrNotExist)
}
