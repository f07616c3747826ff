package naming

import (
	"errors"
	"path/filepath"
	"strings"

	"vincit.fi/exif-renamer/api"
	"vincit.fi/exif-renamer/api/apitype"
	"vincit.fi/exif-renamer/common/logger"
)

// RenamedMarker in a file name means the EXIF suffix has already been added.
const RenamedMarker = "ISO"

var ErrEmptyName = errors.New("new file name is empty")

// IsAlreadyRenamed reports whether the base name of path carries the EXIF
// suffix marker.
func IsAlreadyRenamed(path string) bool {
	return strings.Contains(filepath.Base(path), RenamedMarker)
}

// ExifFileName returns the file name the EXIF rename would produce for path.
// The second result is false when the metadata has no usable capture time.
func ExifFileName(path string, metaData apitype.MetaData) (string, bool) {
	suffix, ok := ExifSuffix(metaData)
	if !ok {
		return filepath.Base(path), false
	}
	imageFile := apitype.NewImageFileFromPath(path)
	return imageFile.BaseName() + suffix + imageFile.Extension(), true
}

// SynthesizeAndRename renames the file at path by appending the EXIF suffix
// to its base name and returns the new path. The original path is returned
// unchanged, without touching the file, when the metadata has no valid
// capture time, when the file name already carries the suffix marker or
// when the suffix is empty. A failed rename is returned as an error.
func SynthesizeAndRename(path string, metaData apitype.MetaData, renamer api.FileRenamer) (string, error) {
	newName, ok := ExifFileName(path, metaData)
	if !ok {
		logger.Debug.Printf("No valid capture time for '%s', not renaming", path)
		return path, nil
	}

	if IsAlreadyRenamed(path) {
		logger.Debug.Printf("'%s' has already been renamed", path)
		return path, nil
	}

	return renameInDirectory(path, newName, renamer)
}

// RenameFromText renames the file at path to the user given text. The text
// is cleaned up and sanitized and the original extension is kept.
func RenameFromText(path string, text string, renamer api.FileRenamer) (string, error) {
	name := strings.ReplaceAll(text, "\x00", "")
	name = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(name)
	name = strings.TrimSpace(name)
	if name == "" {
		return path, ErrEmptyName
	}

	imageFile := apitype.NewImageFileFromPath(path)
	return renameInDirectory(path, Sanitize(name)+imageFile.Extension(), renamer)
}

func renameInDirectory(path string, newName string, renamer api.FileRenamer) (string, error) {
	oldName := filepath.Base(path)
	if newName == oldName {
		logger.Debug.Printf("Name of '%s' does not change", path)
		return path, nil
	}

	newPath := strings.TrimSuffix(path, oldName) + newName
	logger.Info.Printf("Renaming '%s' to '%s'", path, newPath)
	if err := renamer.Rename(path, newPath); err != nil {
		return path, err
	}
	return newPath, nil
}
