package naming

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"vincit.fi/exif-renamer/common/logger"
)

var ErrTargetExists = errors.New("target file already exists")

// FileSystemRenamer renames files on the local file system without ever
// replacing an existing file.
type FileSystemRenamer struct {
}

func NewFileSystemRenamer() *FileSystemRenamer {
	return &FileSystemRenamer{}
}

func (s *FileSystemRenamer) Rename(oldPath string, newPath string) error {
	oldInfo, err := os.Lstat(oldPath)
	if err != nil {
		return fmt.Errorf("renaming '%s': %w", oldPath, err)
	}

	if newInfo, err := os.Lstat(newPath); err == nil {
		// Case only renames on case insensitive file systems see the
		// same file under both names.
		if !os.SameFile(oldInfo, newInfo) {
			return fmt.Errorf("renaming '%s' to '%s': %w", oldPath, newPath, ErrTargetExists)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking '%s': %w", newPath, err)
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("renaming '%s' to '%s': %w", oldPath, newPath, err)
	}
	logger.Debug.Printf("Renamed '%s' to '%s'", oldPath, newPath)
	return nil
}
