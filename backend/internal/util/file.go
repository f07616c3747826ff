package util

import (
	"os"

	"vincit.fi/exif-renamer/common/logger"
)

func DoesFileExist(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func IsDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// MakeDirectoriesIfNotExist creates directory with the permissions of
// parentDir.
func MakeDirectoriesIfNotExist(parentDir string, directory string) error {
	if DoesFileExist(directory) {
		return nil
	}

	mode := os.FileMode(0o755)
	if info, err := os.Stat(parentDir); err == nil {
		mode = info.Mode().Perm()
	}
	logger.Debug.Printf("Creating directory '%s'", directory)
	return os.MkdirAll(directory, mode)
}
