package apitype

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"vincit.fi/exif-renamer/common/logger"
)

type ImageFile struct {
	directory string
	filename  string
	path      string
}

var (
	supportedFileEndings = map[string]bool{
		".png":  true,
		".jpg":  true,
		".jpeg": true,
		".bmp":  true,
		".gif":  true,
	}
)

func NewImageFile(fileDir string, fileName string) *ImageFile {
	return &ImageFile{
		directory: fileDir,
		filename:  fileName,
		path:      filepath.Join(fileDir, fileName),
	}
}

func NewImageFileFromPath(path string) *ImageFile {
	return NewImageFile(filepath.Dir(path), filepath.Base(path))
}

func (s *ImageFile) IsValid() bool {
	return s != nil && s.path != ""
}

func (s *ImageFile) String() string {
	if s != nil {
		if s.IsValid() {
			return "ImageFile{" + s.filename + "}"
		} else {
			return "ImageFile<invalid>"
		}
	} else {
		return "ImageFile<nil>"
	}
}

func (s *ImageFile) Path() string {
	if s != nil {
		return s.path
	} else {
		return ""
	}
}

func (s *ImageFile) Directory() string {
	if s != nil {
		return s.directory
	} else {
		return ""
	}
}

func (s *ImageFile) FileName() string {
	if s != nil {
		return s.filename
	} else {
		return ""
	}
}

// BaseName is the file name without its extension.
func (s *ImageFile) BaseName() string {
	name, _ := SplitExt(s.FileName())
	return name
}

func (s *ImageFile) Extension() string {
	_, ext := SplitExt(s.FileName())
	return ext
}

// SplitExt splits a file name into name and extension. Leading dots belong
// to the name, so ".hidden" has no extension.
func SplitExt(fileName string) (string, string) {
	ext := filepath.Ext(fileName)
	name := strings.TrimSuffix(fileName, ext)
	if strings.Trim(name, ".") == "" {
		return fileName, ""
	}
	return name, ext
}

func IsSupported(fileName string) bool {
	_, ext := SplitExt(fileName)
	return supportedFileEndings[strings.ToLower(ext)]
}

func LoadImageFiles(dir string) ([]*ImageFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	logger.Debug.Printf("Scanning directory '%s'", dir)
	var imageFiles []*ImageFile
	for _, entry := range entries {
		if entry.Type().IsRegular() && IsSupported(entry.Name()) {
			imageFiles = append(imageFiles, NewImageFile(dir, entry.Name()))
		}
	}
	sort.Slice(imageFiles, func(i, j int) bool {
		return imageFiles[i].FileName() < imageFiles[j].FileName()
	})
	logger.Debug.Printf("Found %d images", len(imageFiles))

	return imageFiles, nil
}
