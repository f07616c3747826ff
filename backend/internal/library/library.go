package library

import (
	"vincit.fi/exif-renamer/api/apitype"
	"vincit.fi/exif-renamer/common/logger"
)

type Library struct {
	directory string
	images    []*apitype.ImageFile
}

func NewLibrary() *Library {
	return &Library{}
}

func (s *Library) InitializeFromDirectory(directory string) error {
	s.directory = directory
	return s.Reload()
}

func (s *Library) Reload() error {
	if s.directory == "" {
		s.images = nil
		return nil
	}

	if images, err := apitype.LoadImageFiles(s.directory); err != nil {
		logger.Error.Printf("Could not load images from '%s': %s", s.directory, err)
		s.images = nil
		return err
	} else {
		s.images = images
		return nil
	}
}

func (s *Library) Directory() string {
	return s.directory
}

func (s *Library) GetImages() []*apitype.ImageFile {
	return s.images
}

func (s *Library) GetImageByName(name string) *apitype.ImageFile {
	for _, image := range s.images {
		if image.FileName() == name {
			return image
		}
	}
	return nil
}
