package api

import (
	"vincit.fi/exif-renamer/api/apitype"
)

// MetaDataReader reads the EXIF block of a file. The boolean result is false
// when the file has no usable metadata.
type MetaDataReader interface {
	ReadMetaData(path string) (apitype.MetaData, bool)
}

// FileRenamer moves a file to a new path. It must not overwrite an
// existing file.
type FileRenamer interface {
	Rename(oldPath string, newPath string) error
}

type RenameJournal interface {
	AddRename(record *apitype.RenameRecord) error
	LatestRename() (*apitype.RenameRecord, error)
	MarkUndone(id string) error
	GetRenames(limit int) ([]*apitype.RenameRecord, error)
}

type ImageLibrary interface {
	InitializeFromDirectory(directory string) error
	Reload() error

	Directory() string
	GetImages() []*apitype.ImageFile
	GetImageByName(name string) *apitype.ImageFile
}

type ImageService interface {
	InitializeFromDirectory(directory string) error
	GetImageFiles() []*apitype.ImageFile

	SelectImage(path string) (*apitype.ImageFile, error)
	CurrentImage() *apitype.ImageFile

	RenameWithExif() (*apitype.ImageFile, error)
	RenameWithText(text string) (*apitype.ImageFile, error)
	RenameAllWithExif() ([]*apitype.ImageFile, error)
	ExifText() (string, error)

	UndoLastRename() (*apitype.RenameRecord, error)
	History(limit int) ([]*apitype.RenameRecord, error)
}
