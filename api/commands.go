package api

import (
	"vincit.fi/exif-renamer/api/apitype"
)

type ErrorCommand struct {
	Message string
	Err     error
}

type UpdateProgressCommand struct {
	Name    string
	Current int
	Total   int
}

type ImageRenamedCommand struct {
	Kind     apitype.RenameKind
	OldImage *apitype.ImageFile
	NewImage *apitype.ImageFile
}

type ExifCommand struct {
	Image    *apitype.ImageFile
	MetaData apitype.MetaData
}
