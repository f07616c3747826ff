package apitype

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRenameKind(t *testing.T) {
	a := assert.New(t)

	a.Equal("exif", ExifRename.String())
	a.Equal("manual", ManualRename.String())
	a.Equal("undo", UndoRename.String())
	a.Equal("unknown", RenameKind(10).String())

	a.Equal(ManualRename, RenameKindFromId(1))
	a.Equal(UndoRename, RenameKindFromId(2))
	a.Equal(ExifRename, RenameKindFromId(10))
}

func TestRenameRecord(t *testing.T) {
	a := assert.New(t)

	record := &RenameRecord{
		Directory: "photos",
		OldName:   "a.jpg",
		NewName:   "b.jpg",
		Kind:      ManualRename,
		Created:   time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}

	a.Equal(filepath.Join("photos", "a.jpg"), record.OldPath())
	a.Equal(filepath.Join("photos", "b.jpg"), record.NewPath())
	a.Equal("2024-05-01 10:00:00 manual 'a.jpg' -> 'b.jpg'", record.String())
}
