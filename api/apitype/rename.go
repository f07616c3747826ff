package apitype

import (
	"fmt"
	"path/filepath"
	"time"
)

type RenameKind int

const (
	ExifRename RenameKind = iota
	ManualRename
	UndoRename
)

func (s RenameKind) String() string {
	switch s {
	case ExifRename:
		return "exif"
	case ManualRename:
		return "manual"
	case UndoRename:
		return "undo"
	}
	return "unknown"
}

func RenameKindFromId(id int) RenameKind {
	switch RenameKind(id) {
	case ExifRename, ManualRename, UndoRename:
		return RenameKind(id)
	}
	return ExifRename
}

// RenameRecord is one journaled rename inside a single directory.
type RenameRecord struct {
	Id        string
	Directory string
	OldName   string
	NewName   string
	Kind      RenameKind
	Undone    bool
	Created   time.Time
}

func (s *RenameRecord) OldPath() string {
	return filepath.Join(s.Directory, s.OldName)
}

func (s *RenameRecord) NewPath() string {
	return filepath.Join(s.Directory, s.NewName)
}

func (s *RenameRecord) String() string {
	return fmt.Sprintf("%s %-6s '%s' -> '%s'", s.Created.Format("2006-01-02 15:04:05"), s.Kind, s.OldName, s.NewName)
}
