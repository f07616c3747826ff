package library

import (
	"vincit.fi/exif-renamer/api/apitype"
)

// NullJournal forgets every rename. Used when history is disabled.
type NullJournal struct{}

func NewNullJournal() *NullJournal {
	return &NullJournal{}
}

func (s *NullJournal) AddRename(*apitype.RenameRecord) error {
	return nil
}

func (s *NullJournal) LatestRename() (*apitype.RenameRecord, error) {
	return nil, nil
}

func (s *NullJournal) MarkUndone(string) error {
	return nil
}

func (s *NullJournal) GetRenames(int) ([]*apitype.RenameRecord, error) {
	return []*apitype.RenameRecord{}, nil
}
