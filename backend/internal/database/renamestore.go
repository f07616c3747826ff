package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/upper/db/v4"
	"vincit.fi/exif-renamer/api/apitype"
	"vincit.fi/exif-renamer/common/logger"
)

type RenameStore struct {
	database   *Database
	collection db.Collection
}

func NewRenameStore(database *Database) *RenameStore {
	return &RenameStore{
		database: database,
	}
}

func (s *RenameStore) getCollection() db.Collection {
	if s.collection == nil {
		s.collection = s.database.Session().Collection("rename")
	}
	return s.collection
}

// AddRename stores the record. Missing id and creation time are filled in
// and written back to the record.
func (s *RenameStore) AddRename(record *apitype.RenameRecord) error {
	if record.Id == "" {
		if id, err := uuid.NewRandom(); err != nil {
			return err
		} else {
			record.Id = id.String()
		}
	}
	if record.Created.IsZero() {
		record.Created = time.Now()
	}

	logger.Trace.Printf("Journaling rename %s", record)
	_, err := s.getCollection().Insert(toRename(record))
	return err
}

// LatestRename returns the newest rename that can still be undone or nil
// when there is none.
func (s *RenameStore) LatestRename() (*apitype.RenameRecord, error) {
	var renames []Rename
	err := s.getCollection().
		Find(db.Cond{
			"undone":  false,
			"kind !=": int(apitype.UndoRename),
		}).
		OrderBy("-seq").
		Limit(1).
		All(&renames)

	if err != nil {
		return nil, err
	} else if len(renames) == 0 {
		return nil, nil
	} else {
		return toRenameRecord(renames[0]), nil
	}
}

func (s *RenameStore) MarkUndone(id string) error {
	res := s.getCollection().Find(db.Cond{"id": id})

	var existing Rename
	if err := res.One(&existing); err != nil {
		return err
	}

	logger.Trace.Printf("Marking rename %s undone", id)
	existing.Undone = true
	return res.Update(&existing)
}

// GetRenames returns at most limit renames, newest first. A non-positive
// limit returns all of them.
func (s *RenameStore) GetRenames(limit int) ([]*apitype.RenameRecord, error) {
	res := s.getCollection().Find().OrderBy("-seq")
	if limit > 0 {
		res = res.Limit(limit)
	}

	var renames []Rename
	if err := res.All(&renames); err != nil {
		return nil, err
	} else {
		return toRenameRecords(renames), nil
	}
}

func toRename(record *apitype.RenameRecord) *Rename {
	return &Rename{
		Id:          record.Id,
		Directory:   record.Directory,
		OldName:     record.OldName,
		NewName:     record.NewName,
		Kind:        int(record.Kind),
		Undone:      record.Undone,
		CreatedTime: record.Created,
	}
}

func toRenameRecord(rename Rename) *apitype.RenameRecord {
	return &apitype.RenameRecord{
		Id:        rename.Id,
		Directory: rename.Directory,
		OldName:   rename.OldName,
		NewName:   rename.NewName,
		Kind:      apitype.RenameKindFromId(rename.Kind),
		Undone:    rename.Undone,
		Created:   rename.CreatedTime,
	}
}

func toRenameRecords(renames []Rename) []*apitype.RenameRecord {
	records := make([]*apitype.RenameRecord, len(renames))
	for i, rename := range renames {
		records[i] = toRenameRecord(rename)
	}
	return records
}
