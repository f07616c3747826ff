package database

import "time"

type MigrationId int64

type Migration struct {
	Id MigrationId `db:"id"`
}

type Rename struct {
	Seq         int64     `db:"seq,omitempty"`
	Id          string    `db:"id"`
	Directory   string    `db:"directory"`
	OldName     string    `db:"old_name"`
	NewName     string    `db:"new_name"`
	Kind        int       `db:"kind"`
	Undone      bool      `db:"undone"`
	CreatedTime time.Time `db:"created_timestamp"`
}
