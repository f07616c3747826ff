package database

type migration struct {
	id          MigrationId
	description string
	query       string
}

var migrations = []migration{
	{
		id:          0,
		description: "Rename journal",
		query: `
			CREATE TABLE rename (
			    seq INTEGER PRIMARY KEY AUTOINCREMENT,
			    id TEXT NOT NULL,
			    directory TEXT NOT NULL,
			    old_name TEXT NOT NULL,
			    new_name TEXT NOT NULL,
			    kind INTEGER NOT NULL,
			    undone INTEGER NOT NULL DEFAULT 0,
			    created_timestamp DATETIME NOT NULL,

			    UNIQUE (id)
			);

			CREATE INDEX rename_undone_idx ON rename (undone, seq);
		`,
	},
}
