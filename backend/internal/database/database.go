package database

import (
	"path/filepath"

	"github.com/upper/db/v4"
	"github.com/upper/db/v4/adapter/sqlite"
	"vincit.fi/exif-renamer/backend/internal/util"
	"vincit.fi/exif-renamer/common/constants"
	"vincit.fi/exif-renamer/common/logger"
)

type TableExist bool

const (
	TableNotExist TableExist = false
	TableExists   TableExist = true
)

type Database struct {
	session db.Session
	dbPath  string
}

func NewInMemoryDatabase() (*Database, error) {
	logger.Debug.Printf("Initializing in-memory database")
	var settings = sqlite.ConnectionURL{
		Database: "memory.db",
		Options: map[string]string{
			"mode": "memory",
		},
	}

	session, err := sqlite.Open(settings)
	if err != nil {
		return nil, err
	}
	// Every connection would get its own empty in-memory database
	session.SetMaxOpenConns(1)

	database := &Database{session: session}
	if _, err := database.Migrate(); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

func NewDatabase() *Database {
	return &Database{}
}

// InitializeForDirectory opens (and creates when needed) the database file
// under the application directory of directory.
func (s *Database) InitializeForDirectory(directory string, file string) error {
	appDir := filepath.Join(directory, constants.AppDir)
	if err := util.MakeDirectoriesIfNotExist(directory, appDir); err != nil {
		return err
	}

	s.dbPath = filepath.Join(appDir, file)
	logger.Debug.Printf("Initializing database %s", s.dbPath)
	var settings = sqlite.ConnectionURL{
		Database: s.dbPath,
	}

	session, err := sqlite.Open(settings)
	if err != nil {
		return err
	}
	s.session = session

	var version map[string]interface{}
	if err := s.session.SQL().Select(db.Func("sqlite_version")).One(&version); err == nil {
		logger.Debug.Printf("Database initialized. Using SQLite version %s", version["sqlite_version()"])
	}
	return nil
}

func (s *Database) Path() string {
	return s.dbPath
}

func (s *Database) Session() db.Session {
	return s.session
}

func (s *Database) Migrate() (TableExist, error) {
	logger.Debug.Printf("Running migrations")
	tablesExists := s.doesTablesExists()

	if !tablesExists {
		logger.Debug.Print("Initial databases don't exist. Creating...")
		err := s.session.Tx(func(session db.Session) error {
			_, err := session.SQL().Exec(`
				CREATE TABLE migration (
					id INTEGER PRIMARY KEY
				)
			`)
			return err
		})
		if err != nil {
			logger.Error.Print("Error while creating migration table ", err)
			return TableNotExist, err
		}
	}

	if err := s.migrate(); err != nil {
		logger.Error.Print("Error while running migrations ", err)
		return TableNotExist, err
	}
	logger.Debug.Print("All migrations done")

	if tablesExists {
		return TableExists, nil
	} else {
		return TableNotExist, nil
	}
}

func (s *Database) doesTablesExists() bool {
	rows, err := s.session.SQL().Query(`
		SELECT name FROM sqlite_master WHERE type='table' AND name= 'migration';
	`)
	if err != nil {
		return false
	}

	defer rows.Close()
	return rows.Next()
}

func (s *Database) migrate() error {
	return s.session.Tx(func(session db.Session) error {
		if migrationStatusesById, err := s.findAlreadyRunMigrations(session); err != nil {
			return err
		} else {
			for _, migration := range migrations {
				if err := s.runMigration(session, migration, migrationStatusesById); err != nil {
					return err
				}
			}
			return nil
		}
	})
}

func (s *Database) runMigration(session db.Session, migration migration, migrationStatusesById map[MigrationId]bool) error {
	migrationId := migration.id

	if _, found := migrationStatusesById[migrationId]; found {
		logger.Trace.Printf("Migration %d is already done", migrationId)
		return nil
	}

	logger.Debug.Printf("Running migration %d: %s", migrationId, migration.description)
	if _, err := session.SQL().Exec(`INSERT INTO migration (id) VALUES (?)`, migrationId); err != nil {
		return err
	}
	_, err := session.SQL().Exec(migration.query)
	return err
}

func (s *Database) findAlreadyRunMigrations(session db.Session) (map[MigrationId]bool, error) {
	var runMigrations []Migration
	if err := session.Collection("migration").Find().All(&runMigrations); err != nil {
		return nil, err
	} else {
		var migrationStatusesById = map[MigrationId]bool{}
		for _, migration := range runMigrations {
			migrationStatusesById[migration.Id] = true
		}
		return migrationStatusesById, nil
	}
}

func (s *Database) Close() {
	logger.Debug.Printf("Closing database %s", s.dbPath)
	if s.session != nil {
		if err := s.session.Close(); err != nil {
			logger.Error.Print("Error while trying to close database ", err)
		}
	} else {
		logger.Warn.Printf("No database instance to close")
	}
}
