package backend

import (
	"vincit.fi/exif-renamer/api"
	"vincit.fi/exif-renamer/backend/internal/database"
	"vincit.fi/exif-renamer/backend/internal/exifreader"
	"vincit.fi/exif-renamer/backend/internal/library"
	"vincit.fi/exif-renamer/backend/internal/naming"
	"vincit.fi/exif-renamer/common"
	"vincit.fi/exif-renamer/common/constants"
	"vincit.fi/exif-renamer/common/event"
	"vincit.fi/exif-renamer/common/logger"
)

type Stores struct {
	RenameJournal api.RenameJournal
	historyDb     *database.Database
}

func (s *Stores) Close() {
	if s.historyDb != nil {
		s.historyDb.Close()
	}
}

type Services struct {
	ImageService api.ImageService
	ImageLibrary api.ImageLibrary
}

type Brokers struct {
	Broker *event.Broker
}

func InitializeEventBrokers(eventBusQueueSize int) *Brokers {
	logger.Debug.Printf("Initialize event brokers...")
	brokers := &Brokers{
		Broker: event.InitBus(eventBusQueueSize),
	}
	logger.Debug.Printf("Event brokers initialized")
	return brokers
}

func InitializeServices(stores *Stores, brokers *Brokers) *Services {
	logger.Debug.Printf("Initialize services...")
	imageLibrary := library.NewLibrary()
	imageService := library.NewImageService(
		brokers.Broker,
		imageLibrary,
		exifreader.NewReader(),
		naming.NewFileSystemRenamer(),
		stores.RenameJournal,
		0,
	)
	services := &Services{
		ImageService: imageService,
		ImageLibrary: imageLibrary,
	}
	logger.Debug.Printf("Services initialized")
	return services
}

// InitializeStores opens the rename journal in the history directory. With
// history disabled renames are not journaled and nothing can be undone.
func InitializeStores(params *common.Params, config *common.Config) (*Stores, error) {
	if params.NoHistory() {
		logger.Debug.Printf("Rename history disabled")
		return &Stores{RenameJournal: library.NewNullJournal()}, nil
	}

	logger.Debug.Printf("Initialize databases...")
	historyDir, err := config.ResolveHistoryDir()
	if err != nil {
		return nil, err
	}

	historyDb := database.NewDatabase()
	if err := historyDb.InitializeForDirectory(historyDir, constants.DatabaseFile); err != nil {
		logger.Error.Print("Error opening database ", err)
		return nil, err
	} else if _, err := historyDb.Migrate(); err != nil {
		historyDb.Close()
		return nil, err
	}

	stores := &Stores{
		RenameJournal: database.NewRenameStore(historyDb),
		historyDb:     historyDb,
	}
	logger.Debug.Printf("Stores and databases initialized")
	return stores, nil
}
