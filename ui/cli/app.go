package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"vincit.fi/exif-renamer/api"
	"vincit.fi/exif-renamer/api/apitype"
	"vincit.fi/exif-renamer/backend"
	"vincit.fi/exif-renamer/common"
	"vincit.fi/exif-renamer/common/logger"
)

// errReported is returned when the failure has already been printed from
// a ShowError event.
var errReported = errors.New("reported")

// App wires the backend for one command invocation and prints what the
// services publish.
type App struct {
	params   *common.Params
	config   *common.Config
	stores   *backend.Stores
	brokers  *backend.Brokers
	services *backend.Services

	mutex       sync.Mutex
	out         io.Writer
	errOut      io.Writer
	renamed     int
	errorsShown int
}

func NewApp(params *common.Params, out io.Writer, errOut io.Writer) (*App, error) {
	config, err := common.LoadConfig(params.ConfigPath())
	logger.Initialize(config.ResolveLogLevel(params))
	if err != nil {
		logger.Warn.Printf("Using default configuration: %s", err)
	}

	stores, err := backend.InitializeStores(params, config)
	if err != nil {
		return nil, fmt.Errorf("opening rename history: %w", err)
	}

	brokers := backend.InitializeEventBrokers(config.EventBusQueueSize)
	app := &App{
		params:   params,
		config:   config,
		stores:   stores,
		brokers:  brokers,
		services: backend.InitializeServices(stores, brokers),
		out:      out,
		errOut:   errOut,
	}

	brokers.Broker.Subscribe(api.ImageRenamed, app.printRenamed)
	brokers.Broker.Subscribe(api.ShowError, app.printError)
	brokers.Broker.Subscribe(api.ProcessStatusUpdated, func(command *api.UpdateProgressCommand) {
		logger.Debug.Printf("%s: %d/%d", command.Name, command.Current, command.Total)
	})
	return app, nil
}

func (s *App) ImageService() api.ImageService {
	return s.services.ImageService
}

// Folder returns the absolute folder to work on: the argument, then the
// configured default folder, then the working directory.
func (s *App) Folder(arg string) (string, error) {
	s.params.SetRootPath(arg)
	if folder, err := s.config.ResolveFolder(s.params); err != nil {
		return "", err
	} else {
		return filepath.Abs(folder)
	}
}

// Finish waits for the published events to be printed and releases the
// stores. An error already shown from an event is not returned again.
func (s *App) Finish(err error) error {
	s.brokers.Broker.Flush()
	s.stores.Close()

	s.mutex.Lock()
	defer s.mutex.Unlock()
	if err != nil && s.errorsShown > 0 {
		return errReported
	}
	return err
}

func (s *App) Renamed() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.renamed
}

func (s *App) Println(a ...interface{}) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *App) printRenamed(command *api.ImageRenamedCommand) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.renamed++
	if command.Kind == apitype.UndoRename {
		_, _ = fmt.Fprintf(s.out, "restored '%s' -> '%s'\n", command.OldImage.FileName(), command.NewImage.FileName())
	} else {
		_, _ = fmt.Fprintf(s.out, "'%s' -> '%s'\n", command.OldImage.FileName(), command.NewImage.FileName())
	}
}

func (s *App) printError(command *api.ErrorCommand) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.errorsShown++
	if command.Err != nil {
		_, _ = fmt.Fprintf(s.errOut, "%s: %s\n", command.Message, command.Err)
	} else {
		_, _ = fmt.Fprintln(s.errOut, command.Message)
	}
}
