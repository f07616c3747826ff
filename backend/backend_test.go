package backend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"vincit.fi/exif-renamer/common"
	"vincit.fi/exif-renamer/common/constants"
	"vincit.fi/exif-renamer/common/testutil"
)

func TestInitialize(t *testing.T) {
	a := require.New(t)

	historyDir := t.TempDir()
	config := common.DefaultConfig()
	config.HistoryDir = historyDir

	stores, err := InitializeStores(common.NewEmptyParams(), config)
	a.Nil(err)
	defer stores.Close()
	a.FileExists(filepath.Join(historyDir, constants.AppDir, constants.DatabaseFile))

	brokers := InitializeEventBrokers(config.EventBusQueueSize)
	services := InitializeServices(stores, brokers)

	imageDir := t.TempDir()
	path := testutil.WriteExifJpeg(t, imageDir, "IMG_0001.JPG", testutil.CameraTags())
	a.Nil(services.ImageService.InitializeFromDirectory(imageDir))
	_, err = services.ImageService.SelectImage(path)
	a.Nil(err)

	image, err := services.ImageService.RenameWithExif()
	a.Nil(err)
	a.Equal("IMG_0001 1／200秒 F2.8 ISO400 50mm(f).JPG", image.FileName())

	history, err := services.ImageService.History(10)
	a.Nil(err)
	a.Len(history, 1)

	record, err := services.ImageService.UndoLastRename()
	a.Nil(err)
	a.Equal("IMG_0001.JPG", record.OldName)
	a.FileExists(path)
	brokers.Broker.Flush()
}

func TestInitializeStores_NoHistory(t *testing.T) {
	a := require.New(t)

	historyDir := t.TempDir()
	config := common.DefaultConfig()
	config.HistoryDir = historyDir

	stores, err := InitializeStores(common.NewParams("", "", true, ""), config)
	a.Nil(err)
	defer stores.Close()

	_, err = os.Stat(filepath.Join(historyDir, constants.AppDir))
	a.ErrorIs(err, os.ErrNotExist)

	renames, err := stores.RenameJournal.GetRenames(0)
	a.Nil(err)
	a.Empty(renames)
}
