package library

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"vincit.fi/exif-renamer/api"
	"vincit.fi/exif-renamer/api/apitype"
	"vincit.fi/exif-renamer/backend/internal/naming"
	"vincit.fi/exif-renamer/common/logger"
)

var (
	ErrNoImageSelected = errors.New("no image selected")
	ErrNoMetaData      = errors.New("no EXIF metadata")
	ErrNothingToUndo   = errors.New("nothing to undo")
)

type Service struct {
	sender   api.Sender
	library  api.ImageLibrary
	reader   api.MetaDataReader
	renamer  api.FileRenamer
	journal  api.RenameJournal
	loader   *MetaDataLoader
	progress api.ProgressReporter
	current  *apitype.ImageFile

	api.ImageService
}

func NewImageService(sender api.Sender, library api.ImageLibrary, reader api.MetaDataReader,
	renamer api.FileRenamer, journal api.RenameJournal, threadCount int) *Service {
	return &Service{
		sender:   sender,
		library:  library,
		reader:   reader,
		renamer:  renamer,
		journal:  journal,
		loader:   NewMetaDataLoader(reader, threadCount),
		progress: api.NewSenderProgressReporter(sender),
	}
}

func (s *Service) InitializeFromDirectory(directory string) error {
	s.current = nil
	return s.library.InitializeFromDirectory(directory)
}

func (s *Service) GetImageFiles() []*apitype.ImageFile {
	return s.library.GetImages()
}

// SelectImage makes the file at path the current image. Any regular file
// can be selected, the extension is not checked.
func (s *Service) SelectImage(path string) (*apitype.ImageFile, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	if info, err := os.Stat(absPath); err != nil {
		return nil, fmt.Errorf("could not select '%s': %w", path, err)
	} else if info.IsDir() {
		return nil, fmt.Errorf("could not select '%s': is a directory", path)
	}

	s.current = apitype.NewImageFileFromPath(absPath)
	logger.Debug.Printf("Selected %s", s.current)
	return s.current, nil
}

func (s *Service) CurrentImage() *apitype.ImageFile {
	return s.current
}

// RenameWithExif renames the current image with its EXIF suffix. The image
// is returned unchanged when the file has no usable metadata or already
// carries the suffix.
func (s *Service) RenameWithExif() (*apitype.ImageFile, error) {
	if s.current == nil {
		return nil, ErrNoImageSelected
	}

	metaData, found := s.reader.ReadMetaData(s.current.Path())
	if !found {
		logger.Info.Printf("No EXIF metadata in '%s'", s.current.Path())
		return s.current, nil
	}

	if renamed, err := s.renameWithExif(s.current, metaData); err != nil {
		return s.current, err
	} else {
		s.reload(renamed)
		return s.current, nil
	}
}

// RenameAllWithExif renames every image of the library. Metadata is read
// concurrently, the renames run one at a time in name order. Failed
// renames are reported and joined to the returned error.
func (s *Service) RenameAllWithExif() ([]*apitype.ImageFile, error) {
	images := s.library.GetImages()
	results := s.loader.LoadMetaData(images, func(current int, total int) {
		s.progress.Update("Reading EXIF", current, total)
	})

	var renamedImages []*apitype.ImageFile
	var errs []error
	for _, result := range results {
		metaData, found := result.MetaData()
		if !found {
			logger.Info.Printf("No EXIF metadata in '%s'", result.Image().Path())
			continue
		}

		if renamed, err := s.renameWithExif(result.Image(), metaData); err != nil {
			errs = append(errs, err)
		} else if renamed != nil {
			renamedImages = append(renamedImages, renamed)
		}
	}

	if len(renamedImages) > 0 {
		s.reload(renamedImages[0])
	}
	return renamedImages, errors.Join(errs...)
}

// RenameWithText renames the current image to the sanitized text. The
// extension is kept.
func (s *Service) RenameWithText(text string) (*apitype.ImageFile, error) {
	if s.current == nil {
		return nil, ErrNoImageSelected
	}

	image := s.current
	newPath, err := naming.RenameFromText(image.Path(), text, s.renamer)
	if err != nil {
		s.sender.SendError(fmt.Sprintf("Could not rename '%s'", image.FileName()), err)
		return image, err
	}

	if renamed := s.renamed(apitype.ManualRename, image, newPath); renamed != nil {
		s.reload(renamed)
	}
	return s.current, nil
}

// ExifText returns the metadata of the current image formatted one tag
// per line.
func (s *Service) ExifText() (string, error) {
	if s.current == nil {
		return "", ErrNoImageSelected
	}

	metaData, found := s.reader.ReadMetaData(s.current.Path())
	if !found {
		return "", fmt.Errorf("'%s': %w", s.current.FileName(), ErrNoMetaData)
	}

	s.sender.SendCommandToTopic(api.ExifLoaded, &api.ExifCommand{
		Image:    s.current,
		MetaData: metaData,
	})
	return metaData.Format(), nil
}

// UndoLastRename moves the latest journaled rename back. The undo itself is
// journaled but cannot be undone.
func (s *Service) UndoLastRename() (*apitype.RenameRecord, error) {
	record, err := s.journal.LatestRename()
	if err != nil {
		return nil, err
	} else if record == nil {
		return nil, ErrNothingToUndo
	}

	logger.Debug.Printf("Undoing %s", record)
	if err := s.renamer.Rename(record.NewPath(), record.OldPath()); err != nil {
		s.sender.SendError(fmt.Sprintf("Could not undo rename of '%s'", record.OldName), err)
		return record, err
	}

	if err := s.journal.MarkUndone(record.Id); err != nil {
		logger.Error.Printf("Could not mark rename %s undone: %s", record.Id, err)
	}

	oldImage := apitype.NewImageFile(record.Directory, record.NewName)
	if restored := s.renamed(apitype.UndoRename, oldImage, record.OldPath()); restored != nil {
		s.reload(restored)
	}
	return record, nil
}

func (s *Service) History(limit int) ([]*apitype.RenameRecord, error) {
	return s.journal.GetRenames(limit)
}

func (s *Service) renameWithExif(image *apitype.ImageFile, metaData apitype.MetaData) (*apitype.ImageFile, error) {
	newPath, err := naming.SynthesizeAndRename(image.Path(), metaData, s.renamer)
	if err != nil {
		s.sender.SendError(fmt.Sprintf("Could not rename '%s'", image.FileName()), err)
		return nil, err
	}
	return s.renamed(apitype.ExifRename, image, newPath), nil
}

// renamed journals and publishes a completed rename. It returns nil when
// the path did not change.
func (s *Service) renamed(kind apitype.RenameKind, oldImage *apitype.ImageFile, newPath string) *apitype.ImageFile {
	if newPath == oldImage.Path() {
		return nil
	}

	newImage := apitype.NewImageFileFromPath(newPath)
	logger.Info.Printf("Renamed '%s' to '%s'", oldImage.FileName(), newImage.FileName())

	if s.current != nil && s.current.Path() == oldImage.Path() {
		s.current = newImage
	}

	if err := s.journal.AddRename(&apitype.RenameRecord{
		Directory: oldImage.Directory(),
		OldName:   oldImage.FileName(),
		NewName:   newImage.FileName(),
		Kind:      kind,
	}); err != nil {
		logger.Error.Printf("Could not journal rename of '%s': %s", oldImage.Path(), err)
	}

	s.sender.SendCommandToTopic(api.ImageRenamed, &api.ImageRenamedCommand{
		Kind:     kind,
		OldImage: oldImage,
		NewImage: newImage,
	})
	return newImage
}

func (s *Service) reload(image *apitype.ImageFile) {
	if image == nil || s.library.Directory() == "" {
		return
	}
	if !sameDirectory(image.Directory(), s.library.Directory()) {
		return
	}
	if err := s.library.Reload(); err != nil {
		logger.Warn.Printf("Could not reload '%s': %s", s.library.Directory(), err)
	}
}

func sameDirectory(a string, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
