package library

import (
	"runtime"
	"time"

	"vincit.fi/exif-renamer/api"
	"vincit.fi/exif-renamer/api/apitype"
	"vincit.fi/exif-renamer/common/logger"
)

type MetaDataResult struct {
	image    *apitype.ImageFile
	metaData apitype.MetaData
	found    bool
}

func (s *MetaDataResult) Image() *apitype.ImageFile {
	return s.image
}

func (s *MetaDataResult) MetaData() (apitype.MetaData, bool) {
	return s.metaData, s.found
}

// MetaDataLoader reads the metadata of many images with a fixed number of
// goroutines. Results keep the order of the input.
type MetaDataLoader struct {
	reader      api.MetaDataReader
	threadCount int
}

func NewMetaDataLoader(reader api.MetaDataReader, threadCount int) *MetaDataLoader {
	if threadCount < 1 {
		threadCount = runtime.NumCPU()
	}
	return &MetaDataLoader{
		reader:      reader,
		threadCount: threadCount,
	}
}

func (s *MetaDataLoader) LoadMetaData(images []*apitype.ImageFile, statusCallback func(int, int)) []*MetaDataResult {
	startTime := time.Now()
	total := len(images)
	logger.Debug.Printf("Read metadata for %d images...", total)
	statusCallback(0, total)

	results := make([]*MetaDataResult, total)
	if total == 0 {
		return results
	}

	type indexedResult struct {
		index  int
		result *MetaDataResult
	}

	inputChannel := make(chan int, total)
	for i := range images {
		inputChannel <- i
	}
	close(inputChannel)

	outputChannel := make(chan indexedResult)
	workers := s.threadCount
	if workers > total {
		workers = total
	}
	logger.Debug.Printf(" * Using %d goroutines", workers)
	for i := 0; i < workers; i++ {
		go func() {
			for index := range inputChannel {
				outputChannel <- indexedResult{index: index, result: s.readMetaData(images[index])}
			}
		}()
	}

	for processed := 1; processed <= total; processed++ {
		result := <-outputChannel
		results[result.index] = result.result
		statusCallback(processed, total)
	}

	logger.Debug.Printf("Metadata read in %s", time.Since(startTime))
	return results
}

func (s *MetaDataLoader) readMetaData(image *apitype.ImageFile) *MetaDataResult {
	startTime := time.Now()
	metaData, found := s.reader.ReadMetaData(image.Path())
	logger.Trace.Printf("'%s': Metadata read in %s", image.Path(), time.Since(startTime))
	return &MetaDataResult{
		image:    image,
		metaData: metaData,
		found:    found,
	}
}
