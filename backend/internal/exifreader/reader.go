package exifreader

import (
	"bytes"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
	"vincit.fi/exif-renamer/api/apitype"
	"vincit.fi/exif-renamer/common/logger"
)

type Reader struct {
}

func NewReader() *Reader {
	return &Reader{}
}

func (s *Reader) ReadMetaData(path string) (apitype.MetaData, bool) {
	return Extract(path)
}

// Extract reads the EXIF block of the file at path. It returns false when
// the file cannot be read or has no parseable EXIF data; that is an
// expected condition and is only logged.
func Extract(path string) (apitype.MetaData, bool) {
	file, err := os.Open(path)
	if err != nil {
		logger.Debug.Printf("Could not open '%s' for EXIF: %s", path, err)
		return nil, false
	}
	defer file.Close()

	decodedExif, err := exif.Decode(file)
	if decodedExif == nil || (err != nil && exif.IsCriticalError(err)) {
		logger.Debug.Printf("No EXIF data in '%s': %s", path, err)
		return nil, false
	} else if err != nil {
		logger.Debug.Printf("Partial EXIF data in '%s': %s", path, err)
	}

	walker := NewMetaDataWalker()
	if err := decodedExif.Walk(walker); err != nil {
		logger.Debug.Printf("Could not walk EXIF data of '%s': %s", path, err)
		return nil, false
	}

	metaData := walker.MetaData()
	logger.Trace.Printf("Read %d EXIF tags from '%s'", metaData.Len(), path)
	return metaData, true
}

type MetaDataWalker struct {
	values apitype.MetaData
}

func NewMetaDataWalker() *MetaDataWalker {
	return &MetaDataWalker{
		values: apitype.NewMetaData(),
	}
}

func (s *MetaDataWalker) Walk(name exif.FieldName, tag *tiff.Tag) error {
	s.values[string(name)] = DecodeTag(tag)
	return nil
}

func (s *MetaDataWalker) MetaData() apitype.MetaData {
	return s.values
}

// DecodeTag converts a raw TIFF tag into a tag value:
//   - ASCII and UNDEFINED bytes become text, NUL bytes removed and invalid
//     UTF-8 replaced,
//   - a single rational stays an exact fraction,
//   - a single integer becomes an integer,
//   - anything else is kept as raw bytes.
func DecodeTag(tag *tiff.Tag) apitype.TagValue {
	switch tag.Format() {
	case tiff.StringVal, tiff.UndefVal:
		return DecodeText(tag.Val)
	case tiff.RatVal:
		if tag.Count == 1 {
			if numerator, denominator, err := tag.Rat2(0); err == nil {
				return apitype.NewRationalValue(numerator, denominator)
			}
		}
	case tiff.IntVal:
		if tag.Count == 1 {
			if value, err := tag.Int64(0); err == nil {
				return apitype.IntegerValue(value)
			}
		}
	}
	return rawValue(tag.Val)
}

func DecodeText(value []byte) apitype.TextValue {
	withoutNulls := bytes.ReplaceAll(value, []byte{0}, nil)
	return apitype.TextValue(strings.ToValidUTF8(string(withoutNulls), string(utf8.RuneError)))
}

func rawValue(value []byte) apitype.RawValue {
	raw := make([]byte, len(value))
	copy(raw, value)
	return raw
}
