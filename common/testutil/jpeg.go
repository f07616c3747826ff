// Package testutil builds small JPEG files with an EXIF block for tests.
package testutil

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	exif "github.com/dsoprea/go-exif/v3"
	exifcommon "github.com/dsoprea/go-exif/v3/common"
	exifundefined "github.com/dsoprea/go-exif/v3/undefined"
)

const (
	rootIfdPath = "IFD"
	exifIfdPath = "IFD/Exif"
)

// Entry is one extra tag, set by its standard name in the given IFD.
type Entry struct {
	IfdPath string
	Name    string
	Value   interface{}
}

// ExifEntry returns an entry for a tag of the EXIF sub-IFD.
func ExifEntry(name string, value interface{}) Entry {
	return Entry{IfdPath: exifIfdPath, Name: name, Value: value}
}

// Tags describes the common camera tags. Zero values are left out.
type Tags struct {
	Make                  string
	Model                 string
	DateTimeOriginal      string
	ExposureTime          [2]uint32
	FNumber               [2]uint32
	ISOSpeedRatings       uint16
	FocalLength           [2]uint32
	FocalLengthIn35mmFilm uint16
	ExposureBias          [2]int32
	UserComment           []byte
	Extra                 []Entry
}

func (s Tags) entries() []Entry {
	var entries []Entry
	if s.Make != "" {
		entries = append(entries, Entry{IfdPath: rootIfdPath, Name: "Make", Value: s.Make})
	}
	if s.Model != "" {
		entries = append(entries, Entry{IfdPath: rootIfdPath, Name: "Model", Value: s.Model})
	}
	if s.DateTimeOriginal != "" {
		entries = append(entries, ExifEntry("DateTimeOriginal", s.DateTimeOriginal))
	}
	if s.ExposureTime[1] != 0 {
		entries = append(entries, ExifEntry("ExposureTime", rational(s.ExposureTime)))
	}
	if s.FNumber[1] != 0 {
		entries = append(entries, ExifEntry("FNumber", rational(s.FNumber)))
	}
	if s.ISOSpeedRatings != 0 {
		entries = append(entries, ExifEntry("ISOSpeedRatings", []uint16{s.ISOSpeedRatings}))
	}
	if s.FocalLength[1] != 0 {
		entries = append(entries, ExifEntry("FocalLength", rational(s.FocalLength)))
	}
	if s.FocalLengthIn35mmFilm != 0 {
		entries = append(entries, ExifEntry("FocalLengthIn35mmFilm", []uint16{s.FocalLengthIn35mmFilm}))
	}
	if s.ExposureBias[1] != 0 {
		entries = append(entries, ExifEntry("ExposureBiasValue", []exifcommon.SignedRational{
			{Numerator: s.ExposureBias[0], Denominator: s.ExposureBias[1]},
		}))
	}
	if s.UserComment != nil {
		entries = append(entries, ExifEntry("UserComment", exifundefined.Tag9286UserComment{
			EncodingType:  exifundefined.TagUndefinedType_9286_UserComment_Encoding_UNDEFINED,
			EncodingBytes: s.UserComment,
		}))
	}
	return append(entries, s.Extra...)
}

func rational(value [2]uint32) []exifcommon.Rational {
	return []exifcommon.Rational{{Numerator: value[0], Denominator: value[1]}}
}

// ExifJpeg returns the bytes of a minimal JPEG whose APP1 segment contains
// the given tags. The image data itself is not decodable.
func ExifJpeg(t *testing.T, tags Tags) []byte {
	t.Helper()

	tiffData, err := encodeExif(tags.entries())
	if err != nil {
		t.Fatalf("could not encode EXIF: %s", err)
	}

	segment := append([]byte("Exif\x00\x00"), tiffData...)
	if len(segment)+2 > 0xFFFF {
		t.Fatalf("EXIF block of %d bytes does not fit in one APP1 segment", len(segment))
	}
	length := make([]byte, 2)
	binary.BigEndian.PutUint16(length, uint16(len(segment)+2))

	buffer := &bytes.Buffer{}
	buffer.Write([]byte{0xFF, 0xD8, 0xFF, 0xE1})
	buffer.Write(length)
	buffer.Write(segment)
	buffer.Write([]byte{0xFF, 0xD9})
	return buffer.Bytes()
}

func encodeExif(entries []Entry) ([]byte, error) {
	im := exifcommon.NewIfdMapping()
	if err := exifcommon.LoadStandardIfds(im); err != nil {
		return nil, err
	}
	ti := exif.NewTagIndex()

	rootIb := exif.NewIfdBuilder(im, ti, exifcommon.IfdStandardIfdIdentity, binary.LittleEndian)
	exifIb, err := exif.GetOrCreateIbFromRootIb(rootIb, exifIfdPath)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		ib := rootIb
		if entry.IfdPath == exifIfdPath {
			ib = exifIb
		}
		if err := ib.AddStandardWithName(entry.Name, entry.Value); err != nil {
			return nil, err
		}
	}

	return exif.NewIfdByteEncoder().EncodeToExif(rootIb)
}

// PlainJpeg returns JPEG markers without any APP1 segment.
func PlainJpeg() []byte {
	return []byte{0xFF, 0xD8, 0xFF, 0xDB, 0x00, 0x04, 0x00, 0x00, 0xFF, 0xD9}
}

func WriteExifJpeg(t *testing.T, dir string, name string, tags Tags) string {
	t.Helper()
	return WriteFile(t, dir, name, ExifJpeg(t, tags))
}

func WriteFile(t *testing.T, dir string, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("could not write %s: %s", path, err)
	}
	return path
}

// CameraTags is a typical full frame exposure: 1/200s F2.8 ISO400 50mm.
func CameraTags() Tags {
	return Tags{
		Make:                  "Canon",
		Model:                 "EOS R",
		DateTimeOriginal:      "2024:05:01 10:00:00",
		ExposureTime:          [2]uint32{1, 200},
		FNumber:               [2]uint32{28, 10},
		ISOSpeedRatings:       400,
		FocalLength:           [2]uint32{50, 1},
		FocalLengthIn35mmFilm: 50,
	}
}
