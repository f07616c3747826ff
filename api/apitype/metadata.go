package apitype

import (
	"sort"
	"strings"
)

// Well known EXIF field names. They match the names goexif publishes.
const (
	DateTimeOriginal        = "DateTimeOriginal"
	ExposureTime            = "ExposureTime"
	FNumber                 = "FNumber"
	ISOSpeedRatings         = "ISOSpeedRatings"
	PhotographicSensitivity = "PhotographicSensitivity"
	FocalLength             = "FocalLength"
	FocalLengthIn35mmFilm   = "FocalLengthIn35mmFilm"
)

// MetaData maps EXIF field names to decoded values. It is built once per
// file read and handed to the caller as is.
type MetaData map[string]TagValue

func NewMetaData() MetaData {
	return MetaData{}
}

func (s MetaData) Get(name string) (TagValue, bool) {
	if s == nil {
		return nil, false
	}
	value, ok := s[name]
	return value, ok
}

// Text returns the value of a text tag. Other variants are reported as missing.
func (s MetaData) Text(name string) (string, bool) {
	if value, ok := s.Get(name); ok {
		if text, ok := value.(TextValue); ok {
			return string(text), true
		}
	}
	return "", false
}

func (s MetaData) Len() int {
	return len(s)
}

func (s MetaData) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Format renders every tag as a "name: value" line, sorted by name.
func (s MetaData) Format() string {
	builder := strings.Builder{}
	for _, name := range s.Names() {
		builder.WriteString(name)
		builder.WriteString(": ")
		builder.WriteString(s[name].String())
		builder.WriteString("\n")
	}
	return builder.String()
}
