package apitype

import (
	"encoding/hex"
	"strconv"
)

// TagValue is a decoded EXIF tag value. The set of implementations is closed:
// TextValue, IntegerValue, RationalValue and RawValue.
type TagValue interface {
	String() string
	isTagValue()
}

type TextValue string

type IntegerValue int64

// RationalValue keeps the fraction exactly as it was stored in the file.
// It is never reduced.
type RationalValue struct {
	Numerator   int64
	Denominator int64
}

type RawValue []byte

func NewRationalValue(numerator int64, denominator int64) RationalValue {
	return RationalValue{Numerator: numerator, Denominator: denominator}
}

func (s TextValue) isTagValue()     {}
func (s IntegerValue) isTagValue()  {}
func (s RationalValue) isTagValue() {}
func (s RawValue) isTagValue()      {}

func (s TextValue) String() string {
	return string(s)
}

func (s IntegerValue) String() string {
	return strconv.FormatInt(int64(s), 10)
}

func (s RationalValue) String() string {
	if s.Denominator == 1 {
		return strconv.FormatInt(s.Numerator, 10)
	}
	return strconv.FormatInt(s.Numerator, 10) + "/" + strconv.FormatInt(s.Denominator, 10)
}

func (s RawValue) String() string {
	return hex.EncodeToString(s)
}

func (s RationalValue) IsZero() bool {
	return s.Numerator == 0
}

// Valid reports whether the fraction has a usable denominator.
func (s RationalValue) Valid() bool {
	return s.Denominator != 0
}

func (s RationalValue) Float64() float64 {
	return float64(s.Numerator) / float64(s.Denominator)
}
