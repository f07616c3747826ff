package naming

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"vincit.fi/exif-renamer/api/apitype"
)

var captureTimePattern = regexp.MustCompile(`\d{4}:\d{2}:\d{2} \d{2}:\d{2}:\d{2}`)

// ExifSuffix builds the sanitized file name suffix from EXIF data. The
// second result is false when the capture timestamp is missing or
// malformed, in which case the file must not be renamed.
func ExifSuffix(metaData apitype.MetaData) (string, bool) {
	if !HasCaptureTime(metaData) {
		return "", false
	}

	suffix := FormatShutterSpeed(metaData) +
		FormatFNumber(metaData) +
		FormatISO(metaData) +
		FormatFocalLength(metaData)

	return Sanitize(suffix), true
}

func HasCaptureTime(metaData apitype.MetaData) bool {
	captureTime, ok := metaData.Text(apitype.DateTimeOriginal)
	return ok && captureTimePattern.MatchString(captureTime)
}

func FormatShutterSpeed(metaData apitype.MetaData) string {
	value, _ := metaData.Get(apitype.ExposureTime)
	switch v := value.(type) {
	case apitype.RationalValue:
		return fmt.Sprintf(" %d／%d秒", v.Numerator, v.Denominator)
	case apitype.IntegerValue:
		return fmt.Sprintf(" %.1f秒", float64(v))
	}
	return ""
}

func FormatFNumber(metaData apitype.MetaData) string {
	value, _ := metaData.Get(apitype.FNumber)
	formatted := ""
	switch v := value.(type) {
	case apitype.RationalValue:
		if v.Valid() && !v.IsZero() {
			formatted = formatFloat(v.Float64())
		}
	case apitype.IntegerValue:
		if v != 0 {
			formatted = formatFloat(float64(v))
		}
	case apitype.TextValue:
		formatted = string(v)
	}

	if formatted == "" {
		return ""
	}
	return strings.ReplaceAll(" F"+formatted, "/", "／")
}

// FormatISO uses the first ISO tag that has a non-zero value.
func FormatISO(metaData apitype.MetaData) string {
	for _, name := range []string{apitype.ISOSpeedRatings, apitype.PhotographicSensitivity} {
		value, _ := metaData.Get(name)
		switch v := value.(type) {
		case apitype.IntegerValue:
			if v != 0 {
				return " ISO" + v.String()
			}
		case apitype.RationalValue:
			if v.Valid() && !v.IsZero() {
				return " ISO" + v.String()
			}
		case apitype.TextValue:
			if v != "" {
				return " ISO" + string(v)
			}
		}
	}
	return ""
}

type SensorClass int

const (
	UnknownSensor SensorClass = iota
	FullFrame
	APSC
)

// FormatFocalLength renders the actual focal length together with the
// sensor class derived from the 35mm equivalent.
func FormatFocalLength(metaData apitype.MetaData) string {
	actualValue, _ := metaData.Get(apitype.FocalLength)
	actual, ok := toNumber(actualValue)
	if !ok || actual.isZero() {
		return ""
	}

	equivalentValue, _ := metaData.Get(apitype.FocalLengthIn35mmFilm)
	equivalent, hasEquivalent := toNumber(equivalentValue)

	mul, hasMultiplier := FocalLengthMultiplier(actualValue, equivalentValue)
	switch Classify(mul, hasMultiplier) {
	case FullFrame:
		return fmt.Sprintf(" %dmm(f)", actual.truncate())
	case APSC:
		return fmt.Sprintf(" %dmm(35:%d)", actual.truncate(), equivalent.truncate())
	}

	equivalentMm := int64(0)
	if hasEquivalent {
		equivalentMm = equivalent.truncate()
	}
	if !hasMultiplier {
		return fmt.Sprintf(" %dmm(35:%d mul:None apsc:None full:None)", actual.truncate(), equivalentMm)
	}
	return fmt.Sprintf(" %dmm(35:%d mul:%s apsc:%s full:%s)",
		actual.truncate(), equivalentMm, mul.String(),
		formatBool(mul.Is(3, 2)), formatBool(mul.Is(1, 1)))
}

func formatBool(value bool) string {
	if value {
		return "True"
	}
	return "False"
}

// Classify compares the multiplier exactly against 1 and 1.5.
func Classify(mul Multiplier, hasMultiplier bool) SensorClass {
	if !hasMultiplier {
		return UnknownSensor
	} else if mul.Is(3, 2) {
		return APSC
	} else if mul.Is(1, 1) {
		return FullFrame
	}
	return UnknownSensor
}

// Multiplier is the 35mm equivalent focal length divided by the actual one.
// It is exact when either operand is a rational and a float64 quotient when
// both are integers.
type Multiplier struct {
	exact   *big.Rat
	approx  float64
	isExact bool
}

// FocalLengthMultiplier returns false when either value is missing or zero.
func FocalLengthMultiplier(actualValue apitype.TagValue, equivalentValue apitype.TagValue) (Multiplier, bool) {
	actual, ok := toNumber(actualValue)
	if !ok || actual.isZero() {
		return Multiplier{}, false
	}
	equivalent, ok := toNumber(equivalentValue)
	if !ok || equivalent.isZero() {
		return Multiplier{}, false
	}

	if actual.isInteger && equivalent.isInteger {
		return Multiplier{
			approx: float64(equivalent.value.Num().Int64()) / float64(actual.value.Num().Int64()),
		}, true
	}
	return Multiplier{
		exact:   new(big.Rat).Quo(equivalent.value, actual.value),
		isExact: true,
	}, true
}

func (s Multiplier) Is(numerator int64, denominator int64) bool {
	if s.isExact {
		return s.exact.Cmp(big.NewRat(numerator, denominator)) == 0
	}
	return s.approx == float64(numerator)/float64(denominator)
}

func (s Multiplier) String() string {
	if s.isExact {
		return s.exact.RatString()
	}
	return formatFloat(s.approx)
}

type number struct {
	value     *big.Rat
	isInteger bool
}

func toNumber(value apitype.TagValue) (number, bool) {
	switch v := value.(type) {
	case apitype.IntegerValue:
		return number{value: big.NewRat(int64(v), 1), isInteger: true}, true
	case apitype.RationalValue:
		if v.Valid() {
			return number{value: big.NewRat(v.Numerator, v.Denominator)}, true
		}
	}
	return number{}, false
}

func (s number) isZero() bool {
	return s.value.Sign() == 0
}

// truncate rounds toward zero.
func (s number) truncate() int64 {
	return new(big.Int).Quo(s.value.Num(), s.value.Denom()).Int64()
}

// formatFloat prints the shortest representation that round-trips and
// always keeps at least one decimal, so 4 prints as "4.0".
func formatFloat(value float64) string {
	formatted := strconv.FormatFloat(value, 'f', -1, 64)
	if !strings.ContainsAny(formatted, ".eEnN") {
		formatted += ".0"
	}
	return formatted
}
