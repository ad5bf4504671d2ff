package astrotime

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidTimeFormat is returned when an input cannot be read as a time.
	ErrInvalidTimeFormat = errors.New("invalid time format")

	// ErrInvalidRoundingFactor is returned when a rounding interval does not divide 60 seconds.
	ErrInvalidRoundingFactor = errors.New("invalid rounding factor")
)

// unixDigitThreshold is the integer digit count above which a number is read
// as Unix epoch seconds rather than a Julian Day.
const unixDigitThreshold = 7

// timestampLayouts are tried in order for string inputs. Layouts without a zone
// are read as UTC. Fractional seconds (with '.' or ',') after the seconds field
// are accepted by every layout that has one.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006:002:15:04:05",
	"2006:002",
}

// Normalize converts in to a UTC time.Time.
func Normalize(in Input) (time.Time, error) {
	switch in.kind {
	case KindTime:
		return in.t.UTC(), nil
	case KindNumber:
		return fromNumber(in)
	case KindString:
		return parseTimestamp(in.raw)
	default:
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidTimeFormat, in)
	}
}

func fromNumber(in Input) (time.Time, error) {
	var (
		t  time.Time
		ok bool
	)
	if integerDigits(in.num) > unixDigitThreshold {
		t, ok = FromUnix(in.num)
	} else {
		t, ok = FromJulianDay(in.num)
	}
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q is out of range", ErrInvalidTimeFormat, in.raw)
	}
	return t, nil
}

// integerDigits counts the characters of the truncated integer part, sign included.
func integerDigits(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	// Adding zero turns -0 into 0 so that -0.5 counts as one digit.
	return len(strconv.FormatFloat(math.Trunc(f)+0, 'f', 0, 64))
}

func parseTimestamp(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrInvalidTimeFormat)
	}

	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, value)
}
