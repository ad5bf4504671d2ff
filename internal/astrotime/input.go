package astrotime

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Kind identifies which variant of Input is populated.
type Kind int

const (
	KindInvalid Kind = iota
	KindTime
	KindNumber
	KindString
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindTime:
		return "time"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	default:
		return "invalid"
	}
}

// numericPattern matches strings that are treated as numbers rather than
// timestamps: digits, a dot, digits.
var numericPattern = regexp.MustCompile(`^\d+\.\d+$`)

// Input is a time value in one of the accepted shapes. Build it with FromTime,
// FromFloat or FromString; the zero Input is invalid.
type Input struct {
	kind Kind
	t    time.Time
	num  float64
	raw  string
}

// FromTime wraps an existing time value.
func FromTime(t time.Time) Input {
	return Input{kind: KindTime, t: t}
}

// FromFloat wraps a Unix epoch or Julian Day number.
func FromFloat(f float64) Input {
	return Input{kind: KindNumber, num: f, raw: strconv.FormatFloat(f, 'f', -1, 64)}
}

// FromString classifies s. Text made of digits, a dot and digits is a number;
// everything else is kept as a timestamp to be parsed by Normalize.
func FromString(s string) Input {
	if numericPattern.MatchString(s) {
		// Out of range values come back as ±Inf and are rejected by Normalize.
		f, _ := strconv.ParseFloat(s, 64)
		return Input{kind: KindNumber, num: f, raw: s}
	}
	return Input{kind: KindString, raw: s}
}

// Kind returns the populated variant.
func (in Input) Kind() Kind {
	return in.kind
}

// String renders the raw value for diagnostics.
func (in Input) String() string {
	switch in.kind {
	case KindTime:
		return in.t.Format(time.RFC3339Nano)
	case KindNumber, KindString:
		return in.raw
	default:
		return fmt.Sprintf("<%s>", in.kind)
	}
}
