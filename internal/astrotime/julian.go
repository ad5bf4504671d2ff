package astrotime

import (
	"math"
	"time"
)

const (
	secondsPerDay = 86400

	// unixEpochJD is the Julian Day of 1970-01-01T00:00:00Z.
	unixEpochJD = 2440587.5

	// Bounds keep float to int64 conversions well inside time.Time's range.
	maxAbsUnixSeconds = 1e17
	maxAbsJulianDay   = maxAbsUnixSeconds / secondsPerDay
)

// JulianDate is a Julian Day split into an integral day and a fraction in
// [-0.5, 0.5), which keeps sub-second resolution that a single float64 loses.
type JulianDate struct {
	Day      float64
	Fraction float64
}

// Float collapses the date into a single Julian Day number.
func (jd JulianDate) Float() float64 {
	return jd.Day + jd.Fraction
}

// ToJulianDate converts t to a two-part Julian Date on the UTC scale.
func ToJulianDate(t time.Time) JulianDate {
	t = t.UTC()
	sec := t.Unix()
	days := sec / secondsPerDay
	rem := sec % secondsPerDay
	if rem < 0 {
		days--
		rem += secondsPerDay
	}

	dayFrac := (float64(rem) + float64(t.Nanosecond())/1e9) / secondsPerDay
	return JulianDate{
		Day:      float64(days) + unixEpochJD + 0.5,
		Fraction: dayFrac - 0.5,
	}
}

// FromJulianDay converts a Julian Day number to a UTC time. Values outside the
// representable range yield the zero time and false.
func FromJulianDay(jd float64) (time.Time, bool) {
	if math.IsNaN(jd) || math.IsInf(jd, 0) || math.Abs(jd) > maxAbsJulianDay {
		return time.Time{}, false
	}

	day := math.Floor(jd)
	frac := jd - day
	// Julian days start at noon, so the integral part is shifted half a day.
	days := int64(day) - int64(unixEpochJD+0.5)
	offset := time.Duration(math.Round((frac + 0.5) * secondsPerDay * 1e9))

	return time.Unix(days*secondsPerDay, 0).Add(offset).UTC(), true
}

// FromUnix converts Unix epoch seconds to a UTC time. Values outside the
// representable range yield the zero time and false.
func FromUnix(sec float64) (time.Time, bool) {
	if math.IsNaN(sec) || math.IsInf(sec, 0) || math.Abs(sec) > maxAbsUnixSeconds {
		return time.Time{}, false
	}

	whole := math.Floor(sec)
	nanos := math.Round((sec - whole) * 1e9)
	return time.Unix(int64(whole), int64(nanos)).UTC(), true
}
