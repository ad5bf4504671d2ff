package astrotime

import (
	"fmt"
	"time"
)

// ValidRoundingFactor reports whether n seconds evenly divides a minute.
func ValidRoundingFactor(n int) bool {
	return n >= 1 && n <= 60 && 60%n == 0
}

// RoundToInterval snaps in to the nearest multiple of n seconds within its UTC
// day. Ties go to the even multiple. The result may fall on the next day.
func RoundToInterval(in Input, n int) (time.Time, error) {
	if !ValidRoundingFactor(n) {
		return time.Time{}, fmt.Errorf("%w: %d does not divide 60 seconds", ErrInvalidRoundingFactor, n)
	}

	t, err := Normalize(in)
	if err != nil {
		return time.Time{}, err
	}

	return roundUTC(t, time.Duration(n)*time.Second), nil
}

func roundUTC(t time.Time, step time.Duration) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := t.Sub(midnight)

	q, r := offset/step, offset%step
	if 2*r > step || (2*r == step && q%2 == 1) {
		q++
	}

	return midnight.Add(q * step)
}
