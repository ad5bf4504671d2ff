// Package astrotime normalizes the time representations found across the
// station pipeline into a single UTC time.Time.
//
// Inputs arrive as one of three shapes, captured by the Input tagged union:
//   - an existing time.Time
//   - a number, either Unix epoch seconds or a Julian Day
//   - an ISO-8601-like timestamp string
//
// Numbers are disambiguated by the digit count of their integer part: more
// than 7 digits is Unix epoch seconds, anything shorter is a Julian Day.
//
// Example Usage:
//
//	t, err := astrotime.Normalize(astrotime.FromString("2457754.5"))
//	snapped, err := astrotime.RoundToInterval(astrotime.FromTime(t), 30)
package astrotime
