// Package station exposes the station helpers as registry providers.
//
// Services:
//   - time: normalize, round and Julian Date conversion
//   - files: raw image globbing, station config and log file lookup,
//     camera and filter band tables
//   - log: key/value extraction from operation logs
//
// Parameters follow JSON conventions: numbers arrive as float64 and arrays as
// []interface{}. Invalid input produces a failed types.Result, not a Go error.
//
// Example Usage:
//
//	registry.Register(station.NewTimeProvider())
//	result, _ := registry.Execute(ctx, "time.normalize", map[string]interface{}{"time": "2457754.5"})
package station
