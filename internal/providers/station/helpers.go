package station

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/GriffinCanCode/dfnlib/internal/astrotime"
	"github.com/GriffinCanCode/dfnlib/internal/types"
)

var (
	success = types.Success
	failure = types.Failure
)

// timeParam reads a time given as a string or a number.
func timeParam(params map[string]interface{}, name string) (astrotime.Input, error) {
	switch v := params[name].(type) {
	case string:
		if v == "" {
			return astrotime.Input{}, fmt.Errorf("%s parameter required", name)
		}
		return astrotime.FromString(v), nil
	case float64:
		return astrotime.FromFloat(v), nil
	case time.Time:
		return astrotime.FromTime(v), nil
	case nil:
		return astrotime.Input{}, fmt.Errorf("%s parameter required", name)
	default:
		return astrotime.Input{}, fmt.Errorf("%s parameter must be a string or number, got %T", name, v)
	}
}

// intParam reads a whole number given as a JSON number or a string.
func intParam(params map[string]interface{}, name string) (int, error) {
	switch v := params[name].(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%s must be an integer, got %v", name, v)
		}
		return int(v), nil
	case int:
		return v, nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("%s must be an integer, got %q", name, v)
		}
		return n, nil
	case nil:
		return 0, fmt.Errorf("%s parameter required", name)
	default:
		return 0, fmt.Errorf("%s must be an integer, got %T", name, v)
	}
}

// stringsParam reads a single string or an array of strings.
func stringsParam(params map[string]interface{}, name string) []string {
	switch v := params[name].(type) {
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func stringParam(params map[string]interface{}, name, fallback string) string {
	if s, ok := params[name].(string); ok && s != "" {
		return s
	}
	return fallback
}

// describeTime renders a canonical time in the representations callers use.
func describeTime(t time.Time) map[string]interface{} {
	jd := astrotime.ToJulianDate(t)
	return map[string]interface{}{
		"utc":  t.Format(time.RFC3339Nano),
		"unix": float64(t.Unix()) + float64(t.Nanosecond())/1e9,
		"jd":   jd.Float(),
	}
}
