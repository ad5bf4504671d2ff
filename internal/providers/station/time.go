package station

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/dfnlib/internal/astrotime"
	"github.com/GriffinCanCode/dfnlib/internal/types"
)

// TimeProvider normalizes and rounds timestamps
type TimeProvider struct{}

// NewTimeProvider creates a time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Definition returns the time service definition
func (p *TimeProvider) Definition() types.Service {
	return types.Service{
		ID:           "time",
		Name:         "Time Normalizer",
		Description:  "Normalize epoch, julian day and timestamp values to UTC and round them to intervals",
		Category:     types.CategoryTime,
		Capabilities: []string{"normalize", "round", "julian_day"},
		Tools: []types.Tool{
			{
				ID:          "time.normalize",
				Name:        "Normalize Time",
				Description: "Convert a Unix epoch, Julian Day or ISO timestamp to UTC",
				Parameters: []types.Parameter{
					{Name: "time", Type: "string", Description: "Time value (e.g. '2457754.5', '1498800000.0', '2017-06-30T16:13:29')", Required: true},
				},
				Returns: "object",
			},
			{
				ID:          "time.round",
				Name:        "Round Time",
				Description: "Round a time to the nearest n-second boundary",
				Parameters: []types.Parameter{
					{Name: "time", Type: "string", Description: "Time value", Required: true},
					{Name: "n", Type: "number", Description: "Interval in seconds, must divide 60", Required: true},
				},
				Returns: "object",
			},
			{
				ID:          "time.julian",
				Name:        "Julian Date",
				Description: "Split a time into Julian Day and day fraction",
				Parameters: []types.Parameter{
					{Name: "time", Type: "string", Description: "Time value", Required: true},
				},
				Returns: "object",
			},
		},
	}
}

// Execute runs a time tool
func (p *TimeProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}) (*types.Result, error) {
	switch toolID {
	case "time.normalize":
		return p.normalize(params)
	case "time.round":
		return p.round(params)
	case "time.julian":
		return p.julian(params)
	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (p *TimeProvider) normalize(params map[string]interface{}) (*types.Result, error) {
	in, err := timeParam(params, "time")
	if err != nil {
		return failure(err.Error())
	}

	t, err := astrotime.Normalize(in)
	if err != nil {
		return failure(err.Error())
	}

	data := describeTime(t)
	data["input"] = in.String()
	data["kind"] = in.Kind().String()
	return success(data)
}

func (p *TimeProvider) round(params map[string]interface{}) (*types.Result, error) {
	in, err := timeParam(params, "time")
	if err != nil {
		return failure(err.Error())
	}

	n, err := intParam(params, "n")
	if err != nil {
		return failure(fmt.Sprintf("%v: %v", astrotime.ErrInvalidRoundingFactor, err))
	}

	t, err := astrotime.RoundToInterval(in, n)
	if err != nil {
		return failure(err.Error())
	}

	data := describeTime(t)
	data["input"] = in.String()
	data["n"] = n
	return success(data)
}

func (p *TimeProvider) julian(params map[string]interface{}) (*types.Result, error) {
	in, err := timeParam(params, "time")
	if err != nil {
		return failure(err.Error())
	}

	t, err := astrotime.Normalize(in)
	if err != nil {
		return failure(err.Error())
	}

	jd := astrotime.ToJulianDate(t)
	return success(map[string]interface{}{
		"jd":       jd.Float(),
		"day":      jd.Day,
		"fraction": jd.Fraction,
	})
}
