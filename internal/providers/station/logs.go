package station

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/dfnlib/internal/oplog"
	"github.com/GriffinCanCode/dfnlib/internal/types"
)

// LogProvider extracts values from station operation logs
type LogProvider struct{}

// NewLogProvider creates a log provider
func NewLogProvider() *LogProvider {
	return &LogProvider{}
}

// Definition returns the log service definition
func (p *LogProvider) Definition() types.Service {
	return types.Service{
		ID:           "log",
		Name:         "Operation Log",
		Description:  "Extract logged key values from station operation logs",
		Category:     types.CategoryLogs,
		Capabilities: []string{"search_key"},
		Tools: []types.Tool{
			{
				ID:          "log.search",
				Name:        "Search Log",
				Description: "Return the value logged for a key by a module (first match or all)",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "Log file path", Required: true},
					{Name: "key", Type: "string", Description: "Key (e.g., 'leostick_version')", Required: true},
					{Name: "module", Type: "string", Description: "Logging module (e.g., 'interval_control_lin')", Required: false},
					{Name: "mode", Type: "string", Description: "'first' (default) or 'list'", Required: false},
				},
				Returns: "object",
			},
		},
	}
}

// Execute runs a log tool
func (p *LogProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}) (*types.Result, error) {
	switch toolID {
	case "log.search":
		return p.search(params)
	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (p *LogProvider) search(params map[string]interface{}) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return failure("path parameter required")
	}
	key, ok := params["key"].(string)
	if !ok || key == "" {
		return failure("key parameter required")
	}
	module := stringParam(params, "module", "")

	mode, err := oplog.ParseMode(stringParam(params, "mode", string(oplog.ModeFirst)))
	if err != nil {
		return failure(err.Error())
	}

	values, err := oplog.Search(path, key, module, mode)
	if err != nil {
		return failure(err.Error())
	}

	data := map[string]interface{}{"path": path, "key": key, "module": module, "mode": string(mode)}
	if mode == oplog.ModeFirst {
		data["value"] = values[0]
	} else {
		data["values"] = values
		data["count"] = len(values)
	}
	return success(data)
}
