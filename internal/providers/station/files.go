package station

import (
	"context"
	"errors"
	"fmt"

	"github.com/GriffinCanCode/dfnlib/internal/catalog"
	"github.com/GriffinCanCode/dfnlib/internal/locate"
	"github.com/GriffinCanCode/dfnlib/internal/types"
	"go.uber.org/zap"
)

// FilesProvider locates station files by naming convention
type FilesProvider struct {
	finder  *locate.Finder
	dataDir string
	logExt  string
	logger  *zap.Logger
}

// NewFilesProvider creates a files provider. dataDir is used when a tool call
// omits its directory; logExt when a log lookup omits its extension.
func NewFilesProvider(finder *locate.Finder, dataDir, logExt string, logger *zap.Logger) *FilesProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	if finder == nil {
		finder = locate.NewFinder(locate.BackendWalk, logger)
	}
	if dataDir == "" {
		dataDir = "."
	}
	if logExt == "" {
		logExt = catalog.LogExtension
	}
	return &FilesProvider{
		finder:  finder,
		dataDir: dataDir,
		logExt:  logExt,
		logger:  logger,
	}
}

// Definition returns the files service definition
func (p *FilesProvider) Definition() types.Service {
	return types.Service{
		ID:           "files",
		Name:         "Station Files",
		Description:  "Locate raw images, station config and log files by naming convention",
		Category:     types.CategoryFilesystem,
		Capabilities: []string{"glob", "find_config", "find_log", "raw_maker", "filter_band"},
		Tools: []types.Tool{
			{
				ID:          "files.glob",
				Name:        "Glob by Extension",
				Description: "List directory/prefix*suffix*.ext for each extension, sorted (no recursion)",
				Parameters: []types.Parameter{
					{Name: "extensions", Type: "array", Description: "Extensions (e.g., ['NEF', 'CR2'])", Required: true},
					{Name: "directory", Type: "string", Description: "Directory to search", Required: false},
					{Name: "prefix", Type: "string", Description: "Filename prefix", Required: false},
					{Name: "suffix", Type: "string", Description: "Substring after the prefix", Required: false},
				},
				Returns: "array",
			},
			{
				ID:          "files.config",
				Name:        "Find Station Config",
				Description: "Find the dfnstation config file in a directory",
				Parameters: []types.Parameter{
					{Name: "directory", Type: "string", Description: "Directory to search", Required: false},
				},
				Returns: "string",
			},
			{
				ID:          "files.log",
				Name:        "Find Log File",
				Description: "Recursively find a log file ending with system+suffix.extension",
				Parameters: []types.Parameter{
					{Name: "directory", Type: "string", Description: "Base directory", Required: false},
					{Name: "suffix", Type: "string", Description: "Log suffix (e.g., '_log_interval')", Required: true},
					{Name: "extension", Type: "string", Description: "Log extension (default txt)", Required: false},
					{Name: "system", Type: "string", Description: "System number", Required: false},
				},
				Returns: "string",
			},
			{
				ID:          "files.raw_maker",
				Name:        "Raw Camera Maker",
				Description: "Look up the camera maker of a raw image extension",
				Parameters: []types.Parameter{
					{Name: "extension", Type: "string", Description: "Raw extension (e.g., 'NEF')", Required: true},
				},
				Returns: "string",
			},
			{
				ID:          "files.filter_band",
				Name:        "Filter Band",
				Description: "Look up the photometric band of a processing channel",
				Parameters: []types.Parameter{
					{Name: "name", Type: "string", Description: "Channel name (e.g., 'GREEN 1')", Required: true},
				},
				Returns: "string",
			},
		},
	}
}

// Execute runs a files tool
func (p *FilesProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}) (*types.Result, error) {
	switch toolID {
	case "files.glob":
		return p.glob(params)
	case "files.config":
		return p.config(params)
	case "files.log":
		return p.log(ctx, params)
	case "files.raw_maker":
		return p.rawMaker(params)
	case "files.filter_band":
		return p.filterBand(params)
	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (p *FilesProvider) glob(params map[string]interface{}) (*types.Result, error) {
	extensions := stringsParam(params, "extensions")
	if len(extensions) == 0 {
		return failure("extensions parameter required")
	}

	directory := stringParam(params, "directory", p.dataDir)
	matches, err := locate.GlobByExtension(extensions, directory,
		stringParam(params, "prefix", ""), stringParam(params, "suffix", ""))
	if err != nil {
		return failure(fmt.Sprintf("glob failed: %v", err))
	}

	return success(map[string]interface{}{"directory": directory, "matches": matches, "count": len(matches)})
}

func (p *FilesProvider) config(params map[string]interface{}) (*types.Result, error) {
	directory := stringParam(params, "directory", p.dataDir)
	path := locate.FindConfigFile(directory, p.logger)

	return success(map[string]interface{}{"directory": directory, "path": path, "found": path != ""})
}

func (p *FilesProvider) log(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	suffix, ok := params["suffix"].(string)
	if !ok || suffix == "" {
		return failure("suffix parameter required")
	}

	directory := stringParam(params, "directory", p.dataDir)
	path, err := p.finder.FindLogFile(ctx, directory, suffix,
		stringParam(params, "extension", p.logExt), stringParam(params, "system", ""))
	if err != nil {
		if errors.Is(err, locate.ErrProcessExecution) {
			p.logger.Error("Log file search process failed", zap.String("directory", directory), zap.Error(err))
		}
		return failure(err.Error())
	}

	return success(map[string]interface{}{"directory": directory, "path": path})
}

func (p *FilesProvider) rawMaker(params map[string]interface{}) (*types.Result, error) {
	ext, ok := params["extension"].(string)
	if !ok || ext == "" {
		return failure("extension parameter required")
	}

	maker, found := catalog.RawCameraMaker(ext)
	if !found {
		return failure(fmt.Sprintf("unknown raw extension %q (known: %v)", ext, catalog.RawExtensions()))
	}
	return success(map[string]interface{}{"extension": ext, "maker": maker})
}

func (p *FilesProvider) filterBand(params map[string]interface{}) (*types.Result, error) {
	name, ok := params["name"].(string)
	if !ok || name == "" {
		return failure("name parameter required")
	}

	band, found := catalog.FilterBand(name)
	if !found {
		return failure(fmt.Sprintf("unknown processing channel %q (known: %v)", name, catalog.FilterBandNames()))
	}
	return success(map[string]interface{}{"name": name, "band": band})
}
