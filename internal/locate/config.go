package locate

import (
	"path/filepath"
	"sort"

	"github.com/GriffinCanCode/dfnlib/internal/catalog"
	"go.uber.org/zap"
)

// FindConfigFile returns the station config file in directory. The
// conventional name is returned bare when it exists; otherwise the first
// sorted *dfnstation*.cfg match; otherwise "". Several candidates only log a
// warning.
func FindConfigFile(directory string, logger *zap.Logger) string {
	if logger == nil {
		logger = zap.NewNop()
	}
	if directory == "" {
		directory = "."
	}

	candidates, err := globPattern(filepath.Join(directory, catalog.StationConfigPattern))
	if err != nil {
		logger.Warn("Station config lookup failed", zap.String("directory", directory), zap.Error(err))
		return ""
	}
	sort.Strings(candidates)

	if len(candidates) > 1 {
		logger.Warn("Several camera config files found in the directory",
			zap.String("directory", directory),
			zap.Strings("candidates", candidates))
	}

	standard := filepath.Join(directory, catalog.StationConfigName)
	for _, c := range candidates {
		if c == standard {
			return catalog.StationConfigName
		}
	}

	if len(candidates) > 0 {
		return candidates[0]
	}
	return ""
}
