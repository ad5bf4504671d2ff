package station

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/GriffinCanCode/dfnlib/internal/astrotime"
	"github.com/GriffinCanCode/dfnlib/internal/locate"
	"github.com/GriffinCanCode/dfnlib/internal/service"
	"github.com/GriffinCanCode/dfnlib/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRegistry(t *testing.T, dataDir string) *service.Registry {
	t.Helper()
	r := service.NewRegistry()
	require.NoError(t, r.Register(NewTimeProvider()))
	require.NoError(t, r.Register(NewFilesProvider(locate.NewFinder(locate.BackendWalk, nil), dataDir, "", zap.NewNop())))
	require.NoError(t, r.Register(NewLogProvider()))
	return r
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDefinitions(t *testing.T) {
	r := newRegistry(t, ".")

	services := r.List(nil)
	require.Len(t, services, 3)

	toolIDs := make(map[string]bool)
	for _, tool := range r.Tools() {
		toolIDs[tool.ID] = true
		assert.NotEmpty(t, tool.Name)
		assert.NotEmpty(t, tool.Description)
	}

	for _, id := range []string{
		"time.normalize", "time.round", "time.julian",
		"files.glob", "files.config", "files.log", "files.raw_maker", "files.filter_band",
		"log.search",
	} {
		assert.True(t, toolIDs[id], id)
	}
}

func TestTimeNormalize(t *testing.T) {
	r := newRegistry(t, ".")
	ctx := context.Background()

	result, err := r.Execute(ctx, "time.normalize", map[string]interface{}{"time": "2457754.5"})
	require.NoError(t, err)
	require.True(t, result.Success, "%v", result.Error)
	assert.Equal(t, "2017-01-01T00:00:00Z", result.Data["utc"])
	assert.Equal(t, "number", result.Data["kind"])
	assert.Equal(t, 2457754.5, result.Data["jd"])

	result, err = r.Execute(ctx, "time.normalize", map[string]interface{}{"time": 1498800000.0})
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, "2017-06-30T05:20:00Z", result.Data["utc"])
	assert.Equal(t, 1498800000.0, result.Data["unix"])
}

func TestTimeRound(t *testing.T) {
	r := newRegistry(t, ".")
	ctx := context.Background()

	result, err := r.Execute(ctx, "time.round", map[string]interface{}{"time": "2017-06-30T16:13:29", "n": 30.0})
	require.NoError(t, err)
	require.True(t, result.Success, "%v", result.Error)
	assert.Equal(t, "2017-06-30T16:13:30Z", result.Data["utc"])

	result, err = r.Execute(ctx, "time.round", map[string]interface{}{"time": "2017-06-30T16:13:29", "n": "15"})
	require.NoError(t, err)
	require.True(t, result.Success, "%v", result.Error)
	assert.Equal(t, "2017-06-30T16:13:30Z", result.Data["utc"])
}

func TestTimeErrors(t *testing.T) {
	r := newRegistry(t, ".")
	ctx := context.Background()

	tests := []struct {
		name    string
		toolID  string
		params  map[string]interface{}
		message string
	}{
		{"missing time", "time.normalize", map[string]interface{}{}, "time parameter required"},
		{"bad time", "time.normalize", map[string]interface{}{"time": "tomorrow"}, astrotime.ErrInvalidTimeFormat.Error()},
		{"wrong type", "time.julian", map[string]interface{}{"time": true}, "must be a string or number"},
		{"factor seven", "time.round", map[string]interface{}{"time": "2457754.5", "n": 7.0}, astrotime.ErrInvalidRoundingFactor.Error()},
		{"fractional factor", "time.round", map[string]interface{}{"time": "2457754.5", "n": 7.5}, astrotime.ErrInvalidRoundingFactor.Error()},
		{"unknown tool", "time.warp", map[string]interface{}{}, "unknown tool"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := r.Execute(ctx, tt.toolID, tt.params)
			require.NoError(t, err)
			assert.False(t, result.Success)
			require.NotNil(t, result.Error)
			assert.Contains(t, *result.Error, tt.message)
		})
	}
}

func TestTimeJulian(t *testing.T) {
	r := newRegistry(t, ".")

	result, err := r.Execute(context.Background(), "time.julian", map[string]interface{}{"time": "2000-01-01T12:00:00"})
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, 2451545.0, result.Data["jd"])
	assert.Equal(t, 2451545.0, result.Data["day"])
	assert.Equal(t, 0.0, result.Data["fraction"])
}

func TestFilesGlobAndConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.NEF"), "")
	writeFile(t, filepath.Join(dir, "a.CR2"), "")
	writeFile(t, filepath.Join(dir, "dfnstation.cfg"), "")
	writeFile(t, filepath.Join(dir, "old_dfnstation.cfg"), "")

	r := newRegistry(t, dir)
	ctx := context.Background()

	result, err := r.Execute(ctx, "files.glob", map[string]interface{}{"extensions": []interface{}{"NEF", "CR2"}})
	require.NoError(t, err)
	require.True(t, result.Success, "%v", result.Error)
	assert.Equal(t, []string{filepath.Join(dir, "a.CR2"), filepath.Join(dir, "b.NEF")}, result.Data["matches"])

	result, err = r.Execute(ctx, "files.glob", map[string]interface{}{})
	require.NoError(t, err)
	assert.False(t, result.Success)

	result, err = r.Execute(ctx, "files.config", map[string]interface{}{})
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, "dfnstation.cfg", result.Data["path"])
	assert.Equal(t, true, result.Data["found"])

	result, err = r.Execute(ctx, "files.config", map[string]interface{}{"directory": t.TempDir()})
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, false, result.Data["found"])
}

func TestFilesLog(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "2017-06-30", "2017-06-30_DFNSMALL15_log_interval.txt")
	writeFile(t, logPath, "")

	r := newRegistry(t, dir)
	ctx := context.Background()

	result, err := r.Execute(ctx, "files.log", map[string]interface{}{"suffix": "_log_interval", "system": "15"})
	require.NoError(t, err)
	require.True(t, result.Success, "%v", result.Error)
	assert.Equal(t, logPath, result.Data["path"])

	result, err = r.Execute(ctx, "files.log", map[string]interface{}{"suffix": "_log_gps"})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, *result.Error, locate.ErrLogFileNotFound.Error())

	result, err = r.Execute(ctx, "files.log", map[string]interface{}{})
	require.NoError(t, err)
	assert.False(t, result.Success)
}

func TestFilesLookups(t *testing.T) {
	r := newRegistry(t, ".")
	ctx := context.Background()

	result, err := r.Execute(ctx, "files.raw_maker", map[string]interface{}{"extension": "CR2"})
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, "canon", result.Data["maker"])

	result, err = r.Execute(ctx, "files.filter_band", map[string]interface{}{"name": "GREEN_2X2"})
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, "G", result.Data["band"])

	result, err = r.Execute(ctx, "files.raw_maker", map[string]interface{}{"extension": "DNG"})
	require.NoError(t, err)
	assert.False(t, result.Success)
}

func TestLogSearch(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "log_interval.txt")
	writeFile(t, logPath,
		"2017-06-30 16:13:29,102, INFO, interval_control_lin, leostick_version, mem error fixed, built: 10:56:18\n"+
			"2017-06-30 16:14:00,001, INFO, interval_control_lin, exposure_time, 25\n"+
			"2017-06-30 16:14:30,001, INFO, interval_control_lin, exposure_time, 26\n")

	r := newRegistry(t, ".")
	ctx := context.Background()

	result, err := r.Execute(ctx, "log.search", map[string]interface{}{
		"path": logPath, "key": "leostick_version", "module": "interval_control_lin",
	})
	require.NoError(t, err)
	require.True(t, result.Success, "%v", result.Error)
	assert.Equal(t, "mem error fixed, built: 10:56:18", result.Data["value"])

	result, err = r.Execute(ctx, "log.search", map[string]interface{}{
		"path": logPath, "key": "exposure_time", "mode": "list",
	})
	require.NoError(t, err)
	require.True(t, result.Success, "%v", result.Error)
	assert.Equal(t, []string{"25", "26"}, result.Data["values"])
	assert.Equal(t, 2, result.Data["count"])

	for _, params := range []map[string]interface{}{
		{"path": logPath, "key": "gain"},
		{"path": logPath, "key": "exposure_time", "mode": "last"},
		{"key": "exposure_time"},
		{"path": logPath},
	} {
		result, err = r.Execute(ctx, "log.search", params)
		require.NoError(t, err)
		assert.False(t, result.Success, "%v", params)
	}
}

func TestResultErrorsAreStrings(t *testing.T) {
	result, err := failure("boom")
	require.NoError(t, err)
	assert.Equal(t, &types.Result{Success: false, Error: result.Error}, result)
	assert.Equal(t, "boom", *result.Error)
}
