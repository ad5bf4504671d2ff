package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/GriffinCanCode/dfnlib/internal/config"
	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	cmd := NewRootCommand(cfg)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTimeNormalizeText(t *testing.T) {
	out, err := runCLI(t, nil, "time", "normalize", "2457754.5")
	require.NoError(t, err)

	assert.Contains(t, out, "utc: 2017-01-01T00:00:00Z")
	assert.Contains(t, out, "jd: 2457754.5")
	assert.Contains(t, out, "kind: number")
}

func TestTimeRoundJSON(t *testing.T) {
	out, err := runCLI(t, nil, "-o", "json", "time", "round", "2017-06-30T16:13:29", "--n", "30")
	require.NoError(t, err)

	var data map[string]interface{}
	require.NoError(t, sonic.Unmarshal([]byte(out), &data))
	assert.Equal(t, "2017-06-30T16:13:30Z", data["utc"])
	assert.Equal(t, float64(30), data["n"])
}

func TestTimeRoundRejectsSeven(t *testing.T) {
	_, err := runCLI(t, nil, "time", "round", "2457754.5", "--n", "7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rounding factor")
}

func TestFilesCommandsYAML(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.NEF", "a.CR2", "dfnstation.cfg", "2017-06-30/2017-06-30_DFNSMALL15_log_interval.txt"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, nil, 0o644))
	}

	cfg := config.Default()
	cfg.Station.DataDir = dir

	out, err := runCLI(t, cfg, "-o", "yaml", "files", "glob", "--ext", "NEF,CR2")
	require.NoError(t, err)

	var globbed struct {
		Count   int      `yaml:"count"`
		Matches []string `yaml:"matches"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &globbed))
	assert.Equal(t, 2, globbed.Count)
	assert.Equal(t, filepath.Join(dir, "a.CR2"), globbed.Matches[0])

	out, err = runCLI(t, cfg, "files", "config")
	require.NoError(t, err)
	assert.Contains(t, out, "path: dfnstation.cfg")

	out, err = runCLI(t, cfg, "files", "log", "--suffix", "_log_interval", "--system", "15")
	require.NoError(t, err)
	assert.Contains(t, out, "2017-06-30_DFNSMALL15_log_interval.txt")

	_, err = runCLI(t, cfg, "files", "log", "--suffix", "_log_gps")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not locate log file")
}

func TestLogSearch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	require.NoError(t, os.WriteFile(path, []byte(
		"2017-06-30 16:13:29,102, INFO, interval_control_lin, leostick_version, mem error fixed, built: 10:56:18\n"), 0o644))

	out, err := runCLI(t, nil, "log", "search", path, "--key", "leostick_version", "--module", "interval_control_lin")
	require.NoError(t, err)
	assert.Contains(t, out, "value: mem error fixed, built: 10:56:18")

	_, err = runCLI(t, nil, "log", "search", path, "--key", "leostick_version", "--mode", "all")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported result mode")
}

func TestTools(t *testing.T) {
	out, err := runCLI(t, nil, "tools")
	require.NoError(t, err)
	assert.Contains(t, out, "count: 9")
	assert.Contains(t, out, "log.search")

	out, err = runCLI(t, nil, "tools", "julian day")
	require.NoError(t, err)
	assert.Contains(t, out, "time.normalize")
	assert.False(t, strings.Contains(out, "files.glob"))
}

func TestToolsStats(t *testing.T) {
	out, err := runCLI(t, nil, "tools", "--stats")
	require.NoError(t, err)
	assert.Contains(t, out, "total_services: 3")
	assert.Contains(t, out, "total_tools: 9")
	assert.Contains(t, out, "map[filesystem:1 logs:1 time:1]")

	out, err = runCLI(t, nil, "-o", "json", "tools", "--stats")
	require.NoError(t, err)
	assert.Contains(t, out, `"total_tools": 9`)
}

func TestGlobalFlagValidation(t *testing.T) {
	_, err := runCLI(t, nil, "-o", "xml", "tools")
	assert.Error(t, err)

	_, err = runCLI(t, nil, "--backend", "locate", "tools")
	assert.Error(t, err)

	_, err = runCLI(t, nil, "--log-level", "chatty", "tools")
	assert.Error(t, err)
}

func TestRenderText(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, render(&b, "text", map[string]interface{}{
		"b":     1.5,
		"a":     []string{"x", "y"},
		"found": true,
	}))
	assert.Equal(t, "a:\n  x\n  y\nb: 1.5\nfound: true\n", b.String())
}
