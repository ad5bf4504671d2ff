package locate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/GriffinCanCode/dfnlib/internal/catalog"
	"github.com/charlievieth/fastwalk"
	"go.uber.org/zap"
)

var (
	// ErrLogFileNotFound is returned when a recursive search matches nothing.
	ErrLogFileNotFound = errors.New("could not locate log file")

	// ErrProcessExecution is returned when the find subprocess is missing or fails.
	ErrProcessExecution = errors.New("search process failed")
)

// Backend selects how the recursive search is performed.
type Backend string

const (
	BackendWalk Backend = "walk"
	BackendFind Backend = "find"
)

// ParseBackend validates a backend name.
func ParseBackend(name string) (Backend, error) {
	switch b := Backend(name); b {
	case BackendWalk, BackendFind:
		return b, nil
	default:
		return "", fmt.Errorf("unknown search backend %q (want %q or %q)", name, BackendWalk, BackendFind)
	}
}

// Finder locates log files below a base directory.
type Finder struct {
	Backend Backend
	FindBin string
	Logger  *zap.Logger
}

// NewFinder creates a finder using the given backend.
func NewFinder(backend Backend, logger *zap.Logger) *Finder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Finder{
		Backend: backend,
		FindBin: "find",
		Logger:  logger,
	}
}

// FindLogFile finds a log file with the default walk backend.
func FindLogFile(ctx context.Context, baseDir, suffix, extension, systemNumber string) (string, error) {
	return NewFinder(BackendWalk, nil).FindLogFile(ctx, baseDir, suffix, extension, systemNumber)
}

// FindLogFile searches baseDir recursively for a regular file whose name ends
// with systemNumber+suffix+"."+extension and returns the first hit. An empty
// extension means txt.
func (f *Finder) FindLogFile(ctx context.Context, baseDir, suffix, extension, systemNumber string) (string, error) {
	if extension == "" {
		extension = catalog.LogExtension
	}
	extended := systemNumber + suffix + "." + extension

	var (
		results []string
		err     error
	)
	switch f.Backend {
	case BackendFind:
		results, err = f.findProcess(ctx, baseDir, extended)
	case BackendWalk, "":
		results, err = f.walk(ctx, baseDir, extended)
	default:
		return "", fmt.Errorf("unknown search backend %q", f.Backend)
	}
	if err != nil {
		return "", err
	}

	matches := results[:0]
	for _, r := range results {
		if strings.Contains(r, extended) && isDescendant(baseDir, r) {
			matches = append(matches, r)
		}
	}

	f.logger().Debug("Log file search",
		zap.String("base_dir", baseDir),
		zap.String("pattern", "*"+extended),
		zap.String("backend", string(f.Backend)),
		zap.Int("matches", len(matches)))

	if len(matches) == 0 {
		return "", fmt.Errorf("%w: no *%s under %s", ErrLogFileNotFound, extended, baseDir)
	}
	return matches[0], nil
}

// walk collects candidate files with fastwalk. The callback runs on several
// goroutines, so results are gathered under a lock and sorted afterwards.
func (f *Finder) walk(ctx context.Context, baseDir, extended string) ([]string, error) {
	var mu sync.Mutex
	matches := []string{}
	conf := fastwalk.Config{Follow: false}

	err := fastwalk.Walk(&conf, baseDir, func(p string, d os.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil || !d.Type().IsRegular() {
			return nil
		}

		if strings.HasSuffix(d.Name(), extended) {
			mu.Lock()
			matches = append(matches, p)
			mu.Unlock()
		}
		return nil
	})
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("walk %s: %w", baseDir, err)
	}

	sort.Strings(matches)
	return matches, nil
}

// findProcess runs find(1) and returns its output lines in order.
func (f *Finder) findProcess(ctx context.Context, baseDir, extended string) ([]string, error) {
	bin := f.FindBin
	if bin == "" {
		bin = "find"
	}

	cmd := exec.CommandContext(ctx, bin, baseDir, "-type", "f", "-name", "*"+extended)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("%w: %s: %s", ErrProcessExecution, bin, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrProcessExecution, bin, err)
	}

	lines := []string{}
	for _, line := range strings.Split(string(out), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

func (f *Finder) logger() *zap.Logger {
	if f.Logger == nil {
		return zap.NewNop()
	}
	return f.Logger
}

// isDescendant reports whether p lies strictly below base.
func isDescendant(base, p string) bool {
	rel, err := filepath.Rel(base, p)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
