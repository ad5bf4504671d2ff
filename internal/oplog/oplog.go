// Package oplog extracts values from station operation logs.
//
// Log lines are comma-space delimited:
//
//	2017-06-30 16:13:29,102, INFO, interval_control_lin, leostick_version, mem error fixed, built: 10:56:18
//
// The value of a key is everything after "<module>, <key>, " on the line.
// Rotated logs compressed with gzip (.gz) or zstd (.zst) are read directly.
package oplog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

var (
	// ErrKeyNotFound is returned when no line carries the requested key and module.
	ErrKeyNotFound = errors.New("key not found")

	// ErrUnsupportedMode is returned for result modes other than first and list.
	ErrUnsupportedMode = errors.New("unsupported result mode")
)

// Mode selects how many values a search returns.
type Mode string

const (
	ModeFirst Mode = "first"
	ModeList  Mode = "list"
)

// ParseMode validates a mode name.
func ParseMode(name string) (Mode, error) {
	switch m := Mode(name); m {
	case ModeFirst, ModeList:
		return m, nil
	default:
		return "", unsupported(name)
	}
}

func unsupported(name string) error {
	return fmt.Errorf("%w: %q (only %q and %q are supported)", ErrUnsupportedMode, name, ModeFirst, ModeList)
}

// First returns the value of the first line logging key from module.
func First(path, key, module string) (string, error) {
	values, err := Search(path, key, module, ModeFirst)
	if err != nil {
		return "", err
	}
	return values[0], nil
}

// List returns the values of every line logging key from module, in file order.
func List(path, key, module string) ([]string, error) {
	return Search(path, key, module, ModeList)
}

// Search scans the log at path for lines containing both key and module. An
// empty module matches any line. In ModeFirst the scan stops at the first
// match and a single value is returned.
func Search(path, key, module string, mode Mode) ([]string, error) {
	if mode != ModeFirst && mode != ModeList {
		return nil, unsupported(string(mode))
	}

	file, err := openLog(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	separator := module + ", " + key + ", "
	values := []string{}

	// Lines have no length limit; ReadString grows as needed.
	reader := bufio.NewReader(file)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read log %s: %w", path, err)
		}

		if line == "" {
			break
		}

		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if strings.Contains(line, key) && strings.Contains(line, module) {
			values = append(values, extract(line, separator))
			if mode == ModeFirst {
				return values, nil
			}
		}

		if err != nil {
			break
		}
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("%w: could not find key %s logged by module %s in log file %s", ErrKeyNotFound, key, module, path)
	}
	return values, nil
}

// extract returns the text after separator with trailing whitespace removed.
// Candidate lines that lack the separator yield an empty value.
func extract(line, separator string) string {
	_, value, ok := strings.Cut(line, separator)
	if !ok {
		return ""
	}
	return strings.TrimRightFunc(value, unicode.IsSpace)
}
