package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var errBinShape = errors.New("expected a path, or a list of paths and commands")

// UnmarshalJSON accepts every historical shape of the bin field:
// "a.exe", ["a.exe", "b.exe"] and ["a.exe", ["b.exe", "--arg"]].
func (b *BinField) UnmarshalJSON(data []byte) error {
	var path string
	if err := json.Unmarshal(data, &path); err == nil && !isNull(data) {
		*b = *SinglePath(path)
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil || isNull(data) {
		return fmt.Errorf("bin: %w", errBinShape)
	}

	entries := make([]BinEntry, 0, len(items))
	for i, item := range items {
		var e BinEntry
		if err := e.UnmarshalJSON(item); err != nil {
			return fmt.Errorf("bin[%d]: %w", i, err)
		}
		entries = append(entries, e)
	}
	*b = *List(entries...)
	return nil
}

// UnmarshalJSON accepts a bare path string or a command array of strings.
func (e *BinEntry) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return errors.New("expected a path or a command, got null")
	}

	var path string
	if err := json.Unmarshal(data, &path); err == nil {
		*e = PathEntry(path)
		return nil
	}

	var args []*string
	if err := json.Unmarshal(data, &args); err != nil {
		return errors.New("expected a path or a command")
	}
	command := make([]string, 0, len(args))
	for i, a := range args {
		if a == nil {
			return fmt.Errorf("command element %d is null", i)
		}
		command = append(command, *a)
	}
	*e = CommandEntry(command...)
	return nil
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

// Stem returns the file name of a bin path without its final extension.
// Both '/' and '\' separate path components since manifests are written for
// Windows. A leading dot belongs to the stem (".bashrc" stays ".bashrc").
// Paths without a file name ("", ".", "..", "dir/..") have no stem.
func Stem(path string) (string, bool) {
	path = strings.TrimRight(path, `/\`)
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		path = path[i+1:]
	}
	if path == "" || path == "." || path == ".." {
		return "", false
	}

	i := strings.LastIndexByte(path, '.')
	if i <= 0 {
		return path, true
	}
	return path[:i], true
}
