package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

var (
	// ErrMissingVersion is returned when a manifest has no version, or a null one.
	ErrMissingVersion = errors.New(`missing required field "version"`)
	// ErrInvalidEncoding is returned when manifest bytes are not valid UTF-8.
	ErrInvalidEncoding = errors.New("manifest is not valid UTF-8")
)

// DecodeError reports a manifest whose content could not be decoded.
// Path is empty when the bytes did not come from a file.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("decoding manifest: %v", e.Err)
	}
	return fmt.Sprintf("decoding manifest %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// rawManifest mirrors the JSON layout. Pointers distinguish a missing field
// from an empty one.
type rawManifest struct {
	Version     *string   `json:"version"`
	Bin         *BinField `json:"bin"`
	Description *string   `json:"description"`
}

// Decode parses manifest bytes. Any failure is a *DecodeError.
func Decode(data []byte) (*Manifest, error) {
	if !utf8.Valid(data) {
		return nil, &DecodeError{Err: ErrInvalidEncoding}
	}

	var raw rawManifest
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &DecodeError{Err: err}
	}
	if raw.Version == nil {
		return nil, &DecodeError{Err: ErrMissingVersion}
	}

	return &Manifest{
		Version:     *raw.Version,
		Bin:         raw.Bin,
		Description: raw.Description,
	}, nil
}

// ParseFile reads and decodes the manifest at path. Read failures are
// returned wrapped; decode failures are a *DecodeError carrying path.
func ParseFile(path string) (*Manifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	m, err := Decode(data)
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			de.Path = path
		}
		return nil, err
	}
	return m, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
