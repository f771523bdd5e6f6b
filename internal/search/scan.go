package search

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/scoop-searchr/scoop-searchr/internal/manifest"
)

// DefaultExtension is the file extension of Scoop manifests.
const DefaultExtension = ".json"

// Scanner scans one directory of manifests. The zero value is not usable;
// construct one with New.
type Scanner struct {
	logger *log.Logger
	ext    string
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithLogger sets the logger that receives per-file diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(s *Scanner) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithExtension overrides the manifest file extension (including the dot).
// Matching against it is exact and case-sensitive.
func WithExtension(ext string) Option {
	return func(s *Scanner) { s.ext = ext }
}

// New returns a Scanner logging to log.Default().
func New(opts ...Option) *Scanner {
	s := &Scanner{
		logger: log.Default(),
		ext:    DefaultExtension,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan returns the manifests in dir matching query, sorted by Compare, using
// a default Scanner.
func Scan(dir, query string) ([]Match, error) {
	return New().Scan(dir, query)
}

// Scan lists dir non-recursively and returns every manifest matching query
// (case-insensitive substring), sorted by Compare.
//
// Only a directory that cannot be listed at all is an error. A manifest that
// cannot be read or decoded is logged and skipped so it never hides its
// siblings; the same goes for a listing that fails part way through.
func (s *Scanner) Scan(dir, query string) ([]Match, error) {
	query = strings.ToLower(query)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if len(entries) == 0 {
			return nil, fmt.Errorf("listing manifests in %s: %w", dir, err)
		}
		s.logger.Warn("error walking directory", "dir", dir, "err", err)
	}

	var matches []Match
	for _, entry := range entries {
		name, ok := s.manifestName(entry.Name())
		if !ok {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		m, err := manifest.ParseFile(path)
		if err != nil {
			var de *manifest.DecodeError
			if errors.As(err, &de) {
				s.logger.Warn("failed to parse manifest", "path", path, "err", de.Err)
			} else {
				s.logger.Warn("failed to read manifest", "path", path, "err", err)
			}
			continue
		}

		if match, ok := MatchManifest(name, query, m); ok {
			matches = append(matches, match)
		}
	}

	Sort(matches)
	return matches, nil
}

// manifestName returns the package name for a manifest file name, or false
// when the file is not a manifest. ".json" alone has no name and is skipped.
func (s *Scanner) manifestName(fileName string) (string, bool) {
	if filepath.Ext(fileName) != s.ext {
		return "", false
	}
	name := strings.TrimSuffix(fileName, s.ext)
	if name == "" {
		return "", false
	}
	return name, true
}
