package bucket

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/scoop-searchr/scoop-searchr/internal/search"
)

// NestedDir is the subdirectory that newer buckets keep their manifests in.
const NestedDir = "bucket"

// Bucket is a named directory of manifests.
type Bucket struct {
	Name        string // directory name under the buckets root, e.g. "main"
	Dir         string // absolute path to the bucket directory
	ManifestDir string // Dir/bucket when that exists, otherwise Dir
}

type options struct {
	logger      *log.Logger
	concurrency int
	extension   string
}

// Option configures List and Search.
type Option func(*options)

// WithLogger sets the logger for skipped buckets and per-file diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithConcurrency bounds the number of buckets scanned at once. Values below
// one are ignored.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithExtension overrides the manifest file extension passed to the scanner.
func WithExtension(ext string) Option {
	return func(o *options) { o.extension = ext }
}

func newOptions(opts []Option) *options {
	o := &options{
		logger:      log.Default(),
		concurrency: runtime.NumCPU(),
		extension:   search.DefaultExtension,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// New returns the bucket rooted at dir, preferring the nested manifest
// directory when present.
func New(name, dir string) Bucket {
	b := Bucket{Name: name, Dir: dir, ManifestDir: dir}
	nested := filepath.Join(dir, NestedDir)
	if info, err := os.Stat(nested); err == nil && info.IsDir() {
		b.ManifestDir = nested
	}
	return b
}

// List returns the buckets under bucketsDir sorted by name. Failure to list
// bucketsDir is an error; entries that are not directories (after following
// symlinks) are skipped.
func List(bucketsDir string, opts ...Option) ([]Bucket, error) {
	o := newOptions(opts)

	entries, err := os.ReadDir(bucketsDir)
	if err != nil {
		if len(entries) == 0 {
			return nil, fmt.Errorf("listing buckets directory %s: %w", bucketsDir, err)
		}
		o.logger.Warn("error listing bucket directory", "dir", bucketsDir, "err", err)
	}

	var buckets []Bucket
	for _, entry := range entries {
		dir := filepath.Join(bucketsDir, entry.Name())
		info, err := os.Stat(dir)
		if err != nil {
			o.logger.Warn("skipping bucket", "dir", dir, "err", err)
			continue
		}
		if !info.IsDir() {
			o.logger.Debug("skipping non-directory entry", "path", dir)
			continue
		}
		buckets = append(buckets, New(entry.Name(), dir))
	}
	return buckets, nil
}

// ManifestFiles returns the paths of the files in dir (non-recursive) whose
// extension is exactly ext, sorted by name.
func ManifestFiles(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing manifests in %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ext || e.Name() == ext {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}
