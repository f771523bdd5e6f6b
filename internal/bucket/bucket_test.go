package bucket

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeManifest writes a manifest file, creating parent directories.
func writeManifest(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

// setupBuckets creates a buckets root with a flat bucket ("main"), a nested
// bucket ("extras"), and a stray file.
func setupBuckets(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	writeManifest(t, filepath.Join(root, "main"), "git.json",
		`{"version":"2.43.0","bin":"bin\\git.exe","description":"Distributed version control"}`)
	writeManifest(t, filepath.Join(root, "main"), "gitui.json", `{"version":"0.24.3"}`)
	writeManifest(t, filepath.Join(root, "main"), "curl.json", `{"version":"8.5.0"}`)

	// Nested form: manifests live under extras/bucket; the top-level file must be ignored.
	writeManifest(t, filepath.Join(root, "extras", NestedDir), "lazygit.json",
		`{"version":"0.40.2","description":"Simple terminal UI for git commands"}`)
	writeManifest(t, filepath.Join(root, "extras"), "ignored-git.json", `{"version":"9"}`)

	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("not a bucket"), 0o644))
	return root
}

func quietLogger() *log.Logger { return log.New(&bytes.Buffer{}) }

func TestList(t *testing.T) {
	root := setupBuckets(t)

	buckets, err := List(root, WithLogger(quietLogger()))
	require.NoError(t, err)
	require.Len(t, buckets, 2)

	assert.Equal(t, "extras", buckets[0].Name)
	assert.Equal(t, filepath.Join(root, "extras"), buckets[0].Dir)
	assert.Equal(t, filepath.Join(root, "extras", NestedDir), buckets[0].ManifestDir)

	assert.Equal(t, "main", buckets[1].Name)
	assert.Equal(t, filepath.Join(root, "main"), buckets[1].ManifestDir)
}

func TestList_FollowsSymlinks(t *testing.T) {
	root := setupBuckets(t)
	target := t.TempDir()
	writeManifest(t, target, "jq.json", `{"version":"1.7.1"}`)
	if err := os.Symlink(target, filepath.Join(root, "linked")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	buckets, err := List(root, WithLogger(quietLogger()))
	require.NoError(t, err)

	var names []string
	for _, b := range buckets {
		names = append(names, b.Name)
	}
	assert.Equal(t, []string{"extras", "linked", "main"}, names)
}

func TestList_MissingRoot(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "buckets"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing buckets directory")
}

func TestSearch(t *testing.T) {
	root := setupBuckets(t)
	buckets, err := List(root, WithLogger(quietLogger()))
	require.NoError(t, err)

	results, err := Search(context.Background(), buckets, "git", WithLogger(quietLogger()))
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, Found(results))

	extras := results[0]
	assert.Equal(t, "extras", extras.Bucket.Name)
	require.Len(t, extras.Matches, 1)
	assert.Equal(t, "lazygit", extras.Matches[0].Name)

	mainBucket := results[1]
	assert.Equal(t, "main", mainBucket.Bucket.Name)
	require.Len(t, mainBucket.Matches, 2)
	assert.Equal(t, "git", mainBucket.Matches[0].Name)
	assert.Equal(t, "gitui", mainBucket.Matches[1].Name)
}

func TestSearch_OmitsEmptyBuckets(t *testing.T) {
	root := setupBuckets(t)
	buckets, err := List(root, WithLogger(quietLogger()))
	require.NoError(t, err)

	results, err := Search(context.Background(), buckets, "curl", WithLogger(quietLogger()))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "main", results[0].Bucket.Name)

	results, err = Search(context.Background(), buckets, "zzz", WithLogger(quietLogger()))
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.False(t, Found(results))
}

func TestSearch_SkipsUnlistableBucket(t *testing.T) {
	root := setupBuckets(t)
	buckets, err := List(root, WithLogger(quietLogger()))
	require.NoError(t, err)

	gone := Bucket{Name: "gone", Dir: filepath.Join(root, "gone"), ManifestDir: filepath.Join(root, "gone")}
	buckets = append([]Bucket{gone}, buckets...)

	var logs bytes.Buffer
	results, err := Search(context.Background(), buckets, "git", WithLogger(log.New(&logs)))
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Contains(t, logs.String(), "skipping bucket")
	assert.Contains(t, logs.String(), "gone")
}

func TestSearch_ConcurrencyKeepsOrder(t *testing.T) {
	root := t.TempDir()
	var buckets []Bucket
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		dir := filepath.Join(root, name)
		writeManifest(t, dir, "pkg-"+name+".json", `{"version":"1"}`)
		buckets = append(buckets, New(name, dir))
	}

	for _, n := range []int{1, 3, 16} {
		results, err := Search(context.Background(), buckets, "pkg", WithConcurrency(n), WithLogger(quietLogger()))
		require.NoError(t, err)
		require.Len(t, results, len(buckets))
		for i, r := range results {
			assert.Equal(t, buckets[i].Name, r.Bucket.Name, "concurrency %d", n)
		}
	}
}

func TestSearch_CancelledContext(t *testing.T) {
	root := setupBuckets(t)
	buckets, err := List(root, WithLogger(quietLogger()))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Search(ctx, buckets, "git", WithLogger(quietLogger()))
	require.ErrorIs(t, err, context.Canceled)
}

func TestNew_PrefersNestedDirectory(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, dir, New("flat", dir).ManifestDir)

	// A file named "bucket" is not the nested form.
	require.NoError(t, os.WriteFile(filepath.Join(dir, NestedDir), nil, 0o644))
	assert.Equal(t, dir, New("flat", dir).ManifestDir)
}

func TestManifestFiles(t *testing.T) {
	root := setupBuckets(t)

	files, err := ManifestFiles(filepath.Join(root, "main"), ".json")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "main", "curl.json"),
		filepath.Join(root, "main", "git.json"),
		filepath.Join(root, "main", "gitui.json"),
	}, files)

	_, err = ManifestFiles(filepath.Join(root, "missing"), ".json")
	assert.Error(t, err)
}
