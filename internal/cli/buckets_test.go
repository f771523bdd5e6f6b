package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuckets(t *testing.T) {
	root := setupScoop(t)

	out, _, err := run(t, "buckets")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, filepath.Join(root, "buckets", "extras", "bucket"))
	assert.Contains(t, out, filepath.Join(root, "buckets", "main"))
}

func TestBuckets_JSON(t *testing.T) {
	root := setupScoop(t)

	out, _, err := run(t, "buckets", "--json")
	require.NoError(t, err)

	var entries []bucketEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Equal(t, []bucketEntry{
		{Name: "extras", Manifests: 1, Path: filepath.Join(root, "buckets", "extras", "bucket")},
		{Name: "main", Manifests: 2, Path: filepath.Join(root, "buckets", "main")},
	}, entries)
}
