// Package bucket enumerates the Scoop buckets under an installation root and
// runs a search across all of them. Buckets either hold manifests directly or
// in a nested "bucket" directory; the nested form wins when both exist.
package bucket
