// Package search finds the manifests in one bucket directory that match a
// query. A manifest matches by its name, by the stem of one of its bundled
// executables, or by its description, tried in that order; comparison is a
// case-insensitive substring test.
package search
