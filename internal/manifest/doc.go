// Package manifest decodes Scoop app manifests into the normalized record
// used by search. The bin field has gone through several incompatible shapes
// over the life of the manifest format (one path, a list of paths, paths
// invoked with fixed arguments); all of them decode to a BinField, and
// BinField.Executables flattens any of them into one ordered path list.
//
// The package also lints manifests against an embedded JSON Schema.
package manifest
