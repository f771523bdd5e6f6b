// Package cli defines the Cobra command tree for scoop-searchr. The root
// command searches; subcommands list buckets, print the shell hook, validate
// manifests, manage settings and report the version. Commands delegate to internal
// packages for business logic and only handle flags, I/O formatting and exit
// status.
package cli
