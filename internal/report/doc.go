// Package report renders search results grouped by bucket as plain text,
// JSON or YAML.
package report
