// Package scoop locates the Scoop installation whose buckets are searched.
package scoop
