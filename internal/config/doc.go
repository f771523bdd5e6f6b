// Package config manages user-level settings stored at ~/.scoop-searchr/config.yaml,
// such as an override for the Scoop root and the default output format.
package config
