// Package platform isolates the few OS-specific decisions the CLI makes:
// file permission handling and the default shell for the integration hook.
// Scoop itself only runs on Windows, but manifests are often linted on Unix
// machines in CI, so both sides are supported.
package platform
