package platform

import (
	"os"
	"runtime"
)

// Shell names understood by the hook command.
const (
	ShellPowerShell = "powershell"
	ShellBash       = "bash"
)

// IsWindows reports whether the binary was built for Windows.
func IsWindows() bool { return runtime.GOOS == "windows" }

// DefaultShell returns the shell the hook targets when none is given:
// PowerShell on Windows, bash elsewhere.
func DefaultShell() string {
	if IsWindows() {
		return ShellPowerShell
	}
	return ShellBash
}

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if IsWindows() {
		return nil
	}
	return os.Chmod(path, mode)
}
