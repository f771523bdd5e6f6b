package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/scoop-searchr/scoop-searchr/internal/branding"
	"github.com/scoop-searchr/scoop-searchr/internal/platform"
	"github.com/spf13/cobra"
)

// Supported shells for the integration hook.
const (
	ShellPowerShell = platform.ShellPowerShell
	ShellBash       = platform.ShellBash
)

// hookTemplates wrap the scoop command so that `scoop search` runs this
// binary and everything else goes to scoop itself. %[1]s is the CLI name.
// The bash form targets Git Bash and MSYS on Windows, which resolve the
// binary and the scoop shim without an extension.
var hookTemplates = map[string]string{
	ShellPowerShell: `function scoop { if ($args[0] -eq "search") { %[1]s.exe @($args | Select-Object -Skip 1) } else { scoop.ps1 @args } }`,
	ShellBash:       `scoop() { if [ "$1" = "search" ]; then shift; %[1]s "$@"; else command scoop "$@"; fi; }`,
}

// Hook returns the integration text for shell ("pwsh" is accepted as
// PowerShell).
func Hook(shell string) (string, error) {
	shell = strings.ToLower(shell)
	if shell == "pwsh" {
		shell = ShellPowerShell
	}
	tmpl, ok := hookTemplates[shell]
	if !ok {
		return "", fmt.Errorf("unsupported shell %q (want %s or %s)", shell, ShellPowerShell, ShellBash)
	}
	return fmt.Sprintf(tmpl, branding.CLIName()), nil
}

func writeHook(w io.Writer, shell string) error {
	text, err := Hook(shell)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, text)
	return err
}

func newHookCmd() *cobra.Command {
	var shell string
	cmd := &cobra.Command{
		Use:   "hook",
		Short: "Print shell integration for 'scoop search'",
		Long: `Print a shell function that makes 'scoop search' call this tool.

PowerShell: add the output to $PROFILE, e.g.
  Invoke-Expression (&` + branding.CLIName() + ` hook)

bash: the hook is meant for Git Bash or MSYS on Windows, where scoop is
installed; add the output to ~/.bashrc, e.g.
  eval "$(` + branding.CLIName() + ` hook --shell bash)"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeHook(cmd.OutOrStdout(), shell)
		},
	}
	cmd.Flags().StringVar(&shell, "shell", platform.DefaultShell(), "Target shell: powershell or bash")
	return cmd
}
