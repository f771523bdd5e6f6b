package cli

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/scoop-searchr/scoop-searchr/internal/branding"
	"github.com/scoop-searchr/scoop-searchr/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// ErrNoMatch is returned when a search found nothing in any bucket.
	ErrNoMatch = errors.New("no match found")
	// ErrInvalidManifests is returned when validate reported errors.
	ErrInvalidManifests = errors.New("invalid manifests found")
)

// Exit codes.
const (
	ExitOK       = 0
	ExitNoResult = 1
	ExitError    = 2
)

// buildInfo is injected via ldflags through Execute.
type buildInfo struct {
	version string
	commit  string
	date    string
}

// app holds the state shared by the command tree.
type app struct {
	build  buildInfo
	logger *log.Logger

	hook    bool
	verbose bool
	quiet   bool
}

// NewRootCmd builds the command tree. The root command itself searches, so
// `scoop-searchr git` and `scoop-searchr search git` are equivalent.
func NewRootCmd(version, commit, date string) *cobra.Command {
	a := &app{build: buildInfo{version: version, commit: commit, date: date}}

	rootCmd := &cobra.Command{
		Use:   branding.CLIName() + " [query]",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` searches the manifests of every locally installed Scoop bucket
for a package name, a bundled executable name, or description text
(case-insensitive substring match).

Use the search subcommand to look for a term that collides with a
subcommand name, e.g. '` + branding.CLIName() + ` search version'.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.Load()
			a.logger = newLogger(cmd.ErrOrStderr(), a.verbose, a.quiet)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.hook {
				return writeHook(cmd.OutOrStdout(), ShellPowerShell)
			}
			return a.runSearch(cmd, queryArg(args))
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.String("root", "", "Scoop installation root (default: $SCOOP, scoop config root_path, or ~/scoop; env "+branding.EnvVar(config.KeyRoot)+")")
	flags.StringP("format", "f", "text", "Output format: text, json or yaml (env "+branding.EnvVar(config.KeyFormat)+")")
	flags.Int("concurrency", 0, "Buckets scanned at once, 0 = one per CPU (env "+branding.EnvVar(config.KeyConcurrency)+")")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Log debug diagnostics")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "Only log errors")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	rootCmd.Flags().BoolVar(&a.hook, "hook", false, "Print the PowerShell hook that routes 'scoop search' here")

	for key, flag := range map[string]string{
		config.KeyRoot:        "root",
		config.KeyFormat:      "format",
		config.KeyConcurrency: "concurrency",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}

	rootCmd.AddCommand(
		newSearchCmd(a),
		newBucketsCmd(a),
		newHookCmd(),
		newValidateCmd(a),
		newConfigCmd(),
		newVersionCmd(a),
	)
	return rootCmd
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	err := NewRootCmd(version, commit, date).Execute()
	if err != nil && ExitCode(err) == ExitError {
		newLogger(os.Stderr, false, false).Error(err)
	}
	return err
}

// ExitCode maps an Execute error to the process exit code: 0 on success,
// 1 when nothing matched (or validation found errors), 2 for failures.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrNoMatch), errors.Is(err, ErrInvalidManifests):
		return ExitNoResult
	default:
		return ExitError
	}
}

func queryArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
