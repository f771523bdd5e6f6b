package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/scoop-searchr/scoop-searchr/internal/bucket"
	"github.com/scoop-searchr/scoop-searchr/internal/manifest"
	"github.com/scoop-searchr/scoop-searchr/internal/search"
	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	var checkSemver bool
	cmd := &cobra.Command{
		Use:   "validate [path...]",
		Short: "Check manifests against the manifest schema",
		Long: `Validate manifest files against the schema of the fields this tool reads
(version, description and every accepted shape of bin).

Paths may be manifest files or directories of manifests. Without paths,
every manifest of every installed bucket is checked. Exits with status 1
when any manifest has errors.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := a.manifestFiles(args)
			if err != nil {
				return err
			}
			return validateFiles(cmd.OutOrStdout(), files, checkSemver)
		},
	}
	cmd.Flags().BoolVar(&checkSemver, "semver", false, "Warn about versions that are not semantic versions")
	return cmd
}

// manifestFiles expands paths (or, when empty, every bucket) into manifest files.
func (a *app) manifestFiles(paths []string) ([]string, error) {
	if len(paths) == 0 {
		buckets, err := a.listBuckets()
		if err != nil {
			return nil, err
		}
		for _, b := range buckets {
			paths = append(paths, b.ManifestDir)
		}
	}

	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		found, err := bucket.ManifestFiles(p, search.DefaultExtension)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return files, nil
}

func validateFiles(w io.Writer, files []string, checkSemver bool) error {
	r := lipgloss.NewRenderer(w)
	styles := map[manifest.Severity]lipgloss.Style{
		manifest.SeverityError:   r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		manifest.SeverityWarning: r.NewStyle().Foreground(lipgloss.Color("11")),
	}

	var errCount, warnCount int
	report := func(path string, issue manifest.ValidationIssue) {
		if issue.Severity == manifest.SeverityWarning {
			warnCount++
		} else {
			errCount++
		}
		loc := issue.Path
		if loc == "" {
			loc = "/"
		}
		fmt.Fprintf(w, "%s: %s %s: %s\n", path, styles[issue.Severity].Render(string(issue.Severity)), loc, issue.Message)
	}

	for _, path := range files {
		result, err := manifest.ValidateFile(path)
		if err != nil {
			report(path, manifest.ValidationIssue{Message: err.Error(), Severity: manifest.SeverityError})
			continue
		}
		for _, issue := range result.Issues {
			report(path, issue)
		}

		if checkSemver && result.Valid {
			if m, err := manifest.ParseFile(path); err == nil {
				if issue := manifest.CheckVersion(m.Version); issue != nil {
					report(path, *issue)
				}
			}
		}
	}

	fmt.Fprintf(w, "Checked %d %s: %d %s, %d %s\n",
		len(files), plural(len(files), "manifest"),
		errCount, plural(errCount, "error"),
		warnCount, plural(warnCount, "warning"))

	if errCount > 0 {
		return ErrInvalidManifests
	}
	return nil
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
