package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/scoop-searchr/scoop-searchr/internal/bucket"
	"github.com/scoop-searchr/scoop-searchr/internal/search"
	"github.com/spf13/cobra"
)

// bucketEntry represents an installed bucket for display.
type bucketEntry struct {
	Name      string `json:"name"`
	Manifests int    `json:"manifests"`
	Path      string `json:"path"`
}

func newBucketsCmd(a *app) *cobra.Command {
	var bucketsJSON bool
	cmd := &cobra.Command{
		Use:   "buckets",
		Short: "List installed buckets",
		Long:  `List every bucket under the Scoop root with its manifest count and manifest directory.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			buckets, err := a.listBuckets()
			if err != nil {
				return err
			}

			entries := make([]bucketEntry, 0, len(buckets))
			for _, b := range buckets {
				files, err := bucket.ManifestFiles(b.ManifestDir, search.DefaultExtension)
				if err != nil {
					a.logger.Warn("skipping bucket", "bucket", b.Name, "err", err)
					continue
				}
				entries = append(entries, bucketEntry{Name: b.Name, Manifests: len(files), Path: b.ManifestDir})
			}

			if bucketsJSON {
				data, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}

			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No buckets installed.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "NAME\tMANIFESTS\tPATH")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%d\t%s\n", e.Name, e.Manifests, e.Path)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&bucketsJSON, "json", false, "Output in JSON format")
	return cmd
}
