package cli

import (
	"fmt"

	"github.com/scoop-searchr/scoop-searchr/internal/bucket"
	"github.com/scoop-searchr/scoop-searchr/internal/config"
	"github.com/scoop-searchr/scoop-searchr/internal/report"
	"github.com/scoop-searchr/scoop-searchr/internal/scoop"
	"github.com/spf13/cobra"
)

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Search all buckets for a package",
		Long: `Search every bucket for manifests whose name, bundled executable or
description contains the query (case-insensitive). An empty query lists
every manifest.

Each manifest is reported once, for the first rule that matches: name,
then executable, then description.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSearch(cmd, queryArg(args))
		},
	}
}

func (a *app) runSearch(cmd *cobra.Command, query string) error {
	format, err := report.ParseFormat(config.Format())
	if err != nil {
		return err
	}

	buckets, err := a.listBuckets()
	if err != nil {
		return err
	}
	a.logger.Debug("searching", "query", query, "buckets", len(buckets))

	results, err := bucket.Search(cmd.Context(), buckets, query,
		bucket.WithLogger(a.logger),
		bucket.WithConcurrency(config.Concurrency()),
	)
	if err != nil {
		return fmt.Errorf("searching buckets: %w", err)
	}

	if err := report.Write(cmd.OutOrStdout(), format, results); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	if !bucket.Found(results) {
		return ErrNoMatch
	}
	return nil
}

// listBuckets locates the Scoop root and lists its buckets.
func (a *app) listBuckets() ([]bucket.Bucket, error) {
	root, err := scoop.Resolve(config.Root())
	if err != nil {
		return nil, err
	}
	a.logger.Debug("using scoop root", "path", root)

	return bucket.List(scoop.BucketsPath(root), bucket.WithLogger(a.logger))
}
