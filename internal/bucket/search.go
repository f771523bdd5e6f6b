package bucket

import (
	"context"

	"github.com/scoop-searchr/scoop-searchr/internal/search"
	"golang.org/x/sync/errgroup"
)

// Result holds the matches found in one bucket.
type Result struct {
	Bucket  Bucket
	Matches []search.Match
}

// Search scans every bucket for query and returns one Result per bucket that
// had at least one match, in the order of buckets.
//
// A bucket whose manifest directory cannot be listed is logged and skipped.
// The only error is ctx being done before every bucket was scanned.
func Search(ctx context.Context, buckets []Bucket, query string, opts ...Option) ([]Result, error) {
	o := newOptions(opts)
	scanner := search.New(search.WithLogger(o.logger), search.WithExtension(o.extension))

	// Each worker owns one slot, so the merge below needs no locking.
	perBucket := make([][]search.Match, len(buckets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, b := range buckets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			matches, err := scanner.Scan(b.ManifestDir, query)
			if err != nil {
				o.logger.Warn("skipping bucket", "bucket", b.Name, "err", err)
				return nil
			}
			perBucket[i] = matches
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var results []Result
	for i, matches := range perBucket {
		if len(matches) == 0 {
			continue
		}
		results = append(results, Result{Bucket: buckets[i], Matches: matches})
	}
	return results, nil
}

// Found reports whether any bucket matched.
func Found(results []Result) bool {
	for _, r := range results {
		if len(r.Matches) > 0 {
			return true
		}
	}
	return false
}
