package search

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
)

// All aggregates the pages returned by pager until the continuation link is
// empty, the limit is reached or a page comes back empty. The offset option is
// ignored: aggregation always starts from the first result.
func All(ctx context.Context, pager Pager, query string, funcs ...OptionFunc) ([]Result, error) {
	opts := NewOptions(funcs...)

	limit := opts.Limit
	if limit <= 0 {
		return []Result{}, nil
	}

	results, next, err := pager.Search(ctx, query, WithLimit(limit), WithOffset(0), WithFormat(opts.Format))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	results = truncate(results, limit)

	for next != "" && len(results) < limit {
		remaining := limit - len(results)

		slog.DebugContext(ctx, "fetching next page", slog.Int("offset", len(results)), slog.Int("remaining", remaining))

		var page []Result
		page, next, err = pager.Search(ctx, query, WithLimit(remaining), WithOffset(len(results)), WithFormat(opts.Format))
		if err != nil {
			return nil, errors.WithStack(err)
		}

		// A continuation link that does not yield results would loop forever
		if len(page) == 0 {
			break
		}

		results = append(results, truncate(page, remaining)...)
	}

	return results, nil
}

func truncate(results []Result, max int) []Result {
	if len(results) > max {
		return results[:max]
	}

	return results
}
