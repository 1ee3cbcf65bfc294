package query

import (
	"log/slog"
	"strings"

	"github.com/bornholm/bingsearch/internal/logx"
	"github.com/bornholm/bingsearch/pkg/search"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// All returns the command aggregating results across pages. Each argument is
// a distinct query; queries are run one after the other.
func All() *cli.Command {
	return &cli.Command{
		Name:      "all",
		Usage:     "Fetch up to --limit results per query, following next page links",
		ArgsUsage: "<query> [query...]",
		Flags:     clientFlags(),
		Action: func(cliCtx *cli.Context) error {
			queries := make([]string, 0, cliCtx.NArg())
			for _, q := range cliCtx.Args().Slice() {
				if q = strings.TrimSpace(q); q != "" {
					queries = append(queries, q)
				}
			}

			if len(queries) == 0 {
				return errors.New("missing query")
			}

			client := newClient(cliCtx)

			var aggregatedErr error
			docs := make([]Document, 0, len(queries))

			for _, q := range queries {
				ctx := logx.WithAttrs(cliCtx.Context, slog.String("query", q))

				results, err := client.SearchAll(ctx, q,
					search.WithLimit(cliCtx.Int(flagLimit)),
					search.WithFormat(cliCtx.String(flagFormat)),
				)
				if err != nil {
					slog.ErrorContext(ctx, "search failed", slog.Any("error", err))
					aggregatedErr = multierror.Append(aggregatedErr, errors.Wrapf(err, "search '%s' failed", q))
					continue
				}

				slog.InfoContext(ctx, "results fetched", slog.Int("results", len(results)))

				docs = append(docs, Document{Query: q, Results: results})
			}

			if len(docs) > 0 {
				if err := writeOutput(cliCtx, queries, docs...); err != nil {
					aggregatedErr = multierror.Append(aggregatedErr, err)
				}
			}

			return aggregatedErr
		},
	}
}
