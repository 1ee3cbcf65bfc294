package query

import (
	"log/slog"
	"strings"

	"github.com/bornholm/bingsearch/internal/logx"
	"github.com/bornholm/bingsearch/pkg/search"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// Search returns the command fetching a single page of results.
func Search() *cli.Command {
	flags := append(clientFlags(),
		&cli.IntFlag{
			Name:    flagOffset,
			Value:   search.DefaultOffset,
			EnvVars: []string{"BINGSEARCH_OFFSET"},
			Usage:   "Index of the first result",
		},
	)

	return &cli.Command{
		Name:      "search",
		Usage:     "Fetch a single page of results",
		ArgsUsage: "<query>",
		Flags:     flags,
		Action: func(cliCtx *cli.Context) error {
			query := strings.TrimSpace(strings.Join(cliCtx.Args().Slice(), " "))
			if query == "" {
				return errors.New("missing query")
			}

			ctx := logx.WithAttrs(cliCtx.Context, slog.String("query", query))

			client := newClient(cliCtx)

			results, next, err := client.Search(ctx, query,
				search.WithLimit(cliCtx.Int(flagLimit)),
				search.WithOffset(cliCtx.Int(flagOffset)),
				search.WithFormat(cliCtx.String(flagFormat)),
			)
			if err != nil {
				return errors.Wrapf(err, "search failed")
			}

			slog.DebugContext(ctx, "page fetched", slog.Int("results", len(results)), slog.String("next", next))

			return writeOutput(cliCtx, []string{query}, Document{
				Query:   query,
				Results: results,
				Next:    next,
			})
		},
	}
}
