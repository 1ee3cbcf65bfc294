package query

import (
	"github.com/bornholm/bingsearch/pkg/search"
	"github.com/bornholm/bingsearch/pkg/search/bing"
	"github.com/urfave/cli/v2"
)

const (
	flagAPIKey       = "api-key"
	flagSafe         = "safe"
	flagLimit        = "limit"
	flagOffset       = "offset"
	flagFormat       = "format"
	flagOutputFormat = "output-format"
	flagOutput       = "output"
	flagSave         = "save"
	flagBaseURL      = "base-url"
)

func clientFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     flagAPIKey,
			Required: true,
			Aliases:  []string{"k"},
			EnvVars:  []string{"BINGSEARCH_API_KEY"},
			Usage:    "The API key used as basic auth password",
		},
		&cli.BoolFlag{
			Name:    flagSafe,
			EnvVars: []string{"BINGSEARCH_SAFE"},
			Usage:   "Log and pause instead of failing on malformed responses",
		},
		&cli.StringFlag{
			Name:    flagBaseURL,
			Value:   bing.DefaultBaseURL,
			EnvVars: []string{"BINGSEARCH_BASE_URL"},
			Usage:   "The search service URL",
		},
		&cli.IntFlag{
			Name:    flagLimit,
			Value:   search.DefaultLimit,
			Aliases: []string{"l"},
			EnvVars: []string{"BINGSEARCH_LIMIT"},
			Usage:   "Maximum number of results",
		},
		&cli.StringFlag{
			Name:    flagFormat,
			Value:   search.DefaultFormat,
			EnvVars: []string{"BINGSEARCH_FORMAT"},
			Usage:   "Response format requested from the service",
		},
		&cli.StringFlag{
			Name:    flagOutputFormat,
			Value:   string(OutputText),
			Aliases: []string{"f"},
			EnvVars: []string{"BINGSEARCH_OUTPUT_FORMAT"},
			Usage:   "Output format (text, yaml or json)",
		},
		&cli.StringFlag{
			Name:      flagOutput,
			Value:     "",
			Aliases:   []string{"o"},
			EnvVars:   []string{"BINGSEARCH_OUTPUT"},
			TakesFile: true,
			Usage:     "Write the results to this file instead of stdout",
		},
		&cli.BoolFlag{
			Name:    flagSave,
			EnvVars: []string{"BINGSEARCH_SAVE"},
			Usage:   "Write the results to a file named after the query",
		},
	}
}

func newClient(ctx *cli.Context) *bing.Client {
	return bing.NewClient(
		ctx.String(flagAPIKey),
		bing.WithSafeMode(ctx.Bool(flagSafe)),
		bing.WithBaseURL(ctx.String(flagBaseURL)),
	)
}
