package main

import (
	"github.com/bornholm/bingsearch/internal/command"
	"github.com/bornholm/bingsearch/internal/command/query"
)

var version = "dev"

func main() {
	command.Main(
		"bingsearch",
		version,
		"Query the Bing Search API and aggregate paginated results",
		query.Search(),
		query.All(),
		query.Schema(),
	)
}
