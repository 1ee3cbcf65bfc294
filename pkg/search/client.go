package search

import "context"

// Client searches a paginated web search API.
type Client interface {
	Pager
	// SearchAll follows continuation links until the configured limit is reached
	// or the server has no more results.
	SearchAll(ctx context.Context, query string, funcs ...OptionFunc) ([]Result, error)
}

// Pager fetches a single page of results along with the continuation link
// of the next page. An empty link means there are no further pages.
type Pager interface {
	Search(ctx context.Context, query string, funcs ...OptionFunc) ([]Result, string, error)
}

type Result struct {
	URL         string   `json:"url" yaml:"url" jsonschema:"description=URL of the result"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	ID          string   `json:"id" yaml:"id" jsonschema:"description=Provider identifier of the page"`
	Metadata    Metadata `json:"metadata" yaml:"metadata"`
}

type Metadata struct {
	// Type is the category of the result, for the most part "WebResult".
	Type string `json:"type" yaml:"type"`
	// URI is the canonical resource identifier of the result on the provider.
	URI string `json:"uri" yaml:"uri"`
}
