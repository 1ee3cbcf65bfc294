package bing

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bornholm/bingsearch/pkg/search"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// Client queries the Bing Search API of the Azure DataMarket.
type Client struct {
	apiKey string
	opts   *Options
	sleep  func(time.Duration)
}

// Search implements search.Pager.
func (c *Client) Search(ctx context.Context, query string, funcs ...search.OptionFunc) ([]search.Result, string, error) {
	opts := search.NewOptions(funcs...)
	if err := opts.Validate(); err != nil {
		return nil, "", errors.WithStack(err)
	}

	results, next, err := c.fetchPage(ctx, query, opts)
	if err != nil {
		return nil, "", errors.WithStack(err)
	}

	return results, next, nil
}

// SearchAll implements search.Client.
func (c *Client) SearchAll(ctx context.Context, query string, funcs ...search.OptionFunc) ([]search.Result, error) {
	results, err := search.All(ctx, c, query, funcs...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return results, nil
}

func (c *Client) fetchPage(ctx context.Context, query string, opts *search.Options) ([]search.Result, string, error) {
	queryURL := c.buildURL(query, opts)

	slog.DebugContext(ctx, "executing search", slog.String("url", queryURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, queryURL, nil)
	if err != nil {
		return nil, "", errors.WithStack(err)
	}

	req.SetBasicAuth("", c.apiKey)

	res, err := c.opts.HTTPClient.Do(req)
	if err != nil {
		return nil, "", errors.WithStack(err)
	}

	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, "", errors.WithStack(err)
	}

	return c.parsePage(ctx, res.StatusCode, body)
}

// buildURL embeds the single quoted query and the paging parameters in the
// service URL. The format is passed through as is.
func (c *Client) buildURL(query string, opts *search.Options) string {
	quoted := url.QueryEscape("'" + query + "'")
	quoted = strings.ReplaceAll(quoted, "+", "%20")

	return fmt.Sprintf("%s?Query=%s&$top=%d&$skip=%d&$format=%s", c.opts.BaseURL, quoted, opts.Limit, opts.Offset, opts.Format)
}

func (c *Client) parsePage(ctx context.Context, statusCode int, body []byte) ([]search.Result, string, error) {
	if !gjson.ValidBytes(body) {
		decodeErr := search.NewDecodeError(statusCode, string(body))

		if !c.opts.SafeMode {
			return nil, "", errors.WithStack(decodeErr)
		}

		slog.ErrorContext(ctx, "could not decode response, continuing after delay", slog.Int("status", statusCode), slog.String("body", string(body)), slog.Duration("delay", c.opts.DecodeDelay))
		c.sleep(c.opts.DecodeDelay)

		// Nothing can be extracted from an undecodable body
		return nil, "", errors.WithStack(decodeErr)
	}

	envelope := gjson.ParseBytes(body)

	next, err := c.extractNext(ctx, envelope)
	if err != nil {
		return nil, "", errors.WithStack(err)
	}

	results, err := parseResults(envelope)
	if err != nil {
		return nil, "", errors.WithStack(err)
	}

	return results, next, nil
}

func parseResults(envelope gjson.Result) ([]search.Result, error) {
	value := envelope.Get("d.results")
	if !value.IsArray() {
		key := missingKey(envelope, "d", "results")
		if key == "" {
			// Present but not an array
			key = "results"
		}

		return nil, errors.WithStack(search.NewMissingFieldError("results", key))
	}

	records := value.Array()

	results := make([]search.Result, 0, len(records))
	for i, record := range records {
		result, err := parseResult(record)
		if err != nil {
			return nil, errors.Wrapf(err, "could not parse result #%d", i)
		}

		results = append(results, result)
	}

	return results, nil
}

func (c *Client) extractNext(ctx context.Context, envelope gjson.Result) (string, error) {
	next := envelope.Get("d.__next")
	if next.Exists() {
		return next.String(), nil
	}

	missingErr := search.NewMissingFieldError("next link", missingKey(envelope, "d", "__next"))

	if !c.opts.SafeMode {
		return "", errors.WithStack(missingErr)
	}

	slog.WarnContext(ctx, "could not extract next link, stopping pagination", slog.Any("error", missingErr), slog.Duration("delay", c.opts.MissingFieldDelay))
	c.sleep(c.opts.MissingFieldDelay)

	return "", nil
}

// missingKey returns the first key of the given path that is absent from value.
func missingKey(value gjson.Result, keys ...string) string {
	for _, k := range keys {
		value = value.Get(k)
		if !value.Exists() {
			return k
		}
	}

	return ""
}

func NewClient(apiKey string, funcs ...OptionFunc) *Client {
	return &Client{
		apiKey: apiKey,
		opts:   NewOptions(funcs...),
		sleep:  time.Sleep,
	}
}

var _ search.Client = &Client{}
