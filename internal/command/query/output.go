package query

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bornholm/bingsearch/pkg/search"
	"github.com/gosimple/slug"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.yaml.in/yaml/v3"
)

type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputYAML OutputFormat = "yaml"
	OutputJSON OutputFormat = "json"
)

// Document is what the commands emit for each query.
type Document struct {
	Query   string          `json:"query" yaml:"query" jsonschema:"description=The searched text"`
	Results []search.Result `json:"results" yaml:"results"`
	Next    string          `json:"next,omitempty" yaml:"next,omitempty" jsonschema:"description=Continuation link of the next page"`
}

func (f OutputFormat) extension() string {
	switch f {
	case OutputYAML:
		return ".yaml"
	case OutputJSON:
		return ".json"
	default:
		return ".md"
	}
}

func parseOutputFormat(raw string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(raw))); f {
	case OutputText, OutputYAML, OutputJSON:
		return f, nil
	default:
		return "", errors.Errorf("unknown output format '%s'", raw)
	}
}

func render(w io.Writer, format OutputFormat, docs ...Document) error {
	switch format {
	case OutputYAML:
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()

		for _, d := range docs {
			if err := encoder.Encode(d); err != nil {
				return errors.WithStack(err)
			}
		}

	case OutputJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		for _, d := range docs {
			if err := encoder.Encode(d); err != nil {
				return errors.WithStack(err)
			}
		}

	default:
		var sb strings.Builder

		for _, d := range docs {
			sb.WriteString(fmt.Sprintf("# Search results for \"%s\"\n\n", d.Query))

			for i, r := range d.Results {
				sb.WriteString(fmt.Sprintf("## %d. %s\n\n", i+1, r.Title))
				sb.WriteString(fmt.Sprintf("**URL**: %s\n", r.URL))
				sb.WriteString(fmt.Sprintf("**ID**: %s (%s)\n", r.ID, r.Metadata.Type))
				sb.WriteString(fmt.Sprintf("**Description**:\n%s\n\n", r.Description))
			}

			if d.Next != "" {
				sb.WriteString(fmt.Sprintf("**Next page**: %s\n\n", d.Next))
			}
		}

		if _, err := io.WriteString(w, sb.String()); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}

// outputFilename returns the file the documents should be written to, or an
// empty string for stdout.
func outputFilename(output string, save bool, format OutputFormat, queries ...string) string {
	if output != "" || !save {
		return output
	}

	return slug.Make(strings.Join(queries, " ")) + format.extension()
}

func writeOutput(ctx *cli.Context, queries []string, docs ...Document) error {
	format, err := parseOutputFormat(ctx.String(flagOutputFormat))
	if err != nil {
		return errors.WithStack(err)
	}

	var buff bytes.Buffer

	if err := render(&buff, format, docs...); err != nil {
		return errors.Wrapf(err, "failed to render results")
	}

	filename := outputFilename(ctx.String(flagOutput), ctx.Bool(flagSave), format, queries...)
	if filename == "" {
		if _, err := io.Copy(ctx.App.Writer, &buff); err != nil {
			return errors.WithStack(err)
		}

		return nil
	}

	if err := os.WriteFile(filename, buff.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "failed to write results")
	}

	slog.InfoContext(ctx.Context, "results written", slog.String("output", filename))

	return nil
}
