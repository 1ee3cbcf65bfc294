package query

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// Schema returns the command printing the JSON schema of the documents
// emitted with --output-format json.
func Schema() *cli.Command {
	return &cli.Command{
		Name:  "schema",
		Usage: "Print the JSON schema of the json output",
		Action: func(cliCtx *cli.Context) error {
			data, err := documentSchema()
			if err != nil {
				return errors.WithStack(err)
			}

			if _, err := cliCtx.App.Writer.Write(append(data, '\n')); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}

func documentSchema() ([]byte, error) {
	reflector := &jsonschema.Reflector{
		DoNotReference: true,
	}

	schema := reflector.Reflect(&Document{})
	schema.Title = "bingsearch results"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}
