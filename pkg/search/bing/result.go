package bing

import (
	"github.com/bornholm/bingsearch/pkg/search"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

var recordKeys = []string{"Url", "Title", "Description", "ID", "__metadata"}

var metadataKeys = []string{"type", "uri"}

// parseResult maps one record of the "results" array. Every key is required.
func parseResult(record gjson.Result) (search.Result, error) {
	for _, k := range recordKeys {
		if !record.Get(k).Exists() {
			return search.Result{}, errors.WithStack(search.NewMalformedRecordError(recordName(record), k))
		}
	}

	metadata := record.Get("__metadata")
	for _, k := range metadataKeys {
		if !metadata.Get(k).Exists() {
			return search.Result{}, errors.WithStack(search.NewMalformedRecordError(recordName(record), "__metadata."+k))
		}
	}

	return search.Result{
		URL:         record.Get("Url").String(),
		Title:       record.Get("Title").String(),
		Description: record.Get("Description").String(),
		ID:          record.Get("ID").String(),
		Metadata: search.Metadata{
			Type: metadata.Get("type").String(),
			URI:  metadata.Get("uri").String(),
		},
	}, nil
}

func recordName(record gjson.Result) string {
	if id := record.Get("ID"); id.Exists() {
		return id.String()
	}

	return "<unknown>"
}
