// Package schemas embeds the JSON Schemas shipped with the module.
package schemas

import _ "embed"

// RecordingSchemaJSON is the JSON Schema for one line of a JSONL frame
// recording.
//
//go:embed recording.schema.json
var RecordingSchemaJSON string
