// Package schemas embeds the JSON Schema documents used to validate
// structured inputs.
package schemas

import _ "embed"

// Resume is the JSON Schema for the structured-resume ingestion path.
//
//go:embed resume.schema.json
var Resume string
