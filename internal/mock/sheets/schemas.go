package sheets

import "github.com/xeipuuv/gojsonschema"

var spreadsheetSchemaLoader = gojsonschema.NewStringLoader(
	`{
		"type": "object",
		"required": ["title"],
		"properties": {
			"title": {"type": "string", "minLength": 1}
		},
		"additionalProperties": false
	}`,
)

var sheetSchemaLoader = gojsonschema.NewStringLoader(
	`{
		"type": "object",
		"required": ["title", "columns"],
		"properties": {
			"title": {"type": "string", "minLength": 1},
			"columns": {
				"type": "array",
				"minItems": 1,
				"items": {"type": "string", "minLength": 1}
			}
		},
		"additionalProperties": false
	}`,
)

var renameSheetSchemaLoader = gojsonschema.NewStringLoader(
	`{
		"type": "object",
		"required": ["title"],
		"properties": {
			"title": {"type": "string", "minLength": 1}
		},
		"additionalProperties": false
	}`,
)

var rowSchemaLoader = gojsonschema.NewStringLoader(
	`{
		"type": "object",
		"minProperties": 1
	}`,
)
