package workerservice

import "github.com/xeipuuv/gojsonschema"

var userSchemaLoader = gojsonschema.NewStringLoader(
	`{
		"type": "object",
		"required": ["email"],
		"properties": {
			"_id": {"type": "string"},
			"_rev": {"type": "string"},
			"email": {"type": "string", "minLength": 3},
			"password": {"type": "string"},
			"status": {"type": "string"},
			"tenantId": {"type": "string"},
			"roles": {
				"type": "object",
				"additionalProperties": {"type": "string"}
			},
			"builder": {
				"type": "object",
				"properties": {"global": {"type": "boolean"}},
				"additionalProperties": false
			},
			"admin": {
				"type": "object",
				"properties": {"global": {"type": "boolean"}},
				"additionalProperties": false
			}
		},
		"additionalProperties": false
	}`,
)

var sendEmailSchemaLoader = gojsonschema.NewStringLoader(
	`{
		"type": "object",
		"required": ["email", "purpose"],
		"properties": {
			"email": {"type": "string", "minLength": 3},
			"purpose": {
				"type": "string",
				"enum": ["invitation", "password_recovery", "custom", "welcome"]
			},
			"contents": {"type": "string"},
			"from": {"type": "string"},
			"subject": {"type": "string"}
		},
		"additionalProperties": false
	}`,
)
