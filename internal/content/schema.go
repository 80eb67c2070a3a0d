package content

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/plantquiz/internal/quiz"
)

const schemaURL = "schema://plantquiz/question-bank.json"

// bankSchemaDefinition describes a question bank file.
func bankSchemaDefinition() map[string]any {
	categories := make([]any, 0, quiz.NumCategories)
	for _, c := range quiz.AllCategories() {
		categories = append(categories, c.String())
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"version": map[string]any{
				"type":        "string",
				"pattern":     `^v[0-9]+\.[0-9]+\.[0-9]+$`,
				"description": "Semantic version of the bank format, e.g. v1.2.0",
			},
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"prompt": map[string]any{
							"type":      "string",
							"minLength": 1,
						},
						"options": map[string]any{
							"type":     "array",
							"minItems": 1,
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"label": map[string]any{
										"type":      "string",
										"minLength": 1,
									},
									"category": map[string]any{
										"type": "string",
										"enum": categories,
									},
								},
								"required":             []any{"label", "category"},
								"additionalProperties": false,
							},
						},
					},
					"required":             []any{"prompt", "options"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"version", "questions"},
		"additionalProperties": false,
	}
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// bankSchema returns the compiled question bank schema.
func bankSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a decoded JSON value, not a Go map of typed slices.
		defBytes, err := json.Marshal(bankSchemaDefinition())
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}
