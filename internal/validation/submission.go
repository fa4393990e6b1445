// Package validation checks caller-supplied submission parameters at the
// HTTP boundary, before anything reaches the pipeline.
package validation

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/traydesk/transferdesk/constants"
	"github.com/traydesk/transferdesk/internal/common"
)

// buildSubmissionSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map constraining the two caller-selected parameters.
func buildSubmissionSchema(trayTypes []string) map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"tray_type": map[string]any{
				"type": "string",
				"enum": trayTypes,
			},
			"quantity": map[string]any{
				"type":    "string",
				"pattern": `^[1-9][0-9]*$`,
			},
		},
		"required": []string{"tray_type", "quantity"},
	}
}

// SubmissionValidator validates tray type and quantity against a compiled
// schema. The core carries both values as opaque strings afterwards.
type SubmissionValidator struct {
	schema *jsonschema.Schema
}

func NewSubmissionValidator() (*SubmissionValidator, error) {
	b, err := json.Marshal(buildSubmissionSchema(constants.TrayTypesAsStrings()))
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("submission.json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("submission.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &SubmissionValidator{schema: schema}, nil
}

// Validate checks the submitted parameters, wrapping schema violations in
// common.ErrValidation.
func (v *SubmissionValidator) Validate(trayType, quantity string) error {
	doc := map[string]any{
		"tray_type": trayType,
		"quantity":  quantity,
	}
	if err := v.schema.Validate(doc); err != nil {
		return common.NewAppError("SUBMISSION_INVALID", err.Error(), common.ErrValidation)
	}
	return nil
}
