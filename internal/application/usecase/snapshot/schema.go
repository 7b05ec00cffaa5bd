package snapshot

import (
	"github.com/xeipuuv/gojsonschema"

	"github.com/aaguilard28/cv-areli/pkg/apperror"
)

// snapshotSchema describes the expected shape of each aggregate. Every field
// stays optional so partial snapshots remain valid, but a field that is
// present must have the right shape. Only consulted in strict import mode.
const snapshotSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "versions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name", "type", "data", "createdAt", "updatedAt"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "name": {"type": "string"},
          "type": {"enum": ["general", "comercial", "tech", "academico"]},
          "data": {"type": "object"},
          "createdAt": {"type": "string"},
          "updatedAt": {"type": "string"}
        }
      }
    },
    "currentVersionId": {"type": ["string", "null"]},
    "sectionsConfig": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "title", "enabled", "order"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "title": {"type": "string"},
          "enabled": {"type": "boolean"},
          "order": {"type": "integer", "minimum": 1}
        }
      }
    },
    "currentTheme": {"enum": ["default", "corporate", "tech", "creative"]},
    "exportedAt": {"type": "string"}
  }
}`

func validateSnapshotShape(raw []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(snapshotSchema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return apperror.NewInvalidInput("snapshot validation failed", err)
	}
	if !result.Valid() {
		details := ""
		for _, desc := range result.Errors() {
			if details != "" {
				details += "; "
			}
			details += desc.String()
		}
		return apperror.NewInvalidInput("snapshot rejected: "+details, nil)
	}
	return nil
}
