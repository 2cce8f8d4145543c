package enrich

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// responseSchema is the structured-output schema in the model API's own dialect.
var responseSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"role": map[string]any{
			"type":        "STRING",
			"description": "Un titre de poste moderne et créatif",
		},
		"bio": map[string]any{
			"type":        "STRING",
			"description": "Une biographie courte et percutante (max 20 mots)",
		},
	},
	"required": []string{"role", "bio"},
}

// profileSchema checks the generated text before it is trusted.
const profileSchema = `{
  "type": "object",
  "properties": {
    "role": {"type": "string", "minLength": 1},
    "bio":  {"type": "string", "minLength": 1}
  },
  "required": ["role", "bio"]
}`

var compiledProfileSchema = mustCompile(profileSchema)

func mustCompile(s string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic(fmt.Sprintf("invalid profile schema: %v", err))
	}
	return schema
}

// validateProfile reports whether text is a JSON document matching profileSchema.
func validateProfile(text string) error {
	result, err := compiledProfileSchema.Validate(gojsonschema.NewStringLoader(text))
	if err != nil {
		return fmt.Errorf("invalid profile JSON: %w", err)
	}
	if result.Valid() {
		return nil
	}

	errs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return fmt.Errorf("profile schema validation failed: %s", strings.Join(errs, "; "))
}
