package export

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/bos-com/Recipe-management-System/internal/domain/entities"
)

// RecipeSchema returns the JSON Schema of one exported recipe document.
func RecipeSchema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(&entities.Recipe{})
	schema.Title = "Recipe"
	schema.Description = "A recipe as produced by the JSON export and accepted by import."

	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: marshal schema: %w", err)
	}
	return out, nil
}
