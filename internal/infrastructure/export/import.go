package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bos-com/Recipe-management-System/internal/domain/entities"
)

var ErrInvalidImport = errors.New("invalid JSON file")

// ParseRecipes accepts either a JSON array of recipes or a single recipe
// object. Validation is left to the caller.
func ParseRecipes(data []byte) ([]*entities.Recipe, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrInvalidImport
	}

	if trimmed[0] == '[' {
		var recipes []*entities.Recipe
		if err := json.Unmarshal(trimmed, &recipes); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
		}
		out := recipes[:0]
		for _, r := range recipes {
			if r != nil {
				out = append(out, r)
			}
		}
		return out, nil
	}

	var recipe entities.Recipe
	if err := json.Unmarshal(trimmed, &recipe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	return []*entities.Recipe{&recipe}, nil
}
