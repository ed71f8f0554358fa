package command

import (
	"github.com/bos-com/Recipe-management-System/internal/application/common"
)

type ImportRecipesCommand struct {
	Data []byte `json:"-"`
}

type ImportRecipesCommandResult struct {
	Imported int                    `json:"imported"`
	Recipes  []*common.RecipeResult `json:"recipes"`
	Errors   []string               `json:"errors,omitempty"`
}

// ExportResult is a rendered download.
type ExportResult struct {
	Filename    string
	ContentType string
	Body        []byte
}
