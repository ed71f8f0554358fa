package entities

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidRecipe = errors.New("invalid recipe")

var validate = validator.New(validator.WithRequiredStructEnabled())

type ValidatedRecipe struct {
	*Recipe
}

func NewValidatedRecipe(recipe *Recipe) (*ValidatedRecipe, error) {
	if err := validateStruct(recipe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecipe, err)
	}
	if recipe.CreatedAt.After(recipe.UpdatedAt) {
		return nil, fmt.Errorf("%w: created_at must be before updated_at", ErrInvalidRecipe)
	}

	return &ValidatedRecipe{Recipe: recipe}, nil
}

func (vr *ValidatedRecipe) GetRecipe() *Recipe {
	return vr.Recipe
}

// validateStruct flattens validator field errors into one readable message.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
