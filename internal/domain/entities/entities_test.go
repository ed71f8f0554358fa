package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"admin", RoleAdmin, false},
		{" User ", RoleUser, false},
		{"GUEST", RoleGuest, false},
		{"", RoleUnknown, true},
		{"superuser", RoleUnknown, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRole(tt.in)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownRole)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRole_JSON(t *testing.T) {
	type wrapper struct {
		Role Role `json:"role"`
	}

	b, err := json.Marshal(wrapper{Role: RoleAdmin})
	require.NoError(t, err)
	assert.JSONEq(t, `{"role":"admin"}`, string(b))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"role":"root"}`), &w))
	assert.Equal(t, RoleUnknown, w.Role)
	assert.False(t, w.Role.Valid())
}

func TestNewUser_DefaultName(t *testing.T) {
	u := NewUser("jane@example.com", "", RoleUser)
	assert.Equal(t, "jane", u.Name)
	assert.NotEmpty(t, u.Id)
	assert.NoError(t, u.Validate())
	assert.True(t, Guest().IsGuest())
}

func TestUserIDForEmail(t *testing.T) {
	a := UserIDForEmail("Chef@Example.com")
	assert.Equal(t, a, UserIDForEmail(" chef@example.com "))
	assert.NotEqual(t, a, UserIDForEmail("other@example.com"))
}

func TestNewSessionUser(t *testing.T) {
	first := NewSessionUser("chef@example.com", "", RoleUser)
	second := NewSessionUser("Chef@Example.com", "Chef", RoleAdmin)

	assert.Equal(t, UserIDForEmail("chef@example.com"), first.Id)
	assert.Equal(t, first.Id, second.Id)
	assert.Equal(t, "chef", first.Name)
	assert.Equal(t, "Chef", second.Name)

	assert.NotEqual(t, NewUser("chef@example.com", "", RoleUser).Id, first.Id)
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("chef@example.com"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
}

func TestNewValidatedRecipe(t *testing.T) {
	ok := NewRecipe(Recipe{Name: "Soup", Rating: 4.5, Nutrition: Nutrition{Calories: 120}})
	_, err := NewValidatedRecipe(ok)
	require.NoError(t, err)

	bad := NewRecipe(Recipe{Name: "Soup", Nutrition: Nutrition{Fat: -1}})
	_, err = NewValidatedRecipe(bad)
	assert.ErrorIs(t, err, ErrInvalidRecipe)
	assert.Contains(t, err.Error(), "Fat")

	_, err = NewValidatedRecipe(NewRecipe(Recipe{Name: "Soup", Rating: 6}))
	assert.ErrorIs(t, err, ErrInvalidRecipe)

	_, err = NewValidatedRecipe(NewRecipe(Recipe{Name: "Soup", Difficulty: "Impossible"}))
	assert.ErrorIs(t, err, ErrInvalidRecipe)

	_, err = NewValidatedRecipe(NewRecipe(Recipe{}))
	assert.ErrorIs(t, err, ErrInvalidRecipe)
}

func TestRecipe_AddRating(t *testing.T) {
	r := NewRecipe(Recipe{Name: "Soup", Rating: 4, Reviews: 1})
	r.AddRating(5)
	assert.Equal(t, 2, r.Reviews)
	assert.InDelta(t, 4.5, r.Rating, 0.0001)
}

func TestNewRecipeReview(t *testing.T) {
	author := NewUser("sam@example.com", "Sam", RoleUser)

	review, err := NewRecipeReview("r1", author, 5, "  lovely  ")
	require.NoError(t, err)
	assert.Equal(t, "lovely", review.Comment)
	assert.Equal(t, "Sam", review.UserName)

	_, err = NewRecipeReview("r1", author, 0, "fine")
	assert.ErrorIs(t, err, ErrInvalidReview)
	_, err = NewRecipeReview("r1", author, 6, "fine")
	assert.ErrorIs(t, err, ErrInvalidReview)
	_, err = NewRecipeReview("r1", author, 3, "   ")
	assert.ErrorIs(t, err, ErrInvalidReview)
}

func TestShoppingList(t *testing.T) {
	list := NewShoppingList("Groceries", []string{"r1"}, []string{"eggs", "milk"})
	require.Len(t, list.Items, 2)
	for _, item := range list.Items {
		assert.Equal(t, DefaultQuantity, item.Quantity)
		assert.False(t, item.Checked)
	}
	assert.NotEqual(t, list.Items[0].Id, list.Items[1].Id)

	before := list.UpdatedAt
	assert.True(t, list.ToggleItem(list.Items[0].Id))
	assert.Equal(t, 1, list.CheckedCount())
	assert.True(t, list.UpdatedAt.After(before))
	assert.False(t, list.ToggleItem("missing"))

	list.ReplaceItems([]ShoppingListItem{
		{Id: "a", Ingredient: "flour"},
		{Id: "a", Ingredient: "sugar"},
		{Ingredient: "salt"},
	})
	require.Len(t, list.Items, 3)
	assert.Equal(t, "a", list.Items[0].Id)
	assert.NotEqual(t, "a", list.Items[1].Id)
	assert.NotEmpty(t, list.Items[2].Id)
	assert.Equal(t, "sugar", list.Items[1].Ingredient)
}
