package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bos-com/Recipe-management-System/internal/domain/entities"
)

var fixedNow = time.Date(2024, 5, 4, 9, 30, 0, 0, time.UTC)

func testRecipe() *entities.Recipe {
	return entities.NewRecipe(entities.Recipe{
		Id:           "r1",
		Name:         "Pancakes",
		Description:  "Fluffy, golden",
		Category:     "Breakfast",
		CookTime:     20,
		Servings:     4,
		Ingredients:  []string{"2 cups flour", "2 eggs"},
		Instructions: []string{"Whisk", "Fry"},
		CreatedAt:    fixedNow,
	})
}

func readCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	require.NoError(t, err)
	return rows
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{"": FormatJSON, "CSV": FormatCSV, "yml": FormatYAML, "txt": FormatText, "text": FormatText}
	for in, want := range tests {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("pdf")
	assert.Error(t, err)
}

func TestWriteRecipe_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecipe(&buf, testRecipe(), FormatCSV, fixedNow))

	rows := readCSV(t, buf.Bytes())
	assert.Equal(t, []string{"Field", "Value"}, rows[0])
	assert.Equal(t, []string{"Name", "Pancakes"}, rows[1])
	assert.Equal(t, []string{"Cook Time (min)", "20"}, rows[3])
	assert.Equal(t, []string{"Description", "Fluffy, golden"}, rows[5])
	assert.Equal(t, []string{"Ingredients", ""}, rows[7])
	assert.Equal(t, []string{"2 cups flour", ""}, rows[8])
	assert.Equal(t, []string{"Instructions", ""}, rows[11])
	assert.Equal(t, []string{"Fry", ""}, rows[13])
}

func TestWriteRecipes_CSVSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecipes(&buf, []*entities.Recipe{testRecipe()}, FormatCSV, fixedNow))

	rows := readCSV(t, buf.Bytes())
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Name", "Category", "Cook Time (min)", "Servings", "Ingredients Count", "Description"}, rows[0])
	assert.Equal(t, []string{"Pancakes", "Breakfast", "20", "4", "2", "Fluffy, golden"}, rows[1])
}

func TestWriteRecipes_JSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecipes(&buf, []*entities.Recipe{testRecipe()}, FormatJSON, fixedNow))

	parsed, err := ParseRecipes(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Equal(t, "Pancakes", parsed[0].Name)
	assert.Equal(t, []string{"Whisk", "Fry"}, parsed[0].Instructions)

	buf.Reset()
	require.NoError(t, WriteRecipes(&buf, nil, FormatJSON, fixedNow))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestWriteRecipe_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecipe(&buf, testRecipe(), FormatYAML, fixedNow))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Pancakes", decoded["name"])
	assert.Equal(t, 20, decoded["cookTime"])
}

func TestRecipeCard(t *testing.T) {
	card := RecipeCard(testRecipe(), fixedNow)
	assert.Contains(t, card, "RECIPE CARD")
	assert.Contains(t, card, "RECIPE: Pancakes")
	assert.Contains(t, card, "Cook Time:    20 minutes")
	assert.Contains(t, card, "  1. 2 cups flour")
	assert.Contains(t, card, "  Step 2: Fry")
	assert.Contains(t, card, "Generated: 2024-05-04 09:30:00")
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Pancakes.csv", Filename(testRecipe(), FormatCSV, fixedNow))
	assert.Equal(t, "recipes-2024-05-04.txt", Filename(nil, FormatText, fixedNow))
}

func TestWriteShoppingList(t *testing.T) {
	list := entities.NewShoppingList("Weekend", []string{"r1"}, []string{"flour", "eggs"})
	list.Items[1].Checked = true

	var buf bytes.Buffer
	require.NoError(t, WriteShoppingList(&buf, list, FormatCSV))
	rows := readCSV(t, buf.Bytes())
	assert.Equal(t, [][]string{
		{"Ingredient", "Quantity", "Status"},
		{"flour", "1", "Pending"},
		{"eggs", "1", "Done"},
	}, rows)

	text := ShoppingListText(list)
	assert.Contains(t, text, "SHOPPING LIST: Weekend")
	assert.Contains(t, text, "[ ] flour - 1")
	assert.Contains(t, text, "[X] eggs - 1")

	assert.Equal(t, "Weekend-shopping-list.csv", ShoppingListFilename(list, FormatCSV))
	assert.Error(t, WriteShoppingList(&buf, list, FormatYAML))
}

func TestParseRecipes(t *testing.T) {
	single, err := ParseRecipes([]byte(` {"name":"Soup","ingredients":["water"]} `))
	require.NoError(t, err)
	require.Len(t, single, 1)
	assert.Equal(t, "Soup", single[0].Name)

	many, err := ParseRecipes([]byte(`[{"name":"A"},null,{"name":"B"}]`))
	require.NoError(t, err)
	require.Len(t, many, 2)
	assert.Equal(t, "B", many[1].Name)

	for _, bad := range []string{"", "   ", "{not json", `[{"name":1}]`} {
		_, err := ParseRecipes([]byte(bad))
		assert.ErrorIs(t, err, ErrInvalidImport, bad)
	}
}

func TestRecipeSchema(t *testing.T) {
	raw, err := RecipeSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(raw, &schema))
	assert.Equal(t, "Recipe", schema["title"])
	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "name")
	assert.Contains(t, props, "ingredients")
	assert.Contains(t, props, "nutrition")
}
