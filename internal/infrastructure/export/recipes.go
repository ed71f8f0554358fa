package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bos-com/Recipe-management-System/internal/domain/entities"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatCSV, FormatYAML, FormatText:
		return f, nil
	case "txt":
		return FormatText, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("export: unsupported format %q", s)
	}
}

func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatYAML:
		return "application/yaml"
	case FormatText:
		return "text/plain; charset=utf-8"
	default:
		return "application/json"
	}
}

func (f Format) Extension() string {
	if f == FormatText {
		return "txt"
	}
	return string(f)
}

// WriteRecipe encodes one recipe. The text format is the printable recipe
// card.
func WriteRecipe(w io.Writer, recipe *entities.Recipe, format Format, now time.Time) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, recipe)
	case FormatYAML:
		return writeYAML(w, recipe)
	case FormatCSV:
		return writeCSV(w, recipeRows(recipe))
	case FormatText:
		_, err := io.WriteString(w, RecipeCard(recipe, now))
		return err
	default:
		return fmt.Errorf("export: unsupported format %q", format)
	}
}

// WriteRecipes encodes a catalog. CSV is the one-row-per-recipe summary; the
// text format concatenates recipe cards.
func WriteRecipes(w io.Writer, recipes []*entities.Recipe, format Format, now time.Time) error {
	if recipes == nil {
		recipes = []*entities.Recipe{}
	}
	switch format {
	case FormatJSON:
		return writeJSON(w, recipes)
	case FormatYAML:
		return writeYAML(w, recipes)
	case FormatCSV:
		return writeCSV(w, summaryRows(recipes))
	case FormatText:
		for _, r := range recipes {
			if _, err := io.WriteString(w, RecipeCard(r, now)); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("export: unsupported format %q", format)
	}
}

// Filename builds the download name: the recipe name for a single recipe,
// recipes-YYYY-MM-DD for the catalog.
func Filename(recipe *entities.Recipe, format Format, now time.Time) string {
	if recipe != nil {
		return recipe.Name + "." + format.Extension()
	}
	return "recipes-" + now.Format(time.DateOnly) + "." + format.Extension()
}

const rule = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// RecipeCard renders the plain-text printable card.
func RecipeCard(recipe *entities.Recipe, now time.Time) string {
	var b strings.Builder
	b.WriteString("\n╔════════════════════════════════════════════════════════════════╗\n")
	b.WriteString("║                        RECIPE CARD                             ║\n")
	b.WriteString("╚════════════════════════════════════════════════════════════════╝\n\n")
	fmt.Fprintf(&b, "RECIPE: %s\n%s\n\n", recipe.Name, rule)
	fmt.Fprintf(&b, "Category:     %s\n", recipe.Category)
	fmt.Fprintf(&b, "Cook Time:    %d minutes\n", recipe.CookTime)
	fmt.Fprintf(&b, "Servings:     %d\n\n", recipe.Servings)
	fmt.Fprintf(&b, "DESCRIPTION:\n%s\n\n", recipe.Description)
	fmt.Fprintf(&b, "INGREDIENTS:\n%s\n", rule)
	for i, ing := range recipe.Ingredients {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, ing)
	}
	fmt.Fprintf(&b, "\nINSTRUCTIONS:\n%s\n", rule)
	for i, step := range recipe.Instructions {
		fmt.Fprintf(&b, "  Step %d: %s\n", i+1, step)
	}
	fmt.Fprintf(&b, "\n%s\nGenerated: %s\n", rule, now.Format("2006-01-02 15:04:05"))
	return b.String()
}

func recipeRows(r *entities.Recipe) [][]string {
	rows := [][]string{
		{"Field", "Value"},
		{"Name", r.Name},
		{"Category", r.Category},
		{"Cook Time (min)", strconv.Itoa(r.CookTime)},
		{"Servings", strconv.Itoa(r.Servings)},
		{"Description", r.Description},
		{"", ""},
		{"Ingredients", ""},
	}
	for _, ing := range r.Ingredients {
		rows = append(rows, []string{ing, ""})
	}
	rows = append(rows, []string{"", ""}, []string{"Instructions", ""})
	for _, step := range r.Instructions {
		rows = append(rows, []string{step, ""})
	}
	return rows
}

func summaryRows(recipes []*entities.Recipe) [][]string {
	rows := [][]string{{"Name", "Category", "Cook Time (min)", "Servings", "Ingredients Count", "Description"}}
	for _, r := range recipes {
		rows = append(rows, []string{
			r.Name,
			r.Category,
			strconv.Itoa(r.CookTime),
			strconv.Itoa(r.Servings),
			strconv.Itoa(len(r.Ingredients)),
			r.Description,
		})
	}
	return rows
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("export: encode json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("export: encode yaml: %w", err)
	}
	return enc.Close()
}

func writeCSV(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("export: write csv: %w", err)
	}
	return nil
}
