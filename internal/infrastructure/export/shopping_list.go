package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/bos-com/Recipe-management-System/internal/domain/entities"
)

// WriteShoppingList encodes a list as CSV (Ingredient, Quantity, Status) or
// as a printable checklist.
func WriteShoppingList(w io.Writer, list entities.ShoppingList, format Format) error {
	switch format {
	case FormatCSV:
		rows := [][]string{{"Ingredient", "Quantity", "Status"}}
		for _, item := range list.Items {
			status := "Pending"
			if item.Checked {
				status = "Done"
			}
			rows = append(rows, []string{item.Ingredient, item.Quantity, status})
		}
		return writeCSV(w, rows)
	case FormatText:
		_, err := io.WriteString(w, ShoppingListText(list))
		return err
	case FormatJSON:
		return writeJSON(w, list)
	default:
		return fmt.Errorf("export: unsupported shopping list format %q", format)
	}
}

func ShoppingListText(list entities.ShoppingList) string {
	var b strings.Builder
	fmt.Fprintf(&b, "SHOPPING LIST: %s\n", list.Name)
	fmt.Fprintf(&b, "Created: %s\n\n", list.CreatedAt.Format("2006-01-02"))
	for _, item := range list.Items {
		mark := "[ ]"
		if item.Checked {
			mark = "[X]"
		}
		fmt.Fprintf(&b, "%s %s - %s\n", mark, item.Ingredient, item.Quantity)
	}
	return b.String()
}

func ShoppingListFilename(list entities.ShoppingList, format Format) string {
	return list.Name + "-shopping-list." + format.Extension()
}
