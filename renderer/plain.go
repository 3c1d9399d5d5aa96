package renderer

import (
	"fmt"
	"strings"
)

// RenderPlainInventory renders the inventory in fixed width columns, for
// terminals and scripts that do not want markdown.
func RenderPlainInventory(inv *Inventory) string {
	var w strings.Builder
	for _, b := range inv.Boats {
		fmt.Fprintf(&w, "%-20s %3d' ", b.Name, b.Length)
		switch b.Placement {
		case "slip":
			fmt.Fprintf(&w, "   slip   #%3s", b.Detail)
		case "land":
			fmt.Fprintf(&w, "   land      %s", b.Detail)
		case "trailor":
			fmt.Fprintf(&w, "trailor %6s", b.Detail)
		case "storage":
			fmt.Fprintf(&w, "storage   #%3s", b.Detail)
		default:
			w.WriteString("   N/A        ")
		}
		fmt.Fprintf(&w, "   Owes $%7s\n", b.Amount)
	}
	w.WriteString("\n")
	return w.String()
}
