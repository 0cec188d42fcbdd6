package console

import (
	"fmt"
	"io"
	"strconv"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"

	"expensetracker/internal/core"
)

// descriptionWidth is the display width descriptions are cut to in tables.
const descriptionWidth = 28

func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "...")
}

// renderExpenses prints expenses as a table with a total footer, or a
// placeholder line when there is nothing to show.
func renderExpenses(w io.Writer, expenses []core.Expense) {
	if len(expenses) == 0 {
		fmt.Fprintln(w, "(No records)")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Date", "Category", "Description", "Amount"})
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, e := range expenses {
		table.Append([]string{
			strconv.Itoa(e.ID),
			e.Date,
			e.Category,
			truncate(e.Description, descriptionWidth),
			core.FormatAmount(e.Amount),
		})
	}
	table.SetFooter([]string{"", "", "", "Total", core.FormatAmount(core.Total(expenses))})
	table.Render()
}
