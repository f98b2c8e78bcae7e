// Package render turns a calculation into terminal tables, JSON, or an
// Excel workbook for manual order entry.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/rustyeddy/tradeplan/plan"
)

func money(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-$%.2f", -v)
	}
	return fmt.Sprintf("$%.2f", v)
}

func badge(d plan.Direction) string {
	if d == plan.Short {
		return text.Colors{text.FgRed, text.Bold}.Sprint("SHORT")
	}
	return text.Colors{text.FgGreen, text.Bold}.Sprint("LONG")
}

// Plan renders the full calculation: summary table, advisories, and the
// order ticket when one was produced. ref may be empty.
func Plan(w io.Writer, ref string, c plan.Calculation) {
	if !c.Valid {
		Issues(w, c)
		return
	}

	Summary(w, ref, c)
	Issues(w, c)

	if c.Ticket != nil {
		Ticket(w, c.Ticket)
	} else {
		fmt.Fprintln(w, "no order ticket: position size is zero")
	}
}

// Summary prints the derived levels and sizing for a valid calculation.
func Summary(w io.Writer, ref string, c plan.Calculation) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("TRADE PLAN")
	t.SetStyle(table.StyleRounded)

	rows := []table.Row{
		{"Direction", badge(c.Direction)},
		{"Entry Price", money(c.EntryPrice)},
	}
	if ref != "" {
		rows = append([]table.Row{{"Plan Ref", ref}}, rows...)
	}
	t.AppendRows(rows)

	t.AppendSeparator()

	t.AppendRows([]table.Row{
		{"Stop Price", money(c.StopPrice)},
		{"Stop Distance", money(c.StopDistance)},
		{"Risk / Unit", money(c.RiskPerUnit)},
		{"Target Price", money(c.TargetPrice)},
		{"Trailing Amount", money(c.TrailingAmount)},
	})

	t.AppendSeparator()

	sizing := []table.Row{
		{"Max Dollar Risk", money(c.MaxDollarRisk)},
		{"Position Size", fmt.Sprintf("%d units", c.PositionSize)},
		{"Total Cost", money(c.TotalCost)},
		{"Dollar Risk", money(c.DollarRisk)},
	}
	if c.RMultiple != nil {
		sizing = append(sizing, table.Row{"R Multiple", fmt.Sprintf("%.2fR", *c.RMultiple)})
	}
	t.AppendRows(sizing)

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 16, WidthMax: 16, Align: text.AlignLeft},
		{Number: 2, WidthMin: 20, WidthMax: 40, Align: text.AlignLeft},
	})

	t.Render()
	fmt.Fprintln(w)
}

// Ticket prints the three bracket legs and their linkage.
func Ticket(w io.Writer, tk *plan.Ticket) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("ORDER TICKET")
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"Entry", string(tk.EntryKind),
			fmt.Sprintf("stop %s, limit %s, qty %d", money(tk.EntryStopPrice), money(tk.EntryLimitPrice), tk.Quantity)},
		{"Target", string(tk.TargetKind),
			fmt.Sprintf("limit %s, qty %d", money(tk.TargetPrice), tk.Quantity)},
		{"Trail", string(tk.TrailKind),
			fmt.Sprintf("offset %s, qty %d", money(tk.TrailAmount), tk.Quantity)},
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 8, WidthMax: 8, Align: text.AlignLeft},
		{Number: 2, WidthMin: 18, WidthMax: 18, Align: text.AlignLeft},
		{Number: 3, WidthMin: 30, WidthMax: 45, Align: text.AlignLeft},
	})
	t.SetCaption(tk.Linkage)

	t.Render()
	fmt.Fprintln(w)
}

// Issues prints blocking errors in red and advisories in yellow.
func Issues(w io.Writer, c plan.Calculation) {
	for _, is := range c.Errors {
		fmt.Fprintln(w, text.Colors{text.FgRed}.Sprint("error: "+is.Msg))
	}
	for _, is := range c.Warnings {
		fmt.Fprintln(w, text.Colors{text.FgYellow}.Sprint("warning: "+is.Msg))
	}
}

// JSON writes the raw calculation for scripting use.
func JSON(w io.Writer, c plan.Calculation) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
