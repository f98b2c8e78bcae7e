package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/rustyeddy/tradeplan/plan"
)

type xlsxStyles struct {
	header   int
	currency int
	base     int
}

func newXLSXStyles(fx *excelize.File) (xlsxStyles, error) {
	var styles xlsxStyles
	var err error

	styles.header, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Size:   11,
			Color:  "FFFFFF",
			Family: "Calibri",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"2F4F4F"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return styles, err
	}

	styles.currency, err = fx.NewStyle(&excelize.Style{
		NumFmt: 7, // Currency format with $ symbol
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
	})
	if err != nil {
		return styles, err
	}

	styles.base, err = fx.NewStyle(&excelize.Style{
		Border: []excelize.Border{
			{Type: "bottom", Color: "E0E0E0", Style: 1},
		},
	})
	return styles, err
}

// WritePlanXLSX writes the calculation, and the order ticket when present,
// to an Excel workbook so the bracket can be keyed into a broker manually.
func WritePlanXLSX(c plan.Calculation, ref, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const planSheet = "Plan"
	const ticketSheet = "Ticket"

	fx.SetSheetName(fx.GetSheetName(0), planSheet)

	styles, err := newXLSXStyles(fx)
	if err != nil {
		return err
	}

	writePlanSheet(fx, planSheet, c, ref, styles)

	if c.Ticket != nil {
		fx.NewSheet(ticketSheet)
		writeTicketSheet(fx, ticketSheet, c.Ticket, styles)
	}

	return fx.SaveAs(path)
}

func writePlanSheet(fx *excelize.File, sheet string, c plan.Calculation, ref string, styles xlsxStyles) {
	fx.SetColWidth(sheet, "A", "A", 20)
	fx.SetColWidth(sheet, "B", "B", 18)

	fx.MergeCell(sheet, "A1", "B1")
	fx.SetCellValue(sheet, "A1", "TRADE PLAN")
	fx.SetCellStyle(sheet, "A1", "B1", styles.header)

	type entry struct {
		label    string
		value    interface{}
		currency bool
	}

	var rows []entry
	if ref != "" {
		rows = append(rows, entry{"Plan Ref", ref, false})
	}
	rows = append(rows,
		entry{"Direction", strings.ToUpper(string(c.Direction)), false},
		entry{"Entry Price", c.EntryPrice, true},
		entry{"Stop Price", c.StopPrice, true},
		entry{"Stop Distance", c.StopDistance, true},
		entry{"Risk / Unit", c.RiskPerUnit, true},
		entry{"Target Price", c.TargetPrice, true},
		entry{"Trailing Amount", c.TrailingAmount, true},
		entry{"Max Dollar Risk", c.MaxDollarRisk, true},
		entry{"Position Size", c.PositionSize, false},
		entry{"Total Cost", c.TotalCost, true},
		entry{"Dollar Risk", c.DollarRisk, true},
	)
	if c.RMultiple != nil {
		rows = append(rows, entry{"R Multiple", *c.RMultiple, false})
	}

	row := 2
	for _, e := range rows {
		labelCell, _ := excelize.CoordinatesToCellName(1, row)
		valueCell, _ := excelize.CoordinatesToCellName(2, row)

		fx.SetCellValue(sheet, labelCell, e.label)
		fx.SetCellStyle(sheet, labelCell, labelCell, styles.base)
		fx.SetCellValue(sheet, valueCell, e.value)
		if e.currency {
			fx.SetCellStyle(sheet, valueCell, valueCell, styles.currency)
		} else {
			fx.SetCellStyle(sheet, valueCell, valueCell, styles.base)
		}
		row++
	}

	for _, is := range c.Warnings {
		labelCell, _ := excelize.CoordinatesToCellName(1, row)
		valueCell, _ := excelize.CoordinatesToCellName(2, row)
		fx.SetCellValue(sheet, labelCell, "Warning")
		fx.SetCellValue(sheet, valueCell, is.Msg)
		row++
	}
}

func writeTicketSheet(fx *excelize.File, sheet string, tk *plan.Ticket, styles xlsxStyles) {
	fx.SetColWidth(sheet, "A", "A", 10)
	fx.SetColWidth(sheet, "B", "B", 20)
	fx.SetColWidth(sheet, "C", "C", 14)
	fx.SetColWidth(sheet, "D", "D", 14)
	fx.SetColWidth(sheet, "E", "E", 10)

	headers := []string{"Leg", "Order Type", "Trigger", "Limit / Offset", "Quantity"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		fx.SetCellValue(sheet, cell, h)
		fx.SetCellStyle(sheet, cell, cell, styles.header)
	}

	legs := [][]interface{}{
		{"Entry", string(tk.EntryKind), tk.EntryStopPrice, tk.EntryLimitPrice, tk.Quantity},
		{"Target", string(tk.TargetKind), "", tk.TargetPrice, tk.Quantity},
		{"Trail", string(tk.TrailKind), "", tk.TrailAmount, tk.Quantity},
	}

	for r, leg := range legs {
		for i, v := range leg {
			cell, _ := excelize.CoordinatesToCellName(i+1, r+2)
			fx.SetCellValue(sheet, cell, v)
			if _, isPrice := v.(float64); isPrice && i >= 2 {
				fx.SetCellStyle(sheet, cell, cell, styles.currency)
			}
		}
	}

	// The bracket wiring note spans the full width under the legs.
	fx.MergeCell(sheet, "A6", "E6")
	fx.SetCellValue(sheet, "A6", tk.Linkage)
}
