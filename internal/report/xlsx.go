package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	defaultSheet = "Sheet1"
	summarySheet = "Summary"
	maxSheetName = 31
)

// encodeXLSX writes each section to its own sheet and document totals to
// a trailing summary sheet.
func encodeXLSX(doc Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	var first string
	for i, s := range doc.Sections {
		name := sheetName(s.Title, i)
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
		if first == "" {
			first = name
		}
		if err := writeSection(f, name, s, headerStyle); err != nil {
			return nil, err
		}
	}

	if len(doc.Totals) > 0 {
		if _, err := f.NewSheet(summarySheet); err != nil {
			return nil, err
		}
		if first == "" {
			first = summarySheet
		}
		row := 1
		if doc.Title != "" {
			if err := setCell(f, summarySheet, 1, row, doc.Title); err != nil {
				return nil, err
			}
			row += 2
		}
		if _, err := writeTotalRows(f, summarySheet, row, doc.Totals); err != nil {
			return nil, err
		}
	}

	if first != "" {
		if err := f.DeleteSheet(defaultSheet); err != nil {
			return nil, err
		}
		idx, err := f.GetSheetIndex(first)
		if err != nil {
			return nil, err
		}
		f.SetActiveSheet(idx)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSection(f *excelize.File, sheet string, s Section, headerStyle int) error {
	for col, header := range s.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	if len(s.Headers) > 0 {
		last, err := excelize.ColumnNumberToName(len(s.Headers))
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, "A", last, 18); err != nil {
			return err
		}
	}

	for r, row := range s.Rows {
		for c, v := range row {
			if v == nil {
				continue
			}
			if err := setCell(f, sheet, c+1, r+2, v); err != nil {
				return fmt.Errorf("row %d: %w", r+2, err)
			}
		}
	}

	if len(s.Totals) > 0 {
		if _, err := writeTotalRows(f, sheet, len(s.Rows)+3, s.Totals); err != nil {
			return err
		}
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func writeTotalRows(f *excelize.File, sheet string, row int, totals []Total) (int, error) {
	for _, t := range totals {
		if err := setCell(f, sheet, 1, row, t.Label); err != nil {
			return row, err
		}
		if err := setCell(f, sheet, 2, row, t.Amount); err != nil {
			return row, err
		}
		row++
	}
	return row, nil
}

func setCell(f *excelize.File, sheet string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

func sheetName(title string, i int) string {
	if title == "" {
		title = fmt.Sprintf("Report %d", i+1)
	}
	if len(title) > maxSheetName {
		title = title[:maxSheetName]
	}
	return title
}
