package report

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
)

func encodeCSV(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	blank := []string{}

	if doc.Title != "" {
		if err := w.Write([]string{doc.Title}); err != nil {
			return nil, err
		}
		if err := w.Write(blank); err != nil {
			return nil, err
		}
	}

	for i, s := range doc.Sections {
		if i > 0 {
			if err := w.Write(blank); err != nil {
				return nil, err
			}
		}
		if s.Title != "" && len(doc.Sections) > 1 {
			if err := w.Write([]string{strings.ToUpper(s.Title)}); err != nil {
				return nil, err
			}
		}
		if err := w.Write(s.Headers); err != nil {
			return nil, err
		}
		for _, row := range s.Rows {
			if err := w.Write(csvRow(row)); err != nil {
				return nil, err
			}
		}
		if err := writeTotals(w, s.Totals); err != nil {
			return nil, err
		}
	}

	if err := writeTotals(w, doc.Totals); err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeTotals(w *csv.Writer, totals []Total) error {
	if len(totals) == 0 {
		return nil
	}
	if err := w.Write([]string{}); err != nil {
		return err
	}
	for _, t := range totals {
		if err := w.Write([]string{t.Label, formatAmount(t.Amount)}); err != nil {
			return err
		}
	}
	return nil
}

func csvRow(row []any) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = cellText(v)
	}
	return out
}

func cellText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return formatAmount(x)
	case int:
		return strconv.Itoa(x)
	default:
		return ""
	}
}

func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
