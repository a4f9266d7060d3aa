// Package report turns studio records into downloadable tables.
package report

import (
	"fmt"
	"strings"

	"github.com/BruksfildServices01/studio-manager/internal/httperr"
)

// Section is one table of a report. Cell values are strings, float64
// amounts or ints.
type Section struct {
	Title   string
	Headers []string
	Rows    [][]any
	Totals  []Total
}

type Total struct {
	Label  string
	Amount float64
}

type Document struct {
	Title    string
	Name     string // file name without extension
	Sections []Section
	Totals   []Total
}

// ======================================================
// FORMAT
// ======================================================

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", httperr.Validation("invalid_format", "Format must be csv or xlsx.")
	}
}

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// File is a rendered report ready to be sent or archived.
type File struct {
	Name        string
	ContentType string
	Body        []byte
}

func Render(doc Document, format Format) (*File, error) {
	var (
		body []byte
		err  error
	)

	switch format {
	case FormatXLSX:
		body, err = encodeXLSX(doc)
	default:
		format = FormatCSV
		body, err = encodeCSV(doc)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", doc.Name, err)
	}

	return &File{
		Name:        doc.Name + "." + string(format),
		ContentType: format.ContentType(),
		Body:        body,
	}, nil
}
