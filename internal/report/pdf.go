package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

// Table is one rendered grid; Heading, when set, is printed above it as
// a section header (used by the course-grouping export).
type Table struct {
	Heading string
	Headers []string
	Rows    [][]string
}

// Relative column weights, scaled to the usable page width. Name,
// email and address columns get extra room for long values.
func columnWeights(headers []string) []float64 {
	weights := make([]float64, len(headers))
	for i, h := range headers {
		lower := strings.ToLower(h)
		switch {
		case lower == "s/n":
			weights[i] = 1.3
		case strings.Contains(lower, "email"),
			strings.Contains(lower, "address"),
			strings.Contains(lower, "name"):
			weights[i] = 4.0
		case strings.Contains(lower, "phone"):
			weights[i] = 2.5
		default:
			weights[i] = 2.0
		}
	}
	return weights
}

func columnWidths(headers []string, usable float64) []float64 {
	weights := columnWeights(headers)
	var total float64
	for _, w := range weights {
		total += w
	}

	widths := make([]float64, len(weights))
	for i, w := range weights {
		widths[i] = w / total * usable
	}
	return widths
}

// Render produces a landscape-Letter PDF with a centered title and one
// grid per table, in the roster export house style.
func Render(title string, tables []Table) ([]byte, error) {
	pdf := fpdf.New("L", "pt", "Letter", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 24, title, "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageWidth - left - right

	for _, table := range tables {
		if table.Heading != "" {
			pdf.SetTextColor(0, 0, 0)
			pdf.SetFont("Helvetica", "B", 12)
			pdf.CellFormat(0, 18, table.Heading, "", 1, "L", false, 0, "")
			pdf.Ln(2)
		}

		widths := columnWidths(table.Headers, usable)

		pdf.SetFillColor(0, 0, 139)
		pdf.SetTextColor(245, 245, 245)
		pdf.SetFont("Helvetica", "B", 9)
		for i, header := range table.Headers {
			pdf.CellFormat(widths[i], 16, header, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", 9)
		for _, row := range table.Rows {
			for i, cell := range row {
				align := "L"
				if i == 0 {
					align = "C"
				}
				pdf.CellFormat(widths[i], 14, cell, "1", 0, align, false, 0, "")
			}
			pdf.Ln(-1)
		}

		pdf.Ln(10)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf %q: %w", title, err)
	}
	return buf.Bytes(), nil
}
