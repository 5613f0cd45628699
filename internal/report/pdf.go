package report

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gowing/internal/pipeline"
)

// Meta is the title block of a PDF report
type Meta struct {
	Title   string
	Project string
	Author  string
	Notes   string
	Date    time.Time
}

// maxTableRows limits the station table; longer runs are thinned evenly
const maxTableRows = 40

// WritePDF saves an engineering report of r. Images are embedded below
// the tables when given.
func WritePDF(r *pipeline.Result, meta Meta, path string, images ...string) error {
	if meta.Title == "" {
		meta.Title = "Wing Structural Loads"
	}
	if meta.Date.IsZero() {
		meta.Date = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	// core fonts are cp1252; this maps ², ³ and · from UTF-8
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(meta.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if meta.Project != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", meta.Project)))
		pdf.Ln(6)
	}
	if meta.Author != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", meta.Author)))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", meta.Date.Format("2006-01-02")))
	pdf.Ln(10)
	if meta.Notes != "" {
		pdf.MultiCell(0, 6, tr(meta.Notes), "", "L", false)
		pdf.Ln(4)
	}

	heading := func(text string) {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, tr(text))
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 10)
	}
	pair := func(label string, value interface{}) {
		pdf.CellFormat(70, 6, tr(label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, tr(formatValue(value)), "1", 1, "R", false, 0, "")
	}

	heading("Summary")
	for _, row := range summaryRows(r) {
		pair(row[0].(string), row[1])
	}
	pdf.Ln(4)

	heading("Spar Sizing")
	sec := r.Spar.Section
	pair("Material", r.Material.Name)
	pair("Yield strength (MPa)", r.Yield)
	pair("Design moment (N·m)", r.DesignMoment)
	pair("Section H x B (mm)", fmt.Sprintf("%.1f x %.1f", sec.Height, sec.Width))
	pair("Walls tw / tf (mm)", fmt.Sprintf("%.2f / %.2f", sec.WebThickness, sec.FlangeThickness))
	pair("Required Z (mm³)", r.Spar.RequiredModulus)
	pair("Achieved Z (mm³)", r.Spar.Modulus)
	pair("Moment capacity (N·m)", r.Spar.MomentCapacity)
	pair("Margin of safety", r.Spar.MarginOfSafety)
	pair("Iterations", r.Spar.Iterations)
	pair("Half-wing spar mass (kg)", r.SparMass)

	pdf.AddPage()
	heading("Spanwise Distribution")
	cols := []struct {
		title string
		width float64
	}{
		{"y (m)", 20}, {"Chord (m)", 22}, {"Lift (N/m)", 28}, {"Shear (N)", 28},
		{"Moment (N·m)", 32}, {"Torque (N·m/m)", 32},
	}
	pdf.SetFont("Helvetica", "B", 9)
	for _, c := range cols {
		pdf.CellFormat(c.width, 6, tr(c.title), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
	for _, i := range tableRows(len(r.Loads.Stations)) {
		s := r.Loads.Stations[i]
		values := []float64{s.Y, s.Chord, s.Lift, s.Shear, s.Moment, s.Torque}
		for j, v := range values {
			pdf.CellFormat(cols[j].width, 5, fmt.Sprintf("%.4g", v), "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}

	for _, img := range images {
		pdf.AddPage()
		pdf.ImageOptions(img, 15, 20, 180, 0, false, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing pdf %s: %w", path, err)
	}
	return nil
}

// tableRows picks at most maxTableRows station indices, always keeping the
// root and the tip
func tableRows(n int) []int {
	if n <= maxTableRows {
		rows := make([]int, n)
		for i := range rows {
			rows[i] = i
		}
		return rows
	}
	rows := make([]int, maxTableRows)
	for k := range rows {
		rows[k] = k * (n - 1) / (maxTableRows - 1)
	}
	return rows
}

func formatValue(v interface{}) string {
	switch x := v.(type) {
	case float64:
		return fmt.Sprintf("%.4g", x)
	case int:
		return fmt.Sprintf("%d", x)
	case string:
		return x
	}
	return fmt.Sprint(v)
}
