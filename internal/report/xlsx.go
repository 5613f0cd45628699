// Package report writes pipeline results to workbook and PDF files.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gowing/internal/pipeline"
)

// Sheet names of the workbook
const (
	SheetSummary  = "Summary"
	SheetStations = "Stations"
	SheetSpar     = "Spar"
)

var stationHeader = []interface{}{
	"y (m)", "Chord (m)", "Lift (N/m)", "Load (N)", "Shear (N)", "Moment (N·m)", "Torque (N·m/m)", "Cumulative torque (N·m)",
}

// WriteWorkbook saves r as an .xlsx workbook with a summary sheet, one row
// per station and the spar sizing
func WriteWorkbook(r *pipeline.Result, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return err
	}
	for _, name := range []string{SheetStations, SheetSpar} {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	// Summary
	for i, row := range summaryRows(r) {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SheetSummary, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(SheetSummary, "A", "A", 28); err != nil {
		return err
	}

	// Stations
	if err := f.SetSheetRow(SheetStations, "A1", &stationHeader); err != nil {
		return err
	}
	if err := f.SetRowStyle(SheetStations, 1, 1, bold); err != nil {
		return err
	}
	for i, s := range r.Loads.Stations {
		row := []interface{}{s.Y, s.Chord, s.Lift, s.Load, s.Shear, s.Moment, s.Torque, r.Torsion.Cumulative[i]}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(SheetStations, cell, &row); err != nil {
			return err
		}
	}

	// Spar
	sec := r.Spar.Section
	sparRows := [][]interface{}{
		{"Material", r.Material.Name},
		{"Yield strength (MPa)", r.Yield},
		{"Design moment (N·m)", r.DesignMoment},
		{"Height H (mm)", sec.Height},
		{"Width B (mm)", sec.Width},
		{"Web thickness tw (mm)", sec.WebThickness},
		{"Flange thickness tf (mm)", sec.FlangeThickness},
		{"Required Z (mm³)", r.Spar.RequiredModulus},
		{"Achieved Z (mm³)", r.Spar.Modulus},
		{"Second moment I (mm⁴)", r.Spar.SecondMoment},
		{"Area (mm²)", r.Spar.Area},
		{"Moment capacity (N·m)", r.Spar.MomentCapacity},
		{"Margin of safety", r.Spar.MarginOfSafety},
		{"Iterations", r.Spar.Iterations},
		{"Half-wing spar mass (kg)", r.SparMass},
		{"Bending rigidity EI (N·m²)", r.Bend.Rigidity},
		{"Tip deflection (m)", r.Bend.Tip},
	}
	if r.Spar.MaxTip > 0 {
		sparRows = append(sparRows,
			[]interface{}{"Tip deflection limit (m)", r.Spar.MaxTip},
			[]interface{}{"Governed by", r.Spar.GovernedBy})
	}
	if r.Twist != nil {
		sparRows = append(sparRows,
			[]interface{}{"Torsional rigidity GJ (N·m²)", r.Twist.Rigidity},
			[]interface{}{"Tip twist (rad)", r.Twist.Tip})
	}
	for i, row := range sparRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SheetSpar, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(SheetSpar, "A", "A", 28); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

func summaryRows(r *pipeline.Result) [][]interface{} {
	w := r.Wing
	return [][]interface{}{
		{"Case", r.Case.Name},
		{"Span (m)", w.Span},
		{"Root chord (m)", w.RootChord},
		{"Tip chord (m)", w.TipChord},
		{"Wing area (m²)", w.Area()},
		{"Aspect ratio", w.AspectRatio()},
		{"Lift coefficient", w.LiftCoefficient},
		{"Air density (kg/m³)", w.Density},
		{"Velocity (m/s)", w.Velocity},
		{"Lift model", string(r.Loads.Model)},
		{"Safety factor", r.Loads.SafetyFactor},
		{"Load factor", r.LoadFactor},
		{"Total lift (N)", r.Loads.TotalLift},
		{"Root shear (N)", r.Loads.RootShear},
		{"Root moment (N·m)", r.Loads.RootMoment},
		{"Torsion offset", r.Torsion.Offset.String()},
		{"Total torque (N·m)", r.Torsion.Total},
	}
}
