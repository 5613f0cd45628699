package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gowing/internal/loads"
	"github.com/alexiusacademia/gowing/internal/spar"
)

// Series is one spanwise quantity to chart
type Series struct {
	Name   string
	Unit   string
	Values []float64
	Color  color.Color
}

// DistributionSeries returns the lift, shear, moment and torque series of d.
// Torque is left out when torsion has not been computed.
func DistributionSeries(d *loads.Distribution) []Series {
	series := []Series{
		{Name: "Lift", Unit: "N/m", Values: d.Lifts(), Color: color.RGBA{R: 0, G: 100, B: 200, A: 255}},
		{Name: "Shear", Unit: "N", Values: d.Shears(), Color: color.RGBA{R: 200, G: 60, B: 0, A: 255}},
		{Name: "Moment", Unit: "N·m", Values: d.Moments(), Color: color.RGBA{R: 0, G: 130, B: 60, A: 255}},
	}
	torque := d.Torques()
	for _, t := range torque {
		if t != 0 {
			series = append(series, Series{Name: "Torque", Unit: "N·m/m", Values: torque, Color: color.RGBA{R: 140, G: 0, B: 140, A: 255}})
			break
		}
	}
	return series
}

// ExportSeries charts one spanwise series against y to the image file
// ImageName(filename)
func ExportSeries(y []float64, s Series, filename string) error {
	if len(y) != len(s.Values) {
		return fmt.Errorf("%s: %d stations but %d values", s.Name, len(y), len(s.Values))
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Spanwise %s", s.Name)
	p.X.Label.Text = "Span station y (m)"
	p.Y.Label.Text = fmt.Sprintf("%s (%s)", s.Name, s.Unit)
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(y))
	for i := range y {
		pts[i] = plotter.XY{X: y[i], Y: s.Values[i]}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = s.Color
	if line.LineStyle.Color == nil {
		line.LineStyle.Color = color.Black
	}
	p.Add(line)

	// Mark the root value
	root, err := plotter.NewScatter(plotter.XYs{pts[0]})
	if err != nil {
		return err
	}
	root.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	root.GlyphStyle.Radius = vg.Points(4)
	root.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(root)

	lbl, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{pts[0]},
		Labels: []string{fmt.Sprintf("  %.4g %s", s.Values[0], s.Unit)},
	})
	if err != nil {
		return err
	}
	p.Add(lbl)

	return save(p, 8*vg.Inch, 5*vg.Inch, filename)
}

// ExportDistribution writes one chart per series of d. base is a file
// name such as out/wing.png; the series name is inserted before the
// extension. The written file names are returned.
func ExportDistribution(d *loads.Distribution, base string) ([]string, error) {
	base = ImageName(base)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	y := d.Ys()
	var files []string
	for _, s := range DistributionSeries(d) {
		name := fmt.Sprintf("%s_%s%s", stem, strings.ToLower(s.Name), ext)
		if err := ExportSeries(y, s, name); err != nil {
			return files, err
		}
		files = append(files, name)
	}
	return files, nil
}

// ExportSparSection draws the hollow rectangular spar section to the image
// file ImageName(filename)
func ExportSparSection(sec spar.Section, filename string) error {
	if err := sec.Validate(); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Spar Section %s", sec)
	p.X.Label.Text = "Width (mm)"
	p.Y.Label.Text = "Height (mm)"

	B, H := sec.Width, sec.Height
	tw, tf := sec.WebThickness, sec.FlangeThickness

	outer, err := plotter.NewPolygon(
		plotter.XYs{{X: 0, Y: 0}, {X: B, Y: 0}, {X: B, Y: H}, {X: 0, Y: H}},
		plotter.XYs{{X: tw, Y: tf}, {X: tw, Y: H - tf}, {X: B - tw, Y: H - tf}, {X: B - tw, Y: tf}},
	)
	if err != nil {
		return err
	}
	outer.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	outer.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	outer.LineStyle.Width = vg.Points(1.5)
	p.Add(outer)

	// Neutral axis at mid depth
	margin := 0.2 * B
	naLine, err := plotter.NewLine(plotter.XYs{
		{X: -margin, Y: H / 2},
		{X: B + margin, Y: H / 2},
	})
	if err != nil {
		return err
	}
	naLine.LineStyle.Width = vg.Points(1.5)
	naLine.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	naLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(naLine)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: []plotter.XY{
			{X: B + margin, Y: H / 2},
			{X: B / 2, Y: H + 0.05*H},
		},
		Labels: []string{
			"N.A.",
			fmt.Sprintf("Z=%.0fmm³", sec.SectionModulus()),
		},
	})
	if err != nil {
		return err
	}
	p.Add(labels)

	// keep the section square on the page
	side := H
	if B > side {
		side = B
	}
	p.X.Min, p.X.Max = -margin-0.1*side, B+margin+0.3*side
	p.Y.Min, p.Y.Max = -0.1*side, H+0.2*side

	return save(p, 6*vg.Inch, 6*vg.Inch, filename)
}

// imageFormats are the extensions plot.Save can render
var imageFormats = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".tif": true, ".tiff": true,
	".svg": true, ".eps": true, ".pdf": true, ".tex": true,
}

// ImageName returns the file an export to filename actually writes: the name
// itself for a supported image extension, otherwise the name with ".png"
// appended.
func ImageName(filename string) string {
	if imageFormats[strings.ToLower(filepath.Ext(filename))] {
		return filename
	}
	return filename + ".png"
}

// save writes p to ImageName(filename) in the format its extension names
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	filename = ImageName(filename)
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return p.Save(width, height, filename)
}
