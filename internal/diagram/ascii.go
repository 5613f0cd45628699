package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gowing/internal/spar"
)

// SparDiagramData holds data for drawing a spar cross-section
type SparDiagramData struct {
	Section spar.Section // mm

	Moment float64 // N·m
	Stress float64 // extreme fibre stress (MPa)
	Yield  float64 // MPa
}

// PlotASCII renders a spanwise series as a terminal line chart. The
// series is plotted root first, left to right.
func PlotASCII(title string, values []float64, height int) string {
	if len(values) == 0 {
		return ""
	}
	if height <= 0 {
		height = 10
	}
	width := len(values)
	if width > 70 {
		width = 70
	}
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(2),
		asciigraph.Caption(title),
	)
}

// DrawASCIISparSection creates an ASCII representation of the hollow spar
// section next to its linear bending stress profile
func DrawASCIISparSection(data SparDiagramData) string {
	var sb strings.Builder
	sec := data.Section

	widthChars := 24
	heightChars := 16

	// wall thickness in characters, at least one so the hollow shows
	flange := int(sec.FlangeThickness / sec.Height * float64(heightChars))
	if flange < 1 {
		flange = 1
	}
	web := int(sec.WebThickness / sec.Width * float64(widthChars))
	if web < 1 {
		web = 1
	}
	naLine := heightChars / 2

	sb.WriteString("\n")
	sb.WriteString("  SPAR SECTION                    BENDING STRESS\n")
	sb.WriteString("  ────────────                    ──────────────\n")

	for i := 0; i <= heightChars; i++ {
		switch {
		case i == 0:
			sb.WriteString(fmt.Sprintf("  ┌%s┐", strings.Repeat("─", widthChars)))
		case i == heightChars:
			sb.WriteString(fmt.Sprintf("  └%s┘", strings.Repeat("─", widthChars)))
		case i <= flange || i >= heightChars-flange:
			sb.WriteString(fmt.Sprintf("  │%s│", strings.Repeat("█", widthChars)))
		default:
			hollow := widthChars - 2*web
			sb.WriteString(fmt.Sprintf("  │%s%s%s│", strings.Repeat("█", web), strings.Repeat(" ", hollow), strings.Repeat("█", web)))
		}

		// stress profile, compression on top
		bar := naLine - i
		if bar < 0 {
			bar = -bar
		}
		sb.WriteString("    ")
		switch {
		case i == 0:
			sb.WriteString(fmt.Sprintf("%s▶ -%.1f MPa", strings.Repeat("█", bar), data.Stress))
		case i == naLine:
			sb.WriteString("├── σ = 0 ◄─ N.A.")
		case i == heightChars:
			sb.WriteString(fmt.Sprintf("%s▶ +%.1f MPa", strings.Repeat("█", bar), data.Stress))
		default:
			sb.WriteString(strings.Repeat("█", bar))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  H = %.1f mm, B = %.1f mm, tw = %.2f mm, tf = %.2f mm\n",
		sec.Height, sec.Width, sec.WebThickness, sec.FlangeThickness))
	sb.WriteString(fmt.Sprintf("  M = %.2f N·m, σ = %.1f MPa, σy = %.1f MPa\n", data.Moment, data.Stress, data.Yield))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s to n runes; %-*s counts bytes and breaks on ², ·, σ
func pad(s string, n int) string {
	if k := len([]rune(s)); k < n {
		return s + strings.Repeat(" ", n-k)
	}
	return s
}
