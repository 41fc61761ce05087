package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/nactco/internal/domain"
	"github.com/rgehrsitz/nactco/internal/tui/tuistyles"
)

const yAxisWidth = 9

// CostChart plots cumulative incumbent and reference cost per projection year
type CostChart struct {
	Title          string
	IncumbentName  string
	ReferenceName  string
	Series         []domain.YearByYearData
	Width          int
	Height         int
	IncumbentColor lipgloss.Color
	ReferenceColor lipgloss.Color
}

// NewCostChart creates a chart over a year-by-year projection
func NewCostChart(series []domain.YearByYearData) *CostChart {
	return &CostChart{
		Title:          "Cumulative Cost",
		IncumbentName:  "Incumbent",
		ReferenceName:  "Reference",
		Series:         series,
		Width:          60,
		Height:         12,
		IncumbentColor: tuistyles.ColorIncumbent,
		ReferenceColor: tuistyles.ColorReference,
	}
}

// WithNames sets the legend names
func (c *CostChart) WithNames(incumbent, reference string) *CostChart {
	c.IncumbentName = incumbent
	c.ReferenceName = reference
	return c
}

// WithSize sets the chart dimensions, including the y-axis gutter
func (c *CostChart) WithSize(width, height int) *CostChart {
	c.Width = width
	c.Height = height
	return c
}

// Render returns the chart, or a notice when there is nothing finite to plot
func (c *CostChart) Render() string {
	lo, hi, ok := c.bounds()
	if !ok || c.Height < 2 || c.Width <= yAxisWidth+3 {
		return tuistyles.InfoStyle.Render("No data to display")
	}
	if hi == lo {
		hi = lo + 1
	}

	plotWidth := c.Width - yAxisWidth - 3
	grid := make([][]rune, c.Height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", plotWidth))
	}

	// Reference drawn second so it wins shared cells
	c.plot(grid, func(y domain.YearByYearData) float64 { return y.Incumbent }, '■', lo, hi)
	c.plot(grid, func(y domain.YearByYearData) float64 { return y.Reference }, '●', lo, hi)

	var out strings.Builder
	if c.Title != "" {
		out.WriteString(tuistyles.TitleStyle.Render(c.Title))
		out.WriteString("\n\n")
	}

	axis := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Width(yAxisWidth).Align(lipgloss.Right)
	inc := lipgloss.NewStyle().Foreground(c.IncumbentColor)
	ref := lipgloss.NewStyle().Foreground(c.ReferenceColor)
	for i, row := range grid {
		value := hi - float64(i)/float64(c.Height-1)*(hi-lo)
		out.WriteString(axis.Render(compactMoney(value)))
		out.WriteString(" │ ")
		for _, r := range row {
			switch r {
			case '■':
				out.WriteString(inc.Render(string(r)))
			case '●':
				out.WriteString(ref.Render(string(r)))
			default:
				out.WriteRune(r)
			}
		}
		out.WriteString("\n")
	}
	out.WriteString(strings.Repeat(" ", yAxisWidth))
	out.WriteString(" └")
	out.WriteString(strings.Repeat("─", plotWidth))
	out.WriteString("\n")
	out.WriteString(c.xLabels(plotWidth))
	out.WriteString("\n")
	out.WriteString(fmt.Sprintf("%s %s   %s %s",
		inc.Render("■"), c.IncumbentName, ref.Render("●"), c.ReferenceName))

	return out.String()
}

func (c *CostChart) bounds() (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, y := range c.Series {
		for _, v := range []float64{y.Incumbent, y.Reference} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
			ok = true
		}
	}
	return lo, hi, ok
}

func (c *CostChart) plot(grid [][]rune, value func(domain.YearByYearData) float64, mark rune, lo, hi float64) {
	width := len(grid[0])
	prevX, prevY := -1, -1
	for i, point := range c.Series {
		v := value(point)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			prevX, prevY = -1, -1
			continue
		}
		x := 0
		if len(c.Series) > 1 {
			x = int(float64(i) / float64(len(c.Series)-1) * float64(width-1))
		}
		y := c.Height - 1 - int(math.Round((v-lo)/(hi-lo)*float64(c.Height-1)))
		if prevX >= 0 {
			drawLine(grid, prevX, prevY, x, y, mark)
		}
		grid[y][x] = mark
		prevX, prevY = x, y
	}
}

// drawLine fills empty cells between two points (Bresenham)
func drawLine(grid [][]rune, x0, y0, x1, y1 int, mark rune) {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		if y0 >= 0 && y0 < len(grid) && x0 >= 0 && x0 < len(grid[y0]) && grid[y0][x0] == ' ' {
			grid[y0][x0] = '·'
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *CostChart) xLabels(plotWidth int) string {
	if len(c.Series) == 0 {
		return ""
	}
	line := []rune(strings.Repeat(" ", plotWidth))
	for i, point := range c.Series {
		x := 0
		if len(c.Series) > 1 {
			x = int(float64(i) / float64(len(c.Series)-1) * float64(plotWidth-1))
		}
		label := []rune(shortYear(point.Year))
		if x+len(label) > plotWidth {
			x = plotWidth - len(label)
		}
		if x < 0 || (x > 0 && line[x-1] != ' ') {
			continue
		}
		copy(line[x:], label)
	}
	return strings.Repeat(" ", yAxisWidth+3) + tuistyles.MetricLabelStyle.Render(string(line))
}

// shortYear turns "Year 3" into "Y3" and "Initial" into "Y0"
func shortYear(label string) string {
	if label == "Initial" {
		return "Y0"
	}
	if n, ok := strings.CutPrefix(label, "Year "); ok {
		return "Y" + n
	}
	return label
}

// compactMoney formats an axis value as $1.2M, $340K or $900
func compactMoney(value float64) string {
	switch {
	case math.Abs(value) >= 1_000_000:
		return fmt.Sprintf("$%.1fM", value/1_000_000)
	case math.Abs(value) >= 1000:
		return fmt.Sprintf("$%.0fK", value/1000)
	default:
		return fmt.Sprintf("$%.0f", value)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
