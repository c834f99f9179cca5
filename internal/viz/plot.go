package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/counterpart/internal/sweep"
)

// PlotSpinSweep plots r_isco and r_dis (km) against spin. Legends are only
// drawn in color.
func PlotSpinSweep(points []sweep.SpinPoint, width, height int, color bool) string {
	if len(points) == 0 {
		return ""
	}
	isco := make([]float64, len(points))
	dis := make([]float64, len(points))
	for i, p := range points {
		isco[i] = p.RIsco
		dis[i] = p.RDisruption
	}

	caption := fmt.Sprintf("r [km] vs spin %.2f..%.2f", points[0].Spin, points[len(points)-1].Spin)
	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(1),
		asciigraph.Caption(caption),
	}
	// asciigraph indexes SeriesColors for every legend entry.
	if color {
		opts = append(opts,
			asciigraph.SeriesColors(asciigraph.Cyan, asciigraph.Red),
			asciigraph.SeriesLegends("r_isco", "r_disruption"),
		)
	}
	return asciigraph.PlotMany([][]float64{isco, dis}, opts...)
}

// CollapseMap renders an n x n BNS grid with m1 on rows and m2 on columns.
func CollapseMap(points []sweep.BNSPoint, n int) string {
	if n < 1 || len(points) != n*n {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "      m2 %.2f → %.2f\n", points[0].Mass2, points[n-1].Mass2)
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%5.2f ", points[i*n].Mass1)
		for j := 0; j < n; j++ {
			if points[i*n+j].Collapses {
				b.WriteRune('█')
			} else {
				b.WriteRune('·')
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString("      █ collapses  · survives\n")
	return b.String()
}
