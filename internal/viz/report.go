package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/counterpart/internal/astro"
)

const reportWidth = 44

type Renderer struct {
	theme Theme
	s     styles
}

func NewRenderer(t Theme) *Renderer {
	return &Renderer{theme: t, s: newStyles(t)}
}

func (r *Renderer) Theme() Theme { return r.theme }

func (r *Renderer) row(label, value string) string {
	return fmt.Sprintf("%s %s", r.s.label.Render(fmt.Sprintf("%-18s", label)), r.s.value.Render(value))
}

func formatFloat(v float64, unit string) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	if unit == "" {
		return fmt.Sprintf("%.4f", v)
	}
	return fmt.Sprintf("%.4f %s", v, unit)
}

func (r *Renderer) panel(title string, lines []string) string {
	body := r.s.title.Render(title) + "\n" + r.s.separator(reportWidth) + "\n" + strings.Join(lines, "\n")
	return r.s.panel.Render(body)
}

func (r *Renderer) RenderIsco(spin, mass float64, sense astro.OrbitSense, rGeom, rKm float64) string {
	return r.panel("ISCO", []string{
		r.row("spin", formatFloat(spin, "")),
		r.row("mass", formatFloat(mass, "M☉")),
		r.row("orbit", sense.String()),
		r.row("r_isco", formatFloat(rGeom, "GM☉/c²")),
		r.row("r_isco", formatFloat(rKm, "km")),
	})
}

func (r *Renderer) RenderNSBH(name string, res astro.NSBHResult) string {
	title := "NSBH"
	if name != "" {
		title = "NSBH · " + name
	}

	verdict := r.s.negative.Render("PLUNGES (no disk)")
	if res.Disrupted {
		verdict = r.s.positive.Render("DISRUPTED (disk forms)")
	}

	frac := 0.0
	if res.RIsco > 0 {
		frac = res.Margin() / res.RIsco
	}

	return r.panel(title, []string{
		r.row("m_bh", formatFloat(res.MassBH, "M☉")),
		r.row("m_ns", formatFloat(res.MassNS, "M☉")),
		r.row("r_ns", formatFloat(res.RadiusNS, "km")),
		r.row("spin", fmt.Sprintf("%.4f %s", res.Spin, res.Orbit)),
		r.row("compactness", formatFloat(res.Compactness, "")),
		"",
		r.row("r_isco", formatFloat(res.RIsco, "km")),
		r.row("r_disruption", formatFloat(res.RDisruption, "km")),
		r.row("margin", formatFloat(res.Margin(), "km")),
		r.s.marginBar(frac, reportWidth-2),
		"",
		r.s.label.Render("verdict ") + verdict,
	})
}

func (r *Renderer) RenderBNS(name string, res astro.BNSResult) string {
	title := "BNS"
	if name != "" {
		title = "BNS · " + name
	}

	verdict := r.s.warn.Render("SURVIVES (no prompt collapse)")
	if res.Collapses {
		verdict = r.s.positive.Render("COLLAPSES (jet possible)")
	}

	frac := 0.0
	if res.Threshold > 0 {
		frac = (res.RemnantMass - res.Threshold) / res.Threshold
	}

	return r.panel(title, []string{
		r.row("m1", formatFloat(res.Mass1, "M☉")),
		r.row("m2", formatFloat(res.Mass2, "M☉")),
		r.row("m_tov", formatFloat(res.MassTOV, "M☉")),
		r.row("ejecta", formatFloat(res.EjectaMass, "M☉")),
		"",
		r.row("rest mass 1", formatFloat(res.RestMass1, "M☉")),
		r.row("rest mass 2", formatFloat(res.RestMass2, "M☉")),
		r.row("total rest mass", formatFloat(res.TotalRestMass, "M☉")),
		r.row("remnant mass", formatFloat(res.RemnantMass, "M☉")),
		r.row("threshold", formatFloat(res.Threshold, "M☉")),
		r.s.marginBar(frac*4, reportWidth-2),
		"",
		r.s.label.Render("verdict ") + verdict,
	})
}
