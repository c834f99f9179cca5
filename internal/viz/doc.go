// Package viz renders verdict reports and sweep plots for the terminal.
//
//   - [Renderer]: lipgloss-styled reports for ISCO, NSBH, and BNS results
//   - [PlotSpinSweep]: asciigraph plot of r_isco(spin) against r_dis
//   - [CollapseMap]: character map of a BNS collapse grid
//
// Colors come from a [Theme]; [ThemePlain] disables them for piped output.
package viz
