// Package sweep evaluates the astro formulas over parameter grids.
//
//   - [Sweeper.Spin]: r_isco and r_dis across a spin range for one NSBH system
//   - [Sweeper.BNS]: remnant mass and collapse verdict over an m1 x m2 grid
//   - [CriticalSpin]: bisection for the spin at which an NSBH verdict flips
//
// Grids are split into chunks evaluated on separate goroutines. A cancelled
// context stops unstarted chunks and is returned as the error.
package sweep
