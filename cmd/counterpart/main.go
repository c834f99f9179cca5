package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/san-kum/counterpart/internal/astro"
	"github.com/san-kum/counterpart/internal/config"
	"github.com/san-kum/counterpart/internal/logging"
	"github.com/san-kum/counterpart/internal/storage"
	"github.com/san-kum/counterpart/internal/sweep"
	"github.com/san-kum/counterpart/internal/tui"
	"github.com/san-kum/counterpart/internal/viz"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type options struct {
	logLevel string
	noColor  bool
	theme    string
	strict   bool

	spin   float64
	mass   float64
	orbit  astro.OrbitSense
	mBH    float64
	mNS    float64
	rNS    float64
	m1     float64
	m2     float64
	mTOV   float64
	ejecta float64

	configFile string
	preset     string

	points   int
	minMass  float64
	maxMass  float64
	plot     bool
	exportTo string
	width    int
	height   int

	logger *slog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(&options{}).ExecuteContext(ctx); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func newRootCmd(o *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "counterpart",
		Short:         "compact binary disruption and remnant calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.Setup(cmd.ErrOrStderr(), o.logLevel, o.noColor)
			if err != nil {
				return err
			}
			o.logger = logger
			logger.Debug("starting", "command", cmd.Name())
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&o.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&o.noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&o.theme, "theme", "ocean", "report color theme ("+themeNames()+")")

	rootCmd.AddCommand(
		newIscoCmd(o),
		newNSBHCmd(o),
		newRemnantCmd(o),
		newBNSCmd(o),
		newRunCmd(o),
		newPresetsCmd(o),
		newSweepCmd(o),
		newCriticalSpinCmd(o),
		newExploreCmd(o),
	)
	return rootCmd
}

func (o *options) renderer() *viz.Renderer {
	if o.noColor {
		return viz.NewRenderer(viz.ThemePlain)
	}
	theme, ok := viz.ThemeByName(o.theme)
	if !ok && o.logger != nil {
		o.logger.Warn("unknown theme, using default", "theme", o.theme)
	}
	return viz.NewRenderer(theme)
}

func (o *options) evaluator() *astro.Evaluator {
	return astro.NewEvaluator(astro.WithStrict(o.strict), astro.WithEjectaMass(o.ejecta))
}

func addOrbitFlag(cmd *cobra.Command, o *options) {
	o.orbit = astro.CoRotating
	cmd.Flags().Var(&o.orbit, "orbit", "orbit sense (co_rotating, counter_rotating)")
}

func addNSBHFlags(cmd *cobra.Command, o *options) {
	cmd.Flags().Float64Var(&o.mBH, "mbh", config.DefaultMassBH, "black hole mass (M_sun)")
	cmd.Flags().Float64Var(&o.mNS, "mns", config.DefaultMassNS, "neutron star mass (M_sun)")
	cmd.Flags().Float64Var(&o.rNS, "rns", config.DefaultRadiusNS, "neutron star radius (km)")
	addOrbitFlag(cmd, o)
}

func addBNSFlags(cmd *cobra.Command, o *options) {
	cmd.Flags().Float64Var(&o.m1, "m1", config.DefaultMass1, "primary gravitational mass (M_sun)")
	cmd.Flags().Float64Var(&o.m2, "m2", config.DefaultMass2, "secondary gravitational mass (M_sun)")
	cmd.Flags().Float64Var(&o.ejecta, "ejecta", astro.DefaultEjectaMass, "ejected rest mass (M_sun)")
}

func newIscoCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "isco",
		Short: "innermost stable circular orbit radius",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rGeom, err := astro.RIscoGeometric(o.spin, o.mass, o.orbit)
			if err != nil {
				return err
			}
			rKm, err := o.evaluator().RIsco(o.spin, o.mass, o.orbit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), o.renderer().RenderIsco(o.spin, o.mass, o.orbit, rGeom, rKm))
			return nil
		},
	}
	cmd.Flags().Float64Var(&o.spin, "spin", 0, "dimensionless spin a/M")
	cmd.Flags().Float64Var(&o.mass, "mass", config.DefaultMassBH, "black hole mass (M_sun)")
	cmd.Flags().BoolVar(&o.strict, "strict", false, "fail on NaN/Inf results")
	addOrbitFlag(cmd, o)
	return cmd
}

func newNSBHCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nsbh",
		Short: "neutron star tidal disruption by a black hole",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := o.evaluator().NSBHSummary(o.mBH, o.mNS, o.rNS, o.spin, o.orbit)
			if err != nil {
				return err
			}
			o.logger.Debug("nsbh evaluated", "r_isco", res.RIsco, "r_dis", res.RDisruption, "disrupted", res.Disrupted)
			fmt.Fprintln(cmd.OutOrStdout(), o.renderer().RenderNSBH("", res))
			return nil
		},
	}
	addNSBHFlags(cmd, o)
	cmd.Flags().Float64Var(&o.spin, "spin", 0, "dimensionless black hole spin a/M")
	cmd.Flags().BoolVar(&o.strict, "strict", false, "fail on NaN/Inf results")
	return cmd
}

func newRemnantCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remnant",
		Short: "remnant gravitational mass of a BNS merger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := o.evaluator().TotalGravitationalMass(o.m1, o.m2)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "rest mass 1:      %.6f\n", astro.RestMassFromGravitationalMass(o.m1))
			fmt.Fprintf(out, "rest mass 2:      %.6f\n", astro.RestMassFromGravitationalMass(o.m2))
			fmt.Fprintf(out, "remnant mass:     %.6f\n", m)
			fmt.Fprintf(out, "max collapse TOV: %.6f\n", sweep.CriticalTOV(o.m1, o.m2, o.ejecta))
			return nil
		},
	}
	addBNSFlags(cmd, o)
	cmd.Flags().BoolVar(&o.strict, "strict", false, "fail on NaN/Inf results")
	return cmd
}

func newBNSCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bns",
		Short: "prompt collapse / jet launch verdict for a BNS merger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := o.evaluator().RemnantSummary(o.m1, o.m2, o.mTOV)
			if err != nil {
				return err
			}
			o.logger.Debug("bns evaluated", "remnant", res.RemnantMass, "threshold", res.Threshold, "collapses", res.Collapses)
			fmt.Fprintln(cmd.OutOrStdout(), o.renderer().RenderBNS("", res))
			return nil
		},
	}
	addBNSFlags(cmd, o)
	cmd.Flags().Float64Var(&o.mTOV, "mtov", config.DefaultMassTOV, "maximum non-rotating NS mass (M_sun)")
	cmd.Flags().BoolVar(&o.strict, "strict", false, "fail on NaN/Inf results")
	return cmd
}

// loadScenario resolves --preset and --config; the config file wins.
func (o *options) loadScenario(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if o.preset != "" {
		p, err := config.LoadPreset(o.preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}
	if o.configFile != "" {
		c, err := config.Load(o.configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = o.strict
	}
	return cfg, nil
}

func newRunCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "evaluate a scenario from a config file or preset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.configFile == "" && o.preset == "" {
				return fmt.Errorf("one of --config or --preset is required")
			}
			cfg, err := o.loadScenario(cmd)
			if err != nil {
				return err
			}
			return runScenario(cmd.OutOrStdout(), o.renderer(), cfg)
		},
	}
	cmd.Flags().StringVar(&o.configFile, "config", "", "scenario file (yaml)")
	cmd.Flags().StringVar(&o.preset, "preset", "", "built-in event preset")
	cmd.Flags().BoolVar(&o.strict, "strict", false, "fail on NaN/Inf results")
	return cmd
}

func runScenario(w io.Writer, r *viz.Renderer, cfg *config.Config) error {
	e := cfg.Evaluator()
	switch cfg.Kind {
	case config.KindNSBH:
		n := cfg.NSBH
		res, err := e.NSBHSummary(n.MassBH, n.MassNS, n.RadiusNS, n.Spin, n.Orbit)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, r.RenderNSBH(cfg.Name, res))
	case config.KindBNS:
		b := cfg.BNS
		res, err := e.RemnantSummary(b.Mass1, b.Mass2, b.MassTOV)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, r.RenderBNS(cfg.Name, res))
	default:
		return fmt.Errorf("unknown scenario kind: %s", cfg.Kind)
	}
	return nil
}

func newPresetsCmd(o *options) *cobra.Command {
	var dump bool
	cmd := &cobra.Command{
		Use:   "presets [name]",
		Short: "list built-in event presets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				cfg, err := config.LoadPreset(args[0])
				if err != nil {
					return err
				}
				if dump {
					return yaml.NewEncoder(out).Encode(cfg)
				}
				return runScenario(out, o.renderer(), cfg)
			}
			for _, name := range config.ListPresets() {
				fmt.Fprintf(out, "  %-10s %s\n", name, config.Presets[name].Kind)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dump, "yaml", false, "print the preset as a scenario file")
	return cmd
}

func (o *options) export(cmd *cobra.Command, tbl *storage.Table) error {
	if o.exportTo == "" {
		return nil
	}
	if o.exportTo == "-" {
		return storage.WriteJSON(cmd.OutOrStdout(), tbl)
	}
	if err := storage.Export(o.exportTo, tbl); err != nil {
		return err
	}
	o.logger.Info("exported sweep", "path", o.exportTo, "rows", len(tbl.Rows))
	return nil
}

// applySweepScenario fills flags the user did not set from --preset or
// --config. Explicit flags always win.
func (o *options) applySweepScenario(cmd *cobra.Command) error {
	if o.configFile == "" && o.preset == "" {
		return nil
	}
	cfg, err := o.loadScenario(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	unset := func(name string) bool {
		f := flags.Lookup(name)
		return f != nil && !f.Changed
	}
	floats := []struct {
		flag string
		dst  *float64
		v    float64
	}{
		{"mbh", &o.mBH, cfg.NSBH.MassBH},
		{"mns", &o.mNS, cfg.NSBH.MassNS},
		{"rns", &o.rNS, cfg.NSBH.RadiusNS},
		{"mtov", &o.mTOV, cfg.BNS.MassTOV},
		{"ejecta", &o.ejecta, cfg.BNS.EjectaMass},
	}
	for _, f := range floats {
		if unset(f.flag) {
			*f.dst = f.v
		}
	}
	if unset("orbit") {
		o.orbit = cfg.NSBH.Orbit
	}
	if unset("points") {
		o.points = cfg.Sweep.Points
	}
	o.logger.Debug("sweep scenario applied", "name", cfg.Name, "points", o.points)
	return nil
}

func newSweepCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "evaluate parameter grids",
	}
	cmd.PersistentFlags().IntVarP(&o.points, "points", "n", 101, "grid points per axis")
	cmd.PersistentFlags().StringVar(&o.configFile, "config", "", "scenario file (yaml) supplying unset flags")
	cmd.PersistentFlags().StringVar(&o.preset, "preset", "", "built-in event preset supplying unset flags")
	cmd.PersistentFlags().StringVarP(&o.exportTo, "output", "o", "", "export table (.csv, .json, or - for JSON on stdout)")

	spinCmd := &cobra.Command{
		Use:   "spin",
		Short: "r_isco and r_disruption across spin [0, 1]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.applySweepScenario(cmd); err != nil {
				return err
			}
			p := sweep.NSBHParams{MassBH: o.mBH, MassNS: o.mNS, RadiusNS: o.rNS, Orbit: o.orbit}
			points, err := sweep.New(o.logger).Spin(cmd.Context(), p, o.points)
			if err != nil {
				return err
			}
			if o.plot {
				fmt.Fprintln(cmd.OutOrStdout(), viz.PlotSpinSweep(points, o.width, o.height, !o.noColor))
			}
			if crit, ok, err := sweep.CriticalSpin(p); err == nil && ok {
				fmt.Fprintf(cmd.OutOrStdout(), "critical spin (%s): %.6f\n", o.orbit, crit)
			}
			return o.export(cmd, storage.SpinTable(p, points))
		},
	}
	addNSBHFlags(spinCmd, o)
	spinCmd.Flags().BoolVar(&o.plot, "plot", true, "plot the sweep")
	spinCmd.Flags().IntVar(&o.width, "width", 70, "plot width")
	spinCmd.Flags().IntVar(&o.height, "height", 15, "plot height")

	bnsCmd := &cobra.Command{
		Use:   "bns",
		Short: "collapse map over an m1 x m2 grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.applySweepScenario(cmd); err != nil {
				return err
			}
			p := sweep.BNSParams{MassTOV: o.mTOV, EjectaMass: o.ejecta, MinMass: o.minMass, MaxMass: o.maxMass}
			points, err := sweep.New(o.logger).BNS(cmd.Context(), p, o.points)
			if err != nil {
				return err
			}
			if o.plot {
				fmt.Fprint(cmd.OutOrStdout(), viz.CollapseMap(points, o.points))
			}
			return o.export(cmd, storage.BNSTable(p, points))
		},
	}
	bnsCmd.Flags().Float64Var(&o.mTOV, "mtov", config.DefaultMassTOV, "maximum non-rotating NS mass (M_sun)")
	bnsCmd.Flags().Float64Var(&o.ejecta, "ejecta", astro.DefaultEjectaMass, "ejected rest mass (M_sun)")
	bnsCmd.Flags().Float64Var(&o.minMass, "min", 1.0, "minimum component mass (M_sun)")
	bnsCmd.Flags().Float64Var(&o.maxMass, "max", 2.2, "maximum component mass (M_sun)")
	bnsCmd.Flags().BoolVar(&o.plot, "plot", true, "draw the collapse map")

	cmd.AddCommand(spinCmd, bnsCmd)
	return cmd
}

func newCriticalSpinCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "critical-spin",
		Short: "spin at which an NSBH system starts or stops disrupting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := sweep.NSBHParams{MassBH: o.mBH, MassNS: o.mNS, RadiusNS: o.rNS, Orbit: o.orbit}
			spin, ok, err := sweep.CriticalSpin(p)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !ok {
				disrupted, _ := astro.NSBHDisruption(o.mBH, o.mNS, o.rNS, 0, o.orbit)
				state := "never disrupts"
				if disrupted {
					state = "always disrupts"
				}
				fmt.Fprintf(out, "no critical spin in [0, 1]: %s\n", state)
				return nil
			}
			fmt.Fprintf(out, "%.6f\n", spin)
			return nil
		},
	}
	addNSBHFlags(cmd, o)
	return cmd
}

func newExploreCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive parameter explorer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.loadScenario(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg, o.renderer().Theme())
		},
	}
	cmd.Flags().StringVar(&o.configFile, "config", "", "scenario file (yaml)")
	cmd.Flags().StringVar(&o.preset, "preset", "", "built-in event preset")
	cmd.Flags().BoolVar(&o.strict, "strict", false, "start in strict mode")
	return cmd
}

func themeNames() string {
	names := make([]string, len(viz.AllThemes))
	for i, t := range viz.AllThemes {
		names[i] = t.Name
	}
	return strings.Join(names, ", ")
}
