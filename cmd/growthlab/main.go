package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/growthlab/internal/analysis"
	"github.com/san-kum/growthlab/internal/config"
	"github.com/san-kum/growthlab/internal/export"
	"github.com/san-kum/growthlab/internal/growth"
	"github.com/san-kum/growthlab/internal/logging"
	"github.com/san-kum/growthlab/internal/scenario"
	"github.com/san-kum/growthlab/internal/viz"
)

const (
	plotWidth  = 70
	plotHeight = 15
)

// options holds the flag values shared by every command.
type options struct {
	rate       float64
	capacity   float64
	initial    float64
	horizon    float64
	samples    int
	configFile string
	preset     string
	verbose    bool

	log *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "growthlab",
		Short: "exponential and logistic population growth",
		Long: "growthlab evaluates the exponential and logistic growth models, prints their\n" +
			"closed-form solutions and plots the trajectories. Without a subcommand it\n" +
			"opens the slider dashboard.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := logging.New(opts.verbose)
			if err != nil {
				return fmt.Errorf("logger: %w", err)
			}
			opts.log = log.With(zap.String("command", cmd.Name()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.log != nil {
				_ = opts.log.Sync()
			}
		},
		RunE: opts.runDashboard,
	}

	pf := rootCmd.PersistentFlags()
	pf.Float64Var(&opts.rate, "rate", config.DefaultRate, "intrinsic growth rate r")
	pf.Float64Var(&opts.capacity, "capacity", config.DefaultCapacity, "carrying capacity K")
	pf.Float64Var(&opts.initial, "initial", config.DefaultInitial, "initial population N0")
	pf.Float64Var(&opts.horizon, "horizon", config.DefaultHorizon, "time horizon T")
	pf.IntVar(&opts.samples, "samples", config.DefaultSampleSize, "number of sample points")
	pf.StringVar(&opts.configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&opts.preset, "preset", "", "use preset configuration")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	evalCmd := &cobra.Command{
		Use:   "eval [model]",
		Short: "print a model's solution and trajectory summary",
		Args:  cobra.MaximumNArgs(1),
		RunE:  opts.runEval,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [model]",
		Short: "plot a model's trajectory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  opts.runPlot,
	}

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "overlay both models against the carrying capacity",
		Args:  cobra.NoArgs,
		RunE:  opts.runCompare,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [model|both]",
		Short: "write trajectories as CSV to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE:  opts.runExportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [model]",
		Short: "write a model evaluation, including its formula tree, as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  opts.runExportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [model|both]",
		Short: "write trajectories as an SVG chart to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE:  opts.runExportSVG,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "presets:")
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Fprintf(out, "  %-10s model=%s r=%g K=%g N0=%g T=%g\n",
					name, p.Model, p.GrowthRate, p.CarryingCapacity, p.InitialPopulation, p.TimeHorizon)
			}
			return nil
		},
	}

	theoryCmd := &cobra.Command{
		Use:   "theory",
		Short: "recap the general form of both models and where they apply",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), viz.RenderTheory(growth.Theories(), growth.Applications))
			return nil
		},
	}

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "evaluate every parameter set of a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE:  opts.runBatch,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive slider dashboard",
		Args:  cobra.NoArgs,
		RunE:  opts.runDashboard,
	}

	rootCmd.AddCommand(evalCmd, plotCmd, compareCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd, theoryCmd, batchCmd, tuiCmd)
	return rootCmd
}

// resolve merges defaults, preset, config file and explicitly set flags,
// in that order.
func (o *options) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if o.preset != "" {
		p := config.GetPreset(o.preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (available: %s)", o.preset, strings.Join(config.ListPresets(), ", "))
		}
		cfg = p
	}

	if o.configFile != "" {
		loaded, err := config.Load(o.configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("rate") {
		cfg.GrowthRate = o.rate
	}
	if flags.Changed("capacity") {
		cfg.CarryingCapacity = o.capacity
	}
	if flags.Changed("initial") {
		cfg.InitialPopulation = o.initial
	}
	if flags.Changed("horizon") {
		cfg.TimeHorizon = o.horizon
	}
	if flags.Changed("samples") {
		cfg.Samples = o.samples
	}

	o.logger().Debug("resolved parameters",
		zap.String("preset", o.preset),
		zap.String("config", o.configFile),
		zap.String("model", cfg.Model),
		zap.Float64("rate", cfg.GrowthRate),
		zap.Float64("capacity", cfg.CarryingCapacity),
		zap.Float64("initial", cfg.InitialPopulation),
		zap.Float64("horizon", cfg.TimeHorizon),
		zap.Int("samples", cfg.Samples))
	return cfg, nil
}

// params resolves the configuration and validates it as a parameter set.
func (o *options) params(cmd *cobra.Command) (*config.Config, growth.Params, error) {
	cfg, err := o.resolve(cmd)
	if err != nil {
		return nil, growth.Params{}, err
	}
	p, err := cfg.Params()
	if err != nil {
		o.logger().Warn("invalid parameters", zap.Error(err))
		return nil, growth.Params{}, err
	}
	return cfg, p, nil
}

func (o *options) logger() *zap.Logger {
	return logging.OrNop(o.log)
}

// kinds picks the models named by args, falling back to the config.
func kinds(cfg *config.Config, args []string) ([]growth.Kind, error) {
	if len(args) == 0 {
		return cfg.Kinds()
	}
	if args[0] == "both" {
		return growth.Kinds(), nil
	}
	k, err := growth.ParseKind(args[0])
	if err != nil {
		return nil, err
	}
	return []growth.Kind{k}, nil
}

func (o *options) runEval(cmd *cobra.Command, args []string) error {
	cfg, p, err := o.params(cmd)
	if err != nil {
		return err
	}
	ks, err := kinds(cfg, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.RenderParams(p))
	for _, k := range ks {
		traj, sol, err := growth.Evaluate(k, p, cfg.Samples)
		if err != nil {
			return fmt.Errorf("evaluate %s: %w", k, err)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, viz.RenderSolution(sol))
		fmt.Fprintln(out, viz.RenderSummary(analysis.Summarize(k, p, traj)))
	}
	return nil
}

func (o *options) runPlot(cmd *cobra.Command, args []string) error {
	cfg, p, err := o.params(cmd)
	if err != nil {
		return err
	}
	ks, err := kinds(cfg, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, k := range ks {
		traj, _, err := growth.Evaluate(k, p, cfg.Samples)
		if err != nil {
			return fmt.Errorf("evaluate %s: %w", k, err)
		}
		if k == growth.Logistic {
			fmt.Fprintln(out, viz.PlotLogistic(traj, p.CarryingCapacity, plotWidth, plotHeight))
		} else {
			fmt.Fprintln(out, viz.PlotTrajectory(k, traj, plotWidth, plotHeight))
		}
		fmt.Fprintln(out)
	}
	return nil
}

func (o *options) runCompare(cmd *cobra.Command, args []string) error {
	cfg, p, err := o.params(cmd)
	if err != nil {
		return err
	}
	cmp, err := growth.Compare(p, cfg.Samples)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.PlotComparison(cmp, plotWidth, plotHeight))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "K = %g\n", cmp.CarryingCapacity)
	fmt.Fprintf(out, "exponential N(%g) = %.2f\n", p.TimeHorizon, cmp.Exponential.Final().N)
	fmt.Fprintf(out, "logistic    N(%g) = %.2f\n", p.TimeHorizon, cmp.Logistic.Final().N)
	return nil
}

// series evaluates the models named by args as export columns.
func (o *options) series(cmd *cobra.Command, args []string) (growth.Params, []export.Series, error) {
	cfg, p, err := o.params(cmd)
	if err != nil {
		return p, nil, err
	}
	ks, err := kinds(cfg, args)
	if err != nil {
		return p, nil, err
	}

	series := make([]export.Series, 0, len(ks))
	for _, k := range ks {
		traj, _, err := growth.Evaluate(k, p, cfg.Samples)
		if err != nil {
			return p, nil, fmt.Errorf("evaluate %s: %w", k, err)
		}
		series = append(series, export.Series{Name: k.String(), Trajectory: traj})
	}
	return p, series, nil
}

func (o *options) runExportCSV(cmd *cobra.Command, args []string) error {
	_, series, err := o.series(cmd, args)
	if err != nil {
		return err
	}
	return export.WriteCSV(cmd.OutOrStdout(), series...)
}

func (o *options) runExportSVG(cmd *cobra.Command, args []string) error {
	p, series, err := o.series(cmd, args)
	if err != nil {
		return err
	}
	opts := export.SVGOptions{Width: 800, Height: 400}
	for _, s := range series {
		if s.Name == growth.Logistic.String() {
			opts.Capacity = p.CarryingCapacity
		}
	}
	return export.WriteSVG(cmd.OutOrStdout(), opts, series...)
}

func (o *options) runExportJSON(cmd *cobra.Command, args []string) error {
	cfg, p, err := o.params(cmd)
	if err != nil {
		return err
	}
	k, err := growth.ParseKind(args[0])
	if err != nil {
		return err
	}
	traj, sol, err := growth.Evaluate(k, p, cfg.Samples)
	if err != nil {
		return fmt.Errorf("evaluate %s: %w", k, err)
	}
	return export.WriteJSON(cmd.OutOrStdout(), k, p, traj, sol)
}

func (o *options) runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := o.resolve(cmd)
	if err != nil {
		return err
	}
	sc, err := scenario.Load(args[0])
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}

	o.logger().Info("running scenario", zap.String("name", sc.Name), zap.String("file", args[0]))
	outcomes, runErr := scenario.Run(cmd.Context(), sc, cfg.Samples, o.log)

	out := cmd.OutOrStdout()
	if sc.Name != "" {
		fmt.Fprintf(out, "scenario: %s\n", sc.Name)
	}
	if sc.Description != "" {
		fmt.Fprintf(out, "%s\n", sc.Description)
	}
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tR\tK\tN0\tT\tEXP N(T)\tLOG N(T)\tDOUBLING\tINFLECTION")
	for _, oc := range outcomes {
		inflection := "-"
		if oc.Logistic.Inflection != nil {
			inflection = fmt.Sprintf("%.3f", oc.Logistic.Inflection.T)
		}
		fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\t%.2f\t%.2f\t%.3f\t%s\n",
			oc.Step.Name,
			oc.Params.GrowthRate,
			oc.Params.CarryingCapacity,
			oc.Params.InitialPopulation,
			oc.Params.TimeHorizon,
			oc.Exponential.Final,
			oc.Logistic.Final,
			oc.Exponential.DoublingTime,
			inflection,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if runErr != nil {
		if errors.Is(runErr, growth.ErrInvalidParameter) {
			o.logger().Warn("scenario stopped at invalid step", zap.Error(runErr))
		}
		return runErr
	}
	return nil
}

func (o *options) runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := o.resolve(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		o.logger().Warn("configuration outside slider ranges", zap.Error(err))
	}
	return viz.RunInteractive(cfg, o.log)
}
