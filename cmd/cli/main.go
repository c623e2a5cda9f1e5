package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"capm-calculator/internal/capm"
	"capm-calculator/internal/chart"
	"capm-calculator/internal/config"
	"capm-calculator/internal/logging"
	"capm-calculator/internal/model"

	"github.com/sirupsen/logrus"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "solve":
		err = cmdSolve(os.Args[2:])
	case "sml":
		err = cmdSML(os.Args[2:])
	case "chart":
		err = cmdChart(os.Args[2:])
	case "compare":
		err = cmdCompare(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli solve   --unknown expected_return --rf 2 --beta 1 --rm 8")
	fmt.Println("  cli sml     --rf 2 --rm 8 --out results/sml.csv")
	fmt.Println("  cli chart   --unknown beta --rf 2 --rm 8 --er 5 --out results/sml.png --comparison results/comparison.png")
	fmt.Println("  cli compare --unknown expected_return --rf 2 --beta 1 --rm 8")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - rates are in percent, beta is a plain number")
	fmt.Println("  - the --unknown quantity is ignored if also given; others default to the form defaults")
	fmt.Println("  - --config loads a YAML config for defaults and chart settings")
}

// form holds the flags shared by every subcommand that takes calculator inputs.
type form struct {
	cfgPath  string
	unknown  string
	rf       float64
	beta     float64
	rm       float64
	er       float64
	logLevel string
}

func (f *form) register(fs *flag.FlagSet, d config.FormDefaults) {
	fs.StringVar(&f.cfgPath, "config", "", "Optional path to YAML config")
	fs.StringVar(&f.unknown, "unknown", string(model.QuantityExpectedReturn), "Quantity to solve for: risk_free_rate|beta|market_return|expected_return")
	fs.Float64Var(&f.rf, "rf", d.RiskFreeRatePct, "Risk-free rate in %")
	fs.Float64Var(&f.beta, "beta", d.Beta, "Beta")
	fs.Float64Var(&f.rm, "rm", d.MarketReturnPct, "Expected market return in %")
	fs.Float64Var(&f.er, "er", d.ExpectedReturnPct, "Expected return in %")
	fs.StringVar(&f.logLevel, "log-level", "warn", "Log level")
}

// parse loads config (which may change defaults) and re-parses so explicit flags win.
func (f *form) parse(fs *flag.FlagSet, args []string) (*config.Config, *logrus.Logger, error) {
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(f.cfgPath)
	if err != nil {
		return nil, nil, err
	}
	if f.cfgPath != "" {
		explicit := map[string]bool{}
		fs.Visit(func(fl *flag.Flag) { explicit[fl.Name] = true })
		if !explicit["rf"] {
			f.rf = cfg.Defaults.RiskFreeRatePct
		}
		if !explicit["beta"] {
			f.beta = cfg.Defaults.Beta
		}
		if !explicit["rm"] {
			f.rm = cfg.Defaults.MarketReturnPct
		}
		if !explicit["er"] {
			f.er = cfg.Defaults.ExpectedReturnPct
		}
	}
	return cfg, logging.New(f.logLevel, os.Stderr), nil
}

// validate applies the form's minimum of 0 to every input flag.
func (f *form) validate() error {
	for _, v := range []struct {
		name string
		x    float64
	}{{"rf", f.rf}, {"beta", f.beta}, {"rm", f.rm}, {"er", f.er}} {
		if v.x < 0 {
			return fmt.Errorf("--%s must be >= 0", v.name)
		}
	}
	return nil
}

func (f *form) inputs() (model.CapmInputs, model.Quantity, error) {
	unknown, err := model.ParseQuantity(f.unknown)
	if err != nil {
		return model.CapmInputs{}, "", err
	}
	if err := f.validate(); err != nil {
		return model.CapmInputs{}, "", err
	}
	in := model.CapmInputs{
		RiskFreeRate:   model.Present(f.rf / 100),
		Beta:           model.Present(f.beta),
		MarketReturn:   model.Present(f.rm / 100),
		ExpectedReturn: model.Present(f.er / 100),
	}
	return in.With(unknown, model.Absent()), unknown, nil
}

func cmdSolve(args []string) error {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	var f form
	f.register(fs, config.Default().Defaults)
	if _, _, err := f.parse(fs, args); err != nil {
		return err
	}
	in, _, err := f.inputs()
	if err != nil {
		return err
	}
	sol, err := capm.Solve(in)
	if err != nil {
		return fmt.Errorf("%s (%v)", capm.InvalidInputMessage, err)
	}
	fmt.Println(capm.ResultMessage(sol))
	return nil
}

func cmdSML(args []string) error {
	fs := flag.NewFlagSet("sml", flag.ExitOnError)
	var f form
	f.register(fs, config.Default().Defaults)
	samples := fs.Int("samples", 0, "Number of beta samples (0 = config default)")
	betaMax := fs.Float64("beta-max", 0, "Largest beta on the curve (0 = config default)")
	outPath := fs.String("out", "results/sml.csv", "Output CSV path ('-' for stdout)")
	cfg, _, err := f.parse(fs, args)
	if err != nil {
		return err
	}
	if err := f.validate(); err != nil {
		return err
	}
	opts := cfg.CurveOptions()
	if *samples > 0 {
		opts = append(opts, chart.WithSampleCount(*samples))
	}
	if *betaMax > 0 {
		opts = append(opts, chart.WithBetaMax(*betaMax))
	}

	curve, _ := chart.BuildSMLCurve(model.Present(f.rf/100), model.Present(f.rm/100), opts...)
	if *outPath == "-" {
		return chart.WriteCurveCSV(os.Stdout, curve)
	}
	if err := chart.WriteCurveCSVFile(*outPath, curve); err != nil {
		return err
	}
	fmt.Printf("Wrote %d points to %s\n", len(curve), *outPath)
	return nil
}

func cmdChart(args []string) error {
	fs := flag.NewFlagSet("chart", flag.ExitOnError)
	var f form
	f.register(fs, config.Default().Defaults)
	outPath := fs.String("out", "results/sml.png", "SML image path")
	comparisonPath := fs.String("comparison", "", "Optional comparison bar chart path")
	formatName := fs.String("format", "png", "Image format: png|svg")
	cfg, logger, err := f.parse(fs, args)
	if err != nil {
		return err
	}
	format, err := chart.ParseFormat(*formatName)
	if err != nil {
		return err
	}
	in, unknown, err := f.inputs()
	if err != nil {
		return err
	}
	opts := chart.RenderOptions{Format: format, Width: cfg.Chart.Width, Height: cfg.Chart.Height}

	solved := model.Absent()
	resolved := in
	sol, solveErr := capm.Solve(in)
	if solveErr != nil {
		logger.WithError(solveErr).Warn("calculation failed; charts are drawn without the asset")
		fmt.Fprintln(os.Stderr, capm.InvalidInputMessage)
	} else {
		resolved = capm.Resolve(in, sol)
		solved = model.Present(sol.Value)
		fmt.Println(capm.ResultMessage(sol))
	}

	curve, ok := chart.BuildSMLCurve(in.RiskFreeRate, in.MarketReturn, cfg.CurveOptions()...)
	if !ok {
		logger.WithField("unknown", unknown).Warn("risk-free rate or market return unknown; skipping SML chart")
	} else {
		var asset *chart.Point
		if solveErr == nil {
			if p, ok := chart.AssetPoint(resolved.Beta, resolved.ExpectedReturn); ok {
				asset = &p
			}
		}
		img, err := chart.RenderSML(curve, asset, opts)
		if err != nil {
			return err
		}
		if err := writeFile(*outPath, img); err != nil {
			return err
		}
		fmt.Printf("Wrote SML chart to %s\n", *outPath)
	}

	if *comparisonPath != "" {
		set := chart.BuildComparisonSet(in.RiskFreeRate, in.MarketReturn, solved)
		img, err := chart.RenderComparison(set, opts)
		if err != nil {
			return err
		}
		if err := writeFile(*comparisonPath, img); err != nil {
			return err
		}
		fmt.Printf("Wrote comparison chart to %s\n", *comparisonPath)
	}
	return nil
}

func cmdCompare(args []string) error {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	var f form
	f.register(fs, config.Default().Defaults)
	if _, _, err := f.parse(fs, args); err != nil {
		return err
	}
	in, _, err := f.inputs()
	if err != nil {
		return err
	}
	solved := model.Absent()
	if sol, err := capm.Solve(in); err == nil {
		solved = model.Present(sol.Value)
	}
	set := chart.BuildComparisonSet(in.RiskFreeRate, in.MarketReturn, solved)

	fmt.Printf("%-18s %10s\n", "input", "percent")
	for _, e := range set {
		fmt.Printf("%-18s %10s\n", e.Label, capm.FormatNumber(e.Value))
	}
	return nil
}

func writeFile(path string, b []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
