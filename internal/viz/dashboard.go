package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/san-kum/growthlab/internal/analysis"
	"github.com/san-kum/growthlab/internal/config"
	"github.com/san-kum/growthlab/internal/growth"
	"github.com/san-kum/growthlab/internal/logging"
)

type view int

const (
	viewExponential view = iota
	viewLogistic
	viewComparison
	viewTheory
)

var viewNames = []string{"exponential", "logistic", "comparison", "theory"}

// Dashboard is the slider front end. It owns the current parameter set and
// re-evaluates both models whenever a slider moves.
type Dashboard struct {
	params  growth.Params
	samples int
	sliders []config.Range
	cursor  int
	view    view
	err     error
	log     *zap.Logger

	width, height int

	exp, logistic  *growth.Trajectory
	expSol, logSol *growth.Solution
	comparison     *growth.Comparison
}

// NewDashboard starts from cfg, falling back to the defaults when cfg does
// not hold a valid parameter set.
func NewDashboard(cfg *config.Config, log *zap.Logger) Dashboard {
	d := Dashboard{
		samples: cfg.Samples,
		sliders: config.Ranges(),
		width:   100,
		height:  30,
		log:     logging.OrNop(log),
	}
	if d.samples < 2 {
		d.samples = growth.DefaultSamples
	}
	if kinds, err := cfg.Kinds(); err == nil && len(kinds) == 1 && kinds[0] == growth.Logistic {
		d.view = viewLogistic
	}

	p, err := cfg.Params()
	if err != nil {
		d.err = err
		p, _ = config.DefaultConfig().Params()
	}
	d.params = p
	d.evaluate()
	return d
}

// Params returns the parameter set currently shown.
func (d Dashboard) Params() growth.Params { return d.params }

// Err returns the last rejected change, if any.
func (d Dashboard) Err() error { return d.err }

func (d Dashboard) Init() tea.Cmd { return nil }

func (d Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width, d.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return d, tea.Quit
		case "up", "k":
			if d.cursor > 0 {
				d.cursor--
			}
		case "down", "j":
			if d.cursor < len(d.sliders)-1 {
				d.cursor++
			}
		case "left", "h":
			d.nudge(-1)
		case "right", "l":
			d.nudge(1)
		case "H":
			d.nudge(-5)
		case "L":
			d.nudge(5)
		case "tab":
			d.view = (d.view + 1) % view(len(viewNames))
		case "shift+tab":
			d.view = (d.view + view(len(viewNames)) - 1) % view(len(viewNames))
		case "r":
			p, _ := config.DefaultConfig().Params()
			d.apply(p)
		}
	}
	return d, nil
}

func (d *Dashboard) nudge(steps int) {
	p := d.params
	r := d.sliders[d.cursor]
	switch d.cursor {
	case 0:
		p.GrowthRate = r.Nudge(p.GrowthRate, steps)
	case 1:
		p.CarryingCapacity = r.Nudge(p.CarryingCapacity, steps)
	case 2:
		p.InitialPopulation = r.Nudge(p.InitialPopulation, steps)
	case 3:
		p.TimeHorizon = r.Nudge(p.TimeHorizon, steps)
	}
	d.apply(p)
}

// apply validates candidate and recomputes. A rejected candidate leaves
// the previous valid state on screen.
func (d *Dashboard) apply(candidate growth.Params) {
	p, err := growth.NewParams(candidate.GrowthRate, candidate.CarryingCapacity, candidate.InitialPopulation, candidate.TimeHorizon)
	if err != nil {
		d.err = err
		d.log.Warn("rejected parameter change", zap.Error(err))
		return
	}
	d.params, d.err = p, nil
	d.evaluate()
}

func (d *Dashboard) evaluate() {
	var err error
	if d.exp, d.expSol, err = growth.Evaluate(growth.Exponential, d.params, d.samples); err != nil {
		d.err = err
		return
	}
	if d.logistic, d.logSol, err = growth.Evaluate(growth.Logistic, d.params, d.samples); err != nil {
		d.err = err
		return
	}
	d.comparison = &growth.Comparison{
		Exponential:      d.exp,
		Logistic:         d.logistic,
		CarryingCapacity: d.params.CarryingCapacity,
	}
	d.log.Debug("evaluated models",
		zap.Float64("rate", d.params.GrowthRate),
		zap.Float64("capacity", d.params.CarryingCapacity),
		zap.Float64("initial", d.params.InitialPopulation),
		zap.Float64("horizon", d.params.TimeHorizon))
}

func (d Dashboard) View() string {
	var b strings.Builder
	b.WriteString("\n  " + Title.Render("POPULATION GROWTH MODELS") + "\n")
	b.WriteString("  " + Subtle.Render("exponential and logistic growth, updated as you move the sliders") + "\n\n")

	sidebar := d.viewSliders()
	var main string
	switch d.view {
	case viewExponential:
		main = lipgloss.JoinVertical(lipgloss.Left,
			RenderSolution(d.expSol),
			PlotTrajectory(growth.Exponential, d.exp, d.plotWidth(), d.plotHeight()),
			RenderSummary(analysis.Summarize(growth.Exponential, d.params, d.exp)))
	case viewLogistic:
		main = lipgloss.JoinVertical(lipgloss.Left,
			RenderSolution(d.logSol),
			PlotLogistic(d.logistic, d.params.CarryingCapacity, d.plotWidth(), d.plotHeight()),
			RenderSummary(analysis.Summarize(growth.Logistic, d.params, d.logistic)))
	case viewComparison:
		main = lipgloss.JoinVertical(lipgloss.Left,
			Title.Render("MODEL COMPARISON"),
			RenderParams(d.params),
			"",
			PlotComparison(d.comparison, d.plotWidth(), d.plotHeight()))
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", main))
	b.WriteString("\n\n  " + d.viewTabs() + "\n")
	if d.err != nil {
		b.WriteString("  " + ErrorText.Render(d.err.Error()) + "\n")
	}
	b.WriteString("  " + KeyHint.Render("j/k select  h/l adjust  H/L ×5  tab view  r reset  q quit") + "\n")
	return b.String()
}

func (d Dashboard) viewSliders() string {
	labels := []string{"growth rate r", "capacity K", "initial N₀", "time horizon t"}
	values := []float64{d.params.GrowthRate, d.params.CarryingCapacity, d.params.InitialPopulation, d.params.TimeHorizon}

	var b strings.Builder
	b.WriteString(Title.Render("PARAMETERS") + "\n\n")
	for i, r := range d.sliders {
		frac := (values[i] - r.Min) / (r.Max - r.Min)
		label := fmt.Sprintf("%-15s", labels[i])
		value := fmt.Sprintf("%8.2f", values[i])
		if i == d.cursor {
			b.WriteString(Selected.Render("▸ "+label) + MetricValue.Render(value) + "\n")
		} else {
			b.WriteString(Subtle.Render("  "+label) + Subtle.Render(value) + "\n")
		}
		b.WriteString("  " + SliderBar(frac, 20) + "\n\n")
	}
	b.WriteString(MetricLabel.Render("logistic ") + Sparkline(d.logistic.Values, 20))
	return Panel.Render(b.String())
}

func (d Dashboard) viewTabs() string {
	tabs := make([]string, len(viewNames))
	for i, name := range viewNames {
		if view(i) == d.view {
			tabs[i] = Selected.Render("[" + name + "]")
		} else {
			tabs[i] = Subtle.Render(" " + name + " ")
		}
	}
	return strings.Join(tabs, " ")
}

func (d Dashboard) plotWidth() int {
	return max(30, d.width-50)
}

func (d Dashboard) plotHeight() int {
	return max(8, min(15, d.height/3))
}

// RunInteractive opens the dashboard full screen.
func RunInteractive(cfg *config.Config, log *zap.Logger) error {
	_, err := tea.NewProgram(NewDashboard(cfg, log), tea.WithAltScreen()).Run()
	return err
}
