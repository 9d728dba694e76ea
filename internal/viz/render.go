package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/growthlab/internal/analysis"
	"github.com/san-kum/growthlab/internal/growth"
)

// RenderSolution lays out a model's equation, exact solution, transform
// and derivation steps in a panel.
func RenderSolution(sol *growth.Solution) string {
	var b strings.Builder
	b.WriteString(Title.Render(strings.ToUpper(sol.Model)+" GROWTH") + "\n\n")

	section := func(name, body string) {
		b.WriteString(MetricLabel.Render(name) + "\n")
		b.WriteString("  " + Formula.Render(body) + "\n\n")
	}

	section("differential equation", sol.Equation.String())
	section("solution", sol.ClosedForm.String())
	if sol.Transform != nil {
		section("laplace transform", sol.Transform.String())
	}
	if len(sol.Derivation) > 0 {
		b.WriteString(MetricLabel.Render("linearisation by substitution") + "\n")
		for i, step := range sol.Derivation {
			b.WriteString(fmt.Sprintf("  %s %s\n", Subtle.Render(fmt.Sprintf("%d.", i+1)), Formula.Render(step.String())))
		}
		if sol.Linearization != nil {
			b.WriteString("  " + Formula.Render(sol.Linearization.String()) + "\n")
		}
	}

	return Panel.Render(strings.TrimRight(b.String(), "\n"))
}

// RenderSummary prints the landmarks of a trajectory as label/value rows.
func RenderSummary(s analysis.Summary) string {
	rows := [][2]string{
		{"initial", fmt.Sprintf("%.2f", s.Initial)},
		{"final", fmt.Sprintf("%.2f", s.Final)},
		{"peak", fmt.Sprintf("%.2f", s.Peak)},
		{"trend", s.Trend},
	}
	if s.DoublingTime > 0 {
		rows = append(rows, [2]string{"doubling time", fmt.Sprintf("%.3f", s.DoublingTime)})
	}
	if s.CapacityCrossing != nil {
		rows = append(rows, [2]string{"reaches K at", fmt.Sprintf("t = %.3f", *s.CapacityCrossing)})
	}
	if s.Model == growth.Logistic.String() {
		if s.Saturated {
			rows = append(rows, [2]string{"start", "at or above K, no growth phase"})
		}
		rows = append(rows, [2]string{"gap to K", fmt.Sprintf("%.2f (%.2f%%)", s.CapacityGap, 100*s.RelativeGap)})
		if s.Inflection != nil {
			note := ""
			if !s.InflectionHit {
				note = " (beyond horizon)"
			}
			rows = append(rows, [2]string{"inflection", fmt.Sprintf("t = %.3f, N = %.2f%s", s.Inflection.T, s.Inflection.N, note)})
		}
	}

	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = MetricLabel.Render(fmt.Sprintf("%-14s", r[0])) + MetricValue.Render(r[1])
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderParams prints the parameter set the way the dashboard labels it.
func RenderParams(p growth.Params) string {
	return fmt.Sprintf("%s %s  %s %s  %s %s  %s %s",
		MetricLabel.Render("r"), MetricValue.Render(fmt.Sprintf("%.2f", p.GrowthRate)),
		MetricLabel.Render("K"), MetricValue.Render(fmt.Sprintf("%g", p.CarryingCapacity)),
		MetricLabel.Render("N₀"), MetricValue.Render(fmt.Sprintf("%g", p.InitialPopulation)),
		MetricLabel.Render("t"), MetricValue.Render(fmt.Sprintf("%g", p.TimeHorizon)),
	)
}

// RenderTheory recaps the general form of each model and where they apply.
func RenderTheory(theories []growth.Theory, apps []growth.Application) string {
	var b strings.Builder
	b.WriteString(Title.Render("THEORY") + "\n")

	for _, th := range theories {
		b.WriteString("\n" + Selected.Render(th.Model+" growth") + "\n")
		b.WriteString("  " + Subtle.Render(th.Summary) + "\n")
		b.WriteString(fmt.Sprintf("  %s %s\n", MetricLabel.Render(fmt.Sprintf("%-14s", "equation")), Formula.Render(th.Equation.String())))
		b.WriteString(fmt.Sprintf("  %s %s\n", MetricLabel.Render(fmt.Sprintf("%-14s", "solution")), Formula.Render(th.ClosedForm.String())))
		if th.Transform != nil {
			b.WriteString(fmt.Sprintf("  %s %s\n", MetricLabel.Render(fmt.Sprintf("%-14s", "laplace")), Formula.Render(th.Transform.String())))
		}
		if th.Linearization != nil {
			b.WriteString(fmt.Sprintf("  %s %s\n", MetricLabel.Render(fmt.Sprintf("%-14s", "linearisation")), Formula.Render(th.Linearization.String())))
		}
	}

	b.WriteString("\n" + Selected.Render("applications") + "\n")
	for _, app := range apps {
		b.WriteString(fmt.Sprintf("  %s %s\n", MetricLabel.Render(fmt.Sprintf("%-14s", app.Field)), MetricValue.Render(app.Examples)))
	}

	return Panel.Render(strings.TrimRight(b.String(), "\n"))
}
