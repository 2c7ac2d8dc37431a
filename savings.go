package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/pluto-fi/plutotui/goal"
)

const (
	goalNameKey         = "name"
	goalTargetKey       = "target"
	goalCurrentKey      = "current"
	goalContributionKey = "contribution"
	goalPriorityKey     = "priority"
)

func (m model) savingsView() string {
	if m.addGoalForm != nil {
		return m.addGoalForm.View()
	}

	goals := m.goals.Goals()
	if len(goals) == 0 {
		return m.styles.statusStyle.Render("no goals yet, press a to add one")
	}

	sections := make([]string, 0, len(goals)+1)
	for _, g := range goals {
		sections = append(sections, m.goalCard(g))
	}
	sections = append(sections, m.styles.statusStyle.Render("a add goal"))

	return strings.Join(sections, "\n\n")
}

func (m model) goalCard(g goal.Goal) string {
	p := g.Progress()

	bar := progress.New(
		progress.WithSolidFill(string(m.theme.Primary)),
		progress.WithWidth(barChartWidth),
	)

	// the bar caps at full, the text reports the true percentage
	fill := p.Percentage / 100
	if fill > 1 {
		fill = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", m.styles.titleStyle.Render(g.Name), g.Priority)
	b.WriteString(bar.ViewAs(fill))
	fmt.Fprintf(&b, " %.1f%%\n", p.Percentage)

	switch {
	case p.Exceeded:
		fmt.Fprintf(&b, "%s over target by %s",
			m.styles.incomeStyle.Render("goal exceeded!"),
			displayMoney(-p.Remaining),
		)
	case p.HasContribution:
		fmt.Fprintf(&b, "%s to go, about %d months at %s/month",
			displayMoney(p.Remaining),
			p.MonthsToGoal,
			displayMoney(g.MonthlyContribution),
		)
	default:
		fmt.Fprintf(&b, "%s to go", displayMoney(p.Remaining))
	}

	if !g.Deadline.IsZero() {
		fmt.Fprintf(&b, "\n%s", m.styles.statusStyle.Render("by "+g.Deadline.Format("Jan 2, 2006")))
	}

	return m.styles.cardStyle.Render(b.String())
}

func newAddGoalForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key(goalNameKey).
				Title("Goal name").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Key(goalTargetKey).
				Title("Target amount").
				Validate(validateAmount),
			huh.NewInput().
				Key(goalCurrentKey).
				Title("Saved so far").
				Validate(validateAmount),
			huh.NewInput().
				Key(goalContributionKey).
				Title("Monthly contribution (optional)"),
			huh.NewSelect[string]().
				Key(goalPriorityKey).
				Title("Priority").
				Options(
					huh.NewOption("high", "high"),
					huh.NewOption("medium", "medium"),
					huh.NewOption("low", "low"),
				),
		),
	)
}

func validateAmount(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return errors.New("enter a number")
	}
	if v < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

// submitGoal adds the completed form's goal to the store.
func (m *model) submitGoal(form *huh.Form) tea.Cmd {
	target, _ := strconv.ParseFloat(strings.TrimSpace(form.GetString(goalTargetKey)), 64)
	current, _ := strconv.ParseFloat(strings.TrimSpace(form.GetString(goalCurrentKey)), 64)
	contribution, _ := strconv.ParseFloat(strings.TrimSpace(form.GetString(goalContributionKey)), 64)

	m.goals.Add(goal.Goal{
		Name:                strings.TrimSpace(form.GetString(goalNameKey)),
		Target:              target,
		Current:             current,
		MonthlyContribution: contribution,
		Priority:            form.GetString(goalPriorityKey),
	})

	return func() tea.Msg { return goalAddedMsg{} }
}
