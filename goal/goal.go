// Package goal holds savings-goal and budget progress math shared by
// the savings and spending views.
package goal

import (
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Goal is a savings target the user contributes toward.
type Goal struct {
	ID                  string
	Name                string
	Target              float64
	Current             float64
	Deadline            time.Time
	MonthlyContribution float64
	Priority            string
	Category            string
}

// Progress is the derived state of a goal.
type Progress struct {
	// Percentage is current/target*100, deliberately not clamped:
	// values over 100 mean the goal is exceeded and views report the
	// true number even when a progress bar caps its fill.
	Percentage float64
	// Remaining is target-current, signed. Negative means exceeded.
	Remaining float64
	// Exceeded is true once current passes target.
	Exceeded bool
	// MonthsToGoal is ceil(remaining/contribution). Only meaningful
	// when HasContribution is true.
	MonthsToGoal int
	// HasContribution is false when no monthly contribution is set,
	// in which case months-to-goal is undefined.
	HasContribution bool
}

// Progress derives the goal's progress. Degenerate inputs (zero
// target, zero contribution) resolve to defined values, never a
// division by zero.
func (g Goal) Progress() Progress {
	p := Progress{
		Remaining:       g.Target - g.Current,
		HasContribution: g.MonthlyContribution > 0,
	}
	p.Exceeded = p.Remaining < 0

	if g.Target > 0 {
		p.Percentage = g.Current / g.Target * 100
	}

	if p.HasContribution {
		toSave := math.Max(p.Remaining, 0)
		p.MonthsToGoal = int(math.Ceil(toSave / g.MonthlyContribution))
	}

	return p
}

// BudgetFor returns the budget for a category's spend. A user-set
// budget wins; otherwise the spend-times-1.2 heuristic applies and the
// second return flags the value as derived.
func BudgetFor(userBudget, spend float64) (budget float64, derived bool) {
	if userBudget > 0 {
		return userBudget, false
	}
	return spend * 1.2, true
}

// Store is an immutable-append goal container. Mutating methods return
// the updated list instead of touching shared state, so a view holds
// exactly the list it was handed.
type Store struct {
	goals []Goal
}

// NewStore seeds a store with initial goals.
func NewStore(goals ...Goal) *Store {
	return &Store{goals: slices.Clone(goals)}
}

// Goals returns a copy of the current goal list.
func (s *Store) Goals() []Goal {
	return slices.Clone(s.goals)
}

// Add appends a goal, assigning an ID when missing, and returns the
// new list.
func (s *Store) Add(g Goal) []Goal {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	s.goals = append(slices.Clone(s.goals), g)
	return s.Goals()
}

// Remove deletes the goal with the given ID and returns the new list.
func (s *Store) Remove(id string) []Goal {
	s.goals = slices.DeleteFunc(slices.Clone(s.goals), func(g Goal) bool {
		return g.ID == id
	})
	return s.Goals()
}
