package identify

import "github.com/blackwell-systems/floractl/internal/catalog"

// Wizard steps.
const (
	StepType = iota + 1
	StepSeason
	StepHabitat
	StepFeatures
	StepResults
)

// Wizard drives the guided identification flow. Every method returns a new
// value; the zero Wizard is not valid, use NewWizard.
type Wizard struct {
	Step       int
	Selections Selections
}

// NewWizard returns a wizard on the first step with nothing selected.
func NewWizard() Wizard {
	return Wizard{Step: StepType}
}

// Choose applies value to the current step. On the features step it toggles
// the feature. The results step ignores it.
func (w Wizard) Choose(value string) Wizard {
	switch w.Step {
	case StepType:
		w.Selections = w.Selections.WithType(value)
	case StepSeason:
		w.Selections = w.Selections.WithSeason(value)
	case StepHabitat:
		w.Selections = w.Selections.WithHabitat(value)
	case StepFeatures:
		w.Selections = w.Selections.ToggleFeature(value)
	}
	return w
}

// StepComplete reports whether the current step has the input it needs.
func (w Wizard) StepComplete() bool {
	switch w.Step {
	case StepType:
		return w.Selections.Type != ""
	case StepSeason:
		return w.Selections.Season != ""
	case StepHabitat:
		return w.Selections.Habitat != ""
	case StepFeatures:
		return len(w.Selections.Features) > 0
	case StepResults:
		return true
	}
	return false
}

// Next advances one step if the current one is complete.
func (w Wizard) Next() Wizard {
	if w.Step < StepResults && w.StepComplete() {
		w.Step++
	}
	return w
}

// Prev goes back one step, keeping selections.
func (w Wizard) Prev() Wizard {
	if w.Step > StepType {
		w.Step--
	}
	return w
}

// Reset clears all selections and returns to the first step.
func (w Wizard) Reset() Wizard {
	return NewWizard()
}

// Done reports whether the wizard is showing results.
func (w Wizard) Done() bool {
	return w.Step == StepResults
}

// Progress returns the progress bar fill in percent.
func (w Wizard) Progress() int {
	step := w.Step
	if step < StepType {
		step = StepType
	}
	if step > StepResults {
		step = StepResults
	}
	return (step - 1) * 25
}

// Results runs the identification for the current selections.
func (w Wizard) Results(plants []catalog.Plant) []MatchResult {
	return Identify(plants, w.Selections)
}
