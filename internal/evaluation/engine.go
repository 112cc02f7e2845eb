package evaluation

import (
	"fmt"

	api "github.com/voltcheck/voltcheck/api/v1alpha1"
)

// Engine orchestrates Calculator objects and aggregates their outcomes
type Engine struct {
	calculators []Calculator
}

// NewEngine creates a new Engine with no calculators registered.
func NewEngine() *Engine {
	return &Engine{
		calculators: make([]Calculator, 0),
	}
}

// Register adds a Calculator to the engine.
// Calculators are executed in the order they are registered.
// Register panics if a calculator with the same Name() is already registered,
// as duplicate names would silently overwrite results in Run.
func (e *Engine) Register(c Calculator) {
	for _, existing := range e.calculators {
		if existing.Name() == c.Name() {
			panic(fmt.Sprintf("evaluation: calculator %q already registered", c.Name()))
		}
	}
	e.calculators = append(e.calculators, c)
}

// Names returns the registered calculator names in execution order.
func (e *Engine) Names() []string {
	names := make([]string, 0, len(e.calculators))
	for _, c := range e.calculators {
		names = append(names, c.Name())
	}
	return names
}

// Run executes every calculator supporting reportType against data, which is updated in place.
// A failing calculator does not stop the others; its error is reported in the outcome reason.
func (e *Engine) Run(reportType api.ReportType, data *api.ReportData) map[string]Outcome {
	results := make(map[string]Outcome)
	for _, calc := range e.calculators {
		if !calc.Supports(reportType) {
			continue
		}
		outcome, err := calc.Calculate(data)
		if err != nil {
			results[calc.Name()] = Outcome{
				Fields: 0,
				Reason: fmt.Sprintf("Error: %v", err),
			}
			continue
		}
		results[calc.Name()] = outcome
	}
	return results
}
