package fd

import "context"

type Outcome int

const (
	// Satisfied means the backend found a full assignment meeting every clause.
	Satisfied Outcome = iota
	// Infeasible means the backend proved no satisfying assignment exists.
	Infeasible
	// Unknown means the backend ran out of budget (steps, deadline or
	// cancellation) before proving either satisfiability or infeasibility.
	Unknown
)

// Solver is a finite-domain constraint solving backend. Implementations must
// return Satisfied together with a complete Solution, Infeasible with a nil
// Solution, or Unknown with a nil Solution when the budget carried by ctx or
// the backend's own step bound is exhausted. Unknown must never be collapsed
// into Infeasible.
type Solver interface {
	Solve(ctx context.Context, model *Model) (Solution, Outcome, error)
}
