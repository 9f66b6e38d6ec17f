package fd

import (
	"context"
)

const DefaultMaxSteps = 5_000_000

type backtrackSolver struct {
	maxSteps uint64
}

// NewBacktrackSolver returns the in-process backend: constraint propagation to
// fixpoint interleaved with depth-first search over the pruned domains. An
// exhausted step budget (or ctx deadline/cancellation) yields Unknown; a fully
// explored search tree without a solution yields Infeasible.
func NewBacktrackSolver(maxSteps uint64) Solver {
	if maxSteps == 0 {
		maxSteps = DefaultMaxSteps
	}
	return &backtrackSolver{maxSteps: maxSteps}
}

func (solver *backtrackSolver) Solve(ctx context.Context, model *Model) (Solution, Outcome, error) {
	if model.Vars() == 0 {
		return Solution{}, Satisfied, nil
	}

	for i := range model.domains {
		if model.domains[i].empty() {
			return nil, Infeasible, nil
		}
	}

	search := &searchState{
		clauses:  model.clauses,
		maxSteps: solver.maxSteps,
	}
	solution, outcome := search.run(ctx, cloneDomains(model.domains))
	return solution, outcome, nil
}

type searchState struct {
	clauses  []Clause
	steps    uint64
	maxSteps uint64
}

func (search *searchState) run(ctx context.Context, domains []domain) (Solution, Outcome) {
	if search.steps++; search.steps > search.maxSteps {
		return nil, Unknown
	}
	if ctx.Err() != nil {
		return nil, Unknown
	}

	if !propagate(domains, search.clauses) {
		return nil, Infeasible
	}

	variable := pickVariable(domains)
	if variable < 0 { // All variables are bound and no clause is violated
		solution := make(Solution, len(domains))
		for i := range domains {
			solution[i] = domains[i].min()
		}
		return solution, Satisfied
	}

	for _, value := range domains[variable].values() {
		child := cloneDomains(domains)
		child[variable].assign(value)

		solution, outcome := search.run(ctx, child)
		if outcome == Satisfied || outcome == Unknown {
			return solution, outcome
		}
	}

	return nil, Infeasible
}

// pickVariable selects the unbound variable with the smallest remaining
// domain, or -1 when every variable is bound.
func pickVariable(domains []domain) int {
	best, bestCount := -1, 0
	for i := range domains {
		count := domains[i].count()
		if count <= 1 {
			continue
		}
		if best < 0 || count < bestCount {
			best, bestCount = i, count
		}
	}
	return best
}

// propagate prunes domains to a fixpoint. Each clause with every atom
// falsified is a conflict; a clause whose single non-falsified atom is not yet
// guaranteed gets that atom enforced against the domains.
func propagate(domains []domain, clauses []Clause) bool {
	for changed := true; changed; {
		changed = false
		for _, clause := range clauses {
			open, openCount, guaranteed := Atom{}, 0, false
			for _, atom := range clause {
				if atomGuaranteed(domains, atom) {
					guaranteed = true
					break
				}
				if !atomFalsified(domains, atom) {
					open, openCount = atom, openCount+1
				}
			}

			if guaranteed {
				continue
			} else if openCount == 0 {
				return false
			} else if openCount == 1 {
				pruned, ok := enforce(domains, open)
				if !ok {
					return false
				}
				changed = changed || pruned
			}
		}
	}
	return true
}

// atomGuaranteed reports whether the atom holds under every remaining
// completion of the domains.
func atomGuaranteed(domains []domain, atom Atom) bool {
	x, y := &domains[atom.X], &domains[atom.Y]
	switch atom.Kind {
	case NotEqual:
		return disjoint(x, y)
	case OffsetLE:
		return x.max()+atom.K <= y.min()
	}
	return false
}

// atomFalsified reports whether no remaining completion can satisfy the atom.
func atomFalsified(domains []domain, atom Atom) bool {
	x, y := &domains[atom.X], &domains[atom.Y]
	switch atom.Kind {
	case NotEqual:
		return x.singleton() && y.singleton() && x.min() == y.min()
	case OffsetLE:
		return x.min()+atom.K > y.max()
	}
	return false
}

// enforce prunes the domains so the atom must hold. Reports whether any value
// was removed and whether both domains survived.
func enforce(domains []domain, atom Atom) (pruned, ok bool) {
	x, y := &domains[atom.X], &domains[atom.Y]
	before := x.count() + y.count()

	switch atom.Kind {
	case NotEqual:
		if x.singleton() {
			y.remove(x.min())
		}
		if y.singleton() {
			x.remove(y.min())
		}
	case OffsetLE:
		y.removeBelow(x.min() + atom.K)
		x.removeAbove(y.max() - atom.K)
	}

	return x.count()+y.count() < before, !x.empty() && !y.empty()
}

func disjoint(x, y *domain) bool {
	words := len(x.words)
	if len(y.words) < words {
		words = len(y.words)
	}
	for i := 0; i < words; i++ {
		if x.words[i]&y.words[i] != 0 {
			return false
		}
	}
	return true
}
