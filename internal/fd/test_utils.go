package fd

import "math/rand/v2"

// GenerateModel builds a random instance with the given number of variables,
// a shared domain [0, maxValue] and random disjunctive clauses of one or two
// atoms. Used by solver tests.
func GenerateModel(variables, maxValue, clauses int) *Model {
	model := NewModel()
	for range variables {
		model.NewVar(0, maxValue)
	}

	for range clauses {
		atoms := rand.IntN(2) + 1
		clause := make(Clause, 0, atoms)
		for range atoms {
			clause = append(clause, randomAtom(variables, maxValue))
		}
		model.Require(clause)
	}
	return model
}

func randomAtom(variables, maxValue int) Atom {
	x := Var(rand.IntN(variables))
	y := Var(rand.IntN(variables))
	for y == x {
		y = Var(rand.IntN(variables))
	}

	if rand.IntN(2) == 0 {
		return Neq(x, y)
	}
	return LeOffset(x, rand.IntN(maxValue)+1, y)
}

// AssertSolution reports whether the solution assigns every variable a value
// from its domain and satisfies at least one atom of every clause.
func AssertSolution(model *Model, solution Solution) bool {
	if len(solution) != model.Vars() {
		return false
	}
	for i, value := range solution {
		if !model.domains[i].has(value) {
			return false
		}
	}

	for _, clause := range model.clauses {
		satisfied := false
		for _, atom := range clause {
			if atomHolds(atom, solution) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}

func atomHolds(atom Atom, solution Solution) bool {
	switch atom.Kind {
	case NotEqual:
		return solution[atom.X] != solution[atom.Y]
	case OffsetLE:
		return solution[atom.X]+atom.K <= solution[atom.Y]
	}
	return false
}

// bruteForceSatisfiable enumerates every assignment. Only viable for tiny
// instances; used to cross-check solver outcomes.
func bruteForceSatisfiable(model *Model) bool {
	assignment := make(Solution, model.Vars())
	var enumerate func(variable int) bool
	enumerate = func(variable int) bool {
		if variable == model.Vars() {
			return AssertSolution(model, assignment)
		}
		for _, value := range model.domains[variable].values() {
			assignment[variable] = value
			if enumerate(variable + 1) {
				return true
			}
		}
		return false
	}
	return enumerate(0)
}
