package fd

import "log"

// Var identifies a decision variable inside a Model.
type Var int

type AtomKind int

const (
	// NotEqual holds when X != Y.
	NotEqual AtomKind = iota
	// OffsetLE holds when X + K <= Y.
	OffsetLE
)

// Atom is a primitive condition over one or two variables.
type Atom struct {
	Kind AtomKind
	X    Var
	Y    Var
	K    int
}

// Clause is a disjunction of atoms: at least one atom must hold.
type Clause []Atom

// Solution maps each variable (by index) to its assigned value.
type Solution []int

// Model is a finite-domain constraint instance: integer variables with
// contiguous initial domains, unary exclusions and disjunctive clauses.
type Model struct {
	domains []domain
	clauses []Clause
}

func NewModel() *Model {
	return &Model{}
}

// NewVar declares a variable with domain [lo, hi] and returns its handle.
func (model *Model) NewVar(lo, hi int) Var {
	if lo < 0 || hi < lo {
		log.Panicf("invalid variable domain [%v, %v]", lo, hi)
	}
	model.domains = append(model.domains, newDomain(lo, hi))
	return Var(len(model.domains) - 1)
}

// Forbid removes a single value from a variable's domain.
func (model *Model) Forbid(variable Var, value int) {
	model.domains[int(variable)].remove(value)
}

// Require adds a disjunctive clause that every solution must satisfy.
func (model *Model) Require(clause Clause) {
	if len(clause) == 0 {
		log.Panicf("empty clause")
	}
	model.clauses = append(model.clauses, clause)
}

// Vars returns the number of declared variables.
func (model *Model) Vars() int {
	return len(model.domains)
}

// Clauses returns the number of added clauses.
func (model *Model) Clauses() int {
	return len(model.clauses)
}

func Neq(x, y Var) Atom {
	return Atom{Kind: NotEqual, X: x, Y: y}
}

func LeOffset(x Var, k int, y Var) Atom {
	return Atom{Kind: OffsetLE, X: x, Y: y, K: k}
}
