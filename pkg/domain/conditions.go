package domain

// Epsilon is the sentinel condition of a transition that can be traversed
// without consuming an input symbol.
const Epsilon = "ε"

// ConditionSet is the set of input symbols that enable a transition.
// Insertion order is preserved; membership is what matters for resolution.
type ConditionSet []string

// NewConditionSet builds a condition set from one or more symbols.
func NewConditionSet(symbols ...string) ConditionSet {
	return ConditionSet(symbols)
}

// Contains reports whether the set enables the given input symbol.
func (c ConditionSet) Contains(symbol string) bool {
	for _, s := range c {
		if s == symbol {
			return true
		}
	}
	return false
}

// IsEpsilon reports whether the set is the epsilon sentinel, i.e. the
// transition requires no input symbol.
func (c ConditionSet) IsEpsilon() bool {
	return len(c) == 1 && c[0] == Epsilon
}
