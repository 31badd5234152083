package endcondition

import "github.com/osmo-tool/gosmo/history"

// Endless never ends, at either level. Used for open-ended online runs; the
// caller must interrupt it externally (spec §4.C, §8 boundary property).
type Endless struct{}

// EndTest always returns false.
func (Endless) EndTest(*history.History) bool { return false }

// EndSuite always returns false.
func (Endless) EndSuite(*history.History) bool { return false }

// And is the conjunction of its sub-conditions: true at a level iff every
// sub-condition is true at that level.
type And struct {
	Conditions []EndCondition
}

// NewAnd builds an And of one or more conditions.
func NewAnd(conditions ...EndCondition) *And {
	return &And{Conditions: conditions}
}

// EndTest reports whether every sub-condition's EndTest is true.
func (a *And) EndTest(h *history.History) bool {
	for _, c := range a.Conditions {
		if !c.EndTest(h) {
			return false
		}
	}
	return len(a.Conditions) > 0
}

// EndSuite reports whether every sub-condition's EndSuite is true.
func (a *And) EndSuite(h *history.History) bool {
	for _, c := range a.Conditions {
		if !c.EndSuite(h) {
			return false
		}
	}
	return len(a.Conditions) > 0
}

// Or is the disjunction of its sub-conditions: true at a level iff any
// sub-condition is true at that level.
type Or struct {
	Conditions []EndCondition
}

// NewOr builds an Or of one or more conditions.
func NewOr(conditions ...EndCondition) *Or {
	return &Or{Conditions: conditions}
}

// EndTest reports whether any sub-condition's EndTest is true.
func (o *Or) EndTest(h *history.History) bool {
	for _, c := range o.Conditions {
		if c.EndTest(h) {
			return true
		}
	}
	return false
}

// EndSuite reports whether any sub-condition's EndSuite is true.
func (o *Or) EndSuite(h *history.History) bool {
	for _, c := range o.Conditions {
		if c.EndSuite(h) {
			return true
		}
	}
	return false
}
