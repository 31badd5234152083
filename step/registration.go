package step

// Registration is the explicit-annotation mechanism (spec §4.B mechanism 2):
// a model that implements Registrar hands the introspector fully-built step
// descriptions instead of relying on the Step_ naming convention. The two
// mechanisms may be mixed freely across a single model's methods, but never
// for the same method: a name claimed by a Registration and also matching
// the Step_ prefix is a ModelStructureError.
type Registration struct {
	// Name is the step's name. Required.
	Name string

	// Action is the step's invokable body. Required.
	Action ActionFunc

	// Guard is an inline guard attached directly to this registration
	// (priority 2, spec §4.B). Optional.
	Guard GuardFunc

	// Weight is an inline weight attached directly to this registration
	// (priority 2, spec §4.B). Optional.
	Weight WeightFunc

	// Enabled is an explicit per-step-enabled flag (priority 1, spec §4.B),
	// settable by the user at any time; the introspector reads through the
	// pointer on every guard evaluation. Optional; nil means "not set".
	Enabled *bool

	// Pre and Post are hooks bound to this step by name. Optional.
	Pre  ActionFunc
	Post ActionFunc
}

// Registrar is implemented by a model that wants to declare its steps
// explicitly rather than (or in addition to) relying on the Step_ naming
// convention.
type Registrar interface {
	GosmoSteps() []Registration
}

// GuardDeclarer is implemented by a model that declares guards for steps by
// name, separately from the step's own method or registration (priority 3,
// spec §4.B). A name with no matching step is a ModelStructureError.
type GuardDeclarer interface {
	StepGuards() map[string]GuardFunc
}

// WeightDeclarer is the weight analogue of GuardDeclarer (priority 3, spec
// §4.B).
type WeightDeclarer interface {
	StepWeights() map[string]WeightFunc
}
