package step

import (
	"math"
	"reflect"
	"sort"
	"strings"

	"github.com/osmo-tool/gosmo/pkg/logging"
)

// stepPrefix, guardPrefix, weightPrefix, prePrefix, and postPrefix are the
// closed grammar of reserved method-name prefixes used by the naming
// convention (spec §4.B mechanism 1, design note on "duck-typed hook
// discovery"). Each prefix begins with a capital letter, so a matching method
// is exported and reflect can call it from this package; the step name after
// the underscore keeps its own case (Step_a names step "a").
const (
	stepPrefix   = "Step_"
	guardPrefix  = "Guard_"
	weightPrefix = "Weight_"
	prePrefix    = "Pre_"
	postPrefix   = "Post_"
)

// Catalogue is the immutable result of introspecting one or more models: a
// union of their steps plus their lifecycle hooks, one Hooks value per
// constituent in supply order.
type Catalogue struct {
	steps map[string]*Step
	order []string
	hooks []Hooks
}

// Names returns step names in a stable order (discovery order across
// constituents).
func (c *Catalogue) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Steps returns every step in the catalogue, in stable discovery order.
func (c *Catalogue) Steps() []*Step {
	out := make([]*Step, len(c.order))
	for i, name := range c.order {
		out[i] = c.steps[name]
	}
	return out
}

// Get looks up a step by name.
func (c *Catalogue) Get(name string) (*Step, bool) {
	s, ok := c.steps[name]
	return s, ok
}

// Len reports the number of distinct steps in the catalogue.
func (c *Catalogue) Len() int { return len(c.order) }

// Hooks returns the per-constituent lifecycle hooks, in the order the
// constituent models were supplied to Introspect.
func (c *Catalogue) Hooks() []Hooks { return c.hooks }

// pending carries a step through the two introspection passes: pass one
// resolves actions, explicit (priority 1/2) guards and weights, and per-step
// pre/post; pass two resolves priority-3 declared guards/weights once every
// constituent's declarations are visible.
type pending struct {
	step            *Step
	owner           reflect.Value
	explicitEnabled *bool
	explicitGuard   GuardFunc
	explicitWeight  WeightFunc
}

// Introspect resolves one or more user-supplied models into a single
// Catalogue (spec §4.B). Duplicate step names across constituents, a guard
// or weight declared for a non-existent step, an invalid weight, or a
// catalogue with zero steps are all fatal ModelStructureErrors.
func Introspect(models ...interface{}) (*Catalogue, error) {
	cat := &Catalogue{steps: make(map[string]*Step)}
	var pendings []*pending
	var guardDecls []map[string]GuardFunc
	var weightDecls []map[string]WeightFunc

	for _, model := range models {
		v := reflect.ValueOf(model)
		claimed := make(map[string]bool)

		if reg, ok := model.(Registrar); ok {
			for _, r := range reg.GosmoSteps() {
				if r.Name == "" {
					return nil, newStructureError("explicit registration missing a step name")
				}
				if r.Action == nil {
					return nil, newStructureError("explicit registration for step %q has no action", r.Name)
				}
				if err := cat.claim(r.Name); err != nil {
					return nil, err
				}
				claimed[r.Name] = true
				s := &Step{Name: r.Name, Action: r.Action, Pre: r.Pre, Post: r.Post}
				cat.add(s)
				pendings = append(pendings, &pending{
					step:            s,
					owner:           v,
					explicitEnabled: r.Enabled,
					explicitGuard:   r.Guard,
					explicitWeight:  r.Weight,
				})
			}
		}

		t := v.Type()
		for i := 0; i < t.NumMethod(); i++ {
			name := t.Method(i).Name
			if !strings.HasPrefix(name, stepPrefix) {
				continue
			}
			stepName := strings.TrimPrefix(name, stepPrefix)
			if claimed[stepName] {
				return nil, newStructureError("method %s: step %q is declared both by explicit registration and by naming convention", name, stepName)
			}
			action, ok := bindAction(v, name)
			if !ok {
				return nil, newStructureError("method %s has the %s prefix but not the func(context.Context) error signature", name, stepPrefix)
			}
			if err := cat.claim(stepName); err != nil {
				return nil, err
			}
			claimed[stepName] = true

			s := &Step{Name: stepName, Action: action}
			if pre, ok := bindAction(v, prePrefix+stepName); ok {
				s.Pre = pre
			}
			if post, ok := bindAction(v, postPrefix+stepName); ok {
				s.Post = post
			}
			cat.add(s)
			pendings = append(pendings, &pending{step: s, owner: v})
		}

		if gd, ok := model.(GuardDeclarer); ok {
			guardDecls = append(guardDecls, gd.StepGuards())
		}
		if wd, ok := model.(WeightDeclarer); ok {
			weightDecls = append(weightDecls, wd.StepWeights())
		}

		cat.hooks = append(cat.hooks, resolveHooks(v))
	}

	if len(cat.order) == 0 {
		return nil, newStructureError("no steps found across %d model(s)", len(models))
	}

	declaredGuard := mergeGuardDecls(guardDecls)
	declaredWeight := mergeWeightDecls(weightDecls)

	for name := range declaredGuard {
		if _, ok := cat.steps[name]; !ok {
			return nil, newStructureError("guard declared for non-existent step %q", name)
		}
	}
	for name := range declaredWeight {
		if _, ok := cat.steps[name]; !ok {
			return nil, newStructureError("weight declared for non-existent step %q", name)
		}
	}

	for _, p := range pendings {
		if err := resolveGuard(p, declaredGuard); err != nil {
			return nil, err
		}
		if err := resolveWeight(p, declaredWeight); err != nil {
			return nil, err
		}
	}

	logging.Debug("Model", "introspected %d step(s) across %d model(s)", cat.Len(), len(models))
	return cat, nil
}

func (c *Catalogue) claim(name string) error {
	if _, exists := c.steps[name]; exists {
		return newStructureError("duplicate step name %q", name)
	}
	return nil
}

func (c *Catalogue) add(s *Step) {
	c.steps[s.Name] = s
	c.order = append(c.order, s.Name)
}

func mergeGuardDecls(decls []map[string]GuardFunc) map[string]GuardFunc {
	out := make(map[string]GuardFunc)
	for _, d := range decls {
		for name, fn := range d {
			out[name] = fn
		}
	}
	return out
}

func mergeWeightDecls(decls []map[string]WeightFunc) map[string]WeightFunc {
	out := make(map[string]WeightFunc)
	for _, d := range decls {
		for name, fn := range d {
			out[name] = fn
		}
	}
	return out
}

// resolveGuard applies the priority order from spec §4.B: explicit enabled
// flag, inline guard, declared-by-name guard, Guard_X convention, default.
func resolveGuard(p *pending, declared map[string]GuardFunc) error {
	switch {
	case p.explicitEnabled != nil:
		flag := p.explicitEnabled
		p.step.Guard = func() (bool, error) { return *flag, nil }
	case p.explicitGuard != nil:
		p.step.Guard = p.explicitGuard
	case declared[p.step.Name] != nil:
		p.step.Guard = declared[p.step.Name]
	default:
		if g, ok := bindGuard(p.owner, guardPrefix+p.step.Name); ok {
			p.step.Guard = g
		} else {
			p.step.Guard = AlwaysEnabled
		}
	}
	return nil
}

// resolveWeight applies the priority order from spec §4.B and validates the
// resolved weight once, at introspection time, per the invariant that
// invalid weights are fatal configuration errors.
func resolveWeight(p *pending, declared map[string]WeightFunc) error {
	switch {
	case p.explicitWeight != nil:
		p.step.Weight = p.explicitWeight
	case declared[p.step.Name] != nil:
		p.step.Weight = declared[p.step.Name]
	default:
		if w, ok := bindWeight(p.owner, weightPrefix+p.step.Name); ok {
			p.step.Weight = w
		} else {
			p.step.Weight = StaticWeight(DefaultWeight)
		}
	}

	w, err := p.step.Weight()
	if err != nil {
		return newStructureError("step %q: weight evaluation failed: %v", p.step.Name, err)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		return newStructureError("step %q: weight must be finite and strictly positive, got %v", p.step.Name, w)
	}
	return nil
}

// SortedNames is a small helper used by callers (e.g. coverage reporting)
// that want a deterministic, human-friendly ordering distinct from discovery
// order.
func SortedNames(names []string) []string {
	out := append([]string(nil), names...)
	sort.Strings(out)
	return out
}
