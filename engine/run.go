package engine

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/osmo-tool/gosmo/errorstrategy"
	"github.com/osmo-tool/gosmo/history"
	"github.com/osmo-tool/gosmo/pkg/logging"
	"github.com/osmo-tool/gosmo/step"
)

// noStepName is the step name recorded when an iteration fails before any
// step was chosen: a before-hook failure or a selection error. A guard
// evaluation failure appends no record at all (spec §7 taxonomy item 3).
const noStepName = ""

// resolveSeed returns the configured seed, or derives one from the current
// time and logs the derivation when Config.Seed is omitted (spec §6:
// "if omitted, seed is derived from current time and recorded").
func resolveSeed(configured *int64) int64 {
	if configured != nil {
		return *configured
	}
	seed := time.Now().UnixNano()
	logging.Info("Engine", "no seed configured, derived seed=%d from current time", seed)
	return seed
}

// Run introspects models into a single catalogue and drives it through the
// nested suite/test/step state machine of spec §4.F until SuiteEndCondition
// fires or an error propagates all the way out. When cfg fails validation or
// the models fail introspection, Run returns a nil History with the error;
// otherwise the returned History is non-nil and reflects every test
// attempted, even when Run also returns a non-nil error.
func Run(ctx context.Context, cfg Config, models ...interface{}) (*history.History, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cat, err := step.Introspect(models...)
	if err != nil {
		return nil, err
	}

	h := history.New()
	seed := resolveSeed(cfg.Seed)
	rng := rand.New(rand.NewSource(seed))
	h.SeedUsed(seed)
	resetSuiteScope(cfg.SuiteErrorStrategy)

	logging.Info("Engine", "suite starting with %d step(s), seed=%d", cat.Len(), seed)
	h.SuiteStarted(time.Now())

	heldErr := runBeforeSuite(ctx, cat, h)
	if heldErr == nil {
		heldErr = runSuiteLoop(ctx, cfg, cat, h, rng)
	}
	if afterErr := runAfterSuite(ctx, cat, h); heldErr == nil {
		heldErr = afterErr
	}

	if heldErr != nil {
		logging.Warn("Engine", "suite ended with error: %v", heldErr)
	} else {
		logging.Info("Engine", "suite completed cleanly")
	}
	return h, heldErr
}

func runBeforeSuite(ctx context.Context, cat *step.Catalogue, h *history.History) error {
	var first error
	for _, hk := range cat.Hooks() {
		if hk.BeforeSuite == nil {
			continue
		}
		if err := hk.BeforeSuite(ctx); err != nil && first == nil {
			first = &HookFailed{HookName: "before_suite", Err: err}
		}
	}
	return first
}

func runAfterSuite(ctx context.Context, cat *step.Catalogue, h *history.History) error {
	var first error
	for _, hk := range cat.Hooks() {
		if hk.AfterSuite == nil {
			continue
		}
		if err := hk.AfterSuite(ctx); err != nil && first == nil {
			first = &HookFailed{HookName: "after_suite", Err: err}
		}
	}
	return first
}

func runSuiteLoop(ctx context.Context, cfg Config, cat *step.Catalogue, h *history.History, rng *rand.Rand) error {
	for {
		if err := ctx.Err(); err != nil {
			return &Interrupted{Err: err}
		}
		if cfg.SuiteEndCondition.EndSuite(h) {
			return nil
		}

		if _, err := h.StartTest(time.Now()); err != nil {
			return err
		}
		resetTestScope(cfg.TestErrorStrategy)

		testErr := runOneTest(ctx, cfg, cat, h, rng)
		h.EndCurrentTest(time.Now())

		if testErr == nil {
			continue
		}
		if IsInterrupted(testErr) {
			return testErr
		}

		logging.Warn("Engine", "test propagated error: %v", testErr)
		decision := cfg.SuiteErrorStrategy.OnSuiteError(testErr)
		if cfg.StopOnFail || decision == errorstrategy.Propagate {
			return testErr
		}
	}
}

// runOneTest drives before_test, the step loop, and after_test for a single
// test case. It returns non-nil when the step loop propagated an error per
// the test-level strategy's decision, or when a before_test or after_test
// hook failed; hook failures are returned without consulting the test-level
// strategy. runSuiteLoop hands any non-nil result to the suite-level strategy.
func runOneTest(ctx context.Context, cfg Config, cat *step.Catalogue, h *history.History, rng *rand.Rand) error {
	beforeErr := runBeforeTest(ctx, cat, h)

	var loopErr error
	if beforeErr == nil {
		loopErr = runStepLoop(ctx, cfg, cat, h, rng)
	}

	afterErr := runAfterTest(ctx, cat, h)

	return firstNonNil(beforeErr, loopErr, afterErr)
}

func runBeforeTest(ctx context.Context, cat *step.Catalogue, h *history.History) error {
	var first error
	for _, hk := range cat.Hooks() {
		if hk.BeforeTest == nil {
			continue
		}
		if err := hk.BeforeTest(ctx); err != nil && first == nil {
			first = &HookFailed{HookName: "before_test", Err: err}
		}
	}
	return first
}

func runAfterTest(ctx context.Context, cat *step.Catalogue, h *history.History) error {
	var first error
	for _, hk := range cat.Hooks() {
		if hk.AfterTest == nil {
			continue
		}
		if err := hk.AfterTest(ctx); err != nil && first == nil {
			first = &HookFailed{HookName: "after_test", Err: err}
		}
	}
	return first
}

// runStepLoop repeatedly selects and executes steps until the test's end
// condition fires or a test-level error propagates. Its return value is the
// error that is to be treated as "the test propagated" (nil means the test
// ended cleanly).
func runStepLoop(ctx context.Context, cfg Config, cat *step.Catalogue, h *history.History, rng *rand.Rand) error {
	testName := currentTestName(h)

	for {
		if err := ctx.Err(); err != nil {
			return &Interrupted{Err: err}
		}

		enabled, guardErr := enabledSteps(cat)
		if guardErr != nil {
			// Guard evaluation error: no step has executed, so no step
			// record is appended (spec §7 taxonomy item 3; scenario 4 in
			// §8 additionally requires NoAvailableSteps to leave no step
			// records at all).
			if consultTestStrategy(cfg.TestErrorStrategy, guardErr, cfg.StopTestOnException) {
				return guardErr
			}
			continue
		}
		if len(enabled) == 0 {
			err := &NoAvailableSteps{Test: testName}
			if consultTestStrategy(cfg.TestErrorStrategy, err, cfg.StopTestOnException) {
				return err
			}
			continue
		}

		start := time.Now()
		beforeErr := runBefore(ctx, cat, h)

		var stepName string
		var stepErr error
		if beforeErr == nil {
			chosen, chooseErr := cfg.Algorithm.Choose(enabled, h, rng)
			if chooseErr != nil {
				stepErr = chooseErr
			} else {
				stepName = chosen.Name
				stepErr = invokeStep(ctx, chosen)
			}
		}

		afterErr := runAfter(ctx, cat, h)

		runtimeErr := firstNonNil(beforeErr, stepErr, afterErr)

		outcome := history.OutcomeOK
		if runtimeErr != nil {
			outcome = history.OutcomeError
		}
		loggedName := stepName
		if loggedName == "" {
			loggedName = noStepName
		}
		_ = h.AppendStep(history.TestStepLog{
			StepName: loggedName,
			Start:    start,
			Duration: time.Since(start),
			Outcome:  outcome,
			Err:      runtimeErr,
		})

		if isInterruptErr(runtimeErr) {
			// Interrupts are never absorbed (spec §5, §7 taxonomy item 6):
			// a step that returned ctx.Err() mid-flight must propagate
			// immediately, never routed through the configured strategy.
			return &Interrupted{Err: runtimeErr}
		}

		if runtimeErr != nil {
			if consultTestStrategy(cfg.TestErrorStrategy, runtimeErr, cfg.StopTestOnException) {
				return &StepFailed{Test: testName, Step: loggedName, Err: runtimeErr}
			}
			// An absorbed error falls through: the errored step still
			// counts toward the test-level end condition.
		}

		if cfg.TestEndCondition.EndTest(h) {
			return nil
		}
	}
}

func runBefore(ctx context.Context, cat *step.Catalogue, h *history.History) error {
	var first error
	for _, hk := range cat.Hooks() {
		if hk.Before == nil {
			continue
		}
		if err := hk.Before(ctx); err != nil && first == nil {
			first = &HookFailed{HookName: "before", Err: err}
		}
	}
	return first
}

func runAfter(ctx context.Context, cat *step.Catalogue, h *history.History) error {
	var first error
	for _, hk := range cat.Hooks() {
		if hk.After == nil {
			continue
		}
		if err := hk.After(ctx); err != nil && first == nil {
			first = &HookFailed{HookName: "after", Err: err}
		}
	}
	return first
}

// invokeStep runs pre_X, X, post_X as a single guarded region: pre/post are
// part of the step for error-strategy purposes (spec §9 open question,
// resolved per the spec's stated position).
func invokeStep(ctx context.Context, s *step.Step) error {
	if s.Pre != nil {
		if err := s.Pre(ctx); err != nil {
			return err
		}
	}
	if err := s.Action(ctx); err != nil {
		return err
	}
	if s.Post != nil {
		if err := s.Post(ctx); err != nil {
			return err
		}
	}
	return nil
}

// enabledSteps evaluates every catalogued step's guard. A guard error is a
// test-level error with no step having executed (spec §7 taxonomy item 3).
func enabledSteps(cat *step.Catalogue) ([]*step.Step, error) {
	var enabled []*step.Step
	for _, s := range cat.Steps() {
		ok, err := s.Enabled()
		if err != nil {
			return nil, err
		}
		if ok {
			enabled = append(enabled, s)
		}
	}
	return enabled, nil
}

// consultTestStrategy asks the test-level strategy whether err should
// propagate, additionally honoring stop_test_on_exception for non-assertion
// errors (spec §4.F: stop_test_on_exception forces local propagation even
// when the strategy would absorb).
func consultTestStrategy(strat errorstrategy.Strategy, err error, stopOnException bool) (propagate bool) {
	decision := strat.OnTestError(err)
	if stopOnException && decision == errorstrategy.Absorb && !isAssertion(err) {
		return true
	}
	return decision == errorstrategy.Propagate
}

func isAssertion(err error) bool {
	return step.IsAssertionError(err)
}

// isInterruptErr reports whether err is (or wraps) a context cancellation,
// meaning a step or hook observed ctx.Err() mid-flight and returned it as
// its own failure. Such an error must never be absorbed (spec §5, §7
// taxonomy item 6), unlike an ordinary step error.
func isInterruptErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func currentTestName(h *history.History) string {
	cur, ok := h.CurrentTest()
	if !ok {
		return ""
	}
	return cur.ID
}

func firstNonNil(errs ...error) error {
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

func resetTestScope(s errorstrategy.Strategy) {
	if r, ok := s.(errorstrategy.TestScopeResetter); ok {
		r.ResetTestScope()
	}
}

func resetSuiteScope(s errorstrategy.Strategy) {
	if r, ok := s.(errorstrategy.SuiteScopeResetter); ok {
		r.ResetSuiteScope()
	}
}
