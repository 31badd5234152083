package step

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// conventionModel exercises the Step_ / Guard_ / Weight_ / Pre_ / Post_
// naming convention plus the fixed lifecycle hook names.
type conventionModel struct {
	calls []string
	on    bool
}

func (m *conventionModel) BeforeSuite(ctx context.Context) error {
	m.calls = append(m.calls, "before_suite")
	return nil
}
func (m *conventionModel) AfterSuite(ctx context.Context) error {
	m.calls = append(m.calls, "after_suite")
	return nil
}
func (m *conventionModel) BeforeTest(ctx context.Context) error {
	m.calls = append(m.calls, "before_test")
	return nil
}
func (m *conventionModel) AfterTest(ctx context.Context) error {
	m.calls = append(m.calls, "after_test")
	return nil
}
func (m *conventionModel) Before(ctx context.Context) error {
	m.calls = append(m.calls, "before")
	return nil
}
func (m *conventionModel) After(ctx context.Context) error {
	m.calls = append(m.calls, "after")
	return nil
}

func (m *conventionModel) Step_On(ctx context.Context) error {
	m.calls = append(m.calls, "on")
	m.on = true
	return nil
}
func (m *conventionModel) Guard_Off() bool { return m.on }
func (m *conventionModel) Step_Off(ctx context.Context) error {
	m.calls = append(m.calls, "off")
	m.on = false
	return nil
}
func (m *conventionModel) Weight_On() float64 { return 3.0 }
func (m *conventionModel) Pre_On(ctx context.Context) error {
	m.calls = append(m.calls, "pre_on")
	return nil
}
func (m *conventionModel) Post_On(ctx context.Context) error {
	m.calls = append(m.calls, "post_on")
	return nil
}

func TestIntrospect_NamingConvention(t *testing.T) {
	m := &conventionModel{}
	cat, err := Introspect(m)
	require.NoError(t, err)
	require.Equal(t, 2, cat.Len())

	on, ok := cat.Get("On")
	require.True(t, ok)
	w, err := on.CurrentWeight()
	require.NoError(t, err)
	assert.Equal(t, 3.0, w)
	require.NotNil(t, on.Pre)
	require.NotNil(t, on.Post)

	off, ok := cat.Get("Off")
	require.True(t, ok)
	enabled, err := off.Enabled()
	require.NoError(t, err)
	assert.False(t, enabled, "Off should be disabled before On has run")

	require.NoError(t, on.Action(context.Background()))
	enabled, err = off.Enabled()
	require.NoError(t, err)
	assert.True(t, enabled, "Off should be enabled after On has run")

	hooks := cat.Hooks()
	require.Len(t, hooks, 1)
	require.NotNil(t, hooks[0].BeforeSuite)
	require.NotNil(t, hooks[0].AfterTest)
}

// explicitModel exercises the Registrar (explicit annotation) mechanism.
type explicitModel struct {
	enabled bool
}

func (m *explicitModel) GosmoSteps() []Registration {
	return []Registration{
		{
			Name:   "Explicit",
			Action: func(ctx context.Context) error { return nil },
			Weight: StaticWeight(2.5),
			Enabled: func() *bool {
				b := m.enabled
				return &b
			}(),
		},
	}
}

func TestIntrospect_ExplicitRegistration(t *testing.T) {
	m := &explicitModel{enabled: true}
	cat, err := Introspect(m)
	require.NoError(t, err)
	require.Equal(t, 1, cat.Len())

	s, ok := cat.Get("Explicit")
	require.True(t, ok)
	enabled, err := s.Enabled()
	require.NoError(t, err)
	assert.True(t, enabled)

	w, err := s.CurrentWeight()
	require.NoError(t, err)
	assert.Equal(t, 2.5, w)
}

// dualClaimModel declares "Dup" both explicitly and by convention.
type dualClaimModel struct{}

func (m *dualClaimModel) GosmoSteps() []Registration {
	return []Registration{{Name: "Dup", Action: func(ctx context.Context) error { return nil }}}
}
func (m *dualClaimModel) Step_Dup(ctx context.Context) error { return nil }

func TestIntrospect_DualClaimIsFatal(t *testing.T) {
	_, err := Introspect(&dualClaimModel{})
	require.Error(t, err)
	assert.True(t, IsModelStructureError(err))
}

// compositeA / compositeB exercise duplicate detection across constituents.
type compositeA struct{}

func (compositeA) Step_Alpha(ctx context.Context) error { return nil }

type compositeB struct{}

func (compositeB) Step_Alpha(ctx context.Context) error { return nil }

func TestIntrospect_DuplicateAcrossComposite(t *testing.T) {
	_, err := Introspect(compositeA{}, compositeB{})
	require.Error(t, err)
	assert.True(t, IsModelStructureError(err))
}

type noSteps struct{}

func TestIntrospect_NoSteps(t *testing.T) {
	_, err := Introspect(noSteps{})
	require.Error(t, err)
	assert.True(t, IsModelStructureError(err))
}

type wrongShape struct{}

func (wrongShape) Step_Bad() error { return nil }

func TestIntrospect_WrongActionSignature(t *testing.T) {
	_, err := Introspect(wrongShape{})
	require.Error(t, err)
	assert.True(t, IsModelStructureError(err))
}

type invalidWeight struct{}

func (invalidWeight) Step_X(ctx context.Context) error { return nil }
func (invalidWeight) Weight_X() float64                { return 0 }

func TestIntrospect_InvalidWeight(t *testing.T) {
	_, err := Introspect(invalidWeight{})
	require.Error(t, err)
	assert.True(t, IsModelStructureError(err))
}

// guardDeclarerModel exercises priority-3 declared-by-name guards and the
// non-existent-step error path.
type guardDeclarerModel struct{}

func (guardDeclarerModel) Step_Y(ctx context.Context) error { return nil }
func (guardDeclarerModel) StepGuards() map[string]GuardFunc {
	return map[string]GuardFunc{"Y": func() (bool, error) { return false, nil }}
}

func TestIntrospect_DeclaredGuard(t *testing.T) {
	cat, err := Introspect(guardDeclarerModel{})
	require.NoError(t, err)
	s, _ := cat.Get("Y")
	enabled, err := s.Enabled()
	require.NoError(t, err)
	assert.False(t, enabled)
}

type danglingGuardModel struct{}

func (danglingGuardModel) Step_Z(ctx context.Context) error { return nil }
func (danglingGuardModel) StepGuards() map[string]GuardFunc {
	return map[string]GuardFunc{"NoSuchStep": func() (bool, error) { return true, nil }}
}

func TestIntrospect_DanglingGuardReference(t *testing.T) {
	_, err := Introspect(danglingGuardModel{})
	require.Error(t, err)
	assert.True(t, IsModelStructureError(err))
}
