package tesseract

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockResource1 struct {
	name string
}
type MockResource2 struct {
	name string
}

func NewMockResource1(name string) *MockResource1 {
	return &MockResource1{name: name}
}
func NewMockResource2(name string) *MockResource2 {
	return &MockResource2{name: name}
}

func TestApp_changeState(t *testing.T) {
	app := &App{
		stateful:     true,
		initialState: 1,
		state:        1,
		finalState:   2,
	}

	app.changeState(2)
	assert.Equal(t, State(2), app.nextState)
	assert.True(t, app.stateTransitioning)

	app.executeChangeState(2)
	assert.Equal(t, State(2), app.state)
}

func TestApp_addResources(t *testing.T) {
	app := &App{
		resources: make(map[reflect.Type]any),
	}

	resource1 := NewMockResource1("Resource1")
	app.addResources(resource1)
	assert.Contains(t, app.resources, reflect.TypeOf(resource1).Elem(), "Resource1 should be in resources map.")

	require.PanicsWithValue(t, fmt.Sprintf("%s is already in resources", reflect.TypeOf(resource1)), func() {
		app.addResources(resource1)
	})

	resource2 := NewMockResource2("Resource2")
	app.addResources(resource2)
	assert.Contains(t, app.resources, reflect.TypeOf(resource2).Elem(), "Resource2 should be in resources map.")

	require.Panics(t, func() {
		app.addResources(MockResource2{})
	}, "values must be rejected, only pointers are resources")
}

func TestResource(t *testing.T) {
	app := NewAppBuilder().Build()
	assert.Nil(t, Resource[MockResource1](app))

	r := NewMockResource1("r")
	app.Commands().AddResources(r)
	assert.Same(t, r, Resource[MockResource1](app))
}

func TestApp_StepWalksStates(t *testing.T) {
	app := NewAppBuilder().UseStates(StateRunning, StateExiting).Build()

	var calls []string
	record := func(name string) func() {
		return func() { calls = append(calls, name) }
	}
	frames := 0

	app.UseSystem(System(record("enter-running")).InStage(Prelude).InState(OnEnter(StateRunning)))
	app.UseSystem(System(record("run")).InStage(Update).InState(OnExecute(StateRunning)))
	app.UseSystem(System(func(cmd *Commands) {
		frames++
		if frames == 2 {
			cmd.Exit()
		}
	}).InStage(Update).RunAlways())
	app.UseSystem(System(record("exit-running")).InStage(Finale).InState(OnExit(StateRunning)))
	app.UseSystem(System(record("enter-exiting")).InStage(Finale).InState(OnEnter(StateExiting)))
	app.UseSystem(System(record("exit-exiting")).InStage(Finale).InState(OnExit(StateExiting)))

	assert.True(t, app.Step())
	assert.Equal(t, StateRunning, app.State())
	assert.False(t, app.Finished())

	assert.False(t, app.Step())
	assert.True(t, app.Finished())
	assert.Equal(t, StateExiting, app.State())

	assert.Equal(t, []string{"enter-running", "run", "run", "exit-running", "enter-exiting", "exit-exiting"}, calls)

	assert.False(t, app.Step(), "a finished app does not step")
	assert.Equal(t, 2, frames)
}

func TestApp_RunStopsOnExit(t *testing.T) {
	app := NewAppBuilder().UseStates(StateRunning, StateExiting).Build()

	frames := 0
	app.UseSystem(System(func(cmd *Commands) {
		frames++
		if frames == 5 {
			cmd.Exit()
		}
	}).InStage(PostUpdate).RunAlways())

	app.Run()
	assert.Equal(t, 5, frames)
	assert.True(t, app.Finished())
}

func TestApp_StageOrder(t *testing.T) {
	app := NewAppBuilder().Build()

	var order []string
	for _, stage := range []Stage{Finale, Render, Prelude, PreRender, Update, PostRender, PreUpdate, PostUpdate} {
		name := stage.Name
		app.UseSystem(System(func() { order = append(order, name) }).InStage(stage))
	}
	app.Step()

	assert.Equal(t, []string{"Prelude", "PreUpdate", "Update", "PostUpdate", "PreRender", "Render", "PostRender", "Finale"}, order)
}

func TestApp_UseStage(t *testing.T) {
	app := NewAppBuilder().Build()
	lateUpdate := Stage{Name: "LateUpdate"}
	app.UseStage(lateUpdate, AfterStage(Update))

	var order []string
	app.UseSystem(System(func() { order = append(order, "post") }).InStage(PostUpdate))
	app.UseSystem(System(func() { order = append(order, "late") }).InStage(lateUpdate))
	app.UseSystem(System(func() { order = append(order, "update") }).InStage(Update))
	app.Step()

	assert.Equal(t, []string{"update", "late", "post"}, order)

	assert.PanicsWithValue(t, "Stage Nowhere not found", func() {
		app.UseStage(Stage{Name: "Other"}, BeforeStage(Stage{Name: "Nowhere"}))
	})
}

func TestApp_SystemInjection(t *testing.T) {
	app := NewAppBuilder().Build()
	res := NewMockResource1("injected")
	logger := NewNopLogger()
	app.Commands().AddResources(res, logger)

	var (
		gotRes    *MockResource1
		gotCmd    *Commands
		gotLogger Logger
	)
	app.UseSystem(System(func(r *MockResource1, cmd *Commands, log Logger) {
		gotRes, gotCmd, gotLogger = r, cmd, log
	}))
	app.Step()

	assert.Same(t, res, gotRes)
	require.NotNil(t, gotCmd)
	assert.Same(t, app, gotCmd.app)
	assert.Equal(t, logger, gotLogger)
}

func TestApp_UnresolvedDependencyPanics(t *testing.T) {
	app := NewAppBuilder().Build()
	app.UseSystem(System(func(r *MockResource2) {}))

	assert.Panics(t, func() { app.Step() })
}

func TestApp_StatefulSystemInStatelessApp(t *testing.T) {
	app := NewAppBuilder().Build()

	assert.PanicsWithValue(t, "Trying to use a stateful system in a stateless app.", func() {
		app.UseSystem(System(func() {}).InState(OnEnter(StateRunning)))
	})
}

func TestApp_LoggerFallsBackToNop(t *testing.T) {
	app := NewAppBuilder().Build()
	require.NotNil(t, app.Logger())
	assert.False(t, app.Logger().DebugEnabled())

	var nilApp *App
	assert.NotNil(t, nilApp.Logger())
}
