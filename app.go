package tesseract

import (
	"fmt"
	"reflect"
	"runtime"
)

type systemFn any

const (
	StateRunning State = iota
	StateExiting
)

type App struct {
	stateful           bool
	stateTransitioning bool
	initialState       State
	finalState         State
	nextState          State
	state              State
	started            bool
	finished           bool
	stages             []Stage
	systems            map[string]map[State]map[statePhase][]systemFn
	systemsStateless   map[string][]systemFn
	resources          map[reflect.Type]any
}

func (app *App) Commands() *Commands {
	return &Commands{
		app: app,
	}
}

// State returns the current application state.
func (app *App) State() State {
	return app.state
}

// Finished reports whether the final state has been exited.
func (app *App) Finished() bool {
	return app.finished
}

// Step runs one frame: every stage once, then any pending state change.
// It returns false once the app has reached and exited its final state.
func (app *App) Step() bool {
	if app.finished {
		return false
	}
	if !app.started {
		app.started = true
		if app.stateful {
			app.Logger().Debugf("entering initial state %d", app.initialState)
			app.state = app.initialState
			app.callSystems(app.state, enter)
		}
	}

	app.callSystems(app.state, execute)

	if app.stateful {
		if app.stateTransitioning {
			app.stateTransitioning = false
			app.executeChangeState(app.nextState)
		}

		if app.state == app.finalState {
			app.callSystems(app.state, exit)
			app.finished = true
			return false
		}
	}
	return true
}

// Run steps until the final state is reached. A stateless app runs forever.
func (app *App) Run() {
	for app.Step() {
	}
}

func (app *App) callSystems(state State, phase statePhase) {
	for _, stage := range app.stages {
		// On execute, call stateless/always run systems first
		if execute == phase {
			for _, system := range app.systemsStateless[stage.Name] {
				app.callSystem(system)
			}
		}

		if app.stateful {
			if systemsInStage, ok := app.systems[stage.Name]; ok {
				if systemsInState, ok := systemsInStage[state]; ok {
					for _, system := range systemsInState[phase] {
						app.callSystem(system)
					}
				}
			}
		}
	}
}

func (app *App) changeState(newState State) {
	app.nextState = newState
	app.stateTransitioning = true
}

func (app *App) executeChangeState(newState State) {
	app.callSystems(app.state, exit)
	app.state = newState
	app.callSystems(app.state, enter)
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if resourceType.Kind() != reflect.Pointer {
			panic(fmt.Sprintf("resource %s must be a pointer", resourceType))
		}
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
	}
	return app
}

// Resource returns the resource of type *T, or nil when none was added.
func Resource[T any](app *App) *T {
	if r, ok := app.resources[reflect.TypeOf((*T)(nil)).Elem()]; ok {
		return r.(*T)
	}
	return nil
}

var (
	typeOfCommands = reflect.TypeOf(Commands{})
	typeOfLogger   = reflect.TypeOf((*Logger)(nil)).Elem()
)

func (app *App) callSystem(system systemFn) {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())

	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)

		if argType == typeOfLogger {
			args[i] = reflect.ValueOf(app.Logger())
			continue
		}
		if argType.Kind() == reflect.Pointer {
			underlyingType := argType.Elem()
			if underlyingType == typeOfCommands {
				args[i] = reflect.ValueOf(&Commands{app: app})
				continue
			}
			if resource, ok := app.resources[underlyingType]; ok {
				args[i] = reflect.ValueOf(resource)
				continue
			}
		}

		msg := fmt.Sprintf("Unable to resolve System dependency.\nSystem: %s\nSystem type: %s\nDependency: %s",
			runtime.FuncForPC(systemValue.Pointer()).Name(),
			fmt.Sprint(systemType),
			fmt.Sprint(argType),
		)
		app.Logger().Errorf("%s", msg)
		panic(msg)
	}
	systemValue.Call(args)
}
