package dust

import (
	"fmt"
	"reflect"
	"runtime"
)

type systemFn any

// App owns every resource of one viewer activation: the window, the GPU
// state, the point cloud and the session flags all live in the resources map,
// keyed by their concrete type. Systems are plain functions whose pointer
// arguments are resolved from that map each call. There is no package-level
// mutable state; shutting the App down releases everything it ever acquired.
type App struct {
	modules   []Module
	stages    []Stage
	systems   map[string][]systemFn
	resources map[reflect.Type]any

	quit     bool
	released bool
	releases []releaseStep
}

// Module installs resources and systems into an App.
type Module interface {
	Install(app *App, cmd *Commands)
}

type releaseStep struct {
	name string
	fn   func()
}

func (app *App) Commands() *Commands {
	return &Commands{app: app}
}

// Run executes the tick loop until Quit is requested (or the window closes,
// which a system translates into Quit). Teardown always runs, exactly once.
func (app *App) Run() {
	defer app.Shutdown()

	for !app.quit {
		for _, stage := range app.stages {
			for _, system := range app.systems[stage.Name] {
				app.callSystem(system)
			}
		}
	}
}

// Shutdown runs the registered release steps in reverse order of
// registration. Each step is independently guarded: a panic while releasing
// one resource must not prevent the remaining releases. Idempotent.
func (app *App) Shutdown() {
	if app.released {
		return
	}
	app.released = true
	app.quit = true

	for i := len(app.releases) - 1; i >= 0; i-- {
		step := app.releases[i]
		func() {
			defer func() {
				if r := recover(); r != nil {
					app.Logger().Errorf("release %q failed: %v", step.name, r)
				}
			}()
			step.fn()
		}()
	}
	app.releases = nil
}

func (app *App) onRelease(name string, fn func()) {
	app.releases = append(app.releases, releaseStep{name: name, fn: fn})
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
	}
	return app
}

var typeOfCommands = reflect.TypeOf(Commands{})

func (app *App) callSystem(system systemFn) {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())

	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)
		underlyingType := argType.Elem()

		if underlyingType == typeOfCommands {
			args[i] = reflect.ValueOf(&Commands{app: app})
		} else if resource, argIsResource := app.resources[underlyingType]; argIsResource {
			args[i] = reflect.ValueOf(resource)
		} else {
			msg := fmt.Sprintf("Unable to resolve System dependency.\nSystem: %s\nSystem type: %s\nDependency: %s",
				runtime.FuncForPC(systemValue.Pointer()).Name(),
				fmt.Sprint(systemType),
				fmt.Sprint(argType),
			)
			panic(msg)
		}
	}
	systemValue.Call(args)
}
