package dust

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

func TestApp_addResources(t *testing.T) {
	app := &App{
		resources: make(map[reflect.Type]any),
	}

	resource1 := NewMockResource1("Resource1")
	app.addResources(resource1)

	assert.Contains(t, app.resources, reflect.TypeOf(resource1).Elem(), "Resource1 should be in resources map.")

	// Expect panic when trying to add the same type of resource again
	require.PanicsWithValue(t, fmt.Sprintf("%s is already in resources", reflect.TypeOf(resource1)), func() {
		app.addResources(resource1)
	})

	resource2 := NewMockResource2("Resource2")
	app.addResources(resource2)

	assert.Contains(t, app.resources, reflect.TypeOf(resource2).Elem(), "Resource2 should be in resources map.")
}

func TestApp_callSystem_ResolvesDependencies(t *testing.T) {
	app := NewAppBuilder().Build()
	app.addResources(NewMockResource1("injected"))

	var got *MockResource1
	var gotCmd *Commands
	app.callSystem(func(cmd *Commands, m *MockResource1) {
		gotCmd = cmd
		got = m
	})

	require.NotNil(t, got)
	assert.Equal(t, "injected", got.name)
	require.NotNil(t, gotCmd)
	assert.Same(t, app, gotCmd.app)
}

func TestApp_callSystem_PanicsOnMissingDependency(t *testing.T) {
	app := NewAppBuilder().Build()

	require.Panics(t, func() {
		app.callSystem(func(m *MockResource2) {})
	})
}

func TestApp_Shutdown_ReleasesInReverseOrder(t *testing.T) {
	app := NewAppBuilder().Build()

	var order []string
	app.onRelease("window", func() { order = append(order, "window") })
	app.onRelease("gpu", func() { order = append(order, "gpu") })
	app.onRelease("points", func() { panic("release failure") })
	app.onRelease("last", func() { order = append(order, "last") })

	app.Shutdown()

	// The panicking step must not prevent the remaining releases.
	assert.Equal(t, []string{"last", "gpu", "window"}, order)

	// Idempotent: a second Shutdown runs nothing again.
	app.Shutdown()
	assert.Equal(t, []string{"last", "gpu", "window"}, order)
}

type tickCountModule struct {
	maxTicks int
	ticks    *int
}

func (m tickCountModule) Install(app *App, cmd *Commands) {
	max := m.maxTicks
	counter := m.ticks
	app.UseSystem(
		System(func(cmd *Commands) {
			*counter++
			if *counter >= max {
				cmd.Quit()
			}
		}).InStage(Update),
	)
}

func TestApp_RunQuitsCooperatively(t *testing.T) {
	ticks := 0
	app := NewAppBuilder().
		UseModule(tickCountModule{maxTicks: 3, ticks: &ticks}).
		Build()

	released := false
	app.onRelease("marker", func() { released = true })

	app.Run()

	assert.Equal(t, 3, ticks)
	assert.True(t, released, "Run should shut the app down on exit")
}

func TestApp_UseSystemUnknownStagePanics(t *testing.T) {
	app := NewAppBuilder().Build()

	require.Panics(t, func() {
		app.UseSystem(System(func() {}).InStage(Stage{Name: "NoSuchStage"}))
	})
}

func TestApp_UseStageInsertsRelative(t *testing.T) {
	app := NewAppBuilder().Build()

	custom := Stage{Name: "Debug"}
	app.UseStage(custom, AfterStage(Update))

	idx := -1
	for i, s := range app.stages {
		if s.Name == "Debug" {
			idx = i
		}
	}
	require.NotEqual(t, -1, idx)
	assert.Equal(t, Update.Name, app.stages[idx-1].Name)
}
