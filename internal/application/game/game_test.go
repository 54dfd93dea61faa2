package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/earthball/internal/application/scene"
)

// mockScene is a test double for Scene interface
type mockScene struct {
	updateCalled  int
	drawCalled    int
	onEnterCalled int
	onExitCalled  int
	lastDT        float64
	nextScene     scene.Scene
	updateErr     error
}

func (m *mockScene) Update(dt float64) (scene.Scene, error) {
	m.updateCalled++
	m.lastDT = dt
	return m.nextScene, m.updateErr
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled++
}

func (m *mockScene) OnEnter() {
	m.onEnterCalled++
}

func (m *mockScene) OnExit() {
	m.onExitCalled++
}

type stepClock struct {
	steps []float64
	i     int
}

func (c *stepClock) Tick() float64 {
	dt := c.steps[c.i%len(c.steps)]
	c.i++
	return dt
}

func never() bool { return false }

func createTestGame(s scene.Scene, opts ...Option) *Game {
	return New(s, 900, 500, append([]Option{WithQuit(never)}, opts...)...)
}

func TestNew(t *testing.T) {
	mockInitial := &mockScene{}
	g := createTestGame(mockInitial)

	assert.NotNil(t, g)
	assert.Equal(t, 1, mockInitial.onEnterCalled, "OnEnter should be called on initial scene")
}

func TestGame_Update_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g := createTestGame(mockInitial)

	err := g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, mockInitial.updateCalled, "Update should delegate to current scene")
}

func TestGame_Update_PassesClockDelta(t *testing.T) {
	s := &mockScene{}
	g := createTestGame(s, WithClock(&stepClock{steps: []float64{0, 0.016, 0.1}}))

	expected := []float64{0, 0.016, 0.1}
	for _, want := range expected {
		assert.NoError(t, g.Update())
		assert.Equal(t, want, s.lastDT)
	}
}

func TestGame_SetDT(t *testing.T) {
	s := &mockScene{}
	g := createTestGame(s)

	g.SetDT(1.0 / 30)
	assert.NoError(t, g.Update())
	assert.Equal(t, 1.0/30, s.lastDT)
}

func TestGame_Quit(t *testing.T) {
	s := &mockScene{}
	quit := false
	g := createTestGame(s, WithQuit(func() bool { return quit }))

	assert.NoError(t, g.Update())

	quit = true
	err := g.Update()

	assert.ErrorIs(t, err, ebiten.Termination)
	assert.Equal(t, 1, s.updateCalled, "scene not updated on the quitting frame")
	assert.Equal(t, 1, s.onExitCalled, "scene exited on quit")
}

func TestGame_Draw_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g := createTestGame(mockInitial)

	// Create a dummy image for testing
	img := ebiten.NewImage(320, 240)
	g.Draw(img)

	assert.Equal(t, 1, mockInitial.drawCalled, "Draw should delegate to current scene")
}

func TestGame_Layout(t *testing.T) {
	mockInitial := &mockScene{}
	g := createTestGame(mockInitial)

	w, h := g.Layout(1800, 1000)
	assert.Equal(t, 900, w)
	assert.Equal(t, 500, h)
}

func TestGame_SceneTransition(t *testing.T) {
	scene1 := &mockScene{}
	scene2 := &mockScene{}

	// scene1 will transition to scene2 on first update
	scene1.nextScene = scene2

	g := createTestGame(scene1)
	assert.Equal(t, 1, scene1.onEnterCalled, "Initial scene OnEnter called")

	// First update triggers transition
	err := g.Update()
	assert.NoError(t, err)

	assert.Equal(t, 1, scene1.updateCalled, "scene1 Update called")
	assert.Equal(t, 1, scene1.onExitCalled, "scene1 OnExit called on transition")
	assert.Equal(t, 1, scene2.onEnterCalled, "scene2 OnEnter called on transition")

	// Second update goes to scene2
	err = g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, scene2.updateCalled, "scene2 Update called")
}

func TestGame_NoTransitionWhenNil(t *testing.T) {
	scene1 := &mockScene{nextScene: nil} // Returns nil, no transition

	g := createTestGame(scene1)

	// Multiple updates, no transition
	for i := 0; i < 5; i++ {
		err := g.Update()
		assert.NoError(t, err)
	}

	assert.Equal(t, 5, scene1.updateCalled, "All updates go to scene1")
	assert.Equal(t, 0, scene1.onExitCalled, "No OnExit when no transition")
}

func TestGame_UpdateError(t *testing.T) {
	scene1 := &mockScene{updateErr: assert.AnError}

	g := createTestGame(scene1)

	err := g.Update()
	assert.Error(t, err, "Error should propagate from scene")
}
