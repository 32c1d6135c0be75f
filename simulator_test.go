package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeScale(t *testing.T) {
	tests := []struct {
		name      string
		container int
		mode      ViewportMode
		want      float64
	}{
		{"laptop squeezed into narrow container", 400, ModeLaptop, 400.0 / 1280.0},
		{"mobile fits wide container", 800, ModeMobile, 1},
		{"tablet squeezed", 500, ModeTablet, 500.0 / 1024.0},
		{"exact fit is unscaled", 1280, ModeLaptop, 1},
		{"one pixel short scales", 1279, ModeLaptop, 1279.0 / 1280.0},
		{"zero container", 0, ModeLaptop, 1},
		{"unknown mode", 400, ViewportMode("WATCH"), 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, computeScale(tc.container, tc.mode), 1e-9)
		})
	}

	// spot value from the contract: 1200-class frame in a 400px container
	assert.InDelta(t, 0.3125, computeScale(400, ModeLaptop), 1e-9)
}

func TestSimulatorStartsLoadingInLaptopMode(t *testing.T) {
	sim := NewViewportSimulator("/projects/demo/index.html", 400)

	geo := sim.Geometry()
	assert.Equal(t, ModeLaptop, geo.Mode)
	assert.Equal(t, 1280, geo.SimulatedWidth)
	assert.InDelta(t, 400.0/1280.0, geo.Scale, 1e-9)
	assert.True(t, sim.Loading())
}

func TestModeSwitchKeepsDocumentAndLoadState(t *testing.T) {
	sim := NewViewportSimulator("/projects/demo/index.html", 800)
	sim.DocumentLoaded()

	sim.SetMode(ModeMobile)
	assert.Equal(t, "/projects/demo/index.html", sim.Document())
	assert.False(t, sim.Loading(), "geometry change must not restart loading")
	assert.Equal(t, 375, sim.Geometry().SimulatedWidth)
	assert.InDelta(t, 1, sim.Geometry().Scale, 1e-9)

	// re-selecting the current mode is harmless
	sim.SetMode(ModeMobile)
	assert.False(t, sim.Loading())

	// unknown modes are ignored
	sim.SetMode(ViewportMode("WATCH"))
	assert.Equal(t, ModeMobile, sim.Geometry().Mode)
}

func TestDocumentChangeRestartsLoading(t *testing.T) {
	sim := NewViewportSimulator("/projects/a/index.html", 800)
	sim.DocumentLoaded()

	sim.SetDocument("/projects/a/index.html")
	assert.False(t, sim.Loading(), "same reference must not reset loading")

	sim.SetDocument("/projects/b/index.html")
	assert.True(t, sim.Loading())

	sim.DocumentLoaded()
	sim.DocumentLoaded() // duplicate load signals are ignored
	assert.False(t, sim.Loading())
}

func TestResizeRecomputesLastWriteWins(t *testing.T) {
	sim := NewViewportSimulator("/projects/demo/index.html", 2000)
	assert.InDelta(t, 1, sim.Geometry().Scale, 1e-9)

	// rapid resize burst: the final measurement wins
	sim.Resize(900)
	sim.SetMode(ModeTablet)
	sim.Resize(512)

	geo := sim.Geometry()
	assert.Equal(t, ModeTablet, geo.Mode)
	assert.Equal(t, 512, geo.ContainerWidth)
	assert.InDelta(t, 0.5, geo.Scale, 1e-9)
}

func TestDemoDocumentFallback(t *testing.T) {
	assert.Equal(t, "/projects/notfound.html", demoDocument(WorkItem{DemoURL: ""}))
	assert.Equal(t, "/projects/notfound.html", demoDocument(WorkItem{DemoURL: "#"}))
	assert.Equal(t, "/projects/x/index.html", demoDocument(WorkItem{DemoURL: "/projects/x/index.html"}))
}
