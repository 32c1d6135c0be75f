package main

import "sync"

// ViewportMode is one of the fixed device width classes the simulator can
// emulate.
type ViewportMode string

const (
	ModeMobile ViewportMode = "MOBILE"
	ModeTablet ViewportMode = "TABLET"
	ModeLaptop ViewportMode = "LAPTOP"
)

// Simulated frame widths per mode, in CSS pixels.
var simulatedWidths = map[ViewportMode]int{
	ModeMobile: 375,
	ModeTablet: 1024,
	ModeLaptop: 1280,
}

func validMode(m ViewportMode) bool {
	_, ok := simulatedWidths[m]
	return ok
}

// computeScale fits the simulated device width inside the available
// container: scale down when the frame is wider than the container, never
// scale up.
func computeScale(containerWidth int, mode ViewportMode) float64 {
	simulated, ok := simulatedWidths[mode]
	if !ok || containerWidth <= 0 {
		return 1
	}
	if simulated > containerWidth {
		return float64(containerWidth) / float64(simulated)
	}
	return 1
}

// ViewportGeometry is the transient frame state: never persisted,
// recomputed on every mode change and container resize.
type ViewportGeometry struct {
	Mode           ViewportMode `json:"mode"`
	SimulatedWidth int          `json:"simulated_width"`
	ContainerWidth int          `json:"container_width"`
	Scale          float64      `json:"scale"`
}

// ViewportSimulator renders one embedded document inside a scaled,
// device-shaped frame. Switching modes only changes geometry; the loaded
// document survives until the document reference itself changes.
type ViewportSimulator struct {
	mu       sync.Mutex
	geometry ViewportGeometry
	document string
	loading  bool
}

// NewViewportSimulator starts in laptop mode with the load in flight.
func NewViewportSimulator(document string, containerWidth int) *ViewportSimulator {
	s := &ViewportSimulator{document: document, loading: true}
	s.geometry = ViewportGeometry{
		Mode:           ModeLaptop,
		SimulatedWidth: simulatedWidths[ModeLaptop],
		ContainerWidth: containerWidth,
		Scale:          computeScale(containerWidth, ModeLaptop),
	}
	return s
}

func (s *ViewportSimulator) recompute() {
	s.geometry.SimulatedWidth = simulatedWidths[s.geometry.Mode]
	s.geometry.Scale = computeScale(s.geometry.ContainerWidth, s.geometry.Mode)
}

// SetMode switches the device class. Re-selecting the current mode is
// harmless; neither transition touches the loading flag.
func (s *ViewportSimulator) SetMode(mode ViewportMode) {
	if !validMode(mode) {
		return
	}
	s.mu.Lock()
	s.geometry.Mode = mode
	s.recompute()
	s.mu.Unlock()
}

// Resize records a new container measurement. Last write wins when resize
// and mode-change events race.
func (s *ViewportSimulator) Resize(containerWidth int) {
	s.mu.Lock()
	s.geometry.ContainerWidth = containerWidth
	s.recompute()
	s.mu.Unlock()
}

// SetDocument swaps the embedded document. Only an actual change restarts
// the loading state.
func (s *ViewportSimulator) SetDocument(ref string) {
	s.mu.Lock()
	if ref != s.document {
		s.document = ref
		s.loading = true
	}
	s.mu.Unlock()
}

// DocumentLoaded marks the load signal from the embedded document. Late or
// duplicate signals after the flag cleared are ignored.
func (s *ViewportSimulator) DocumentLoaded() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *ViewportSimulator) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *ViewportSimulator) Document() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.document
}

func (s *ViewportSimulator) Geometry() ViewportGeometry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.geometry
}

// demoDocument resolves the embeddable document for a work item, falling
// back to the bundled placeholder when none is set.
func demoDocument(item WorkItem) string {
	ref := item.DemoURL
	if ref == "" || ref == "#" {
		return "/projects/notfound.html"
	}
	return ref
}
