package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	TraceCalls  int64         // Calls to Trace, primary and reflected
	ShadowRays  int64         // Jittered shadow rays cast
	Duration    time.Duration // Wall time of the render
}

// Add accumulates the counters of other; Duration is left alone
func (s *RenderStats) Add(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TraceCalls += other.TraceCalls
	s.ShadowRays += other.ShadowRays
}

// AverageTraceCalls returns trace calls per pixel
func (s RenderStats) AverageTraceCalls() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TraceCalls) / float64(s.TotalPixels)
}
