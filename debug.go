package softwillow

import "time"

// FrameStats holds per-frame counters and, in debug mode, stage timings.
type FrameStats struct {
	UpdateTime  time.Duration // input + entity updates
	BuildTime   time.Duration // transform, cull, project
	SortTime    time.Duration
	DrawTime    time.Duration
	PresentTime time.Duration // present, screenshots, clear

	Culled  int // back faces discarded
	Dropped int // triangles with non-finite or out-of-range projection
	Drawn   int
}

// Total returns the summed stage timings.
func (s FrameStats) Total() time.Duration {
	return s.UpdateTime + s.BuildTime + s.SortTime + s.DrawTime + s.PresentTime
}

// Stats returns the statistics of the last completed frame. Timings are only
// recorded in debug mode.
func (r *Renderer) Stats() FrameStats {
	return r.stats
}

// SetDebugMode enables or disables per-frame timing. When enabled, stage
// timings and triangle counts are logged at debug level every frame.
func (r *Renderer) SetDebugMode(enabled bool) {
	r.debug = enabled
}

// debugLog logs the stats of the frame that just completed.
func (r *Renderer) debugLog() {
	s := r.stats
	Logger().Debug("frame",
		"frame", r.frame,
		"update", s.UpdateTime,
		"build", s.BuildTime,
		"sort", s.SortTime,
		"draw", s.DrawTime,
		"present", s.PresentTime,
		"total", s.Total(),
		"drawn", s.Drawn,
		"culled", s.Culled,
		"dropped", s.Dropped,
	)
}

// warnDropped reports triangles the projection guard discarded this frame.
// It runs whether or not debug mode is on.
func (r *Renderer) warnDropped() {
	if r.stats.Dropped > 0 {
		Logger().Warn("triangles dropped by projection guard", "frame", r.frame, "count", r.stats.Dropped)
	}
}
