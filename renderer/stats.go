package renderer

import "time"

// Per-worker render statistics.
type WorkerStats struct {
	// Worker index.
	Id int

	// Number of scanlines rendered by this worker.
	Rows int

	// The time this worker spent rendering.
	RenderTime time.Duration
}

// Frame statistics.
type FrameStats struct {
	// Per-worker breakdown.
	Workers []WorkerStats

	// Wall clock time for the whole frame.
	RenderTime time.Duration
}
