package renderer

type Options struct {
	// Number of render workers. Each worker renders every Workers-th
	// scanline.
	Workers int

	// Report render progress from the first worker.
	Progress bool
}
