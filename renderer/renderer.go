package renderer

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/cgmb/ray/geometry"
	"github.com/cgmb/ray/log"
	"github.com/cgmb/ray/scene"
	"github.com/cgmb/ray/tracer"
	"github.com/cgmb/ray/types"
)

var logger = log.New("renderer")

// Renders a scene into an image buffer with a fixed pool of workers.
// Worker i owns scanlines i, i+W, i+2W, ... so pixel writes are disjoint
// and the shared buffer needs no synchronization.
type Renderer struct {
	scene  *scene.Scene
	shader *tracer.Whitted
	opts   Options
	stats  FrameStats
}

// Create a renderer for a scene. The photon map may be nil when the scene
// does not use photon mapping.
func New(sc *scene.Scene, photons *tracer.PhotonMap, opts Options) (*Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if opts.Workers < 1 {
		return nil, ErrInvalidWorkerCount
	}
	return &Renderer{
		scene:  sc,
		shader: tracer.New(sc, photons),
		opts:   opts,
	}, nil
}

// Render the frame. The workers are spawned once, joined before the image
// is returned, and any worker failure is surfaced here.
func (r *Renderer) Render() (*Image, error) {
	img, err := NewImage(r.scene.Res.X, r.scene.Res.Y)
	if err != nil {
		return nil, err
	}

	offsetPerPxX := r.scene.ScreenOffsetPerPxX()
	offsetPerPxY := r.scene.ScreenOffsetPerPxY()

	workers := r.opts.Workers
	r.stats = FrameStats{Workers: make([]WorkerStats, workers)}

	var wg sync.WaitGroup
	errChan := make(chan error, workers)

	start := time.Now()
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			defer func() {
				if p := recover(); p != nil {
					errChan <- fmt.Errorf("renderer: worker %d: %v", worker, p)
				}
			}()

			stats := &r.stats.Workers[worker]
			stats.Id = worker

			workerStart := time.Now()
			lastPercent := -1
			for y := worker; y < r.scene.Res.Y; y += workers {
				r.renderRow(img, y, offsetPerPxX, offsetPerPxY)
				stats.Rows++

				if worker == 0 && r.opts.Progress {
					percent := 100 * y / r.scene.Res.Y
					if percent != lastPercent {
						logger.Noticef("%d%%", percent)
						lastPercent = percent
					}
				}
			}
			stats.RenderTime = time.Since(workerStart)
		}(i)
	}
	wg.Wait()
	r.stats.RenderTime = time.Since(start)

	close(errChan)
	if err := <-errChan; err != nil {
		return nil, err
	}

	return img, nil
}

// Render one scanline. Each row owns a PRNG seeded by its index so output
// does not depend on which worker rendered it.
func (r *Renderer) renderRow(img *Image, y int, offsetPerPxX, offsetPerPxY types.Vec3) {
	rng := rand.New(rand.NewSource(int64(y)))
	samples := r.scene.SampleCount

	for x := 0; x < r.scene.Res.X; x++ {
		var sum types.Vec3
		for s := 0; s < samples; s++ {
			jitterX := rng.Float32()
			jitterY := rng.Float32()
			pixel := r.scene.ScreenTopLeft.
				Add(offsetPerPxX.Mul(float32(x) + jitterX)).
				Add(offsetPerPxY.Mul(float32(y) + jitterY))
			eyeRay := geometry.NewRay(pixel, pixel.Sub(r.scene.Observer).Normalize())
			sum = sum.Add(r.shader.CastRay(eyeRay, types.Vec3{},
				tracer.CastToObject, 1, 0))
		}
		img.SetPx(x, y, sum.Div(float32(samples)))
	}
}

// Get render statistics for the last frame.
func (r *Renderer) Stats() FrameStats {
	return r.stats
}
