package render

import (
	"image"
	"runtime"
	"sort"
	"sync"

	"room-designer/internal/camera"
	"room-designer/internal/scene"
)

// parallelThreshold is the furniture count below which the parallel pass
// is not worth its copy overhead and drawing happens inline.
const parallelThreshold = 10

// DefaultWorkers returns the construction-time default pool size:
// max(1, min(4, cores−1)).
func DefaultWorkers() int {
	n := runtime.NumCPU() - 1
	if n > 4 {
		n = 4
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Renderer draws frames of a room scene, fanning the furniture pass out to
// a fixed pool of workers once the scene is large enough. The pool is
// created at construction and joined by Close; RenderFrame blocks until
// every chunk dispatched for that frame has resolved, so no task ever
// outlives a frame.
type Renderer struct {
	workers int
	tasks   chan func()
	wg      sync.WaitGroup
}

// NewRenderer starts the worker pool. workers <= 0 selects DefaultWorkers.
func NewRenderer(workers int) *Renderer {
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	r := &Renderer{
		workers: workers,
		tasks:   make(chan func(), workers*2),
	}
	for i := 0; i < workers; i++ {
		r.wg.Add(1)
		go func() {
			defer r.wg.Done()
			for task := range r.tasks {
				task()
			}
		}()
	}
	return r
}

func (r *Renderer) Workers() int { return r.workers }

// Close drains in-flight work and joins the pool. The renderer must not be
// used afterwards; this is the only cancellation point.
func (r *Renderer) Close() {
	close(r.tasks)
	r.wg.Wait()
}

// furnitureDepth pairs a piece with its body-center depth for the painter
// sort of the drawing pass.
type furnitureDepth struct {
	f     *scene.Furniture
	depth float64
}

// RenderFrame draws one frame: axis gizmo, room shell, then furniture
// farthest-first. The transform is taken by value — an immutable snapshot
// for this frame — so camera mutations between frames never race a worker.
// The furniture list and selection flags must not change while this runs.
func (r *Renderer) RenderFrame(img *image.NRGBA, cam camera.Transform, room *scene.Room) {
	c := NewCanvas(img)
	drawAxes(c, cam)
	drawRoom(c, cam, room)

	sorted := sortFurniture(cam, room.Furniture)
	if len(sorted) == 0 {
		return
	}
	if len(sorted) < parallelThreshold || r.workers == 1 {
		for _, fd := range sorted {
			drawFurniture(c, cam, fd.f)
		}
		return
	}
	r.renderParallel(img, cam, sorted)
}

// sortFurniture keeps pieces in front of the camera, farthest first.
// Behind-camera pieces are silent skips, not errors.
func sortFurniture(cam camera.Transform, furniture []*scene.Furniture) []furnitureDepth {
	out := make([]furnitureDepth, 0, len(furniture))
	for _, f := range furniture {
		_, _, depth := cam.ProjectWithDepth(f.Center())
		if depth <= 0 {
			continue
		}
		out = append(out, furnitureDepth{f: f, depth: depth})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].depth > out[j].depth })
	return out
}

// renderParallel splits the depth-sorted list into contiguous chunks, one
// per worker's share, draws each chunk on a private copy of the current
// frame and merges by pixel diff against the pristine frame. Merging is
// done in chunk index order — farthest chunk first — so nearer chunks
// overwrite where they painted and the composite is pixel-identical to the
// sequential pass for any chunk count. The diff merge assumes opaque
// primitives whose colors differ from the pixels they cover; that is the
// painter's-algorithm tradeoff this renderer accepts for box scenes.
func (r *Renderer) renderParallel(img *image.NRGBA, cam camera.Transform, sorted []furnitureDepth) {
	pristine := cloneImage(img)

	chunkSize := len(sorted) / r.workers
	if chunkSize < 1 {
		chunkSize = 1
	}
	var chunks [][]furnitureDepth
	for i := 0; i < len(sorted); i += chunkSize {
		end := i + chunkSize
		if end > len(sorted) {
			end = len(sorted)
		}
		chunks = append(chunks, sorted[i:end])
	}

	results := make([]*image.NRGBA, len(chunks))
	var done sync.WaitGroup
	for i, chunk := range chunks {
		i, chunk := i, chunk
		copyImg := cloneImage(pristine)
		done.Add(1)
		r.tasks <- func() {
			defer done.Done()
			cc := NewCanvas(copyImg)
			for _, fd := range chunk {
				drawFurniture(cc, cam, fd.f)
			}
			results[i] = copyImg
		}
	}
	// No timeout: a stalled worker stalls the frame.
	done.Wait()

	for _, res := range results {
		mergeChanged(img, res, pristine)
	}
}

// mergeChanged copies into dst every pixel of src that differs from base.
func mergeChanged(dst, src, base *image.NRGBA) {
	for i := 0; i < len(base.Pix); i += 4 {
		if src.Pix[i] != base.Pix[i] || src.Pix[i+1] != base.Pix[i+1] ||
			src.Pix[i+2] != base.Pix[i+2] || src.Pix[i+3] != base.Pix[i+3] {
			copy(dst.Pix[i:i+4], src.Pix[i:i+4])
		}
	}
}

func cloneImage(img *image.NRGBA) *image.NRGBA {
	out := image.NewNRGBA(img.Bounds())
	copy(out.Pix, img.Pix)
	return out
}
