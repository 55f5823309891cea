package dom

import (
	"context"
	"errors"
	"sync"
)

// ErrLoadCancelled is returned by Wait once the group has been cancelled.
var ErrLoadCancelled = errors.New("image load group cancelled")

// LoadOption configures a LoadGroup.
type LoadOption func(*LoadGroup)

// OnImageLoad runs fn each time one of the group's images settles.
func OnImageLoad(fn func(Image)) LoadOption {
	return func(g *LoadGroup) { g.onImage = fn }
}

// OnComplete runs fn once, when every image of the group has settled.
// With no images it runs during SinkOnloadForImages.
func OnComplete(fn func()) LoadOption {
	return func(g *LoadGroup) { g.onComplete = fn }
}

// LoadGroup tracks the pending loads of the images found under a target.
// Resolution may come from any goroutine.
type LoadGroup struct {
	mu         sync.Mutex
	total      int
	pending    int
	cancelled  bool
	releases   []func()
	done       chan struct{}
	stop       chan struct{}
	onImage    func(Image)
	onComplete func()
}

// SinkOnloadForImages registers a load hook on every image currently
// under t and returns the group tracking them. It never blocks; the
// hooks fire later from the host's event loop.
func SinkOnloadForImages(t Target, opts ...LoadOption) *LoadGroup {
	g := &LoadGroup{
		done: make(chan struct{}),
		stop: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	images := t.Images()
	g.total = len(images)
	g.pending = len(images)
	if g.pending == 0 {
		g.complete()
		return g
	}

	g.releases = make([]func(), 0, len(images))
	for _, img := range images {
		g.releases = append(g.releases, img.OnLoad(g.settle(img)))
	}
	return g
}

// settle returns the hook for one image. Extra invocations are ignored so
// that an image firing both load and error counts once.
func (g *LoadGroup) settle(img Image) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			if g.cancelled {
				g.mu.Unlock()
				return
			}
			g.pending--
			last := g.pending == 0
			g.mu.Unlock()

			if g.onImage != nil {
				g.onImage(img)
			}
			if last {
				g.complete()
			}
		})
	}
}

func (g *LoadGroup) complete() {
	close(g.done)
	if g.onComplete != nil {
		g.onComplete()
	}
}

// Cancel unregisters the hooks of every image that has not settled yet.
// After Cancel no callback of the group runs again. Cancelling a
// completed or already cancelled group does nothing.
func (g *LoadGroup) Cancel() {
	g.mu.Lock()
	if g.cancelled || g.pending == 0 {
		g.mu.Unlock()
		return
	}
	g.cancelled = true
	releases := g.releases
	g.releases = nil
	g.mu.Unlock()

	close(g.stop)
	for _, release := range releases {
		release()
	}
}

// Cancelled reports whether Cancel stopped the group before it completed.
func (g *LoadGroup) Cancelled() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cancelled
}

// Total returns the number of images the group registered.
func (g *LoadGroup) Total() int {
	return g.total
}

// Pending returns the number of images that have not settled yet.
func (g *LoadGroup) Pending() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pending
}

// Done is closed when every image has settled. It stays open for a
// cancelled group.
func (g *LoadGroup) Done() <-chan struct{} {
	return g.done
}

// Wait blocks until every image has settled, the group is cancelled, or
// ctx is done. It must not be called from the goroutine that delivers
// the load events.
func (g *LoadGroup) Wait(ctx context.Context) error {
	select {
	case <-g.done:
		return nil
	case <-g.stop:
		return ErrLoadCancelled
	case <-ctx.Done():
		return ctx.Err()
	}
}
