package dom

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinkOnloadForImages_NoImagesCompletesImmediately(t *testing.T) {
	el := NewElement("div", "")
	el.SetHTML("<p>text only</p>")

	completed := false
	g := SinkOnloadForImages(el, OnComplete(func() { completed = true }))

	assert.True(t, completed)
	assert.Equal(t, 0, g.Total())
	assert.Equal(t, 0, g.Pending())
	require.NoError(t, g.Wait(context.Background()))
}

func TestSinkOnloadForImages_CompletesAfterLastImage(t *testing.T) {
	el := NewElement("div", "")
	el.SetHTML(`<img src="a.png"><img src="b.png">`)

	var loaded []string
	completed := 0
	g := SinkOnloadForImages(el,
		OnImageLoad(func(img Image) { loaded = append(loaded, img.Src()) }),
		OnComplete(func() { completed++ }),
	)

	// Registration does not wait for the images.
	assert.Equal(t, 2, g.Total())
	assert.Equal(t, 2, g.Pending())
	assert.Equal(t, 0, completed)

	images := el.Images()
	images[1].(*MemImage).Load()
	assert.Equal(t, 1, g.Pending())
	assert.Equal(t, 0, completed)

	images[0].(*MemImage).Load()
	assert.Equal(t, 0, g.Pending())
	assert.Equal(t, 1, completed)
	assert.Equal(t, []string{"b.png", "a.png"}, loaded)

	select {
	case <-g.Done():
	default:
		t.Fatal("Done channel not closed after all images loaded")
	}
}

// fakeImage settles through every registered hook, standing in for a
// browser image that fires both load and error.
type fakeImage struct {
	mu    sync.Mutex
	hooks []func()
}

func (f *fakeImage) Src() string { return "fake.png" }

func (f *fakeImage) OnLoad(fn func()) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hooks = append(f.hooks, fn)
	i := len(f.hooks) - 1
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.hooks[i] = nil
	}
}

func (f *fakeImage) fire() {
	f.mu.Lock()
	hooks := append([]func(){}, f.hooks...)
	f.mu.Unlock()
	for _, fn := range hooks {
		if fn != nil {
			fn()
		}
	}
}

func (f *fakeImage) live() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, fn := range f.hooks {
		if fn != nil {
			n++
		}
	}
	return n
}

type fakeTarget struct {
	Element
	images []Image
}

func (f *fakeTarget) Images() []Image { return f.images }

func TestLoadGroup_DuplicateSettleCountsOnce(t *testing.T) {
	a, b := &fakeImage{}, &fakeImage{}
	g := SinkOnloadForImages(&fakeTarget{images: []Image{a, b}})

	a.fire()
	a.fire()
	assert.Equal(t, 1, g.Pending())
}

func TestLoadGroup_WaitAcrossGoroutines(t *testing.T) {
	images := make([]Image, 8)
	for i := range images {
		images[i] = &fakeImage{}
	}
	g := SinkOnloadForImages(&fakeTarget{images: images})

	var wg sync.WaitGroup
	for _, img := range images {
		wg.Add(1)
		go func(f *fakeImage) {
			defer wg.Done()
			f.fire()
		}(img.(*fakeImage))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, g.Wait(ctx))
	wg.Wait()
	assert.Equal(t, 0, g.Pending())
}

func TestLoadGroup_WaitHonoursContext(t *testing.T) {
	g := SinkOnloadForImages(&fakeTarget{images: []Image{&fakeImage{}}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, g.Wait(ctx), context.Canceled)
}

func TestLoadGroup_CancelReleasesHooksAndSilencesCallbacks(t *testing.T) {
	a, b := &fakeImage{}, &fakeImage{}
	completed := 0
	var settled []string
	g := SinkOnloadForImages(&fakeTarget{images: []Image{a, b}},
		OnImageLoad(func(img Image) { settled = append(settled, img.Src()) }),
		OnComplete(func() { completed++ }),
	)

	a.fire()
	require.Equal(t, 1, g.Pending())

	g.Cancel()
	assert.True(t, g.Cancelled())
	assert.Equal(t, 0, b.live(), "pending image keeps no hook")

	b.fire()
	assert.Equal(t, 0, completed)
	assert.Equal(t, []string{"fake.png"}, settled)
	assert.ErrorIs(t, g.Wait(context.Background()), ErrLoadCancelled)

	// A second cancel is a no-op.
	g.Cancel()
	assert.True(t, g.Cancelled())
}

func TestLoadGroup_CancelAfterCompleteIsNoop(t *testing.T) {
	a := &fakeImage{}
	g := SinkOnloadForImages(&fakeTarget{images: []Image{a}})
	a.fire()

	g.Cancel()
	assert.False(t, g.Cancelled())
	require.NoError(t, g.Wait(context.Background()))
}

func TestLoadGroup_CancelUnregistersFromElement(t *testing.T) {
	el := NewElement("div", "")
	el.SetHTML(`<img src="a.png">`)
	completed := false
	g := SinkOnloadForImages(el, OnComplete(func() { completed = true }))

	img := el.Images()[0].(*MemImage)
	require.Equal(t, 1, img.Watched())

	g.Cancel()
	assert.Equal(t, 0, img.Watched())
	el.FireImageLoads()
	assert.False(t, completed)
}
