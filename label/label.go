package label

import (
	"github.com/rs/zerolog"

	"github.com/vcrobe/nojs-uidl/dom"
	"github.com/vcrobe/nojs-uidl/uidl"
)

// Option configures a Label.
type Option func(*Label)

// WithImagesLoaded sets the callback run once every image of an update
// has loaded. Layout code uses it to re-measure the label.
func WithImagesLoaded(fn func()) Option {
	return func(l *Label) { l.imagesLoaded = fn }
}

// WithLogger sets the logger used for update tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(l *Label) { l.logger = logger }
}

// Label is the paintable for a label component. It draws into a target
// it does not own.
type Label struct {
	target       dom.Target
	imagesLoaded func()
	logger       zerolog.Logger

	mode    Mode
	pending *dom.LoadGroup
}

// New creates a label drawing into target.
func New(target dom.Target, opts ...Option) *Label {
	l := &Label{
		target: target,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// UpdateFromUIDL renders u into the label's target and cancels the image
// watch of the previous update. On error the target and the label's
// state are unchanged.
func (l *Label) UpdateFromUIDL(u *uidl.Node) error {
	var opts []dom.LoadOption
	if l.imagesLoaded != nil {
		opts = append(opts, dom.OnComplete(l.imagesLoaded))
	}

	group, err := Render(u, l.target, opts...)
	if err != nil {
		return err
	}

	// The previous content is gone; its images must not report anymore.
	if l.pending != nil {
		l.pending.Cancel()
	}
	l.mode = ModeOf(u)
	l.pending = group

	event := l.logger.Debug().Str("id", u.ID()).Stringer("mode", l.mode)
	if group != nil {
		event = event.Int("images", group.Total())
	}
	event.Msg("Label updated")
	return nil
}

// Mode returns the mode of the last successful update.
func (l *Label) Mode() Mode {
	return l.mode
}

// PendingImages returns the image group of the last successful update,
// or nil when that update's mode does not watch images.
func (l *Label) PendingImages() *dom.LoadGroup {
	return l.pending
}

// Target returns the label's target.
func (l *Label) Target() dom.Target {
	return l.target
}
