package shortcut

import (
	"slices"

	"github.com/chatter/shortkey/internal/logger"
)

// Options configures one registration.
type Options struct {
	// Keys is the shortcut to match.
	Keys Spec

	// Disabled registers the shortcut inactive. The zero value registers an
	// active shortcut.
	Disabled bool

	// DisallowFocusing blocks the shortcut while certain elements have focus.
	DisallowFocusing Suppression

	// Callback runs when the shortcut fires. A nil callback makes the
	// registration inert.
	Callback func()

	// Name identifies the registration in logs and listings.
	Name string
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithFocus sets the collaborator queried for the focused element.
func WithFocus(f FocusReporter) DispatcherOption {
	return func(d *Dispatcher) {
		if f != nil {
			d.focus = f
		}
	}
}

// WithAlternatePlatform selects the alternate (macOS) spelling of platform
// pairs. By default the running OS decides.
func WithAlternatePlatform(alternate bool) DispatcherOption {
	return func(d *Dispatcher) {
		d.alternate = alternate
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *logger.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if l != nil {
			d.log = l
		}
	}
}

// WithSource attaches the dispatcher to a key source. The dispatcher holds
// one subscription while it has at least one registration.
func WithSource(src Source) DispatcherOption {
	return func(d *Dispatcher) {
		d.source = src
	}
}

// Dispatcher owns the ordered registrations and routes key events to them.
type Dispatcher struct {
	handles   []*Handle
	focus     FocusReporter
	alternate bool
	log       *logger.Logger

	source      Source
	unsubscribe func()
}

// NewDispatcher creates a dispatcher with no registrations.
func NewDispatcher(opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		focus:     noFocus{},
		alternate: IsAlternatePlatform(),
		log:       logger.Discard(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Alternate reports whether platform pairs resolve to their macOS spelling.
func (d *Dispatcher) Alternate() bool {
	return d.alternate
}

// Register adds a shortcut after all existing ones and returns its handle.
func (d *Dispatcher) Register(opts Options) *Handle {
	h := &Handle{
		d:        d,
		name:     opts.Name,
		spec:     opts.Keys,
		desc:     Resolve(opts.Keys, d.alternate),
		enabled:  !opts.Disabled,
		suppress: opts.DisallowFocusing,
		callback: opts.Callback,
		live:     true,
	}

	d.handles = append(d.handles, h)
	d.log.Debug("shortcut registered", "name", h.name, "descriptor", h.desc.String(), "enabled", h.enabled)

	if d.source != nil && d.unsubscribe == nil {
		d.unsubscribe = d.source.Subscribe(d.listen)
		d.log.Debug("key listener subscribed")
	}

	return h
}

// RegisterAll registers several shortcuts in order.
func (d *Dispatcher) RegisterAll(opts ...Options) []*Handle {
	hs := make([]*Handle, 0, len(opts))
	for _, o := range opts {
		hs = append(hs, d.Register(o))
	}

	return hs
}

// Len returns the number of live registrations.
func (d *Dispatcher) Len() int {
	return len(d.handles)
}

// Handles returns the live registrations in registration order.
func (d *Dispatcher) Handles() []*Handle {
	return slices.Clone(d.handles)
}

// Dispatch runs one key event through every registration and returns the
// number of callbacks invoked. Registrations added by a callback are not
// considered for the event being dispatched; registrations removed by a
// callback do not fire afterwards.
func (d *Dispatcher) Dispatch(ev *KeyEvent) int {
	if ev == nil {
		return 0
	}

	in := ev.Descriptor()
	fired := 0

	for _, h := range slices.Clone(d.handles) {
		if !h.live || h.callback == nil || h.desc.Key == "" {
			continue
		}

		if h.desc != in {
			continue
		}

		if el := d.focus.FocusedElement(); h.suppress.Suppresses(el) {
			d.log.Debug("shortcut suppressed by focus", "name", h.name, "element", el.String())
			continue
		}

		if !h.enabled {
			d.log.Debug("shortcut disabled", "name", h.name)
			continue
		}

		ev.PreventDefault()
		d.log.Debug("shortcut fired", "name", h.name, "descriptor", in.String())
		h.callback()

		fired++
	}

	return fired
}

func (d *Dispatcher) listen(ev *KeyEvent) {
	d.Dispatch(ev)
}

func (d *Dispatcher) remove(h *Handle) {
	d.handles = slices.DeleteFunc(d.handles, func(x *Handle) bool { return x == h })
	d.log.Debug("shortcut unregistered", "name", h.name)

	if len(d.handles) == 0 && d.unsubscribe != nil {
		d.unsubscribe()
		d.unsubscribe = nil
		d.log.Debug("key listener unsubscribed")
	}
}
