package shortcut

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/chatter/shortkey/internal/shortcut/testgen"
)

// fakeSource records subscriptions and delivers events to the listener.
type fakeSource struct {
	listener     Listener
	subscribes   int
	unsubscribes int
}

func (s *fakeSource) Subscribe(l Listener) func() {
	s.listener = l
	s.subscribes++

	return func() {
		s.listener = nil
		s.unsubscribes++
	}
}

func (s *fakeSource) press(key string, mods ...string) *KeyEvent {
	ev := keyEvent(key, mods...)
	if s.listener != nil {
		s.listener(ev)
	}

	return ev
}

func keyEvent(key string, mods ...string) *KeyEvent {
	ev := &KeyEvent{Key: key}

	for _, m := range mods {
		switch m {
		case "ctrl":
			ev.Ctrl = true
		case "alt":
			ev.Alt = true
		case "shift":
			ev.Shift = true
		case "meta":
			ev.Meta = true
		}
	}

	return ev
}

// focusOn is a FocusReporter whose answer tests can change.
type focusOn struct {
	el Element
}

func (f *focusOn) FocusedElement() Element { return f.el }

func counter(n *int) func() {
	return func() { *n++ }
}

// =============================================================================
// Unit Tests - Matching
// =============================================================================

func TestDispatch_FiresOnExactMatch(t *testing.T) {
	d := NewDispatcher(WithAlternatePlatform(false))

	var n int
	d.Register(Options{Keys: Keys("Ctrl A"), Callback: counter(&n)})

	ev := keyEvent("a", "ctrl")
	if fired := d.Dispatch(ev); fired != 1 {
		t.Errorf("expected 1 callback, got %d", fired)
	}
	if n != 1 {
		t.Errorf("callback ran %d times, want 1", n)
	}
	if !ev.DefaultPrevented() {
		t.Error("matching event should have its default prevented")
	}
}

func TestDispatch_CaseInsensitiveKey(t *testing.T) {
	d := NewDispatcher()

	var n int
	d.Register(Options{Keys: Keys("Enter"), Callback: counter(&n)})

	d.Dispatch(keyEvent("Enter"))
	d.Dispatch(keyEvent("ENTER"))

	if n != 2 {
		t.Errorf("expected 2 calls, got %d", n)
	}
}

func TestDispatch_ExtraModifierDoesNotMatch(t *testing.T) {
	d := NewDispatcher(WithAlternatePlatform(false))

	var n int
	d.Register(Options{Keys: Keys("Ctrl A"), Callback: counter(&n)})

	for _, ev := range []*KeyEvent{
		keyEvent("a"),
		keyEvent("a", "ctrl", "shift"),
		keyEvent("a", "ctrl", "alt"),
		keyEvent("a", "ctrl", "meta"),
		keyEvent("b", "ctrl"),
	} {
		if d.Dispatch(ev) != 0 {
			t.Errorf("event %+v must not match ctrl+a", ev)
		}
		if ev.DefaultPrevented() {
			t.Errorf("non-matching event %+v must keep its default", ev)
		}
	}

	if n != 0 {
		t.Errorf("callback should not have run, ran %d times", n)
	}
}

func TestDispatch_AlternatePlatformUsesCommand(t *testing.T) {
	d := NewDispatcher(WithAlternatePlatform(true))

	var n int
	d.Register(Options{Keys: PlatformKeys("Ctrl A", "Command A"), Callback: counter(&n)})

	d.Dispatch(keyEvent("a", "ctrl"))
	if n != 0 {
		t.Fatal("ctrl+a must not match on the alternate platform")
	}

	d.Dispatch(keyEvent("a", "meta"))
	if n != 1 {
		t.Errorf("meta+a should match on the alternate platform, ran %d", n)
	}
}

func TestDispatch_NilCallbackIsInert(t *testing.T) {
	d := NewDispatcher()
	d.Register(Options{Keys: Keys("Enter")})

	ev := keyEvent("enter")
	if d.Dispatch(ev) != 0 || ev.DefaultPrevented() {
		t.Error("registration without callback must not claim events")
	}
}

func TestDispatch_EmptySpecNeverFires(t *testing.T) {
	d := NewDispatcher()

	var n int
	d.Register(Options{Keys: Keys(""), Callback: counter(&n)})

	d.Dispatch(keyEvent(""))
	d.Dispatch(keyEvent("a"))

	if n != 0 {
		t.Errorf("empty spec fired %d times", n)
	}
}

func TestDispatch_NilEvent(t *testing.T) {
	d := NewDispatcher()
	d.Register(Options{Keys: Keys("a"), Callback: func() { t.Error("should not fire") }})

	if d.Dispatch(nil) != 0 {
		t.Error("nil event should fire nothing")
	}
}

// =============================================================================
// Unit Tests - Multiplicity and ordering
// =============================================================================

func TestDispatch_AllMatchesFireInOrder(t *testing.T) {
	d := NewDispatcher()

	var order []string
	d.Register(Options{Keys: Keys("Enter"), Callback: func() { order = append(order, "first") }})
	d.Register(Options{Keys: Keys("Escape"), Callback: func() { order = append(order, "other") }})
	d.Register(Options{Keys: Keys("enter"), Callback: func() { order = append(order, "second") }})

	if fired := d.Dispatch(keyEvent("Enter")); fired != 2 {
		t.Errorf("expected 2 callbacks, got %d", fired)
	}

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("expected [first second], got %v", order)
	}
}

func TestDispatch_DisablingOneLeavesOther(t *testing.T) {
	d := NewDispatcher()

	var a, b int
	ha := d.Register(Options{Keys: Keys("Enter"), Callback: counter(&a)})
	d.Register(Options{Keys: Keys("Enter"), Callback: counter(&b)})

	ha.SetEnabled(false)
	d.Dispatch(keyEvent("enter"))

	if a != 0 || b != 1 {
		t.Errorf("expected a=0 b=1, got a=%d b=%d", a, b)
	}
}

func TestDispatch_DisabledDoesNotPreventDefault(t *testing.T) {
	d := NewDispatcher()
	d.Register(Options{Keys: Keys("Enter"), Disabled: true, Callback: func() {}})

	ev := keyEvent("enter")
	d.Dispatch(ev)

	if ev.DefaultPrevented() {
		t.Error("disabled shortcut must not prevent default")
	}
}

func TestDispatch_UnregisterDuringDispatch(t *testing.T) {
	d := NewDispatcher()

	var second int

	var h2 *Handle

	d.Register(Options{Keys: Keys("Escape"), Callback: func() { h2.Unregister() }})
	h2 = d.Register(Options{Keys: Keys("Escape"), Callback: counter(&second)})

	if fired := d.Dispatch(keyEvent("escape")); fired != 1 {
		t.Errorf("expected only the first callback, got %d", fired)
	}
	if second != 0 {
		t.Error("callback unregistered earlier in the same pass must not run")
	}
}

func TestDispatch_RegisterDuringDispatchWaitsForNextEvent(t *testing.T) {
	d := NewDispatcher()

	var late int

	registered := false
	d.Register(Options{Keys: Keys("Enter"), Callback: func() {
		if !registered {
			registered = true
			d.Register(Options{Keys: Keys("Enter"), Callback: counter(&late)})
		}
	}})

	d.Dispatch(keyEvent("enter"))
	if late != 0 {
		t.Fatal("registration added mid-dispatch fired for the same event")
	}

	d.Dispatch(keyEvent("enter"))
	if late != 1 {
		t.Errorf("registration should fire on the next event, ran %d", late)
	}
}

func TestDispatch_StateChangeMidPassIsSeen(t *testing.T) {
	d := NewDispatcher()

	var second int

	var h2 *Handle

	d.Register(Options{Keys: Keys("Enter"), Callback: func() { h2.SetEnabled(false) }})
	h2 = d.Register(Options{Keys: Keys("Enter"), Callback: counter(&second)})

	d.Dispatch(keyEvent("enter"))

	if second != 0 {
		t.Error("registration disabled by an earlier callback must not fire")
	}
}

func TestDispatch_Multiplicity_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := testgen.Shortcut().Draw(t, "combo")
		n := rapid.IntRange(1, 6).Draw(t, "registrations")

		d := NewDispatcher(WithAlternatePlatform(false))
		counts := make([]int, n)
		handles := make([]*Handle, n)

		for i := range n {
			handles[i] = d.Register(Options{Keys: Keys(c.Spec), Callback: counter(&counts[i])})
		}

		disabled := rapid.IntRange(-1, n-1).Draw(t, "disabled")
		if disabled >= 0 {
			handles[disabled].SetEnabled(false)
		}

		d.Dispatch(&KeyEvent{Key: c.Key, Ctrl: c.Ctrl, Alt: c.Alt, Shift: c.Shift, Meta: c.Meta})

		for i, got := range counts {
			want := 1
			if i == disabled {
				want = 0
			}
			if got != want {
				t.Errorf("registration %d fired %d times, want %d", i, got, want)
			}
		}
	})
}

// =============================================================================
// Unit Tests - Focus suppression
// =============================================================================

func TestDispatch_FocusOptions(t *testing.T) {
	focus := &focusOn{}
	d := NewDispatcher(WithFocus(focus))

	var guarded, plain int
	d.Register(Options{
		Keys:             Keys("ArrowUp"),
		DisallowFocusing: SuppressOn(FocusOptions{Input: true}),
		Callback:         counter(&guarded),
	})
	d.Register(Options{Keys: Keys("ArrowUp"), Callback: counter(&plain)})

	for _, el := range []Element{ElementNone, ElementTextarea, ElementSelect, ElementButton, ElementOther} {
		focus.el = el
		guarded, plain = 0, 0

		d.Dispatch(keyEvent("arrowup"))

		if guarded != plain || guarded != 1 {
			t.Errorf("focus %v: guarded=%d plain=%d, want both 1", el, guarded, plain)
		}
	}

	focus.el = ElementInput
	guarded, plain = 0, 0
	d.Dispatch(keyEvent("arrowup"))

	if guarded != 0 {
		t.Error("shortcut must not fire while an input is focused")
	}
	if plain != 1 {
		t.Error("unsuppressed shortcut must still fire while an input is focused")
	}
}

func TestDispatch_SuppressAll(t *testing.T) {
	focus := &focusOn{}
	d := NewDispatcher(WithFocus(focus))

	var n int
	d.Register(Options{Keys: Keys("a"), DisallowFocusing: SuppressAll(), Callback: counter(&n)})

	focus.el = ElementNone
	d.Dispatch(keyEvent("a"))
	if n != 1 {
		t.Fatalf("body focus should not suppress, ran %d", n)
	}

	for _, el := range []Element{ElementInput, ElementTextarea, ElementSelect, ElementButton, ElementOther} {
		focus.el = el
		ev := keyEvent("a")
		d.Dispatch(ev)

		if ev.DefaultPrevented() {
			t.Errorf("focus %v: suppressed shortcut must not prevent default", el)
		}
	}

	if n != 1 {
		t.Errorf("shortcut fired under focus, total %d", n)
	}
}

func TestWithFocus_FocusFunc(t *testing.T) {
	el := ElementButton
	d := NewDispatcher(WithFocus(FocusFunc(func() Element { return el })))

	var n int
	d.Register(Options{Keys: Keys("ArrowRight"), DisallowFocusing: SuppressOn(FocusOptions{Button: true}), Callback: counter(&n)})

	d.Dispatch(keyEvent("arrowright"))
	el = ElementNone
	d.Dispatch(keyEvent("arrowright"))

	if n != 1 {
		t.Errorf("expected exactly one call after focus moved off the button, got %d", n)
	}
}

// =============================================================================
// Unit Tests - Listener lifecycle
// =============================================================================

func TestSource_SingleSubscription(t *testing.T) {
	src := &fakeSource{}
	d := NewDispatcher(WithSource(src))

	if src.subscribes != 0 {
		t.Fatal("dispatcher should not subscribe before the first registration")
	}

	h1 := d.Register(Options{Keys: Keys("a"), Callback: func() {}})
	h2 := d.Register(Options{Keys: Keys("b"), Callback: func() {}})

	if src.subscribes != 1 {
		t.Errorf("expected one shared subscription, got %d", src.subscribes)
	}

	h1.Unregister()
	if src.unsubscribes != 0 {
		t.Error("listener must stay while registrations remain")
	}

	h2.Unregister()
	if src.unsubscribes != 1 || src.listener != nil {
		t.Error("listener must be removed with the last registration")
	}

	d.Register(Options{Keys: Keys("c"), Callback: func() {}})
	if src.subscribes != 2 {
		t.Errorf("expected re-subscription, got %d subscribes", src.subscribes)
	}
}

func TestSource_NoCallbackAfterUnregister(t *testing.T) {
	src := &fakeSource{}
	d := NewDispatcher(WithSource(src))

	var n int
	h := d.Register(Options{Keys: Keys("Enter"), Callback: counter(&n)})
	keep := d.Register(Options{Keys: Keys("Escape"), Callback: func() {}})

	src.press("enter")
	h.Unregister()
	h.Unregister()
	src.press("enter")

	if n != 1 {
		t.Errorf("expected 1 call before unregistering, got %d", n)
	}
	if h.Live() || !keep.Live() {
		t.Error("unexpected live state after unregister")
	}
	if d.Len() != 1 {
		t.Errorf("expected 1 live registration, got %d", d.Len())
	}
}

func TestHandles_RegistrationOrder(t *testing.T) {
	d := NewDispatcher()
	hs := d.RegisterAll(
		Options{Name: "a", Keys: Keys("a")},
		Options{Name: "b", Keys: Keys("b")},
		Options{Name: "c", Keys: Keys("c")},
	)

	hs[1].Unregister()

	got := d.Handles()
	if len(got) != 2 || got[0].Name() != "a" || got[1].Name() != "c" {
		t.Errorf("unexpected handles after unregister: %v", got)
	}

	// The returned slice is a copy.
	got[0] = nil
	if d.Handles()[0] == nil {
		t.Error("Handles must return a copy")
	}
}

func TestRebind_KeepsStateAndPosition(t *testing.T) {
	d := NewDispatcher(WithAlternatePlatform(false))

	var order []string
	h := d.Register(Options{Name: "x", Keys: Keys("Enter"), Disabled: true, Callback: func() { order = append(order, "x") }})
	d.Register(Options{Name: "y", Keys: Keys("Ctrl S"), Callback: func() { order = append(order, "y") }})

	h.Rebind(Keys("Ctrl S"))
	if h.Enabled() {
		t.Fatal("rebind must keep the disabled state")
	}

	h.SetEnabled(true)
	d.Dispatch(keyEvent("s", "ctrl"))

	if len(order) != 2 || order[0] != "x" {
		t.Errorf("rebound registration should keep its position, got %v", order)
	}
	if h.Descriptor() != (Descriptor{Key: "s", Ctrl: true}) {
		t.Errorf("unexpected descriptor after rebind: %+v", h.Descriptor())
	}
}
