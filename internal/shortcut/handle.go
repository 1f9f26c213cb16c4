package shortcut

// Handle is a live registration. Its enabled state can be read and changed
// at any time; changes apply from the next evaluation on.
type Handle struct {
	d        *Dispatcher
	name     string
	spec     Spec
	desc     Descriptor
	enabled  bool
	suppress Suppression
	callback func()
	live     bool

	// txn identifies the backup transaction currently in effect, 0 if none.
	txn    uint64
	txnSeq uint64
}

// Name returns the registration name.
func (h *Handle) Name() string {
	return h.name
}

// Spec returns the spec the handle was registered (or last rebound) with.
func (h *Handle) Spec() Spec {
	return h.spec
}

// Descriptor returns the resolved descriptor.
func (h *Handle) Descriptor() Descriptor {
	return h.desc
}

// Suppression returns the focus policy.
func (h *Handle) Suppression() Suppression {
	return h.suppress
}

// Live reports whether the handle is still registered.
func (h *Handle) Live() bool {
	return h.live
}

// Enabled reports whether the shortcut is active.
func (h *Handle) Enabled() bool {
	return h.enabled
}

// SetEnabled changes the state. It ends any backup transaction in effect, so
// a pending token's Restore becomes a no-op.
func (h *Handle) SetEnabled(enabled bool) {
	h.enabled = enabled
	h.txn = 0
}

// Rebind replaces the spec, keeping state, focus policy and position.
func (h *Handle) Rebind(spec Spec) {
	h.spec = spec
	h.desc = Resolve(spec, h.d.alternate)
	h.d.log.Debug("shortcut rebound", "name", h.name, "descriptor", h.desc.String())
}

// Unregister removes the registration. The callback is never invoked after
// Unregister returns. Calling it again does nothing.
func (h *Handle) Unregister() {
	if !h.live {
		return
	}

	h.live = false
	h.d.remove(h)
}

// Backup flips the state and returns a token that undoes the flip.
func (h *Handle) Backup() *BackupToken {
	return h.begin(!h.enabled)
}

// BackupTo moves the state to target and returns a token that undoes the
// change. If the state already equals target nothing changes and the token's
// Restore does nothing.
func (h *Handle) BackupTo(target bool) *BackupToken {
	if h.enabled == target {
		return &BackupToken{h: h}
	}

	return h.begin(target)
}

func (h *Handle) begin(target bool) *BackupToken {
	h.txnSeq++

	t := &BackupToken{
		h:    h,
		id:   h.txnSeq,
		prev: h.enabled,
	}

	h.enabled = target
	h.txn = t.id

	return t
}

// BackupToken undoes one enable/disable transaction.
type BackupToken struct {
	h    *Handle
	id   uint64
	prev bool
}

// Applied reports whether the transaction changed the state when it began.
func (t *BackupToken) Applied() bool {
	return t.id != 0
}

// Restore puts back the state recorded when the transaction began, provided
// the transaction is still in effect: not restored already, not superseded
// by a later backup on the same handle and not overridden by SetEnabled.
// Otherwise it does nothing.
func (t *BackupToken) Restore() {
	if t.id == 0 || t.h.txn != t.id {
		return
	}

	t.h.enabled = t.prev
	t.h.txn = 0
}
