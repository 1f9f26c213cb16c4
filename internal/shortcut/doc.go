// Package shortcut parses human-readable keyboard shortcut specs ("Ctrl A",
// "Command L", "Enter") into canonical descriptors and dispatches key events
// to the registrations that match them.
//
// A Dispatcher owns an ordered list of registrations and a single listener
// subscription on a key Source. Every registration whose descriptor equals
// the incoming event, whose focus policy does not suppress it and which is
// currently enabled fires, in registration order.
//
// Nothing in this package returns an error. Malformed specs produce inert
// descriptors and redundant state transactions are no-ops.
//
// A Dispatcher and its handles are not safe for concurrent use; drive them
// from one goroutine, such as a bubbletea update loop.
package shortcut
