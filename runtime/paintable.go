package runtime

import "github.com/vcrobe/nojs-uidl/uidl"

// Paintable is a client-side component that redraws itself from update
// records. This interface has NO build tags, so both WASM and native
// test builds share it.
type Paintable interface {
	// UpdateFromUIDL applies one update record. An error means the record
	// did not fit the component and nothing was drawn.
	UpdateFromUIDL(u *uidl.Node) error
}
