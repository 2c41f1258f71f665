// Package savestate defines the bidirectional scalar/array stream this
// module's DoSavestate methods are written against. The stream itself — a
// tagged container shared by every subsystem of a host emulator — is an
// external collaborator (see SPEC_FULL.md §4.8/§6); this package only
// specifies the interface cartridge code consumes, plus a minimal concrete
// implementation good enough to exercise round-trips in this module's own
// tests without a host emulator attached.
package savestate

// Stream is a single typed read-or-write call site: the same call either
// reads into the pointee (load) or writes from it (save), depending on the
// stream's mode. This mirrors melonDS's Savestate::Var family, restated as
// the "SaveStream abstraction... with an internal mode flag" suggested by
// the design notes this module follows.
type Stream interface {
	// Section tags the following calls. Implementations that don't care
	// about multi-subsystem containers (like Buffer below) may no-op this.
	Section(tag string)

	Saving() bool

	Bool(v *bool)
	U8(v *uint8)
	U16(v *uint16)
	U32(v *uint32)
	Bytes(b []byte)
}
