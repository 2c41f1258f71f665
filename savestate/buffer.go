package savestate

import "encoding/binary"

// Buffer is a minimal in-memory Stream, little-endian like the CPU bus it
// sits behind. It is not the multi-subsystem container a host emulator would
// ship (see package doc); it exists so cartridge and flash tests can save
// then load without a host-provided stream.
type Buffer struct {
	buf     []byte
	off     int
	writing bool
}

// NewSaveBuffer returns a Buffer in write mode, appending to an empty slice.
func NewSaveBuffer() *Buffer {
	return &Buffer{writing: true}
}

// NewLoadBuffer returns a Buffer in read mode over previously-saved bytes.
func NewLoadBuffer(data []byte) *Buffer {
	return &Buffer{buf: data, writing: false}
}

// Payload returns the accumulated bytes after a write-mode pass.
func (b *Buffer) Payload() []byte { return b.buf }

func (b *Buffer) Saving() bool { return b.writing }

func (b *Buffer) Section(tag string) {
	var raw [4]byte
	copy(raw[:], tag)
	b.Bytes4(raw[:])
}

func (b *Buffer) Bytes4(v []byte) {
	if b.writing {
		b.buf = append(b.buf, v...)
		return
	}
	copy(v, b.buf[b.off:b.off+4])
	b.off += 4
}

func (b *Buffer) Bool(v *bool) {
	var u uint8
	if b.writing && *v {
		u = 1
	}
	b.U8(&u)
	if !b.writing {
		*v = u != 0
	}
}

func (b *Buffer) U8(v *uint8) {
	if b.writing {
		b.buf = append(b.buf, *v)
		return
	}
	*v = b.buf[b.off]
	b.off++
}

func (b *Buffer) U16(v *uint16) {
	if b.writing {
		var raw [2]byte
		binary.LittleEndian.PutUint16(raw[:], *v)
		b.buf = append(b.buf, raw[:]...)
		return
	}
	*v = binary.LittleEndian.Uint16(b.buf[b.off:])
	b.off += 2
}

func (b *Buffer) U32(v *uint32) {
	if b.writing {
		var raw [4]byte
		binary.LittleEndian.PutUint32(raw[:], *v)
		b.buf = append(b.buf, raw[:]...)
		return
	}
	*v = binary.LittleEndian.Uint32(b.buf[b.off:])
	b.off += 4
}

func (b *Buffer) Bytes(v []byte) {
	if b.writing {
		b.buf = append(b.buf, v...)
		return
	}
	copy(v, b.buf[b.off:b.off+len(v)])
	b.off += len(v)
}
