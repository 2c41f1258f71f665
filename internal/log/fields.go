package log

import (
	"encoding/hex"
	"fmt"
)

type fieldType int

const (
	fieldString fieldType = iota
	fieldBool
	fieldUint
	fieldInt
	fieldHex8
	fieldHex16
	fieldHex32
	fieldError
	fieldBlob
)

type zfield struct {
	key string
	typ fieldType

	str string
	u64 uint64
	b   bool
	err error
	blb []byte
}

func (f zfield) value() any {
	switch f.typ {
	case fieldString:
		return f.str
	case fieldBool:
		return f.b
	case fieldUint:
		return f.u64
	case fieldInt:
		return int64(f.u64)
	case fieldHex8:
		return fmt.Sprintf("%02x", uint8(f.u64))
	case fieldHex16:
		return fmt.Sprintf("%04x", uint16(f.u64))
	case fieldHex32:
		return fmt.Sprintf("%08x", uint32(f.u64))
	case fieldError:
		if f.err == nil {
			return "<nil>"
		}
		return f.err.Error()
	case fieldBlob:
		return hex.Dump(f.blb)
	}
	return nil
}
