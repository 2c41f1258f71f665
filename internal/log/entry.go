package log

import "gopkg.in/Sirupsen/logrus.v0"

// Entry is a lazily-built logrus entry scoped to a module. It is nullable in
// spirit: constructing one is cheap, and nothing is actually formatted or
// sent to logrus unless the owning module has the requested level enabled.
type Entry struct {
	mod    Module
	lvl    Level
	msg    string
	fields []zfield
}

// ZEntry starts a chainable, allocation-light log entry for mod at lvl. It
// returns a usable zero value even when disabled, so call sites never need
// to nil-check; every chained setter and the terminal End() are no-ops when
// the level isn't enabled.
func (mod Module) zentry(lvl Level, msg string) Entry {
	return Entry{mod: mod, lvl: lvl, msg: msg}
}

func (mod Module) DebugZ(msg string) Entry { return mod.zentry(DebugLevel, msg) }
func (mod Module) InfoZ(msg string) Entry  { return mod.zentry(InfoLevel, msg) }
func (mod Module) WarnZ(msg string) Entry  { return mod.zentry(WarnLevel, msg) }
func (mod Module) ErrorZ(msg string) Entry { return mod.zentry(ErrorLevel, msg) }

func (e Entry) with(f zfield) Entry {
	if !e.mod.Enabled(e.lvl) {
		return e
	}
	e.fields = append(e.fields, f)
	return e
}

func (e Entry) String(key, val string) Entry { return e.with(zfield{key: key, typ: fieldString, str: val}) }
func (e Entry) Bool(key string, val bool) Entry {
	return e.with(zfield{key: key, typ: fieldBool, b: val})
}
func (e Entry) Uint8(key string, val uint8) Entry {
	return e.with(zfield{key: key, typ: fieldUint, u64: uint64(val)})
}
func (e Entry) Uint16(key string, val uint16) Entry {
	return e.with(zfield{key: key, typ: fieldUint, u64: uint64(val)})
}
func (e Entry) Uint32(key string, val uint32) Entry {
	return e.with(zfield{key: key, typ: fieldUint, u64: uint64(val)})
}
func (e Entry) Int(key string, val int) Entry {
	return e.with(zfield{key: key, typ: fieldInt, u64: uint64(val)})
}
func (e Entry) Hex8(key string, val uint8) Entry {
	return e.with(zfield{key: key, typ: fieldHex8, u64: uint64(val)})
}
func (e Entry) Hex16(key string, val uint16) Entry {
	return e.with(zfield{key: key, typ: fieldHex16, u64: uint64(val)})
}
func (e Entry) Hex32(key string, val uint32) Entry {
	return e.with(zfield{key: key, typ: fieldHex32, u64: uint64(val)})
}
func (e Entry) Err(err error) Entry {
	return e.with(zfield{key: "error", typ: fieldError, err: err})
}
func (e Entry) Blob(key string, val []byte) Entry {
	return e.with(zfield{key: key, typ: fieldBlob, blb: val})
}

// End flushes the entry to logrus. A disabled entry is a no-op.
func (e Entry) End() {
	if !e.mod.Enabled(e.lvl) {
		return
	}

	fields := make(logrus.Fields, len(e.fields)+1)
	fields["mod"] = e.mod.String()
	for _, f := range e.fields {
		fields[f.key] = f.value()
	}

	entry := logrus.StandardLogger().WithFields(fields)
	switch e.lvl {
	case DebugLevel:
		entry.Debug(e.msg)
	case InfoLevel:
		entry.Info(e.msg)
	case WarnLevel:
		entry.Warn(e.msg)
	case ErrorLevel:
		entry.Error(e.msg)
	case FatalLevel:
		entry.Fatal(e.msg)
	case PanicLevel:
		entry.Panic(e.msg)
	default:
		entry.Print(e.msg)
	}
}

// Printf-family convenience wrappers, used where a chained Entry would be
// overkill (single free-form message, no structured fields).

func (mod Module) Debugf(format string, args ...any) {
	if mod.Enabled(DebugLevel) {
		logrus.StandardLogger().WithField("mod", mod.String()).Debugf(format, args...)
	}
}

func (mod Module) Warnf(format string, args ...any) {
	if mod.Enabled(WarnLevel) {
		logrus.StandardLogger().WithField("mod", mod.String()).Warnf(format, args...)
	}
}

func (mod Module) Errorf(format string, args ...any) {
	if mod.Enabled(ErrorLevel) {
		logrus.StandardLogger().WithField("mod", mod.String()).Errorf(format, args...)
	}
}

func (mod Module) Fatalf(format string, args ...any) {
	logrus.StandardLogger().WithField("mod", mod.String()).Fatalf(format, args...)
}
