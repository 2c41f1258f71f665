package platform

// Fake is an in-memory Platform for tests: OpenFile is backed by a map of
// named byte buffers instead of the filesystem, and rumble calls are just
// counted.
type Fake struct {
	files        map[string][]byte
	RumbleStarts int
	RumbleStops  int
}

func NewFake() *Fake {
	return &Fake{files: make(map[string][]byte)}
}

// Seed pre-populates a file as if it already existed on disk, for tests that
// need LoadROM/LoadSave to see existing content.
func (f *Fake) Seed(path string, data []byte) {
	buf := make([]byte, len(data))
	copy(buf, data)
	f.files[path] = buf
}

func (f *Fake) OpenFile(path string, mode FileMode) (RandomAccessFile, error) {
	switch mode {
	case FileModeReadOnly, FileModeReadWrite:
	default:
		return nil, errUnknownMode(mode)
	}

	buf, ok := f.files[path]
	if !ok {
		if mode == FileModeReadOnly {
			return nil, errNotFound(path)
		}
		buf = nil
		f.files[path] = buf
	}
	return &fakeFile{f: f, path: path, buf: buf}, nil
}

func (f *Fake) StartRumble() { f.RumbleStarts++ }
func (f *Fake) StopRumble()  { f.RumbleStops++ }

type fakeFile struct {
	f    *Fake
	path string
	buf  []byte
}

func (ff *fakeFile) ReadAt(p []byte, off int64) (int, error) {
	buf := ff.f.files[ff.path]
	n := copy(p, buf[off:])
	if n < len(p) {
		return n, errShortRead
	}
	return n, nil
}

func (ff *fakeFile) WriteAt(p []byte, off int64) (int, error) {
	buf := ff.f.files[ff.path]
	end := int(off) + len(p)
	if end > len(buf) {
		grown := make([]byte, end)
		copy(grown, buf)
		buf = grown
	}
	copy(buf[off:], p)
	ff.f.files[ff.path] = buf
	return len(p), nil
}

func (ff *fakeFile) Close() error { return nil }

func (ff *fakeFile) Size() (int64, error) {
	return int64(len(ff.f.files[ff.path])), nil
}

type fakeError string

func (e fakeError) Error() string { return string(e) }

var errShortRead = fakeError("short read")

func errNotFound(path string) error { return fakeError("no such file: " + path) }
func errUnknownMode(mode FileMode) error {
	return fakeError("unknown file mode")
}
