package platform

import (
	"os"

	"github.com/go-faster/errors"
)

// OSFiles implements the file-opening half of Platform over the local
// filesystem. Rumble is left to an embedded Rumble implementation so a host
// can mix os files with either sdlhaptic or noop.
type OSFiles struct {
	Rumble
}

// NewOSFiles returns a Platform backed by the local filesystem and a no-op
// rumble motor. Embed or replace Rumble to wire a real one.
func NewOSFiles() *OSFiles {
	return &OSFiles{Rumble: NoopRumble{}}
}

func (OSFiles) OpenFile(path string, mode FileMode) (RandomAccessFile, error) {
	var flag int
	switch mode {
	case FileModeReadOnly:
		flag = os.O_RDONLY
	case FileModeReadWrite:
		flag = os.O_RDWR | os.O_CREATE
	default:
		return nil, errors.Errorf("platform: unknown file mode %d", mode)
	}

	f, err := os.OpenFile(path, flag, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %q", path)
	}
	return osFile{f}, nil
}

type osFile struct{ *os.File }

func (f osFile) Size() (int64, error) {
	fi, err := f.Stat()
	if err != nil {
		return 0, errors.Wrap(err, "stat")
	}
	return fi.Size(), nil
}
