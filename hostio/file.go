// Package hostio provides the default host capability implementations: files
// backed by the local filesystem and networking backed by net/http.
package hostio

import (
	"fmt"
	"io"
	"os"

	"github.com/patlang/patlib"
)

// OpenFile opens path according to mode and wraps it as a patlib.File.
// Read opens an existing file read-only, Write an existing file read-write,
// Create truncates or creates.
func OpenFile(path string, mode patlib.FileMode) (patlib.File, error) {
	var (
		f   *os.File
		err error
	)
	switch mode {
	case patlib.FileModeRead:
		f, err = os.Open(path)
	case patlib.FileModeWrite:
		f, err = os.OpenFile(path, os.O_RDWR, 0o644)
	case patlib.FileModeCreate:
		f, err = os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	default:
		return nil, fmt.Errorf("invalid file mode %d", mode)
	}
	if err != nil {
		return nil, err
	}
	return &osFile{f: f, path: path}, nil
}

type osFile struct {
	f    *os.File
	path string
}

func (o *osFile) ReadString(n int) (string, error) {
	buf := make([]byte, n)
	read, err := io.ReadFull(o.f, buf)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return string(buf[:read]), nil
}

func (o *osFile) WriteString(data string) error {
	_, err := o.f.WriteString(data)
	return err
}

func (o *osFile) Seek(offset uint64) error {
	_, err := o.f.Seek(int64(offset), io.SeekStart)
	return err
}

func (o *osFile) Size() (uint64, error) {
	info, err := o.f.Stat()
	if err != nil {
		return 0, err
	}
	return uint64(info.Size()), nil
}

func (o *osFile) SetSize(n uint64) error {
	return o.f.Truncate(int64(n))
}

func (o *osFile) Flush() error {
	return o.f.Sync()
}

func (o *osFile) Remove() error {
	if err := o.f.Close(); err != nil {
		return err
	}
	return os.Remove(o.path)
}

func (o *osFile) Close() error {
	return o.f.Close()
}
