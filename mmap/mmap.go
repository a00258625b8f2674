package mmap

import (
	"errors"
	"io"
	"os"
	"unsafe"
)

// ReadFile maps the named file into memory for reading and returns its
// content as a string, along with a function that releases the mapping.
// The string must not be used after the release function is called.
// On platforms without a usable memory mapping facility, the file content
// is read into memory instead. On success, the release function is never nil.
func ReadFile(name string) (data string, release func() error, err error) {
	f, err := os.Open(name)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return "", nil, err
	}

	size := fi.Size()
	if size == 0 {
		return "", noopRelease, nil
	}

	b, err := readFile(f, int(size))
	if err != nil {
		if errors.Is(err, errors.ErrUnsupported) {
			return readFull(f, size)
		}
		return "", nil, err
	}
	return unsafe.String(&b[0], len(b)), func() error { return releaseFile(b) }, nil
}

func readFull(f *os.File, size int64) (string, func() error, error) {
	b := make([]byte, size)
	if _, err := io.ReadFull(f, b); err != nil {
		return "", nil, err
	}
	return unsafe.String(&b[0], len(b)), noopRelease, nil
}

func noopRelease() error {
	return nil
}
