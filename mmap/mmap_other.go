//go:build !unix && !windows

package mmap

import (
	"errors"
	"os"
)

func readFile(_ *os.File, _ int) ([]byte, error) {
	return nil, errors.ErrUnsupported
}

func releaseFile(_ []byte) error {
	return nil
}
