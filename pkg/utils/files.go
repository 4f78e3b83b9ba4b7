package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
)

// ErrNoROM is returned when an archive doesn't contain a ROM.
var ErrNoROM = errors.New("utils: archive contains no rom")

// romExtensions are the extensions looked for inside archives.
var romExtensions = []string{".gb", ".bin", ".rom"}

// LoadFile loads the given file and performs decompression if necessary.
// Archives (.zip, .7z) are searched for the first file that looks like
// a ROM.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	// try to assert the compression type from the file extension
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".gz":
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("utils: reading %s: %w", filename, err)
		}
		defer r.Close()
		return io.ReadAll(r)
	case ".zip":
		r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("utils: reading %s: %w", filename, err)
		}
		for _, f := range r.File {
			if isROM(f.Name) {
				return readArchived(f.Open)
			}
		}
		return nil, ErrNoROM
	case ".7z":
		r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("utils: reading %s: %w", filename, err)
		}
		for _, f := range r.File {
			if isROM(f.Name) {
				return readArchived(f.Open)
			}
		}
		return nil, ErrNoROM
	}

	// return the data as is
	return data, nil
}

func isROM(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range romExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

func readArchived(open func() (io.ReadCloser, error)) ([]byte, error) {
	rc, err := open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
