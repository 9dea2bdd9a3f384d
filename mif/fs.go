package mif

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// CreateFS is a file system that supports creating files.
type CreateFS interface {
	// Create creates or truncates a file for writing.
	Create(name string) (file io.WriteCloser, err error)
}

// DirFS is a CreateFS rooted at a host directory. Absolute names are used
// as is.
type DirFS string

var _ CreateFS = DirFS("")

func (dir DirFS) Create(name string) (file io.WriteCloser, err error) {
	path := filepath.FromSlash(name)
	if !filepath.IsAbs(path) {
		path = filepath.Join(string(dir), path)
	}

	osf, err := os.Create(path)
	if err != nil {
		return
	}

	file = osf
	return
}

// Marshal writes the image text to the file name in filesys.
func (img *Image) Marshal(filesys CreateFS, name string) (err error) {
	file, err := filesys.Create(name)
	if err != nil {
		err = &ErrOutput{Path: name, Err: err}
		return
	}

	_, err = img.WriteTo(file)
	cerr := file.Close()
	if err == nil {
		err = cerr
	}
	if err != nil {
		err = &ErrOutput{Path: name, Err: err}
	}

	return
}

// OutputName returns input with the extension of its final path element
// replaced by ext. If the element has no extension, ext is appended.
func OutputName(input string, ext string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ext
}
