// Package billy adapts go-billy files into sources for samecontent.Files.
package billy

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/go-git/go-billy/v5"

	"github.com/kalbasit/samecontent"
)

// File wraps an open go-billy File. billy files cannot describe
// themselves, so Stat is resolved through the filesystem they came from.
type File struct {
	file billy.File
	fs   billy.Basic
}

// NewFile returns a File reading from f, whose metadata is looked up in fsys.
// The caller keeps ownership of f and must close it.
func NewFile(fsys billy.Basic, f billy.File) *File {
	return &File{
		file: f,
		fs:   fsys,
	}
}

// Open opens name on fsys and wraps it. The returned File must be closed.
func Open(fsys billy.Basic, name string) (*File, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("billy: open %q: %w", name, err)
	}

	return NewFile(fsys, f), nil
}

// Name returns the name the file was opened with.
func (f *File) Name() string {
	return f.file.Name()
}

// Read implements io.Reader. io.EOF is returned unwrapped.
func (f *File) Read(p []byte) (int, error) {
	n, err := f.file.Read(p)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return n, io.EOF
		}

		return n, fmt.Errorf("billy: read %q: %w", f.file.Name(), err)
	}

	return n, nil
}

// Seek implements io.Seeker.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	pos, err := f.file.Seek(offset, whence)
	if err != nil {
		return pos, fmt.Errorf("billy: seek %q off=%d whence=%d: %w", f.file.Name(), offset, whence, err)
	}

	return pos, nil
}

// Stat describes the file as its filesystem sees it.
func (f *File) Stat() (fs.FileInfo, error) {
	info, err := f.fs.Stat(f.file.Name())
	if err != nil {
		return nil, fmt.Errorf("billy: stat %q: %w", f.file.Name(), err)
	}

	return info, nil
}

// Close closes the underlying billy file.
func (f *File) Close() error {
	if err := f.file.Close(); err != nil {
		return fmt.Errorf("billy: close %q: %w", f.file.Name(), err)
	}

	return nil
}

var _ samecontent.File = (*File)(nil)
