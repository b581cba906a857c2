package samecontent_test

import (
	"bytes"
	"io"
	"io/fs"
	"time"
)

// trackedFile is an in-memory File that counts the bytes read through it
// and can be told to fail Stat or Seek.
type trackedFile struct {
	r *bytes.Reader

	bytesRead int
	reads     int
	seeks     int

	mode    fs.FileMode
	statErr error
	seekErr error
}

func newTrackedFile(data []byte) *trackedFile {
	return &trackedFile{r: bytes.NewReader(data)}
}

func (f *trackedFile) Read(p []byte) (int, error) {
	f.reads++
	n, err := f.r.Read(p)
	f.bytesRead += n

	return n, err
}

func (f *trackedFile) Seek(offset int64, whence int) (int64, error) {
	f.seeks++
	if f.seekErr != nil {
		return 0, f.seekErr
	}

	return f.r.Seek(offset, whence)
}

func (f *trackedFile) Stat() (fs.FileInfo, error) {
	if f.statErr != nil {
		return nil, f.statErr
	}

	return memInfo{size: f.r.Size(), mode: f.mode}, nil
}

type memInfo struct {
	size int64
	mode fs.FileMode
}

func (fi memInfo) Name() string       { return "mem" }
func (fi memInfo) Size() int64        { return fi.size }
func (fi memInfo) Mode() fs.FileMode  { return fi.mode }
func (fi memInfo) ModTime() time.Time { return time.Time{} }
func (fi memInfo) IsDir() bool        { return fi.mode.IsDir() }
func (fi memInfo) Sys() interface{}   { return nil }

// plainFile hides every size capability of the wrapped reader.
type plainFile struct {
	rs io.ReadSeeker
}

func (f plainFile) Read(p []byte) (int, error)                   { return f.rs.Read(p) }
func (f plainFile) Seek(offset int64, whence int) (int64, error) { return f.rs.Seek(offset, whence) }

// fragmentReader returns at most max bytes per Read.
type fragmentReader struct {
	r   io.Reader
	max int
}

func (f *fragmentReader) Read(p []byte) (int, error) {
	if len(p) > f.max {
		p = p[:f.max]
	}

	return f.r.Read(p)
}
