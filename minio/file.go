// Package minio adapts MinIO/S3 objects into sources for samecontent.Files.
package minio

import (
	"io"
	"io/fs"
	"time"

	"github.com/minio/minio-go/v7"

	"github.com/kalbasit/samecontent"
)

// Object is the subset of *minio.Object needed for comparing. The object
// size comes from its metadata, so differing objects can be told apart
// before any content is downloaded.
type Object interface {
	io.ReadSeeker
	Stat() (minio.ObjectInfo, error)
}

// File represents an open object handle.
type File struct {
	obj Object
}

// NewFile wraps obj, typically the result of (*minio.Client).GetObject.
// The caller keeps ownership of obj and must close it.
func NewFile(obj Object) *File {
	return &File{obj: obj}
}

// Read implements io.Reader.
func (f *File) Read(p []byte) (int, error) {
	return f.obj.Read(p)
}

// Seek implements io.Seeker.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	return f.obj.Seek(offset, whence)
}

// Stat returns the object's metadata as a regular file.
func (f *File) Stat() (fs.FileInfo, error) {
	info, err := f.obj.Stat()
	if err != nil {
		return nil, &fs.PathError{Op: "stat", Path: info.Key, Err: err}
	}

	return &fileInfo{
		name:    info.Key,
		size:    info.Size,
		modTime: info.LastModified,
		mode:    0o644,
	}, nil
}

// fileInfo implements fs.FileInfo for objects.
type fileInfo struct {
	name    string
	size    int64
	modTime time.Time
	mode    fs.FileMode
}

func (fi *fileInfo) Name() string       { return fi.name }
func (fi *fileInfo) Size() int64        { return fi.size }
func (fi *fileInfo) Mode() fs.FileMode  { return fi.mode }
func (fi *fileInfo) ModTime() time.Time { return fi.modTime }
func (fi *fileInfo) IsDir() bool        { return fi.mode&fs.ModeDir != 0 }
func (fi *fileInfo) Sys() interface{}   { return nil }

// Compile-time interface checks.
var (
	_ samecontent.File = (*File)(nil)
	_ Object           = (*minio.Object)(nil)
)
