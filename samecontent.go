package samecontent

import (
	"context"
	"io"

	"go.uber.org/zap"
)

// ContextReader is implemented by sources whose reads can be abandoned when
// ctx is done. The Context variants of the comparison functions prefer
// ReadContext over Read when a source provides it.
type ContextReader interface {
	ReadContext(ctx context.Context, p []byte) (n int, err error)
}

var defaultComparer = &Comparer{
	bufferSize: DefaultBufferSize,
	logger:     zap.NewNop(),
}

// Files reports whether a and b hold the same content, reading
// DefaultBufferSize bytes at a time.
func Files(a, b File) (bool, error) {
	return defaultComparer.Files(a, b)
}

// FilesWithBufferSize is like Files with an explicit buffer size, which
// must be at least 1.
func FilesWithBufferSize(a, b File, size int) (bool, error) {
	c, err := New(WithBufferSize(size))
	if err != nil {
		return false, err
	}

	return c.Files(a, b)
}

// FilesContext is the context-aware form of Files.
func FilesContext(ctx context.Context, a, b File) (bool, error) {
	return defaultComparer.FilesContext(ctx, a, b)
}

// FilesContextWithBufferSize is the context-aware form of FilesWithBufferSize.
func FilesContextWithBufferSize(ctx context.Context, a, b File, size int) (bool, error) {
	c, err := New(WithBufferSize(size))
	if err != nil {
		return false, err
	}

	return c.FilesContext(ctx, a, b)
}

// Readers reports whether a and b yield the same bytes from their current
// positions onward, reading DefaultBufferSize bytes at a time.
func Readers(a, b io.Reader) (bool, error) {
	return defaultComparer.Readers(a, b)
}

// ReadersWithBufferSize is like Readers with an explicit buffer size, which
// must be at least 1.
func ReadersWithBufferSize(a, b io.Reader, size int) (bool, error) {
	c, err := New(WithBufferSize(size))
	if err != nil {
		return false, err
	}

	return c.Readers(a, b)
}

// ReadersContext is the context-aware form of Readers.
func ReadersContext(ctx context.Context, a, b io.Reader) (bool, error) {
	return defaultComparer.ReadersContext(ctx, a, b)
}

// ReadersContextWithBufferSize is the context-aware form of ReadersWithBufferSize.
func ReadersContextWithBufferSize(ctx context.Context, a, b io.Reader, size int) (bool, error) {
	c, err := New(WithBufferSize(size))
	if err != nil {
		return false, err
	}

	return c.ReadersContext(ctx, a, b)
}
