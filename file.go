package samecontent

import (
	"context"
	"io"
	"io/fs"

	"go.uber.org/multierr"
)

// File is a seekable source. Its total size is discovered through the
// optional Stat or Size methods:
//
//	Stat() (fs.FileInfo, error) // *os.File, billy and minio adapters
//	Size() int64                // *bytes.Reader, *strings.Reader, *io.SectionReader
//
// A File with neither method, or whose Stat describes something other than
// a regular file, has an unknown size and skips the size precheck.
type File interface {
	io.Reader
	io.Seeker
}

type statter interface {
	Stat() (fs.FileInfo, error)
}

type sizer interface {
	Size() int64
}

// sizeOf returns the declared size of f. known is false when f cannot tell.
func sizeOf(f File) (size int64, known bool, err error) {
	switch v := f.(type) {
	case statter:
		info, err := v.Stat()
		if err != nil {
			return 0, false, err
		}

		if !info.Mode().IsRegular() {
			return 0, false, nil
		}

		return info.Size(), true, nil
	case sizer:
		return v.Size(), true, nil
	default:
		return 0, false, nil
	}
}

// precheck compares the declared sizes of a and b. When they are known and
// differ it reports mismatch without touching either source; otherwise both
// are rewound to their first byte.
func precheck(ctx context.Context, a, b File) (sizeA, sizeB int64, mismatch bool, err error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, false, err
	}

	sizeA, knownA, errA := sizeOf(a)
	sizeB, knownB, errB := sizeOf(b)

	if err := multierr.Combine(
		sourceError(SourceA, opStat, errA),
		sourceError(SourceB, opStat, errB),
	); err != nil {
		return 0, 0, false, err
	}

	if knownA && knownB && sizeA != sizeB {
		return sizeA, sizeB, true, nil
	}

	if _, err := a.Seek(0, io.SeekStart); err != nil {
		return sizeA, sizeB, false, sourceError(SourceA, opSeek, err)
	}

	if _, err := b.Seek(0, io.SeekStart); err != nil {
		return sizeA, sizeB, false, sourceError(SourceB, opSeek, err)
	}

	return sizeA, sizeB, false, nil
}
