package samecontent

import (
	"bytes"
	"context"
	"errors"
	"io"
)

const (
	opRead = "read"
	opStat = "stat"
	opSeek = "seek"
)

// source is the read capability the comparison algorithm runs on. The
// blocking and cooperative execution models differ only in how they
// implement it.
type source interface {
	read(ctx context.Context, p []byte) (int, error)
}

// blockingSource reads from a plain io.Reader and ignores the context.
type blockingSource struct {
	r io.Reader
}

func (s blockingSource) read(_ context.Context, p []byte) (int, error) {
	n, err := s.r.Read(p)
	if n < 0 || n > len(p) {
		return 0, ErrInvalidRead
	}

	return n, err
}

// cooperativeSource checks the context at every read boundary and hands it
// to readers that can abandon an in-flight read.
type cooperativeSource struct {
	r  io.Reader
	cr ContextReader // nil unless r implements ContextReader
}

func newCooperativeSource(r io.Reader) cooperativeSource {
	cr, _ := r.(ContextReader)

	return cooperativeSource{r: r, cr: cr}
}

func (s cooperativeSource) read(ctx context.Context, p []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var (
		n   int
		err error
	)

	if s.cr != nil {
		n, err = s.cr.ReadContext(ctx, p)
	} else {
		n, err = s.r.Read(p)
	}

	if n < 0 || n > len(p) {
		return 0, ErrInvalidRead
	}

	return n, err
}

// reason tells why a comparison reached its verdict.
type reason uint8

const (
	reasonEqual   reason = iota // both sources ended together
	reasonContent               // a chunk differed
	reasonShortB                // b ended inside a chunk of a
	reasonLongB                 // a ended while b still had data
	reasonSize                  // declared sizes differ
)

func (r reason) String() string {
	switch r {
	case reasonEqual:
		return "equal"
	case reasonContent:
		return "content differs"
	case reasonShortB:
		return "b shorter than a"
	case reasonLongB:
		return "b longer than a"
	case reasonSize:
		return "size differs"
	default:
		return "unknown"
	}
}

// outcome is the verdict of one comparison plus what it took to get there.
type outcome struct {
	equal   bool
	reason  reason
	matched int64 // bytes confirmed equal before the verdict
	rounds  int
}

// compareStreams reports whether a and b yield the same bytes from their
// current positions onward. bufA and bufB must have the same non-zero
// length; only the first n bytes of either are meaningful after a read.
//
// Each round performs one raw read from a; its count decides how many
// bytes are demanded from b. A short b, a differing chunk or a b that
// outlives a ends the comparison with a negative verdict.
func compareStreams(ctx context.Context, a, b source, bufA, bufB []byte) (outcome, error) {
	var out outcome

	for {
		out.rounds++

		ca, aEOF, err := readSome(ctx, a, bufA)
		if err != nil {
			return out, sourceError(SourceA, opRead, err)
		}

		if ca > 0 {
			cb, err := readTryExact(ctx, b, bufB[:ca])
			if err != nil {
				return out, sourceError(SourceB, opRead, err)
			}

			if cb != ca {
				out.reason = reasonShortB

				return out, nil
			}

			if !bytes.Equal(bufA[:ca], bufB[:ca]) {
				out.reason = reasonContent

				return out, nil
			}

			out.matched += int64(ca)
		}

		if !aEOF {
			continue
		}

		// a is exhausted; b must be too.
		cb, err := readTryExact(ctx, b, bufB[:1])
		if err != nil {
			return out, sourceError(SourceB, opRead, err)
		}

		if cb != 0 {
			out.reason = reasonLongB

			return out, nil
		}

		out.equal = true
		out.reason = reasonEqual

		return out, nil
	}
}

// readSome performs a single read of up to len(p) bytes. Interrupted and
// empty reads are retried, but a short count is returned as is. eof is set
// once the source reported the end of its data, possibly along with n > 0.
func readSome(ctx context.Context, src source, p []byte) (n int, eof bool, err error) {
	empty := 0

	for {
		n, err = src.read(ctx, p)

		switch {
		case errors.Is(err, io.EOF):
			return n, true, nil
		case err == nil && n > 0:
			return n, false, nil
		case err == nil:
			empty++
			if empty >= maxConsecutiveEmptyReads {
				return 0, false, io.ErrNoProgress
			}
		case isInterrupted(err):
			if n > 0 {
				return n, false, nil
			}
		default:
			return 0, false, err
		}
	}
}

// readTryExact reads until p is full, the source ends or a real error
// occurs. It returns fewer than len(p) bytes only at end of stream.
// Interrupted reads are retried without limit.
func readTryExact(ctx context.Context, src source, p []byte) (int, error) {
	filled, empty := 0, 0

	for filled < len(p) {
		n, err := src.read(ctx, p[filled:])
		filled += n

		if n > 0 {
			empty = 0
		}

		switch {
		case err == nil:
			if n == 0 {
				empty++
				if empty >= maxConsecutiveEmptyReads {
					return filled, io.ErrNoProgress
				}
			}
		case errors.Is(err, io.EOF):
			return filled, nil
		case isInterrupted(err):
		default:
			return filled, err
		}
	}

	return filled, nil
}
