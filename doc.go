// Package samecontent reports whether two byte sources hold identical
// content without loading either of them into memory.
//
// # Overview
//
// Both sources are read in lockstep, a bounded chunk at a time, and the
// comparison stops at the first chunk that differs or as soon as one
// source ends before the other. No digest is ever computed: the answer
// comes from comparing the bytes themselves.
//
// This implementation offers:
//   - Bounded memory: two buffers of a configurable size (256 bytes by default)
//   - Early exit: a difference is detected within the chunk that contains it
//   - Short-read recovery: fragmented, interrupted and empty reads are normalized
//   - Size precheck: files with different sizes are rejected without reading
//
// # Quick Start
//
// Comparing two files:
//
//	a, _ := os.Open("a.jpg")
//	b, _ := os.Open("b.jpg")
//	same, err := samecontent.Files(a, b)
//
// Comparing two streams from their current positions:
//
//	same, err := samecontent.ReadersWithBufferSize(conn, pipe, 4096)
//
// Reusing a configuration:
//
//	c, _ := samecontent.New(samecontent.WithBufferSize(64*1024), samecontent.WithLogger(logger))
//	same, err := c.FilesContext(ctx, a, b)
//
// # Algorithm
//
// Every round reads up to the buffer size from the first source with a
// single read and demands exactly that many bytes from the second one:
//  1. If the second source cannot supply them, it is shorter: not equal
//  2. If the two chunks differ: not equal
//  3. When the first source ends, the second must end too: one probe byte decides
//
// Reads from the second source are retried until the requested count is
// reached, the source ends or a real error occurs, so sources that return
// data in small fragments compare the same as ones that fill every buffer.
//
// # Errors
//
// An I/O failure of either source aborts the comparison and is returned as
// a *SourceError. An error result means "unknown", never "not equal".
// Interrupted reads (EINTR) are retried and never surfaced.
//
// # Execution models
//
// Files and Readers block the calling goroutine on each read. FilesContext
// and ReadersContext run the same algorithm but check the context at every
// read boundary and pass it to sources implementing ContextReader, so a
// comparison can be abandoned without a verdict.
//
// # Thread Safety
//
// A comparison owns its buffers and shares no state with other
// comparisons. A Comparer is immutable after New and safe for concurrent
// use; the two sources of one comparison must not be read concurrently by
// anyone else.
package samecontent
