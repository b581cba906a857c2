package samecontent

import (
	"context"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Comparer compares pairs of sources with a fixed configuration.
//
// A Comparer holds no per-comparison state: every call allocates its own
// pair of buffers, so one Comparer may be used from many goroutines.
type Comparer struct {
	bufferSize int
	logger     *zap.Logger
}

// New creates a Comparer configured by the given options.
func New(opts ...Option) (*Comparer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Comparer{
		bufferSize: cfg.bufferSize,
		logger:     cfg.logger,
	}, nil
}

// BufferSize returns the number of bytes read per source and round.
func (c *Comparer) BufferSize() int {
	return c.bufferSize
}

// Files reports whether a and b hold the same content. Sizes are compared
// first when both files can report them; otherwise, or when they match,
// both files are rewound to their start and compared byte by byte.
func (c *Comparer) Files(a, b File) (bool, error) {
	return c.files(context.Background(), a, b, blockingSource{r: a}, blockingSource{r: b})
}

// FilesContext is like Files but checks ctx between reads and passes it to
// sources implementing ContextReader.
func (c *Comparer) FilesContext(ctx context.Context, a, b File) (bool, error) {
	return c.files(ctx, a, b, newCooperativeSource(a), newCooperativeSource(b))
}

// Readers reports whether a and b yield the same bytes from their current
// positions to their ends. Nothing is rewound.
func (c *Comparer) Readers(a, b io.Reader) (bool, error) {
	return c.streams(context.Background(), blockingSource{r: a}, blockingSource{r: b})
}

// ReadersContext is like Readers but checks ctx between reads and passes it
// to sources implementing ContextReader.
func (c *Comparer) ReadersContext(ctx context.Context, a, b io.Reader) (bool, error) {
	return c.streams(ctx, newCooperativeSource(a), newCooperativeSource(b))
}

func (c *Comparer) files(ctx context.Context, a, b File, srcA, srcB source) (bool, error) {
	sizeA, sizeB, mismatch, err := precheck(ctx, a, b)
	if err != nil {
		return false, err
	}

	if mismatch {
		if ce := c.logger.Check(zapcore.DebugLevel, "sizes differ"); ce != nil {
			ce.Write(
				zap.Int64("size_a", sizeA),
				zap.Int64("size_b", sizeB),
				zap.Stringer("reason", reasonSize),
			)
		}

		return false, nil
	}

	return c.streams(ctx, srcA, srcB)
}

func (c *Comparer) streams(ctx context.Context, a, b source) (bool, error) {
	buf := make([]byte, 2*c.bufferSize)

	out, err := compareStreams(ctx, a, b, buf[:c.bufferSize], buf[c.bufferSize:])
	if err != nil {
		if ce := c.logger.Check(zapcore.DebugLevel, "comparison aborted"); ce != nil {
			ce.Write(
				zap.Error(err),
				zap.Int64("matched", out.matched),
				zap.Int("rounds", out.rounds),
			)
		}

		return false, err
	}

	if ce := c.logger.Check(zapcore.DebugLevel, "comparison finished"); ce != nil {
		ce.Write(
			zap.Bool("verdict", out.equal),
			zap.Stringer("reason", out.reason),
			zap.Int64("matched", out.matched),
			zap.Int("rounds", out.rounds),
			zap.Int("buffer_size", c.bufferSize),
		)
	}

	return out.equal, nil
}
