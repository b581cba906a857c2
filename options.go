package samecontent

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	// ErrInvalidBufferSize is returned when the buffer size is less than 1.
	ErrInvalidBufferSize = errors.New("bufferSize must be greater than 0")

	// ErrNilLogger is returned when WithLogger is given a nil logger.
	ErrNilLogger = errors.New("logger must not be nil")
)

const (
	// DefaultBufferSize is the default number of bytes read per source and round (256 bytes).
	DefaultBufferSize = 256

	// maxConsecutiveEmptyReads is how many (0, nil) reads in a row are tolerated
	// before a source is reported as making no progress.
	maxConsecutiveEmptyReads = 100
)

// Option is a function that configures a Comparer.
type Option func(*config) error

// config holds the configuration for comparing.
type config struct {
	bufferSize int
	logger     *zap.Logger
}

func defaultConfig() config {
	return config{
		bufferSize: DefaultBufferSize,
		logger:     zap.NewNop(),
	}
}

// validate checks that the configuration is valid.
func (c *config) validate() error {
	if c.bufferSize < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidBufferSize, c.bufferSize)
	}

	if c.logger == nil {
		return ErrNilLogger
	}

	return nil
}

// WithBufferSize sets the number of bytes read from each source per round.
// Both sources get their own buffer of this size.
func WithBufferSize(size int) Option {
	return func(c *config) error {
		if size < 1 {
			return fmt.Errorf("%w: got %d", ErrInvalidBufferSize, size)
		}

		c.bufferSize = size

		return nil
	}
}

// WithLogger sets the logger used to report verdicts at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) error {
		if logger == nil {
			return ErrNilLogger
		}

		c.logger = logger

		return nil
	}
}
