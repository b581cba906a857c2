//go:build unix

package samecontent

import (
	"errors"

	"golang.org/x/sys/unix"
)

func isInterrupted(err error) bool {
	return errors.Is(err, unix.EINTR)
}
