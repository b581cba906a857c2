//go:build !unix

package samecontent

import (
	"errors"
	"syscall"
)

func isInterrupted(err error) bool {
	return errors.Is(err, syscall.EINTR)
}
