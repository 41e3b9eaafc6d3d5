//go:build linux

package entropy

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

const maxInterrupted = 16

type getrandom struct{}

// Getrandom reads from the kernel pool through getrandom(2).
func Getrandom() (facility Facility) { return getrandom{} }

func (getrandom) Name() string { return GetrandomName }

// Probe does not block: an uninitialized pool is reported as unavailable.
func (getrandom) Probe() (err error) {
	var buf [4]byte
	_, err = unix.Getrandom(buf[:], unix.GRND_NONBLOCK)
	if err != nil {
		return fmt.Errorf("failed to probe getrandom: %w", err)
	}
	return nil
}

func (getrandom) Read(p []byte) (n int, err error) {
	var interrupted int
	for n < len(p) {
		read, err := unix.Getrandom(p[n:], 0)
		if err != nil {
			if errors.Is(err, unix.EINTR) && interrupted < maxInterrupted {
				interrupted++
				continue
			}
			return n, fmt.Errorf("failed to read getrandom: %w", err)
		}
		n += read
	}
	return n, nil
}
