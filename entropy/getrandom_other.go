//go:build !linux

package entropy

type getrandom struct{}

func Getrandom() (facility Facility) { return getrandom{} }

func (getrandom) Name() string { return GetrandomName }

func (getrandom) Probe() (err error) { return ErrUnsupported }

func (getrandom) Read(p []byte) (n int, err error) { return 0, ErrUnsupported }
