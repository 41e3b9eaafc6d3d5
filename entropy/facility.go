// Copyright (C) 2025 ZedCloud Org.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

package entropy

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/NebulousLabs/fastrand"
)

const (
	CryptoRandName = "crypto-rand"
	GetrandomName  = "getrandom"
	FastrandName   = "fastrand"
)

// Facility is a source of cryptographically strong random bytes.
// Implementations must be safe for concurrent use.
type Facility interface {
	Name() string
	// Probe reports whether the facility can serve reads on this host.
	Probe() error
	io.Reader
}

// DefaultFacilities returns the facilities in preference order: the native Go
// generator, then the platform syscall, then the userspace generator.
func DefaultFacilities() (facilities []Facility) {
	return []Facility{CryptoRand(), Getrandom(), Fastrand()}
}

func FacilityByName(name string) (facility Facility, err error) {
	switch name {
	case CryptoRandName:
		return CryptoRand(), nil
	case GetrandomName:
		return Getrandom(), nil
	case FastrandName:
		return Fastrand(), nil
	default:
		return nil, fmt.Errorf("unknown facility: %q", name)
	}
}

type cryptoRand struct{}

func CryptoRand() (facility Facility) { return cryptoRand{} }

func (cryptoRand) Name() string { return CryptoRandName }

func (cryptoRand) Probe() (err error) {
	if rand.Reader == nil {
		return ErrUnsupported
	}
	var buf [4]byte
	_, err = io.ReadFull(rand.Reader, buf[:])
	if err != nil {
		return fmt.Errorf("failed to read probe bytes: %w", err)
	}
	return nil
}

func (cryptoRand) Read(p []byte) (n int, err error) {
	return rand.Reader.Read(p)
}

type fastrandFacility struct{}

func Fastrand() (facility Facility) { return fastrandFacility{} }

func (fastrandFacility) Name() string { return FastrandName }

// Probe always succeeds: the generator seeds itself from the OS at init and
// panics there if it cannot.
func (fastrandFacility) Probe() (err error) { return nil }

func (fastrandFacility) Read(p []byte) (n int, err error) {
	return fastrand.Reader.Read(p)
}

type readerFacility struct {
	name string
	r    io.Reader
}

// NewReaderFacility adapts any reader. The caller is responsible for the
// reader being a strong source and safe for concurrent use.
func NewReaderFacility(name string, r io.Reader) (facility Facility) {
	return &readerFacility{name: name, r: r}
}

func (f *readerFacility) Name() string { return f.name }

func (f *readerFacility) Probe() (err error) {
	if f.r == nil {
		return ErrUnsupported
	}
	return nil
}

func (f *readerFacility) Read(p []byte) (n int, err error) {
	return f.r.Read(p)
}
