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

// Package entropy normalizes the secure random facilities of the host into a
// single capability: filling buffers of 32-bit words.
package entropy

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/pluto-org-co/randomint/pool"
)

const wordSize = 4

type Availability int

const (
	Unavailable Availability = iota
	Available
)

func (a Availability) String() string {
	switch a {
	case Available:
		return "available"
	default:
		return "unavailable"
	}
}

type Adapter struct {
	facility Facility
	probeErr error
	scratch  *pool.Pool[[]byte]
}

func newAdapter() (a *Adapter) {
	return &Adapter{
		scratch: pool.NewWithReset(
			func() *[]byte {
				buf := make([]byte, 2*wordSize)
				return &buf
			},
			func(buf *[]byte) { clear((*buf)[:cap(*buf)]) },
		),
	}
}

// None returns an adapter without any facility.
func None() (a *Adapter) {
	return newAdapter()
}

// Discover probes the candidates in order and keeps the first one that works.
// Without candidates DefaultFacilities is used. Failed probes are kept for
// diagnostics and can be retrieved with ProbeErrors.
func Discover(candidates ...Facility) (a *Adapter) {
	if len(candidates) == 0 {
		candidates = DefaultFacilities()
	}

	a = newAdapter()
	var errs []error
	for _, candidate := range candidates {
		if candidate == nil {
			continue
		}
		err := candidate.Probe()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", candidate.Name(), err))
			continue
		}
		a.facility = candidate
		break
	}
	a.probeErr = errors.Join(errs...)
	return a
}

func (a *Adapter) Availability() (availability Availability) {
	if a.facility == nil {
		return Unavailable
	}
	return Available
}

func (a *Adapter) Available() (ok bool) {
	return a.Availability() == Available
}

// Facility returns the name of the selected facility, empty when unavailable.
func (a *Adapter) Facility() (name string) {
	if a.facility == nil {
		return ""
	}
	return a.facility.Name()
}

func (a *Adapter) ProbeErrors() (err error) {
	return a.probeErr
}

// FillRandomWords returns count freshly read words.
func (a *Adapter) FillRandomWords(count int) (words []uint32, err error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: word count must be positive, got %d", ErrMalformedInput, count)
	}

	words = make([]uint32, count)
	err = a.Fill(words)
	if err != nil {
		return nil, err
	}
	return words, nil
}

// Fill overwrites buf with random words. buf must be a non empty []uint32,
// anything else is rejected with ErrMalformedInput. On error buf is left
// untouched.
func (a *Adapter) Fill(buf any) (err error) {
	words, ok := buf.([]uint32)
	if !ok {
		return fmt.Errorf("%w: buffer must be []uint32, got %T", ErrMalformedInput, buf)
	}
	if len(words) == 0 {
		return fmt.Errorf("%w: empty buffer", ErrMalformedInput)
	}

	if a.facility == nil {
		return ErrNoSecureSource
	}

	scratch := a.scratch.Get()
	defer a.scratch.Put(scratch)

	size := wordSize * len(words)
	if cap(*scratch) < size {
		*scratch = make([]byte, size)
	}
	raw := (*scratch)[:size]

	_, err = io.ReadFull(a.facility, raw)
	if err != nil {
		return fmt.Errorf("failed to read %d bytes from %s: %w", size, a.facility.Name(), err)
	}

	for index := range words {
		words[index] = binary.BigEndian.Uint32(raw[index*wordSize:])
	}
	return nil
}
