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

package random

import (
	"encoding/binary"
	"math/rand/v2"
)

// NewInsecureSource returns a deterministic ChaCha8 stream for the given seed.
// Only meant for tests and reproducible fallbacks.
func NewInsecureSource(seed string) (src *rand.ChaCha8) {
	var raw [32]byte
	copy(raw[:], seed)
	return rand.NewChaCha8(raw)
}

// runtimeSeededSource is the default fallback. Its seed comes from the
// runtime generator so two processes never share a stream, but it is still
// predictable to anyone able to observe enough output.
func runtimeSeededSource() (src *rand.ChaCha8) {
	var raw [32]byte
	for index := 0; index < len(raw); index += 8 {
		binary.LittleEndian.PutUint64(raw[index:], rand.Uint64())
	}
	return rand.NewChaCha8(raw)
}
