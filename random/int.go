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
	"fmt"

	"golang.org/x/exp/constraints"
)

// Int is Below for any integer type.
func Int[T constraints.Integer](s *Sampler, max T) (n T, err error) {
	if max <= 0 {
		return 0, fmt.Errorf("%w: max must be a positive integer, got %d", ErrInvalidArgument, max)
	}
	if uint64(max) > PrecisionCeiling {
		return 0, fmt.Errorf("%w: max %d exceeds the precision ceiling %d", ErrInvalidArgument, max, int64(PrecisionCeiling))
	}

	value, err := s.Below(int64(max))
	if err != nil {
		return 0, err
	}
	return T(value), nil
}

// CryptoInt is Int on the default sampler.
func CryptoInt[T constraints.Integer](max T) (n T, err error) {
	return Int(Default(), max)
}
