// github.com/zathras777/zttf - a library for reading and subsetting TrueType fonts
// Copyright (C) 2026  zathras777
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package ttf

import "encoding/binary"

// checksumAccumulator implements the sfnt table checksum algorithm: sum
// all big-endian uint32 words of the (zero-padded-to-4-bytes) data, with
// 32-bit wrapping addition.
// https://learn.microsoft.com/en-us/typography/opentype/spec/otff#calculating-checksums
type checksumAccumulator struct {
	sum  uint32
	buf  [4]byte
	used int
}

func (c *checksumAccumulator) write(p []byte) {
	for len(p) > 0 {
		n := copy(c.buf[c.used:], p)
		p = p[n:]
		c.used += n
		if c.used == 4 {
			c.sum += binary.BigEndian.Uint32(c.buf[:])
			c.used = 0
		}
	}
}

func (c *checksumAccumulator) sumValue() uint32 {
	if c.used != 0 {
		var zero [4]byte
		c.write(zero[:4-c.used])
	}
	return c.sum
}

// Checksum computes the TTF table checksum of data: the data is
// conceptually zero-padded to a multiple of 4 bytes and summed as
// big-endian uint32 words with wrapping addition. Padding data with
// trailing zero bytes before calling Checksum does not change the result.
func Checksum(data []byte) uint32 {
	var acc checksumAccumulator
	acc.write(data)
	return acc.sumValue()
}

// headChecksumAdjustment is the magic value the whole-file checksum must
// equal once head.checksum_adj has been patched in.
const headChecksumAdjustment = 0xB1B0AFBA
