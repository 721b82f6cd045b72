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

package glyf

import (
	"encoding/binary"
	"fmt"

	"github.com/zathras777/zttf/internal/cursor"
)

// ReadLoca decodes the 'loca' table: numGlyphs+1 offsets into 'glyf',
// format 0 being halved 16-bit values and format 1 full 32-bit byte
// offsets.
func ReadLoca(data []byte, numGlyphs int, longFormat bool) ([]uint32, error) {
	c := cursor.New("loca", data)
	offsets := make([]uint32, numGlyphs+1)
	for i := range offsets {
		if longFormat {
			v, err := c.U32()
			if err != nil {
				return nil, err
			}
			offsets[i] = v
		} else {
			v, err := c.U16()
			if err != nil {
				return nil, err
			}
			offsets[i] = uint32(v) * 2
		}
	}
	return offsets, nil
}

// EncodeLoca16 serializes offsets (already in byte units) as the short,
// 16-bit-halved loca format. Every offset must be even and fit in 17 bits
// (i.e. offsets[i]/2 must fit in a uint16); the subsetter only ever
// produces short-format loca tables.
func EncodeLoca16(offsets []uint32) ([]byte, error) {
	buf := make([]byte, 2*len(offsets))
	for i, off := range offsets {
		if off%2 != 0 {
			return nil, fmt.Errorf("loca: offset %d is not even", off)
		}
		half := off / 2
		if half > 0xFFFF {
			return nil, fmt.Errorf("loca: offset %d too large for short format", off)
		}
		binary.BigEndian.PutUint16(buf[2*i:2*i+2], uint16(half))
	}
	return buf, nil
}

// GlyphData returns glyf's raw bytes for glyph index i, using the decoded
// loca offsets.
func GlyphData(glyfTable []byte, offsets []uint32, i int) ([]byte, error) {
	if i < 0 || i+1 >= len(offsets) {
		return nil, fmt.Errorf("glyf: glyph index %d out of range", i)
	}
	start, end := offsets[i], offsets[i+1]
	if end < start || int(end) > len(glyfTable) {
		return nil, fmt.Errorf("glyf: glyph %d has an invalid loca range", i)
	}
	return glyfTable[start:end], nil
}
