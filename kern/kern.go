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

// Package kern decodes and encodes the 'kern' table's format-0
// horizontal pair subtables. Other formats, and subtables not marked as
// horizontal pair data, are skipped rather than rejected.
package kern

import (
	"encoding/binary"
	"math/bits"
	"sort"

	"github.com/zathras777/zttf/internal/cursor"
)

// Pair identifies a left/right glyph pair to adjust the advance between.
type Pair struct {
	Left, Right uint16
}

// Table maps glyph pairs to their kerning delta.
type Table map[Pair]int16

// Read decodes the 'kern' table, folding every format-0 horizontal-pair
// subtable into one map; subtables with version != 0 or coverage != 1 are
// skipped.
func Read(data []byte) (Table, error) {
	c := cursor.New("kern", data)

	version, err := c.U16()
	if err != nil {
		return nil, err
	}
	if version != 0 {
		return nil, nil // unsupported kern table version; degrade gracefully
	}
	numTables, err := c.U16()
	if err != nil {
		return nil, err
	}

	result := make(Table)
	pos := c.Pos()
	for i := 0; i < int(numTables); i++ {
		if err := c.Seek(pos); err != nil {
			return nil, err
		}
		hdr, err := c.Raw(6)
		if err != nil {
			return nil, err
		}
		subVersion := binary.BigEndian.Uint16(hdr[0:2])
		length := binary.BigEndian.Uint16(hdr[2:4])
		format := hdr[4]
		coverage := hdr[5]
		pos += int(length)

		if subVersion != 0 || format != 0 || coverage != 1 {
			continue
		}

		nPairs, err := c.U16()
		if err != nil {
			return nil, err
		}
		if err := c.Skip(6); err != nil { // searchRange, entrySelector, rangeShift
			return nil, err
		}
		for j := 0; j < int(nPairs); j++ {
			left, err := c.U16()
			if err != nil {
				return nil, err
			}
			right, err := c.U16()
			if err != nil {
				return nil, err
			}
			delta, err := c.I16()
			if err != nil {
				return nil, err
			}
			result[Pair{Left: left, Right: right}] = delta
		}
	}
	return result, nil
}

// Encode serializes a single version-0, format-0, coverage-1 subtable
// containing every pair in t, sorted ascending by (left, right) as the
// format requires for binary search.
func (t Table) Encode() []byte {
	type entry struct {
		pair  Pair
		delta int16
	}
	entries := make([]entry, 0, len(t))
	for p, d := range t {
		entries = append(entries, entry{p, d})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].pair.Left != entries[j].pair.Left {
			return entries[i].pair.Left < entries[j].pair.Left
		}
		return entries[i].pair.Right < entries[j].pair.Right
	})

	nPairs := len(entries)
	var entrySelector, searchRange, rangeShift int
	if nPairs > 0 {
		entrySelector = bits.Len(uint(nPairs)) - 1
		searchRange = 6 * (1 << entrySelector)
		rangeShift = 6 * (nPairs - 1<<entrySelector)
	}
	subtableLength := 14 + 6*nPairs

	buf := make([]byte, 4+subtableLength)
	binary.BigEndian.PutUint16(buf[0:2], 0) // version
	binary.BigEndian.PutUint16(buf[2:4], 1) // numTables
	binary.BigEndian.PutUint16(buf[4:6], 0) // subtable version
	binary.BigEndian.PutUint16(buf[6:8], uint16(subtableLength))
	buf[8] = 0 // format 0
	buf[9] = 1 // coverage: horizontal, format 0
	binary.BigEndian.PutUint16(buf[10:12], uint16(nPairs))
	binary.BigEndian.PutUint16(buf[12:14], uint16(searchRange))
	binary.BigEndian.PutUint16(buf[14:16], uint16(entrySelector))
	binary.BigEndian.PutUint16(buf[16:18], uint16(rangeShift))

	pos := 18
	for _, e := range entries {
		binary.BigEndian.PutUint16(buf[pos:pos+2], e.pair.Left)
		binary.BigEndian.PutUint16(buf[pos+2:pos+4], e.pair.Right)
		binary.BigEndian.PutUint16(buf[pos+4:pos+6], uint16(e.delta))
		pos += 6
	}
	return buf
}
