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

package subset

import (
	"encoding/binary"
	"sort"

	"github.com/zathras777/zttf"
	"github.com/zathras777/zttf/head"
)

const (
	fileHeaderLength = 12
	dirEntryLength   = 16
)

// serialize writes the file header, the directory (tags sorted ascending
// lexicographically, each entry's checksum computed over its own
// pre-padding bytes), and the zero-padded table bodies, then patches
// head's checksum adjustment so the whole file's checksum equals
// 0xB1B0AFBA.
func serialize(tables map[string][]byte) ([]byte, error) {
	tags := make([]string, 0, len(tables))
	for tag := range tables {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	numTables := len(tags)
	searchRange, entrySelector := ttf.BinarySearchParameters(numTables)
	rangeShift := numTables - searchRange

	dirLength := fileHeaderLength + numTables*dirEntryLength
	offsets := make([]int, numTables)
	pos := dirLength
	for i, tag := range tags {
		offsets[i] = pos
		pos += padLen(len(tables[tag]))
	}
	totalLength := pos

	out := make([]byte, totalLength)
	binary.BigEndian.PutUint32(out[0:4], 0x00010000)
	binary.BigEndian.PutUint16(out[4:6], uint16(numTables))
	binary.BigEndian.PutUint16(out[6:8], uint16(searchRange))
	binary.BigEndian.PutUint16(out[8:10], uint16(entrySelector))
	binary.BigEndian.PutUint16(out[10:12], uint16(rangeShift))

	var headOffset int
	for i, tag := range tags {
		body := tables[tag]
		off := offsets[i]
		copy(out[off:], body)

		entryPos := fileHeaderLength + i*dirEntryLength
		copy(out[entryPos:entryPos+4], tag)
		binary.BigEndian.PutUint32(out[entryPos+4:entryPos+8], ttf.Checksum(body))
		binary.BigEndian.PutUint32(out[entryPos+8:entryPos+12], uint32(off))
		binary.BigEndian.PutUint32(out[entryPos+12:entryPos+16], uint32(len(body)))

		if tag == "head" {
			headOffset = off
		}
	}

	whole := ttf.Checksum(out)
	adjustment := (0xB1B0AFBA - whole) & 0xFFFFFFFF
	head.PatchChecksumAdj(out[headOffset:headOffset+54], adjustment)

	return out, nil
}

func padLen(n int) int {
	if r := n % 4; r != 0 {
		return n + (4 - r)
	}
	return n
}
