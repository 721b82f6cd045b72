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

	"github.com/zathras777/zttf"
)

// cmapRange is the subset cmap builder's mutable aggregator: a run of
// consecutive (code, glyph) pairs sharing one id_delta, so the whole run
// collapses to a single format-4 segment with no glyph_id_array entry.
type cmapRange struct {
	start, end rune
	startGlyph ttf.GlyphID
}

// idDelta returns the segment's id_delta, wrapped to 16 bits the way the
// format-4 header field is stored.
func (r cmapRange) idDelta() uint16 {
	return uint16(r.startGlyph) - uint16(r.start)
}

// buildRanges folds sorted, deduplicated (code, glyph) pairs into the
// fewest possible consecutive ranges: a new range opens whenever the
// next pair is not consecutive with the current range's projected
// (end+1, start_glyph + (end+1-start)).
func buildRanges(mappings []codeGlyph) []cmapRange {
	var ranges []cmapRange
	for _, m := range mappings {
		if n := len(ranges); n > 0 {
			last := &ranges[n-1]
			expectedGlyph := last.startGlyph + ttf.GlyphID(m.code-last.start)
			if m.code == last.end+1 && m.glyph == expectedGlyph {
				last.end = m.code
				continue
			}
		}
		ranges = append(ranges, cmapRange{start: m.code, end: m.code, startGlyph: m.glyph})
	}
	return ranges
}

// buildCMap emits a single (platform=3, encoding=1) format-4 subtable
// covering s.mappings, terminated by the mandatory 0xFFFF sentinel
// segment. Every segment uses id_delta form; no glyph_id_array is
// needed since ranges only ever hold consecutive runs.
func (s *Subset) buildCMap() ([]byte, error) {
	ranges := buildRanges(s.mappings)
	ranges = append(ranges, cmapRange{start: 0xFFFF, end: 0xFFFF, startGlyph: 0xFFFF}) // idDelta() -> 0

	segCount := len(ranges)
	segCountX2 := uint16(2 * segCount)
	searchRange, entrySelector := ttf.BinarySearchParameters(segCount * 2)
	rangeShift := int(segCountX2) - searchRange

	headerLen := 14
	bodyLen := 2 * (4*segCount + 1) // endCodes, pad, startCodes, idDeltas, idRangeOffsets
	length := headerLen + bodyLen

	buf := make([]byte, length)
	binary.BigEndian.PutUint16(buf[0:2], 4) // format
	binary.BigEndian.PutUint16(buf[2:4], uint16(length))
	binary.BigEndian.PutUint16(buf[4:6], 0) // language
	binary.BigEndian.PutUint16(buf[6:8], segCountX2)
	binary.BigEndian.PutUint16(buf[8:10], uint16(searchRange))
	binary.BigEndian.PutUint16(buf[10:12], uint16(entrySelector))
	binary.BigEndian.PutUint16(buf[12:14], uint16(rangeShift))

	pos := headerLen
	for _, r := range ranges {
		binary.BigEndian.PutUint16(buf[pos:pos+2], uint16(r.end))
		pos += 2
	}
	pos += 2 // reservedPad
	for _, r := range ranges {
		binary.BigEndian.PutUint16(buf[pos:pos+2], uint16(r.start))
		pos += 2
	}
	for _, r := range ranges {
		binary.BigEndian.PutUint16(buf[pos:pos+2], r.idDelta())
		pos += 2
	}
	for range ranges {
		binary.BigEndian.PutUint16(buf[pos:pos+2], 0) // idRangeOffset
		pos += 2
	}

	// 'cmap' table header: version 0, one encoding record (3,1) pointing
	// at the subtable right after it.
	table := make([]byte, 12, 12+len(buf))
	binary.BigEndian.PutUint16(table[2:4], 1) // numTables
	binary.BigEndian.PutUint16(table[4:6], 3) // platform
	binary.BigEndian.PutUint16(table[6:8], 1) // encoding
	binary.BigEndian.PutUint32(table[8:12], 12)
	return append(table, buf...), nil
}
