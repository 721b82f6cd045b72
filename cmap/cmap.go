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

// Package cmap decodes the 'cmap' table: its directory of encoding
// records, and the format 0, 4 and 6 subtable layouts. One subtable is
// chosen as the font's active character map per a fixed platform/encoding
// preference order.
package cmap

import (
	"encoding/binary"
	"fmt"

	"github.com/zathras777/zttf/internal/cursor"
)

// EncodingRecord locates one subtable within the 'cmap' table.
type EncodingRecord struct {
	PlatformID uint16
	EncodingID uint16
	Offset     uint32
}

// Segment is one format-4 segment as decoded off the wire, kept in its
// original form (not expanded to a dense map) so indexing follows the
// same id_range_offset arithmetic the format specifies.
type Segment struct {
	Start, End       uint16
	IDDelta          int16
	IDRangeOffset    uint16
	glyphIDArrayBase []uint16 // shared backing array for every segment of one subtable
	glyphIDArrayPos  int      // this segment's starting index into glyphIDArrayBase, valid only if IDRangeOffset != 0
}

// Format4 is a decoded format-4 subtable.
type Format4 struct {
	Language uint16
	Segments []Segment
}

// Lookup maps a character code to a glyph id using the TTF-spec indexing
// formula, not the inverted/mixed-up guard the distilled source carried.
func (f *Format4) Lookup(char uint16) uint16 {
	for _, seg := range f.Segments {
		if char < seg.Start || char > seg.End {
			continue
		}
		if seg.IDRangeOffset == 0 {
			return char + uint16(seg.IDDelta)
		}
		idx := seg.glyphIDArrayPos + int(char-seg.Start)
		if idx < 0 || idx >= len(seg.glyphIDArrayBase) {
			return 0
		}
		g := seg.glyphIDArrayBase[idx]
		if g == 0 {
			return 0
		}
		return g + uint16(seg.IDDelta)
	}
	return 0
}

// Format6 is a decoded format-6 (trimmed table) subtable: a dense mapping
// over a contiguous block of character codes.
type Format6 struct {
	Language  uint16
	FirstCode uint16
	GlyphIDs  []uint16
}

// Lookup maps a character code to a glyph id, per §9's corrected
// min/max bound (iterate only over [first, first+len(GlyphIDs))).
func (f *Format6) Lookup(char uint16) uint16 {
	if char < f.FirstCode {
		return 0
	}
	idx := int(char) - int(f.FirstCode)
	if idx >= len(f.GlyphIDs) {
		return 0
	}
	return f.GlyphIDs[idx]
}

// Subtable is implemented by every decoded cmap subtable format this
// package supports.
type Subtable interface {
	Lookup(char uint16) uint16
}

// Table is the decoded 'cmap' table: every encoding record, the subtables
// this package knows how to decode (others are skipped, not fatal per
// spec.md §4.3), and the selected active map.
type Table struct {
	Records  []EncodingRecord
	Subtable map[EncodingRecord]Subtable
	Active   Subtable
}

// activePreference lists (platform, encoding) pairs in the order the
// active subtable is chosen from; anything else is used only if nothing
// on this list has data.
var activePreference = [][2]uint16{{0, 4}, {0, 3}, {3, 1}}

// Read decodes the 'cmap' table.
func Read(data []byte) (*Table, error) {
	c := cursor.New("cmap", data)

	if _, err := c.U16(); err != nil { // version, always 0
		return nil, err
	}
	numTables, err := c.U16()
	if err != nil {
		return nil, err
	}

	records := make([]EncodingRecord, numTables)
	for i := range records {
		plat, err := c.U16()
		if err != nil {
			return nil, err
		}
		enc, err := c.U16()
		if err != nil {
			return nil, err
		}
		off, err := c.U32()
		if err != nil {
			return nil, err
		}
		records[i] = EncodingRecord{PlatformID: plat, EncodingID: enc, Offset: off}
	}

	t := &Table{Records: records, Subtable: make(map[EncodingRecord]Subtable)}
	for _, rec := range records {
		if int(rec.Offset) >= len(data) {
			continue
		}
		sub, err := decodeSubtable(data[rec.Offset:])
		if err != nil {
			// Unsupported or malformed formats are skipped, not fatal:
			// the directory entry is kept but has no decoded map.
			continue
		}
		t.Subtable[rec] = sub
	}

	for _, pref := range activePreference {
		for rec, sub := range t.Subtable {
			if rec.PlatformID == pref[0] && rec.EncodingID == pref[1] {
				t.Active = sub
				return t, nil
			}
		}
	}
	for _, rec := range records {
		if sub, ok := t.Subtable[rec]; ok {
			t.Active = sub
			break
		}
	}
	return t, nil
}

func decodeSubtable(data []byte) (Subtable, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("cmap: subtable too short")
	}
	format := binary.BigEndian.Uint16(data[0:2])
	switch format {
	case 0:
		return decodeFormat0(data)
	case 4:
		return decodeFormat4(data)
	case 6:
		return decodeFormat6(data)
	default:
		return nil, fmt.Errorf("cmap: format %d not supported", format)
	}
}

// format0 is the byte-encoding table: a dense map over code points 0-255.
type format0 struct {
	glyphIDs [256]byte
}

func (f *format0) Lookup(char uint16) uint16 {
	if char > 255 {
		return 0
	}
	return uint16(f.glyphIDs[char])
}

func decodeFormat0(data []byte) (Subtable, error) {
	if len(data) < 262 {
		return nil, fmt.Errorf("cmap: format 0 table too short")
	}
	f := &format0{}
	copy(f.glyphIDs[:], data[6:262])
	return f, nil
}

func decodeFormat4(data []byte) (Subtable, error) {
	c := cursor.New("cmap", data)
	if _, err := c.U16(); err != nil { // format
		return nil, err
	}
	if _, err := c.U16(); err != nil { // length
		return nil, err
	}
	language, err := c.U16()
	if err != nil {
		return nil, err
	}
	segCountX2, err := c.U16()
	if err != nil {
		return nil, err
	}
	if segCountX2%2 != 0 {
		return nil, fmt.Errorf("cmap: format 4 segCountX2 is odd")
	}
	segCount := int(segCountX2) / 2
	if err := c.Skip(6); err != nil { // searchRange, entrySelector, rangeShift
		return nil, err
	}

	endCodes, err := c.U16Slice(segCount)
	if err != nil {
		return nil, err
	}
	if _, err := c.U16(); err != nil { // reservedPad
		return nil, err
	}
	startCodes, err := c.U16Slice(segCount)
	if err != nil {
		return nil, err
	}
	idDeltas, err := c.I16Slice(segCount)
	if err != nil {
		return nil, err
	}
	idRangeOffsets, err := c.U16Slice(segCount)
	if err != nil {
		return nil, err
	}
	glyphIDArray, err := c.U16Slice(c.Len() / 2)
	if err != nil {
		return nil, err
	}

	f := &Format4{Language: language, Segments: make([]Segment, segCount)}
	for k := 0; k < segCount; k++ {
		seg := Segment{
			Start:         startCodes[k],
			End:           endCodes[k],
			IDDelta:       idDeltas[k],
			IDRangeOffset: idRangeOffsets[k],
		}
		if seg.IDRangeOffset != 0 {
			// TTF-spec indexing: the stored offset is in bytes from its own
			// field, so dividing by two and subtracting the segments still
			// to come lands at the right index into glyphIDArray.
			pos := int(seg.IDRangeOffset)/2 - (segCount - k)
			seg.glyphIDArrayBase = glyphIDArray
			seg.glyphIDArrayPos = pos
		}
		f.Segments[k] = seg
	}
	return f, nil
}

func decodeFormat6(data []byte) (Subtable, error) {
	c := cursor.New("cmap", data)
	if _, err := c.U16(); err != nil { // format
		return nil, err
	}
	if _, err := c.U16(); err != nil { // length
		return nil, err
	}
	language, err := c.U16()
	if err != nil {
		return nil, err
	}
	firstCode, err := c.U16()
	if err != nil {
		return nil, err
	}
	count, err := c.U16()
	if err != nil {
		return nil, err
	}
	ids, err := c.U16Slice(int(count))
	if err != nil {
		return nil, err
	}
	return &Format6{Language: language, FirstCode: firstCode, GlyphIDs: ids}, nil
}
