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

// Package testfont builds a tiny, fully synthetic single-face TrueType
// font in memory, for exercising the rest of this module's packages
// without a real font binary on disk.
//
// The font has three glyphs: .notdef (empty), glyph 1 ("A", a simple
// glyph with no outline data), and glyph 2 ("B", a compound glyph made of
// a single reference to glyph 1). Its cmap maps 'A' -> 1 and 'B' -> 2.
package testfont

import (
	"encoding/binary"
	"sort"
)

// Bytes returns the encoded font.
func Bytes() []byte {
	tables := map[string][]byte{
		"head": buildHead(),
		"hhea": buildHhea(),
		"maxp": buildMaxp(),
		"hmtx": buildHmtx(),
		"loca": buildLoca(),
		"glyf": buildGlyf(),
		"cmap": buildCmap(),
		"name": buildName(),
	}
	return assemble(tables)
}

func buildHead() []byte {
	buf := make([]byte, 54)
	binary.BigEndian.PutUint32(buf[0:4], 0x00010000)
	binary.BigEndian.PutUint32(buf[4:8], 0x00010000) // fontRevision
	binary.BigEndian.PutUint32(buf[8:12], 0)          // checksumAdjustment, patched by assemble
	binary.BigEndian.PutUint32(buf[12:16], 0x5F0F3CF5)
	binary.BigEndian.PutUint16(buf[16:18], 0)
	binary.BigEndian.PutUint16(buf[18:20], 1000) // unitsPerEm
	// created/modified (bytes 20:36) left at zero
	binary.BigEndian.PutUint16(buf[36:38], 0) // xMin
	binary.BigEndian.PutUint16(buf[38:40], 0) // yMin
	binary.BigEndian.PutUint16(buf[40:42], 0) // xMax
	binary.BigEndian.PutUint16(buf[42:44], 0) // yMax
	binary.BigEndian.PutUint16(buf[44:46], 0) // macStyle
	binary.BigEndian.PutUint16(buf[46:48], 8) // lowestRecPPEM
	binary.BigEndian.PutUint16(buf[48:50], 2) // fontDirectionHint
	binary.BigEndian.PutUint16(buf[50:52], 0) // indexToLocFormat: short
	binary.BigEndian.PutUint16(buf[52:54], 0) // glyphDataFormat
	return buf
}

func buildHhea() []byte {
	buf := make([]byte, 36)
	descender := int16(-200)
	binary.BigEndian.PutUint32(buf[0:4], 0x00010000)
	binary.BigEndian.PutUint16(buf[4:6], 900)                    // ascender
	binary.BigEndian.PutUint16(buf[6:8], uint16(descender))      // descender
	binary.BigEndian.PutUint16(buf[8:10], 0)                     // lineGap
	binary.BigEndian.PutUint16(buf[10:12], 650)                  // advanceWidthMax
	binary.BigEndian.PutUint16(buf[12:14], 0)                    // minLeftSideBearing
	binary.BigEndian.PutUint16(buf[14:16], 0)                    // minRightSideBearing
	binary.BigEndian.PutUint16(buf[16:18], 650)                  // xMaxExtent
	binary.BigEndian.PutUint16(buf[18:20], 1)                    // caretSlopeRise
	binary.BigEndian.PutUint16(buf[20:22], 0)                    // caretSlopeRun
	binary.BigEndian.PutUint16(buf[22:24], 0)                    // caretOffset
	binary.BigEndian.PutUint16(buf[32:34], 0)                    // metricDataFormat
	binary.BigEndian.PutUint16(buf[34:36], 3)                    // numberOfHMetrics
	return buf
}

func buildMaxp() []byte {
	buf := make([]byte, 32)
	binary.BigEndian.PutUint32(buf[0:4], 0x00010000)
	binary.BigEndian.PutUint16(buf[4:6], 3) // numGlyphs
	return buf
}

func buildHmtx() []byte {
	buf := make([]byte, 12)
	binary.BigEndian.PutUint16(buf[0:2], 500)
	binary.BigEndian.PutUint16(buf[2:4], 0)
	binary.BigEndian.PutUint16(buf[4:6], 600)
	binary.BigEndian.PutUint16(buf[6:8], 10)
	binary.BigEndian.PutUint16(buf[8:10], 650)
	lsb2 := int16(-5)
	binary.BigEndian.PutUint16(buf[10:12], uint16(lsb2))
	return buf
}

// glyph1 is a simple glyph with no outline (header only); glyph2 is a
// compound glyph made of one reference to glyph 1.
func glyph1() []byte { return make([]byte, 10) }

func glyph2() []byte {
	buf := make([]byte, 10)
	binary.BigEndian.PutUint16(buf[0:2], 0xFFFF) // compound marker: numberOfContours = -1

	const argsAreWords = 1 << 0
	comp := make([]byte, 8)
	binary.BigEndian.PutUint16(comp[0:2], argsAreWords) // flags, no more components
	binary.BigEndian.PutUint16(comp[2:4], 1)             // glyph index 1
	return append(buf, comp...)
}

func buildGlyf() []byte {
	var buf []byte
	buf = append(buf, glyph1()...)
	buf = append(buf, glyph2()...)
	return buf
}

func buildLoca() []byte {
	g1 := len(glyph1())
	g2 := len(glyph2())
	offsets := []uint16{0, 0, uint16(g1 / 2), uint16((g1 + g2) / 2)}
	buf := make([]byte, 8)
	for i, v := range offsets {
		binary.BigEndian.PutUint16(buf[2*i:2*i+2], v)
	}
	return buf
}

// buildCmap maps 'A' (65) -> glyph 1 and 'B' (66) -> glyph 2 with a single
// direct-delta segment, terminated by the mandatory sentinel.
func buildCmap() []byte {
	ends := []uint16{66, 0xFFFF}
	starts := []uint16{65, 0xFFFF}
	delta := int16(1 - 65)
	deltas := []uint16{uint16(delta), 1}
	rangeOffsets := []uint16{0, 0}

	segCount := len(ends)
	bodyLen := 2 * (4*segCount + 1)
	length := 14 + bodyLen
	sub := make([]byte, length)
	binary.BigEndian.PutUint16(sub[0:2], 4)
	binary.BigEndian.PutUint16(sub[2:4], uint16(length))
	binary.BigEndian.PutUint16(sub[6:8], uint16(2*segCount))

	pos := 14
	for _, v := range ends {
		binary.BigEndian.PutUint16(sub[pos:], v)
		pos += 2
	}
	pos += 2
	for _, v := range starts {
		binary.BigEndian.PutUint16(sub[pos:], v)
		pos += 2
	}
	for _, v := range deltas {
		binary.BigEndian.PutUint16(sub[pos:], v)
		pos += 2
	}
	for _, v := range rangeOffsets {
		binary.BigEndian.PutUint16(sub[pos:], v)
		pos += 2
	}

	dirHeader := 4
	recordSize := 8
	subtableOffset := dirHeader + recordSize
	buf := make([]byte, subtableOffset+len(sub))
	binary.BigEndian.PutUint16(buf[2:4], 1) // numTables
	binary.BigEndian.PutUint16(buf[4:6], 3) // platform
	binary.BigEndian.PutUint16(buf[6:8], 1) // encoding
	binary.BigEndian.PutUint32(buf[8:12], uint32(subtableOffset))
	copy(buf[subtableOffset:], sub)
	return buf
}

func buildName() []byte {
	const headerLength = 6
	const recordLength = 12
	text := []byte("Test Font")

	header := make([]byte, headerLength)
	binary.BigEndian.PutUint16(header[2:4], 1)                           // count
	binary.BigEndian.PutUint16(header[4:6], headerLength+recordLength) // storageOffset

	record := make([]byte, recordLength)
	binary.BigEndian.PutUint16(record[0:2], 1) // platform: Macintosh
	binary.BigEndian.PutUint16(record[6:8], 1) // nameID: Font Family
	binary.BigEndian.PutUint16(record[8:10], uint16(len(text)))

	buf := append(header, record...)
	return append(buf, text...)
}

func assemble(tables map[string][]byte) []byte {
	tags := make([]string, 0, len(tables))
	for tag := range tables {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	numTables := len(tags)
	searchRange, entrySelector := 2, 1
	for searchRange*2 <= numTables {
		searchRange *= 2
		entrySelector++
	}
	rangeShift := numTables - searchRange

	const fileHeaderLength = 12
	const dirEntryLength = 16
	dirLength := fileHeaderLength + numTables*dirEntryLength

	offsets := make([]int, numTables)
	pos := dirLength
	for i, tag := range tags {
		offsets[i] = pos
		n := len(tables[tag])
		if r := n % 4; r != 0 {
			n += 4 - r
		}
		pos += n
	}
	out := make([]byte, pos)
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
		binary.BigEndian.PutUint32(out[entryPos+4:entryPos+8], checksum(body))
		binary.BigEndian.PutUint32(out[entryPos+8:entryPos+12], uint32(off))
		binary.BigEndian.PutUint32(out[entryPos+12:entryPos+16], uint32(len(body)))

		if tag == "head" {
			headOffset = off
		}
	}

	whole := checksum(out)
	adjustment := (0xB1B0AFBA - whole) & 0xFFFFFFFF
	binary.BigEndian.PutUint32(out[headOffset+8:headOffset+12], adjustment)

	return out
}

// checksum sums data as zero-padded big-endian uint32 words. It is kept
// local rather than reusing the root package's Checksum, so that the root
// package's own tests can import this package without an import cycle.
func checksum(data []byte) uint32 {
	var sum uint32
	for i := 0; i < len(data); i += 4 {
		var word [4]byte
		copy(word[:], data[i:])
		sum += binary.BigEndian.Uint32(word[:])
	}
	return sum
}
