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

package cmap

import (
	"encoding/binary"
	"testing"
)

// buildFormat4 assembles a format-4 subtable with one direct-delta segment
// (65-70), one glyphIDArray-indexed segment (100-102, entries 5, 0, 7) and
// the mandatory 0xFFFF sentinel.
func buildFormat4() []byte {
	ends := []uint16{70, 102, 0xFFFF}
	starts := []uint16{65, 100, 0xFFFF}
	delta := int16(1 - 65)
	deltas := []uint16{uint16(delta), 0, 1}
	rangeOffsets := []uint16{0, 4, 0}
	array := []uint16{5, 0, 7}

	segCount := len(ends)
	bodyLen := 2 * (4*segCount + 1 + len(array))
	length := 14 + bodyLen
	buf := make([]byte, length)
	binary.BigEndian.PutUint16(buf[0:2], 4)
	binary.BigEndian.PutUint16(buf[2:4], uint16(length))
	binary.BigEndian.PutUint16(buf[4:6], 0)
	binary.BigEndian.PutUint16(buf[6:8], uint16(2*segCount))

	pos := 14
	for _, v := range ends {
		binary.BigEndian.PutUint16(buf[pos:], v)
		pos += 2
	}
	pos += 2 // reservedPad
	for _, v := range starts {
		binary.BigEndian.PutUint16(buf[pos:], v)
		pos += 2
	}
	for _, v := range deltas {
		binary.BigEndian.PutUint16(buf[pos:], v)
		pos += 2
	}
	for _, v := range rangeOffsets {
		binary.BigEndian.PutUint16(buf[pos:], v)
		pos += 2
	}
	for _, v := range array {
		binary.BigEndian.PutUint16(buf[pos:], v)
		pos += 2
	}
	return buf
}

func TestFormat4DirectDelta(t *testing.T) {
	sub, err := decodeFormat4(buildFormat4())
	if err != nil {
		t.Fatalf("decodeFormat4: %v", err)
	}
	f := sub.(*Format4)
	if got := f.Lookup('A'); got != 1 { // 'A' = 65
		t.Errorf("Lookup('A') = %d, want 1", got)
	}
	if got := f.Lookup('F'); got != 6 { // 'F' = 70
		t.Errorf("Lookup('F') = %d, want 6", got)
	}
}

func TestFormat4ArrayIndexed(t *testing.T) {
	sub, err := decodeFormat4(buildFormat4())
	if err != nil {
		t.Fatalf("decodeFormat4: %v", err)
	}
	f := sub.(*Format4)
	if got := f.Lookup(100); got != 5 {
		t.Errorf("Lookup(100) = %d, want 5", got)
	}
	if got := f.Lookup(101); got != 0 {
		t.Errorf("Lookup(101) = %d, want 0 (explicit notdef entry)", got)
	}
	if got := f.Lookup(102); got != 7 {
		t.Errorf("Lookup(102) = %d, want 7", got)
	}
}

func TestFormat4Unmapped(t *testing.T) {
	sub, err := decodeFormat4(buildFormat4())
	if err != nil {
		t.Fatalf("decodeFormat4: %v", err)
	}
	f := sub.(*Format4)
	if got := f.Lookup(200); got != 0 {
		t.Errorf("Lookup(200) = %d, want 0", got)
	}
}

func TestFormat0(t *testing.T) {
	data := make([]byte, 262)
	binary.BigEndian.PutUint16(data[0:2], 0)
	binary.BigEndian.PutUint16(data[2:4], 262)
	data[6+65] = 10
	sub, err := decodeFormat0(data)
	if err != nil {
		t.Fatalf("decodeFormat0: %v", err)
	}
	if got := sub.Lookup(65); got != 10 {
		t.Errorf("Lookup(65) = %d, want 10", got)
	}
	if got := sub.Lookup(256); got != 0 {
		t.Errorf("Lookup(256) = %d, want 0 (out of range)", got)
	}
}

func buildFormat6(firstCode uint16, ids []uint16) []byte {
	buf := make([]byte, 10+2*len(ids))
	binary.BigEndian.PutUint16(buf[0:2], 6)
	binary.BigEndian.PutUint16(buf[2:4], uint16(len(buf)))
	binary.BigEndian.PutUint16(buf[6:8], firstCode)
	binary.BigEndian.PutUint16(buf[8:10], uint16(len(ids)))
	for i, id := range ids {
		binary.BigEndian.PutUint16(buf[10+2*i:], id)
	}
	return buf
}

func TestFormat6(t *testing.T) {
	sub, err := decodeFormat6(buildFormat6(200, []uint16{11, 12, 13}))
	if err != nil {
		t.Fatalf("decodeFormat6: %v", err)
	}
	if got := sub.Lookup(199); got != 0 {
		t.Errorf("Lookup(199) = %d, want 0 (below firstCode)", got)
	}
	if got := sub.Lookup(201); got != 12 {
		t.Errorf("Lookup(201) = %d, want 12", got)
	}
	if got := sub.Lookup(203); got != 0 {
		t.Errorf("Lookup(203) = %d, want 0 (past the trimmed range)", got)
	}
}

// buildTable assembles a full 'cmap' table with one (3,1) format-4 subtable.
func buildTable() []byte {
	sub := buildFormat4()
	dirHeader := 4
	recordSize := 8
	subtableOffset := dirHeader + recordSize

	buf := make([]byte, subtableOffset+len(sub))
	binary.BigEndian.PutUint16(buf[0:2], 0) // version
	binary.BigEndian.PutUint16(buf[2:4], 1) // numTables
	binary.BigEndian.PutUint16(buf[4:6], 3) // platform
	binary.BigEndian.PutUint16(buf[6:8], 1) // encoding
	binary.BigEndian.PutUint32(buf[8:12], uint32(subtableOffset))
	copy(buf[subtableOffset:], sub)
	return buf
}

func TestReadSelectsActiveSubtable(t *testing.T) {
	table, err := Read(buildTable())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if table.Active == nil {
		t.Fatal("Active is nil, want the (3,1) subtable selected")
	}
	if got := table.Active.Lookup('A'); got != 1 {
		t.Errorf("Active.Lookup('A') = %d, want 1", got)
	}
}
