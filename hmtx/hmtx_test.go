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

package hmtx

import (
	"encoding/binary"
	"testing"
)

func TestReadTrailingGlyphsInheritAdvance(t *testing.T) {
	// 2 explicit (advance, lsb) pairs, then one trailing lsb-only glyph.
	data := make([]byte, 4*2+2)
	binary.BigEndian.PutUint16(data[0:2], 500)
	binary.BigEndian.PutUint16(data[2:4], 10)
	binary.BigEndian.PutUint16(data[4:6], 600)
	binary.BigEndian.PutUint16(data[6:8], 20)
	trailingLSB := int16(-5)
	binary.BigEndian.PutUint16(data[8:10], uint16(trailingLSB))

	metrics, err := Read(data, 2, 3)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if metrics[2].Advance != 600 {
		t.Errorf("trailing glyph advance = %d, want 600 (inherited)", metrics[2].Advance)
	}
	if metrics[2].LSB != -5 {
		t.Errorf("trailing glyph lsb = %d, want -5", metrics[2].LSB)
	}
}

func TestReadRejectsInvalidCount(t *testing.T) {
	if _, err := Read(nil, 5, 3); err == nil {
		t.Error("Read accepted numberOfMetrics > numGlyphs")
	}
	if _, err := Read(nil, 0, 3); err == nil {
		t.Error("Read accepted numberOfMetrics == 0")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	want := []Metric{{Advance: 500, LSB: 10}, {Advance: 600, LSB: -5}}
	got, err := Read(Encode(want), 2, 2)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("metrics[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
