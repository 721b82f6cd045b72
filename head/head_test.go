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

package head

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sample() *Info {
	return &Info{
		FontRevision:      0x00010000,
		Flags:             0x0003,
		UnitsPerEm:        1000,
		Created:           3000000000,
		Modified:          3000000100,
		BBox:              Rect{XMin: -100, YMin: -200, XMax: 900, YMax: 800},
		MacStyle:          styleBold | styleItalic,
		LowestRecPPEM:     8,
		FontDirectionHint: 2,
		IndexToLocFormat:  0,
		GlyphDataFormat:   0,
		ChecksumAdj:       0x12345678,
	}
}

func TestRoundTrip(t *testing.T) {
	want := sample()
	got, err := Read(want.Encode())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestStyleBits(t *testing.T) {
	info := sample()
	if !info.IsBold() {
		t.Error("IsBold() = false, want true")
	}
	if !info.IsItalic() {
		t.Error("IsItalic() = false, want true")
	}
	if info.HasUnderline() {
		t.Error("HasUnderline() = true, want false")
	}
}

func TestReadRejectsBadMagic(t *testing.T) {
	buf := sample().Encode()
	buf[12] = 0 // corrupt the magic number word
	if _, err := Read(buf); err == nil {
		t.Error("Read accepted a corrupt magic number")
	}
}

func TestReadRejectsBadVersion(t *testing.T) {
	buf := sample().Encode()
	buf[3] = 1 // corrupt the version word's low byte
	if _, err := Read(buf); err == nil {
		t.Error("Read accepted an unsupported version")
	}
}

func TestPatchChecksumAdj(t *testing.T) {
	buf := sample().Encode()
	PatchChecksumAdj(buf, 0xAABBCCDD)
	got, err := Read(buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.ChecksumAdj != 0xAABBCCDD {
		t.Errorf("ChecksumAdj = %#08x, want %#08x", got.ChecksumAdj, 0xAABBCCDD)
	}
}
