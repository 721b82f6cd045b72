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

import "testing"

func TestFixedVersion(t *testing.T) {
	cases := []struct {
		raw  uint32
		want float64
	}{
		{0x00035000, 3.5000},
		{0x00105000, 10.5000},
		{0x00010000, 1.0000},
	}
	for _, c := range cases {
		got := FixedVersion(c.raw)
		if got != c.want {
			t.Errorf("FixedVersion(%#08x) = %v, want %v", c.raw, got, c.want)
		}
	}
}

func TestBinarySearchParameters(t *testing.T) {
	cases := []struct {
		n                       int
		searchRange, entrySelector int
	}{
		{39, 32, 5},
		{10, 8, 3},
	}
	for _, c := range cases {
		sr, es := BinarySearchParameters(c.n)
		if sr != c.searchRange || es != c.entrySelector {
			t.Errorf("BinarySearchParameters(%d) = (%d, %d), want (%d, %d)",
				c.n, sr, es, c.searchRange, c.entrySelector)
		}
	}
}

func TestVersionRoundTrip(t *testing.T) {
	v := NewVersion(0x00025000)
	if v.Raw() != 0x00025000 {
		t.Errorf("Raw() = %#08x, want %#08x", v.Raw(), 0x00025000)
	}
	if v.Float() != 2.5000 {
		t.Errorf("Float() = %v, want 2.5", v.Float())
	}
}
