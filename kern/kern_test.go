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

package kern

import "testing"

func TestEncodeReadRoundTrip(t *testing.T) {
	want := Table{
		{Left: 5, Right: 9}:  -30,
		{Left: 5, Right: 20}: -15,
		{Left: 9, Right: 5}:  10,
	}
	got, err := Read(want.Encode())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d pairs, want %d", len(got), len(want))
	}
	for pair, delta := range want {
		if got[pair] != delta {
			t.Errorf("pair %+v = %d, want %d", pair, got[pair], delta)
		}
	}
}

func TestReadUnsupportedVersionDegradesGracefully(t *testing.T) {
	data := []byte{0, 1, 0, 0} // version 1, not supported
	got, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != nil {
		t.Errorf("Read = %v, want nil", got)
	}
}

func TestEncodeEmptyTable(t *testing.T) {
	var empty Table
	buf := empty.Encode()
	got, err := Read(buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d pairs, want 0", len(got))
	}
}
