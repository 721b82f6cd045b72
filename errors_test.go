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

func TestIsMissingTable(t *testing.T) {
	if !IsMissingTable(&MissingTableError{Table: "cmap"}) {
		t.Error("IsMissingTable = false for a *MissingTableError")
	}
	if IsMissingTable(&FormatError{Table: "cmap", Reason: "bad"}) {
		t.Error("IsMissingTable = true for a *FormatError")
	}
	if IsMissingTable(nil) {
		t.Error("IsMissingTable = true for nil")
	}
}

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&FormatError{Reason: "bad ttcf header"}, "ttf: bad ttcf header"},
		{&FormatError{Table: "head", Reason: "bad magic"}, "ttf: head: bad magic"},
		{&UnsupportedFeatureError{Table: "cmap", Feature: "format 12"}, "ttf: cmap: format 12 not supported"},
		{&CyclicCompoundError{Glyph: 7}, "ttf: glyf: glyph 7 has a cyclic compound reference"},
		{&MissingTableError{Table: "glyf"}, "ttf: missing glyf table"},
	}
	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Errorf("Error() = %q, want %q", got, c.want)
		}
	}
}
