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

import "fmt"

// FormatError indicates that a file or table is not well-formed: a bad
// sfnt version, a malformed directory, an out-of-range table offset, or a
// table body that does not parse according to its own internal length.
type FormatError struct {
	Table  string // empty for file-level errors (sfnt version, ttcf header)
	Reason string
}

func (e *FormatError) Error() string {
	if e.Table == "" {
		return "ttf: " + e.Reason
	}
	return fmt.Sprintf("ttf: %s: %s", e.Table, e.Reason)
}

// UnsupportedFeatureError indicates that a font uses a variant of a table
// this package does not decode: a cmap with no subtable in format 0, 4 or
// 6 to serve as the active map, or a 'head' glyphDataFormat other than 0.
type UnsupportedFeatureError struct {
	Table   string
	Feature string
}

func (e *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("ttf: %s: %s not supported", e.Table, e.Feature)
}

// CyclicCompoundError indicates that a compound glyph's component chain
// refers back to one of its own ancestors.
type CyclicCompoundError struct {
	Glyph int
}

func (e *CyclicCompoundError) Error() string {
	return fmt.Sprintf("ttf: glyf: glyph %d has a cyclic compound reference", e.Glyph)
}

// MissingTableError indicates that a table required for the requested
// operation is absent from the font. Optional tables being absent is not
// reported this way; see the individual accessors.
type MissingTableError struct {
	Table string
}

func (e *MissingTableError) Error() string {
	return "ttf: missing " + e.Table + " table"
}

// IsMissingTable reports whether err is a *MissingTableError.
func IsMissingTable(err error) bool {
	_, ok := err.(*MissingTableError)
	return ok
}
