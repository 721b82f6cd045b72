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

import (
	"fmt"
	"strconv"
)

// Version holds a 16.16 "fixed" version field the way this font family's
// tools have historically written it: the raw 32-bit value is kept
// alongside its decoded form so that re-encoding reproduces the original
// bytes exactly, even though the decoded form is lossy (see FixedVersion).
type Version struct {
	raw uint32
}

// NewVersion wraps a raw 16.16 version word.
func NewVersion(raw uint32) Version { return Version{raw: raw} }

// Raw returns the original 32-bit value, unchanged by decoding.
func (v Version) Raw() uint32 { return v.raw }

// Float returns the decoded major.minor value, per FixedVersion.
func (v Version) Float() float64 { return FixedVersion(v.raw) }

func (v Version) String() string { return fmt.Sprintf("%.4f", v.Float()) }

// FixedVersion decodes a 32-bit "fixed version" word the way font tooling
// in this family has historically rendered it: the value is formatted as
// 8 hex digits, the top 4 digits are read as a decimal integer (the major
// version), and the bottom 4 digits are read as a decimal integer too
// (the minor version, placed after the decimal point with leading
// zeros). So 0x00035000 reads as hex "0003"/"5000", giving 3.5000, and
// 0x00105000 reads as "0010"/"5000", giving 10.5000 — not 16.5 as a
// straight 16.16 fixed-point interpretation would give. This is a known
// quirk of the historical convention, not a bug, and must be reproduced
// bit-exactly.
func FixedVersion(raw uint32) float64 {
	hex := fmt.Sprintf("%08x", raw)
	major := decimalDigitsValue(hex[:4])
	minor := decimalDigitsValue(hex[4:])
	return float64(major) + float64(minor)/10000
}

// decimalDigitsValue reads a 4-character string as a base-10 integer.
// Font revision fields only ever use digits 0-9 in each nibble group by
// convention; if a value strays outside that (a stray hex letter), fall
// back to reading the same digits as hex rather than failing outright.
func decimalDigitsValue(s string) int64 {
	if n, err := strconv.ParseInt(s, 10, 32); err == nil {
		return n
	}
	n, _ := strconv.ParseInt(s, 16, 32)
	return n
}

// BinarySearchParameters computes the (searchRange, entrySelector) pair
// the sfnt directory header (and cmap format 4's sub-header) encode
// alongside a count n: searchRange is the largest power of two <= n,
// entrySelector is log2(searchRange). The search starts from (2, 1), so
// any n below 4 (including n < 2) yields (2, 1). rangeShift = n - searchRange is
// left to callers, since the two tables that need it apply it to
// different counts (n itself for the file header, 2*n for cmap format 4).
func BinarySearchParameters(n int) (searchRange, entrySelector int) {
	searchRange = 2
	entrySelector = 1
	for searchRange*2 <= n {
		searchRange *= 2
		entrySelector++
	}
	return searchRange, entrySelector
}
