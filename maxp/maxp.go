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

// Package maxp decodes and encodes the 'maxp' table. Only NumGlyphs is
// exposed as a field callers act on; the version-1.0 profiling fields
// (maxPoints, maxContours, ...) are round-tripped opaquely.
package maxp

import (
	"encoding/binary"
	"fmt"

	"github.com/zathras777/zttf/internal/cursor"
)

const (
	versionCFF       = 0x00005000 // 6-byte table, used alongside CFF outlines
	versionTrueType  = 0x00010000 // 32-byte table, used alongside glyf outlines
	trueTypeLength   = 32
)

// Info is the decoded 'maxp' table.
type Info struct {
	Version   uint32
	NumGlyphs uint16

	// rest holds the version-1.0 profiling fields verbatim (26 bytes) so a
	// subset can copy them through unexamined; empty for a version-0.5 table.
	rest []byte
}

// Read decodes the 'maxp' table body.
func Read(data []byte) (*Info, error) {
	c := cursor.New("maxp", data)

	version, err := c.U32()
	if err != nil {
		return nil, err
	}
	numGlyphs, err := c.U16()
	if err != nil {
		return nil, err
	}

	info := &Info{Version: version, NumGlyphs: numGlyphs}
	switch version {
	case versionCFF:
		// nothing more to read
	case versionTrueType:
		rest, err := c.Raw(trueTypeLength - 6)
		if err != nil {
			return nil, err
		}
		info.rest = append([]byte(nil), rest...)
	default:
		return nil, fmt.Errorf("maxp: unknown version %#08x", version)
	}
	return info, nil
}

// Encode serializes the 'maxp' table, writing numGlyphs as NumGlyphs.
func (info *Info) Encode(numGlyphs int) []byte {
	var buf []byte
	switch info.Version {
	case versionTrueType:
		buf = make([]byte, trueTypeLength)
		copy(buf[6:], info.rest)
	default:
		buf = make([]byte, 6)
	}
	binary.BigEndian.PutUint32(buf[0:4], info.Version)
	binary.BigEndian.PutUint16(buf[4:6], uint16(numGlyphs))
	return buf
}
