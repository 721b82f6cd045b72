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

// Package post decodes and encodes the 'post' table's fixed 32-byte
// header. Versions 1.0, 2.0, 2.5 and 3.0 all share this header; the
// glyph-name data that versions 2.0/2.5 append is never needed here (no
// component of this module looks glyphs up by PostScript name) and is
// simply not read.
package post

import (
	"encoding/binary"
	"fmt"

	"github.com/zathras777/zttf/internal/cursor"
)

const headerLength = 32

// Info is the decoded 'post' table header.
type Info struct {
	Version            uint32
	ItalicAngle        int32 // raw 16.16 fixed; divide by 65536 for degrees
	UnderlinePosition  int16
	UnderlineThickness int16
	IsFixedPitch       bool
}

// Read decodes the 32-byte 'post' table header.
func Read(data []byte) (*Info, error) {
	c := cursor.New("post", data)

	version, err := c.U32()
	if err != nil {
		return nil, err
	}
	switch version {
	case 0x00010000, 0x00020000, 0x00025000, 0x00030000:
	default:
		return nil, fmt.Errorf("post: unsupported version %#08x", version)
	}

	info := &Info{Version: version}
	if info.ItalicAngle, err = c.I32(); err != nil {
		return nil, err
	}
	if info.UnderlinePosition, err = c.I16(); err != nil {
		return nil, err
	}
	if info.UnderlineThickness, err = c.I16(); err != nil {
		return nil, err
	}
	fixedPitch, err := c.U32()
	if err != nil {
		return nil, err
	}
	info.IsFixedPitch = fixedPitch != 0
	return info, nil
}

// Encode always emits a version-3.0 header (no glyph-name table), per the
// subsetter's rule that subset output carries post version 3.0.
func (info *Info) Encode() []byte {
	buf := make([]byte, headerLength)
	binary.BigEndian.PutUint32(buf[0:4], 0x00030000)
	binary.BigEndian.PutUint32(buf[4:8], uint32(info.ItalicAngle))
	binary.BigEndian.PutUint16(buf[8:10], uint16(info.UnderlinePosition))
	binary.BigEndian.PutUint16(buf[10:12], uint16(info.UnderlineThickness))
	if info.IsFixedPitch {
		binary.BigEndian.PutUint32(buf[12:16], 1)
	}
	// bytes 16:32 (min/max Type42/Type1 memory) stay zero.
	return buf
}
