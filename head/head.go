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

// Package head decodes and encodes the 'head' table: units-per-em, the
// font-wide bounding box, the loca offset format, and the macStyle flags.
package head

import (
	"encoding/binary"
	"fmt"

	"github.com/zathras777/zttf/internal/cursor"
)

const (
	versionWord = 0x00010000
	magicNumber = 0x5F0F3CF5
	tableLength = 54
)

// macStyle bit assignments (OpenType canonical; the distilled source carried
// a duplicate definition of bit 0 which this package does not reproduce).
const (
	styleBold = 1 << iota
	styleItalic
	styleUnderline
	styleOutline
	styleShadow
	styleCondensed
	styleExtended
)

// Rect is a font-design-unit bounding box, as stored in head and scaled by
// callers that need it in 1000-unit em space.
type Rect struct {
	XMin, YMin, XMax, YMax int16
}

// Info is the decoded 'head' table.
type Info struct {
	FontRevision      uint32 // raw 16.16 word; see ttf.FixedVersion for decode
	Flags             uint16
	UnitsPerEm        uint16
	Created, Modified int64 // seconds since 1904-01-01, as stored on the wire
	BBox              Rect
	MacStyle          uint16
	LowestRecPPEM     uint16
	FontDirectionHint int16
	IndexToLocFormat  int16 // 0 = short (u16 halved), 1 = long (u32)
	GlyphDataFormat   int16
	ChecksumAdj       uint32
}

func (info *Info) IsBold() bool       { return info.MacStyle&styleBold != 0 }
func (info *Info) IsItalic() bool     { return info.MacStyle&styleItalic != 0 }
func (info *Info) HasUnderline() bool { return info.MacStyle&styleUnderline != 0 }
func (info *Info) IsOutline() bool    { return info.MacStyle&styleOutline != 0 }
func (info *Info) HasShadow() bool    { return info.MacStyle&styleShadow != 0 }
func (info *Info) IsCondensed() bool  { return info.MacStyle&styleCondensed != 0 }
func (info *Info) IsExtended() bool   { return info.MacStyle&styleExtended != 0 }

// Read decodes the 54-byte 'head' table body.
func Read(data []byte) (*Info, error) {
	c := cursor.New("head", data)

	version, err := c.U32()
	if err != nil {
		return nil, err
	}
	if version != versionWord {
		return nil, fmt.Errorf("head: unsupported table version %#08x", version)
	}

	info := &Info{}
	if info.FontRevision, err = c.U32(); err != nil {
		return nil, err
	}
	if info.ChecksumAdj, err = c.U32(); err != nil {
		return nil, err
	}
	magic, err := c.U32()
	if err != nil {
		return nil, err
	}
	if magic != magicNumber {
		return nil, fmt.Errorf("head: invalid magic number %#08x", magic)
	}
	if info.Flags, err = c.U16(); err != nil {
		return nil, err
	}
	if info.UnitsPerEm, err = c.U16(); err != nil {
		return nil, err
	}
	created, err := c.I32()
	if err != nil {
		return nil, err
	}
	createdLo, err := c.I32()
	if err != nil {
		return nil, err
	}
	info.Created = int64(created)<<32 | int64(uint32(createdLo))
	modified, err := c.I32()
	if err != nil {
		return nil, err
	}
	modifiedLo, err := c.I32()
	if err != nil {
		return nil, err
	}
	info.Modified = int64(modified)<<32 | int64(uint32(modifiedLo))

	if info.BBox.XMin, err = c.I16(); err != nil {
		return nil, err
	}
	if info.BBox.YMin, err = c.I16(); err != nil {
		return nil, err
	}
	if info.BBox.XMax, err = c.I16(); err != nil {
		return nil, err
	}
	if info.BBox.YMax, err = c.I16(); err != nil {
		return nil, err
	}
	if info.MacStyle, err = c.U16(); err != nil {
		return nil, err
	}
	if info.LowestRecPPEM, err = c.U16(); err != nil {
		return nil, err
	}
	if info.FontDirectionHint, err = c.I16(); err != nil {
		return nil, err
	}
	if info.IndexToLocFormat, err = c.I16(); err != nil {
		return nil, err
	}
	if info.GlyphDataFormat, err = c.I16(); err != nil {
		return nil, err
	}
	return info, nil
}

// Encode serializes the 'head' table. ChecksumAdj is written as stored on
// info; callers building a subset must zero it before the whole-file
// checksum pass and patch it in afterwards with PatchChecksum.
func (info *Info) Encode() []byte {
	buf := make([]byte, tableLength)
	binary.BigEndian.PutUint32(buf[0:4], versionWord)
	binary.BigEndian.PutUint32(buf[4:8], info.FontRevision)
	binary.BigEndian.PutUint32(buf[8:12], info.ChecksumAdj)
	binary.BigEndian.PutUint32(buf[12:16], magicNumber)
	binary.BigEndian.PutUint16(buf[16:18], info.Flags)
	binary.BigEndian.PutUint16(buf[18:20], info.UnitsPerEm)
	binary.BigEndian.PutUint32(buf[20:24], uint32(info.Created>>32))
	binary.BigEndian.PutUint32(buf[24:28], uint32(info.Created))
	binary.BigEndian.PutUint32(buf[28:32], uint32(info.Modified>>32))
	binary.BigEndian.PutUint32(buf[32:36], uint32(info.Modified))
	binary.BigEndian.PutUint16(buf[36:38], uint16(info.BBox.XMin))
	binary.BigEndian.PutUint16(buf[38:40], uint16(info.BBox.YMin))
	binary.BigEndian.PutUint16(buf[40:42], uint16(info.BBox.XMax))
	binary.BigEndian.PutUint16(buf[42:44], uint16(info.BBox.YMax))
	binary.BigEndian.PutUint16(buf[44:46], info.MacStyle)
	binary.BigEndian.PutUint16(buf[46:48], info.LowestRecPPEM)
	binary.BigEndian.PutUint16(buf[48:50], uint16(info.FontDirectionHint))
	binary.BigEndian.PutUint16(buf[50:52], uint16(info.IndexToLocFormat))
	binary.BigEndian.PutUint16(buf[52:54], uint16(info.GlyphDataFormat))
	return buf
}

// PatchChecksumAdj rewrites the checksum-adjustment word (at byte offset 8)
// of an already-encoded 'head' table in place.
func PatchChecksumAdj(headBytes []byte, adjustment uint32) {
	binary.BigEndian.PutUint32(headBytes[8:12], adjustment)
}
