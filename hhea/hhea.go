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

// Package hhea decodes and encodes the 'hhea' table: the horizontal header
// that precedes 'hmtx' and carries the font's ascent/descent/line-gap plus
// the count of explicit advance widths in 'hmtx'.
package hhea

import (
	"encoding/binary"
	"fmt"

	"github.com/zathras777/zttf/internal/cursor"
)

const (
	versionWord = 0x00010000
	tableLength = 36
)

// Info is the decoded 'hhea' table. Fields this package's callers never
// need to rewrite (caret slope, min/max side bearings) are kept as raw
// values so a subset can copy them through unexamined, per the source
// table's own "adjust only what must change" rule.
type Info struct {
	Ascender           int16
	Descender          int16
	LineGap            int16
	AdvanceWidthMax    uint16
	MinLeftSideBearing int16
	MinRightSideBearing int16
	XMaxExtent         int16
	CaretSlopeRise     int16
	CaretSlopeRun      int16
	CaretOffset        int16
	MetricDataFormat   int16
	NumberOfMetrics    uint16
}

// Read decodes the 36-byte 'hhea' table body.
func Read(data []byte) (*Info, error) {
	c := cursor.New("hhea", data)

	version, err := c.U32()
	if err != nil {
		return nil, err
	}
	if version != versionWord {
		return nil, fmt.Errorf("hhea: unsupported table version %#08x", version)
	}

	info := &Info{}
	if info.Ascender, err = c.I16(); err != nil {
		return nil, err
	}
	if info.Descender, err = c.I16(); err != nil {
		return nil, err
	}
	if info.LineGap, err = c.I16(); err != nil {
		return nil, err
	}
	if info.AdvanceWidthMax, err = c.U16(); err != nil {
		return nil, err
	}
	if info.MinLeftSideBearing, err = c.I16(); err != nil {
		return nil, err
	}
	if info.MinRightSideBearing, err = c.I16(); err != nil {
		return nil, err
	}
	if info.XMaxExtent, err = c.I16(); err != nil {
		return nil, err
	}
	if info.CaretSlopeRise, err = c.I16(); err != nil {
		return nil, err
	}
	if info.CaretSlopeRun, err = c.I16(); err != nil {
		return nil, err
	}
	if info.CaretOffset, err = c.I16(); err != nil {
		return nil, err
	}
	if err = c.Skip(8); err != nil { // 4 reserved int16 fields
		return nil, err
	}
	if info.MetricDataFormat, err = c.I16(); err != nil {
		return nil, err
	}
	if info.NumberOfMetrics, err = c.U16(); err != nil {
		return nil, err
	}
	return info, nil
}

// Encode serializes the 'hhea' table.
func (info *Info) Encode() []byte {
	buf := make([]byte, tableLength)
	binary.BigEndian.PutUint32(buf[0:4], versionWord)
	binary.BigEndian.PutUint16(buf[4:6], uint16(info.Ascender))
	binary.BigEndian.PutUint16(buf[6:8], uint16(info.Descender))
	binary.BigEndian.PutUint16(buf[8:10], uint16(info.LineGap))
	binary.BigEndian.PutUint16(buf[10:12], info.AdvanceWidthMax)
	binary.BigEndian.PutUint16(buf[12:14], uint16(info.MinLeftSideBearing))
	binary.BigEndian.PutUint16(buf[14:16], uint16(info.MinRightSideBearing))
	binary.BigEndian.PutUint16(buf[16:18], uint16(info.XMaxExtent))
	binary.BigEndian.PutUint16(buf[18:20], uint16(info.CaretSlopeRise))
	binary.BigEndian.PutUint16(buf[20:22], uint16(info.CaretSlopeRun))
	binary.BigEndian.PutUint16(buf[22:24], uint16(info.CaretOffset))
	// bytes 24:32 stay zero (reserved)
	binary.BigEndian.PutUint16(buf[32:34], uint16(info.MetricDataFormat))
	binary.BigEndian.PutUint16(buf[34:36], info.NumberOfMetrics)
	return buf
}
