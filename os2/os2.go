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

// Package os2 decodes the 'OS/2' table. The table format grew by
// version (0 through 4 add trailing fields; version 5 adds more still),
// so decoding must stop gracefully at whatever length the table declares
// rather than assuming the newest layout is always present.
package os2

import (
	"encoding/binary"
	"fmt"

	"github.com/zathras777/zttf/internal/cursor"
)

// Info is the decoded 'OS/2' table, truncated to whatever a given
// version's table actually carries. Fields added only in later versions
// are zero when the source table's version didn't reach them.
type Info struct {
	Version     uint16
	WeightClass uint16
	WidthClass  uint16
	Selection   uint16

	TypoAscender  int16
	TypoDescender int16
	TypoLineGap   int16
	WinAscent     uint16
	WinDescent    uint16

	CapHeight int16 // version >= 2 only

	// Raw holds the table's original bytes, used by the subsetter to copy
	// the table through unchanged ("OS/2: copy as-is").
	Raw []byte
}

// field offsets within the fixed version-0 prefix (common to every version).
const (
	offVersion        = 0
	offWeightClass    = 4
	offWidthClass     = 6
	offSelection      = 62
	offTypoAscender   = 68
	offTypoDescender  = 70
	offTypoLineGap    = 72
	offWinAscent      = 74
	offWinDescent     = 76
	offCapHeight      = 88 // version >= 2
	v0MinLength       = 78 // through winDescent
	v2MinForCapHeight = 90
)

// Read decodes as much of the 'OS/2' table as its declared length covers.
func Read(data []byte) (*Info, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("os2: table too short for version word")
	}
	version := binary.BigEndian.Uint16(data[offVersion : offVersion+2])
	if version > 5 {
		return nil, fmt.Errorf("os2: unsupported version %d", version)
	}

	info := &Info{Version: version, Raw: append([]byte(nil), data...)}
	if len(data) < int(offWeightClass)+2 {
		return info, nil
	}
	info.WeightClass = binary.BigEndian.Uint16(data[offWeightClass : offWeightClass+2])
	if len(data) >= offWidthClass+2 {
		info.WidthClass = binary.BigEndian.Uint16(data[offWidthClass : offWidthClass+2])
	}
	if len(data) < v0MinLength {
		// Version 0 tables written before the Windows metrics fields were
		// standard may be this short; what we have is all there is.
		return info, nil
	}

	c := cursor.New("OS/2", data)
	if err := c.Seek(offSelection); err != nil {
		return nil, err
	}
	sel, err := c.U16()
	if err != nil {
		return nil, err
	}
	info.Selection = sel

	if err := c.Seek(offTypoAscender); err != nil {
		return nil, err
	}
	if info.TypoAscender, err = c.I16(); err != nil {
		return nil, err
	}
	if info.TypoDescender, err = c.I16(); err != nil {
		return nil, err
	}
	if info.TypoLineGap, err = c.I16(); err != nil {
		return nil, err
	}
	winAscent, err := c.U16()
	if err != nil {
		return nil, err
	}
	info.WinAscent = winAscent
	winDescent, err := c.U16()
	if err != nil {
		return nil, err
	}
	info.WinDescent = winDescent

	if version >= 2 && len(data) >= v2MinForCapHeight {
		if err := c.Seek(offCapHeight); err != nil {
			return nil, err
		}
		if info.CapHeight, err = c.I16(); err != nil {
			return nil, err
		}
	}
	return info, nil
}

// Encode returns the table's original bytes unchanged: per the subsetter's
// rules the 'OS/2' table is always copied as-is, never rebuilt.
func (info *Info) Encode() []byte {
	return info.Raw
}
