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

// Package glyf decodes individual glyph records from the 'glyf' table:
// the five-word header common to every glyph, and for compound glyphs the
// component list that header's negative contour count introduces. Simple
// glyph outline data is never interpreted — no component of this module
// rasterizes or edits outlines — and is kept as an opaque tail so it can
// be copied through byte-for-byte.
package glyf

import (
	"encoding/binary"
	"fmt"

	"github.com/zathras777/zttf/internal/cursor"
)

// compound-glyph component flag bits, per the OpenType 'glyf' spec.
const (
	flagArgsAreWords = 1 << 0
	flagMoreComponents = 1 << 5
	flagHaveScale       = 1 << 3
	flagHaveXYScale     = 1 << 6
	flagHaveTwoByTwo    = 1 << 7
)

// Header is the fixed five-word prefix of every glyph record.
type Header struct {
	NumberOfContours int16
	XMin, YMin       int16
	XMax, YMax       int16
}

// IsCompound reports whether this glyph is composed of references to
// other glyphs rather than its own contours.
func (h Header) IsCompound() bool { return h.NumberOfContours < 0 }

// ReadHeader decodes the fixed prefix of a glyph record. An empty record
// (zero-length, for glyphs with no outline such as space) decodes to a
// zero Header with ok=false.
func ReadHeader(data []byte) (Header, bool, error) {
	if len(data) == 0 {
		return Header{}, false, nil
	}
	if len(data) < 10 {
		return Header{}, false, fmt.Errorf("glyf: incomplete glyph header")
	}
	c := cursor.New("glyf", data)
	var h Header
	var err error
	if h.NumberOfContours, err = c.I16(); err != nil {
		return Header{}, false, err
	}
	if h.XMin, err = c.I16(); err != nil {
		return Header{}, false, err
	}
	if h.YMin, err = c.I16(); err != nil {
		return Header{}, false, err
	}
	if h.XMax, err = c.I16(); err != nil {
		return Header{}, false, err
	}
	if h.YMax, err = c.I16(); err != nil {
		return Header{}, false, err
	}
	return h, true, nil
}

// Component is one entry of a compound glyph's component list: which
// glyph it references, and where that glyph-index field sits within the
// record's bytes (so a subsetter can rewrite it in place after
// renumbering).
type Component struct {
	GlyphIndex uint16
	IndexAt    int // byte offset of GlyphIndex within the glyph record
}

// Components walks a compound glyph's component list and returns every
// referenced glyph index, in order. It is a no-op (returns nil, nil) for
// simple glyphs.
func Components(data []byte) ([]Component, error) {
	header, ok, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}
	if !ok || !header.IsCompound() {
		return nil, nil
	}

	c := cursor.New("glyf", data)
	if err := c.Skip(10); err != nil {
		return nil, err
	}

	var comps []Component
	for {
		flags, err := c.U16()
		if err != nil {
			return nil, err
		}
		indexAt := c.Pos()
		glyphIndex, err := c.U16()
		if err != nil {
			return nil, err
		}
		comps = append(comps, Component{GlyphIndex: glyphIndex, IndexAt: indexAt})

		argBytes := 2
		if flags&flagArgsAreWords != 0 {
			argBytes = 4
		}
		if flags&flagHaveScale != 0 {
			argBytes += 2
		} else if flags&flagHaveXYScale != 0 {
			argBytes += 4
		} else if flags&flagHaveTwoByTwo != 0 {
			argBytes += 8
		}
		if err := c.Skip(argBytes); err != nil {
			return nil, err
		}

		if flags&flagMoreComponents == 0 {
			break
		}
	}
	return comps, nil
}

// Rewrite returns a copy of a compound glyph's record with every
// component's glyph index replaced according to remap. Simple glyphs
// (and empty records) are returned unchanged. remap must have an entry
// for every component index found, or Rewrite returns an error.
func Rewrite(data []byte, remap map[uint16]uint16) ([]byte, error) {
	comps, err := Components(data)
	if err != nil {
		return nil, err
	}
	if comps == nil {
		return data, nil
	}
	out := append([]byte(nil), data...)
	for _, comp := range comps {
		newIndex, ok := remap[comp.GlyphIndex]
		if !ok {
			return nil, fmt.Errorf("glyf: component glyph %d not in subset", comp.GlyphIndex)
		}
		binary.BigEndian.PutUint16(out[comp.IndexAt:comp.IndexAt+2], newIndex)
	}
	return out, nil
}
