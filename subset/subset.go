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

// Package subset builds a minimal, self-contained TTF byte stream
// containing only the glyphs a caller-chosen set of code points
// transitively requires.
package subset

import (
	"fmt"
	"sort"

	"github.com/zathras777/zttf"
	"github.com/zathras777/zttf/glyf"
	"github.com/zathras777/zttf/hmtx"
	"github.com/zathras777/zttf/kern"
)

// Warning records a code point the parent font could not map to a
// glyph; the point is simply excluded from the subset rather than
// aborting the whole operation.
type Warning struct {
	CodePoint rune
}

func (w Warning) Error() string {
	return fmt.Sprintf("subset: code point %U has no glyph in the source font", w.CodePoint)
}

// copyThroughTables are copied byte-for-byte from the parent font when
// present, never rebuilt.
var copyThroughTables = []string{"name", "cvt ", "fpgm", "prep", "gasp"}

// Subset holds the glyph closure and renumbering computed from a parent
// font and a set of code points; Output serializes it to bytes.
type Subset struct {
	parent   *ttf.Font
	order    []ttf.GlyphID          // required glyphs, old ids, ascending, index 0 is always notdef
	glyphMap map[ttf.GlyphID]ttf.GlyphID // old id -> new id
	mappings []codeGlyph                 // (code point, new glyph id), sorted by code
	warnings []Warning
}

type codeGlyph struct {
	code  rune
	glyph ttf.GlyphID
}

// New computes the glyph closure for codepoints against f: for every
// mappable code point, its glyph and that glyph's transitive compound
// components are added to the required set. Unmappable code points are
// recorded as warnings, not errors; a cyclic compound reference aborts
// the whole operation.
func New(f *ttf.Font, codepoints []rune) (*Subset, error) {
	required := map[ttf.GlyphID]bool{0: true} // .notdef is always kept
	order := []ttf.GlyphID{0}
	var mappings []codeGlyph
	var warnings []Warning

	add := func(g ttf.GlyphID) {
		if !required[g] {
			required[g] = true
			order = append(order, g)
		}
	}

	for _, c := range codepoints {
		g := f.CharToGlyph(c)
		if g == 0 {
			warnings = append(warnings, Warning{CodePoint: c})
			continue
		}
		mappings = append(mappings, codeGlyph{code: c, glyph: g})
		add(g)

		comps, err := f.GlyphComponents(g)
		if err != nil {
			return nil, err
		}
		for _, comp := range comps {
			add(comp)
		}
	}

	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	glyphMap := make(map[ttf.GlyphID]ttf.GlyphID, len(order))
	for newID, oldID := range order {
		glyphMap[oldID] = ttf.GlyphID(newID)
	}

	for i := range mappings {
		mappings[i].glyph = glyphMap[mappings[i].glyph]
	}
	sort.Slice(mappings, func(i, j int) bool { return mappings[i].code < mappings[j].code })

	return &Subset{
		parent:   f,
		order:    order,
		glyphMap: glyphMap,
		mappings: mappings,
		warnings: warnings,
	}, nil
}

// Warnings returns the code points that could not be mapped to a glyph
// and were excluded from the subset.
func (s *Subset) Warnings() []Warning { return s.warnings }

// NumGlyphs returns the subset's glyph count, including .notdef.
func (s *Subset) NumGlyphs() int { return len(s.order) }

// Output builds and serializes the subset TTF, assigning per-table
// checksums and patching head's whole-file checksum adjustment so the
// output's checksum equals 0xB1B0AFBA.
func (s *Subset) Output() ([]byte, error) {
	tables := make(map[string][]byte)

	for _, tag := range copyThroughTables {
		if b, ok := s.parent.TableBytes(tag); ok {
			tables[tag] = b
		}
	}
	if b, ok := s.parent.TableBytes("OS/2"); ok {
		tables["OS/2"] = b
	}

	glyfData, locaOffsets, err := s.buildGlyfLoca()
	if err != nil {
		return nil, err
	}
	tables["glyf"] = glyfData
	locaBytes, err := glyf.EncodeLoca16(locaOffsets)
	if err != nil {
		return nil, err
	}
	tables["loca"] = locaBytes

	tables["hmtx"] = s.buildHmtx()

	cmapBytes, err := s.buildCMap()
	if err != nil {
		return nil, err
	}
	tables["cmap"] = cmapBytes

	if kernBytes := s.buildKern(); kernBytes != nil {
		tables["kern"] = kernBytes
	}

	if post := s.parent.PostInfo(); post != nil {
		tables["post"] = post.Encode()
	}

	maxp := s.parent.MaxpInfo()
	tables["maxp"] = maxp.Encode(len(s.order))

	hhea := *s.parent.HheaInfo()
	hhea.NumberOfMetrics = uint16(len(s.order))
	tables["hhea"] = hhea.Encode()

	head := *s.parent.HeadInfo()
	head.ChecksumAdj = 0
	head.IndexToLocFormat = 0
	tables["head"] = head.Encode()

	return serialize(tables)
}

// buildGlyfLoca emits required glyphs in new-id order, rewriting
// compound glyphs' component indices via s.glyphMap, and returns the
// rebuilt 'glyf' bytes plus the loca byte-offset table (length
// len(order)+1).
func (s *Subset) buildGlyfLoca() ([]byte, []uint32, error) {
	remap := make(map[uint16]uint16, len(s.glyphMap))
	for old, new := range s.glyphMap {
		remap[uint16(old)] = uint16(new)
	}

	var buf []byte
	offsets := make([]uint32, len(s.order)+1)
	for i, oldID := range s.order {
		data, err := s.parent.GlyphData(oldID)
		if err != nil {
			return nil, nil, err
		}
		data, err = glyf.Rewrite(data, remap)
		if err != nil {
			return nil, nil, err
		}
		buf = append(buf, data...)
		if len(data)%2 != 0 {
			buf = append(buf, 0)
		}
		offsets[i+1] = uint32(len(buf))
	}
	return buf, offsets, nil
}

// buildHmtx emits one (advance, lsb) pair per required glyph, in new-id
// order - the subsetter always writes the full (non-compacted) form.
func (s *Subset) buildHmtx() []byte {
	metrics := make([]hmtx.Metric, len(s.order))
	for i, oldID := range s.order {
		advance, lsb := s.parent.GlyphMetrics(oldID)
		metrics[i] = hmtx.Metric{Advance: advance, LSB: lsb}
	}
	return hmtx.Encode(metrics)
}

// buildKern filters the parent's kerning pairs down to those whose both
// glyphs survived into the subset, rewriting ids, and returns nil if no
// pairs remain (in which case no 'kern' table is emitted at all).
func (s *Subset) buildKern() []byte {
	parentKern := s.parent.KernTable()
	if len(parentKern) == 0 {
		return nil
	}
	filtered := make(kern.Table)
	for pair, delta := range parentKern {
		newLeft, ok1 := s.glyphMap[ttf.GlyphID(pair.Left)]
		newRight, ok2 := s.glyphMap[ttf.GlyphID(pair.Right)]
		if !ok1 || !ok2 {
			continue
		}
		filtered[kern.Pair{Left: uint16(newLeft), Right: uint16(newRight)}] = delta
	}
	if len(filtered) == 0 {
		return nil
	}
	return filtered.Encode()
}
