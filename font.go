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
	"math"
	"sort"

	"github.com/zathras777/zttf/cmap"
	"github.com/zathras777/zttf/glyf"
	"github.com/zathras777/zttf/head"
	"github.com/zathras777/zttf/hhea"
	"github.com/zathras777/zttf/hmtx"
	"github.com/zathras777/zttf/kern"
	"github.com/zathras777/zttf/maxp"
	"github.com/zathras777/zttf/nametab"
	"github.com/zathras777/zttf/os2"
	"github.com/zathras777/zttf/post"
)

// GlyphID is a glyph index; 0 is always .notdef.
type GlyphID uint16

// Rect is a bounding box in font design units, scaled to 1000 units per
// em by BoundingBox.
type Rect struct {
	XMin, YMin, XMax, YMax int
}

// Font is one parsed face: the decoded mandatory tables plus whichever
// optional tables were present. It is immutable once constructed; a
// subset is built by reading out of a Font, never by mutating one.
type Font struct {
	data []byte // this face's bytes, sliced from the start of its header
	dir  *Directory

	head *head.Info
	hhea *hhea.Info
	maxp *maxp.Info
	os2  *os2.Info // nil if absent
	post *post.Info // nil if absent
	name *nametab.Table

	cmap *cmap.Table

	metrics     []hmtx.Metric
	locaOffsets []uint32
	glyfData    []byte

	kern kern.Table // nil if absent or version unsupported
}

// parseFace decodes one face starting at the given slice (which must
// extend at least to the end of the face's furthest table).
func parseFace(data []byte) (*Font, error) {
	dir, err := decodeDirectory(data)
	if err != nil {
		return nil, err
	}
	if dir.SfntVersion != sfntVersionTrueType {
		return nil, &FormatError{Reason: fmt.Sprintf("unsupported sfnt version %#08x", dir.SfntVersion)}
	}

	f := &Font{data: data, dir: dir}

	headBytes, err := f.requireTable("head")
	if err != nil {
		return nil, err
	}
	if f.head, err = head.Read(headBytes); err != nil {
		return nil, &FormatError{Table: "head", Reason: err.Error()}
	}
	if f.head.GlyphDataFormat != 0 {
		return nil, &UnsupportedFeatureError{Table: "glyf", Feature: fmt.Sprintf("glyph data format %d", f.head.GlyphDataFormat)}
	}

	hheaBytes, err := f.requireTable("hhea")
	if err != nil {
		return nil, err
	}
	if f.hhea, err = hhea.Read(hheaBytes); err != nil {
		return nil, &FormatError{Table: "hhea", Reason: err.Error()}
	}

	maxpBytes, err := f.requireTable("maxp")
	if err != nil {
		return nil, err
	}
	if f.maxp, err = maxp.Read(maxpBytes); err != nil {
		return nil, &FormatError{Table: "maxp", Reason: err.Error()}
	}
	numGlyphs := int(f.maxp.NumGlyphs)

	hmtxBytes, err := f.requireTable("hmtx")
	if err != nil {
		return nil, err
	}
	if f.metrics, err = hmtx.Read(hmtxBytes, int(f.hhea.NumberOfMetrics), numGlyphs); err != nil {
		return nil, &FormatError{Table: "hmtx", Reason: err.Error()}
	}

	locaBytes, err := f.requireTable("loca")
	if err != nil {
		return nil, err
	}
	f.locaOffsets, err = glyf.ReadLoca(locaBytes, numGlyphs, f.head.IndexToLocFormat != 0)
	if err != nil {
		return nil, &FormatError{Table: "loca", Reason: err.Error()}
	}

	glyfBytes, err := f.requireTable("glyf")
	if err != nil {
		return nil, err
	}
	f.glyfData = glyfBytes

	cmapBytes, err := f.requireTable("cmap")
	if err != nil {
		return nil, err
	}
	if f.cmap, err = cmap.Read(cmapBytes); err != nil {
		return nil, &FormatError{Table: "cmap", Reason: err.Error()}
	}
	if f.cmap.Active == nil {
		return nil, &UnsupportedFeatureError{Table: "cmap", Feature: "subtable formats other than 0, 4 and 6"}
	}

	if nameBytes, ok := f.tableBytes("name"); ok {
		if f.name, err = nametab.Read(nameBytes); err != nil {
			return nil, &FormatError{Table: "name", Reason: err.Error()}
		}
	}
	if os2Bytes, ok := f.tableBytes("OS/2"); ok {
		if f.os2, err = os2.Read(os2Bytes); err != nil {
			return nil, &FormatError{Table: "OS/2", Reason: err.Error()}
		}
	}
	if postBytes, ok := f.tableBytes("post"); ok {
		if f.post, err = post.Read(postBytes); err != nil {
			return nil, &FormatError{Table: "post", Reason: err.Error()}
		}
	}
	if kernBytes, ok := f.tableBytes("kern"); ok {
		if f.kern, err = kern.Read(kernBytes); err != nil {
			return nil, &FormatError{Table: "kern", Reason: err.Error()}
		}
	}

	return f, nil
}

// TableBytes returns the raw, undecoded bytes of table tag, exactly as
// they sit in the source file, and whether the table is present. The
// subsetter uses this for the tables it copies through unexamined.
func (f *Font) TableBytes(tag string) ([]byte, bool) { return f.tableBytes(tag) }

// HeadInfo, HheaInfo, MaxpInfo, PostInfo and OS2Info expose the decoded
// tables the subsetter needs to adjust-and-copy. PostInfo and OS2Info
// are nil when the table was absent from the source font.
func (f *Font) HeadInfo() *head.Info  { return f.head }
func (f *Font) HheaInfo() *hhea.Info  { return f.hhea }
func (f *Font) MaxpInfo() *maxp.Info  { return f.maxp }
func (f *Font) PostInfo() *post.Info  { return f.post }
func (f *Font) OS2Info() *os2.Info    { return f.os2 }

// Metrics returns every glyph's (advance, lsb) pair in parent glyph-id
// order.
func (f *Font) Metrics() []hmtx.Metric { return f.metrics }

// KernTable returns the decoded 'kern' pairs, or nil if the font has
// none.
func (f *Font) KernTable() kern.Table { return f.kern }

// GlyphData returns glyph g's raw 'glyf' record bytes.
func (f *Font) GlyphData(g GlyphID) ([]byte, error) { return f.glyphData(g) }

func (f *Font) tableBytes(tag string) ([]byte, bool) {
	e, ok := f.dir.Find(tag)
	if !ok {
		return nil, false
	}
	start, end := int(e.Offset), int(e.Offset)+int(e.Length)
	if start < 0 || end > len(f.data) || start > end {
		return nil, false
	}
	return f.data[start:end], true
}

func (f *Font) requireTable(tag string) ([]byte, error) {
	b, ok := f.tableBytes(tag)
	if !ok {
		return nil, &MissingTableError{Table: tag}
	}
	return b, nil
}

// NumGlyphs returns the face's total glyph count, from 'maxp'.
func (f *Font) NumGlyphs() int { return int(f.maxp.NumGlyphs) }

// FontFamily returns the (1,0) or (3,1) "Font Family" name (nameID 1),
// or "" if not present.
func (f *Font) FontFamily() string {
	if f.name == nil {
		return ""
	}
	s, _ := f.name.Lookup(1)
	return s
}

// PostScriptName returns the "PostScript name" (nameID 6), or "" if
// not present.
func (f *Font) PostScriptName() string {
	if f.name == nil {
		return ""
	}
	s, _ := f.name.Lookup(6)
	return s
}

func (f *Font) Ascender() int16    { return f.hhea.Ascender }
func (f *Font) Descender() int16   { return f.hhea.Descender }
func (f *Font) UnitsPerEm() uint16 { return f.head.UnitsPerEm }
func (f *Font) LineGap() int16     { return f.hhea.LineGap }

// BoundingBox returns the font-wide bounding box, scaled from design
// units to a 1000-unit em square.
func (f *Font) BoundingBox() Rect {
	scale := 1000.0 / float64(f.head.UnitsPerEm)
	scaleCoord := func(v int16) int {
		return int(math.Round(float64(v) * scale))
	}
	return Rect{
		XMin: scaleCoord(f.head.BBox.XMin),
		YMin: scaleCoord(f.head.BBox.YMin),
		XMax: scaleCoord(f.head.BBox.XMax),
		YMax: scaleCoord(f.head.BBox.YMax),
	}
}

// ItalicAngle returns the 'post' table's italic angle in degrees, or 0
// if 'post' is absent.
func (f *Font) ItalicAngle() float64 {
	if f.post == nil {
		return 0
	}
	return float64(f.post.ItalicAngle) / 65536 // 16.16 fixed point
}

// IsItalic reports a nonzero italic angle.
func (f *Font) IsItalic() bool { return f.ItalicAngle() != 0 }

// CapHeight returns the 'OS/2' cap height, or 0 if 'OS/2' is absent or
// predates version 2.
func (f *Font) CapHeight() int16 {
	if f.os2 == nil {
		return 0
	}
	return f.os2.CapHeight
}

// WeightClass returns the 'OS/2' weight class, or 0 if 'OS/2' is absent.
func (f *Font) WeightClass() uint16 {
	if f.os2 == nil {
		return 0
	}
	return f.os2.WeightClass
}

// TypoLineGap returns the 'OS/2' typographic line gap, or 0 if 'OS/2'
// is absent.
func (f *Font) TypoLineGap() int16 {
	if f.os2 == nil {
		return 0
	}
	return f.os2.TypoLineGap
}

// WinAscent returns the 'OS/2' Windows ascent metric, or 0 if 'OS/2'
// is absent.
func (f *Font) WinAscent() int16 {
	if f.os2 == nil {
		return 0
	}
	return int16(f.os2.WinAscent)
}

// WinDescent returns the 'OS/2' Windows descent metric (positive), or 0
// if 'OS/2' is absent.
func (f *Font) WinDescent() int16 {
	if f.os2 == nil {
		return 0
	}
	return int16(f.os2.WinDescent)
}

// StemV estimates the dominant vertical stem width from the 'OS/2'
// weight class, using the same heuristic Adobe's own font tools use for
// PDF /FontDescriptor /StemV when no better source is available.
func (f *Font) StemV() int {
	w := float64(f.WeightClass())
	return 50 + int(math.Round(math.Pow(w/65, 2)))
}

// CharToGlyph maps a code point through the active cmap subtable,
// returning 0 (.notdef) if unmapped or if the font has no usable cmap.
func (f *Font) CharToGlyph(r rune) GlyphID {
	if f.cmap == nil || f.cmap.Active == nil || r < 0 || r > 0xFFFF {
		return 0
	}
	return GlyphID(f.cmap.Active.Lookup(uint16(r)))
}

// GlyphMetrics returns glyph g's advance width and left side bearing.
func (f *Font) GlyphMetrics(g GlyphID) (advance uint16, lsb int16) {
	if int(g) >= len(f.metrics) {
		return 0, 0
	}
	m := f.metrics[g]
	return m.Advance, m.LSB
}

// Kern returns the kerning delta between two consecutive glyphs, or 0 if
// the font has no 'kern' table or no entry for the pair.
func (f *Font) Kern(left, right GlyphID) int16 {
	if f.kern == nil {
		return 0
	}
	return f.kern[kern.Pair{Left: uint16(left), Right: uint16(right)}]
}

// StringWidth sums the advance widths of s's glyphs, adjusted by the
// first glyph's left side bearing and by pairwise kerning between
// consecutive glyphs - the layout-width convention spec.md §4.5 defines.
func (f *Font) StringWidth(s string) int {
	runes := []rune(s)
	if len(runes) == 0 {
		return 0
	}
	total := 0
	var prev GlyphID
	for i, r := range runes {
		g := f.CharToGlyph(r)
		advance, lsb := f.GlyphMetrics(g)
		total += int(advance)
		if i == 0 {
			total -= int(lsb)
		} else {
			total += int(f.Kern(prev, g))
		}
		prev = g
	}
	return total
}

// glyphData returns glyph g's raw 'glyf' record bytes.
func (f *Font) glyphData(g GlyphID) ([]byte, error) {
	return glyf.GlyphData(f.glyfData, f.locaOffsets, int(g))
}

// GlyphComponents returns the sorted, de-duplicated transitive closure of
// glyph ids a compound glyph references (empty for a simple glyph). It
// rejects cyclic compound references with a *CyclicCompoundError rather
// than recursing forever.
func (f *Font) GlyphComponents(g GlyphID) ([]GlyphID, error) {
	seen := map[GlyphID]bool{}
	inStack := map[GlyphID]bool{}
	var result []GlyphID

	var visit func(g GlyphID) error
	visit = func(g GlyphID) error {
		if inStack[g] {
			return &CyclicCompoundError{Glyph: int(g)}
		}
		inStack[g] = true
		defer delete(inStack, g)

		data, err := f.glyphData(g)
		if err != nil {
			return err
		}
		comps, err := glyf.Components(data)
		if err != nil {
			return err
		}
		for _, comp := range comps {
			child := GlyphID(comp.GlyphIndex)
			if !seen[child] {
				seen[child] = true
				result = append(result, child)
			}
			if err := visit(child); err != nil {
				return err
			}
		}
		return nil
	}

	if err := visit(g); err != nil {
		return nil, err
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result, nil
}
