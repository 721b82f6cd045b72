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

package subset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zathras777/zttf"
	"github.com/zathras777/zttf/internal/testfont"
)

func openTestFont(t *testing.T) *ttf.Font {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.ttf")
	if err := os.WriteFile(path, testfont.Bytes(), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	file, err := ttf.Open(path)
	if err != nil {
		t.Fatalf("ttf.Open: %v", err)
	}
	return file.Faces[0]
}

func TestNewClosureIncludesCompoundComponent(t *testing.T) {
	f := openTestFont(t)
	// 'B' maps to glyph 2, a compound glyph referencing glyph 1; both must
	// end up in the required set alongside .notdef.
	s, err := New(f, []rune{'B'})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.NumGlyphs() != 3 {
		t.Fatalf("NumGlyphs() = %d, want 3 (.notdef, glyph 1, glyph 2)", s.NumGlyphs())
	}
	if len(s.Warnings()) != 0 {
		t.Errorf("Warnings() = %v, want none", s.Warnings())
	}
}

func TestNewWarnsOnUnmappedCodePoint(t *testing.T) {
	f := openTestFont(t)
	s, err := New(f, []rune{'A', 'Z'})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(s.Warnings()) != 1 || s.Warnings()[0].CodePoint != 'Z' {
		t.Fatalf("Warnings() = %v, want one warning for 'Z'", s.Warnings())
	}
	if s.NumGlyphs() != 2 {
		t.Errorf("NumGlyphs() = %d, want 2 (.notdef, glyph 1)", s.NumGlyphs())
	}
}

func TestOutputRoundTrips(t *testing.T) {
	f := openTestFont(t)
	s, err := New(f, []rune{'A', 'B'})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := s.Output()
	if err != nil {
		t.Fatalf("Output: %v", err)
	}

	path := filepath.Join(t.TempDir(), "subset.ttf")
	if err := os.WriteFile(path, out, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	file, err := ttf.Open(path)
	if err != nil {
		t.Fatalf("ttf.Open(subset): %v", err)
	}
	if len(file.Faces) != 1 {
		t.Fatalf("got %d faces, want 1", len(file.Faces))
	}
	sub := file.Faces[0]
	if sub.NumGlyphs() != s.NumGlyphs() {
		t.Errorf("NumGlyphs() = %d, want %d", sub.NumGlyphs(), s.NumGlyphs())
	}
	if sub.FontFamily() != "Test Font" {
		t.Errorf("FontFamily() = %q, want %q (name table copied through)", sub.FontFamily(), "Test Font")
	}
	if g := sub.CharToGlyph('A'); g == 0 {
		t.Error("CharToGlyph('A') = 0 in the subset, want a mapped glyph")
	}
}

func TestOutputChecksum(t *testing.T) {
	f := openTestFont(t)
	s, err := New(f, []rune{'A'})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := s.Output()
	if err != nil {
		t.Fatalf("Output: %v", err)
	}
	if got := ttf.Checksum(out); got != 0xB1B0AFBA {
		t.Errorf("whole-file checksum = %#08x, want 0xB1B0AFBA", got)
	}
}

func TestBuildRanges(t *testing.T) {
	mappings := []codeGlyph{
		{code: 'A', glyph: 1},
		{code: 'B', glyph: 2},
		{code: 'D', glyph: 10},
	}
	ranges := buildRanges(mappings)
	if len(ranges) != 2 {
		t.Fatalf("got %d ranges, want 2 (A-B consecutive, D separate)", len(ranges))
	}
	if ranges[0].start != 'A' || ranges[0].end != 'B' {
		t.Errorf("ranges[0] = %+v, want start=A end=B", ranges[0])
	}
	if ranges[1].start != 'D' || ranges[1].end != 'D' {
		t.Errorf("ranges[1] = %+v, want start=end=D", ranges[1])
	}
}
