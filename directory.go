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

// sfntVersionTrueType is the scaler type for TrueType outline data -
// 0x00010000 (the table version word, not to be confused with Version
// fields inside individual tables).
const sfntVersionTrueType = 0x00010000

const ttcTag = "ttcf"

// DirEntry is one record of a face's table directory: the tag, the
// table's own checksum, and its location within the face (an offset
// measured from the start of the face, which in a collection is not
// necessarily file offset 0).
type DirEntry struct {
	Tag      string
	Checksum uint32
	Offset   uint32
	Length   uint32
}

// Directory is the decoded table directory of one face: the sfnt version
// word, and the per-tag entries in the order they appeared on disk.
type Directory struct {
	SfntVersion uint32
	Entries     []DirEntry
	byTag       map[string]int
}

// directoryHeaderSize is the size, in bytes, of the fixed part of a face
// header: sfntVersion, numTables, searchRange, entrySelector, rangeShift.
const directoryHeaderSize = 12

// dirEntrySize is the size, in bytes, of one directory entry on the wire.
const dirEntrySize = 16

func decodeDirectory(data []byte) (*Directory, error) {
	if len(data) < directoryHeaderSize {
		return nil, &FormatError{Reason: "file too short for a face header"}
	}

	sfntVersion := be32(data[0:4])
	numTables := int(be16(data[4:6]))

	need := directoryHeaderSize + numTables*dirEntrySize
	if len(data) < need {
		return nil, &FormatError{Reason: "file too short for its table directory"}
	}

	dir := &Directory{
		SfntVersion: sfntVersion,
		Entries:     make([]DirEntry, numTables),
		byTag:       make(map[string]int, numTables),
	}
	pos := directoryHeaderSize
	for i := 0; i < numTables; i++ {
		rec := data[pos : pos+dirEntrySize]
		e := DirEntry{
			Tag:      string(rec[0:4]),
			Checksum: be32(rec[4:8]),
			Offset:   be32(rec[8:12]),
			Length:   be32(rec[12:16]),
		}
		dir.Entries[i] = e
		dir.byTag[e.Tag] = i
		pos += dirEntrySize
	}
	return dir, nil
}

// Find returns the directory entry for tag, and whether it was present.
func (d *Directory) Find(tag string) (DirEntry, bool) {
	i, ok := d.byTag[tag]
	if !ok {
		return DirEntry{}, false
	}
	return d.Entries[i], true
}

func be16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}

func be32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}
