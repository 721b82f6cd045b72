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
	"os"
)

// File is an opened TTF or TTC container: one or more faces sharing the
// same underlying bytes.
type File struct {
	Faces []*Font
}

// Open reads path and parses every face it contains. The whole file is
// read into memory up front and the OS handle released immediately
// afterwards - every subsequent access is a slice of that buffer, so no
// handle is held for the lifetime of the returned File.
func Open(path string) (*File, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	data, err := readAllAndClose(fd)
	if err != nil {
		return nil, err
	}
	return parseFile(data)
}

func readAllAndClose(fd *os.File) ([]byte, error) {
	defer fd.Close()
	info, err := fd.Stat()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, info.Size())
	if _, err := fullRead(fd, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func fullRead(fd *os.File, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := fd.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, fmt.Errorf("ttf: short read")
		}
	}
	return total, nil
}

const (
	ttcHeaderSize = 12 // tag, version, numFonts
	ttcVersion2   = 0x00020000
)

// parseFile detects single-face vs. collection and parses every face.
func parseFile(data []byte) (*File, error) {
	if len(data) < 4 {
		return nil, &FormatError{Reason: "file too short to contain an sfnt tag"}
	}

	if string(data[0:4]) == ttcTag {
		return parseCollection(data)
	}

	face, err := parseFace(data)
	if err != nil {
		return nil, err
	}
	return &File{Faces: []*Font{face}}, nil
}

func parseCollection(data []byte) (*File, error) {
	if len(data) < ttcHeaderSize {
		return nil, &FormatError{Reason: "truncated ttcf header"}
	}
	version := be32(data[4:8])
	numFonts := int(be32(data[8:12]))

	need := ttcHeaderSize + numFonts*4
	if version == ttcVersion2 {
		need += 12 // dsigTag, dsigLength, dsigOffset
	}
	if len(data) < need {
		return nil, &FormatError{Reason: "truncated ttcf offset table"}
	}

	faces := make([]*Font, numFonts)
	for i := 0; i < numFonts; i++ {
		off := be32(data[ttcHeaderSize+4*i : ttcHeaderSize+4*i+4])
		if int(off) >= len(data) {
			return nil, &FormatError{Reason: "ttcf face offset out of range"}
		}
		face, err := parseFace(data[off:])
		if err != nil {
			return nil, err
		}
		faces[i] = face
	}
	return &File{Faces: faces}, nil
}
