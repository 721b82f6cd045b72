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

// Package nametab decodes the 'name' table: a header, a list of name
// records locating strings in a shared storage block, and the strings
// themselves. Two (platform, encoding) pairs are decoded to UTF-8;
// everything else is kept as raw bytes, per the table's "one storage
// area shared by many (platform, language) variants" layout.
package nametab

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/zathras777/zttf/internal/cursor"
)

const headerLength = 6
const recordLength = 12

// Record is one decoded name record.
type Record struct {
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
	NameID     uint16

	// Text holds the decoded string for the two supported
	// (platform, encoding) pairs; Raw holds the original bytes always.
	Text string
	Raw  []byte
}

// decoded reports whether this record's (platform, encoding) pair was one
// this package knows how to turn into text.
func (r Record) decoded() bool {
	return (r.PlatformID == 1 && r.EncodingID == 0) ||
		(r.PlatformID == 3 && r.EncodingID == 1)
}

// Table is the decoded 'name' table.
type Table struct {
	Records []Record
}

var iso8859_1 = charmap.ISO8859_1.NewDecoder()
var utf16be = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()

// Read decodes the 'name' table.
func Read(data []byte) (*Table, error) {
	c := cursor.New("name", data)

	if _, err := c.U16(); err != nil { // format; both 0 and 1 share this record layout
		return nil, err
	}
	count, err := c.U16()
	if err != nil {
		return nil, err
	}
	storageOffset, err := c.U16()
	if err != nil {
		return nil, err
	}

	t := &Table{Records: make([]Record, count)}
	type rawRecord struct {
		platform, encoding, language, nameID, length, offset uint16
	}
	raws := make([]rawRecord, count)
	for i := 0; i < int(count); i++ {
		var rr rawRecord
		if rr.platform, err = c.U16(); err != nil {
			return nil, err
		}
		if rr.encoding, err = c.U16(); err != nil {
			return nil, err
		}
		if rr.language, err = c.U16(); err != nil {
			return nil, err
		}
		if rr.nameID, err = c.U16(); err != nil {
			return nil, err
		}
		if rr.length, err = c.U16(); err != nil {
			return nil, err
		}
		if rr.offset, err = c.U16(); err != nil {
			return nil, err
		}
		raws[i] = rr
	}

	for i, rr := range raws {
		start := int(storageOffset) + int(rr.offset)
		end := start + int(rr.length)
		if start < 0 || end > len(data) || start > end {
			return nil, fmt.Errorf("name: record %d string out of range", i)
		}
		raw := append([]byte(nil), data[start:end]...)
		rec := Record{
			PlatformID: rr.platform,
			EncodingID: rr.encoding,
			LanguageID: rr.language,
			NameID:     rr.nameID,
			Raw:        raw,
		}
		switch {
		case rec.PlatformID == 1 && rec.EncodingID == 0:
			if text, err := iso8859_1.Bytes(raw); err == nil {
				rec.Text = string(text)
			}
		case rec.PlatformID == 3 && rec.EncodingID == 1:
			if text, err := utf16be.Bytes(raw); err == nil {
				rec.Text = string(text)
			}
		}
		t.Records[i] = rec
	}
	return t, nil
}

// Lookup returns the decoded string for nameID, preferring the
// (platform=1, encoding=0) Macintosh record when more than one candidate
// decoded successfully.
func (t *Table) Lookup(nameID uint16) (string, bool) {
	var fallback string
	var haveFallback bool
	for _, rec := range t.Records {
		if rec.NameID != nameID || !rec.decoded() || rec.Text == "" {
			continue
		}
		if rec.PlatformID == 1 && rec.EncodingID == 0 {
			return rec.Text, true
		}
		if !haveFallback {
			fallback, haveFallback = rec.Text, true
		}
	}
	return fallback, haveFallback
}

