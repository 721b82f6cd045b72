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

package nametab

import (
	"encoding/binary"
	"testing"
)

type rec struct {
	platform, encoding, language, nameID uint16
	text                                 []byte // already encoded storage bytes
}

func build(recs []rec) []byte {
	var storage []byte
	header := make([]byte, headerLength)
	binary.BigEndian.PutUint16(header[0:2], 0)
	binary.BigEndian.PutUint16(header[2:4], uint16(len(recs)))

	body := make([]byte, recordLength*len(recs))
	for i, r := range recs {
		off := recordLength * i
		binary.BigEndian.PutUint16(body[off:], r.platform)
		binary.BigEndian.PutUint16(body[off+2:], r.encoding)
		binary.BigEndian.PutUint16(body[off+4:], r.language)
		binary.BigEndian.PutUint16(body[off+6:], r.nameID)
		binary.BigEndian.PutUint16(body[off+8:], uint16(len(r.text)))
		binary.BigEndian.PutUint16(body[off+10:], uint16(len(storage)))
		storage = append(storage, r.text...)
	}
	binary.BigEndian.PutUint16(header[4:6], uint16(headerLength+len(body)))
	return append(append(header, body...), storage...)
}

func encodeUTF16BE(s string) []byte {
	var out []byte
	for _, r := range s {
		out = append(out, byte(r>>8), byte(r))
	}
	return out
}

func TestReadMacRoman(t *testing.T) {
	data := build([]rec{{platform: 1, encoding: 0, language: 0, nameID: 1, text: []byte("Example Sans")}})
	table, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	got, ok := table.Lookup(1)
	if !ok || got != "Example Sans" {
		t.Errorf("Lookup(1) = %q, %v, want %q, true", got, ok, "Example Sans")
	}
}

func TestReadWindowsUnicode(t *testing.T) {
	data := build([]rec{{platform: 3, encoding: 1, language: 0x409, nameID: 6, text: encodeUTF16BE("ExampleSans-Bold")}})
	table, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	got, ok := table.Lookup(6)
	if !ok || got != "ExampleSans-Bold" {
		t.Errorf("Lookup(6) = %q, %v, want %q, true", got, ok, "ExampleSans-Bold")
	}
}

func TestLookupPrefersMacOverWindows(t *testing.T) {
	data := build([]rec{
		{platform: 3, encoding: 1, language: 0x409, nameID: 1, text: encodeUTF16BE("Windows Name")},
		{platform: 1, encoding: 0, language: 0, nameID: 1, text: []byte("Mac Name")},
	})
	table, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	got, ok := table.Lookup(1)
	if !ok || got != "Mac Name" {
		t.Errorf("Lookup(1) = %q, %v, want %q, true", got, ok, "Mac Name")
	}
}

func TestLookupMissing(t *testing.T) {
	data := build([]rec{{platform: 1, encoding: 0, language: 0, nameID: 1, text: []byte("Only")}})
	table, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if _, ok := table.Lookup(6); ok {
		t.Error("Lookup(6) = true, want false (no such record)")
	}
}

func TestUndecodedPlatformKeepsRawOnly(t *testing.T) {
	data := build([]rec{{platform: 0, encoding: 3, language: 0, nameID: 4, text: []byte{0, 0x41}}})
	table, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if table.Records[0].Text != "" {
		t.Errorf("Text = %q, want empty for an undecoded platform/encoding", table.Records[0].Text)
	}
	if len(table.Records[0].Raw) != 2 {
		t.Errorf("Raw has %d bytes, want 2", len(table.Records[0].Raw))
	}
}
