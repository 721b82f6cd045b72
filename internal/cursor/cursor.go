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

// Package cursor provides a small buffered big-endian reader used by every
// table decoder in this module. It plays the role the source's declarative
// field-list decoder played: a single place that knows how to pull fixed-
// width big-endian values off the wire, in the order the caller asks for
// them, without reordering or padding anything itself.
package cursor

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Cursor reads big-endian values from an in-memory table body. Unlike
// encoding/binary.Read on an io.Reader, it tracks its own byte offset so
// error messages can point at the byte that failed to decode, and it
// supports seeking to absolute offsets (used for 'kern' subtables and
// the fixed field offsets of 'OS/2').
type Cursor struct {
	table string // table tag, used in error messages
	data  []byte
	pos   int
}

// New wraps data (the raw, already-sliced bytes of one table) for reading.
func New(table string, data []byte) *Cursor {
	return &Cursor{table: table, data: data}
}

// Len returns the number of bytes remaining.
func (c *Cursor) Len() int {
	return len(c.data) - c.pos
}

// Pos returns the current read offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// Seek moves the read offset to an absolute position within the table.
func (c *Cursor) Seek(pos int) error {
	if pos < 0 || pos > len(c.data) {
		return c.errorf("seek to %d out of range (table length %d)", pos, len(c.data))
	}
	c.pos = pos
	return nil
}

func (c *Cursor) errorf(format string, a ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{c.table}, a...)...)
}

func (c *Cursor) bytes(n int) ([]byte, error) {
	if n < 0 || c.pos+n > len(c.data) {
		return nil, c.errorf("unexpected EOF at offset %d, need %d bytes: %w", c.pos, n, io.ErrUnexpectedEOF)
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// U8 reads a single byte.
func (c *Cursor) U8() (uint8, error) {
	b, err := c.bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// U16 reads a big-endian uint16.
func (c *Cursor) U16() (uint16, error) {
	b, err := c.bytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// I16 reads a big-endian int16.
func (c *Cursor) I16() (int16, error) {
	v, err := c.U16()
	return int16(v), err
}

// U32 reads a big-endian uint32.
func (c *Cursor) U32() (uint32, error) {
	b, err := c.bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// I32 reads a big-endian int32.
func (c *Cursor) I32() (int32, error) {
	v, err := c.U32()
	return int32(v), err
}

// Tag reads a 4-byte ASCII tag.
func (c *Cursor) Tag() (string, error) {
	b, err := c.bytes(4)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Skip discards n bytes.
func (c *Cursor) Skip(n int) error {
	_, err := c.bytes(n)
	return err
}

// Raw reads n raw bytes. The returned slice aliases the cursor's
// underlying buffer and must not be modified by the caller.
func (c *Cursor) Raw(n int) ([]byte, error) {
	return c.bytes(n)
}

// U16Slice reads n big-endian uint16 values.
func (c *Cursor) U16Slice(n int) ([]uint16, error) {
	out := make([]uint16, n)
	for i := range out {
		v, err := c.U16()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// I16Slice reads n big-endian int16 values.
func (c *Cursor) I16Slice(n int) ([]int16, error) {
	out := make([]int16, n)
	for i := range out {
		v, err := c.I16()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
