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

// Package hmtx decodes the 'hmtx' table: a run of explicit
// (advance, lsb) pairs followed by lsb-only entries for the trailing
// glyphs that share the last explicit advance width.
package hmtx

import (
	"encoding/binary"
	"fmt"

	"github.com/zathras777/zttf/internal/cursor"
)

// Metric is one glyph's horizontal metrics.
type Metric struct {
	Advance uint16
	LSB     int16
}

// Read decodes 'hmtx' given the 'hhea' number-of-metrics count and the
// font's total glyph count (from 'maxp'); glyphs beyond numberOfMetrics
// inherit the last explicit advance width.
func Read(data []byte, numberOfMetrics, numGlyphs int) ([]Metric, error) {
	if numberOfMetrics <= 0 || numberOfMetrics > numGlyphs {
		return nil, fmt.Errorf("hmtx: invalid number of metrics %d for %d glyphs", numberOfMetrics, numGlyphs)
	}
	c := cursor.New("hmtx", data)

	metrics := make([]Metric, numGlyphs)
	var lastAdvance uint16
	for i := 0; i < numGlyphs; i++ {
		advance := lastAdvance
		if i < numberOfMetrics {
			v, err := c.U16()
			if err != nil {
				return nil, err
			}
			advance = v
			lastAdvance = v
		}
		lsb, err := c.I16()
		if err != nil {
			return nil, err
		}
		metrics[i] = Metric{Advance: advance, LSB: lsb}
	}
	return metrics, nil
}

// Encode serializes metrics as a full hmtx table: one (advance, lsb) pair
// per glyph. The subsetter always emits the long form (number_of_metrics
// == num_glyphs); it never needs the trailing-lsb-only compaction.
func Encode(metrics []Metric) []byte {
	buf := make([]byte, 4*len(metrics))
	for i, m := range metrics {
		binary.BigEndian.PutUint16(buf[4*i:4*i+2], m.Advance)
		binary.BigEndian.PutUint16(buf[4*i+2:4*i+4], uint16(m.LSB))
	}
	return buf
}
