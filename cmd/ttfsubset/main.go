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

// Command ttfsubset opens a TTF font, prints its validity and family
// name, and writes a subset containing only the given characters to
// disk.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/zathras777/zttf"
	"github.com/zathras777/zttf/subset"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s input.ttf output.ttf characters\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 3 {
		flag.Usage()
		os.Exit(1)
	}
	inputPath := flag.Arg(0)
	outputPath := flag.Arg(1)
	chars := []rune(flag.Arg(2))

	file, err := ttf.Open(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening input font: %v\n", err)
		os.Exit(1)
	}
	if len(file.Faces) == 0 {
		fmt.Fprintf(os.Stderr, "Error: %s contains no faces\n", inputPath)
		os.Exit(1)
	}
	font := file.Faces[0]

	fmt.Printf("Valid font: %s\n", font.FontFamily())

	s, err := subset.New(font, chars)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building subset: %v\n", err)
		os.Exit(1)
	}
	for _, w := range s.Warnings() {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", w)
	}

	out, err := s.Output()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error serializing subset: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d glyphs to %s\n", s.NumGlyphs(), outputPath)
}
