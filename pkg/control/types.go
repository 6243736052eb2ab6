/*
   DskTen - PDP-10 disk image toolkit
   Copyright (c) 2023, Martin Averbach

   This file is part of DskTen.

   DskTen is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   DskTen is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with DskTen. If not, see <http://www.gnu.org/licenses/>.
*/

package control

import (
	"fmt"
	"strings"

	"github.com/averbach/dskten/pkg/daemon"
	"github.com/averbach/dskten/pkg/diskimage"
	"github.com/averbach/dskten/pkg/pdp10"
)

//
type Status struct {
	Drives []string `json:"drives"`
}

//
func (s *Status) Add(d string) {
	s.Drives = append(s.Drives, d)
}

//
func (s *Status) String() string {
	ret := "\n"
	for ix, d := range s.Drives {
		ret = fmt.Sprintf("%s%d: %s\n", ret, ix+1, d)
	}
	return ret
}

//
type Image struct {
	Name     string `json:"name"`
	Status   string `json:"status"`
	Geometry string `json:"geometry"`
	Modified bool   `json:"modified"`
}

//
func (i *Image) fill(img *diskimage.DiskImage) {
	i.Name = strings.TrimSpace(img.Name())
	if g := img.Geometry(); g != nil {
		i.Geometry = g.Name
	}
	i.Modified = img.IsModified()
}

//
func (i *Image) String() string {

	if i.Status != daemon.StatusIdle {
		return fmt.Sprintf("<%s>", i.Status)
	}

	name := i.Name
	if name == "" {
		name = "<no name>"
	}

	geo := i.Geometry
	if geo == "" {
		geo = "-"
	}

	mod := ' '
	if i.Modified {
		mod = '*'
	}

	return fmt.Sprintf("%-16s%c %s", name, mod, geo)
}

// Info is the full report for one mounted image: identity, capacity and
// geometry breakdown.
type Info struct {
	Name         string `json:"name"`
	Geometry     string `json:"geometry"`
	Cylinders    int    `json:"cylinders,omitempty"`
	Heads        int    `json:"heads,omitempty"`
	Sectors      int    `json:"sectorsPerTrack,omitempty"`
	WordsPerSect int    `json:"wordsPerSector"`
	TotalWords   int    `json:"totalWords"`
	TotalSectors int    `json:"totalSectors"`
	TotalBytes   int    `json:"totalBytes"`
	Modified     bool   `json:"modified"`
}

//
func (i *Info) fill(img *diskimage.DiskImage) {

	i.Name = img.Name()
	i.WordsPerSect = img.WordsPerSector()
	i.TotalWords = img.TotalWords()
	i.TotalSectors = img.TotalSectors()
	i.TotalBytes = len(img.Bytes())
	i.Modified = img.IsModified()

	if g := img.Geometry(); g != nil {
		i.Geometry = g.Name
		i.Cylinders = g.Cylinders
		i.Heads = g.Heads
		i.Sectors = g.SectorsPerTrack
	}
}

//
func (i *Info) String() string {

	geo := i.Geometry
	if geo == "" {
		geo = "no matching drive model"
	} else {
		geo = fmt.Sprintf("%s (%d cylinders, %d heads, %d sectors/track)",
			i.Geometry, i.Cylinders, i.Heads, i.Sectors)
	}

	mod := ""
	if i.Modified {
		mod = ", modified"
	}

	return fmt.Sprintf("\n%s: %s\n%d words, %d sectors, %d bytes%s\n",
		i.Name, geo, i.TotalWords, i.TotalSectors, i.TotalBytes, mod)
}

// WordView renders one word in every display mode at once, which is what
// an editor front end needs to populate its value fields.
type WordView struct {
	Index      int    `json:"index"`
	SplitOctal string `json:"splitOctal"`
	Octal      string `json:"octal"`
	Hex        string `json:"hex"`
	Binary     string `json:"binary"`
	Sixbit     string `json:"sixbit"`
	ASCII      string `json:"ascii"`
	Fields     string `json:"fields"`
}

//
func (v *WordView) fill(w pdp10.Word) {
	v.SplitOctal = w.SplitOctal()
	v.Octal = w.Octal()
	v.Hex = w.Hex()
	v.Binary = w.Binary()
	v.Sixbit = w.Sixbit()
	v.ASCII = w.ASCII()
	v.Fields = w.Fields().String()
}

//
func (v *WordView) String() string {
	return fmt.Sprintf(
		"\nword %d\n  split octal: %s\n  octal:       %s\n"+
			"  hex:         %s\n  binary:      %s\n  sixbit:      |%s|\n"+
			"  ascii:       |%s|\n  fields:      %s\n",
		v.Index, v.SplitOctal, v.Octal, v.Hex, v.Binary, v.Sixbit,
		v.ASCII, v.Fields)
}

//
type WordRange struct {
	Start int      `json:"start"`
	Words []string `json:"words"`
}

//
type SearchResult struct {
	Index int  `json:"index"`
	Found bool `json:"found"`
}
