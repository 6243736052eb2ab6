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

package diskimage

import (
	"fmt"

	"github.com/averbach/dskten/pkg/pdp10"
)

// DefaultWordsPerSector applies when an image has no detected geometry.
// All cataloged drives use 128-word sectors.
const DefaultWordsPerSector = 128

// detection tolerance, in sectors
const detectToleranceSectors = 100

// Geometry describes the physical layout of one drive model. Totals are
// always derived from the primitive fields, never stored alongside them.
type Geometry struct {
	Name            string
	Cylinders       int
	Heads           int
	SectorsPerTrack int
	WordsPerSector  int
}

// TotalSectors returns the nominal sector count of the drive.
func (g Geometry) TotalSectors() int {
	return g.Cylinders * g.Heads * g.SectorsPerTrack
}

// TotalBytes returns the nominal image size of the drive, with every word
// in an 8-byte storage slot.
func (g Geometry) TotalBytes() int {
	return g.TotalSectors() * g.WordsPerSector * pdp10.BytesPerWord
}

//
func (g Geometry) String() string {
	return fmt.Sprintf("%s: %d cylinders, %d heads, %d sectors/track, %d words/sector",
		g.Name, g.Cylinders, g.Heads, g.SectorsPerTrack, g.WordsPerSector)
}

// geometries is the fixed catalog of supported drive models, RP and RM
// families. Catalog order doubles as detection priority: when two entries
// would both match a size within tolerance, the earlier one wins.
var geometries = []Geometry{
	{Name: "RP04", Cylinders: 411, Heads: 19, SectorsPerTrack: 20, WordsPerSector: 128},
	{Name: "RP06", Cylinders: 815, Heads: 19, SectorsPerTrack: 20, WordsPerSector: 128},
	{Name: "RP07", Cylinders: 630, Heads: 32, SectorsPerTrack: 43, WordsPerSector: 128},
	{Name: "RM03", Cylinders: 823, Heads: 5, SectorsPerTrack: 30, WordsPerSector: 128},
	{Name: "RM80", Cylinders: 559, Heads: 14, SectorsPerTrack: 30, WordsPerSector: 128},
}

// Catalog returns the supported drive models in detection priority order.
// The returned slice is a copy; the catalog itself cannot be changed.
func Catalog() []Geometry {
	ret := make([]Geometry, len(geometries))
	copy(ret, geometries)
	return ret
}

// Detect returns the first cataloged geometry whose nominal size is within
// tolerance (100 sectors' worth of bytes) of byteLength, or nil when no
// entry comes close enough. A nil result is not an error; images of
// unrecognized size still support word and sector access by raw length.
// The result is the caller's copy.
func Detect(byteLength int) *Geometry {

	for _, g := range geometries {
		tol := detectToleranceSectors * g.WordsPerSector * pdp10.BytesPerWord
		diff := byteLength - g.TotalBytes()
		if diff < 0 {
			diff = -diff
		}
		if diff < tol {
			g := g
			return &g
		}
	}

	return nil
}

// Lookup finds a cataloged geometry by drive model name. The result is the
// caller's copy.
func Lookup(name string) (*Geometry, error) {
	for _, g := range geometries {
		if g.Name == name {
			g := g
			return &g, nil
		}
	}
	return nil, fmt.Errorf("unknown drive model: %s", name)
}
