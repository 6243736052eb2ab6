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
)

// CHS is a physical cylinder/head/sector address. Sector counts from zero
// within its track.
type CHS struct {
	Cylinder int
	Head     int
	Sector   int
}

//
func (c CHS) String() string {
	return fmt.Sprintf("cyl %d, head %d, sector %d",
		c.Cylinder, c.Head, c.Sector)
}

// SectorToCHS converts a linear sector index into a physical address on
// the given drive. Inputs outside [0, TotalSectors) are not checked and
// yield a coordinate off the drive.
func SectorToCHS(sector int, g Geometry) CHS {
	perCylinder := g.Heads * g.SectorsPerTrack
	r := sector % perCylinder
	return CHS{
		Cylinder: sector / perCylinder,
		Head:     r / g.SectorsPerTrack,
		Sector:   r % g.SectorsPerTrack,
	}
}

// CHSToSector is the exact inverse of SectorToCHS for in-range addresses.
func CHSToSector(c CHS, g Geometry) int {
	return (c.Cylinder*g.Heads+c.Head)*g.SectorsPerTrack + c.Sector
}
