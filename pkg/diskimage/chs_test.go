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
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestSectorToCHS(t *testing.T) {

	rp04, err := Lookup("RP04")
	assert.NoError(t, err)

	t.Run("sector zero", func(t *testing.T) {
		assert.Equal(t, CHS{}, SectorToCHS(0, *rp04))
	})

	t.Run("track and cylinder boundaries", func(t *testing.T) {
		// RP04: 20 sectors per track, 19 heads
		assert.Equal(t, CHS{Cylinder: 0, Head: 0, Sector: 19},
			SectorToCHS(19, *rp04))
		assert.Equal(t, CHS{Cylinder: 0, Head: 1, Sector: 0},
			SectorToCHS(20, *rp04))
		assert.Equal(t, CHS{Cylinder: 1, Head: 0, Sector: 0},
			SectorToCHS(19*20, *rp04))
	})

	t.Run("last sector", func(t *testing.T) {
		last := rp04.TotalSectors() - 1
		assert.Equal(t, CHS{Cylinder: 410, Head: 18, Sector: 19},
			SectorToCHS(last, *rp04))
	})
}

func TestCHSRoundTrip(t *testing.T) {

	for _, g := range Catalog() {
		total := g.TotalSectors()
		for _, sector := range []int{
			0, 1, g.SectorsPerTrack, g.SectorsPerTrack * g.Heads,
			total / 2, total - 1,
		} {
			chs := SectorToCHS(sector, g)
			assert.Equal(t, sector, CHSToSector(chs, g))
		}
	}
}
