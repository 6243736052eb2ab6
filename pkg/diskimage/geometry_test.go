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

func TestGeometryTotals(t *testing.T) {

	rp04, err := Lookup("RP04")
	assert.NoError(t, err)
	assert.Equal(t, 411*19*20, rp04.TotalSectors())
	assert.Equal(t, 411*19*20*128*8, rp04.TotalBytes())

	for _, g := range Catalog() {
		assert.Equal(t, g.TotalSectors()*g.WordsPerSector*8, g.TotalBytes())
	}
}

func TestLookup(t *testing.T) {

	for _, g := range Catalog() {
		found, err := Lookup(g.Name)
		assert.NoError(t, err)
		assert.Equal(t, g.Name, found.Name)
	}

	_, err := Lookup("RK05")
	assert.Error(t, err, "unknown drive model: RK05")
}

func TestCatalogImmutable(t *testing.T) {

	g, err := Lookup("RP04")
	assert.NoError(t, err)
	g.Cylinders = 1

	cat := Catalog()
	cat[0].Name = "bogus"

	d := Detect(411 * 19 * 20 * 128 * 8)
	d.Heads = 0

	fresh, err := Lookup("RP04")
	assert.NoError(t, err)
	assert.Equal(t, 411, fresh.Cylinders)
	assert.Equal(t, 19, fresh.Heads)
	assert.Equal(t, "RP04", Catalog()[0].Name)
}

func TestDetect(t *testing.T) {

	t.Run("exact sizes", func(t *testing.T) {
		for _, g := range Catalog() {
			found := Detect(g.TotalBytes())
			assert.False(t, found == nil)
			// an earlier catalog entry within tolerance may win the tie
			assert.True(t, found.Name == g.Name ||
				found.TotalBytes() < g.TotalBytes())
		}
	})

	t.Run("within tolerance", func(t *testing.T) {
		rp04, err := Lookup("RP04")
		assert.NoError(t, err)
		tol := 100 * 128 * 8

		found := Detect(rp04.TotalBytes() + tol - 1)
		assert.False(t, found == nil)
		assert.Equal(t, "RP04", found.Name)

		found = Detect(rp04.TotalBytes() - tol + 1)
		assert.False(t, found == nil)
		assert.Equal(t, "RP04", found.Name)
	})

	t.Run("outside tolerance", func(t *testing.T) {
		assert.True(t, Detect(0) == nil)
		assert.True(t, Detect(1024) == nil)

		rp04, err := Lookup("RP04")
		assert.NoError(t, err)
		assert.True(t, Detect(rp04.TotalBytes()+100*128*8) == nil)
	})
}
