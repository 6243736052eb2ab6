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
	"errors"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"github.com/averbach/dskten/pkg/daemon"
	"github.com/averbach/dskten/pkg/diskimage"
	"github.com/averbach/dskten/pkg/pdp10"
)

func TestImageString(t *testing.T) {

	i := &Image{Status: daemon.StatusBusy}
	assert.Equal(t, "<busy>", i.String())

	img, err := diskimage.NewBlank("RP04")
	assert.NoError(t, err)

	i = &Image{Status: daemon.StatusIdle}
	i.fill(img)
	assert.True(t, strings.Contains(i.String(), "RP04"))
	assert.True(t, strings.Contains(i.String(), "*")) // blank images are modified
}

func TestInfoFill(t *testing.T) {

	img, err := diskimage.NewBlank("RM03")
	assert.NoError(t, err)

	inf := &Info{}
	inf.fill(img)

	assert.Equal(t, "RM03", inf.Geometry)
	assert.Equal(t, 823, inf.Cylinders)
	assert.Equal(t, 5, inf.Heads)
	assert.Equal(t, 30, inf.Sectors)
	assert.Equal(t, 128, inf.WordsPerSect)
	assert.Equal(t, inf.TotalWords*8, inf.TotalBytes)
	assert.True(t, inf.Modified)
}

func TestWordViewFill(t *testing.T) {

	v := &WordView{Index: 7}
	v.fill(pdp10.Word(0o254000001234))

	assert.Equal(t, "254000,001234", v.SplitOctal)
	assert.Equal(t, "254000001234", v.Octal)
	assert.Equal(t, "254 00 0 00 001234", v.Fields)
	assert.Equal(t, 36, len(v.Binary))
	assert.Equal(t, 9, len(v.Hex))
	assert.Equal(t, 6, len(v.Sixbit))
	assert.Equal(t, 5, len(v.ASCII))
}

func TestParsePattern(t *testing.T) {

	t.Run("full and split octal words", func(t *testing.T) {
		p, err := parsePattern("777 123456,654321")
		assert.NoError(t, err)
		assert.Equal(t,
			[]pdp10.Word{0o777, 0o123456654321}, p)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := parsePattern("")
		assert.Error(t, err, "empty search pattern")

		_, err = parsePattern("12x")
		assert.True(t, errors.Is(err, pdp10.ErrParse))
	})
}
